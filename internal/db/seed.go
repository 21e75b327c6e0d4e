package db

import (
	"errors"
	"log"
	"time"

	"gorm.io/gorm"
)

func date(value string) time.Time {
	parsed, err := time.Parse("2006-01-02T15:04:05", value)
	if err != nil {
		panic(err)
	}
	return parsed
}

func calledPlayer(id uint) *uint {
	return &id
}

// Seed inserts the sample fixtures on a fresh database so a first run
// has something to explore. It is gated solely on the games table being
// empty: wiping every game by hand and restarting will re-seed.
func Seed(conn *gorm.DB) error {
	if conn == nil {
		return errors.New("db connection is nil")
	}
	return conn.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&Game{}).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return nil
		}

		games := []Game{
			{ID: 1, Name: "Game 1", Created: date("2021-11-27T23:32:27"), Modified: date("2021-11-28T02:07:15")},
			{ID: 2, Name: "Game 2", Created: date("2021-11-29T01:45:39"), Modified: date("2021-11-29T05:57:31")},
		}
		players := []Player{
			{ID: 1, GameID: 1, Name: "Anne"},
			{ID: 2, GameID: 1, Name: "Bernard"},
			{ID: 3, GameID: 1, Name: "Claire"},
			{ID: 4, GameID: 1, Name: "Denis"},
			{ID: 5, GameID: 2, Name: "Elise"},
			{ID: 6, GameID: 2, Name: "Fabien"},
			{ID: 7, GameID: 2, Name: "Gilles"},
			{ID: 8, GameID: 2, Name: "Helene"},
			{ID: 9, GameID: 2, Name: "Irene"},
		}
		rounds := []Round{
			{ID: 1, GameID: 1, Attacker: 1, Contract: "petite", AttackOudlers: 1, AttackScore: 60},
			{ID: 2, GameID: 1, Attacker: 3, Contract: "garde", AttackOudlers: 2, AttackScore: 38},
			{ID: 3, GameID: 2, Attacker: 5, Called: calledPlayer(6), Contract: "petite", AttackOudlers: 0, AttackScore: 50},
		}

		if err := tx.Create(&games).Error; err != nil {
			return err
		}
		if err := tx.Create(&players).Error; err != nil {
			return err
		}
		if err := tx.Create(&rounds).Error; err != nil {
			return err
		}

		log.Printf("seeded sample data games=%d players=%d rounds=%d", len(games), len(players), len(rounds))
		return nil
	})
}
