package db

import (
	"time"

	"gorm.io/datatypes"
)

// Game is the root aggregate. Players and Rounds hang off it by the
// `game` foreign key and are deleted together with it.
type Game struct {
	ID       uint      `gorm:"primaryKey"`
	Name     string    `gorm:"size:128;not null"`
	Created  time.Time `gorm:"column:created;not null;index:idx_games_created"`
	Modified time.Time `gorm:"column:modified;not null"`
	Players  []Player  `gorm:"foreignKey:GameID"`
	Rounds   []Round   `gorm:"foreignKey:GameID"`
}

// Player belongs to exactly one game. Rosters are written once, as a
// batch, when the setup step commits.
type Player struct {
	ID     uint   `gorm:"primaryKey"`
	GameID uint   `gorm:"column:game;not null;index:idx_game_players_game"`
	Name   string `gorm:"size:64;not null;index:idx_game_players_name"`
}

// TableName pins the on-disk collection name; it is part of the
// storage contract.
func (Player) TableName() string {
	return "game_players"
}

// Round records one played hand: who attacked, the declared contract,
// how many oudlers the attack held and the raw trick points it took.
// Called is only meaningful in 5-player games.
type Round struct {
	ID            uint   `gorm:"primaryKey"`
	GameID        uint   `gorm:"column:game;not null;index:idx_rounds_game"`
	Attacker      uint   `gorm:"not null"`
	Called        *uint  `gorm:"column:called"`
	Contract      string `gorm:"size:32;not null"`
	AttackOudlers int    `gorm:"not null"`
	AttackScore   int    `gorm:"not null"`
}

// Event is an audit record written in the same transaction as the
// mutation it describes.
type Event struct {
	ID        uint           `gorm:"primaryKey"`
	GameID    uint           `gorm:"column:game;not null;index:idx_events_game"`
	Type      string         `gorm:"size:64;not null"`
	Payload   datatypes.JSON `gorm:"not null"`
	CreatedAt time.Time      `gorm:"not null"`
}
