// Package store is the sole writer of durable state: CRUD over games,
// players and rounds with referential cascade, each multi-step
// operation inside one transaction.
package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"tarot-scores/internal/db"
	"tarot-scores/internal/scoring"
)

// DefaultGameName is the placeholder given to freshly created games.
const DefaultGameName = "New game"

// Store wraps the database handle. Construct one per open database;
// tests construct isolated, disposable instances.
type Store struct {
	conn *gorm.DB
}

func New(conn *gorm.DB) *Store {
	return &Store{conn: conn}
}

// Aggregate is a game together with its full roster and round history,
// read as one consistency unit.
type Aggregate struct {
	Game    db.Game
	Players []db.Player
	Rounds  []db.Round
}

// ListGames returns every game ordered by creation time ascending.
func (s *Store) ListGames(ctx context.Context) ([]db.Game, error) {
	games := []db.Game{}
	if err := s.conn.WithContext(ctx).Order("created ASC").Find(&games).Error; err != nil {
		return nil, fmt.Errorf("list games: %w", err)
	}
	return games, nil
}

// GetGame fetches the game and all of its players and rounds in one
// transaction, so a concurrent write can never yield children that do
// not match the game snapshot. Returns ErrNotFound for unknown ids.
func (s *Store) GetGame(ctx context.Context, id uint) (*Aggregate, error) {
	aggregate := &Aggregate{
		Players: []db.Player{},
		Rounds:  []db.Round{},
	}
	err := s.conn.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&aggregate.Game, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		if err := tx.Where("game = ?", id).Order("id ASC").Find(&aggregate.Players).Error; err != nil {
			return err
		}
		return tx.Where("game = ?", id).Order("id ASC").Find(&aggregate.Rounds).Error
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get game %d: %w", id, err)
	}
	return aggregate, nil
}

// CreateGame inserts a game with a placeholder name and both timestamps
// set to now, and returns the stored record.
func (s *Store) CreateGame(ctx context.Context) (db.Game, error) {
	now := time.Now().UTC()
	game := db.Game{
		Name:     DefaultGameName,
		Created:  now,
		Modified: now,
	}
	err := s.conn.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&game).Error; err != nil {
			return err
		}
		return recordEvent(tx, game.ID, eventGameCreated, eventPayload{Name: game.Name})
	})
	if err != nil {
		return db.Game{}, fmt.Errorf("create game: %w", err)
	}
	return game, nil
}

// RenameGame updates the game's name. The modified timestamp is left
// alone on rename; only creation sets it.
func (s *Store) RenameGame(ctx context.Context, id uint, name string) error {
	err := s.conn.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&db.Game{}).Where("id = ?", id).Update("name", name)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		return recordEvent(tx, id, eventGameRenamed, eventPayload{Name: name})
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("rename game %d: %w", id, err)
	}
	return nil
}

// RemoveGame deletes the game and every round, player and event that
// references it, as one atomic unit. Removing an unknown id is a no-op.
func (s *Store) RemoveGame(ctx context.Context, id uint) error {
	err := s.conn.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("game = ?", id).Delete(&db.Round{}).Error; err != nil {
			return err
		}
		if err := tx.Where("game = ?", id).Delete(&db.Player{}).Error; err != nil {
			return err
		}
		if err := tx.Where("game = ?", id).Delete(&db.Event{}).Error; err != nil {
			return err
		}
		return tx.Delete(&db.Game{}, id).Error
	})
	if err != nil {
		return fmt.Errorf("remove game %d: %w", id, err)
	}
	return nil
}

// SetPlayers inserts one player per name, in order, for the given game.
// It is meant to run once at setup: calling it again appends to the
// roster rather than replacing it.
func (s *Store) SetPlayers(ctx context.Context, gameID uint, names []string) ([]db.Player, error) {
	players := make([]db.Player, 0, len(names))
	err := s.conn.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var game db.Game
		if err := tx.First(&game, gameID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		for _, name := range names {
			player := db.Player{GameID: gameID, Name: name}
			if err := tx.Create(&player).Error; err != nil {
				return err
			}
			players = append(players, player)
		}
		return recordEvent(tx, gameID, eventPlayersSet, eventPayload{Players: names})
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("set players for game %d: %w", gameID, err)
	}
	return players, nil
}

// SetRound validates, clamps and upserts one round. A zero id inserts
// and the generated id is returned so in-memory state can reconcile; a
// known id overwrites the stored round in place.
func (s *Store) SetRound(ctx context.Context, round db.Round) (uint, error) {
	if !scoring.Contract(round.Contract).Valid() {
		return 0, fmt.Errorf("%w: unknown contract %q", ErrInvalidRound, round.Contract)
	}
	round.AttackOudlers = clamp(round.AttackOudlers, 0, 3)
	round.AttackScore = clamp(round.AttackScore, 0, 91)

	err := s.conn.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		roster := []db.Player{}
		if err := tx.Where("game = ?", round.GameID).Find(&roster).Error; err != nil {
			return err
		}
		if len(roster) == 0 {
			var game db.Game
			if err := tx.First(&game, round.GameID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return ErrNotFound
				}
				return err
			}
		}
		if !onRoster(roster, round.Attacker) {
			return fmt.Errorf("%w: attacker %d is not in game %d", ErrInvalidRound, round.Attacker, round.GameID)
		}
		if round.Called != nil && !onRoster(roster, *round.Called) {
			return fmt.Errorf("%w: called player %d is not in game %d", ErrInvalidRound, *round.Called, round.GameID)
		}
		if err := tx.Save(&round).Error; err != nil {
			return err
		}
		return recordEvent(tx, round.GameID, eventRoundSaved, eventPayload{RoundID: round.ID})
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) || errors.Is(err, ErrInvalidRound) {
			return 0, err
		}
		return 0, fmt.Errorf("set round for game %d: %w", round.GameID, err)
	}
	return round.ID, nil
}

func onRoster(roster []db.Player, playerID uint) bool {
	for _, player := range roster {
		if player.ID == playerID {
			return true
		}
	}
	return false
}

func clamp(value, low, high int) int {
	if value < low {
		return low
	}
	if value > high {
		return high
	}
	return value
}
