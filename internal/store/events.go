package store

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"tarot-scores/internal/db"
)

const (
	eventGameCreated = "game_created"
	eventGameRenamed = "game_renamed"
	eventPlayersSet  = "players_set"
	eventRoundSaved  = "round_saved"
)

type eventPayload struct {
	Name    string   `json:"name,omitempty"`
	Players []string `json:"players,omitempty"`
	RoundID uint     `json:"round_id,omitempty"`
}

// recordEvent appends an audit row inside the caller's transaction so
// the event commits or rolls back with the mutation it describes.
func recordEvent(tx *gorm.DB, gameID uint, kind string, payload eventPayload) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	return tx.Create(&db.Event{
		GameID:    gameID,
		Type:      kind,
		Payload:   datatypes.JSON(raw),
		CreatedAt: time.Now().UTC(),
	}).Error
}
