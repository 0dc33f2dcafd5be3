package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/hollowbrook/hamlet/internal/emotion"
)

// Relationship is a player's emotional standing with an NPC, carrying
// its own vector separate from the NPC's ambient mood.
type Relationship struct {
	NPCID            string         `json:"npc_id"`
	PlayerID         string         `json:"player_id"`
	Emotion          emotion.Vector `json:"emotion"`
	EmotionUpdatedAt int64          `json:"emotion_updated_at"`
	CreatedAt        int64          `json:"created_at"`
}

// EnsureRelationship returns the relationship between a player and an
// NPC, creating a neutral one if none exists.
func (db *DB) EnsureRelationship(npcID, playerID string) (*Relationship, error) {
	rel, err := db.getRelationship(npcID, playerID)
	if err != nil {
		return nil, err
	}
	if rel != nil {
		return rel, nil
	}

	now := time.Now().UnixMilli()
	rel = &Relationship{
		NPCID:            npcID,
		PlayerID:         playerID,
		Emotion:          emotion.Neutral(),
		EmotionUpdatedAt: now,
		CreatedAt:        now,
	}

	raw, err := json.Marshal(rel.Emotion)
	if err != nil {
		return nil, fmt.Errorf("marshal emotion: %w", err)
	}

	_, err = db.Exec(`
		INSERT INTO relationships (npc_id, player_id, emotion, emotion_updated_at, created_at)
		VALUES (?, ?, ?, ?, ?)
	`, npcID, playerID, string(raw), rel.EmotionUpdatedAt, rel.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert relationship: %w", err)
	}
	return rel, nil
}

func (db *DB) getRelationship(npcID, playerID string) (*Relationship, error) {
	var rel Relationship
	var raw string
	err := db.QueryRow(`
		SELECT npc_id, player_id, emotion, emotion_updated_at, created_at
		FROM relationships WHERE npc_id = ? AND player_id = ?
	`, npcID, playerID).Scan(&rel.NPCID, &rel.PlayerID, &raw, &rel.EmotionUpdatedAt, &rel.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get relationship: %w", err)
	}

	if err := json.Unmarshal([]byte(raw), &rel.Emotion); err != nil {
		return nil, fmt.Errorf("unmarshal emotion for %s/%s: %w", npcID, playerID, err)
	}
	return &rel, nil
}

// UpdateRelationshipEmotion replaces the relationship vector wholesale.
func (db *DB) UpdateRelationshipEmotion(npcID, playerID string, v emotion.Vector, at int64) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal emotion: %w", err)
	}

	result, err := db.Exec(`
		UPDATE relationships SET emotion = ?, emotion_updated_at = ?
		WHERE npc_id = ? AND player_id = ?
	`, string(raw), at, npcID, playerID)
	if err != nil {
		return fmt.Errorf("update relationship emotion: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("relationship %s/%s not found", npcID, playerID)
	}
	return nil
}
