package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/hollowbrook/hamlet/internal/emotion"
)

// NPC is a simulated character. Emotion is the raw engine vector;
// EmotionUpdatedAt (unix millis) lets callers compute elapsed hours for
// decay before applying new pulls.
type NPC struct {
	ID               string         `json:"id"`
	Name             string         `json:"name"`
	Emotion          emotion.Vector `json:"emotion"`
	EmotionUpdatedAt int64          `json:"emotion_updated_at"`
	CreatedAt        int64          `json:"created_at"`
}

// CreateNPC inserts a new NPC with a neutral emotion vector.
func (db *DB) CreateNPC(name string) (*NPC, error) {
	now := time.Now().UnixMilli()
	n := &NPC{
		ID:               uuid.NewString(),
		Name:             name,
		Emotion:          emotion.Neutral(),
		EmotionUpdatedAt: now,
		CreatedAt:        now,
	}

	raw, err := json.Marshal(n.Emotion)
	if err != nil {
		return nil, fmt.Errorf("marshal emotion: %w", err)
	}

	_, err = db.Exec(`
		INSERT INTO npcs (id, name, emotion, emotion_updated_at, created_at)
		VALUES (?, ?, ?, ?, ?)
	`, n.ID, n.Name, string(raw), n.EmotionUpdatedAt, n.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert npc: %w", err)
	}
	return n, nil
}

// GetNPC returns an NPC by id, or nil if it does not exist.
func (db *DB) GetNPC(id string) (*NPC, error) {
	var n NPC
	var raw string
	err := db.QueryRow(`
		SELECT id, name, emotion, emotion_updated_at, created_at
		FROM npcs WHERE id = ?
	`, id).Scan(&n.ID, &n.Name, &raw, &n.EmotionUpdatedAt, &n.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get npc: %w", err)
	}

	if err := json.Unmarshal([]byte(raw), &n.Emotion); err != nil {
		return nil, fmt.Errorf("unmarshal emotion for %s: %w", id, err)
	}
	return &n, nil
}

// ListNPCs returns all NPCs ordered by creation time.
func (db *DB) ListNPCs() ([]NPC, error) {
	rows, err := db.Query(`
		SELECT id, name, emotion, emotion_updated_at, created_at
		FROM npcs ORDER BY created_at
	`)
	if err != nil {
		return nil, fmt.Errorf("list npcs: %w", err)
	}
	defer rows.Close()

	var npcs []NPC
	for rows.Next() {
		var n NPC
		var raw string
		if err := rows.Scan(&n.ID, &n.Name, &raw, &n.EmotionUpdatedAt, &n.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan npc: %w", err)
		}
		if err := json.Unmarshal([]byte(raw), &n.Emotion); err != nil {
			return nil, fmt.Errorf("unmarshal emotion for %s: %w", n.ID, err)
		}
		npcs = append(npcs, n)
	}
	return npcs, rows.Err()
}

// UpdateNPCEmotion replaces an NPC's emotion vector wholesale. The
// engine's outputs are complete vectors; no partial updates exist.
func (db *DB) UpdateNPCEmotion(id string, v emotion.Vector, at int64) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal emotion: %w", err)
	}

	result, err := db.Exec(`
		UPDATE npcs SET emotion = ?, emotion_updated_at = ? WHERE id = ?
	`, string(raw), at, id)
	if err != nil {
		return fmt.Errorf("update npc emotion: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("npc %s not found", id)
	}
	return nil
}

// ResetNPCEmotion returns an NPC to the neutral vector.
func (db *DB) ResetNPCEmotion(id string, at int64) error {
	return db.UpdateNPCEmotion(id, emotion.Neutral(), at)
}
