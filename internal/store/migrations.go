package store

import (
	"fmt"
)

type migration struct {
	Version     int
	Description string
	SQL         string
}

var migrations = []migration{
	{
		Version:     1,
		Description: "npcs: core entities carrying an emotion vector",
		SQL: `
CREATE TABLE npcs (
    id                  TEXT PRIMARY KEY,
    name                TEXT NOT NULL,

    -- Emotion vector, JSON-encoded, persisted verbatim from the engine.
    emotion             TEXT NOT NULL,
    emotion_updated_at  INTEGER NOT NULL,

    created_at          INTEGER NOT NULL
);
`,
	},
	{
		Version:     2,
		Description: "relationships: per-player emotional state toward an NPC",
		SQL: `
CREATE TABLE relationships (
    npc_id              TEXT NOT NULL REFERENCES npcs(id) ON DELETE CASCADE,
    player_id           TEXT NOT NULL,

    emotion             TEXT NOT NULL,
    emotion_updated_at  INTEGER NOT NULL,

    created_at          INTEGER NOT NULL,

    PRIMARY KEY (npc_id, player_id)
);

CREATE INDEX idx_relationships_player ON relationships(player_id);
`,
	},
}

func (db *DB) migrate() error {
	// Create schema_versions table if it doesn't exist
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_versions (
			version     INTEGER PRIMARY KEY,
			description TEXT NOT NULL,
			applied_at  INTEGER NOT NULL DEFAULT (strftime('%s', 'now') * 1000)
		)
	`)
	if err != nil {
		return fmt.Errorf("create schema_versions: %w", err)
	}

	for _, m := range migrations {
		var count int
		err := db.QueryRow("SELECT COUNT(*) FROM schema_versions WHERE version = ?", m.Version).Scan(&count)
		if err != nil {
			return fmt.Errorf("check migration %d: %w", m.Version, err)
		}
		if count > 0 {
			continue
		}

		tx, err := db.Begin()
		if err != nil {
			return fmt.Errorf("begin migration %d: %w", m.Version, err)
		}

		if _, err := tx.Exec(m.SQL); err != nil {
			tx.Rollback()
			return fmt.Errorf("migration %d (%s): %w", m.Version, m.Description, err)
		}

		if _, err := tx.Exec(
			"INSERT INTO schema_versions (version, description) VALUES (?, ?)",
			m.Version, m.Description,
		); err != nil {
			tx.Rollback()
			return fmt.Errorf("record migration %d: %w", m.Version, err)
		}

		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit migration %d: %w", m.Version, err)
		}
	}

	return nil
}
