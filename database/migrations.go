// mediahub/database/migrations.go
package database

// migration represents a single database schema migration.
type migration struct {
	Version uint
	Query   string
}

// allMigrations holds all schema changes in order.
var allMigrations = []migration{
	{
		Version: 1,
		Query: `
-- Store the media kind once at ingestion instead of re-deriving it per read
ALTER TABLE files ADD COLUMN media_type TEXT NOT NULL DEFAULT 'image';

CREATE INDEX IF NOT EXISTS idx_files_media_type ON files(media_type);
CREATE INDEX IF NOT EXISTS idx_files_approved ON files(approved);
		`,
	},
}
