package database

const schema = `
CREATE TABLE IF NOT EXISTS categories (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	icon TEXT DEFAULT 'fas fa-layer-group',
	created_at DATETIME
);
CREATE TABLE IF NOT EXISTS folders (
	id TEXT PRIMARY KEY,
	category_id TEXT NOT NULL,
	name TEXT NOT NULL,
	created_at DATETIME,
	FOREIGN KEY (category_id) REFERENCES categories(id) ON DELETE CASCADE
);
CREATE TABLE IF NOT EXISTS files (
	id TEXT PRIMARY KEY,
	folder_id TEXT NOT NULL,
	category_id TEXT NOT NULL,
	name TEXT NOT NULL,
	url TEXT NOT NULL,
	thumbnail TEXT DEFAULT '',
	tags TEXT DEFAULT '',
	likes INTEGER DEFAULT 0,
	approved BOOLEAN DEFAULT 1,
	uploaded_by TEXT DEFAULT '',
	upload_date DATETIME,
	FOREIGN KEY (folder_id) REFERENCES folders(id) ON DELETE CASCADE,
	FOREIGN KEY (category_id) REFERENCES categories(id) ON DELETE CASCADE
);
CREATE TABLE IF NOT EXISTS featured_media (
	id TEXT PRIMARY KEY,
	title TEXT NOT NULL,
	description TEXT DEFAULT '',
	url TEXT NOT NULL,
	tags TEXT DEFAULT '',
	likes INTEGER DEFAULT 0,
	upload_date DATETIME
);
CREATE TABLE IF NOT EXISTS slider_images (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	url TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS announcements (
	id TEXT PRIMARY KEY,
	date TEXT NOT NULL,
	title TEXT NOT NULL,
	content TEXT DEFAULT '',
	highlight BOOLEAN DEFAULT 0,
	image TEXT DEFAULT '',
	created_at DATETIME
);
CREATE TABLE IF NOT EXISTS staff (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	email TEXT NOT NULL UNIQUE,
	password TEXT NOT NULL, -- bcrypt hash, never the plaintext
	level INTEGER NOT NULL DEFAULT 1,
	protected BOOLEAN DEFAULT 0,
	added_date DATETIME
);
CREATE TABLE IF NOT EXISTS site_settings (
	id INTEGER PRIMARY KEY CHECK (id = 1),
	brand_name TEXT DEFAULT '',
	hero_title TEXT DEFAULT '',
	hero_subtitle TEXT DEFAULT '',
	footer_description TEXT DEFAULT '',
	footer_address TEXT DEFAULT '',
	footer_phone TEXT DEFAULT '',
	footer_email TEXT DEFAULT '',
	footer_copyright TEXT DEFAULT '',
	facebook_link TEXT DEFAULT '',
	twitter_link TEXT DEFAULT '',
	instagram_link TEXT DEFAULT '',
	youtube_link TEXT DEFAULT ''
);
CREATE TABLE IF NOT EXISTS schema_migrations (
	version INTEGER PRIMARY KEY,
	applied_at DATETIME
);

-- --- INDEXES ---
CREATE INDEX IF NOT EXISTS idx_folders_category ON folders(category_id);
CREATE INDEX IF NOT EXISTS idx_files_folder ON files(folder_id);
CREATE INDEX IF NOT EXISTS idx_files_category ON files(category_id);
CREATE INDEX IF NOT EXISTS idx_announcements_created ON announcements(created_at DESC);
`
