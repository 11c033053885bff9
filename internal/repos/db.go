package repos

import (
	"log"

	"github.com/jmoiron/sqlx"
	"golang.org/x/crypto/bcrypt"
	_ "modernc.org/sqlite"
)

func OpenDB(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err = db.Ping(); err != nil {
		return nil, err
	}

	if err := ensureSchema(db); err != nil {
		return nil, err
	}
	// Seed the packages page if empty (idempotent; safe to run every start).
	// The media catalog deliberately starts empty: real uploads only, no demo set.
	if err := seedPackages(db); err != nil {
		return nil, err
	}

	return db, nil
}

func ensureSchema(db *sqlx.DB) error {
	schema := `
PRAGMA foreign_keys = ON;

-- Media catalog
CREATE TABLE IF NOT EXISTS media(
  id TEXT PRIMARY KEY,
  title TEXT,
  type TEXT NOT NULL CHECK (type IN ('photo','video')),
  service_category TEXT NOT NULL CHECK (service_category IN
    ('wedding','prewedding','newborn','birthdays','retirement','events','engagement')),
  url TEXT NOT NULL,
  uploaded_by TEXT NOT NULL,
  created_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_media_category   ON media(service_category);
CREATE INDEX IF NOT EXISTS idx_media_created_at ON media(created_at);

-- Client inquiries
CREATE TABLE IF NOT EXISTS inquiries(
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  email TEXT NOT NULL,
  phone TEXT NOT NULL,
  event_type TEXT NOT NULL CHECK (event_type IN
    ('wedding','prewedding','newborn','birthdays','retirement','events','engagement')),
  event_date TEXT NOT NULL,
  message TEXT,
  submitted_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_inquiries_submitted_at ON inquiries(submitted_at);

-- Service packages
CREATE TABLE IF NOT EXISTS packages(
  id TEXT PRIMARY KEY,
  title TEXT NOT NULL,
  description TEXT,
  price_range TEXT NOT NULL,
  service_category TEXT NOT NULL CHECK (service_category IN
    ('wedding','prewedding','newborn','birthdays','retirement','events','engagement')),
  created_by TEXT NOT NULL,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_packages_category ON packages(service_category);

-- Users & Sessions
CREATE TABLE IF NOT EXISTS users(
  id TEXT PRIMARY KEY,
  email TEXT NOT NULL UNIQUE,
  name TEXT NOT NULL,
  password_hash TEXT NOT NULL,
  role TEXT NOT NULL CHECK (role IN ('USER','OWNER')),
  created_at TEXT DEFAULT CURRENT_TIMESTAMP,
  updated_at TEXT
);
CREATE UNIQUE INDEX IF NOT EXISTS idx_users_email ON users(LOWER(email));

CREATE TABLE IF NOT EXISTS sessions(
  id TEXT PRIMARY KEY,               -- same value as the 'sid' cookie
  user_id TEXT NULL REFERENCES users(id) ON DELETE SET NULL,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP,
  last_seen  TEXT
);
CREATE INDEX IF NOT EXISTS idx_sessions_user ON sessions(user_id);
`
	_, err := db.Exec(schema)
	return err
}

func seedPackages(db *sqlx.DB) error {
	var n int
	if err := db.Get(&n, `SELECT COUNT(*) FROM packages`); err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	log.Println("[seed] inserting service packages")

	tx := db.MustBegin()
	tx.MustExec(`INSERT INTO packages(id,title,description,price_range,service_category,created_by) VALUES
	  ('pkg-wedding-classic','Classic Wedding','Full-day coverage of the ceremony and reception with an edited album.','$1,200 - $2,500','wedding','owner'),
	  ('pkg-prewedding-story','Pre-wedding Story','Outdoor couple shoot at a location of your choice.','$400 - $800','prewedding','owner'),
	  ('pkg-newborn-gentle','Gentle Newborn','In-home newborn session with props and family portraits.','$300 - $600','newborn','owner'),
	  ('pkg-birthday-party','Birthday Party','Candid coverage of birthdays and milestone parties.','$250 - $500','birthdays','owner'),
	  ('pkg-retirement-farewell','Farewell Celebration','Retirement function coverage with same-week highlights.','$250 - $500','retirement','owner'),
	  ('pkg-corporate-events','Corporate & Events','Conferences, launches and cultural events.','$400 - $1,000','events','owner'),
	  ('pkg-engagement-day','Engagement Day','Engagement ceremony photos plus a short highlight video.','$350 - $700','engagement','owner')`)
	return tx.Commit()
}

// SeedOwner ensures the single owner account exists. Credentials come from
// configuration; when no password is configured the seed is skipped so a
// plaintext default never ships in source.
func SeedOwner(db *sqlx.DB, email, name, password string) error {
	if password == "" {
		log.Println("[seed] OWNER_PASSWORD not set; skipping owner account seed")
		return nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), 12)
	if err != nil {
		return err
	}
	_, err = db.Exec(`
		INSERT INTO users(id,email,name,password_hash,role)
		VALUES('u-owner',?,?,?,'OWNER')
		ON CONFLICT(email) DO UPDATE SET name=excluded.name, password_hash=excluded.password_hash
	`, email, name, string(hash))
	return err
}
