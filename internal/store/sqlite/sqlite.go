package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/dinefind/dinefind/internal/model"
	"github.com/dinefind/dinefind/internal/store"
)

// New opens a SQLite store at path, ensuring the schema exists. Used for
// single-node deployments and as the in-memory store in tests.
func New(path string) (store.Store, error) {
	db, err := Open(path)
	if err != nil {
		return nil, err
	}
	if err := ensureSchema(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &sqliteStore{db: db}, nil
}

// NewWithDB wires a store over an existing connection (used by the factory).
func NewWithDB(db *sql.DB) (store.Store, error) {
	if err := ensureSchema(db); err != nil {
		return nil, err
	}
	return &sqliteStore{db: db}, nil
}

type sqliteStore struct{ db *sql.DB }

func (s *sqliteStore) Users() store.Users             { return &users{db: s.db} }
func (s *sqliteStore) Restaurants() store.Restaurants { return &restaurants{db: s.db} }

// HealthPing implements health.HealthPinger.
func (s *sqliteStore) HealthPing(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func ensureSchema(db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS users (
            user_id    TEXT PRIMARY KEY,
            password   TEXT NOT NULL DEFAULT '',
            first_name TEXT NOT NULL DEFAULT '',
            last_name  TEXT NOT NULL DEFAULT ''
        )`,
		`CREATE TABLE IF NOT EXISTS user_visits (
            user_id     TEXT NOT NULL REFERENCES users(user_id),
            business_id TEXT NOT NULL
        )`,
		`CREATE INDEX IF NOT EXISTS idx_user_visits_user ON user_visits (user_id)`,
		`CREATE TABLE IF NOT EXISTS restaurants (
            business_id  TEXT PRIMARY KEY,
            name         TEXT NOT NULL DEFAULT '',
            categories   TEXT NOT NULL DEFAULT '',
            city         TEXT NOT NULL DEFAULT '',
            state        TEXT NOT NULL DEFAULT '',
            full_address TEXT NOT NULL DEFAULT '',
            stars        REAL NOT NULL DEFAULT 0,
            latitude     REAL NOT NULL DEFAULT 0,
            longitude    REAL NOT NULL DEFAULT 0,
            image_url    TEXT NOT NULL DEFAULT '',
            url          TEXT NOT NULL DEFAULT ''
        )`,
	}
	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// --- Users ---

type users struct{ db *sql.DB }

func (u *users) Create(ctx context.Context, m *model.User) (*model.User, error) {
	_, err := u.db.ExecContext(ctx, `
        INSERT INTO users (user_id, password, first_name, last_name) VALUES (?,?,?,?)
    `, m.UserID, m.Password, m.FirstName, m.LastName)
	if err != nil {
		return nil, err
	}
	out := *m
	return &out, nil
}

func (u *users) Get(ctx context.Context, userID string) (*model.User, error) {
	var out model.User
	row := u.db.QueryRowContext(ctx, `
        SELECT user_id, password, first_name, last_name FROM users WHERE user_id=?
    `, userID)
	if err := row.Scan(&out.UserID, &out.Password, &out.FirstName, &out.LastName); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrNotFound
		}
		return nil, err
	}
	return &out, nil
}

func (u *users) AddVisited(ctx context.Context, userID string, businessIDs []string) error {
	if len(businessIDs) == 0 {
		return nil
	}
	tx, err := u.db.BeginTx(ctx, &sql.TxOptions{})
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()
	for _, id := range businessIDs {
		if _, err := tx.ExecContext(ctx, `
            INSERT INTO user_visits (user_id, business_id) VALUES (?,?)
        `, userID, id); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (u *users) RemoveVisited(ctx context.Context, userID string, businessIDs []string) error {
	if len(businessIDs) == 0 {
		return nil
	}
	tx, err := u.db.BeginTx(ctx, &sql.TxOptions{})
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()
	for _, id := range businessIDs {
		if _, err := tx.ExecContext(ctx, `
            DELETE FROM user_visits WHERE user_id=? AND business_id=?
        `, userID, id); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (u *users) ListVisited(ctx context.Context, userID string) ([]string, error) {
	rows, err := u.db.QueryContext(ctx, `
        SELECT business_id FROM user_visits WHERE user_id=?
    `, userID)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()
	var out []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	return out, rows.Err()
}

// --- Restaurants ---

type restaurants struct{ db *sql.DB }

func (r *restaurants) Upsert(ctx context.Context, m *model.Restaurant) (*model.Restaurant, error) {
	_, err := r.db.ExecContext(ctx, `
        INSERT INTO restaurants (business_id, name, categories, city, state, full_address,
                                 stars, latitude, longitude, image_url, url)
        VALUES (?,?,?,?,?,?,?,?,?,?,?)
        ON CONFLICT (business_id) DO UPDATE SET
            name=excluded.name, categories=excluded.categories, city=excluded.city,
            state=excluded.state, full_address=excluded.full_address, stars=excluded.stars,
            latitude=excluded.latitude, longitude=excluded.longitude,
            image_url=excluded.image_url, url=excluded.url
    `, m.BusinessID, m.Name, m.Categories, m.City, m.State, m.FullAddress,
		m.Stars, m.Latitude, m.Longitude, m.ImageURL, m.URL)
	if err != nil {
		return nil, err
	}
	out := *m
	return &out, nil
}

func (r *restaurants) Get(ctx context.Context, businessID string) (*model.Restaurant, error) {
	var out model.Restaurant
	row := r.db.QueryRowContext(ctx, `
        SELECT business_id, name, categories, city, state, full_address,
               stars, latitude, longitude, image_url, url
        FROM restaurants WHERE business_id=?
    `, businessID)
	if err := row.Scan(&out.BusinessID, &out.Name, &out.Categories, &out.City, &out.State,
		&out.FullAddress, &out.Stars, &out.Latitude, &out.Longitude, &out.ImageURL, &out.URL); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrNotFound
		}
		return nil, err
	}
	return &out, nil
}

func (r *restaurants) FindByCategory(ctx context.Context, category string) ([]string, error) {
	// instr keeps the match case-sensitive; SQLite's LIKE folds ASCII case.
	rows, err := r.db.QueryContext(ctx, `
        SELECT business_id FROM restaurants WHERE instr(categories, ?) > 0
    `, category)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()
	var out []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	return out, rows.Err()
}
