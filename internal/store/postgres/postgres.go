package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/dinefind/dinefind/internal/model"
	"github.com/dinefind/dinefind/internal/store"
)

// Open opens a PostgreSQL connection using the pgx stdlib driver and verifies connectivity.
func Open(dsn string) (*sql.DB, error) {
	if dsn == "" {
		return nil, fmt.Errorf("postgres DSN is empty")
	}
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: %v", model.ErrStoreUnavailable, err)
	}
	return db, nil
}

// NewWithDB constructs a native Postgres store backed directly by database/sql.
func NewWithDB(db *sql.DB) store.Store { return &pgStore{db: db} }

type pgStore struct{ db *sql.DB }

func (s *pgStore) Users() store.Users             { return &users{db: s.db} }
func (s *pgStore) Restaurants() store.Restaurants { return &restaurants{db: s.db} }

// HealthPing implements health.HealthPinger for the Postgres-backed store.
func (s *pgStore) HealthPing(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// EnsureSchema creates the users, user_visits and restaurants tables when
// absent. user_visits carries no uniqueness constraint: the visit history is
// stored as a list and collapsed to a set on read.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
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
            stars        DOUBLE PRECISION NOT NULL DEFAULT 0,
            latitude     DOUBLE PRECISION NOT NULL DEFAULT 0,
            longitude    DOUBLE PRECISION NOT NULL DEFAULT 0,
            image_url    TEXT NOT NULL DEFAULT '',
            url          TEXT NOT NULL DEFAULT ''
        )`,
	}
	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

// --- Users ---

type users struct{ db *sql.DB }

func (u *users) Create(ctx context.Context, m *model.User) (*model.User, error) {
	_, err := u.db.ExecContext(ctx, `
        INSERT INTO users (user_id, password, first_name, last_name)
        VALUES ($1,$2,$3,$4)
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
        SELECT user_id, password, first_name, last_name
        FROM users WHERE user_id=$1
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
	_, err := u.db.ExecContext(ctx, `
        INSERT INTO user_visits (user_id, business_id)
        SELECT $1, unnest($2::text[])
    `, userID, businessIDs)
	return err
}

func (u *users) RemoveVisited(ctx context.Context, userID string, businessIDs []string) error {
	if len(businessIDs) == 0 {
		return nil
	}
	_, err := u.db.ExecContext(ctx, `
        DELETE FROM user_visits WHERE user_id=$1 AND business_id = ANY($2::text[])
    `, userID, businessIDs)
	return err
}

func (u *users) ListVisited(ctx context.Context, userID string) ([]string, error) {
	rows, err := u.db.QueryContext(ctx, `
        SELECT business_id FROM user_visits WHERE user_id=$1
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
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
        ON CONFLICT (business_id) DO UPDATE SET
            name=EXCLUDED.name, categories=EXCLUDED.categories, city=EXCLUDED.city,
            state=EXCLUDED.state, full_address=EXCLUDED.full_address, stars=EXCLUDED.stars,
            latitude=EXCLUDED.latitude, longitude=EXCLUDED.longitude,
            image_url=EXCLUDED.image_url, url=EXCLUDED.url
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
        FROM restaurants WHERE business_id=$1
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
	// LIKE is case-sensitive in Postgres; the match must stay a literal
	// substring ("Japan" matches "Japanese", "japan" does not).
	rows, err := r.db.QueryContext(ctx, `
        SELECT business_id FROM restaurants WHERE categories LIKE '%' || $1 || '%'
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
