// Package authstore persists client-side key-value state, most importantly
// the bearer token, in a local SQLite file.
package authstore

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	_ "modernc.org/sqlite"
)

const TokenKey = "auth_token"

var (
	ErrNotFound = errors.New("key not found")
	ErrNoExpiry = errors.New("token carries no expiry claim")
)

type Store struct {
	db *sql.DB
}

// Open opens (or creates) the store at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}
	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS kv (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL,
		updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to init store: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) Get(key string) (string, error) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return value, nil
}

func (s *Store) Set(key, value string) error {
	_, err := s.db.Exec(`INSERT INTO kv (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`, key, value)
	return err
}

func (s *Store) Delete(key string) error {
	_, err := s.db.Exec(`DELETE FROM kv WHERE key = ?`, key)
	return err
}

// Token implements api.TokenSource. A missing token is not an error: the
// request simply goes out unauthenticated and the server rejects it through
// the normal envelope path.
func (s *Store) Token() (string, error) {
	value, err := s.Get(TokenKey)
	if errors.Is(err, ErrNotFound) {
		return "", nil
	}
	return value, err
}

func (s *Store) SetToken(token string) error {
	return s.Set(TokenKey, token)
}

func (s *Store) ClearToken() error {
	return s.Delete(TokenKey)
}

// TokenExpiry reads the exp claim of the stored token without verifying the
// signature; the client has no signing key and only wants to warn before
// firing requests that are doomed to 401.
func (s *Store) TokenExpiry() (time.Time, error) {
	token, err := s.Get(TokenKey)
	if err != nil {
		return time.Time{}, err
	}
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, fmt.Errorf("failed to parse token: %w", err)
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, ErrNoExpiry
	}
	return exp.Time, nil
}
