package tokens

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/avolkov/chargecli/internal/client/models"
	"github.com/avolkov/chargecli/internal/common"
	"github.com/avolkov/chargecli/internal/cryptox"
	"github.com/avolkov/chargecli/internal/dbx"
)

// Storage keys for the two durable entries. The user value is a
// JSON-serialized User record; both are sealed before hitting disk.
const (
	keyToken = "token"
	keyUser  = "user"
)

// SQLiteStore is a Store backed by the client's sqlite database. Values are
// sealed with AES-GCM so the database file alone does not leak the
// credential.
type SQLiteStore struct {
	db  *sql.DB
	box *cryptox.SealedBox
}

func NewSQLiteStore(db *sql.DB, box *cryptox.SealedBox) *SQLiteStore {
	return &SQLiteStore{db: db, box: box}
}

func (s *SQLiteStore) set(ctx context.Context, tx dbx.DBTX, key string, value []byte) error {
	sealed, err := s.box.Seal(value)
	if err != nil {
		return fmt.Errorf("seal session[%s]: %w", key, err)
	}
	_, err = tx.ExecContext(ctx, `
		INSERT INTO session (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, sealed)
	if err != nil {
		return fmt.Errorf("set session[%s]: %w", key, err)
	}
	return nil
}

func (s *SQLiteStore) get(ctx context.Context, key string) ([]byte, error) {
	var sealed []byte
	err := s.db.QueryRowContext(ctx, `SELECT value FROM session WHERE key = ?`, key).Scan(&sealed)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get session[%s]: %w", key, err)
	}
	value, err := s.box.Open(sealed)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", common.ErrSessionCorrupted, err)
	}
	return value, nil
}

// Save writes both entries in one transaction.
func (s *SQLiteStore) Save(ctx context.Context, credential string, user *models.User) error {
	payload, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("marshal user: %w", err)
	}

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.set(ctx, tx, keyToken, []byte(credential)); err != nil {
			return err
		}
		return s.set(ctx, tx, keyUser, payload)
	})
}

// Load returns the stored pair, or ("", nil, nil) when either entry is
// missing. A record that can no longer be unsealed or decoded reports
// common.ErrSessionCorrupted.
func (s *SQLiteStore) Load(ctx context.Context) (string, *models.User, error) {
	credential, err := s.get(ctx, keyToken)
	if err != nil {
		return "", nil, err
	}
	payload, err := s.get(ctx, keyUser)
	if err != nil {
		return "", nil, err
	}
	if credential == nil || payload == nil {
		return "", nil, nil
	}

	var user models.User
	if err := json.Unmarshal(payload, &user); err != nil {
		return "", nil, fmt.Errorf("%w: %s", common.ErrSessionCorrupted, err)
	}
	return string(credential), &user, nil
}

// Clear removes both entries in one transaction. Clearing an empty store
// is a no-op.
func (s *SQLiteStore) Clear(ctx context.Context) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM session`); err != nil {
			return fmt.Errorf("clear session: %w", err)
		}
		return nil
	})
}
