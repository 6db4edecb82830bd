// Package tokens persists the current session's credential and user record.
// It is the only component allowed to write the durable credential; all
// other components route through the session controller.
package tokens

import (
	"context"

	"github.com/avolkov/chargecli/internal/client/models"
)

// Store keeps the (credential, user) pair across process restarts.
//
// Contract:
//   - Save persists both fields together, never individually.
//   - Load returns ("", nil, nil) when no session is stored.
//   - Clear removes both fields atomically.
type Store interface {
	Save(ctx context.Context, credential string, user *models.User) error
	Load(ctx context.Context) (string, *models.User, error)
	Clear(ctx context.Context) error
}
