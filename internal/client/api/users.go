package api

import (
	"context"
	"net/http"

	"github.com/avolkov/chargecli/internal/client/models"
)

// GetProfile fetches the signed-in user's profile.
func (c *Client) GetProfile(ctx context.Context) (*models.User, error) {
	var user models.User
	if err := c.do(ctx, http.MethodGet, "/users/profile", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateProfile submits a partial profile update and returns the updated
// record as the backend sees it.
func (c *Client) UpdateProfile(ctx context.Context, patch models.UserPatch) (*models.User, error) {
	var user models.User
	if err := c.do(ctx, http.MethodPut, "/users/profile", patch, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// ListUsers returns every user account. Admin only.
func (c *Client) ListUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := c.do(ctx, http.MethodGet, "/admins/users", nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// BlockUser blocks a user account. Admin only.
func (c *Client) BlockUser(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodPut, "/admins/users/block/"+id, nil, nil)
}

// UnblockUser unblocks a user account. Admin only.
func (c *Client) UnblockUser(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodPut, "/admins/users/unblock/"+id, nil, nil)
}
