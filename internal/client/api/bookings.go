package api

import (
	"context"
	"net/http"

	"github.com/avolkov/chargecli/internal/client/models"
)

// CreateBooking reserves a slot for the signed-in user.
func (c *Client) CreateBooking(ctx context.Context, req models.BookingRequest) (*models.Booking, error) {
	var booking models.Booking
	if err := c.do(ctx, http.MethodPost, "/bookings/user", req, &booking); err != nil {
		return nil, err
	}
	return &booking, nil
}

// ListUserBookings returns the signed-in user's bookings.
func (c *Client) ListUserBookings(ctx context.Context) ([]models.Booking, error) {
	var bookings []models.Booking
	if err := c.do(ctx, http.MethodGet, "/bookings/user", nil, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

// UpdateBooking changes an existing booking of the signed-in user.
func (c *Client) UpdateBooking(ctx context.Context, id string, req models.BookingRequest) (*models.Booking, error) {
	var booking models.Booking
	if err := c.do(ctx, http.MethodPut, "/bookings/user/"+id, req, &booking); err != nil {
		return nil, err
	}
	return &booking, nil
}

// CancelBooking cancels one of the signed-in user's bookings.
func (c *Client) CancelBooking(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodPut, "/bookings/user/"+id+"/cancel", nil, nil)
}

// ListPendingBookings returns bookings awaiting an admin decision.
func (c *Client) ListPendingBookings(ctx context.Context) ([]models.Booking, error) {
	var bookings []models.Booking
	if err := c.do(ctx, http.MethodGet, "/bookings/admin/pending", nil, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

// ApproveBooking approves a pending booking. Admin only.
func (c *Client) ApproveBooking(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodPut, "/bookings/admin/"+id+"/approve", nil, nil)
}

// RejectBooking rejects a pending booking. Admin only.
func (c *Client) RejectBooking(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodPut, "/bookings/admin/"+id+"/reject", nil, nil)
}
