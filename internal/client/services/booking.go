package services

import (
	"context"
	"fmt"

	"github.com/avolkov/chargecli/internal/client/models"
	"github.com/avolkov/chargecli/internal/logging"
)

type bookingAPI interface {
	CreateBooking(ctx context.Context, req models.BookingRequest) (*models.Booking, error)
	ListUserBookings(ctx context.Context) ([]models.Booking, error)
	UpdateBooking(ctx context.Context, id string, req models.BookingRequest) (*models.Booking, error)
	CancelBooking(ctx context.Context, id string) error
	ListPendingBookings(ctx context.Context) ([]models.Booking, error)
	ApproveBooking(ctx context.Context, id string) error
	RejectBooking(ctx context.Context, id string) error
}

type BookingService interface {
	Book(ctx context.Context, req models.BookingRequest) (*models.Booking, error)
	MyBookings(ctx context.Context) ([]models.Booking, error)
	Update(ctx context.Context, id string, req models.BookingRequest) (*models.Booking, error)
	Cancel(ctx context.Context, id string) error
	Pending(ctx context.Context) ([]models.Booking, error)
	Approve(ctx context.Context, id string) error
	Reject(ctx context.Context, id string) error
}

type bookingService struct {
	api bookingAPI
	log logging.Logger
}

func NewBookingService(api bookingAPI, log logging.Logger) BookingService {
	return &bookingService{api: api, log: log.With("service", "bookings")}
}

func (s *bookingService) Book(ctx context.Context, req models.BookingRequest) (*models.Booking, error) {
	booking, err := s.api.CreateBooking(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("creating booking: %w", err)
	}
	s.log.Info(ctx, "booking created", "id", booking.ID, "station", booking.StationID, "slot", booking.SlotID)
	return booking, nil
}

func (s *bookingService) MyBookings(ctx context.Context) ([]models.Booking, error) {
	bookings, err := s.api.ListUserBookings(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing bookings: %w", err)
	}
	s.log.Debug(ctx, "bookings listed", "count", len(bookings))
	return bookings, nil
}

func (s *bookingService) Update(ctx context.Context, id string, req models.BookingRequest) (*models.Booking, error) {
	booking, err := s.api.UpdateBooking(ctx, id, req)
	if err != nil {
		return nil, fmt.Errorf("updating booking: %w", err)
	}
	s.log.Info(ctx, "booking updated", "id", id)
	return booking, nil
}

func (s *bookingService) Cancel(ctx context.Context, id string) error {
	if err := s.api.CancelBooking(ctx, id); err != nil {
		return fmt.Errorf("cancelling booking: %w", err)
	}
	s.log.Info(ctx, "booking cancelled", "id", id)
	return nil
}

func (s *bookingService) Pending(ctx context.Context) ([]models.Booking, error) {
	bookings, err := s.api.ListPendingBookings(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing pending bookings: %w", err)
	}
	return bookings, nil
}

func (s *bookingService) Approve(ctx context.Context, id string) error {
	if err := s.api.ApproveBooking(ctx, id); err != nil {
		return fmt.Errorf("approving booking: %w", err)
	}
	s.log.Info(ctx, "booking approved", "id", id)
	return nil
}

func (s *bookingService) Reject(ctx context.Context, id string) error {
	if err := s.api.RejectBooking(ctx, id); err != nil {
		return fmt.Errorf("rejecting booking: %w", err)
	}
	s.log.Info(ctx, "booking rejected", "id", id)
	return nil
}
