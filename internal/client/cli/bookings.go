package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/avolkov/chargecli/internal/client/models"
)

const timeLayout = "2006-01-02 15:04"

func (a *App) promptBookingRequest() (models.BookingRequest, error) {
	var req models.BookingRequest
	var err error

	if req.StationID, err = getSimpleText(a.reader, "Station id", a.out); err != nil {
		return req, err
	}
	if req.SlotID, err = getSimpleText(a.reader, "Slot id", a.out); err != nil {
		return req, err
	}

	start, err := getSimpleText(a.reader, "Start time (YYYY-MM-DD HH:MM)", a.out)
	if err != nil {
		return req, err
	}
	if req.StartTime, err = time.ParseInLocation(timeLayout, start, time.Local); err != nil {
		fmt.Fprintln(a.out, "Invalid start time:", err)
		return req, err
	}

	end, err := getSimpleText(a.reader, "End time (YYYY-MM-DD HH:MM)", a.out)
	if err != nil {
		return req, err
	}
	if req.EndTime, err = time.ParseInLocation(timeLayout, end, time.Local); err != nil {
		fmt.Fprintln(a.out, "Invalid end time:", err)
		return req, err
	}

	return req, nil
}

// Book prompts for the slot and time window and creates a booking. The
// backend decides approval; new bookings start out pending.
func (a *App) Book(ctx context.Context) error {
	req, err := a.promptBookingRequest()
	if err != nil {
		return err
	}

	booking, err := a.bookings.Book(ctx, req)
	if err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return err
	}

	fmt.Fprintf(a.out, "Booking %s created, status: %s\n", booking.ID, booking.Status)
	return nil
}

// Rebook replaces an existing booking's slot and time window.
func (a *App) Rebook(ctx context.Context, id string) error {
	req, err := a.promptBookingRequest()
	if err != nil {
		return err
	}

	booking, err := a.bookings.Update(ctx, id, req)
	if err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return err
	}

	fmt.Fprintf(a.out, "Booking %s updated, status: %s\n", booking.ID, booking.Status)
	return nil
}

func (a *App) Bookings(ctx context.Context) error {
	bookings, err := a.bookings.MyBookings(ctx)
	if err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return err
	}
	a.printBookings(bookings)
	return nil
}

func (a *App) CancelBooking(ctx context.Context, id string) error {
	if err := a.bookings.Cancel(ctx, id); err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return err
	}
	fmt.Fprintf(a.out, "Booking %s cancelled\n", id)
	return nil
}

func (a *App) Pending(ctx context.Context) error {
	bookings, err := a.bookings.Pending(ctx)
	if err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return err
	}
	a.printBookings(bookings)
	return nil
}

func (a *App) Approve(ctx context.Context, id string) error {
	if err := a.bookings.Approve(ctx, id); err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return err
	}
	fmt.Fprintf(a.out, "Booking %s approved\n", id)
	return nil
}

func (a *App) Reject(ctx context.Context, id string) error {
	if err := a.bookings.Reject(ctx, id); err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return err
	}
	fmt.Fprintf(a.out, "Booking %s rejected\n", id)
	return nil
}

func (a *App) printBookings(bookings []models.Booking) {
	if len(bookings) == 0 {
		fmt.Fprintln(a.out, "No bookings found")
		return
	}
	for _, b := range bookings {
		fmt.Fprintf(a.out, "%s  station=%s slot=%s  %s - %s  [%s]\n",
			b.ID, b.StationID, b.SlotID,
			b.StartTime.Local().Format(timeLayout),
			b.EndTime.Local().Format(timeLayout),
			b.Status)
	}
}
