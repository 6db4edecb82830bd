package models

import "time"

// BookingStatus enumerates the lifecycle states a booking passes through
// server-side. The client never derives these; it displays what the
// backend reports.
type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingApproved  BookingStatus = "approved"
	BookingRejected  BookingStatus = "rejected"
	BookingCancelled BookingStatus = "cancelled"
)

// Booking is a slot reservation.
type Booking struct {
	ID        string        `json:"id"`
	UserID    string        `json:"userId"`
	StationID string        `json:"stationId"`
	SlotID    string        `json:"slotId"`
	StartTime time.Time     `json:"startTime"`
	EndTime   time.Time     `json:"endTime"`
	Status    BookingStatus `json:"status"`
	CreatedAt time.Time     `json:"createdAt,omitempty"`
}

// BookingRequest is the payload for creating or updating a booking.
type BookingRequest struct {
	StationID string    `json:"stationId"`
	SlotID    string    `json:"slotId"`
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
}
