package services

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avolkov/chargecli/internal/client/models"
	"github.com/avolkov/chargecli/internal/logging"
)

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

var errBackend = errors.New("backend unavailable")

type fakeStationAPI struct {
	stations []models.Station
	slots    []models.Slot
	err      error

	byStationID string
	deletedID   string
}

func (f *fakeStationAPI) ListStations(context.Context) ([]models.Station, error) {
	return f.stations, f.err
}

func (f *fakeStationAPI) AddStation(_ context.Context, st models.Station) (*models.Station, error) {
	if f.err != nil {
		return nil, f.err
	}
	st.ID = "st-new"
	return &st, nil
}

func (f *fakeStationAPI) UpdateStation(_ context.Context, id string, st models.Station) (*models.Station, error) {
	if f.err != nil {
		return nil, f.err
	}
	st.ID = id
	return &st, nil
}

func (f *fakeStationAPI) DeleteStation(_ context.Context, id string) error {
	f.deletedID = id
	return f.err
}

func (f *fakeStationAPI) ListSlots(context.Context) ([]models.Slot, error) {
	return f.slots, f.err
}

func (f *fakeStationAPI) ListSlotsByStation(_ context.Context, stationID string) ([]models.Slot, error) {
	f.byStationID = stationID
	return f.slots, f.err
}

func (f *fakeStationAPI) AddSlot(_ context.Context, sl models.Slot) (*models.Slot, error) {
	if f.err != nil {
		return nil, f.err
	}
	sl.ID = "sl-new"
	return &sl, nil
}

func (f *fakeStationAPI) UpdateSlot(_ context.Context, id string, sl models.Slot) (*models.Slot, error) {
	if f.err != nil {
		return nil, f.err
	}
	sl.ID = id
	return &sl, nil
}

func (f *fakeStationAPI) DeleteSlot(_ context.Context, id string) error {
	f.deletedID = id
	return f.err
}

func TestStationService_List(t *testing.T) {
	api := &fakeStationAPI{stations: []models.Station{{ID: "st1", Name: "Central"}}}
	svc := NewStationService(api, testLogger())

	stations, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, stations, 1)
	assert.Equal(t, "Central", stations[0].Name)
}

func TestStationService_ListError(t *testing.T) {
	svc := NewStationService(&fakeStationAPI{err: errBackend}, testLogger())

	_, err := svc.List(context.Background())
	require.ErrorIs(t, err, errBackend)
}

func TestStationService_SlotsRoutesByStationID(t *testing.T) {
	api := &fakeStationAPI{slots: []models.Slot{{ID: "sl1"}}}
	svc := NewStationService(api, testLogger())

	_, err := svc.Slots(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, api.byStationID)

	_, err = svc.Slots(context.Background(), "st1")
	require.NoError(t, err)
	assert.Equal(t, "st1", api.byStationID)
}

func TestStationService_Delete(t *testing.T) {
	api := &fakeStationAPI{}
	svc := NewStationService(api, testLogger())

	require.NoError(t, svc.Delete(context.Background(), "st1"))
	assert.Equal(t, "st1", api.deletedID)
}

type fakeBookingAPI struct {
	bookings []models.Booking
	err      error

	approvedID string
	rejectedID string
	cancelled  string
}

func (f *fakeBookingAPI) CreateBooking(_ context.Context, req models.BookingRequest) (*models.Booking, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &models.Booking{ID: "b-new", StationID: req.StationID, SlotID: req.SlotID, Status: models.BookingPending}, nil
}

func (f *fakeBookingAPI) ListUserBookings(context.Context) ([]models.Booking, error) {
	return f.bookings, f.err
}

func (f *fakeBookingAPI) UpdateBooking(_ context.Context, id string, _ models.BookingRequest) (*models.Booking, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &models.Booking{ID: id}, nil
}

func (f *fakeBookingAPI) CancelBooking(_ context.Context, id string) error {
	f.cancelled = id
	return f.err
}

func (f *fakeBookingAPI) ListPendingBookings(context.Context) ([]models.Booking, error) {
	return f.bookings, f.err
}

func (f *fakeBookingAPI) ApproveBooking(_ context.Context, id string) error {
	f.approvedID = id
	return f.err
}

func (f *fakeBookingAPI) RejectBooking(_ context.Context, id string) error {
	f.rejectedID = id
	return f.err
}

func TestBookingService_Book(t *testing.T) {
	svc := NewBookingService(&fakeBookingAPI{}, testLogger())

	booking, err := svc.Book(context.Background(), models.BookingRequest{StationID: "st1", SlotID: "sl1"})
	require.NoError(t, err)
	assert.Equal(t, models.BookingPending, booking.Status)
	assert.Equal(t, "st1", booking.StationID)
}

func TestBookingService_BookError(t *testing.T) {
	svc := NewBookingService(&fakeBookingAPI{err: errBackend}, testLogger())

	_, err := svc.Book(context.Background(), models.BookingRequest{})
	require.ErrorIs(t, err, errBackend)
}

func TestBookingService_ModerationCalls(t *testing.T) {
	api := &fakeBookingAPI{}
	svc := NewBookingService(api, testLogger())

	require.NoError(t, svc.Approve(context.Background(), "b1"))
	require.NoError(t, svc.Reject(context.Background(), "b2"))
	require.NoError(t, svc.Cancel(context.Background(), "b3"))

	assert.Equal(t, "b1", api.approvedID)
	assert.Equal(t, "b2", api.rejectedID)
	assert.Equal(t, "b3", api.cancelled)
}

type fakeUserAPI struct {
	profile *models.User
	users   []models.User
	err     error

	updatedPatch *models.UserPatch
	blockedID    string
	unblockedID  string
}

func (f *fakeUserAPI) GetProfile(context.Context) (*models.User, error) {
	return f.profile, f.err
}

func (f *fakeUserAPI) UpdateProfile(_ context.Context, patch models.UserPatch) (*models.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.updatedPatch = &patch
	u := patch.Apply(*f.profile)
	return &u, nil
}

func (f *fakeUserAPI) ListUsers(context.Context) ([]models.User, error) {
	return f.users, f.err
}

func (f *fakeUserAPI) BlockUser(_ context.Context, id string) error {
	f.blockedID = id
	return f.err
}

func (f *fakeUserAPI) UnblockUser(_ context.Context, id string) error {
	f.unblockedID = id
	return f.err
}

func (f *fakeUserAPI) VerifyEmail(_ context.Context, token string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return "Email verified successfully", nil
}

type fakeSessionUpdater struct {
	patches []models.UserPatch
	err     error
}

func (f *fakeSessionUpdater) UpdateUserProfile(_ context.Context, patch models.UserPatch) error {
	if f.err != nil {
		return f.err
	}
	f.patches = append(f.patches, patch)
	return nil
}

func TestUserService_UpdateProfile_RefreshesSession(t *testing.T) {
	api := &fakeUserAPI{profile: &models.User{Name: "Alice", Email: "a@x.com"}}
	sess := &fakeSessionUpdater{}
	svc := NewUserService(api, sess, testLogger())

	name := "Alice B"
	updated, err := svc.UpdateProfile(context.Background(), models.UserPatch{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Alice B", updated.Name)
	require.Len(t, sess.patches, 1, "session cache refreshed after backend accepted")
}

func TestUserService_UpdateProfile_BackendRejection(t *testing.T) {
	api := &fakeUserAPI{err: errBackend}
	sess := &fakeSessionUpdater{}
	svc := NewUserService(api, sess, testLogger())

	name := "Alice B"
	_, err := svc.UpdateProfile(context.Background(), models.UserPatch{Name: &name})
	require.ErrorIs(t, err, errBackend)
	assert.Empty(t, sess.patches, "rejected change must not touch the session")
}

func TestUserService_VerifyEmail(t *testing.T) {
	svc := NewUserService(&fakeUserAPI{}, &fakeSessionUpdater{}, testLogger())

	msg, err := svc.VerifyEmail(context.Background(), "tok-verify")
	require.NoError(t, err)
	assert.Equal(t, "Email verified successfully", msg)
}

func TestUserService_BlockUnblock(t *testing.T) {
	api := &fakeUserAPI{}
	svc := NewUserService(api, &fakeSessionUpdater{}, testLogger())

	require.NoError(t, svc.Block(context.Background(), "u1"))
	require.NoError(t, svc.Unblock(context.Background(), "u2"))
	assert.Equal(t, "u1", api.blockedID)
	assert.Equal(t, "u2", api.unblockedID)
}
