package services

import (
	"context"
	"fmt"

	"github.com/avolkov/chargecli/internal/client/models"
	"github.com/avolkov/chargecli/internal/logging"
)

// stationAPI is the slice of the backend gateway the station service uses.
type stationAPI interface {
	ListStations(ctx context.Context) ([]models.Station, error)
	AddStation(ctx context.Context, station models.Station) (*models.Station, error)
	UpdateStation(ctx context.Context, id string, station models.Station) (*models.Station, error)
	DeleteStation(ctx context.Context, id string) error
	ListSlots(ctx context.Context) ([]models.Slot, error)
	ListSlotsByStation(ctx context.Context, stationID string) ([]models.Slot, error)
	AddSlot(ctx context.Context, slot models.Slot) (*models.Slot, error)
	UpdateSlot(ctx context.Context, id string, slot models.Slot) (*models.Slot, error)
	DeleteSlot(ctx context.Context, id string) error
}

type StationService interface {
	List(ctx context.Context) ([]models.Station, error)
	Add(ctx context.Context, station models.Station) (*models.Station, error)
	Update(ctx context.Context, id string, station models.Station) (*models.Station, error)
	Delete(ctx context.Context, id string) error
	Slots(ctx context.Context, stationID string) ([]models.Slot, error)
	AddSlot(ctx context.Context, slot models.Slot) (*models.Slot, error)
	UpdateSlot(ctx context.Context, id string, slot models.Slot) (*models.Slot, error)
	DeleteSlot(ctx context.Context, id string) error
}

type stationService struct {
	api stationAPI
	log logging.Logger
}

func NewStationService(api stationAPI, log logging.Logger) StationService {
	return &stationService{api: api, log: log.With("service", "stations")}
}

func (s *stationService) List(ctx context.Context) ([]models.Station, error) {
	stations, err := s.api.ListStations(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing stations: %w", err)
	}
	s.log.Debug(ctx, "stations listed", "count", len(stations))
	return stations, nil
}

func (s *stationService) Add(ctx context.Context, station models.Station) (*models.Station, error) {
	created, err := s.api.AddStation(ctx, station)
	if err != nil {
		return nil, fmt.Errorf("adding station: %w", err)
	}
	s.log.Info(ctx, "station added", "id", created.ID, "name", created.Name)
	return created, nil
}

func (s *stationService) Update(ctx context.Context, id string, station models.Station) (*models.Station, error) {
	updated, err := s.api.UpdateStation(ctx, id, station)
	if err != nil {
		return nil, fmt.Errorf("updating station: %w", err)
	}
	s.log.Info(ctx, "station updated", "id", id)
	return updated, nil
}

func (s *stationService) Delete(ctx context.Context, id string) error {
	if err := s.api.DeleteStation(ctx, id); err != nil {
		return fmt.Errorf("deleting station: %w", err)
	}
	s.log.Info(ctx, "station deleted", "id", id)
	return nil
}

// Slots lists all slots, or only a station's when stationID is non-empty.
func (s *stationService) Slots(ctx context.Context, stationID string) ([]models.Slot, error) {
	var (
		slots []models.Slot
		err   error
	)
	if stationID == "" {
		slots, err = s.api.ListSlots(ctx)
	} else {
		slots, err = s.api.ListSlotsByStation(ctx, stationID)
	}
	if err != nil {
		return nil, fmt.Errorf("listing slots: %w", err)
	}
	return slots, nil
}

func (s *stationService) AddSlot(ctx context.Context, slot models.Slot) (*models.Slot, error) {
	created, err := s.api.AddSlot(ctx, slot)
	if err != nil {
		return nil, fmt.Errorf("adding slot: %w", err)
	}
	s.log.Info(ctx, "slot added", "id", created.ID, "station", created.StationID)
	return created, nil
}

func (s *stationService) UpdateSlot(ctx context.Context, id string, slot models.Slot) (*models.Slot, error) {
	updated, err := s.api.UpdateSlot(ctx, id, slot)
	if err != nil {
		return nil, fmt.Errorf("updating slot: %w", err)
	}
	s.log.Info(ctx, "slot updated", "id", id)
	return updated, nil
}

func (s *stationService) DeleteSlot(ctx context.Context, id string) error {
	if err := s.api.DeleteSlot(ctx, id); err != nil {
		return fmt.Errorf("deleting slot: %w", err)
	}
	s.log.Info(ctx, "slot deleted", "id", id)
	return nil
}
