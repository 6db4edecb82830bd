package api

import (
	"context"
	"net/http"

	"github.com/avolkov/chargecli/internal/client/models"
)

// ListStations returns all charging stations. Public endpoint.
func (c *Client) ListStations(ctx context.Context) ([]models.Station, error) {
	var stations []models.Station
	if err := c.do(ctx, http.MethodGet, "/stations", nil, &stations); err != nil {
		return nil, err
	}
	return stations, nil
}

// AddStation creates a station. Admin only.
func (c *Client) AddStation(ctx context.Context, station models.Station) (*models.Station, error) {
	var created models.Station
	if err := c.do(ctx, http.MethodPost, "/stations", station, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateStation updates a station. Admin only.
func (c *Client) UpdateStation(ctx context.Context, id string, station models.Station) (*models.Station, error) {
	var updated models.Station
	if err := c.do(ctx, http.MethodPut, "/stations/"+id, station, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteStation removes a station. Admin only.
func (c *Client) DeleteStation(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/stations/"+id, nil, nil)
}

// ListSlotsByStation returns the slots of one station. Public endpoint.
func (c *Client) ListSlotsByStation(ctx context.Context, stationID string) ([]models.Slot, error) {
	var slots []models.Slot
	if err := c.do(ctx, http.MethodGet, "/slots/station/"+stationID, nil, &slots); err != nil {
		return nil, err
	}
	return slots, nil
}

// ListSlots returns every slot. Admin only.
func (c *Client) ListSlots(ctx context.Context) ([]models.Slot, error) {
	var slots []models.Slot
	if err := c.do(ctx, http.MethodGet, "/slots", nil, &slots); err != nil {
		return nil, err
	}
	return slots, nil
}

// AddSlot creates a slot. Admin only.
func (c *Client) AddSlot(ctx context.Context, slot models.Slot) (*models.Slot, error) {
	var created models.Slot
	if err := c.do(ctx, http.MethodPost, "/slots", slot, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateSlot updates a slot. Admin only.
func (c *Client) UpdateSlot(ctx context.Context, id string, slot models.Slot) (*models.Slot, error) {
	var updated models.Slot
	if err := c.do(ctx, http.MethodPut, "/slots/"+id, slot, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteSlot removes a slot. Admin only.
func (c *Client) DeleteSlot(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/slots/"+id, nil, nil)
}
