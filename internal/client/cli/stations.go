package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/avolkov/chargecli/internal/client/models"
)

func (a *App) Stations(ctx context.Context) error {
	stations, err := a.stations.List(ctx)
	if err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return err
	}
	if len(stations) == 0 {
		fmt.Fprintln(a.out, "No stations found")
		return nil
	}
	for _, st := range stations {
		active := "inactive"
		if st.IsActive {
			active = "active"
		}
		fmt.Fprintf(a.out, "%s  %s  %s, %s  [%s]\n",
			st.ID, st.Name, st.Address, st.City, active)
	}
	return nil
}

// Slots lists charging slots, optionally filtered to one station.
func (a *App) Slots(ctx context.Context, stationID string) error {
	slots, err := a.stations.Slots(ctx, stationID)
	if err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return err
	}
	if len(slots) == 0 {
		fmt.Fprintln(a.out, "No slots found")
		return nil
	}
	for _, sl := range slots {
		fmt.Fprintf(a.out, "%s  station=%s  %s  %s %.1fkW  %.2f/kWh  available=%v\n",
			sl.ID, sl.StationID, sl.Name, sl.ChargerType, sl.PowerKW, sl.PricePerKWH, sl.IsAvailable)
	}
	return nil
}

func (a *App) promptStation() (models.Station, error) {
	var st models.Station
	var err error

	if st.Name, err = getSimpleText(a.reader, "Station name", a.out); err != nil {
		return st, err
	}
	if st.Address, err = getSimpleText(a.reader, "Address", a.out); err != nil {
		return st, err
	}
	if st.City, err = getSimpleText(a.reader, "City", a.out); err != nil {
		return st, err
	}
	st.IsActive = true
	return st, nil
}

func (a *App) AddStation(ctx context.Context) error {
	st, err := a.promptStation()
	if err != nil {
		return err
	}
	created, err := a.stations.Add(ctx, st)
	if err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return err
	}
	fmt.Fprintf(a.out, "Station %s created\n", created.ID)
	return nil
}

func (a *App) UpdateStation(ctx context.Context, id string) error {
	st, err := a.promptStation()
	if err != nil {
		return err
	}
	if _, err := a.stations.Update(ctx, id, st); err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return err
	}
	fmt.Fprintf(a.out, "Station %s updated\n", id)
	return nil
}

func (a *App) DeleteStation(ctx context.Context, id string) error {
	if err := a.stations.Delete(ctx, id); err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return err
	}
	fmt.Fprintf(a.out, "Station %s deleted\n", id)
	return nil
}

func (a *App) promptSlot() (models.Slot, error) {
	var sl models.Slot
	var err error

	if sl.StationID, err = getSimpleText(a.reader, "Station id", a.out); err != nil {
		return sl, err
	}
	if sl.Name, err = getSimpleText(a.reader, "Slot name", a.out); err != nil {
		return sl, err
	}
	if sl.ChargerType, err = getSimpleText(a.reader, "Charger type", a.out); err != nil {
		return sl, err
	}

	power, err := getSimpleText(a.reader, "Power (kW)", a.out)
	if err != nil {
		return sl, err
	}
	if sl.PowerKW, err = strconv.ParseFloat(power, 64); err != nil {
		fmt.Fprintln(a.out, "Invalid power:", err)
		return sl, err
	}

	price, err := getSimpleText(a.reader, "Price per kWh", a.out)
	if err != nil {
		return sl, err
	}
	if sl.PricePerKWH, err = strconv.ParseFloat(price, 64); err != nil {
		fmt.Fprintln(a.out, "Invalid price:", err)
		return sl, err
	}

	sl.IsAvailable = true
	return sl, nil
}

func (a *App) AddSlot(ctx context.Context) error {
	sl, err := a.promptSlot()
	if err != nil {
		return err
	}
	created, err := a.stations.AddSlot(ctx, sl)
	if err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return err
	}
	fmt.Fprintf(a.out, "Slot %s created\n", created.ID)
	return nil
}

func (a *App) UpdateSlot(ctx context.Context, id string) error {
	sl, err := a.promptSlot()
	if err != nil {
		return err
	}
	if _, err := a.stations.UpdateSlot(ctx, id, sl); err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return err
	}
	fmt.Fprintf(a.out, "Slot %s updated\n", id)
	return nil
}

func (a *App) DeleteSlot(ctx context.Context, id string) error {
	if err := a.stations.DeleteSlot(ctx, id); err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return err
	}
	fmt.Fprintf(a.out, "Slot %s deleted\n", id)
	return nil
}
