package models

// Station is a charging station exposed by the backend.
type Station struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Address   string  `json:"address"`
	City      string  `json:"city"`
	Latitude  float64 `json:"latitude,omitempty"`
	Longitude float64 `json:"longitude,omitempty"`
	IsActive  bool    `json:"isActive"`
}

// Slot is a charging slot belonging to a station.
type Slot struct {
	ID          string  `json:"id"`
	StationID   string  `json:"stationId"`
	Name        string  `json:"name"`
	ChargerType string  `json:"chargerType,omitempty"`
	PowerKW     float64 `json:"powerKw,omitempty"`
	PricePerKWH float64 `json:"pricePerKwh,omitempty"`
	IsAvailable bool    `json:"isAvailable"`
}
