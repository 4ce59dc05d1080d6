package models

// ServiceCategory membedakan lini layanan kapal.
const (
	CategorySeaboat   = "seaboat"
	CategoryTiketboat = "tiketboat"
	CategoryHarbour   = "car-harbour"
)

type Boat struct {
	BoatID          int64  `json:"boat_id"`
	BoatName        string `json:"boat_name"`
	Capacity        int    `json:"capacity"`
	ServiceCategory string `json:"service_category"`
	ImageURL        string `json:"image_url,omitempty"`
}
