package models

const (
	ServiceTour    = "TOUR"
	ServiceYacht   = "YACHT"
	ServiceFishing = "FISHING"
)

// Tour mencakup paket tour, yacht charter dan fishing trip; dibedakan lewat
// ServiceType. Field list (highlights dst) disimpan sebagai kolom JSON.
type Tour struct {
	ID                 int64    `json:"id"`
	Name               string   `json:"name"`
	ServiceType        string   `json:"service_type"`
	Overview           string   `json:"overview"`
	Highlights         []string `json:"highlights"`
	Itinerary          []string `json:"trip_itinerary"`
	Inclusions         []string `json:"inclusions"`
	Exclusions         []string `json:"exclusions"`
	PriceDomesticAdult int64    `json:"price_domestic_adult"`
	PriceDomesticChild int64    `json:"price_domestic_child"`
	PriceForeignAdult  int64    `json:"price_foreigner_adult"`
	PriceForeignChild  int64    `json:"price_foreigner_child"`
	Images             []string `json:"images"`
}
