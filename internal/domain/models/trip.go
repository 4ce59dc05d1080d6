package models

// Trip adalah satu keberangkatan harian: kapal + rute + jam pada tanggal tertentu.
type Trip struct {
	TripID    int64  `json:"trip_id"`
	BoatID    int64  `json:"boat_id"`
	BoatName  string `json:"boat_name"`
	RouteFrom string `json:"route_from"`
	RouteTo   string `json:"route_to"`
	TripDate  string `json:"trip_date"` // YYYY-MM-DD
	ETD       string `json:"etd"`       // HH:MM
	Remark    string `json:"remark,omitempty"`
}

// TripSchedule adalah view jadwal unik (boat+rute+etd) dengan jumlah hari,
// seperti yang dulu dihitung di layar Trips.
type TripSchedule struct {
	Trip
	DayCount int `json:"count"`
}

const (
	TripTypeOneWay = "one-way"
	TripTypeReturn = "return"
)

// TripTemplate adalah pola jadwal berulang yang jadi sumber trip harian.
type TripTemplate struct {
	TemplateID         int64  `json:"template_id"`
	BoatID             int64  `json:"boat_id"`
	BoatName           string `json:"boat_name"`
	RouteFrom          string `json:"route_from"`
	RouteTo            string `json:"route_to"`
	TripType           string `json:"trip_type"` // one-way / return
	ETD                string `json:"etd"`
	ETA                string `json:"eta"`
	PriceDomesticAdult int64  `json:"price_domestic_adult"`
	PriceDomesticChild int64  `json:"price_domestic_child"`
	PriceForeignAdult  int64  `json:"price_foreigner_adult"`
	PriceForeignChild  int64  `json:"price_foreigner_child"`
}
