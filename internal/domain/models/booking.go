package models

// Status pemesanan: hanya dua state, ditoggle manual oleh operator.
const (
	StatusBooked  = "Booked"
	StatusCheckIn = "Cek-in"
)

const (
	SourceFastboat = "FASTBOAT"
	SourceTour     = "TOUR"
)

const (
	PassengerAdult = "adult"
	PassengerChild = "child"

	NationalityDomestic = "domestic"
	NationalityForeign  = "foreign"
)

// Passenger adalah satu penumpang di dalam passengers_data.
type Passenger struct {
	FullName    string `json:"fullName"`
	Type        string `json:"type"` // adult / child
	Nationality string `json:"nationality,omitempty"`
}

// BookingRow adalah satu baris mentah hasil satu submit pemesanan.
// Beberapa baris bisa merupakan satu order logis; lihat booking.GroupOrders.
type BookingRow struct {
	BookingID     int64  `json:"booking_id"`
	OrderID       string `json:"order_id,omitempty"`
	IsAdminOrder  bool   `json:"is_admin_order"`
	UserID        string `json:"user_id"` // kode agen
	AgentName     string `json:"agent_name"`
	TripID        int64  `json:"trip_id"`
	TripDate      string `json:"trip_date"`
	ETD           string `json:"etd"`
	BoatName      string `json:"boat_name"`
	TripRoute     string `json:"trip_route"`
	TourName      string `json:"tour_name,omitempty"`
	ServiceType   string `json:"service_type,omitempty"`
	SourceType    string `json:"source_type"`
	Seats         int    `json:"seats"`
	AdultSeats    int    `json:"adult_seats"`
	ChildSeats    int    `json:"child_seats"`
	PassengerType string `json:"passenger_type"` // domestic / foreign
	Status        string `json:"status"`
	PassengerData string `json:"passengers_data"` // JSON array, kadang double-encoded
	AgentNotes    string `json:"agent_notes,omitempty"`
	TotalPrice    int64  `json:"total_price"`
	CreatedAt     string `json:"created_at"`
}

// Order adalah satu pemesanan logis hasil penggabungan BookingRow.
type Order struct {
	GroupKey      string      `json:"group_key"`
	BookingIDs    []int64     `json:"booking_ids"`
	OrderID       string      `json:"order_id,omitempty"`
	IsAdminOrder  bool        `json:"is_admin_order"`
	UserID        string      `json:"user_id"`
	AgentName     string      `json:"agent_name"`
	TripDate      string      `json:"trip_date"`
	ETD           string      `json:"etd"`
	BoatName      string      `json:"boat_name"`
	TripRoute     string      `json:"trip_route"`
	TourName      string      `json:"tour_name,omitempty"`
	ServiceType   string      `json:"service_type,omitempty"`
	SourceType    string      `json:"source_type"`
	Seats         int         `json:"seats"`
	PassengerType string      `json:"passenger_type"`
	Status        string      `json:"status"`
	Passengers    []Passenger `json:"all_passenger_data"`
	AgentNotes    []string    `json:"agent_notes"`
	TotalPrice    int64       `json:"total_price"`
	CreatedAt     string      `json:"created_at"`
}
