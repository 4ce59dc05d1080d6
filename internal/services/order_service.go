package services

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"seaboat-backend/internal/booking"
	"seaboat-backend/internal/domain"
	"seaboat-backend/internal/domain/models"
	"seaboat-backend/internal/repositories"
	"seaboat-backend/internal/utils"
)

// OrderService menangani order buatan admin dan daftar order untuk dashboard.
type OrderService struct {
	BookingRepo repositories.BookingRepository
	TripRepo    repositories.TripRepository
	AgentRepo   repositories.AgentRepository
	RequestID   string

	// Now dan NewOrderID bisa diganti di test; nil memakai time.Now / uuid.
	Now        func() time.Time
	NewOrderID func() string
}

func (s OrderService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s OrderService) newOrderID() string {
	if s.NewOrderID != nil {
		return s.NewOrderID()
	}
	return uuid.NewString()
}

// CreateOrderInput adalah payload form order admin.
type CreateOrderInput struct {
	BoatID      int64    `json:"boat_id"`
	RouteFrom   string   `json:"route_from"`
	RouteTo     string   `json:"route_to"`
	TripDate    string   `json:"trip_date"`
	ETD         string   `json:"etd"`
	KodeAgen    string   `json:"kode_agen"`
	Adults      int      `json:"adults"`
	Children    int      `json:"children"`
	Nationality string   `json:"nationality"` // domestic / foreign
	Names       []string `json:"passenger_names"`
	AgentNotes  string   `json:"agent_notes"`
	Status      string   `json:"status"`
	TotalPrice  int64    `json:"total_price"`
	// beberapa form lama mengirim harga sebagai teks "Rp 1.500.000"
	TotalPriceText string `json:"total_price_text,omitempty"`
}

// CreateAdminOrder memvalidasi ulang ketersediaan tepat sebelum menyimpan,
// karena form bisa dibiarkan terbuka lama. Satu submit = satu baris
// booking_orders dengan order_id unik, tidak pernah digabung dengan baris lain.
func (s OrderService) CreateAdminOrder(in CreateOrderInput) (models.BookingRow, error) {
	var row models.BookingRow

	sel := booking.Selection{
		BoatID:    in.BoatID,
		RouteFrom: utils.TrimOrEmpty(in.RouteFrom),
		RouteTo:   utils.TrimOrEmpty(in.RouteTo),
		TripDate:  utils.TrimOrEmpty(in.TripDate),
		ETD:       utils.TrimOrEmpty(in.ETD),
	}

	agent, err := s.AgentRepo.GetByKode(utils.TrimOrEmpty(in.KodeAgen))
	if err != nil {
		if domain.IsNotFound(err) {
			return row, domain.ValidationError{Field: "agent", Msg: "agen tidak ditemukan, mohon pilih ulang agen"}
		}
		return row, err
	}

	avail := AvailabilityService{TripRepo: s.TripRepo, BookingRepo: s.BookingRepo, RequestID: s.RequestID, Now: s.Now}
	result, err := avail.Check(sel)
	if err != nil {
		return row, err
	}

	if err := booking.ValidateSubmit(sel, agent.Nama, in.Adults, in.Children, result.AvailableSeats, s.now()); err != nil {
		return row, err
	}

	status := utils.TrimOrEmpty(in.Status)
	if status == "" {
		status = models.StatusBooked
	}
	if status != models.StatusBooked && status != models.StatusCheckIn {
		return row, domain.ValidationError{Field: "status", Msg: "status harus Booked atau Cek-in"}
	}

	nationality := in.Nationality
	if nationality != models.NationalityForeign {
		nationality = models.NationalityDomestic
	}

	totalPrice := in.TotalPrice
	if totalPrice == 0 && utils.TrimOrEmpty(in.TotalPriceText) != "" {
		parsed, err := utils.ParseRupiahToInt(in.TotalPriceText)
		if err != nil {
			return row, domain.ValidationError{Field: "total_price", Msg: "format harga tidak valid", Err: err}
		}
		totalPrice = parsed
	}

	roster := booking.BuildRoster(in.Names, in.Adults, in.Children, nationality)
	passengerData, err := json.Marshal(roster)
	if err != nil {
		return row, domain.InternalError{Msg: "tidak bisa menyimpan data penumpang", Err: err}
	}

	trip, _, err := s.TripRepo.FindByTuple(sel.BoatID, sel.RouteFrom, sel.RouteTo, sel.TripDate, sel.ETD)
	if err != nil {
		return row, err
	}

	row = models.BookingRow{
		OrderID:       s.newOrderID(),
		IsAdminOrder:  true,
		UserID:        agent.KodeAgen,
		AgentName:     agent.Nama,
		TripID:        trip.TripID,
		TripDate:      sel.TripDate,
		ETD:           sel.ETD,
		BoatName:      trip.BoatName,
		TripRoute:     sel.RouteFrom + " ke " + sel.RouteTo,
		SourceType:    models.SourceFastboat,
		Seats:         in.Adults + in.Children,
		AdultSeats:    in.Adults,
		ChildSeats:    in.Children,
		PassengerType: nationality,
		Status:        status,
		PassengerData: string(passengerData),
		AgentNotes:    utils.TrimOrEmpty(in.AgentNotes),
		TotalPrice:    totalPrice,
	}

	id, err := s.BookingRepo.Insert(row)
	if err != nil {
		return row, domain.InternalError{Msg: "tidak bisa menyimpan order", Err: err}
	}
	row.BookingID = id

	utils.LogEvent(s.RequestID, "order", "create_admin",
		fmt.Sprintf("booking_id=%d order_id=%s agen=%s seats=%d total=%s",
			id, row.OrderID, agent.KodeAgen, row.Seats, utils.FormatRupiah(row.TotalPrice)))
	return row, nil
}

// OrderFilters adalah filter daftar order di dashboard. Semua opsional;
// kosong berarti tidak memfilter.
type OrderFilters struct {
	BoatName      string
	Route         string
	ETD           string
	TripDate      string
	PassengerName string
	ServiceType   string // hanya untuk tab tour
}

// ListOrders mengambil, menggabungkan dan memfilter order untuk satu tab
// dashboard. Tab fastboat ketat: baris tanpa boat_name atau etd dibuang
// sebelum digabung, karena data lama sempat tercampur dengan baris tour.
func (s OrderService) ListOrders(sourceType string, f OrderFilters) ([]models.Order, error) {
	rows, err := s.BookingRepo.ListBySource(sourceType)
	if err != nil {
		return nil, domain.InternalError{Msg: "tidak bisa mengambil data order", Err: err}
	}

	if sourceType == models.SourceFastboat {
		kept := rows[:0]
		for _, row := range rows {
			if utils.TrimOrEmpty(row.BoatName) == "" || utils.TrimOrEmpty(row.ETD) == "" {
				continue
			}
			kept = append(kept, row)
		}
		rows = kept
	}

	orders := booking.GroupOrders(s.RequestID, rows)
	return filterOrders(orders, f), nil
}

func filterOrders(orders []models.Order, f OrderFilters) []models.Order {
	out := make([]models.Order, 0, len(orders))
	name := strings.ToLower(utils.TrimOrEmpty(f.PassengerName))
	for _, o := range orders {
		if f.BoatName != "" && o.BoatName != f.BoatName {
			continue
		}
		if f.Route != "" && o.TripRoute != f.Route {
			continue
		}
		if f.ETD != "" && o.ETD != f.ETD {
			continue
		}
		if f.TripDate != "" && o.TripDate != f.TripDate {
			continue
		}
		if f.ServiceType != "" && o.ServiceType != f.ServiceType {
			continue
		}
		if name != "" && !orderHasPassenger(o, name) {
			continue
		}
		out = append(out, o)
	}
	return out
}

func orderHasPassenger(o models.Order, lowered string) bool {
	for _, p := range o.Passengers {
		if strings.Contains(strings.ToLower(p.FullName), lowered) {
			return true
		}
	}
	return false
}

// ToggleStatus membalik status satu baris booking: Booked jadi Cek-in dan
// sebaliknya.
func (s OrderService) ToggleStatus(bookingID int64) (string, error) {
	row, err := s.BookingRepo.GetByID(bookingID)
	if err != nil {
		return "", err
	}
	next := models.StatusBooked
	if row.Status == models.StatusBooked {
		next = models.StatusCheckIn
	}
	if err := s.BookingRepo.UpdateStatus(bookingID, next); err != nil {
		return "", err
	}
	utils.LogEvent(s.RequestID, "order", "toggle_status",
		fmt.Sprintf("booking_id=%d %s -> %s", bookingID, row.Status, next))
	return next, nil
}

// UpdateStatus men-set status eksplisit untuk satu baris booking.
func (s OrderService) UpdateStatus(bookingID int64, status string) error {
	if status != models.StatusBooked && status != models.StatusCheckIn {
		return domain.ValidationError{Field: "status", Msg: "status harus Booked atau Cek-in"}
	}
	return s.BookingRepo.UpdateStatus(bookingID, status)
}

// BulkUpdateStatus men-set status untuk banyak baris sekaligus, dipakai
// aksi massal di dashboard.
func (s OrderService) BulkUpdateStatus(bookingIDs []int64, status string) (int64, error) {
	if len(bookingIDs) == 0 {
		return 0, domain.ValidationError{Field: "booking_ids", Msg: "pilih minimal satu order"}
	}
	if status != models.StatusBooked && status != models.StatusCheckIn {
		return 0, domain.ValidationError{Field: "status", Msg: "status harus Booked atau Cek-in"}
	}
	n, err := s.BookingRepo.BulkUpdateStatus(bookingIDs, status)
	if err != nil {
		return 0, domain.InternalError{Msg: "tidak bisa memperbarui status", Err: err}
	}
	utils.LogEvent(s.RequestID, "order", "bulk_update_status",
		fmt.Sprintf("ids=%d status=%s affected=%d", len(bookingIDs), status, n))
	return n, nil
}

// Delete menghapus satu baris booking.
func (s OrderService) Delete(bookingID int64) error {
	return s.BookingRepo.Delete(bookingID)
}

// BulkDelete menghapus banyak baris booking sekaligus.
func (s OrderService) BulkDelete(bookingIDs []int64) (int64, error) {
	if len(bookingIDs) == 0 {
		return 0, domain.ValidationError{Field: "booking_ids", Msg: "pilih minimal satu order"}
	}
	n, err := s.BookingRepo.BulkDelete(bookingIDs)
	if err != nil {
		return 0, domain.InternalError{Msg: "tidak bisa menghapus order", Err: err}
	}
	utils.LogEvent(s.RequestID, "order", "bulk_delete",
		fmt.Sprintf("ids=%d affected=%d", len(bookingIDs), n))
	return n, nil
}
