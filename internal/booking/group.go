package booking

import (
	"strings"

	"seaboat-backend/internal/domain/models"
)

// GroupKey menentukan kunci penggabungan sebuah baris booking.
// Order buatan admin tidak pernah digabung dengan baris lain: kuncinya
// "admin-<order_id>" sehingga satu baris = satu order. Baris lain digabung
// bila tanggal trip, jam, kapal, rute, agen dan created_at semuanya sama.
func GroupKey(row models.BookingRow) string {
	if row.IsAdminOrder {
		return "admin-" + row.OrderID
	}
	return strings.Join([]string{
		row.TripDate,
		row.ETD,
		row.BoatName,
		row.TripRoute,
		row.UserID,
		row.CreatedAt,
	}, "|")
}

// GroupOrders menggabungkan baris booking mentah menjadi order logis.
// Hasilnya stabil: urutan mengikuti kemunculan pertama tiap kunci, dan
// penumpang ditambahkan sesuai urutan input. Field non-agregat memakai nilai
// baris pertama yang terlihat.
func GroupOrders(requestID string, rows []models.BookingRow) []models.Order {
	if len(rows) == 0 {
		return nil
	}

	index := make(map[string]int, len(rows))
	orders := make([]models.Order, 0, len(rows))

	for _, row := range rows {
		key := GroupKey(row)
		passengers := DecodePassengers(requestID, row.PassengerData)

		if at, ok := index[key]; ok {
			order := &orders[at]
			order.BookingIDs = append(order.BookingIDs, row.BookingID)
			order.Seats += row.Seats
			order.TotalPrice += row.TotalPrice
			order.Passengers = append(order.Passengers, passengers...)
			appendNote(order, row.AgentNotes)
			continue
		}

		order := models.Order{
			GroupKey:      key,
			BookingIDs:    []int64{row.BookingID},
			OrderID:       row.OrderID,
			IsAdminOrder:  row.IsAdminOrder,
			UserID:        row.UserID,
			AgentName:     row.AgentName,
			TripDate:      row.TripDate,
			ETD:           row.ETD,
			BoatName:      row.BoatName,
			TripRoute:     row.TripRoute,
			TourName:      row.TourName,
			ServiceType:   row.ServiceType,
			SourceType:    row.SourceType,
			Seats:         row.Seats,
			PassengerType: row.PassengerType,
			Status:        row.Status,
			Passengers:    passengers,
			TotalPrice:    row.TotalPrice,
			CreatedAt:     row.CreatedAt,
		}
		appendNote(&order, row.AgentNotes)
		index[key] = len(orders)
		orders = append(orders, order)
	}

	return orders
}

// appendNote menambah catatan agen sekali saja; catatan identik pada baris
// yang digabung tidak diduplikasi.
func appendNote(order *models.Order, note string) {
	note = strings.TrimSpace(note)
	if note == "" {
		return
	}
	for _, existing := range order.AgentNotes {
		if existing == note {
			return
		}
	}
	order.AgentNotes = append(order.AgentNotes, note)
}
