package handlers

import (
	"net/http"

	"seaboat-backend/internal/config"
	"seaboat-backend/internal/http/middleware"
	"seaboat-backend/internal/repositories"
	"seaboat-backend/internal/services"

	"github.com/gin-gonic/gin"
)

func seatService(c *gin.Context) services.SeatService {
	return services.SeatService{
		SeatRepo:  repositories.SeatRepository{DB: config.DB},
		TripRepo:  repositories.TripRepository{DB: config.DB},
		BoatRepo:  repositories.BoatRepository{DB: config.DB},
		RequestID: middleware.GetRequestID(c),
	}
}

// GET /api/seats/trip/:tripId mengembalikan kursi satu trip beserta susunan
// baris tampilan 2 kiri / 2 kanan.
func GetSeatsByTrip(c *gin.Context) {
	tripID, ok := ParamID(c, "tripId")
	if !ok {
		return
	}
	seats, layout, err := seatService(c).LayoutForTrip(tripID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"trip_id": tripID,
		"seats":   seats,
		"layout":  layout,
	})
}

type generateSeatsRequest struct {
	TripID      int64  `json:"trip_id"`
	Rows        int    `json:"rows"`
	SeatsPerRow int    `json:"seats_per_row"`
	SeatNumber  string `json:"seat_number"` // bentuk lama: satu kursi per request
	IsAvailable *bool  `json:"is_available"`
}

// POST /api/seats membuat kursi untuk satu trip. Payload dengan seat_number
// membuat satu kursi (bentuk lama, klien yang melakukan loop); tanpa itu
// seluruh denah dibuat sekaligus, rows kosong diturunkan dari kapasitas kapal.
func GenerateSeats(c *gin.Context) {
	var req generateSeatsRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	if req.SeatNumber != "" {
		available := true
		if req.IsAvailable != nil {
			available = *req.IsAvailable
		}
		seat, err := seatService(c).CreateOne(req.TripID, req.SeatNumber, available)
		if err != nil {
			RespondDomainError(c, err)
			return
		}
		c.JSON(http.StatusCreated, seat)
		return
	}

	result, err := seatService(c).GenerateForTrip(req.TripID, req.Rows, req.SeatsPerRow)
	if err != nil {
		// kursi yang sempat tersimpan sebelum gagal tetap dilaporkan
		if len(result.Created) > 0 {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":   "sebagian kursi gagal disimpan, reset lalu generate ulang",
				"created": result.Created,
			})
			return
		}
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, result)
}

// DELETE /api/seats/trip/:tripId
func ResetSeats(c *gin.Context) {
	tripID, ok := ParamID(c, "tripId")
	if !ok {
		return
	}
	deleted, err := seatService(c).ResetTrip(tripID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "kursi trip dihapus",
		"deleted": deleted,
	})
}
