package handlers

import (
	"net/http"
	"strconv"

	"seaboat-backend/internal/booking"
	"seaboat-backend/internal/config"
	"seaboat-backend/internal/http/middleware"
	"seaboat-backend/internal/repositories"
	"seaboat-backend/internal/services"

	"github.com/gin-gonic/gin"
)

// GET /api/availability?boat_id=&route_from=&route_to=&trip_date=&etd=
// Trip yang sudah lewat bukan error: 200 dengan available_seats 0 dan
// trip_passed true, biar form bisa menampilkan alasannya.
func CheckAvailability(c *gin.Context) {
	boatID, _ := strconv.ParseInt(c.Query("boat_id"), 10, 64)
	sel := booking.Selection{
		BoatID:    boatID,
		RouteFrom: c.Query("route_from"),
		RouteTo:   c.Query("route_to"),
		TripDate:  c.Query("trip_date"),
		ETD:       c.Query("etd"),
	}

	svc := services.AvailabilityService{
		TripRepo:    repositories.TripRepository{DB: config.DB},
		BookingRepo: repositories.BookingRepository{DB: config.DB},
		RequestID:   middleware.GetRequestID(c),
	}
	avail, err := svc.Check(sel)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, avail)
}
