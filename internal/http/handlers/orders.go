package handlers

import (
	"net/http"

	"seaboat-backend/internal/config"
	"seaboat-backend/internal/domain/models"
	"seaboat-backend/internal/http/middleware"
	"seaboat-backend/internal/repositories"
	"seaboat-backend/internal/services"

	"github.com/gin-gonic/gin"
)

func orderService(c *gin.Context) services.OrderService {
	return services.OrderService{
		BookingRepo: repositories.BookingRepository{DB: config.DB},
		TripRepo:    repositories.TripRepository{DB: config.DB},
		AgentRepo:   repositories.AgentRepository{DB: config.DB},
		RequestID:   middleware.GetRequestID(c),
	}
}

func orderFiltersFromQuery(c *gin.Context) services.OrderFilters {
	return services.OrderFilters{
		BoatName:      c.Query("boat_name"),
		Route:         c.Query("route"),
		ETD:           c.Query("etd"),
		TripDate:      c.Query("trip_date"),
		PassengerName: c.Query("passenger_name"),
		ServiceType:   c.Query("service_type"),
	}
}

// GET /api/booking_orders/all mengembalikan order fastboat yang sudah
// digabung per pemesanan logis.
func GetFastboatOrders(c *gin.Context) {
	orders, err := orderService(c).ListOrders(models.SourceFastboat, orderFiltersFromQuery(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

// GET /api/booking_orders/alltour
func GetTourOrders(c *gin.Context) {
	orders, err := orderService(c).ListOrders(models.SourceTour, orderFiltersFromQuery(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

// POST /api/cart/admin/create-order
func CreateAdminOrder(c *gin.Context) {
	var req services.CreateOrderInput
	if !BindJSONOrError(c, &req) {
		return
	}

	row, err := orderService(c).CreateAdminOrder(req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "order berhasil dibuat",
		"order":   row,
	})
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

// PUT /api/booking/update-status/:id mengganti status satu baris booking.
// Body kosong atau tanpa status berarti toggle Booked <-> Cek-in.
func UpdateBookingStatus(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}

	var req updateStatusRequest
	_ = c.ShouldBindJSON(&req)

	svc := orderService(c)
	if req.Status == "" {
		next, err := svc.ToggleStatus(id)
		if err != nil {
			RespondDomainError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "status diperbarui", "status": next})
		return
	}

	if err := svc.UpdateStatus(id, req.Status); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "status diperbarui", "status": req.Status})
}

type bulkStatusRequest struct {
	BookingIDs []int64 `json:"booking_ids"`
	Status     string  `json:"status"`
}

// PUT /api/booking/bulk-update
func BulkUpdateBookingStatus(c *gin.Context) {
	var req bulkStatusRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	affected, err := orderService(c).BulkUpdateStatus(req.BookingIDs, req.Status)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":  "status diperbarui",
		"affected": affected,
	})
}

// DELETE /api/booking_orders/:id
func DeleteBookingOrder(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}
	if err := orderService(c).Delete(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "order dihapus"})
}

type bulkDeleteRequest struct {
	BookingIDs []int64 `json:"booking_ids"`
}

// DELETE /api/booking_orders/bulk-delete
func BulkDeleteBookingOrders(c *gin.Context) {
	var req bulkDeleteRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	affected, err := orderService(c).BulkDelete(req.BookingIDs)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":  "order dihapus",
		"affected": affected,
	})
}
