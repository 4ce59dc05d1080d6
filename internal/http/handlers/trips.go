package handlers

import (
	"net/http"
	"strconv"

	"seaboat-backend/internal/config"
	"seaboat-backend/internal/domain/models"
	"seaboat-backend/internal/repositories"

	"github.com/gin-gonic/gin"
)

func tripRepo() repositories.TripRepository {
	return repositories.TripRepository{DB: config.DB}
}

// GET /api/trips
func GetTrips(c *gin.Context) {
	trips, err := tripRepo().List()
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "gagal mengambil data trip", err)
		return
	}
	c.JSON(http.StatusOK, trips)
}

// GET /api/trips/schedules mengembalikan jadwal unik (kapal+rute+jam)
// dengan jumlah hari, untuk tabel di layar Trips.
func GetTripSchedules(c *gin.Context) {
	schedules, err := tripRepo().ListSchedules()
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "gagal mengambil jadwal trip", err)
		return
	}
	c.JSON(http.StatusOK, schedules)
}

type createTripSeriesRequest struct {
	models.Trip
	Days int `json:"days"`
}

// POST /api/trips membuat satu jadwal sebagai deret trip harian,
// default 30 hari ke depan mulai hari ini.
func CreateTripSeries(c *gin.Context) {
	var req createTripSeriesRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	if req.BoatID <= 0 || req.RouteFrom == "" || req.RouteTo == "" || req.ETD == "" {
		RespondError(c, http.StatusBadRequest, "kapal, rute dan jam keberangkatan wajib diisi", nil)
		return
	}

	created, err := tripRepo().CreateSeries(req.Trip, req.Days)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "gagal menyimpan jadwal trip", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "jadwal trip dibuat",
		"created": created,
	})
}

// PUT /api/trips/:id
func UpdateTrip(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}
	var input models.Trip
	if !BindJSONOrError(c, &input) {
		return
	}
	input.TripID = id

	if err := tripRepo().Update(input); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, input)
}

type deleteTripSeriesRequest struct {
	BoatID    int64  `json:"boat_id"`
	RouteFrom string `json:"route_from"`
	RouteTo   string `json:"route_to"`
	ETD       string `json:"etd"`
}

// DELETE /api/trips/series?boat_id&route_from&route_to&etd menghapus semua
// trip harian satu jadwal, padanan tombol "Hapus Semua". Jadwal dikirim
// lewat query string; body JSON diterima sebagai fallback.
func DeleteTripSeries(c *gin.Context) {
	var req deleteTripSeriesRequest
	req.BoatID, _ = strconv.ParseInt(c.Query("boat_id"), 10, 64)
	req.RouteFrom = c.Query("route_from")
	req.RouteTo = c.Query("route_to")
	req.ETD = c.Query("etd")

	if req.BoatID <= 0 && req.RouteFrom == "" && req.RouteTo == "" && req.ETD == "" {
		_ = c.ShouldBindJSON(&req)
	}

	if req.BoatID <= 0 || req.RouteFrom == "" || req.RouteTo == "" || req.ETD == "" {
		RespondError(c, http.StatusBadRequest, "kapal, rute dan jam keberangkatan wajib diisi", nil)
		return
	}

	deleted, err := tripRepo().DeleteSeries(req.BoatID, req.RouteFrom, req.RouteTo, req.ETD)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "gagal menghapus jadwal trip", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "jadwal trip dihapus",
		"deleted": deleted,
	})
}
