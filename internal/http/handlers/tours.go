package handlers

import (
	"net/http"

	"seaboat-backend/internal/config"
	"seaboat-backend/internal/domain/models"
	"seaboat-backend/internal/repositories"
	"seaboat-backend/internal/utils"

	"github.com/gin-gonic/gin"
)

func tourRepo() repositories.TourRepository {
	return repositories.TourRepository{DB: config.DB}
}

func validServiceType(s string) bool {
	return s == models.ServiceTour || s == models.ServiceYacht || s == models.ServiceFishing
}

// GET /api/tours?service_type=YACHT
func GetTours(c *gin.Context) {
	tours, err := tourRepo().List(c.Query("service_type"))
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "gagal mengambil data tour", err)
		return
	}
	c.JSON(http.StatusOK, tours)
}

// GET /api/tours/:id
func GetTourByID(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}
	tour, err := tourRepo().GetByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, tour)
}

// POST /api/tours
func CreateTour(c *gin.Context) {
	var input models.Tour
	if !BindJSONOrError(c, &input) {
		return
	}
	input.Name = utils.NormalizeSpace(input.Name)
	if input.Name == "" {
		RespondError(c, http.StatusBadRequest, "nama paket wajib diisi", nil)
		return
	}
	if !validServiceType(input.ServiceType) {
		input.ServiceType = models.ServiceTour
	}

	id, err := tourRepo().Create(input)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "gagal menyimpan paket tour", err)
		return
	}
	input.ID = id
	c.JSON(http.StatusCreated, input)
}

// PUT /api/tours/:id
func UpdateTour(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}
	var input models.Tour
	if !BindJSONOrError(c, &input) {
		return
	}
	input.ID = id
	if !validServiceType(input.ServiceType) {
		input.ServiceType = models.ServiceTour
	}

	if err := tourRepo().Update(input); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, input)
}

// DELETE /api/tours/:id
func DeleteTour(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}
	if err := tourRepo().Delete(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "paket tour dihapus"})
}
