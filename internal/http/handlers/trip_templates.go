package handlers

import (
	"net/http"

	"seaboat-backend/internal/config"
	"seaboat-backend/internal/domain/models"
	"seaboat-backend/internal/repositories"

	"github.com/gin-gonic/gin"
)

func tripTemplateRepo() repositories.TripTemplateRepository {
	return repositories.TripTemplateRepository{DB: config.DB}
}

// GET /api/tripboats/templates
func GetTripTemplates(c *gin.Context) {
	templates, err := tripTemplateRepo().List()
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "gagal mengambil template trip", err)
		return
	}
	c.JSON(http.StatusOK, templates)
}

// POST /api/tripboats/templates
func CreateTripTemplate(c *gin.Context) {
	var input models.TripTemplate
	if !BindJSONOrError(c, &input) {
		return
	}
	if input.BoatID <= 0 || input.RouteFrom == "" || input.RouteTo == "" || input.ETD == "" {
		RespondError(c, http.StatusBadRequest, "kapal, rute dan jam keberangkatan wajib diisi", nil)
		return
	}
	if input.TripType != models.TripTypeReturn {
		input.TripType = models.TripTypeOneWay
	}

	id, err := tripTemplateRepo().Create(input)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "gagal menyimpan template trip", err)
		return
	}
	input.TemplateID = id
	c.JSON(http.StatusCreated, input)
}

// PUT /api/tripboats/templates/:id
func UpdateTripTemplate(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}
	var input models.TripTemplate
	if !BindJSONOrError(c, &input) {
		return
	}
	input.TemplateID = id

	if err := tripTemplateRepo().Update(input); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, input)
}

// DELETE /api/tripboats/templates/:id
func DeleteTripTemplate(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}
	if err := tripTemplateRepo().Delete(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "template trip dihapus"})
}
