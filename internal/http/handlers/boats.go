package handlers

import (
	"net/http"

	"seaboat-backend/internal/config"
	"seaboat-backend/internal/domain/models"
	"seaboat-backend/internal/repositories"
	"seaboat-backend/internal/utils"

	"github.com/gin-gonic/gin"
)

func boatRepo() repositories.BoatRepository {
	return repositories.BoatRepository{DB: config.DB}
}

// GET /api/boats?service_category=seaboat
func GetBoats(c *gin.Context) {
	boats, err := boatRepo().List(c.Query("service_category"))
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "gagal mengambil data kapal", err)
		return
	}
	c.JSON(http.StatusOK, boats)
}

// GET /api/boats/:id
func GetBoatByID(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}
	boat, err := boatRepo().GetByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, boat)
}

// POST /api/boats
func CreateBoat(c *gin.Context) {
	var input models.Boat
	if !BindJSONOrError(c, &input) {
		return
	}
	input.BoatName = utils.NormalizeSpace(input.BoatName)
	if input.BoatName == "" || input.Capacity <= 0 {
		RespondError(c, http.StatusBadRequest, "nama kapal dan kapasitas wajib diisi", nil)
		return
	}
	if input.ServiceCategory == "" {
		input.ServiceCategory = models.CategorySeaboat
	}

	id, err := boatRepo().Create(input)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "gagal menyimpan kapal", err)
		return
	}
	input.BoatID = id
	c.JSON(http.StatusCreated, input)
}

// PUT /api/boats/:id
func UpdateBoat(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}
	var input models.Boat
	if !BindJSONOrError(c, &input) {
		return
	}
	input.BoatID = id

	if err := boatRepo().Update(input); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, input)
}

// DELETE /api/boats/:id
func DeleteBoat(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}
	if err := boatRepo().Delete(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "kapal dihapus"})
}
