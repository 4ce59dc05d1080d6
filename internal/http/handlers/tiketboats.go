package handlers

import (
	"net/http"

	"seaboat-backend/internal/domain/models"

	"github.com/gin-gonic/gin"
)

// Tiketboat adalah kapal untuk lini tiket reguler; tabelnya sama dengan
// boats, dibedakan lewat service_category.

// GET /api/tiketboats
func GetTiketboats(c *gin.Context) {
	boats, err := boatRepo().List(models.CategoryTiketboat)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "gagal mengambil data kapal tiket", err)
		return
	}
	c.JSON(http.StatusOK, boats)
}

// POST /api/tiketboats
func CreateTiketboat(c *gin.Context) {
	var input models.Boat
	if !BindJSONOrError(c, &input) {
		return
	}
	if input.BoatName == "" || input.Capacity <= 0 {
		RespondError(c, http.StatusBadRequest, "nama kapal dan kapasitas wajib diisi", nil)
		return
	}
	input.ServiceCategory = models.CategoryTiketboat

	id, err := boatRepo().Create(input)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "gagal menyimpan kapal tiket", err)
		return
	}
	input.BoatID = id
	c.JSON(http.StatusCreated, input)
}

// PUT /api/tiketboats/:id
func UpdateTiketboat(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}
	var input models.Boat
	if !BindJSONOrError(c, &input) {
		return
	}
	input.BoatID = id
	input.ServiceCategory = models.CategoryTiketboat

	if err := boatRepo().Update(input); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, input)
}

// DELETE /api/tiketboats/:id
func DeleteTiketboat(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}
	if err := boatRepo().Delete(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "kapal tiket dihapus"})
}
