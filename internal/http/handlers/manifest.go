package handlers

import (
	"net/http"
	"strings"

	"seaboat-backend/internal/domain/models"
	"seaboat-backend/internal/http/middleware"
	"seaboat-backend/internal/services"

	"github.com/gin-gonic/gin"
)

// GET /api/booking_orders/manifest?source_type=FASTBOAT
// Mengunduh PDF manifest penumpang untuk order berstatus Cek-in,
// dengan filter yang sama seperti daftar dashboard.
func DownloadManifest(c *gin.Context) {
	sourceType := strings.ToUpper(strings.TrimSpace(c.Query("source_type")))
	if sourceType != models.SourceTour {
		sourceType = models.SourceFastboat
	}

	svc := services.ManifestService{
		Orders:    orderService(c),
		RequestID: middleware.GetRequestID(c),
	}
	pdf, filename, err := svc.ExportCheckIn(sourceType, orderFiltersFromQuery(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}
