package api

import (
	"log"
	stdhttp "net/http"

	intconfig "seaboat-backend/internal/config"
	h "seaboat-backend/internal/http/handlers"
	"seaboat-backend/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

func NewRouter(env intconfig.Env) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS(env.CORSAllowedOrigins))

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.OPTIONS("/*path", func(c *gin.Context) { c.AbortWithStatus(stdhttp.StatusNoContent) })

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route tidak ditemukan",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	h.SetJWTSecret(env.JWTSecret)
	authRequired := middleware.RequireAuth(env.JWTSecret)
	adminOnly := middleware.RequireRoles("admin")

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", h.DBCheck)
		api.GET("/routes", h.Routes)

		// Auth
		auth := api.Group("/auth")
		auth.POST("/login", h.Login)
		auth.POST("/register", authRequired, adminOnly, h.Register)

		// Boats (seaboat/harbour)
		boats := api.Group("/boats", authRequired)
		boats.GET("", h.GetBoats)
		boats.GET("/:id", h.GetBoatByID)
		boats.POST("", adminOnly, h.CreateBoat)
		boats.PUT("/:id", adminOnly, h.UpdateBoat)
		boats.DELETE("/:id", adminOnly, h.DeleteBoat)

		// Tiketboats (lini tiket reguler, tabel boats juga)
		tiketboats := api.Group("/tiketboats", authRequired)
		tiketboats.GET("", h.GetTiketboats)
		tiketboats.POST("", adminOnly, h.CreateTiketboat)
		tiketboats.PUT("/:id", adminOnly, h.UpdateTiketboat)
		tiketboats.DELETE("/:id", adminOnly, h.DeleteTiketboat)

		// Trips harian + jadwal
		trips := api.Group("/trips", authRequired)
		trips.GET("", h.GetTrips)
		trips.GET("/schedules", h.GetTripSchedules)
		trips.POST("", adminOnly, h.CreateTripSeries)
		trips.PUT("/:id", adminOnly, h.UpdateTrip)
		trips.DELETE("/series", adminOnly, h.DeleteTripSeries)

		// Trip templates
		templates := api.Group("/tripboats/templates", authRequired)
		templates.GET("", h.GetTripTemplates)
		templates.POST("", adminOnly, h.CreateTripTemplate)
		templates.PUT("/:id", adminOnly, h.UpdateTripTemplate)
		templates.DELETE("/:id", adminOnly, h.DeleteTripTemplate)

		// Seats
		seats := api.Group("/seats", authRequired)
		seats.GET("/trip/:tripId", h.GetSeatsByTrip)
		seats.POST("", adminOnly, h.GenerateSeats)
		seats.DELETE("/trip/:tripId", adminOnly, h.ResetSeats)

		// Agents
		agens := api.Group("/agens", authRequired)
		agens.GET("", h.GetAgents)
		agens.POST("", adminOnly, h.CreateAgent)
		agens.PUT("/:id", adminOnly, h.UpdateAgent)
		agens.DELETE("/:id", adminOnly, h.DeleteAgent)

		// Tours / yacht / fishing
		tours := api.Group("/tours", authRequired)
		tours.GET("", h.GetTours)
		tours.GET("/:id", h.GetTourByID)
		tours.POST("", adminOnly, h.CreateTour)
		tours.PUT("/:id", adminOnly, h.UpdateTour)
		tours.DELETE("/:id", adminOnly, h.DeleteTour)

		// Availability
		api.GET("/availability", authRequired, h.CheckAvailability)

		// Orders
		api.POST("/cart/admin/create-order", authRequired, h.CreateAdminOrder)
		orders := api.Group("/booking_orders", authRequired)
		orders.GET("/all", h.GetFastboatOrders)
		orders.GET("/alltour", h.GetTourOrders)
		orders.GET("/manifest", h.DownloadManifest)
		orders.DELETE("/bulk-delete", adminOnly, h.BulkDeleteBookingOrders)
		orders.DELETE("/:id", adminOnly, h.DeleteBookingOrder)

		bookingGroup := api.Group("/booking", authRequired)
		bookingGroup.PUT("/update-status/:id", h.UpdateBookingStatus)
		bookingGroup.PUT("/bulk-update", h.BulkUpdateBookingStatus)
	}

	h.SetRouter(r)
	return r
}
