package routes

import (
	"net/http"
	"time"

	"voyago/handlers"
	"voyago/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterWizardRoutes sets up the booking wizard endpoints.
func RegisterWizardRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/wizard")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.POST("/:kind/:productID/session", hb.Wizard.StartSession)
		api.GET("/session/:sessionID", hb.Wizard.GetSession)
		api.POST("/session/:sessionID/advance", hb.Wizard.Advance)
		api.POST("/session/:sessionID/retreat", hb.Wizard.Retreat)
		api.POST("/session/:sessionID/submit", hb.Wizard.Submit)
		api.DELETE("/session/:sessionID", hb.Wizard.Cancel)
	}
}

// RegisterCatalogRoutes sets up public product lookups.
func RegisterCatalogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/products")
	{
		api.GET("/:kind/:productID", hb.Catalog.GetProduct)
		api.GET("/:kind/:productID/units", hb.Catalog.QueryUnits)
	}
}

// RegisterTripRoutes sets up the saved-trip endpoints.
func RegisterTripRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/trips")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.GET("", hb.Trips.List)
		api.POST("", hb.Trips.Create)
	}
}

// RegisterBookingRoutes sets up the confirmed-booking endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.GET("", hb.Bookings.List)
		api.GET("/:bookingID", hb.Bookings.Get)
		api.DELETE("/:bookingID", hb.Bookings.Cancel)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Voyago"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.RateLimitMiddleware())

	RegisterHealthRoute(r)
	RegisterCatalogRoutes(r, hb)
	RegisterWizardRoutes(r, hb)
	RegisterTripRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
}
