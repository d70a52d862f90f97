package router

import (
	"net/http"

	"github.com/23F3001886/CleanEarth/internal/config"
	"github.com/23F3001886/CleanEarth/internal/handler"
	"github.com/23F3001886/CleanEarth/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
	"gorm.io/gorm"
)

// SetupRouter configures the Gin engine and every API route.
func SetupRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Welcome to CleanEarth API"})
	})

	api := r.Group("/api")

	jwtSecret := cfg.JWT.Secret
	authHandler := handler.NewAuthHandler(db, jwtSecret, cfg.JWT.Issuer, cfg.JWT.ExpireHours)

	// login/register are open but rate limited per IP
	authLimit := middleware.NewRateLimiter(cfg.RateLimit.AuthPerMinute).Handler()
	api.POST("/register", authLimit, authHandler.Register)
	api.POST("/login", authLimit, authHandler.Login)

	// the leaderboard is a public page
	api.GET("/leaderboard", handler.Leaderboard(db))

	protected := api.Group("")
	protected.Use(
		middleware.Auth(jwtSecret, db),
		middleware.Audit(db),
	)

	protected.POST("/logout", authHandler.Logout)
	protected.GET("/auth-check", authHandler.AuthCheck)
	protected.GET("/profile", handler.GetProfile)
	protected.PUT("/profile", handler.UpdateProfile(db))
	protected.GET("/badges", handler.ListBadges(db))

	requestHandler := handler.NewRequestHandler(db)
	protected.POST("/request_register", requestHandler.Create)
	protected.GET("/user_requests", requestHandler.ListOwn)
	protected.GET("/volunteer_requests", requestHandler.ListForVolunteer)
	protected.GET("/managerequest", requestHandler.Manage)
	protected.GET("/request/:id", requestHandler.GetByID)

	campHandler := handler.NewCampHandler(db)
	protected.POST("/camp_register", campHandler.Register)
	protected.GET("/managecamp", campHandler.Manage)
	protected.PUT("/managecamp", campHandler.Update)
	protected.DELETE("/managecamp", campHandler.Delete)
	protected.GET("/user_camps", campHandler.ListForUser)
	protected.GET("/volunteer_camps", campHandler.ListForVolunteer)
	protected.POST("/camp_participate/:id", campHandler.Participate)
	protected.POST("/join-campaign/:id", campHandler.Join)
	protected.POST("/leave-campaign/:id", campHandler.Leave)
	protected.POST("/camp_respond/:id", campHandler.Respond)
	protected.POST("/complete-camp/:id", campHandler.Complete)
	protected.POST("/complete-campaign/:id", campHandler.MarkCompleted)

	admin := protected.Group("/admin")
	admin.Use(middleware.RequireRole("admin"))

	adminHandler := handler.NewAdminHandler(db)
	admin.GET("/users", adminHandler.ListUsers)
	admin.POST("/toggle_block/:id", adminHandler.ToggleBlock)
	admin.POST("/award_badge", adminHandler.AwardBadge)

	exportHandler := handler.NewExportHandler(db)
	admin.GET("/export/xlsx", exportHandler.ExportXLSX)

	return r
}

// WithCORS wraps the engine with the CORS layer for browser clients.
func WithCORS(cfg *config.Config, h http.Handler) http.Handler {
	origins := cfg.CORS.Origins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	return cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Authorization", "Content-Type", "Accept"},
		ExposedHeaders: []string{"Content-Disposition", "Content-Length"},
		MaxAge:         3600,
	}).Handler(h)
}
