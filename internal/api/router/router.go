package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/tlodholz/OpsReadyAPI/config"
	"github.com/tlodholz/OpsReadyAPI/internal/api/handler"
	"github.com/tlodholz/OpsReadyAPI/internal/api/middleware"
	"github.com/tlodholz/OpsReadyAPI/pkg/jwt"
	"github.com/tlodholz/OpsReadyAPI/pkg/redis"
)

// multipart framing allowance on top of the file itself
const importOverhead = 1 << 20

// Setup builds the gin engine with every route registered
func Setup(cfg *config.Config, h *handler.Handler, jwtMgr *jwt.Manager, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── global middleware ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.SecurityHeaders(cfg.Server.HSTSMaxAge))

	// ── health ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	jsonLimit := middleware.BodyLimit(cfg.Server.BodyLimit)

	// anonymous callers are allowed; a valid token only names the actor
	api := r.Group("/api")
	api.Use(middleware.OptionalJWTAuth(jwtMgr, rdb, logger))
	{
		auth := api.Group("/auth", jsonLimit)
		{
			auth.POST("/register", h.Auth.Register)
			auth.POST("/login", middleware.RateLimit(rdb, cfg.Server.LoginLimit, cfg.Server.LoginWindow, logger), h.Auth.Login)
			auth.POST("/logout", middleware.JWTAuth(jwtMgr, rdb, logger), h.Auth.Logout)
			auth.GET("/users", middleware.JWTAuth(jwtMgr, rdb, logger), middleware.RoleAuth("Admin"), h.Auth.ListUsers)
		}

		profiles := api.Group("/userprofile", jsonLimit)
		{
			profiles.GET("", h.UserProfile.List)
			profiles.GET("/:id", h.UserProfile.Get)
			profiles.POST("", h.UserProfile.Create)
			profiles.PUT("/:id", h.UserProfile.Update)
			profiles.DELETE("/:id", h.UserProfile.Delete)
		}

		// import carries its own larger limit, so the group has none
		events := api.Group("/trainingevent")
		{
			events.GET("", h.TrainingEvent.List)
			events.GET("/calendar.ics", h.TrainingEvent.Calendar)
			events.GET("/:id", h.TrainingEvent.Get)
			events.POST("", jsonLimit, h.TrainingEvent.Create)
			events.POST("/import", middleware.BodyLimit(handler.ICSUploadLimit+importOverhead), h.TrainingEvent.Import)
			events.PUT("/:id", jsonLimit, h.TrainingEvent.Update)
			events.DELETE("/:id", h.TrainingEvent.Delete)
		}

		assignments := api.Group("/trainingassignment", jsonLimit)
		{
			assignments.POST("", h.TrainingAssignment.Assign)
			assignments.PUT("/:id", h.TrainingAssignment.Update)
			assignments.GET("/event/:eventId/profiles", h.TrainingAssignment.EventProfiles)
			assignments.GET("/event/:eventId/records", h.TrainingAssignment.EventRecords)
			assignments.GET("/event/:eventId/records/export", h.Export.ExportEventRecords)
			assignments.GET("/user/:userId/records", h.TrainingAssignment.UserRecords)
		}

		records := api.Group("/trainingrecord", jsonLimit)
		{
			records.GET("", h.TrainingRecord.List)
			records.GET("/:id", h.TrainingRecord.Get)
			records.POST("", h.TrainingRecord.Create)
			records.PUT("/:id", h.TrainingRecord.Update)
			records.DELETE("/:id", h.TrainingRecord.Delete)
		}

		vehicles := api.Group("/vehicle", jsonLimit)
		{
			vehicles.GET("", h.Vehicle.List)
			vehicles.GET("/:id", h.Vehicle.Get)
			vehicles.POST("", h.Vehicle.Create)
			vehicles.PUT("/:id", h.Vehicle.Update)
			vehicles.DELETE("/:id", h.Vehicle.Delete)
		}

		maintenance := api.Group("/vehiclemaintenance", jsonLimit)
		{
			maintenance.GET("", h.VehicleMaintenance.List)
			maintenance.GET("/:id", h.VehicleMaintenance.Get)
			maintenance.POST("", h.VehicleMaintenance.Create)
			maintenance.PUT("/:id", h.VehicleMaintenance.Update)
			maintenance.DELETE("/:id", h.VehicleMaintenance.Delete)
		}
	}

	return r
}
