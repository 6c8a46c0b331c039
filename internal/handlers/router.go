package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mr-pathfinder/roadmap-service/internal/auth"
	"github.com/mr-pathfinder/roadmap-service/internal/config"
	"github.com/mr-pathfinder/roadmap-service/internal/models"
	"github.com/mr-pathfinder/roadmap-service/internal/repositories"
	"github.com/mr-pathfinder/roadmap-service/internal/services"
	"github.com/mr-pathfinder/roadmap-service/internal/utils"
)

type HandlerManager struct {
	authHandler    *AuthHandler
	roadmapHandler *RoadmapHandler
	hrHandler      *HRHandler
	authMiddleware *JWTAuthMiddleware
	repo           repositories.Repository
}

func NewHandlerManager(
	serviceManager services.ServiceManager,
	tokens *auth.TokenService,
	repo repositories.Repository,
	logger utils.Logger,
	cfg *config.Config,
) *HandlerManager {
	return &HandlerManager{
		authHandler:    NewAuthHandler(serviceManager.Auth(), logger, cfg.IsProduction()),
		roadmapHandler: NewRoadmapHandler(serviceManager.Roadmap(), serviceManager.Quiz(), logger),
		hrHandler:      NewHRHandler(serviceManager.Candidate(), logger),
		authMiddleware: NewJWTAuthMiddleware(tokens),
		repo:           repo,
	}
}

// SetupRoutes sets up all API routes
func (hm *HandlerManager) SetupRoutes(router *gin.Engine) {
	router.GET("/health", hm.healthCheck)

	api := router.Group("/api")
	{
		authRoutes := api.Group("/auth")
		{
			authRoutes.POST("/register", hm.authHandler.Register)
			authRoutes.POST("/login", hm.authHandler.Login)
			authRoutes.GET("/logout", hm.authHandler.Logout)
			authRoutes.GET("/me", hm.authMiddleware.Authenticate(), hm.authHandler.Me)
			authRoutes.PUT("/profile", hm.authMiddleware.Authenticate(), hm.authHandler.UpdateProfile)
		}

		roadmap := api.Group("/roadmap")
		roadmap.Use(hm.authMiddleware.Authenticate())
		{
			roadmap.POST("/generate", hm.roadmapHandler.Generate)
			roadmap.GET("/my-roadmap", hm.roadmapHandler.List)
			roadmap.PUT("/progress", hm.roadmapHandler.UpdateProgress)
			roadmap.POST("/quiz", hm.roadmapHandler.GenerateQuiz)
			roadmap.POST("/validate-quiz", hm.roadmapHandler.ValidateQuiz)
		}

		hr := api.Group("/hr")
		hr.Use(hm.authMiddleware.Authenticate(), hm.authMiddleware.RequireRole(models.RoleHR))
		{
			hr.GET("/search", hm.hrHandler.Search)
			hr.GET("/export", hm.hrHandler.Export)
			hr.GET("/alerts", hm.hrHandler.Alerts)
			hr.DELETE("/candidate/:id", hm.hrHandler.Delete)
			hr.PUT("/candidate/:id", hm.hrHandler.UpdateContact)
			hr.POST("/reset", hm.hrHandler.Reset)
		}
	}
}

func (hm *HandlerManager) healthCheck(c *gin.Context) {
	status := "healthy"
	code := http.StatusOK
	if err := hm.repo.Ping(c.Request.Context()); err != nil {
		status = "degraded"
		code = http.StatusServiceUnavailable
	}

	c.JSON(code, gin.H{
		"status":    status,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"service":   "roadmap-service",
	})
}
