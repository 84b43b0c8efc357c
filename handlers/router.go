package handlers

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/hiringplatform/backend/auth"
	"github.com/hiringplatform/backend/config"
	"github.com/hiringplatform/backend/logger"
	"github.com/hiringplatform/backend/mcp"
	"github.com/hiringplatform/backend/models"
	"github.com/hiringplatform/backend/resume"
	"github.com/hiringplatform/backend/storage"
	"github.com/hiringplatform/backend/tools"
)

// RouterConfig holds everything the HTTP routes depend on
type RouterConfig struct {
	Config     *config.Config
	Store      storage.Repository
	Resumes    storage.ResumeStore // optional
	JWT        *auth.JWTService
	GoogleAuth GoogleVerifier
	Hasher     *auth.PasswordHasher
	Parser     *resume.Parser
	Tools      *tools.ToolRegistry
	Logger     *zap.Logger
}

// NewRouter builds the gin engine with middleware and every API route
func NewRouter(rc RouterConfig) *gin.Engine {
	UseJSONFieldNames()

	log := logger.WithFields(rc.Logger)
	cfg := rc.Config
	maxBytes := cfg.MaxResumeBytes

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(logger.GinMiddleware(log))
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	health := NewHealthHandler(rc.Store)
	router.GET("/health", health.Check)

	authHandler := NewAuthHandler(rc.Store, rc.JWT, rc.GoogleAuth, rc.Hasher, log)
	companyHandler := NewCompanyHandler(rc.Store, log)
	jobHandler := NewJobHandler(rc.Store, log)
	candidateHandler := NewCandidateHandler(rc.Store, rc.Resumes, rc.Parser, maxBytes, log)
	applicationHandler := NewApplicationHandler(rc.Store, log)
	mlHandler := NewMLHandler(rc.Store, rc.Parser, maxBytes, log)

	authenticated := auth.AuthMiddleware(rc.JWT)
	candidate := auth.RequireRole(models.RoleCandidate)
	recruiter := auth.RequireRole(models.RoleRecruiter)

	api := router.Group("/api")
	{
		api.GET("/health", health.Check)

		authGroup := api.Group("/auth")
		{
			authGroup.POST("/signup", authHandler.Signup)
			authGroup.POST("/login", authHandler.Login)
			authGroup.POST("/google", authHandler.GoogleLogin)
			authGroup.POST("/refresh", authHandler.Refresh)
			authGroup.GET("/me", authenticated, authHandler.Me)
		}

		jobs := api.Group("/jobs")
		{
			jobs.GET("", jobHandler.List)
			jobs.GET("/company/:company_id", jobHandler.ListByCompany)
			jobs.GET("/:id", auth.OptionalAuthMiddleware(rc.JWT), jobHandler.Get)
			jobs.POST("", authenticated, recruiter, jobHandler.Create)
			jobs.PATCH("/:id", authenticated, recruiter, jobHandler.Update)
			jobs.DELETE("/:id", authenticated, recruiter, jobHandler.Delete)
		}

		companies := api.Group("/companies")
		{
			companies.GET("", companyHandler.List)
			companies.GET("/:id", companyHandler.Get)
			companies.POST("", authenticated, recruiter, companyHandler.Create)
			companies.PATCH("/:id", authenticated, recruiter, companyHandler.Update)
			companies.DELETE("/:id", authenticated, recruiter, companyHandler.Delete)
		}

		candidates := api.Group("/candidates", authenticated)
		{
			candidates.GET("/me", candidate, candidateHandler.GetMe)
			candidates.POST("/me", candidate, candidateHandler.CreateMe)
			candidates.PATCH("/me", candidate, candidateHandler.UpdateMe)
			candidates.POST("/me/resume", candidate, candidateHandler.UploadResume)
			candidates.GET("/:id", candidateHandler.Get)
		}

		applications := api.Group("/applications", authenticated)
		{
			applications.POST("", candidate, applicationHandler.Create)
			applications.GET("/my", candidate, applicationHandler.ListMine)
			applications.GET("/job/:job_id", recruiter, applicationHandler.ListForJob)
			applications.GET("/:id", applicationHandler.Get)
			applications.PATCH("/:id", recruiter, applicationHandler.Update)
			applications.POST("/:id/screening-answers", candidate, applicationHandler.SubmitScreeningAnswers)
			applications.GET("/:id/screening-answers", applicationHandler.ListScreeningAnswers)
			applications.POST("/:id/interviews", recruiter, applicationHandler.ScheduleInterview)
			applications.GET("/:id/interviews", applicationHandler.ListInterviews)
		}

		api.PATCH("/interviews/:id", authenticated, recruiter, applicationHandler.UpdateInterview)

		ml := api.Group("/ml", authenticated)
		{
			ml.POST("/parse-resume", mlHandler.ParseResume)
			ml.POST("/score-screening", mlHandler.ScoreScreening)
			ml.POST("/match-score", mlHandler.MatchScore)
		}

		if rc.Tools != nil {
			api.GET("/tools", NewToolsHandler(rc.Tools).GetTools)
			mcp.NewServer(rc.Tools, log).RegisterRoutes(api)
		}
	}

	return router
}
