package routes

import (
	"time"

	"release-orchestrator-backend/internal/api/handlers"
	"release-orchestrator-backend/internal/api/middleware"
	"release-orchestrator-backend/internal/auth"
	"release-orchestrator-backend/internal/config"
	"release-orchestrator-backend/internal/queue"
	"release-orchestrator-backend/internal/repository"
	"release-orchestrator-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes wires repositories, services and handlers onto a gin engine.
// The returned sweeper and queue are owned by the caller; main runs the
// sweeper loop and drains or closes the queue on shutdown.
func SetupRoutes(db *gorm.DB, cfg *config.Config) (*gin.Engine, *service.Sweeper, *queue.InProcess) {
	router := gin.New()

	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg.AllowedOrigins))

	validate := validator.New()

	// Repositories
	workspaceRepo := repository.NewWorkspaceRepository(db)
	systemRepo := repository.NewSystemRepository(db)
	deploymentRepo := repository.NewDeploymentRepository(db)
	environmentRepo := repository.NewEnvironmentRepository(db)
	resourceRepo := repository.NewResourceRepository(db)
	targetRepo := repository.NewReleaseTargetRepository(db)
	versionRepo := repository.NewDeploymentVersionRepository(db)
	channelRepo := repository.NewVersionChannelRepository(db)
	policyRepo := repository.NewPolicyRepository(db)
	approvalRepo := repository.NewApprovalRepository(db)
	triggerRepo := repository.NewReleaseJobTriggerRepository(db)
	jobRepo := repository.NewJobRepository(db)
	metricRepo := repository.NewMetricRepository(db)

	// Job queue
	jobQueue := queue.NewInProcess(cfg.QueueBufferSize)

	// Services
	matcher := service.NewPolicyMatcherService(policyRepo, targetRepo)
	targetSync := service.NewTargetSyncService(deploymentRepo, environmentRepo, resourceRepo, systemRepo, targetRepo, matcher)
	resolver := service.NewChannelResolverService(environmentRepo, channelRepo, versionRepo)
	triggerService := service.NewTriggerService(triggerRepo, targetRepo, versionRepo, resolver)
	dispatchService := service.NewDispatchService(triggerRepo, policyRepo, matcher, targetRepo, versionRepo, approvalRepo, metricRepo, deploymentRepo, jobQueue, cfg.QueueChannel)
	sweeper := service.NewSweeper(dispatchService, time.Duration(cfg.SweepIntervalSeconds)*time.Second)

	workspaceService := service.NewWorkspaceService(workspaceRepo, validate)
	systemService := service.NewSystemService(systemRepo, workspaceRepo, validate)
	deploymentService := service.NewDeploymentService(deploymentRepo, systemRepo, targetSync, validate)
	environmentService := service.NewEnvironmentService(environmentRepo, systemRepo, channelRepo, targetSync, validate)
	resourceService := service.NewResourceService(resourceRepo, workspaceRepo, targetRepo, targetSync, validate)
	versionService := service.NewVersionService(versionRepo, deploymentRepo, triggerService, sweeper, validate)
	channelService := service.NewChannelService(channelRepo, deploymentRepo, environmentRepo, validate)
	policyService := service.NewPolicyService(policyRepo, workspaceRepo, deploymentRepo, matcher, validate)
	approvalService := service.NewApprovalService(approvalRepo, policyRepo, versionRepo, sweeper, validate)
	jobService := service.NewJobService(jobRepo, triggerRepo, sweeper, validate)
	metricService := service.NewMetricService(metricRepo, deploymentRepo, environmentRepo, validate)

	// Auth
	roleMap, err := auth.LoadRoleMap(cfg.RoleMapPath)
	if err != nil {
		logrus.WithError(err).Warn("role map not loaded, falling back to built-in defaults")
		roleMap = auth.DefaultRoleMap()
	}
	authService := auth.NewAuthService(cfg.JWTSecret, roleMap)
	authMiddleware := auth.NewAuthMiddleware(authService)

	// Handlers
	healthHandler := handlers.NewHealthHandler(db, jobQueue)
	workspaceHandler := handlers.NewWorkspaceHandler(workspaceService)
	systemHandler := handlers.NewSystemHandler(systemService)
	deploymentHandler := handlers.NewDeploymentHandler(deploymentService)
	environmentHandler := handlers.NewEnvironmentHandler(environmentService)
	resourceHandler := handlers.NewResourceHandler(resourceService)
	versionHandler := handlers.NewVersionHandler(versionService)
	channelHandler := handlers.NewChannelHandler(channelService)
	policyHandler := handlers.NewPolicyHandler(policyService)
	approvalHandler := handlers.NewApprovalHandler(approvalService)
	triggerHandler := handlers.NewTriggerHandler(triggerService, dispatchService)
	jobHandler := handlers.NewJobHandler(jobService)
	metricHandler := handlers.NewMetricHandler(metricService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API v1 routes - all endpoints require authentication
	v1 := router.Group("/api/v1")
	v1.Use(authMiddleware.RequireAuth())

	{
		// Workspace routes
		workspaces := v1.Group("/workspaces")
		{
			workspaces.GET("", workspaceHandler.ListWorkspaces)
			workspaces.POST("", authMiddleware.RequirePermission(auth.PermWorkspaceWrite), workspaceHandler.CreateWorkspace)
			workspaces.GET("/:id", workspaceHandler.GetWorkspace)
			workspaces.GET("/slug/:slug", workspaceHandler.GetWorkspaceBySlug)
			workspaces.PUT("/:id", authMiddleware.RequirePermission(auth.PermWorkspaceWrite), workspaceHandler.UpdateWorkspace)
			workspaces.DELETE("/:id", authMiddleware.RequirePermission(auth.PermWorkspaceWrite), workspaceHandler.DeleteWorkspace)
			workspaces.GET("/:id/systems", systemHandler.ListSystemsByWorkspace)
			workspaces.GET("/:id/resources", resourceHandler.ListResourcesByWorkspace)
			workspaces.GET("/:id/policies", policyHandler.ListPoliciesByWorkspace)
		}

		// System routes
		systems := v1.Group("/systems")
		{
			systems.POST("", authMiddleware.RequirePermission(auth.PermSystemWrite), systemHandler.CreateSystem)
			systems.GET("/:id", systemHandler.GetSystem)
			systems.PUT("/:id", authMiddleware.RequirePermission(auth.PermSystemWrite), systemHandler.UpdateSystem)
			systems.DELETE("/:id", authMiddleware.RequirePermission(auth.PermSystemWrite), systemHandler.DeleteSystem)
			systems.GET("/:id/deployments", deploymentHandler.ListDeploymentsBySystem)
			systems.GET("/:id/environments", environmentHandler.ListEnvironmentsBySystem)
		}

		// Deployment routes
		deployments := v1.Group("/deployments")
		{
			deployments.POST("", authMiddleware.RequirePermission(auth.PermDeploymentWrite), deploymentHandler.CreateDeployment)
			deployments.GET("/:id", deploymentHandler.GetDeployment)
			deployments.PUT("/:id", authMiddleware.RequirePermission(auth.PermDeploymentWrite), deploymentHandler.UpdateDeployment)
			deployments.DELETE("/:id", authMiddleware.RequirePermission(auth.PermDeploymentWrite), deploymentHandler.DeleteDeployment)
			deployments.GET("/:id/versions", versionHandler.ListVersionsByDeployment)
			deployments.GET("/:id/channels", channelHandler.ListChannelsByDeployment)
		}

		// Environment routes
		environments := v1.Group("/environments")
		{
			environments.POST("", authMiddleware.RequirePermission(auth.PermEnvironmentWrite), environmentHandler.CreateEnvironment)
			environments.GET("/:id", environmentHandler.GetEnvironment)
			environments.PUT("/:id", authMiddleware.RequirePermission(auth.PermEnvironmentWrite), environmentHandler.UpdateEnvironment)
			environments.DELETE("/:id", authMiddleware.RequirePermission(auth.PermEnvironmentWrite), environmentHandler.DeleteEnvironment)
			environments.POST("/:id/channels", authMiddleware.RequirePermission(auth.PermEnvironmentWrite), environmentHandler.BindChannel)
			environments.DELETE("/:id/channels/:deploymentId", authMiddleware.RequirePermission(auth.PermEnvironmentWrite), environmentHandler.UnbindChannel)
		}

		// Resource routes
		resources := v1.Group("/resources")
		{
			resources.PUT("", authMiddleware.RequirePermission(auth.PermResourceIngest), resourceHandler.UpsertResource)
			resources.GET("/:id", resourceHandler.GetResource)
			resources.DELETE("/:id", authMiddleware.RequirePermission(auth.PermResourceIngest), resourceHandler.DeleteResource)
		}

		// Version routes
		versions := v1.Group("/versions")
		{
			versions.PUT("", authMiddleware.RequirePermission(auth.PermVersionIngest), versionHandler.UpsertVersion)
			versions.GET("/:id", versionHandler.GetVersion)
			versions.PATCH("/:id/status", authMiddleware.RequirePermission(auth.PermVersionIngest), versionHandler.SetVersionStatus)
			versions.GET("/:id/approvals", approvalHandler.ListApprovalsByVersion)
		}

		// Version channel routes
		channels := v1.Group("/channels")
		{
			channels.POST("", authMiddleware.RequirePermission(auth.PermChannelCreate), channelHandler.CreateChannel)
			channels.GET("/:id", channelHandler.GetChannel)
			channels.PUT("/:id", authMiddleware.RequirePermission(auth.PermChannelUpdate), channelHandler.UpdateChannel)
			channels.DELETE("/:id", authMiddleware.RequirePermission(auth.PermChannelDelete), channelHandler.DeleteChannel)
		}

		// Policy routes
		policies := v1.Group("/policies")
		{
			policies.POST("", authMiddleware.RequirePermission(auth.PermPolicyCreate), policyHandler.CreatePolicy)
			policies.GET("/:id", policyHandler.GetPolicy)
			policies.PUT("/:id", authMiddleware.RequirePermission(auth.PermPolicyUpdate), policyHandler.UpdatePolicy)
			policies.DELETE("/:id", authMiddleware.RequirePermission(auth.PermPolicyDelete), policyHandler.DeletePolicy)
			policies.POST("/:id/targets", authMiddleware.RequirePermission(auth.PermPolicyUpdate), policyHandler.AddPolicyTarget)
			policies.PUT("/targets/:targetId", authMiddleware.RequirePermission(auth.PermPolicyUpdate), policyHandler.UpdatePolicyTarget)
			policies.DELETE("/targets/:targetId", authMiddleware.RequirePermission(auth.PermPolicyUpdate), policyHandler.DeletePolicyTarget)
		}

		// Approval routes
		approvals := v1.Group("/approvals")
		{
			approvals.POST("/assign", authMiddleware.RequirePermission(auth.PermApprovalDecide), approvalHandler.AssignApprovers)
			approvals.POST("/decide", authMiddleware.RequirePermission(auth.PermApprovalDecide), approvalHandler.DecideApproval)
			approvals.GET("/pending", approvalHandler.ListPendingApprovals)
		}

		// Trigger and dispatch routes
		triggers := v1.Group("/triggers")
		{
			triggers.POST("/redeploy", authMiddleware.RequirePermission(auth.PermReleaseDispatch), triggerHandler.Redeploy)
			triggers.GET("/:id", triggerHandler.GetTrigger)
			triggers.GET("/:id/evaluation", triggerHandler.ExplainTrigger)
		}
		v1.POST("/dispatch/sweep", authMiddleware.RequirePermission(auth.PermReleaseDispatch), triggerHandler.Sweep)

		// Job routes
		jobs := v1.Group("/jobs")
		{
			jobs.GET("", jobHandler.ListJobsByStatus)
			jobs.GET("/:id", jobHandler.GetJob)
			jobs.PATCH("/:id/status", authMiddleware.RequirePermission(auth.PermJobReport), jobHandler.UpdateJobStatus)
			jobs.GET("/:id/trigger", jobHandler.GetJobTrigger)
		}

		// Metric routes
		metrics := v1.Group("/metrics")
		{
			metrics.POST("", authMiddleware.RequirePermission(auth.PermMetricIngest), metricHandler.IngestMetric)
			metrics.GET("/window", metricHandler.GetMetricWindow)
		}
	}

	// Catch-all route for undefined endpoints
	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{
			"error":      "Endpoint not found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": c.GetString("request_id"),
		})
	})

	return router, sweeper, jobQueue
}
