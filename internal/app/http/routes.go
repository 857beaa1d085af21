package httpEngine

import (
	"net/http"

	"crayon-server/configs"
	"crayon-server/internal/ai"
	"crayon-server/internal/ai/cache"
	"crayon-server/internal/controllers"
	"crayon-server/internal/logics"
	"crayon-server/internal/middlewares"
	"crayon-server/internal/repositories"
	"crayon-server/internal/utils"

	"github.com/labstack/echo/v4"
)

// RegisterRoutes wires the repositories, services and controllers and
// registers every route of the server.
func RegisterRoutes(e *echo.Echo) {
	// Health check endpoint, no JWT middleware.
	e.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, "Hello, from Crayon Server!")
	})

	// Generation gateway and shared infrastructure.
	uploader := ai.NewS3Uploader(repositories.DBS.S3, configs.Configs.S3.BucketName, configs.Configs.S3.Region)
	generation := ai.NewClient(configs.Configs.Generation, configs.Configs.Openai, uploader, configs.Logger)
	freeCache := cache.NewRedisCache(repositories.DBS.Redis, configs.Logger)
	emailSvc := utils.NewEmailService(
		configs.Configs.Email.SMTPHost,
		configs.Configs.Email.SMTPPort,
		configs.Configs.Email.Username,
		configs.Configs.Email.Password,
	)

	// Repositories.
	userRepo := repositories.NewUserRepository(repositories.DBS.Postgres)
	teamRepo := repositories.NewTeamRepository(repositories.DBS.Postgres)
	chatRepo := repositories.NewChatRepository(repositories.DBS.Postgres)
	projectRepo := repositories.NewProjectRepository(repositories.DBS.Postgres)
	usageRepo := repositories.NewUsageRepository(repositories.DBS.Postgres)

	// Services.
	teamService := logics.NewTeamService(teamRepo, userRepo, generation, emailSvc, configs.Logger)
	chatService := logics.NewChatService(chatRepo, usageRepo, generation, configs.Logger)
	freeService := logics.NewFreeService(generation, freeCache, configs.Logger)
	userService := logics.NewUserService(userRepo, generation, configs.Logger)
	projectService := logics.NewProjectService(projectRepo, teamRepo, configs.Logger)

	// Controllers.
	teamController := controllers.NewTeamController(teamService)
	chatController := controllers.NewChatController(chatService)
	freeController := controllers.NewFreeController(freeService)
	profileController := controllers.NewProfileController(userService)
	projectController := controllers.NewProjectController(projectService)

	// Anonymous endpoint, no JWT middleware.
	e.POST("/api/v1/free", freeController.FreeChat)

	apiV1 := e.Group("/api/v1")
	apiV1.Use(middlewares.JWTMiddleware)

	// Team endpoints.
	apiV1.POST("/teams", teamController.CreateTeam)
	apiV1.GET("/teams", teamController.ViewTeams)
	apiV1.GET("/teams/:id", teamController.ViewTeam)
	apiV1.PUT("/teams/:id", teamController.UpdateTeam)
	apiV1.DELETE("/teams/:id", teamController.DeleteTeam)
	apiV1.POST("/teams/:id/join", teamController.JoinTeam)
	apiV1.POST("/teams/:id/leave", teamController.LeaveTeam)
	apiV1.GET("/teams/:id/members", teamController.TeamMembers)
	apiV1.POST("/teams/:id/members", teamController.AddTeamMembers)

	// Project endpoints.
	apiV1.POST("/teams/:id/projects", projectController.CreateProject)
	apiV1.GET("/teams/:id/projects", projectController.ViewProjects)
	apiV1.DELETE("/teams/:id/projects/:projectId", projectController.DeleteProject)

	// Chat endpoints. Message generation is rate limited per user.
	apiV1.GET("/chats/:id", chatController.ViewChat)
	apiV1.DELETE("/chats/:id", chatController.DeleteChat)
	apiV1.POST("/chats/:id/messages", chatController.TeamChat, middlewares.GenerationLimitMiddleware)

	// Profile endpoints.
	apiV1.GET("/profile", profileController.GetProfile)
	apiV1.PUT("/profile", profileController.UpdateProfile)
}
