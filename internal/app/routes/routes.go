package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	authz "github.com/yigit/mentorbridge/internal/app/auth"
	"github.com/yigit/mentorbridge/internal/app/controllers"
	"github.com/yigit/mentorbridge/internal/app/models/dto"
	"github.com/yigit/mentorbridge/internal/middleware"
)

// Controllers groups the HTTP handlers mounted by SetupRouter
type Controllers struct {
	Auth       *controllers.AuthController
	User       *controllers.UserController
	Admin      *controllers.AdminController
	Match      *controllers.MatchController
	Career     *controllers.CareerController
	Mentorship *controllers.MentorshipController
	Chat       *controllers.ChatController
}

// SetupRouter configures all application routes
func SetupRouter(router *gin.Engine, c Controllers, authMiddleware *middleware.AuthMiddleware) {
	// API version group
	v1 := router.Group("/api/v1")

	// --- Public routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/register", c.Auth.Register)
		auth.POST("/login", c.Auth.Login)
	}
	v1.GET("/careers", c.Career.ListGoals)

	// --- Authenticated Routes Group ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	perm := authMiddleware.RequirePermission

	users := authenticated.Group("/users")
	{
		users.GET("/me", perm(authz.PermViewOwnProfile), c.User.GetProfile)
		users.PUT("/me", perm(authz.PermUpdateOwnProfile), c.User.UpdateProfile)
	}

	admin := authenticated.Group("/admin")
	{
		admin.GET("/stats", perm(authz.PermViewStats), c.Admin.GetStats)
		admin.GET("/users", perm(authz.PermListUsers), c.Admin.ListUsers)
	}

	matches := authenticated.Group("/matches")
	{
		matches.GET("/mentors", perm(authz.PermMatchMentors), c.Match.MatchMentors)
		matches.GET("/internships", perm(authz.PermMatchInternships), c.Match.MatchInternships)
	}

	careers := authenticated.Group("/careers")
	careers.Use(perm(authz.PermViewSkillGap))
	{
		careers.GET("/gap", c.Career.GetGap)
		careers.GET("/roadmap", c.Career.GetRoadmap)
	}

	requests := authenticated.Group("/requests")
	{
		requests.POST("", perm(authz.PermCreateRequest), c.Mentorship.CreateRequest)
		requests.GET("", perm(authz.PermListOwnRequests), c.Mentorship.ListRequests)
		requests.POST("/:id/decision", perm(authz.PermDecideRequest), c.Mentorship.DecideRequest)
	}

	chats := authenticated.Group("/chats")
	chats.Use(perm(authz.PermChat))
	{
		chats.GET("/contacts", c.Chat.ListContacts)
		chats.GET("/:userId/messages", c.Chat.GetMessages)
		chats.POST("/:userId/messages", c.Chat.SendMessage)
	}

	// Health check endpoint (public)
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, dto.NewSuccessResponse(gin.H{"status": "ok"}, ""))
	})
}
