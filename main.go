package main

import (
	"log"
	"volunteermatch-backend/config"
	"volunteermatch-backend/database"
	"volunteermatch-backend/handlers"
	"volunteermatch-backend/middleware"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	config.Load()

	// Connect to database
	database.Connect()

	// Connect to Redis (optional, won't crash if unavailable)
	database.ConnectRedis()

	// Setup router
	r := gin.Default()
	r.Use(middleware.CORSMiddleware())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": config.AppConfig.AppName,
		})
	})

	// ==========================================
	// PUBLIC ROUTES (signup, login, image fetch)
	// ==========================================
	public := r.Group("/api")
	{
		volunteer := public.Group("/volunteer")
		{
			volunteer.POST("/login", handlers.LoginVolunteer)
			volunteer.POST("/addVolunteers", handlers.RegisterVolunteer)
			volunteer.POST("/upload", handlers.RegisterVolunteerWithImage)
			volunteer.GET("/getDto/:id", handlers.GetVolunteerImage)
		}

		organization := public.Group("/organization")
		{
			organization.POST("/login", handlers.LoginOrganization)
			organization.POST("/addOrganizations", handlers.RegisterOrganization)
			organization.POST("/upload", handlers.RegisterOrganizationWithImage)
			organization.GET("/getDto/:id", handlers.GetOrganizationImage)
		}

		// Volunteer types are reference data shown on the signup form.
		volunteerType := public.Group("/volunteerType")
		{
			volunteerType.GET("/volunteerType", handlers.GetVolunteerTypes)
			volunteerType.GET("/volunteerTypeById/:id", handlers.GetVolunteerTypeByID)
		}
	}

	// ==========================================
	// API ROUTES (authenticated)
	// ==========================================
	api := r.Group("/api")
	api.Use(middleware.AuthRequired())
	{
		// Volunteers
		api.GET("/volunteer/volunteer", handlers.GetVolunteers)
		api.GET("/volunteer/volunteerById/:id", handlers.GetVolunteerByID)
		api.PUT("/volunteer/updateVolunteers/:id", handlers.UpdateVolunteer)
		api.DELETE("/volunteer/deleteVolunteers/:id", handlers.DeleteVolunteer)
		api.POST("/volunteer/search", handlers.SearchVolunteers)
		api.PUT("/volunteer/fcm-token", handlers.UpdateVolunteerFCMToken)

		// Organizations
		api.GET("/organization/organization", handlers.GetOrganizations)
		api.GET("/organization/organizationById/:id", handlers.GetOrganizationByID)
		api.PUT("/organization/updateOrganizations/:id", handlers.UpdateOrganization)
		api.DELETE("/organization/deleteOrganizations/:id", handlers.DeleteOrganization)

		// Volunteer types (admin writes)
		api.POST("/volunteerType/addVolunteerTypes", handlers.CreateVolunteerType)
		api.PUT("/volunteerType/updateVolunteerTypes/:id", handlers.UpdateVolunteerType)
		api.DELETE("/volunteerType/deleteVolunteerTypes/:id", handlers.DeleteVolunteerType)

		// Volunteer requests
		api.GET("/volunteerRequest/volunteerRequest", handlers.GetVolunteerRequests)
		api.GET("/volunteerRequest/volunteerRequestById/:id", handlers.GetVolunteerRequestByID)
		api.POST("/volunteerRequest/addVolunteerRequest", handlers.CreateVolunteerRequest)
		api.PUT("/volunteerRequest/updateVolunteerRequest/:id", handlers.UpdateVolunteerRequest)
		api.DELETE("/volunteerRequest/deleteVolunteerRequests/:id", handlers.DeleteVolunteerRequest)

		// Invitations
		api.GET("/volunteerInvitation/volunteerInvitation", handlers.GetInvitations)
		api.GET("/volunteerInvitation/volunteerInvitationById/:id", handlers.GetInvitationByID)
		api.POST("/volunteerInvitation/addVolunteerInvitation", handlers.CreateInvitation)
		api.PUT("/volunteerInvitation/updateVolunteerInvitation/:id", handlers.UpdateInvitation)
		api.DELETE("/volunteerInvitation/deleteVolunteerInvitations/:id", handlers.DeleteInvitation)
		api.GET("/volunteerInvitation/statusHistory/:id", handlers.GetInvitationStatusHistory)

		// Reviews
		api.GET("/volunteerReview/volunteerReview", handlers.GetReviews)
		api.GET("/volunteerReview/volunteerReviewById/:id", handlers.GetReviewByID)
		api.POST("/volunteerReview/addVolunteerReview", handlers.CreateReview)
		api.DELETE("/volunteerReview/deleteVolunteerReviews/:id", handlers.DeleteReview)
	}

	// Start server
	port := config.AppConfig.Port
	log.Printf("🚀 %s server starting on port %s", config.AppConfig.AppName, port)

	addr := "0.0.0.0:" + port
	log.Printf("🚀 Listening on %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
