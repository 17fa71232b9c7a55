package routes

import (
	"myadvisor/handlers"
	"myadvisor/middleware"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterUserRoutes registers account endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/users")
	{
		api.POST("/register", hb.User.RegisterUserHandler)
		api.POST("/login", hb.User.AuthenticateUserHandler)

		// Protected routes (Require Authentication)
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.GET("/me", hb.User.GetMeHandler)
		api.PUT("/me", hb.User.UpdateMeHandler)
		api.PUT("/me/password", hb.User.UpdateUserPasswordHandler)
		api.DELETE("/me", hb.User.DeleteMeHandler)
		api.DELETE("/revoke", hb.User.RevokeUserAuthTokenHandler)
		api.GET("/me/profile", hb.User.GetInvestorProfileHandler)
		api.PUT("/me/profile", hb.User.SaveInvestorProfileHandler)
	}
}

// RegisterAdvisorRoutes registers advisor discovery and profile endpoints.
func RegisterAdvisorRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/advisors")
	{
		// Public discovery endpoints.
		api.GET("/search", hb.Advisor.SearchAdvisorsHandler)
		api.GET("/:id", hb.Advisor.GetAdvisorByIDHandler)
		api.GET("/:id/reviews", hb.Review.ListAdvisorReviewsHandler)

		// Advisor self-service endpoints.
		protected := api.Group("")
		protected.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		protected.GET("/me/profile", hb.Advisor.GetMyProfileHandler)
		protected.PUT("/me/profile", hb.Advisor.SaveMyProfileHandler)
		protected.GET("/me/schedule", hb.Advisor.GetMyScheduleHandler)
		protected.PUT("/me/schedule", hb.Advisor.SaveMyScheduleHandler)
		protected.GET("/me/free-windows", hb.Advisor.GetMyFreeWindowsHandler)
	}

	r.GET("/api/service-types", hb.Advisor.ListServiceTypesHandler)
}

// RegisterAppointmentRoutes sets up the endpoints for the booking engine.
func RegisterAppointmentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/appointments")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.POST("", hb.Booking.BookAppointmentHandler)
		api.GET("", hb.Booking.ListAppointmentsHandler)
		api.PUT("/:id/confirm", hb.Booking.ConfirmAppointmentHandler)
		api.PUT("/:id/cancel", hb.Booking.CancelAppointmentHandler)
		api.DELETE("/:id", hb.Booking.DeleteAppointmentHandler)
	}
}

// RegisterMessageRoutes registers direct-messaging endpoints.
func RegisterMessageRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/messages")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.POST("", hb.Message.SendMessageHandler)
		api.GET("/:userID", hb.Message.GetConversationHandler)
	}
}

// RegisterReviewRoutes registers review endpoints.
func RegisterReviewRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/reviews")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.POST("", hb.Review.CreateReviewHandler)
	}
}

// RegisterAdminRoutes sets up endpoints for admin operations.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/admin")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo), middleware.AdminAuthMiddleware())
		api.GET("/users", hb.Admin.GetAllUsersHandler)
		api.GET("/advisors", hb.Admin.GetAllAdvisorsHandler)
		api.GET("/metrics", hb.Admin.GetMetricsHandler)
		api.DELETE("/users/:id", hb.Admin.DeleteUserHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
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

	RegisterUserRoutes(r, hb)
	RegisterAdvisorRoutes(r, hb)
	RegisterAppointmentRoutes(r, hb)
	RegisterMessageRoutes(r, hb)
	RegisterReviewRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterHealthRoute(r)
}
