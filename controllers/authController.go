package controllers

import (
	"MediCore/handlers"
	"MediCore/middlewares"
	"MediCore/models"
	"MediCore/utils"

	"github.com/gin-gonic/gin"
)

// AuthController owns the account-facing routes: token refresh, admin,
// patient users and doctors.
type AuthController struct {
	Tokens *utils.TokenManager
	Auth   *handlers.AuthHandler
	Admin  *handlers.AdminHandler
	User   *handlers.UserHandler
	Doctor *handlers.DoctorHandler
}

// RegisterRoutes initializes all account routes under api
func (ac *AuthController) RegisterRoutes(api *gin.RouterGroup) {
	auth := api.Group("/auth")
	{
		auth.POST("/refresh", ac.Auth.RefreshToken)
		auth.POST("/logout", ac.Auth.Logout)
	}

	admin := api.Group("/admin")
	admin.POST("/login", ac.Admin.Login)
	adminOnly := admin.Group("", middlewares.RequireRoles(ac.Tokens, models.RoleAdmin))
	{
		adminOnly.GET("/dashboard", ac.Admin.Dashboard)
		adminOnly.POST("/doctors", ac.Admin.AddDoctor)
		adminOnly.GET("/doctors", ac.Admin.ListDoctors)
		adminOnly.POST("/doctors/change-availability", ac.Admin.ChangeAvailability)
		adminOnly.GET("/appointments", ac.Admin.ListAppointments)
		adminOnly.POST("/appointments/cancel", ac.Admin.CancelAppointment)
	}

	user := api.Group("/user")
	user.POST("/register", ac.User.Register)
	user.POST("/login", ac.User.Login)
	user.POST("/send-reset-code", ac.User.SendResetCode)
	user.POST("/reset-password", ac.User.ResetPassword)
	patient := user.Group("", middlewares.RequireRoles(ac.Tokens, models.RolePatient))
	{
		patient.GET("/profile", ac.User.GetProfile)
		patient.PUT("/profile", ac.User.UpdateProfile)
		patient.POST("/appointments", ac.User.BookAppointment)
		patient.GET("/appointments", ac.User.ListAppointments)
		patient.DELETE("/appointments/:id", ac.User.CancelAppointment)
	}

	doctor := api.Group("/doctor")
	doctor.GET("/list", ac.Doctor.List)
	doctor.POST("/login", ac.Doctor.Login)
	doctorOnly := doctor.Group("", middlewares.RequireRoles(ac.Tokens, models.RoleDoctor))
	{
		doctorOnly.GET("/profile", ac.Doctor.Profile)
		doctorOnly.GET("/appointments", ac.Doctor.Appointments)
		doctorOnly.POST("/appointments/:id/complete", ac.Doctor.CompleteAppointment)
		doctorOnly.POST("/appointments/:id/cancel", ac.Doctor.CancelAppointment)
	}
}
