package controllers

import (
	"MediCore/handlers"
	"MediCore/middlewares"
	"MediCore/models"
	"MediCore/utils"

	"github.com/gin-gonic/gin"
)

// readers may view patient records; patients are further limited to their own.
var readers = []string{
	models.RoleAdmin, models.RoleDoctor, models.RolePatient,
	models.RoleNurse, models.RoleReceptionist, models.RolePharmacist, models.RoleLabTechnician,
}

func SetupStaffRoutes(api *gin.RouterGroup, tm *utils.TokenManager, h *handlers.StaffHandler) {
	staff := api.Group("/staff")
	staff.POST("/login", h.Login)

	admin := staff.Group("", middlewares.RequireRoles(tm, models.RoleAdmin))
	admin.POST("/register", h.Register)
	admin.GET("/all", h.GetAll)
	admin.GET("/department/:department", h.GetByDepartment)
	admin.GET("/:id", h.GetByID)
	admin.PUT("/:id", h.Update)
	admin.DELETE("/:id", h.Delete)
}

func SetupRoomRoutes(api *gin.RouterGroup, tm *utils.TokenManager, h *handlers.RoomHandler) {
	room := api.Group("/room", middlewares.RequireRoles(tm, models.RoleAdmin))
	room.POST("/add", h.Add)
	room.GET("/all", h.GetAll)
	room.GET("/available", h.GetAvailable)
	room.GET("/stats", h.Stats)
	room.GET("/:id", h.GetByID)
	room.PUT("/:id", h.Update)
	room.PUT("/:id/maintenance", h.SetMaintenance)
	room.DELETE("/:id", h.Delete)
}

func SetupAdmissionRoutes(api *gin.RouterGroup, tm *utils.TokenManager, h *handlers.AdmissionHandler) {
	admission := api.Group("/admission")

	clinicians := middlewares.RequireRoles(tm, models.RoleDoctor, models.RoleAdmin)
	admission.POST("/create", clinicians, h.Create)
	admission.PUT("/:id/discharge", clinicians, h.Discharge)
	admission.PUT("/:id", clinicians, h.Update)
	admission.GET("/doctor/current", middlewares.RequireRoles(tm, models.RoleDoctor), h.Current)
	admission.GET("/stats/overview", middlewares.RequireRoles(tm, models.RoleAdmin), h.Stats)

	readable := middlewares.RequireRoles(tm, readers...)
	admission.GET("/patient/:patientId", readable, h.GetByPatient)
	admission.GET("/:id", readable, h.GetByID)
}

func SetupBillingRoutes(api *gin.RouterGroup, tm *utils.TokenManager, h *handlers.BillingHandler) {
	billing := api.Group("/billing")

	office := middlewares.RequireRoles(tm, models.RoleAdmin, models.RoleReceptionist)
	billing.POST("/create", office, h.Create)
	billing.GET("/pending", office, h.GetPending)
	billing.GET("/stats", office, h.Stats)
	billing.GET("/export", office, h.Export)
	billing.DELETE("/:id", office, h.Delete)

	readable := middlewares.RequireRoles(tm, readers...)
	billing.GET("/patient/:patientId", readable, h.GetByPatient)
	billing.GET("/:id", readable, h.GetByID)
	billing.PUT("/:id/payment", middlewares.RequireRoles(tm, models.RolePatient, models.RoleAdmin, models.RoleReceptionist), h.RecordPayment)
}

func SetupDiseaseRoutes(api *gin.RouterGroup, tm *utils.TokenManager, h *handlers.DiseaseHandler) {
	disease := api.Group("/disease", middlewares.RequireRoles(tm, models.RoleAdmin))
	disease.POST("/add", h.Add)
	disease.GET("/all", h.GetAll)
	disease.GET("/category/:category", h.GetByCategory)
	disease.POST("/search-symptoms", h.SearchBySymptoms)
	disease.GET("/chatbot/training-data", h.TrainingData)
	disease.GET("/:id", h.GetByID)
	disease.PUT("/:id", h.Update)
	disease.DELETE("/:id", h.Delete)
}

func SetupPrescriptionRoutes(api *gin.RouterGroup, tm *utils.TokenManager, h *handlers.PrescriptionHandler) {
	prescription := api.Group("/prescription")

	doctor := middlewares.RequireRoles(tm, models.RoleDoctor)
	prescription.POST("/create", doctor, h.Create)
	prescription.GET("/doctor/:doctorId", doctor, h.GetByDoctor)
	prescription.GET("/appointment/:appointmentId", doctor, h.GetByAppointment)
	prescription.PUT("/:id", doctor, h.Update)
	prescription.DELETE("/:id", doctor, h.Delete)

	readable := middlewares.RequireRoles(tm, readers...)
	prescription.GET("/patient/:patientId", readable, h.GetByPatient)
	prescription.GET("/:id", readable, h.GetByID)
}

func SetupChatbotRoutes(api *gin.RouterGroup, tm *utils.TokenManager, h *handlers.ChatbotHandler) {
	chatbot := api.Group("/chatbot")
	chatbot.POST("/session/start", h.StartSession)
	chatbot.POST("/message", h.SendMessage)
	chatbot.GET("/session/:sessionId", h.GetSession)
	chatbot.POST("/feedback", h.SubmitFeedback)
	chatbot.GET("/analytics", middlewares.RequireRoles(tm, models.RoleAdmin), h.Analytics)
}
