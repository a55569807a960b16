package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"clinicrm/cmd/fx/authfx"
	"clinicrm/cmd/fx/controllersfx"
	"clinicrm/cmd/fx/customerfx"
	"clinicrm/cmd/fx/dbfx"
	"clinicrm/cmd/fx/meetingfx"
	"clinicrm/cmd/fx/operationfx"
	"clinicrm/cmd/fx/translationfx"
	"clinicrm/internal/api/controllers"
	"clinicrm/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	app := fx.New(
		dbfx.Module,
		authfx.Module,
		customerfx.Module,
		operationfx.Module,
		meetingfx.Module,
		translationfx.Module,
		controllersfx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				log.Printf("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	authController *controllers.AuthController,
	customerController *controllers.CustomerController,
	operationController *controllers.OperationController,
	meetingController *controllers.MeetingController,
	translationController *controllers.TranslationController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r, authController, customerController, operationController, meetingController, translationController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	authController *controllers.AuthController,
	customerController *controllers.CustomerController,
	operationController *controllers.OperationController,
	meetingController *controllers.MeetingController,
	translationController *controllers.TranslationController) {

	authGroup := r.Group("/auth")
	authGroup.POST("/register", authController.Register)
	authGroup.POST("/login", authController.Login)
	authGroup.POST("/forgot-password", authController.ForgotPassword)
	authGroup.POST("/reset-password", authController.ResetPassword)
	authGroup.GET("/users", middleware.JWTAuthMiddleware(), middleware.RoleMiddleware("admin"), authController.ListUsers)

	customersGroup := r.Group("/customers", middleware.JWTAuthMiddleware())
	customersGroup.POST("", customerController.CreateCustomer)
	customersGroup.GET("", customerController.ListCustomers)
	customersGroup.POST("/statuses", customerController.CreateStatus)
	customersGroup.GET("/statuses", customerController.ListStatuses)
	customersGroup.GET("/:id", customerController.GetCustomer)
	customersGroup.POST("/:id/notes", customerController.AddNote)
	customersGroup.GET("/:id/notes", customerController.ListNotes)
	customersGroup.GET("/:id/history", customerController.ListHistory)

	operationsGroup := r.Group("/operations", middleware.JWTAuthMiddleware())
	operationsGroup.POST("/types", operationController.CreateOperationType)
	operationsGroup.GET("/types", operationController.ListOperationTypes)
	operationsGroup.POST("/schedule", operationController.SchedulePlan)
	operationsGroup.DELETE("/schedule/:id", operationController.DeletePlan)
	operationsGroup.GET("/followups/:customerId", operationController.ListCustomerPlans)
	// two equivalent item-update routes kept for client compatibility
	operationsGroup.PATCH("/followups/:id/item", operationController.UpdateFollowupItem)
	operationsGroup.PATCH("/followups/:id/followup", operationController.UpdateFollowupItem)
	operationsGroup.GET("/notifications", operationController.ListNotifications)

	meetingsGroup := r.Group("/meetings", middleware.JWTAuthMiddleware())
	meetingsGroup.POST("", meetingController.CreateMeeting)
	meetingsGroup.GET("/customer/:customerId", meetingController.ListCustomerMeetings)
	meetingsGroup.PATCH("/:id/status", meetingController.UpdateMeetingStatus)
	meetingsGroup.DELETE("/:id", meetingController.DeleteMeeting)

	i18nGroup := r.Group("/i18n")
	i18nGroup.POST("/languages", middleware.JWTAuthMiddleware(), middleware.RoleMiddleware("admin"), translationController.CreateLanguage)
	i18nGroup.GET("/languages", translationController.ListLanguages)
	i18nGroup.POST("/translations", middleware.JWTAuthMiddleware(), middleware.RoleMiddleware("admin"), translationController.CreateTranslation)
	i18nGroup.GET("/translations", translationController.GetTranslations)
}
