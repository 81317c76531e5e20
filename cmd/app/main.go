package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"pulso/cmd/fx/cache_fx"
	"pulso/cmd/fx/dashboard_fx"
	"pulso/cmd/fx/db_fx"
	"pulso/cmd/fx/employee_fx"
	"pulso/cmd/fx/observ_fx"
	"pulso/cmd/fx/submission_fx"
	"pulso/cmd/fx/survey_fx"
	"pulso/cmd/fx/tenant_fx"
	"pulso/internal/api/controllers"
	"pulso/internal/infra"
	"pulso/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment")
	}

	app := fx.New(
		observ_fx.Module,
		db_fx.Module,
		cache_fx.Module,
		tenant_fx.Module,
		employee_fx.Module,
		survey_fx.Module,
		submission_fx.Module,
		dashboard_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(infra.Migrate),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, db *gorm.DB, rdb *redis.Client, logger *zap.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				logger.Info("starting HTTP server", zap.String("port", port))
				if err := engine.Run(":" + port); err != nil {
					logger.Fatal("failed to start server", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("stopping HTTP server")
			infra.ClosePostgresql(db)
			infra.CloseRedis(rdb)
			return nil
		},
	})
}

func ProvideRouter(
	employeeController *controllers.EmployeeController,
	surveyController *controllers.SurveyController,
	submissionController *controllers.SubmissionController,
	dashboardController *controllers.DashboardController) *gin.Engine {

	r := gin.Default()
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r, employeeController, surveyController, submissionController, dashboardController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	employeeController *controllers.EmployeeController,
	surveyController *controllers.SurveyController,
	submissionController *controllers.SubmissionController,
	dashboardController *controllers.DashboardController) {

	authed := r.Group("/", middleware.IdentityMiddleware())

	employees := authed.Group("/employees")
	employees.POST("", employeeController.CreateEmployee)
	employees.GET("", employeeController.ListEmployees)
	employees.GET("/:id", employeeController.GetEmployee)
	employees.PUT("/:id", employeeController.UpdateEmployee)
	employees.DELETE("/:id", employeeController.DeleteEmployee)

	surveys := authed.Group("/surveys")
	surveys.POST("", surveyController.CreateSurvey)
	surveys.GET("", surveyController.ListSurveys)
	surveys.GET("/:id", surveyController.GetSurvey)
	surveys.POST("/:id/activate", surveyController.ActivateSurvey)
	surveys.POST("/:id/close", surveyController.CloseSurvey)
	surveys.DELETE("/:id", surveyController.DeleteSurvey)

	authed.GET("/dashboard/stats", dashboardController.GetClimateReport)

	// Public, unauthenticated submission surface.
	public := r.Group("/survey")
	public.GET("/:id", submissionController.GetPublicSurvey)
	public.POST("/:id", submissionController.SubmitSurvey)
}
