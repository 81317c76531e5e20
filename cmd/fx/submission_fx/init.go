package submission_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"pulso/internal/api/controllers"
	"pulso/internal/repositories"
	"pulso/internal/services"
	"pulso/pkg/cache"
)

var Module = fx.Provide(
	provideResponseRepo, provideSubmissionService, provideSubmissionController,
)

func provideResponseRepo(db *gorm.DB) repositories.ResponseRepositoryInterface {
	return repositories.NewResponseRepository(db)
}

func provideSubmissionService(
	surveyRepo repositories.SurveyRepository,
	employeeRepo repositories.EmployeeRepositoryInterface,
	responseRepo repositories.ResponseRepositoryInterface,
	reportCache cache.ReportCache,
	logger *zap.Logger,
) services.SubmissionServiceInterface {
	return services.NewSubmissionService(surveyRepo, employeeRepo, responseRepo, reportCache, logger)
}

func provideSubmissionController(surveyService services.SurveyServiceInterface, submissionService services.SubmissionServiceInterface) *controllers.SubmissionController {
	return controllers.NewSubmissionController(surveyService, submissionService)
}
