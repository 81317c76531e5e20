package survey_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"pulso/internal/api/controllers"
	"pulso/internal/repositories"
	"pulso/internal/services"
)

var Module = fx.Provide(
	provideSurveyRepo, provideSurveyService, provideSurveyController,
)

func provideSurveyRepo(db *gorm.DB) repositories.SurveyRepository {
	return repositories.NewSurveyRepository(db)
}

func provideSurveyService(surveyRepo repositories.SurveyRepository, tenantRepo repositories.TenantRepository) services.SurveyServiceInterface {
	return services.NewSurveyService(surveyRepo, tenantRepo)
}

func provideSurveyController(surveyService services.SurveyServiceInterface, tenantService services.TenantServiceInterface) *controllers.SurveyController {
	return controllers.NewSurveyController(surveyService, tenantService)
}
