package dashboard_fx

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
	provideDashboardRepo, provideDashboardService, provideDashboardController,
)

func provideDashboardRepo(db *gorm.DB) repositories.DashboardRepository {
	return repositories.NewDashboardRepository(db)
}

func provideDashboardService(repo repositories.DashboardRepository, reportCache cache.ReportCache, logger *zap.Logger) services.DashboardService {
	return services.NewDashboardService(repo, reportCache, logger)
}

func provideDashboardController(dashboardService services.DashboardService, tenantService services.TenantServiceInterface) *controllers.DashboardController {
	return controllers.NewDashboardController(dashboardService, tenantService)
}
