package tenant_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"pulso/internal/repositories"
	"pulso/internal/services"
)

var Module = fx.Provide(
	provideTenantRepo, provideTenantService,
)

func provideTenantRepo(db *gorm.DB) repositories.TenantRepository {
	return repositories.NewTenantRepository(db)
}

func provideTenantService(tenantRepo repositories.TenantRepository, logger *zap.Logger) services.TenantServiceInterface {
	return services.NewTenantService(tenantRepo, logger)
}
