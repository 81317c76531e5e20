package services

import (
	"context"

	"go.uber.org/zap"

	"pulso/internal/models/db_models"
	"pulso/internal/repositories"
	"pulso/pkg/utils"
)

// Display name assigned to a tenant on first access; the org picks its
// real name later through the settings surface.
const defaultTenantName = "Minha Empresa"

type TenantServiceInterface interface {
	ResolveTenant(ctx context.Context, clerkOrgID string) (*db_models.Tenant, error)
}

type TenantService struct {
	tenantRepo repositories.TenantRepository
	logger     *zap.Logger
}

func NewTenantService(tenantRepo repositories.TenantRepository, logger *zap.Logger) TenantServiceInterface {
	return &TenantService{tenantRepo: tenantRepo, logger: logger}
}

// ResolveTenant maps the caller's identity-provider organization onto
// exactly one tenant row, creating it on first access. Repeated calls
// with the same org id return the same tenant.
func (s *TenantService) ResolveTenant(ctx context.Context, clerkOrgID string) (*db_models.Tenant, error) {
	tenant, err := s.tenantRepo.Upsert(ctx, clerkOrgID, defaultTenantName)
	if err != nil {
		s.logger.Error("tenant resolution failed", zap.String("clerk_org_id", clerkOrgID), zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	return tenant, nil
}
