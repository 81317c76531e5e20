package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"pulso/internal/models/db_models"
)

type TenantRepository interface {
	Upsert(ctx context.Context, clerkOrgID, defaultName string) (*db_models.Tenant, error)
	FindTenantByID(ctx context.Context, id uuid.UUID) (*db_models.Tenant, error)
}

type tenantRepository struct {
	db *gorm.DB
}

func NewTenantRepository(db *gorm.DB) TenantRepository {
	return &tenantRepository{db: db}
}

// Upsert is the atomic find-or-create behind tenant resolution. The
// insert does nothing on a clerk_org_id conflict, so two concurrent
// first accesses converge on the same row; the follow-up read returns
// it in both cases.
func (r *tenantRepository) Upsert(ctx context.Context, clerkOrgID, defaultName string) (*db_models.Tenant, error) {
	candidate := db_models.Tenant{ClerkOrgID: clerkOrgID, Name: defaultName}

	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "clerk_org_id"}},
			DoNothing: true,
		}).
		Create(&candidate).Error
	if err != nil {
		return nil, err
	}

	var tenant db_models.Tenant
	if err := r.db.WithContext(ctx).First(&tenant, "clerk_org_id = ?", clerkOrgID).Error; err != nil {
		return nil, err
	}

	return &tenant, nil
}

func (r *tenantRepository) FindTenantByID(ctx context.Context, id uuid.UUID) (*db_models.Tenant, error) {
	var tenant db_models.Tenant
	err := r.db.WithContext(ctx).First(&tenant, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &tenant, nil
}
