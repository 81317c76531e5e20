package db_models

// Tenant is one organization as resolved from the identity provider.
// clerk_org_id carries a unique index so concurrent first access cannot
// create duplicates (find-or-create is an upsert on this column).
type Tenant struct {
	BaseModel
	ClerkOrgID string `gorm:"type:text;not null;uniqueIndex"`
	Name       string `gorm:"type:text;not null"`
}
