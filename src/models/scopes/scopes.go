package scopes

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WithTenant scopes a query to one tenant's rows. Tenant scoping is an
// explicit parameter on every query rather than ambient request state.
func WithTenant(tenantID uuid.UUID) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("tenant_id = ?", tenantID)
	}
}

func WithID(id uuid.UUID) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("id = ?", id)
	}
}

func Paginated(pageNumber, pageSize int) func(db *gorm.DB) *gorm.DB {
	if pageNumber < 1 {
		pageNumber = 1
	}
	if pageSize < 1 {
		pageSize = 1
	}
	if pageSize > 200 {
		pageSize = 200
	}
	return func(db *gorm.DB) *gorm.DB {
		return db.Offset((pageNumber - 1) * pageSize).Limit(pageSize)
	}
}
