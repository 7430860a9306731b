package repository

import (
	"context"

	"github.com/sangkips/innkeeper-api/internal/domain/session"
	"gorm.io/gorm"
)

// PropertyScope returns a GORM scope that filters by the session's property.
// It should be applied to every query on property-owned tables.
func PropertyScope(ctx context.Context) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		s, ok := session.FromContext(ctx)
		if !ok {
			// No session: return no rows rather than another property's data
			return db.Where("1 = 0")
		}
		return db.Where("property_id = ?", s.PropertyID)
	}
}

// likePattern wraps a search term for a case-insensitive LIKE
func likePattern(search string) string {
	return "%" + search + "%"
}
