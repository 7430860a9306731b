package database

import (
	"testing"

	"github.com/sangkips/innkeeper-api/internal/config"
	"github.com/sangkips/innkeeper-api/internal/domain/entity"
	"github.com/sangkips/innkeeper-api/internal/domain/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := NewSQLiteDB(":memory:", false)
	require.NoError(t, err)
	require.NoError(t, AutoMigrate(db))
	return db
}

func TestAutoMigrate_CreatesTables(t *testing.T) {
	db := setupTestDB(t)

	for _, table := range []string{"properties", "users", "rooms", "bookings", "extra_charges",
		"payments", "revenue_entries", "food_items", "food_orders", "food_order_items", "idempotency_keys"} {
		assert.True(t, db.Migrator().HasTable(table), table)
	}
}

func TestOpen_UnknownDriver(t *testing.T) {
	_, err := Open(&config.DatabaseConfig{Driver: "mysql"}, false)
	assert.Error(t, err)
}

func TestSeedDefaultData(t *testing.T) {
	db := setupTestDB(t)
	cfg := &config.SeedConfig{PropertyName: "Sea View", AdminEmail: "owner@seaview.in", AdminPassword: "secret123"}

	property, err := SeedDefaultData(db, cfg)
	require.NoError(t, err)
	assert.Equal(t, "Sea View", property.Name)
	assert.Equal(t, "Rs.", property.Settings.CurrencySymbol)

	var admin entity.User
	require.NoError(t, db.First(&admin, "email = ?", cfg.AdminEmail).Error)
	assert.Equal(t, property.ID, admin.PropertyID)
	assert.Equal(t, session.RoleAdmin, admin.Role)
	assert.NotEqual(t, cfg.AdminPassword, admin.Password)

	// Second run is a no-op
	again, err := SeedDefaultData(db, cfg)
	require.NoError(t, err)
	assert.Equal(t, property.ID, again.ID)

	var users, properties int64
	db.Model(&entity.User{}).Count(&users)
	db.Model(&entity.Property{}).Count(&properties)
	assert.Equal(t, int64(1), users)
	assert.Equal(t, int64(1), properties)
}

func TestSeedDefaultData_WithoutAdmin(t *testing.T) {
	db := setupTestDB(t)

	property, err := SeedDefaultData(db, &config.SeedConfig{})
	require.NoError(t, err)
	assert.Equal(t, "My Hotel", property.Name)

	var users int64
	db.Model(&entity.User{}).Count(&users)
	assert.Zero(t, users)
}
