package database

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/sangkips/innkeeper-api/internal/config"
	"github.com/sangkips/innkeeper-api/internal/domain/entity"
	"github.com/sangkips/innkeeper-api/internal/domain/session"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedDefaultData creates the first property and, when configured, its admin
// user. Running it again leaves existing rows alone.
func SeedDefaultData(db *gorm.DB, cfg *config.SeedConfig) (*entity.Property, error) {
	log.Println("Seeding default data...")

	var property entity.Property
	err := db.Order("created_at ASC").First(&property).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		property = entity.Property{Name: cfg.PropertyName}
		if property.Name == "" {
			property.Name = "My Hotel"
		}
		if err := db.Create(&property).Error; err != nil {
			return nil, fmt.Errorf("failed to create default property: %w", err)
		}
		log.Printf("Default property created: %s", property.Name)
	case err != nil:
		return nil, fmt.Errorf("failed to load default property: %w", err)
	}

	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		log.Println("Default data seeding completed")
		return &property, nil
	}

	var existingAdmin entity.User
	if err := db.Where("email = ?", cfg.AdminEmail).First(&existingAdmin).Error; err == nil {
		log.Printf("Admin user already exists: %s", cfg.AdminEmail)
		return &property, nil
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("Warning: failed to hash admin password: %v", err)
		return &property, nil
	}

	firstName, lastName := "Admin", ""
	if local, _, ok := strings.Cut(cfg.AdminEmail, "@"); ok && local != "" {
		firstName = local
	}

	admin := entity.User{
		PropertyID: property.ID,
		FirstName:  firstName,
		LastName:   lastName,
		Email:      strings.ToLower(cfg.AdminEmail),
		Password:   string(hashedPassword),
		Role:       session.RoleAdmin,
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Printf("Warning: failed to create admin user: %v", err)
	} else {
		log.Printf("Admin user created: %s", cfg.AdminEmail)
	}

	log.Println("Default data seeding completed")
	return &property, nil
}
