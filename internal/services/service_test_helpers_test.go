package services

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/voltshift/ampere/internal/db"
	"github.com/voltshift/ampere/internal/models"
	"gorm.io/gorm"
)

func newTestRepositories(t *testing.T) (*db.Repositories, *gorm.DB) {
	t.Helper()

	databasePath := filepath.Join(t.TempDir(), "ampere-service-test.db")
	database, err := db.OpenSQLite(databasePath)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("open sql db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	return db.NewRepositories(database), database
}

func createTestUser(t *testing.T, database *gorm.DB, username string) models.User {
	t.Helper()

	user := models.User{
		Username:     username,
		PasswordHash: "test-hash",
		CreatedAt:    time.Now(),
	}
	if err := database.Create(&user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	return user
}
