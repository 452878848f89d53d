package api

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"

	"github.com/voltshift/ampere/internal/db"
	"github.com/voltshift/ampere/internal/services"
)

const (
	authCookieName = "ampere_token"

	authTokenTTL = 7 * 24 * time.Hour
)

type Handler struct {
	db           *gorm.DB
	secretKey    []byte
	location     *time.Location
	cookieSecure bool

	repositories    *db.Repositories
	authService     *services.AuthService
	scheduleService *services.ScheduleService
}

func NewHandler(database *gorm.DB, secretKey string, location *time.Location) *Handler {
	handler := &Handler{
		db:        database,
		secretKey: []byte(secretKey),
		location:  location,
	}
	return handler.withDependencies(database)
}

type authClaims struct {
	UserID uint `json:"uid"`
	jwt.RegisteredClaims
}
