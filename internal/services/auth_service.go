package services

import (
	"errors"
	"time"

	"github.com/voltshift/ampere/internal/models"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrUsernameTaken      = errors.New("username already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type AuthUserRepository interface {
	ExistsByUsername(username string) (bool, error)
	FindByUsername(username string) (models.User, error)
	FindByID(userID uint) (models.User, error)
	Create(user *models.User) error
}

type AuthService struct {
	users AuthUserRepository
}

func NewAuthService(users AuthUserRepository) *AuthService {
	return &AuthService{users: users}
}

// Register creates the account and returns its identity. The password is
// stored only as a bcrypt hash.
func (service *AuthService) Register(username string, password string, email *string) (models.Account, error) {
	exists, err := service.users.ExistsByUsername(username)
	if err != nil {
		return models.Account{}, err
	}
	if exists {
		return models.Account{}, ErrUsernameTaken
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.Account{}, err
	}

	user := models.User{
		Username:     username,
		PasswordHash: string(passwordHash),
		Email:        email,
		CreatedAt:    time.Now(),
	}
	if err := service.users.Create(&user); err != nil {
		// The unique index may race a concurrent insert of the same name.
		return models.Account{}, ErrUsernameTaken
	}

	return user.Account(), nil
}

// Login distinguishes a missing account from a bad password for callers that
// log outcomes; the HTTP boundary collapses both into one message.
func (service *AuthService) Login(username string, password string) (models.Account, error) {
	user, err := service.users.FindByUsername(username)
	if err != nil {
		return models.Account{}, ErrUserNotFound
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return models.Account{}, ErrInvalidCredentials
	}

	return user.Account(), nil
}

func (service *AuthService) FindByID(userID uint) (models.User, error) {
	return service.users.FindByID(userID)
}
