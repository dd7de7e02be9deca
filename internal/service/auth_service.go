package service

import (
	"errors"
	"strings"

	"cricwordle_backend/internal/config"
	"cricwordle_backend/internal/model"
	"cricwordle_backend/internal/repository"
	"cricwordle_backend/internal/util"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService struct {
	UserRepo *repository.UserRepository
	Cfg      *config.Store
}

func NewAuthService(userRepo *repository.UserRepository, cfg *config.Store) *AuthService {
	return &AuthService{
		UserRepo: userRepo,
		Cfg:      cfg,
	}
}

// ValidPassword enforces the registration policy: at least 6 characters
// with at least one digit.
func ValidPassword(password string) bool {
	return len(password) >= 6 && strings.ContainsAny(password, "0123456789")
}

// Register creates a user with a bcrypt-hashed password. Email and username
// must be unique; at most one admin account may exist.
func (s *AuthService) Register(user *model.User, password string, wantAdmin bool) error {
	if _, err := s.UserRepo.FindByEmail(user.Email); err == nil {
		return util.ErrEmailRegistered
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	if _, err := s.UserRepo.FindByUsername(user.Username); err == nil {
		return util.ErrUsernameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	if wantAdmin {
		exists, err := s.UserRepo.AdminExists()
		if err != nil {
			return err
		}
		if exists {
			return util.ErrAdminExists
		}
		user.IsAdmin = true
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.Password = string(hashedPassword)
	return s.UserRepo.Create(user)
}

// Login accepts an email or a username and returns a signed JWT.
func (s *AuthService) Login(identifier, password string) (string, *model.User, error) {
	user, err := s.UserRepo.FindByEmailOrUsername(identifier)
	if err != nil {
		return "", nil, util.ErrInvalidCredential
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, util.ErrInvalidCredential
	}

	jwtCfg := s.Cfg.Load().JWT
	token, err := util.GenerateJWT(user, jwtCfg.Secret, jwtCfg.ExpireTime)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

func (s *AuthService) GetUser(id uint) (*model.User, error) {
	return s.UserRepo.FindByID(id)
}
