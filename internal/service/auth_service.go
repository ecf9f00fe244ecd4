package service

import (
	"errors"
	"pretexta_backend/internal/config"
	"pretexta_backend/internal/model"
	"pretexta_backend/internal/util"
	"pretexta_backend/pkg/logger"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService struct {
	Users UserStore
	Cfg   *config.Config

	dummyOnce sync.Once
	dummyHash []byte
}

func NewAuthService(users UserStore, cfg *config.Config) *AuthService {
	return &AuthService{
		Users: users,
		Cfg:   cfg,
	}
}

type LoginResult struct {
	Token string           `json:"token"`
	User  model.PublicUser `json:"user"`
}

// Login checks the credentials and issues a token. Unknown users and wrong
// passwords fail identically.
func (s *AuthService) Login(username, password string) (*LoginResult, error) {
	user, err := s.Users.FindByUsername(username)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		// burn the same bcrypt work as a real comparison
		bcrypt.CompareHashAndPassword(s.placeholderHash(), []byte(password))
		return nil, util.NewAuthError(util.ErrInvalidCredentials)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, util.NewAuthError(util.ErrInvalidCredentials)
	}

	token, err := util.GenerateJWT(user.ID, s.Cfg.JWT.Secret, s.Cfg.JWT.ExpireTime)
	if err != nil {
		return nil, err
	}

	return &LoginResult{Token: token, User: user.Public()}, nil
}

// Authenticate resolves a bearer token to its user.
func (s *AuthService) Authenticate(token string) (*model.User, error) {
	claims, err := util.ParseJWT(token, s.Cfg.JWT.Secret)
	if err != nil {
		return nil, util.NewAuthError(err)
	}

	user, err := s.Users.FindByID(claims.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.NewAuthError(util.ErrUserNotFound)
		}
		logger.Log.Warn("token user lookup failed", zap.String("user_id", claims.UserID), zap.Error(err))
		return nil, util.NewAuthError(util.ErrInvalidToken)
	}
	return user, nil
}

// EnsureSeedUser creates the configured operator account when it is missing.
func (s *AuthService) EnsureSeedUser() error {
	username := s.Cfg.Seed.Username
	if username == "" {
		return nil
	}

	_, err := s.Users.FindByUsername(username)
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(s.Cfg.Seed.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user := &model.User{
		Username:     username,
		PasswordHash: string(hash),
		IsActive:     true,
	}
	if err := s.Users.Create(user); err != nil {
		return err
	}

	logger.Log.Info("Seed user created", zap.String("username", username))
	return nil
}

func (s *AuthService) placeholderHash() []byte {
	s.dummyOnce.Do(func() {
		s.dummyHash, _ = bcrypt.GenerateFromPassword([]byte("placeholder-password"), bcrypt.DefaultCost)
	})
	return s.dummyHash
}
