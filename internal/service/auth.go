package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/yogi-fashion/embroidery-service/internal/apperror"
	"github.com/yogi-fashion/embroidery-service/internal/db/repository"
	"github.com/yogi-fashion/embroidery-service/internal/models"
	"github.com/yogi-fashion/embroidery-service/internal/validation"
)

// JWTConfig holds configuration for JWT token generation
type JWTConfig struct {
	Secret    string
	ExpiresIn int // hours
}

// AuthService registers users and verifies their credentials
type AuthService struct {
	users     *repository.UserRepository
	jwtConfig JWTConfig
	cost      int
	dummyHash []byte
}

// NewAuthService creates a new authentication service. A cost outside
// bcrypt's range falls back to bcrypt.DefaultCost.
func NewAuthService(users *repository.UserRepository, jwtConfig JWTConfig, cost int) (*AuthService, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}

	// Compared against when the username is unknown, so both login
	// failures cost one bcrypt check.
	dummy, err := bcrypt.GenerateFromPassword([]byte("not-a-real-password"), cost)
	if err != nil {
		return nil, fmt.Errorf("prepare dummy hash: %w", err)
	}

	return &AuthService{
		users:     users,
		jwtConfig: jwtConfig,
		cost:      cost,
		dummyHash: dummy,
	}, nil
}

// maxPasswordBytes is the longest input bcrypt hashes.
const maxPasswordBytes = 72

func checkPasswordLength(field, password string) error {
	if len(password) > maxPasswordBytes {
		return apperror.NewFieldError(apperror.ErrInvalidFormat, field)
	}
	return nil
}

// Claims represents JWT claims
type Claims struct {
	UserID string `json:"user_id"`
	jwt.RegisteredClaims
}

// Register stores a new user with a bcrypt hash of password and returns
// the new id.
func (s *AuthService) Register(ctx context.Context, username, password string) (uuid.UUID, error) {
	if err := validation.RequireNonEmpty(
		validation.F("username", username),
		validation.F("password", password),
	); err != nil {
		return uuid.Nil, err
	}
	if err := checkPasswordLength("password", password); err != nil {
		return uuid.Nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		Username:     username,
		PasswordHash: string(hashedPassword),
	}

	id, err := s.users.Create(ctx, &user)
	if err != nil {
		return uuid.Nil, err
	}

	log.Info().Str("user_id", id.String()).Str("username", username).Msg("user registered")
	return id, nil
}

// RegisterConfirmed is Register for forms that ask for the password twice.
func (s *AuthService) RegisterConfirmed(ctx context.Context, username, password, confirm string) (uuid.UUID, error) {
	if err := validation.RequireNonEmpty(
		validation.F("username", username),
		validation.F("password", password),
	); err != nil {
		return uuid.Nil, err
	}
	if password != confirm {
		return uuid.Nil, apperror.NewFieldError(apperror.ErrPasswordMismatch, "confirm_password")
	}
	return s.Register(ctx, username, password)
}

// Login verifies username and password and returns the user's id. An
// unknown user and a wrong password fail the same way.
func (s *AuthService) Login(ctx context.Context, username, password string) (uuid.UUID, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if !errors.Is(err, apperror.ErrNotFound) {
			return uuid.Nil, err
		}
		_ = bcrypt.CompareHashAndPassword(s.dummyHash, []byte(password))
		return uuid.Nil, apperror.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return uuid.Nil, apperror.ErrInvalidCredentials
	}

	return user.ID, nil
}

// ChangePassword replaces the password of userID after checking current.
func (s *AuthService) ChangePassword(ctx context.Context, userID uuid.UUID, currentPassword, newPassword string) error {
	if err := validation.RequireNonEmpty(validation.F("new_password", newPassword)); err != nil {
		return err
	}
	if err := checkPasswordLength("new_password", newPassword); err != nil {
		return err
	}

	user, err := s.users.Get(ctx, userID)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(currentPassword)); err != nil {
		return apperror.ErrInvalidCredentials
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), s.cost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	return s.users.UpdatePassword(ctx, userID, string(hashedPassword))
}

// IssueToken generates a signed session token for userID
func (s *AuthService) IssueToken(userID uuid.UUID) (string, error) {
	now := time.Now()
	expirationTime := now.Add(time.Duration(s.jwtConfig.ExpiresIn) * time.Hour)

	claims := &Claims{
		UserID: userID.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expirationTime),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.jwtConfig.Secret))
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// ValidateToken validates a JWT token and returns the claims
func (s *AuthService) ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.jwtConfig.Secret), nil
	})

	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperror.ErrInvalidCredentials, err)
	}

	if !token.Valid {
		return nil, apperror.ErrInvalidCredentials
	}

	return claims, nil
}

// UserIDFromToken validates tokenString and returns the user id it carries
func (s *AuthService) UserIDFromToken(tokenString string) (uuid.UUID, error) {
	claims, err := s.ValidateToken(tokenString)
	if err != nil {
		return uuid.Nil, err
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: invalid user ID in token", apperror.ErrInvalidCredentials)
	}

	return userID, nil
}
