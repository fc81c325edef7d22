package service

import (
	"context"
	"fmt"

	"github.com/blog-platform-api/internal/clock"
	"github.com/blog-platform-api/internal/config"
	"github.com/blog-platform-api/internal/models"
	"github.com/blog-platform-api/internal/repository"
	"github.com/blog-platform-api/internal/validation"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// authService is the concrete implementation of AuthService
type authService struct {
	users repository.UserRepository
	cfg   *config.Config
	clk   clock.Clock
	log   zerolog.Logger
}

func newAuthService(users repository.UserRepository, cfg *config.Config, clk clock.Clock, log zerolog.Logger) *authService {
	return &authService{
		users: users,
		cfg:   cfg,
		clk:   clk,
		log:   log.With().Str("component", "auth").Logger(),
	}
}

// Register creates a new user account. Field-level problems (including
// taken username/email) come back as validation errors, not failures.
func (s *authService) Register(ctx context.Context, req *models.RegisterRequest) (*models.User, []models.FieldError, error) {
	errs := validation.ValidateRegister(req)
	if len(errs) == 0 {
		taken, err := s.users.UsernameExists(ctx, req.Username)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to check username: %w", err)
		}
		if taken {
			errs = append(errs, models.FieldError{Field: "username", Message: "username already taken", Value: req.Username})
		}

		taken, err = s.users.EmailExists(ctx, req.Email)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to check email: %w", err)
		}
		if taken {
			errs = append(errs, models.FieldError{Field: "email", Message: "email already registered", Value: req.Email})
		}
	}
	if len(errs) > 0 {
		return nil, errs, nil
	}

	user := &models.User{
		ID:        uuid.New().String(),
		Username:  req.Username,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		CreatedAt: s.clk.Now(),
	}

	if err := s.users.Create(ctx, user, req.Password); err != nil {
		return nil, nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.log.Info().Str("user_id", user.ID).Str("username", user.Username).Msg("User registered")
	return user, nil, nil
}

// Login checks credentials and issues an access token
func (s *authService) Login(ctx context.Context, username, password string) (*models.User, string, error) {
	user, err := s.users.VerifyPassword(ctx, username, password)
	if err != nil {
		return nil, "", fmt.Errorf("authentication failed: %w", err)
	}

	token, err := s.generateAccessToken(user)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate access token: %w", err)
	}

	return user, token, nil
}

// ValidateToken parses and verifies an access token and returns the
// actor identity it carries
func (s *authService) ValidateToken(tokenString string) (*models.Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.Auth.JWTSecret), nil
	}, jwt.WithTimeFunc(s.clk.Now))
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("unexpected claims type")
	}

	userID, _ := claims["userId"].(string)
	username, _ := claims["username"].(string)
	if userID == "" {
		return nil, fmt.Errorf("token missing user id")
	}

	return &models.Claims{UserID: userID, Username: username}, nil
}

func (s *authService) generateAccessToken(user *models.User) (string, error) {
	now := s.clk.Now()
	claims := jwt.MapClaims{
		"userId":   user.ID,
		"username": user.Username,
		"exp":      now.Add(s.cfg.Auth.AccessTokenTTL).Unix(),
		"iat":      now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.Auth.JWTSecret))
}
