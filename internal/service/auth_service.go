package service

import (
	"context"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"restopanel/internal/apierror"
	"restopanel/internal/config"
	"restopanel/internal/datamode"
	"restopanel/internal/dto"
	"restopanel/internal/model"
	"restopanel/internal/repository"
)

type AuthService interface {
	SignUp(ctx context.Context, req dto.SignUpRequest) (*dto.SessionResponse, error)
	SignIn(ctx context.Context, email, password string) (*dto.SessionResponse, error)
	// SignOut never fails the caller: the session is discarded client-side
	// regardless of what happens here.
	SignOut(ctx context.Context, userID string)
	Me(ctx context.Context, userID string) (*dto.UserResponse, error)
}

type authService struct {
	repos *repository.Store
	cfg   *config.Config
}

func NewAuthService(repos *repository.Store, cfg *config.Config) AuthService {
	return &authService{repos: repos, cfg: cfg}
}

func (s *authService) SignUp(ctx context.Context, req dto.SignUpRequest) (*dto.SessionResponse, error) {
	repos, err := s.repos.Active()
	if err != nil {
		return nil, err
	}

	email := strings.ToLower(req.Email)

	// Duplicate identities only exist remotely; mock sign-up always succeeds.
	if s.repos.Mode() == datamode.Remote {
		if _, err := repos.Users.GetByEmail(ctx, email); err == nil {
			return nil, apierror.NewAuth("an account with this email already exists")
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), 12)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &model.User{
		ID:           uuid.NewString(),
		Email:        email,
		Name:         req.Name,
		Role:         model.Role(req.Role),
		Phone:        req.Phone,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := repos.Users.Create(ctx, user); err != nil {
		return nil, err
	}
	return s.session(user)
}

func (s *authService) SignIn(ctx context.Context, email, password string) (*dto.SessionResponse, error) {
	repos, err := s.repos.Active()
	if err != nil {
		return nil, err
	}

	user, err := repos.Users.GetByEmail(ctx, strings.ToLower(email))
	if err != nil {
		return nil, apierror.NewAuth("invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, apierror.NewAuth("invalid credentials")
	}
	// An identity without profile data cannot drive the panel.
	if user.Role == "" || user.Name == "" {
		return nil, apierror.NewAuth("profile not found")
	}
	return s.session(user)
}

func (s *authService) SignOut(_ context.Context, userID string) {
	// Stateless JWTs: nothing to revoke server-side. Failures here must never
	// block the client from clearing its session.
	log.Info().Str("user_id", userID).Msg("signed out")
}

func (s *authService) Me(ctx context.Context, userID string) (*dto.UserResponse, error) {
	repos, err := s.repos.Active()
	if err != nil {
		return nil, err
	}
	user, err := repos.Users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	resp := userToResponse(user)
	return &resp, nil
}

func (s *authService) session(user *model.User) (*dto.SessionResponse, error) {
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"email":   user.Email,
		"role":    string(user.Role),
		"exp":     time.Now().Add(time.Duration(s.cfg.JWTExpirationHours) * time.Hour).Unix(),
		"iat":     time.Now().Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return nil, err
	}
	return &dto.SessionResponse{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresIn:   s.cfg.JWTExpirationHours * 3600,
		User:        userToResponse(user),
	}, nil
}

func userToResponse(u *model.User) dto.UserResponse {
	return dto.UserResponse{
		ID:           u.ID,
		Email:        u.Email,
		Name:         u.Name,
		Role:         string(u.Role),
		Phone:        u.Phone,
		RestaurantID: u.RestaurantID,
	}
}
