package identity

import (
	"context"
	"fmt"
	"strings"
	"time"

	"dripstore/internal/logger"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Service owns registration, authentication and the explicit session
// handle. Mutations persist immediately; there are no implicit globals.
type Service interface {
	Register(ctx context.Context, input RegisterInput) (User, error)
	Login(ctx context.Context, email, password string) (User, error)
	Logout(ctx context.Context) error
	Current(ctx context.Context) (User, bool, error)
	Update(ctx context.Context, u User) (User, error)
	ToggleWishlist(ctx context.Context, userID, productID string) (User, error)
	Users(ctx context.Context) ([]User, error)
}

type service struct {
	repo     Repository
	validate *validator.Validate
	limiter  *loginLimiter
}

func NewService(repo Repository) Service {
	return &service{
		repo:     repo,
		validate: validator.New(),
		limiter:  newLoginLimiter(),
	}
}

func (s *service) Users(ctx context.Context) ([]User, error) {
	return s.repo.ListUsers(ctx)
}

// Register creates the user and opens a session for them.
func (s *service) Register(ctx context.Context, input RegisterInput) (User, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Register"),
		zap.String("email", input.Email),
	)

	if err := s.validate.Struct(input); err != nil {
		log.Warn("invalid registration input", zap.Error(err))
		return User{}, fmt.Errorf("invalid registration: %w", err)
	}

	users, err := s.repo.ListUsers(ctx)
	if err != nil {
		log.Error("failed to load users", zap.Error(err))
		return User{}, err
	}
	for _, u := range users {
		if strings.EqualFold(u.Email, input.Email) {
			log.Warn("email already registered")
			return User{}, ErrEmailExists
		}
	}

	hashed, err := HashPassword(input.Password)
	if err != nil {
		log.Error("failed to hash password", zap.Error(err))
		return User{}, err
	}

	u := User{
		ID:         uuid.New().String(),
		Name:       input.Name,
		Email:      input.Email,
		Password:   hashed,
		Phone:      input.Phone,
		JoinedDate: time.Now().UTC(),
		Wishlist:   []string{},
	}

	if err := s.repo.SaveUsers(ctx, append(users, u)); err != nil {
		log.Error("failed to save users", zap.Error(err))
		return User{}, err
	}

	if err := s.openSession(ctx, u); err != nil {
		log.Error("failed to open session", zap.Error(err))
		return User{}, err
	}

	log.Info("user registered", zap.String("user_id", u.ID))
	return u, nil
}

func (s *service) Login(ctx context.Context, email, password string) (User, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Login"),
		zap.String("email", email),
	)

	if !s.limiter.allow(email) {
		log.Warn("login throttled")
		return User{}, ErrTooManyAttempts
	}

	users, err := s.repo.ListUsers(ctx)
	if err != nil {
		log.Error("failed to load users", zap.Error(err))
		return User{}, err
	}

	for _, u := range users {
		if !strings.EqualFold(u.Email, email) {
			continue
		}
		if !CheckPasswordHash(password, u.Password) {
			log.Warn("password mismatch")
			return User{}, ErrInvalidCredentials
		}
		if err := s.openSession(ctx, u); err != nil {
			log.Error("failed to open session", zap.Error(err))
			return User{}, err
		}
		log.Info("login succeeded", zap.String("user_id", u.ID))
		return u, nil
	}

	log.Warn("email not found")
	return User{}, ErrInvalidCredentials
}

func (s *service) Logout(ctx context.Context) error {
	return s.repo.ClearSession(ctx)
}

// Current resolves the persisted session pointer. An absent, expired
// or tampered token reads as "no session", not as an error. The user
// record is resolved by id on every call, so profile updates are
// always reflected.
func (s *service) Current(ctx context.Context) (User, bool, error) {
	token, err := s.repo.SessionToken(ctx)
	if err != nil {
		return User{}, false, err
	}
	if token == "" {
		return User{}, false, nil
	}

	claims, err := ParseSessionToken(token)
	if err != nil {
		return User{}, false, nil
	}

	users, err := s.repo.ListUsers(ctx)
	if err != nil {
		return User{}, false, err
	}
	for _, u := range users {
		if u.ID == claims.UserID {
			return u, true, nil
		}
	}
	return User{}, false, nil
}

// Update replaces the stored user by id. The session pointer holds an
// id, so the session view refreshes with it.
func (s *service) Update(ctx context.Context, u User) (User, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Update"),
		zap.String("user_id", u.ID),
	)

	users, err := s.repo.ListUsers(ctx)
	if err != nil {
		return User{}, err
	}

	found := false
	for i := range users {
		if users[i].ID == u.ID {
			users[i] = u
			found = true
			break
		}
	}
	if !found {
		return User{}, ErrUserNotFound
	}

	if err := s.repo.SaveUsers(ctx, users); err != nil {
		log.Error("failed to save users", zap.Error(err))
		return User{}, err
	}
	log.Info("user updated")
	return u, nil
}

// ToggleWishlist flips the product's membership in the user's wishlist.
func (s *service) ToggleWishlist(ctx context.Context, userID, productID string) (User, error) {
	users, err := s.repo.ListUsers(ctx)
	if err != nil {
		return User{}, err
	}

	for i := range users {
		if users[i].ID != userID {
			continue
		}

		wishlist := make([]string, 0, len(users[i].Wishlist)+1)
		removed := false
		for _, id := range users[i].Wishlist {
			if id == productID {
				removed = true
				continue
			}
			wishlist = append(wishlist, id)
		}
		if !removed {
			wishlist = append(wishlist, productID)
		}
		users[i].Wishlist = wishlist

		if err := s.repo.SaveUsers(ctx, users); err != nil {
			return User{}, err
		}
		return users[i], nil
	}

	return User{}, ErrUserNotFound
}

func (s *service) openSession(ctx context.Context, u User) error {
	token, err := GenerateSessionToken(u.ID, u.Email)
	if err != nil {
		return err
	}
	return s.repo.SetSessionToken(ctx, token)
}
