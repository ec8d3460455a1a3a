package user

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/kislikjeka/bookstore/internal/shared/validation"
	"github.com/kislikjeka/bookstore/pkg/logger"
)

// Service handles user business logic
type Service struct {
	repo   Repository
	logger *logger.Logger
}

// NewService creates a new user service
func NewService(repo Repository, log *logger.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: log,
	}
}

// Register creates a new account from reg
func (s *Service) Register(ctx context.Context, reg Registration) (validation.Result[*User], error) {
	errs := reg.Validate()
	if errs.HasErrors() {
		return validation.Fail[*User](errs), nil
	}
	reg.Normalize()

	taken, err := s.repo.ExistsByUsername(ctx, reg.Username)
	if err != nil {
		return validation.Result[*User]{}, fmt.Errorf("failed to check username: %w", err)
	}
	if taken {
		errs.Add(FieldUsername, "El usuario ya está registrado")
	}
	taken, err = s.repo.ExistsByEmail(ctx, reg.Email)
	if err != nil {
		return validation.Result[*User]{}, fmt.Errorf("failed to check email: %w", err)
	}
	if taken {
		errs.Add(FieldEmail, "El correo ya está registrado")
	}
	if errs.HasErrors() {
		return validation.Fail[*User](errs), nil
	}

	now := time.Now().UTC()
	u := &User{
		ID:        uuid.New(),
		Username:  reg.Username,
		Email:     reg.Email,
		Role:      reg.Role,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := u.SetPassword(reg.Password); err != nil {
		return validation.Result[*User]{}, err
	}

	if err := s.repo.Create(ctx, u); err != nil {
		return validation.Result[*User]{}, fmt.Errorf("failed to create user: %w", err)
	}
	return validation.OK(u), nil
}

// Login authenticates by username or email.
// Unknown users and wrong passwords both yield ErrInvalidCredentials.
func (s *Service) Login(ctx context.Context, login, password string) (*User, error) {
	u, err := s.repo.GetByLogin(ctx, strings.TrimSpace(login))
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if err := u.CheckPassword(password); err != nil {
		return nil, err
	}

	u.UpdateLastLogin()
	if err := s.repo.Update(ctx, u); err != nil {
		// Non-critical, the login still succeeds
		s.logger.WithContext(ctx).WithError(err).Warn("failed to update last login", "user_id", u.ID)
	}

	return u, nil
}

// GetByID retrieves a user by ID
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*User, error) {
	return s.repo.GetByID(ctx, id)
}

// List retrieves all users
func (s *Service) List(ctx context.Context) ([]*User, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// ChangeRole assigns role to the user, refusing to demote the last admin
func (s *Service) ChangeRole(ctx context.Context, id uuid.UUID, role Role) (*User, error) {
	if !role.Valid() {
		return nil, fmt.Errorf("unknown role %q", role)
	}
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u.Role == role {
		return u, nil
	}
	if u.IsAdmin() {
		if err := s.ensureAnotherAdmin(ctx); err != nil {
			return nil, err
		}
	}

	u.Role = role
	u.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, u); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return u, nil
}

// Delete removes a user, refusing to remove the last admin
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if u.IsAdmin() {
		if err := s.ensureAnotherAdmin(ctx); err != nil {
			return err
		}
	}
	return s.repo.Delete(ctx, id)
}

func (s *Service) ensureAnotherAdmin(ctx context.Context) error {
	admins, err := s.repo.CountByRole(ctx, RoleAdmin)
	if err != nil {
		return fmt.Errorf("failed to count admins: %w", err)
	}
	if admins <= 1 {
		return ErrLastAdmin
	}
	return nil
}

// EnsureAdmin registers reg as an admin when no admin exists yet. It reports
// whether an account was created.
func (s *Service) EnsureAdmin(ctx context.Context, reg Registration) (bool, error) {
	admins, err := s.repo.CountByRole(ctx, RoleAdmin)
	if err != nil {
		return false, fmt.Errorf("failed to count admins: %w", err)
	}
	if admins > 0 {
		return false, nil
	}

	reg.Role = RoleAdmin
	res, err := s.Register(ctx, reg)
	if err != nil {
		return false, err
	}
	if !res.Valid() {
		return false, fmt.Errorf("invalid bootstrap admin: %w", res.Errors)
	}
	s.logger.WithContext(ctx).Info("bootstrap admin created", "username", res.Value.Username)
	return true, nil
}
