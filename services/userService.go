package services

import (
	"MediCore/models"
	"MediCore/repositories"
	"MediCore/utils"
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

// ResetCodes stores pending password reset codes.
type ResetCodes interface {
	Set(ctx context.Context, email, code string) error
	Get(ctx context.Context, email string) (string, error)
	Delete(ctx context.Context, email string) error
}

// ProfileUpdate carries the editable fields of a patient profile.
type ProfileUpdate struct {
	Name    string          `json:"name"`
	Phone   string          `json:"phone"`
	Gender  string          `json:"gender"`
	DOB     string          `json:"dob"`
	Image   string          `json:"image"`
	Address *models.Address `json:"address"`
}

type UserService struct {
	users      repositories.UserRepository
	locker     Locker
	resetCodes ResetCodes
	mailer     utils.Mailer
	log        zerolog.Logger
}

func NewUserService(users repositories.UserRepository, locker Locker, resetCodes ResetCodes, mailer utils.Mailer, log zerolog.Logger) *UserService {
	return &UserService{users: users, locker: locker, resetCodes: resetCodes, mailer: mailer, log: log}
}

// Register creates a patient account. Emails are unique across patients.
func (s *UserService) Register(ctx context.Context, name, email, password string) (*models.User, error) {
	email = normalizeEmail(email)
	if err := utils.ValidateRegistration(name, email, password); err != nil {
		return nil, err
	}

	user := &models.User{Name: strings.TrimSpace(name), Email: email}
	err := s.locker.WithLock(ctx, lockKey("user", email), func() error {
		taken, err := s.users.EmailExists(ctx, email)
		if err != nil {
			return fmt.Errorf("failed to check email: %w", err)
		}
		if taken {
			return utils.Conflict("User already exists")
		}
		hashed, err := utils.HashPassword(password)
		if err != nil {
			return fmt.Errorf("failed to hash password: %w", err)
		}
		user.Password = hashed
		return s.users.Create(ctx, user)
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

// Login verifies the credentials of an active patient.
func (s *UserService) Login(ctx context.Context, email, password string) (*models.User, error) {
	if err := utils.ValidateLogin(email, password); err != nil {
		return nil, err
	}
	user, err := s.users.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil || !user.IsActive || !utils.CheckPassword(user.Password, password) {
		return nil, utils.Unauthorized("Invalid credentials")
	}
	return user, nil
}

func (s *UserService) GetProfile(ctx context.Context, id string) (*models.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return nil, utils.NotFound("User not found")
	}
	return user, nil
}

func (s *UserService) UpdateProfile(ctx context.Context, id string, update ProfileUpdate) (*models.User, error) {
	user, err := s.GetProfile(ctx, id)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(update.Name) == "" {
		return nil, utils.Validation("name: cannot be blank.")
	}
	user.Name = strings.TrimSpace(update.Name)
	user.Phone = update.Phone
	user.Gender = update.Gender
	user.DOB = update.DOB
	if update.Image != "" {
		user.Image = update.Image
	}
	if update.Address != nil {
		user.Address = *update.Address
	}
	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// SendResetCode emails a one-time code that ResetPassword accepts for 15 minutes.
func (s *UserService) SendResetCode(ctx context.Context, email string) error {
	email = normalizeEmail(email)
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil || !user.IsActive {
		return utils.NotFound("User not found")
	}

	code, err := utils.GenerateResetCode()
	if err != nil {
		return err
	}
	if err := s.resetCodes.Set(ctx, email, code); err != nil {
		return fmt.Errorf("failed to store reset code: %w", err)
	}
	if err := s.mailer.SendResetCode(email, code); err != nil {
		return fmt.Errorf("failed to send reset code: %w", err)
	}
	s.log.Info().Str("user_id", user.ID).Msg("password reset code sent")
	return nil
}

func (s *UserService) ResetPassword(ctx context.Context, email, code, newPassword string) error {
	email = normalizeEmail(email)
	if err := utils.ValidatePasswordReset(email, code, newPassword); err != nil {
		return err
	}

	stored, err := s.resetCodes.Get(ctx, email)
	if err != nil {
		return fmt.Errorf("failed to get reset code: %w", err)
	}
	if stored == "" || stored != code {
		return utils.Validation("Invalid or expired reset code")
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return utils.NotFound("User not found")
	}
	hashed, err := utils.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	if err := s.users.UpdatePassword(ctx, user.ID, hashed); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	if err := s.resetCodes.Delete(ctx, email); err != nil {
		s.log.Warn().Err(err).Msg("failed to delete used reset code")
	}
	return nil
}
