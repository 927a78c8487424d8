package services

import (
	"MediCore/models"
	"MediCore/repositories"
	"MediCore/utils"
	"context"
	"fmt"

	"github.com/rs/zerolog"
)

type StaffService struct {
	staff  repositories.StaffRepository
	locker Locker
	mailer utils.Mailer
	clock  Clock
	log    zerolog.Logger
}

func NewStaffService(staff repositories.StaffRepository, locker Locker, mailer utils.Mailer, clock Clock, log zerolog.Logger) *StaffService {
	return &StaffService{staff: staff, locker: locker, mailer: mailer, clock: clock, log: log}
}

// Register creates a staff account. Emails are unique across staff.
func (s *StaffService) Register(ctx context.Context, staff *models.Staff) error {
	staff.Email = normalizeEmail(staff.Email)
	if err := utils.ValidateStaff(staff, true); err != nil {
		return err
	}

	err := s.locker.WithLock(ctx, lockKey("staff", staff.Email), func() error {
		taken, err := s.staff.EmailExists(ctx, staff.Email)
		if err != nil {
			return fmt.Errorf("failed to check email: %w", err)
		}
		if taken {
			return utils.Conflict("Staff member with this email already exists")
		}
		hashed, err := utils.HashPassword(staff.Password)
		if err != nil {
			return fmt.Errorf("failed to hash password: %w", err)
		}
		staff.Password = hashed
		if staff.JoiningDate.IsZero() {
			staff.JoiningDate = s.clock()
		}
		return s.staff.Create(ctx, staff)
	})
	if err != nil {
		return err
	}

	if err := s.mailer.SendStaffWelcome(staff.Email, staff.Name, staff.Role); err != nil {
		s.log.Warn().Err(err).Str("staff_id", staff.ID).Msg("failed to send welcome email")
	}
	return nil
}

func (s *StaffService) Login(ctx context.Context, email, password string) (*models.Staff, error) {
	if err := utils.ValidateLogin(email, password); err != nil {
		return nil, err
	}
	staff, err := s.staff.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return nil, fmt.Errorf("failed to get staff: %w", err)
	}
	if staff == nil || !utils.CheckPassword(staff.Password, password) {
		return nil, utils.Unauthorized("Invalid credentials")
	}
	return staff, nil
}

func (s *StaffService) GetAll(ctx context.Context) ([]models.Staff, error) {
	return s.staff.GetAll(ctx)
}

func (s *StaffService) GetByDepartment(ctx context.Context, department string) ([]models.Staff, error) {
	return s.staff.GetByDepartment(ctx, department)
}

// GetByID also returns deactivated staff.
func (s *StaffService) GetByID(ctx context.Context, id string) (*models.Staff, error) {
	staff, err := s.staff.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get staff: %w", err)
	}
	if staff == nil {
		return nil, utils.NotFound("Staff member not found")
	}
	return staff, nil
}

// Update replaces the editable fields. The password is re-hashed only when a new one is supplied.
func (s *StaffService) Update(ctx context.Context, id string, update *models.Staff) (*models.Staff, error) {
	current, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	update.Email = normalizeEmail(update.Email)
	if err := utils.ValidateStaff(update, false); err != nil {
		return nil, err
	}

	apply := func() error {
		if update.Email != current.Email {
			taken, err := s.staff.EmailExists(ctx, update.Email)
			if err != nil {
				return fmt.Errorf("failed to check email: %w", err)
			}
			if taken {
				return utils.Conflict("Staff member with this email already exists")
			}
		}
		current.Name = update.Name
		current.Email = update.Email
		current.Image = update.Image
		current.Phone = update.Phone
		current.Role = update.Role
		current.Department = update.Department
		current.Address = update.Address
		current.Salary = update.Salary
		if !update.JoiningDate.IsZero() {
			current.JoiningDate = update.JoiningDate
		}
		if update.Password != "" {
			hashed, err := utils.HashPassword(update.Password)
			if err != nil {
				return fmt.Errorf("failed to hash password: %w", err)
			}
			current.Password = hashed
		}
		return s.staff.Update(ctx, current)
	}

	if update.Email != current.Email {
		err = s.locker.WithLock(ctx, lockKey("staff", update.Email), apply)
	} else {
		err = apply()
	}
	if err != nil {
		return nil, err
	}
	return current, nil
}

func (s *StaffService) Delete(ctx context.Context, id string) error {
	ok, err := s.staff.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return utils.NotFound("Staff member not found")
	}
	return nil
}
