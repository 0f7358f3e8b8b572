package user

import (
	"context"
	"regexp"
	"strings"

	"Feira/internal/domain/shared"
	appErrors "Feira/internal/errors"
	"Feira/internal/pkg"

	"github.com/oklog/ulid/v2"
	"golang.org/x/crypto/bcrypt"
)

type Service struct {
	Repository Repository
}

func NewService(repo Repository) *Service {
	return &Service{Repository: repo}
}

func (s *Service) Create(ctx context.Context, entity *User) error {
	entity.Id = pkg.GenerateULIDObject()

	now := pkg.SetTimestamps()
	entity.CreatedAt = now
	entity.UpdatedAt = now
	entity.Name = shared.NormalizeName(entity.Name)

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(entity.Password), 12)
	if err != nil {
		return appErrors.ErrInternalServer.WithError(err)
	}
	entity.Password = string(hashedPassword)

	return s.Repository.Create(ctx, entity)
}

func (s *Service) Delete(ctx context.Context, id ulid.ULID) error {
	return s.Repository.Delete(ctx, id)
}

func (s *Service) GetByID(ctx context.Context, id ulid.ULID) (*User, error) {
	return s.Repository.GetById(ctx, id)
}

func (s *Service) GetByEmail(ctx context.Context, email string) (*User, error) {
	return s.Repository.GetByEmail(ctx, email)
}

func (s *Service) Exists(ctx context.Context, userID ulid.ULID) error {
	_, err := s.GetByID(ctx, userID)
	return err
}

func (s *Service) UpdateName(ctx context.Context, userID ulid.ULID, name string) error {
	if strings.TrimSpace(name) == "" {
		return appErrors.NewValidationError("name", "nome não pode estar vazio")
	}

	entity, err := s.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	entity.Name = shared.NormalizeName(name)
	entity.UpdatedAt = pkg.SetTimestamps()

	return s.Repository.Update(ctx, entity)
}

func (s *Service) UpdatePassword(ctx context.Context, userID ulid.ULID, currentPassword, newPassword string) error {
	entity, err := s.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(entity.Password), []byte(currentPassword)); err != nil {
		return appErrors.ErrInvalidCredentials
	}

	if err := validatePasswordRequirements(newPassword); err != nil {
		return err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), 12)
	if err != nil {
		return appErrors.ErrInternalServer.WithError(err)
	}

	entity.Password = string(hashedPassword)
	entity.UpdatedAt = pkg.SetTimestamps()

	return s.Repository.Update(ctx, entity)
}

// UserServiceAdapter expõe o serviço por trás das interfaces de shared sem
// criar dependência cíclica entre os domínios.
type UserServiceAdapter struct {
	service *Service
}

func NewUserServiceAdapter(service *Service) *UserServiceAdapter {
	return &UserServiceAdapter{service: service}
}

func (a *UserServiceAdapter) Exists(ctx context.Context, userID ulid.ULID) error {
	return a.service.Exists(ctx, userID)
}

func (a *UserServiceAdapter) GetByID(ctx context.Context, userID ulid.ULID) (interface{}, error) {
	return a.service.GetByID(ctx, userID)
}

func validatePasswordRequirements(password string) error {
	if len(password) < 8 {
		return appErrors.NewValidationError("new_password", "deve conter no mínimo 8 caracteres")
	}
	hasUpper, _ := regexp.MatchString(`[A-Z]`, password)
	if !hasUpper {
		return appErrors.NewValidationError("new_password", "deve conter ao menos uma letra maiúscula")
	}
	hasSpecial, _ := regexp.MatchString(`[@$!%*?&]`, password)
	if !hasSpecial {
		return appErrors.NewValidationError("new_password", "deve conter ao menos um caractere especial (@$!%*?&)")
	}
	return nil
}
