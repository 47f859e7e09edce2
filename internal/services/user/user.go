// Package services содержит логику бизнес-уровня для управления пользователями.
package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/magabrotheeeer/qa-board/internal/lib/password"
	"github.com/magabrotheeeer/qa-board/internal/models"
	auth "github.com/magabrotheeeer/qa-board/internal/services/auth"
)

// UserRepository описывает контракт хранилища для операций над пользователями.
type UserRepository interface {
	GetUser(ctx context.Context, id int64) (*models.User, error)
	ListUsers(ctx context.Context) ([]*models.User, error)
	CreateUser(ctx context.Context, user models.User) (*models.User, error)
	UpdateUser(ctx context.Context, id int64, upd models.UserUpdate, passwordHash *string) (*models.User, error)
	DeleteUser(ctx context.Context, id int64) error
}

// UserService реализует операции чтения и изменения учётных записей.
type UserService struct {
	users UserRepository
}

// NewUserService создает новый экземпляр UserService.
func NewUserService(users UserRepository) *UserService {
	return &UserService{users: users}
}

// Get возвращает пользователя по ID.
func (s *UserService) Get(ctx context.Context, id int64) (*models.User, error) {
	return s.users.GetUser(ctx, id)
}

// List возвращает всех пользователей.
func (s *UserService) List(ctx context.Context) ([]*models.User, error) {
	return s.users.ListUsers(ctx)
}

// Create создает пользователя с ролью "user"; семантика совпадает
// с регистрацией.
func (s *UserService) Create(ctx context.Context, fullname, email, rawPassword string) (*models.User, error) {
	const op = "services.user.Create"
	hashed, err := password.GetHash(rawPassword)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	user := models.User{
		Fullname:     strings.TrimSpace(fullname),
		Email:        auth.NormalizeEmail(email),
		PasswordHash: hashed,
		Role:         models.RoleUser,
	}
	return s.users.CreateUser(ctx, user)
}

// Update применяет частичное обновление: переданный пароль хэшируется,
// email нормализуется. Пустое обновление отсеивается обработчиком.
func (s *UserService) Update(ctx context.Context, id int64, upd models.UserUpdate) (*models.User, error) {
	const op = "services.user.Update"

	var passwordHash *string
	if upd.Password != nil {
		hashed, err := password.GetHash(*upd.Password)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		passwordHash = &hashed
	}
	if upd.Email != nil {
		normalized := auth.NormalizeEmail(*upd.Email)
		upd.Email = &normalized
	}
	return s.users.UpdateUser(ctx, id, upd, passwordHash)
}

// Delete удаляет пользователя по ID.
func (s *UserService) Delete(ctx context.Context, id int64) error {
	return s.users.DeleteUser(ctx, id)
}
