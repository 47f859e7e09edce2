// Package services содержит логику бизнес-уровня для работы с пользователями и аутентификацией.
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/magabrotheeeer/qa-board/internal/lib/jwt"
	"github.com/magabrotheeeer/qa-board/internal/lib/password"
	"github.com/magabrotheeeer/qa-board/internal/models"
	"github.com/magabrotheeeer/qa-board/internal/storage/repository"
)

// ErrInvalidCredentials возвращается и для неизвестного email, и для
// неверного пароля: различать их снаружи нельзя, иначе возможен
// перебор зарегистрированных адресов.
var ErrInvalidCredentials = errors.New("invalid credentials")

// Фиксированный хэш для выравнивания времени ответа на ветке
// "пользователь не найден": bcrypt все равно выполняется.
var dummyHash = func() string {
	h, err := password.GetHash("qa-board-timing-pad")
	if err != nil {
		panic(err)
	}
	return h
}()

// UserRepository описывает контракт для работы с пользователями в базе данных.
type UserRepository interface {
	// CreateUser сохраняет нового пользователя и возвращает созданную запись.
	CreateUser(ctx context.Context, user models.User) (*models.User, error)

	// GetUserByEmail возвращает пользователя по email или ошибку, если не найден.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
}

// AuthService отвечает за регистрацию и авторизацию пользователей.
type AuthService struct {
	users    UserRepository
	jwtMaker jwt.Maker
}

// NewAuthService создает новый экземпляр AuthService.
func NewAuthService(users UserRepository, jwtMaker jwt.Maker) *AuthService {
	return &AuthService{
		users:    users,
		jwtMaker: jwtMaker,
	}
}

// NormalizeEmail приводит email к хранимому виду: обрезанные пробелы,
// нижний регистр.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register создает нового пользователя с хэшированием пароля и дефолтной ролью "user".
//
// Дубликат email доходит до обработчика как repository.ErrEmailTaken.
func (s *AuthService) Register(ctx context.Context, fullname, email, rawPassword string) (*models.User, error) {
	const op = "services.auth.Register"
	hashed, err := password.GetHash(rawPassword)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	user := models.User{
		Fullname:     strings.TrimSpace(fullname),
		Email:        NormalizeEmail(email),
		PasswordHash: hashed,
		Role:         models.RoleUser, // дефолтная роль при регистрации
	}
	return s.users.CreateUser(ctx, user)
}

// Login проверяет пароль пользователя и генерирует JWT с его ролью.
//
// Неизвестный email и неверный пароль дают одну и ту же ошибку
// ErrInvalidCredentials; на ветке отсутствующего пользователя
// выполняется сравнение с фиктивным хэшем.
func (s *AuthService) Login(ctx context.Context, email, rawPassword string) (token string, user *models.User, ttl time.Duration, err error) {
	const op = "services.auth.Login"
	user, err = s.users.GetUserByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			_ = password.CompareHash(dummyHash, rawPassword)
			return "", nil, 0, ErrInvalidCredentials
		}
		return "", nil, 0, fmt.Errorf("%s: %w", op, err)
	}
	if err = password.CompareHash(user.PasswordHash, rawPassword); err != nil {
		return "", nil, 0, ErrInvalidCredentials
	}
	token, err = s.jwtMaker.GenerateToken(user.ID, user.Role)
	if err != nil {
		return "", nil, 0, fmt.Errorf("%s: %w", op, err)
	}
	return token, user, s.jwtMaker.TTL(), nil
}
