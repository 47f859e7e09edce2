// Package models содержит доменную модель пользователя системы,
// включающую данные учётной записи, хэш пароля и дату создания.
// Структура используется в бизнес‑логике и при работе с хранилищем.
package models

import "time"

// Роли пользователей, допустимые в системе.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User представляет зарегистрированного пользователя системы.
type User struct {
	ID           int64     // Уникальный идентификатор пользователя
	Fullname     string    // Отображаемое имя
	Email        string    // Электронная почта (уникальная, хранится в нижнем регистре)
	PasswordHash string    // Хэш пароля пользователя, наружу не отдается
	Role         string    // Роль пользователя, admin или user
	CreatedAt    time.Time // Дата создания учётной записи
}

// UserUpdate описывает частичное обновление пользователя.
// Поле nil означает, что значение не меняется.
type UserUpdate struct {
	Fullname *string
	Email    *string
	Password *string
}

// IsEmpty сообщает, что обновление не содержит ни одного поля.
func (u UserUpdate) IsEmpty() bool {
	return u.Fullname == nil && u.Email == nil && u.Password == nil
}
