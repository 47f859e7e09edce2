// Package authz содержит чистые функции принятия решений о доступе.
//
// Функции тотальны над (sub, role, ownerID) и не ходят ни в базу, ни в сеть:
// роль берется из подписанного токена на момент выдачи. Ложное решение
// транслируется обработчиком в 403, отсутствие токена — в 401;
// эти два случая никогда не смешиваются.
package authz

import "strconv"

// IsAdmin сообщает, что роль из токена — администратор.
func IsAdmin(role string) bool {
	return role == "admin"
}

// IsSelf сравнивает subject токена с идентификатором владельца ресурса.
//
// Числовые идентификаторы сравниваются по значению, поэтому "07" и "7"
// считаются одним пользователем независимо от строкового представления.
func IsSelf(sub, ownerID string) bool {
	subN, errSub := strconv.ParseInt(sub, 10, 64)
	ownN, errOwn := strconv.ParseInt(ownerID, 10, 64)
	if errSub == nil && errOwn == nil {
		return subN == ownN
	}
	return sub != "" && sub == ownerID
}

// CanActOnSelfOrAdmin разрешает действие владельцу ресурса или администратору.
func CanActOnSelfOrAdmin(sub, role, ownerID string) bool {
	return IsSelf(sub, ownerID) || IsAdmin(role)
}

// CanListAllUsers разрешает просмотр полного списка пользователей
// только администратору.
func CanListAllUsers(role string) bool {
	return IsAdmin(role)
}

// CanViewEmail решает, можно ли показывать email пользователя ownerID
// вызывающему. Email видят только владелец и администратор, остальным
// поле не отдается вовсе.
func CanViewEmail(sub, role, ownerID string) bool {
	return IsSelf(sub, ownerID) || IsAdmin(role)
}
