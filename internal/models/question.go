// Package models содержит доменные структуры вопросов и ответов.
// Вопрос принадлежит пользователю, создавшему его; ответы ссылаются
// на родительский вопрос по идентификатору.
package models

import "time"

// Question представляет вопрос, опубликованный пользователем.
// CreatedBy может быть nil, если автор удалил учётную запись.
type Question struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CreatedBy   *int64    `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
}

// Answer представляет ответ на вопрос.
type Answer struct {
	ID         int64     `json:"id"`
	QuestionID int64     `json:"question_id"`
	Answer     string    `json:"answer"`
	CreatedBy  *int64    `json:"created_by"`
	CreatedAt  time.Time `json:"created_at"`
}
