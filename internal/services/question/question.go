// Package services содержит логику бизнес-уровня для работы с вопросами и ответами.
package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/magabrotheeeer/qa-board/internal/models"
)

// QuestionRepository описывает контракт хранилища вопросов и ответов.
type QuestionRepository interface {
	CreateQuestion(ctx context.Context, question models.Question) (*models.Question, error)
	ListQuestions(ctx context.Context) ([]*models.Question, error)
	GetQuestion(ctx context.Context, id int64) (*models.Question, error)
	CreateAnswer(ctx context.Context, answer models.Answer) (*models.Answer, error)
	ListAnswers(ctx context.Context, questionID int64) ([]*models.Answer, error)
}

// QuestionWithAnswers объединяет вопрос и его ответы для выдачи одним объектом.
type QuestionWithAnswers struct {
	models.Question
	Answers []*models.Answer `json:"answers"`
}

// QuestionService реализует операции над вопросами и ответами.
type QuestionService struct {
	repo QuestionRepository
}

// NewQuestionService создает новый экземпляр QuestionService.
func NewQuestionService(repo QuestionRepository) *QuestionService {
	return &QuestionService{repo: repo}
}

// CreateQuestion публикует вопрос от имени пользователя createdBy.
func (s *QuestionService) CreateQuestion(ctx context.Context, title, description string, createdBy int64) (*models.Question, error) {
	question := models.Question{
		Title:       strings.TrimSpace(title),
		Description: strings.TrimSpace(description),
		CreatedBy:   &createdBy,
	}
	return s.repo.CreateQuestion(ctx, question)
}

// ListQuestions возвращает все вопросы, новые первыми.
func (s *QuestionService) ListQuestions(ctx context.Context) ([]*models.Question, error) {
	return s.repo.ListQuestions(ctx)
}

// GetQuestion возвращает вопрос вместе с его ответами.
//
// Два независимых запроса без транзакции: атомарность здесь не требуется.
func (s *QuestionService) GetQuestion(ctx context.Context, id int64) (*QuestionWithAnswers, error) {
	const op = "services.question.GetQuestion"
	question, err := s.repo.GetQuestion(ctx, id)
	if err != nil {
		return nil, err
	}
	answers, err := s.repo.ListAnswers(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if answers == nil {
		answers = []*models.Answer{}
	}
	return &QuestionWithAnswers{
		Question: *question,
		Answers:  answers,
	}, nil
}

// ListAnswers возвращает ответы на вопрос questionID.
func (s *QuestionService) ListAnswers(ctx context.Context, questionID int64) ([]*models.Answer, error) {
	return s.repo.ListAnswers(ctx, questionID)
}

// CreateAnswer публикует ответ на вопрос questionID от имени createdBy.
func (s *QuestionService) CreateAnswer(ctx context.Context, questionID int64, text string, createdBy int64) (*models.Answer, error) {
	answer := models.Answer{
		QuestionID: questionID,
		Answer:     strings.TrimSpace(text),
		CreatedBy:  &createdBy,
	}
	return s.repo.CreateAnswer(ctx, answer)
}
