package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/magabrotheeeer/qa-board/internal/models"
)

// CreateAnswer сохраняет новый ответ на вопрос и возвращает созданную запись.
//
// Отсутствие родительского вопроса возвращается как ErrNotFound
// (нарушение внешнего ключа question_id).
func (s *Storage) CreateAnswer(ctx context.Context, answer models.Answer) (*models.Answer, error) {
	const op = "storage.CreateAnswer"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO answers (question_id, answer, created_by)
			  VALUES ($1, $2, $3)
			  RETURNING id, question_id, answer, created_by, created_at;`
	a := &models.Answer{}
	var createdBy sql.NullInt64
	if err := s.DB.QueryRowContext(ctx, query,
		answer.QuestionID, answer.Answer, answer.CreatedBy).Scan(
		&a.ID, &a.QuestionID, &a.Answer, &createdBy, &a.CreatedAt); err != nil {
		if isForeignKeyViolation(err) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if createdBy.Valid {
		a.CreatedBy = &createdBy.Int64
	}
	return a, nil
}

// ListAnswers возвращает ответы на вопрос questionID в порядке создания.
func (s *Storage) ListAnswers(ctx context.Context, questionID int64) ([]*models.Answer, error) {
	const op = "storage.ListAnswers"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, question_id, answer, created_by, created_at
			  FROM answers
			  WHERE question_id = $1
			  ORDER BY id ASC`
	rows, err := s.DB.QueryContext(ctx, query, questionID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()
	var result []*models.Answer
	for rows.Next() {
		var a models.Answer
		var createdBy sql.NullInt64
		if err = rows.Scan(&a.ID, &a.QuestionID, &a.Answer, &createdBy, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		if createdBy.Valid {
			a.CreatedBy = &createdBy.Int64
		}
		result = append(result, &a)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}
