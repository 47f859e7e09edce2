package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/magabrotheeeer/qa-board/internal/models"
)

// CreateQuestion сохраняет новый вопрос и возвращает созданную запись.
func (s *Storage) CreateQuestion(ctx context.Context, question models.Question) (*models.Question, error) {
	const op = "storage.CreateQuestion"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO questions (title, description, created_by)
			  VALUES ($1, $2, $3)
			  RETURNING id, title, description, created_by, created_at;`
	q := &models.Question{}
	var createdBy sql.NullInt64
	if err := s.DB.QueryRowContext(ctx, query,
		question.Title, question.Description, question.CreatedBy).Scan(
		&q.ID, &q.Title, &q.Description, &createdBy, &q.CreatedAt); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if createdBy.Valid {
		q.CreatedBy = &createdBy.Int64
	}
	return q, nil
}

// ListQuestions возвращает все вопросы, новые первыми.
func (s *Storage) ListQuestions(ctx context.Context) ([]*models.Question, error) {
	const op = "storage.ListQuestions"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, title, description, created_by, created_at
			  FROM questions
			  ORDER BY id DESC`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()
	var result []*models.Question
	for rows.Next() {
		var q models.Question
		var createdBy sql.NullInt64
		if err = rows.Scan(&q.ID, &q.Title, &q.Description, &createdBy, &q.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		if createdBy.Valid {
			q.CreatedBy = &createdBy.Int64
		}
		result = append(result, &q)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// GetQuestion возвращает вопрос по его ID.
func (s *Storage) GetQuestion(ctx context.Context, id int64) (*models.Question, error) {
	const op = "storage.GetQuestion"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, title, description, created_by, created_at
			  FROM questions
			  WHERE id = $1`
	q := &models.Question{}
	var createdBy sql.NullInt64
	row := s.DB.QueryRowContext(ctx, query, id)
	if err := row.Scan(&q.ID, &q.Title, &q.Description, &createdBy, &q.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if createdBy.Valid {
		q.CreatedBy = &createdBy.Int64
	}
	return q, nil
}
