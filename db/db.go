package db

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"tendertrack/models"
)

// ErrNotFound возвращается, когда по id не нашлось ни одной записи.
var ErrNotFound = errors.New("record not found")

type Storage struct {
	db *sqlx.DB
}

func NewStorage(db *sqlx.DB) *Storage {
	return &Storage{db: db}
}

// Tender (Тендер)

func (s *Storage) ListTenders(ctx context.Context) ([]models.Tender, error) {
	tenders := []models.Tender{}
	query := `SELECT * FROM tenders ORDER BY created_at DESC`
	err := s.db.SelectContext(ctx, &tenders, query)
	return tenders, err
}

func (s *Storage) CreateTender(ctx context.Context, t *models.Tender) error {
	query := `
        INSERT INTO tenders (tender_number, description, closing_date, site_visits)
        VALUES ($1, $2, $3, $4)
        RETURNING id, created_at, updated_at`
	return s.db.QueryRowContext(ctx, query,
		t.TenderNumber, t.Description, t.ClosingDate, t.SiteVisits).
		Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)
}

func (s *Storage) UpdateTender(ctx context.Context, t *models.Tender) error {
	query := `
        UPDATE tenders
        SET tender_number=$1, description=$2, closing_date=$3, site_visits=$4, updated_at=NOW()
        WHERE id=$5
        RETURNING created_at, updated_at`
	err := s.db.QueryRowContext(ctx, query,
		t.TenderNumber, t.Description, t.ClosingDate, t.SiteVisits, t.ID).
		Scan(&t.CreatedAt, &t.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

func (s *Storage) DeleteTender(ctx context.Context, id int) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM tenders WHERE id=$1`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// Task (Задача)

func (s *Storage) ListTasks(ctx context.Context) ([]models.Task, error) {
	tasks := []models.Task{}
	query := `SELECT * FROM tasks ORDER BY created_at DESC`
	err := s.db.SelectContext(ctx, &tasks, query)
	return tasks, err
}

func (s *Storage) CreateTask(ctx context.Context, t *models.Task) error {
	query := `
        INSERT INTO tasks (description, assigned_to, due_date, status)
        VALUES ($1, $2, $3, $4)
        RETURNING id, created_at, updated_at`
	return s.db.QueryRowContext(ctx, query,
		t.Description, t.AssignedTo, t.DueDate, t.Status).
		Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)
}

func (s *Storage) UpdateTask(ctx context.Context, t *models.Task) error {
	query := `
        UPDATE tasks
        SET description=$1, assigned_to=$2, due_date=$3, status=$4, updated_at=NOW()
        WHERE id=$5
        RETURNING created_at, updated_at`
	err := s.db.QueryRowContext(ctx, query,
		t.Description, t.AssignedTo, t.DueDate, t.Status, t.ID).
		Scan(&t.CreatedAt, &t.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

func (s *Storage) DeleteTask(ctx context.Context, id int) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM tasks WHERE id=$1`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
