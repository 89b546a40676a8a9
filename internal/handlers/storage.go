package handlers

import (
	"context"

	"tendertrack/models"
)

type StorageInterface interface {
	ListTenders(ctx context.Context) ([]models.Tender, error)
	CreateTender(ctx context.Context, tender *models.Tender) error
	UpdateTender(ctx context.Context, tender *models.Tender) error
	DeleteTender(ctx context.Context, id int) error

	ListTasks(ctx context.Context) ([]models.Task, error)
	CreateTask(ctx context.Context, task *models.Task) error
	UpdateTask(ctx context.Context, task *models.Task) error
	DeleteTask(ctx context.Context, id int) error
}
