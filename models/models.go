package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Статусы задачи
const (
	TaskStatusPending   = "PENDING"
	TaskStatusSent      = "SENT"
	TaskStatusCompleted = "COMPLETED"
)

// Сущность Тендера
type Tender struct {
	ID           int       `db:"id" json:"id"`
	TenderNumber string    `db:"tender_number" json:"tender_number" validate:"required,max=100"`
	Description  string    `db:"description" json:"description" validate:"required,max=500"`
	ClosingDate  Date      `db:"closing_date" json:"closing_date" validate:"required"`
	SiteVisits   string    `db:"site_visits" json:"site_visits"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

// Сущность Задачи
type Task struct {
	ID          int       `db:"id" json:"id"`
	Description string    `db:"description" json:"description" validate:"required,max=500"`
	AssignedTo  string    `db:"assigned_to" json:"assigned_to" validate:"required,max=100"`
	DueDate     Date      `db:"due_date" json:"due_date" validate:"required"`
	Status      string    `db:"status" json:"status" validate:"omitempty,oneof=PENDING SENT COMPLETED"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}

const dateLayout = "2006-01-02"

// Date - календарная дата без времени. По сети передается строкой
// "YYYY-MM-DD", в Postgres хранится в колонке DATE.
type Date struct {
	time.Time
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Format(dateLayout))
}

func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return fmt.Errorf("invalid date %q, want YYYY-MM-DD", s)
	}
	d.Time = t
	return nil
}

func (d Date) Value() (driver.Value, error) {
	return d.Time, nil
}

func (d *Date) Scan(src interface{}) error {
	switch v := src.(type) {
	case time.Time:
		d.Time = v
		return nil
	case nil:
		d.Time = time.Time{}
		return nil
	default:
		return fmt.Errorf("cannot scan %T into Date", src)
	}
}

// Посещения объекта хранятся одной текстовой колонкой через ";",
// запись с префиксом "*" считается выполненной.
const (
	siteVisitSep        = ";"
	siteVisitDoneMarker = "*"
)

// Запись посещения объекта
type SiteVisit struct {
	Note string `json:"note"`
	Done bool   `json:"done"`
}

// ParseSiteVisits разбирает строку site_visits в список посещений.
func ParseSiteVisits(s string) []SiteVisit {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, siteVisitSep)
	visits := make([]SiteVisit, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		v := SiteVisit{Note: p}
		if strings.HasPrefix(p, siteVisitDoneMarker) {
			v.Done = true
			v.Note = strings.TrimSpace(strings.TrimPrefix(p, siteVisitDoneMarker))
		}
		visits = append(visits, v)
	}
	return visits
}

// FormatSiteVisits собирает список посещений обратно в строку site_visits.
func FormatSiteVisits(visits []SiteVisit) string {
	parts := make([]string, 0, len(visits))
	for _, v := range visits {
		if v.Done {
			parts = append(parts, siteVisitDoneMarker+v.Note)
		} else {
			parts = append(parts, v.Note)
		}
	}
	return strings.Join(parts, siteVisitSep)
}
