package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/brunocoutinho/prazo/internal/db"
	"github.com/brunocoutinho/prazo/internal/domain"
)

// taskColumns is the canonical SELECT column list for tasks.
const taskColumns = `id, client_id, title, description, priority, status,
		estimated_hours, actual_hours, start_date, due_date,
		is_tracking, tracking_since, created_at, updated_at`

// SQLiteTaskRepo implements TaskRepo using a SQLite database.
type SQLiteTaskRepo struct {
	db db.DBTX
}

// NewSQLiteTaskRepo creates a new SQLiteTaskRepo.
func NewSQLiteTaskRepo(conn db.DBTX) *SQLiteTaskRepo {
	return &SQLiteTaskRepo{db: conn}
}

func (r *SQLiteTaskRepo) Create(ctx context.Context, t *domain.Task) error {
	query := `INSERT INTO tasks (` + taskColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		t.ID,
		nullableStr(t.ClientID),
		t.Title,
		t.Description,
		string(t.Priority),
		string(t.Status),
		t.EstimatedHours,
		t.ActualHours,
		t.StartDate.Format(time.RFC3339),
		nullableTimeToString(t.DueDate, time.RFC3339),
		boolToInt(t.IsTracking),
		nullableTimeToString(t.TrackingSince, time.RFC3339),
		t.CreatedAt.Format(time.RFC3339),
		t.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting task: %w", err)
	}
	return nil
}

func (r *SQLiteTaskRepo) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE id = ?`
	t, err := scanTask(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("task: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning task: %w", err)
	}
	return t, nil
}

func (r *SQLiteTaskRepo) List(ctx context.Context, includeDone bool) ([]*domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks`
	if !includeDone {
		query += ` WHERE status != 'done'`
	}
	query += ` ORDER BY start_date, created_at`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing tasks: %w", err)
	}
	defer rows.Close()
	return collectTasks(rows)
}

func (r *SQLiteTaskRepo) ListByClient(ctx context.Context, clientID string) ([]*domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE client_id = ? ORDER BY start_date, created_at`
	rows, err := r.db.QueryContext(ctx, query, clientID)
	if err != nil {
		return nil, fmt.Errorf("listing tasks by client: %w", err)
	}
	defer rows.Close()
	return collectTasks(rows)
}

func (r *SQLiteTaskRepo) ListStartingOn(ctx context.Context, date time.Time) ([]*domain.Task, error) {
	// start_date is stored RFC3339, so a date prefix match selects the local calendar day.
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE start_date LIKE ? ORDER BY created_at`
	rows, err := r.db.QueryContext(ctx, query, date.Format("2006-01-02")+"%")
	if err != nil {
		return nil, fmt.Errorf("listing tasks starting on %s: %w", date.Format("2006-01-02"), err)
	}
	defer rows.Close()
	return collectTasks(rows)
}

func (r *SQLiteTaskRepo) Update(ctx context.Context, t *domain.Task) error {
	query := `UPDATE tasks SET client_id = ?, title = ?, description = ?, priority = ?,
		status = ?, estimated_hours = ?, actual_hours = ?, start_date = ?, due_date = ?,
		is_tracking = ?, tracking_since = ?, updated_at = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		nullableStr(t.ClientID),
		t.Title,
		t.Description,
		string(t.Priority),
		string(t.Status),
		t.EstimatedHours,
		t.ActualHours,
		t.StartDate.Format(time.RFC3339),
		nullableTimeToString(t.DueDate, time.RFC3339),
		boolToInt(t.IsTracking),
		nullableTimeToString(t.TrackingSince, time.RFC3339),
		t.UpdatedAt.Format(time.RFC3339),
		t.ID,
	)
	if err != nil {
		return fmt.Errorf("updating task: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("updating task: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("task: %w", ErrNotFound)
	}
	return nil
}

func (r *SQLiteTaskRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting task: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting task: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("task: %w", ErrNotFound)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(row rowScanner) (*domain.Task, error) {
	var t domain.Task
	var clientID, dueDate, trackingSince sql.NullString
	var priority, status, startDate, createdAt, updatedAt string
	var isTracking int

	err := row.Scan(
		&t.ID,
		&clientID,
		&t.Title,
		&t.Description,
		&priority,
		&status,
		&t.EstimatedHours,
		&t.ActualHours,
		&startDate,
		&dueDate,
		&isTracking,
		&trackingSince,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if clientID.Valid {
		t.ClientID = &clientID.String
	}
	t.Priority = domain.Priority(priority)
	t.Status = domain.TaskStatus(status)
	t.StartDate, _ = time.Parse(time.RFC3339, startDate)
	t.DueDate = parseNullableTime(dueDate, time.RFC3339)
	t.IsTracking = intToBool(isTracking)
	t.TrackingSince = parseNullableTime(trackingSince, time.RFC3339)
	t.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	t.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAt)
	return &t, nil
}

func collectTasks(rows *sql.Rows) ([]*domain.Task, error) {
	var tasks []*domain.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning task row: %w", err)
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating task rows: %w", err)
	}
	return tasks, nil
}
