package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/brunocoutinho/prazo/internal/db"
	"github.com/brunocoutinho/prazo/internal/domain"
)

// SQLiteWorkConfigRepo implements WorkConfigRepo using a SQLite database.
// The calendar lives in work_calendar (one row per weekday) and the SLA
// table in sla_rules (one row per priority); Get and Save always move the
// whole snapshot.
type SQLiteWorkConfigRepo struct {
	db db.DBTX
}

// NewSQLiteWorkConfigRepo creates a new SQLiteWorkConfigRepo.
func NewSQLiteWorkConfigRepo(conn db.DBTX) *SQLiteWorkConfigRepo {
	return &SQLiteWorkConfigRepo{db: conn}
}

func (r *SQLiteWorkConfigRepo) Get(ctx context.Context) (*domain.WorkConfig, error) {
	cfg := &domain.WorkConfig{
		Days: make(map[time.Weekday]domain.DayWindow, 7),
		SLA:  make(map[domain.Priority]domain.SLARule, 4),
	}

	rows, err := r.db.QueryContext(ctx, `SELECT weekday, active, start_time, end_time FROM work_calendar`)
	if err != nil {
		return nil, fmt.Errorf("loading work calendar: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var weekday, active int
		var win domain.DayWindow
		if err := rows.Scan(&weekday, &active, &win.Start, &win.End); err != nil {
			return nil, fmt.Errorf("scanning work calendar row: %w", err)
		}
		win.Active = intToBool(active)
		cfg.Days[time.Weekday(weekday)] = win
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating work calendar rows: %w", err)
	}

	slaRows, err := r.db.QueryContext(ctx, `SELECT priority, start_offset_days, max_tasks_per_day FROM sla_rules`)
	if err != nil {
		return nil, fmt.Errorf("loading sla rules: %w", err)
	}
	defer slaRows.Close()
	for slaRows.Next() {
		var priority string
		var rule domain.SLARule
		if err := slaRows.Scan(&priority, &rule.StartOffsetDays, &rule.MaxTasksPerDay); err != nil {
			return nil, fmt.Errorf("scanning sla rule row: %w", err)
		}
		cfg.SLA[domain.Priority(priority)] = rule
	}
	if err := slaRows.Err(); err != nil {
		return nil, fmt.Errorf("iterating sla rule rows: %w", err)
	}

	if len(cfg.Days) == 0 && len(cfg.SLA) == 0 {
		return nil, fmt.Errorf("work config: %w", ErrNotFound)
	}
	return cfg, nil
}

func (r *SQLiteWorkConfigRepo) Save(ctx context.Context, cfg *domain.WorkConfig) error {
	for wd, win := range cfg.Days {
		_, err := r.db.ExecContext(ctx,
			`INSERT OR REPLACE INTO work_calendar (weekday, active, start_time, end_time) VALUES (?, ?, ?, ?)`,
			int(wd), boolToInt(win.Active), win.Start, win.End,
		)
		if err != nil {
			return fmt.Errorf("saving work calendar weekday %d: %w", int(wd), err)
		}
	}
	for priority, rule := range cfg.SLA {
		_, err := r.db.ExecContext(ctx,
			`INSERT OR REPLACE INTO sla_rules (priority, start_offset_days, max_tasks_per_day) VALUES (?, ?, ?)`,
			string(priority), rule.StartOffsetDays, rule.MaxTasksPerDay,
		)
		if err != nil {
			return fmt.Errorf("saving sla rule %s: %w", priority, err)
		}
	}
	return nil
}

func (r *SQLiteWorkConfigRepo) Seed(ctx context.Context, cfg *domain.WorkConfig) error {
	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM work_calendar`).Scan(&count); err != nil {
		return fmt.Errorf("counting work calendar rows: %w", err)
	}
	if count > 0 {
		return nil
	}
	return r.Save(ctx, cfg)
}
