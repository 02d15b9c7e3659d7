package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/kalendra-hr/hrms-backend-go/internal/domain/leave"
	"github.com/kalendra-hr/hrms-backend-go/internal/pkg/database"
)

type leaveRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRepository(db *database.DB) leave.LeaveRepository {
	return &leaveRepositoryImpl{db: db}
}

const leaveColumns = `
	id, employee_id, start_date, end_date, days_count, type, reason,
	attachment_url, status, created_at, updated_at
`

func scanLeave(row pgx.Row) (leave.Leave, error) {
	var l leave.Leave
	err := row.Scan(
		&l.ID, &l.EmployeeID, &l.StartDate, &l.EndDate, &l.DaysCount, &l.Type, &l.Reason,
		&l.AttachmentURL, &l.Status, &l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.Leave{}, leave.ErrLeaveRequestNotFound
		}
		return leave.Leave{}, err
	}
	return l, nil
}

// Create implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) Create(ctx context.Context, l leave.Leave) (leave.Leave, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_requests (
			employee_id, start_date, end_date, days_count, type, reason, attachment_url, status
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		l.EmployeeID, l.StartDate, l.EndDate, l.DaysCount, l.Type, l.Reason, l.AttachmentURL, l.Status,
	).Scan(&l.ID, &l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		return leave.Leave{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	return l, nil
}

// GetByID implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) GetByID(ctx context.Context, id string) (leave.Leave, error) {
	q := GetQuerier(ctx, r.db)

	l, err := scanLeave(q.QueryRow(ctx, `SELECT `+leaveColumns+` FROM leave_requests WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, leave.ErrLeaveRequestNotFound) {
			return leave.Leave{}, err
		}
		return leave.Leave{}, fmt.Errorf("failed to get leave request: %w", err)
	}

	return l, nil
}

// UpdateStatus implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) UpdateStatus(ctx context.Context, id string, status string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx,
		`UPDATE leave_requests SET status = $1, updated_at = NOW() WHERE id = $2`,
		status, id,
	)
	if err != nil {
		return fmt.Errorf("failed to update leave status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return leave.ErrLeaveRequestNotFound
	}

	return nil
}

// ListByEmployee implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string) ([]leave.Leave, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + leaveColumns + `
		FROM leave_requests
		WHERE employee_id = $1
		ORDER BY created_at DESC
	`

	return r.queryLeaves(ctx, q, query, employeeID)
}

// ListActiveByEmployee implements leave.LeaveRepository. Rejected requests
// do not reserve balance and are excluded.
func (r *leaveRepositoryImpl) ListActiveByEmployee(ctx context.Context, employeeID string) ([]leave.Leave, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + leaveColumns + `
		FROM leave_requests
		WHERE employee_id = $1
		  AND status IN ('PENDING', 'APPROVED', 'TAKEN')
		ORDER BY start_date ASC
	`

	return r.queryLeaves(ctx, q, query, employeeID)
}

// HasOverlap implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) HasOverlap(ctx context.Context, employeeID string, start, end time.Time) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS(
			SELECT 1
			FROM leave_requests
			WHERE employee_id = $1
			  AND status IN ('PENDING', 'APPROVED', 'TAKEN')
			  AND start_date <= $3
			  AND end_date >= $2
		)
	`

	var overlap bool
	if err := q.QueryRow(ctx, query, employeeID, start, end).Scan(&overlap); err != nil {
		return false, fmt.Errorf("failed to check leave overlap: %w", err)
	}

	return overlap, nil
}

func (r *leaveRepositoryImpl) queryLeaves(ctx context.Context, q database.Querier, query string, args ...interface{}) ([]leave.Leave, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}
	defer rows.Close()

	var leaves []leave.Leave
	for rows.Next() {
		l, err := scanLeave(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave request: %w", err)
		}
		leaves = append(leaves, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read leave rows: %w", err)
	}

	return leaves, nil
}
