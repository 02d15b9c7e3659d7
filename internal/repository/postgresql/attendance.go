package postgresql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/kalendra-hr/hrms-backend-go/internal/domain/attendance"
	"github.com/kalendra-hr/hrms-backend-go/internal/pkg/database"
)

// uniqueViolation is the PostgreSQL error code raised by the partial unique
// index on (employee_id) WHERE check_out_time IS NULL.
const uniqueViolation = "23505"

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

const attendanceColumns = `
	id, employee_id, date, check_in_time, check_out_time, status,
	lunch_duration, total_hours, overtime_hours, overtime_status,
	extra_allocations, notes, created_at, updated_at
`

func scanAttendance(row pgx.Row) (attendance.Attendance, error) {
	var att attendance.Attendance
	var allocations []byte

	err := row.Scan(
		&att.ID, &att.EmployeeID, &att.Date, &att.CheckInTime, &att.CheckOutTime, &att.Status,
		&att.LunchDuration, &att.TotalHours, &att.OvertimeHours, &att.OvertimeStatus,
		&allocations, &att.Notes, &att.CreatedAt, &att.UpdatedAt,
	)
	if err != nil {
		return attendance.Attendance{}, err
	}

	if len(allocations) > 0 {
		if err := json.Unmarshal(allocations, &att.ExtraAllocations); err != nil {
			return attendance.Attendance{}, fmt.Errorf("failed to decode extra allocations: %w", err)
		}
	}

	return att, nil
}

// Create implements attendance.AttendanceRepository. The insert runs in its
// own transaction holding a per-employee advisory lock, so two concurrent
// check-ins cannot both pass the open-session check.
func (a *attendanceRepository) Create(ctx context.Context, newAttendance attendance.Attendance) (attendance.Attendance, error) {
	allocations, err := json.Marshal(newAttendance.ExtraAllocations)
	if err != nil {
		return attendance.Attendance{}, fmt.Errorf("failed to encode extra allocations: %w", err)
	}

	err = WithTransaction(ctx, a.db, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext($1))`, newAttendance.EmployeeID); err != nil {
			return fmt.Errorf("failed to acquire employee lock: %w", err)
		}

		var open bool
		err := tx.QueryRow(ctx,
			`SELECT EXISTS(SELECT 1 FROM attendances WHERE employee_id = $1 AND check_out_time IS NULL)`,
			newAttendance.EmployeeID,
		).Scan(&open)
		if err != nil {
			return fmt.Errorf("failed to check open session: %w", err)
		}
		if open {
			return attendance.ErrAlreadyCheckedIn
		}

		query := `
			INSERT INTO attendances (
				employee_id, date, check_in_time, check_out_time, status,
				lunch_duration, total_hours, overtime_hours, overtime_status,
				extra_allocations, notes
			) VALUES (
				$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11
			) RETURNING id, created_at, updated_at
		`

		return tx.QueryRow(ctx, query,
			newAttendance.EmployeeID,
			newAttendance.Date,
			newAttendance.CheckInTime,
			newAttendance.CheckOutTime,
			newAttendance.Status,
			newAttendance.LunchDuration,
			newAttendance.TotalHours,
			newAttendance.OvertimeHours,
			newAttendance.OvertimeStatus,
			allocations,
			newAttendance.Notes,
		).Scan(&newAttendance.ID, &newAttendance.CreatedAt, &newAttendance.UpdatedAt)
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return attendance.Attendance{}, attendance.ErrAlreadyCheckedIn
		}
		if errors.Is(err, attendance.ErrAlreadyCheckedIn) {
			return attendance.Attendance{}, attendance.ErrAlreadyCheckedIn
		}
		return attendance.Attendance{}, fmt.Errorf("failed to create attendance: %w", err)
	}

	return newAttendance, nil
}

// Update implements attendance.AttendanceRepository.
func (a *attendanceRepository) Update(ctx context.Context, att attendance.Attendance) error {
	q := GetQuerier(ctx, a.db)

	allocations, err := json.Marshal(att.ExtraAllocations)
	if err != nil {
		return fmt.Errorf("failed to encode extra allocations: %w", err)
	}

	query := `
		UPDATE attendances
		SET check_out_time = $1, status = $2, lunch_duration = $3,
			total_hours = $4, overtime_hours = $5, overtime_status = $6,
			extra_allocations = $7, notes = $8, updated_at = NOW()
		WHERE id = $9
	`

	tag, err := q.Exec(ctx, query,
		att.CheckOutTime, att.Status, att.LunchDuration,
		att.TotalHours, att.OvertimeHours, att.OvertimeStatus,
		allocations, att.Notes, att.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update attendance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrAttendanceNotFound
	}

	return nil
}

// FindOpenSession implements attendance.AttendanceRepository. Returns nil
// when the employee has no open session; the search is not limited to today
// so sessions spanning midnight are still found.
func (a *attendanceRepository) FindOpenSession(ctx context.Context, employeeID string) (*attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendances
		WHERE employee_id = $1
		  AND check_out_time IS NULL
		ORDER BY check_in_time DESC
		LIMIT 1
	`

	att, err := scanAttendance(q.QueryRow(ctx, query, employeeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find open session: %w", err)
	}

	return &att, nil
}

// ListByEmployeeBetween implements attendance.AttendanceRepository.
func (a *attendanceRepository) ListByEmployeeBetween(ctx context.Context, employeeID string, start, end time.Time) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendances
		WHERE employee_id = $1
		  AND date BETWEEN $2 AND $3
		ORDER BY date ASC, check_in_time ASC
	`

	rows, err := q.Query(ctx, query, employeeID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}
	defer rows.Close()

	var records []attendance.Attendance
	for rows.Next() {
		att, err := scanAttendance(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, att)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read attendance rows: %w", err)
	}

	return records, nil
}

// ListBetween implements attendance.AttendanceRepository. Employee names are
// joined in for the admin report.
func (a *attendanceRepository) ListBetween(ctx context.Context, start, end time.Time) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT a.id, a.employee_id, a.date, a.check_in_time, a.check_out_time, a.status,
			   a.lunch_duration, a.total_hours, a.overtime_hours, a.overtime_status,
			   a.extra_allocations, a.notes, a.created_at, a.updated_at,
			   e.first_name || ' ' || e.last_name AS employee_name
		FROM attendances a
		LEFT JOIN employees e ON e.id = a.employee_id
		WHERE a.date BETWEEN $1 AND $2
		ORDER BY a.employee_id ASC, a.date ASC, a.check_in_time ASC
	`

	rows, err := q.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}
	defer rows.Close()

	var records []attendance.Attendance
	for rows.Next() {
		var att attendance.Attendance
		var allocations []byte

		err := rows.Scan(
			&att.ID, &att.EmployeeID, &att.Date, &att.CheckInTime, &att.CheckOutTime, &att.Status,
			&att.LunchDuration, &att.TotalHours, &att.OvertimeHours, &att.OvertimeStatus,
			&allocations, &att.Notes, &att.CreatedAt, &att.UpdatedAt,
			&att.EmployeeName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}

		if len(allocations) > 0 {
			if err := json.Unmarshal(allocations, &att.ExtraAllocations); err != nil {
				return nil, fmt.Errorf("failed to decode extra allocations: %w", err)
			}
		}

		records = append(records, att)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read attendance rows: %w", err)
	}

	return records, nil
}
