package job

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/sahanperera/repairshop-backend/model"
)

type SQL struct {
	conn *sqlx.DB
}

type JobRepository interface {
	GetAll(ctx context.Context) ([]model.JobEntity, error)
	GetByID(ctx context.Context, id uint64) (*model.JobEntity, error)
	Create(ctx context.Context, data *model.JobEntity) (uint64, error)
	UpdateStatus(ctx context.Context, id uint64, status string) (int64, error)
	Delete(ctx context.Context, id uint64) error
}

func NewJobRepository(conn *sqlx.DB) JobRepository {
	return &SQL{conn: conn}
}

const (
	listJobsQuery   = `SELECT job_id, customer_id, employee_id, description, status, created_at FROM jobs ORDER BY job_id`
	getJobQuery     = `SELECT job_id, customer_id, employee_id, description, status, created_at FROM jobs WHERE job_id = ?`
	insertJobQuery  = `INSERT INTO jobs (customer_id, employee_id, description, status, created_at) VALUES (?, ?, ?, ?, NOW())`
	updateJobStatus = `UPDATE jobs SET status = ? WHERE job_id = ?`
	deleteJobQuery  = `DELETE FROM jobs WHERE job_id = ?`
)

func (s *SQL) GetAll(ctx context.Context) ([]model.JobEntity, error) {
	rows, err := s.conn.QueryxContext(ctx, listJobsQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.JobEntity, 0)
	for rows.Next() {
		var ent model.JobEntity
		if err := rows.StructScan(&ent); err != nil {
			return nil, err
		}
		items = append(items, ent)
	}
	return items, rows.Err()
}

func (s *SQL) GetByID(ctx context.Context, id uint64) (*model.JobEntity, error) {
	var ent model.JobEntity
	if err := s.conn.QueryRowxContext(ctx, getJobQuery, id).StructScan(&ent); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &ent, nil
}

func (s *SQL) Create(ctx context.Context, data *model.JobEntity) (uint64, error) {
	result, err := s.conn.ExecContext(ctx, insertJobQuery, data.CustomerID, data.EmployeeID, data.Description, data.Status)
	if err != nil {
		return 0, err
	}

	lastID, err := result.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(lastID), nil
}

func (s *SQL) UpdateStatus(ctx context.Context, id uint64, status string) (int64, error) {
	result, err := s.conn.ExecContext(ctx, updateJobStatus, status, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (s *SQL) Delete(ctx context.Context, id uint64) error {
	_, err := s.conn.ExecContext(ctx, deleteJobQuery, id)
	return err
}
