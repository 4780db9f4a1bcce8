package model

import "time"

type JobEntity struct {
	JobID       uint64    `db:"job_id"`
	CustomerID  uint64    `db:"customer_id"`
	EmployeeID  uint64    `db:"employee_id"`
	Description string    `db:"description"`
	Status      string    `db:"status"`
	CreatedAt   time.Time `db:"created_at"`
}

type Job struct {
	JobID       uint64    `json:"job_id"`
	CustomerID  uint64    `json:"customerId"`
	EmployeeID  uint64    `json:"employeeId"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (e *JobEntity) ToJob() Job {
	return Job{
		JobID:       e.JobID,
		CustomerID:  e.CustomerID,
		EmployeeID:  e.EmployeeID,
		Description: e.Description,
		Status:      e.Status,
		CreatedAt:   e.CreatedAt,
	}
}

type AddJobRequest struct {
	CustomerID  uint64 `json:"customerId" validate:"required"`
	EmployeeID  uint64 `json:"employeeId" validate:"required"`
	Description string `json:"description" validate:"required,max=500"`
}

type UpdateJobStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending in_progress completed"`
}

// JobEvent is the payload published on job lifecycle changes.
type JobEvent struct {
	JobID      uint64 `json:"job_id"`
	CustomerID uint64 `json:"customer_id,omitempty"`
	Status     string `json:"status,omitempty"`
}
