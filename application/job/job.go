package job

import (
	"context"

	"github.com/sahanperera/repairshop-backend/constant"
	"github.com/sahanperera/repairshop-backend/model"
	customerrepo "github.com/sahanperera/repairshop-backend/repository/customer"
	employeerepo "github.com/sahanperera/repairshop-backend/repository/employee"
	jobrepo "github.com/sahanperera/repairshop-backend/repository/job"
	"github.com/sahanperera/repairshop-backend/thirdparty/rabbitmq"
	"github.com/sahanperera/repairshop-backend/utils/errors"
	"github.com/sahanperera/repairshop-backend/utils/logger"
	"go.uber.org/zap"
)

type JobApp interface {
	Create(ctx context.Context, req *model.AddJobRequest) (uint64, error)
	UpdateStatus(ctx context.Context, id uint64, status string) error
	Delete(ctx context.Context, id uint64) error
	GetAll(ctx context.Context) ([]model.Job, error)
	GetByID(ctx context.Context, id uint64) (*model.Job, error)
}

type jobAppImpl struct {
	jobRepo      jobrepo.JobRepository
	customerRepo customerrepo.CustomerRepository
	employeeRepo employeerepo.EmployeeRepository
	publisher    *rabbitmq.Publisher
}

func NewJobApp(jobRepo jobrepo.JobRepository, customerRepo customerrepo.CustomerRepository, employeeRepo employeerepo.EmployeeRepository, publisher *rabbitmq.Publisher) JobApp {
	return &jobAppImpl{
		jobRepo:      jobRepo,
		customerRepo: customerRepo,
		employeeRepo: employeeRepo,
		publisher:    publisher,
	}
}

// Create validates the customer and employee references, then inserts the
// job as pending.
func (s *jobAppImpl) Create(ctx context.Context, req *model.AddJobRequest) (uint64, error) {
	customer, err := s.customerRepo.GetByID(ctx, req.CustomerID)
	if err != nil {
		logger.Error("[CreateJob] err customerRepo.GetByID", zap.String("error", err.Error()))
		return 0, err
	}
	if customer == nil {
		return 0, errors.SetCustomErrorf(constant.ErrInvalidRequest, "Customer %d does not exist", req.CustomerID)
	}

	employee, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		logger.Error("[CreateJob] err employeeRepo.GetByID", zap.String("error", err.Error()))
		return 0, err
	}
	if employee == nil {
		return 0, errors.SetCustomErrorf(constant.ErrInvalidRequest, "Employee %d does not exist", req.EmployeeID)
	}

	jobID, err := s.jobRepo.Create(ctx, &model.JobEntity{
		CustomerID:  req.CustomerID,
		EmployeeID:  req.EmployeeID,
		Description: req.Description,
		Status:      constant.JobStatusPending,
	})
	if err != nil {
		logger.Error("[CreateJob] err jobRepo.Create", zap.String("error", err.Error()))
		return 0, err
	}

	s.publishEvent(constant.EventJobCreated, model.JobEvent{
		JobID:      jobID,
		CustomerID: req.CustomerID,
		Status:     constant.JobStatusPending,
	})

	return jobID, nil
}

func (s *jobAppImpl) UpdateStatus(ctx context.Context, id uint64, status string) error {
	rows, err := s.jobRepo.UpdateStatus(ctx, id, status)
	if err != nil {
		logger.Error("[UpdateJobStatus] err jobRepo.UpdateStatus", zap.String("error", err.Error()))
		return err
	}
	if rows == 0 {
		return errors.SetCustomError(constant.ErrNotFound)
	}

	s.publishEvent(constant.EventJobStatusChanged, model.JobEvent{
		JobID:  id,
		Status: status,
	})

	return nil
}

func (s *jobAppImpl) Delete(ctx context.Context, id uint64) error {
	if err := s.jobRepo.Delete(ctx, id); err != nil {
		logger.Error("[DeleteJob] err jobRepo.Delete", zap.String("error", err.Error()))
		return err
	}

	s.publishEvent(constant.EventJobDeleted, model.JobEvent{JobID: id})
	return nil
}

func (s *jobAppImpl) GetAll(ctx context.Context) ([]model.Job, error) {
	entities, err := s.jobRepo.GetAll(ctx)
	if err != nil {
		logger.Error("[GetAllJobs] err jobRepo.GetAll", zap.String("error", err.Error()))
		return nil, err
	}

	jobs := make([]model.Job, 0, len(entities))
	for i := range entities {
		jobs = append(jobs, entities[i].ToJob())
	}
	return jobs, nil
}

func (s *jobAppImpl) GetByID(ctx context.Context, id uint64) (*model.Job, error) {
	entity, err := s.jobRepo.GetByID(ctx, id)
	if err != nil {
		logger.Error("[GetJob] err jobRepo.GetByID", zap.String("error", err.Error()))
		return nil, err
	}
	if entity == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	job := entity.ToJob()
	return &job, nil
}

func (s *jobAppImpl) publishEvent(routingKey string, payload model.JobEvent) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishEvent(routingKey, payload); err != nil {
		logger.Warn("[Job] publish event failed", zap.String("routing_key", routingKey), zap.String("error", err.Error()))
	}
}
