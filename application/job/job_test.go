package job_test

import (
	"context"
	"testing"

	appjob "github.com/sahanperera/repairshop-backend/application/job"
	"github.com/sahanperera/repairshop-backend/constant"
	customermocks "github.com/sahanperera/repairshop-backend/mocks/repository/customer"
	employeemocks "github.com/sahanperera/repairshop-backend/mocks/repository/employee"
	jobmocks "github.com/sahanperera/repairshop-backend/mocks/repository/job"
	"github.com/sahanperera/repairshop-backend/model"
	cerr "github.com/sahanperera/repairshop-backend/utils/errors"
	"github.com/stretchr/testify/mock"
)

func TestJobApp_Create(t *testing.T) {
	type fields struct {
		jobRepo      *jobmocks.JobRepository
		customerRepo *customermocks.CustomerRepository
		employeeRepo *employeemocks.EmployeeRepository
	}
	tests := []struct {
		name     string
		fields   fields
		req      *model.AddJobRequest
		mockCall func(f fields)
		want     uint64
		wantErr  bool
		errMsg   string
	}{
		{
			name: "success: job starts in pending status",
			fields: fields{
				jobRepo:      jobmocks.NewJobRepository(t),
				customerRepo: customermocks.NewCustomerRepository(t),
				employeeRepo: employeemocks.NewEmployeeRepository(t),
			},
			req: &model.AddJobRequest{
				CustomerID:  1,
				EmployeeID:  2,
				Description: "Replace compressor",
			},
			mockCall: func(f fields) {
				f.customerRepo.
					On("GetByID", mock.Anything, uint64(1)).
					Return(&model.CustomerEntity{CustomerID: 1}, nil).
					Once()
				f.employeeRepo.
					On("GetByID", mock.Anything, uint64(2)).
					Return(&model.EmployeeEntity{EmployeeID: 2}, nil).
					Once()

				f.jobRepo.
					On("Create", mock.Anything, mock.MatchedBy(func(ent *model.JobEntity) bool {
						return ent.CustomerID == 1 &&
							ent.EmployeeID == 2 &&
							ent.Description == "Replace compressor" &&
							ent.Status == constant.JobStatusPending
					})).
					Return(uint64(21), nil).
					Once()
			},
			want:    21,
			wantErr: false,
		},
		{
			name: "error: unknown customer reference",
			fields: fields{
				jobRepo:      jobmocks.NewJobRepository(t),
				customerRepo: customermocks.NewCustomerRepository(t),
				employeeRepo: employeemocks.NewEmployeeRepository(t),
			},
			req: &model.AddJobRequest{
				CustomerID:  999,
				EmployeeID:  2,
				Description: "Replace compressor",
			},
			mockCall: func(f fields) {
				f.customerRepo.
					On("GetByID", mock.Anything, uint64(999)).
					Return(nil, nil).
					Once()
			},
			wantErr: true,
			errMsg:  "Customer 999 does not exist",
		},
		{
			name: "error: unknown employee reference",
			fields: fields{
				jobRepo:      jobmocks.NewJobRepository(t),
				customerRepo: customermocks.NewCustomerRepository(t),
				employeeRepo: employeemocks.NewEmployeeRepository(t),
			},
			req: &model.AddJobRequest{
				CustomerID:  1,
				EmployeeID:  999,
				Description: "Replace compressor",
			},
			mockCall: func(f fields) {
				f.customerRepo.
					On("GetByID", mock.Anything, uint64(1)).
					Return(&model.CustomerEntity{CustomerID: 1}, nil).
					Once()
				f.employeeRepo.
					On("GetByID", mock.Anything, uint64(999)).
					Return(nil, nil).
					Once()
			},
			wantErr: true,
			errMsg:  "Employee 999 does not exist",
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}

			app := appjob.NewJobApp(tt.fields.jobRepo, tt.fields.customerRepo, tt.fields.employeeRepo, nil)

			got, err := app.Create(context.Background(), tt.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Create() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.errMsg != "" && err.Error() != tt.errMsg {
				t.Fatalf("Create() error message = %q, want %q", err.Error(), tt.errMsg)
			}
			if got != tt.want {
				t.Fatalf("Create() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestJobApp_UpdateStatus(t *testing.T) {
	jobRepo := jobmocks.NewJobRepository(t)

	jobRepo.On("UpdateStatus", mock.Anything, uint64(21), constant.JobStatusCompleted).Return(int64(1), nil).Once()
	jobRepo.On("UpdateStatus", mock.Anything, uint64(99), constant.JobStatusCompleted).Return(int64(0), nil).Once()

	app := appjob.NewJobApp(jobRepo, customermocks.NewCustomerRepository(t), employeemocks.NewEmployeeRepository(t), nil)

	if err := app.UpdateStatus(context.Background(), 21, constant.JobStatusCompleted); err != nil {
		t.Fatalf("UpdateStatus() error = %v", err)
	}

	err := app.UpdateStatus(context.Background(), 99, constant.JobStatusCompleted)
	ce, ok := err.(cerr.CustomError)
	if !ok || ce.ErrorType() != constant.ErrNotFound {
		t.Fatalf("UpdateStatus() error = %v, want not found", err)
	}
}

func TestJobApp_GetByID(t *testing.T) {
	jobRepo := jobmocks.NewJobRepository(t)

	jobRepo.
		On("GetByID", mock.Anything, uint64(21)).
		Return(&model.JobEntity{
			JobID:       21,
			CustomerID:  1,
			EmployeeID:  2,
			Description: "Replace compressor",
			Status:      constant.JobStatusInProgress,
		}, nil).
		Once()
	jobRepo.
		On("GetByID", mock.Anything, uint64(99)).
		Return(nil, nil).
		Once()

	app := appjob.NewJobApp(jobRepo, customermocks.NewCustomerRepository(t), employeemocks.NewEmployeeRepository(t), nil)

	got, err := app.GetByID(context.Background(), 21)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if got.Status != constant.JobStatusInProgress {
		t.Fatalf("GetByID() = %+v", got)
	}

	_, err = app.GetByID(context.Background(), 99)
	ce, ok := err.(cerr.CustomError)
	if !ok || ce.ErrorType() != constant.ErrNotFound {
		t.Fatalf("GetByID() error = %v, want not found", err)
	}
}

func TestJobApp_Delete(t *testing.T) {
	jobRepo := jobmocks.NewJobRepository(t)
	jobRepo.On("Delete", mock.Anything, uint64(21)).Return(nil).Once()

	app := appjob.NewJobApp(jobRepo, customermocks.NewCustomerRepository(t), employeemocks.NewEmployeeRepository(t), nil)
	if err := app.Delete(context.Background(), 21); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
}
