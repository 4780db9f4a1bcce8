package employee_test

import (
	"context"
	"reflect"
	"testing"

	"github.com/jmoiron/sqlx"
	appemployee "github.com/sahanperera/repairshop-backend/application/employee"
	"github.com/sahanperera/repairshop-backend/constant"
	employeemocks "github.com/sahanperera/repairshop-backend/mocks/repository/employee"
	txmocks "github.com/sahanperera/repairshop-backend/mocks/repository/tx"
	"github.com/sahanperera/repairshop-backend/model"
	cerr "github.com/sahanperera/repairshop-backend/utils/errors"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

func strPtr(s string) *string { return &s }

func TestEmployeeApp_Register(t *testing.T) {
	type fields struct {
		txRepo       *txmocks.TxRepository
		employeeRepo *employeemocks.EmployeeRepository
	}
	validReq := func() *model.RegisterEmployeeRequest {
		return &model.RegisterEmployeeRequest{
			FirstName: "Sunil",
			LastName:  "Fernando",
			Email:     "sunil@x.com",
			NIC:       "912345678V",
			Role:      "employee",
			Username:  "sunilf",
			Password:  "secret1",
			DOB:       "1991-04-12",
			MobileNo:  []string{"0755555555"},
		}
	}
	tests := []struct {
		name     string
		fields   fields
		req      *model.RegisterEmployeeRequest
		mockCall func(f fields)
		wantErr  bool
		errMsg   string
	}{
		{
			name: "success: password is stored as a bcrypt hash",
			fields: fields{
				txRepo:       txmocks.NewTxRepository(t),
				employeeRepo: employeemocks.NewEmployeeRepository(t),
			},
			req: validReq(),
			mockCall: func(f fields) {
				f.employeeRepo.
					On("EmailExists", mock.Anything, "sunil@x.com", uint64(0)).
					Return(false, nil).
					Once()
				f.employeeRepo.
					On("UsernameExists", mock.Anything, "sunilf", uint64(0)).
					Return(false, nil).
					Once()
				f.employeeRepo.
					On("PhoneExists", mock.Anything, "0755555555").
					Return(false, nil).
					Once()

				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()

				f.employeeRepo.
					On("CreateTx", mock.Anything, tx, mock.MatchedBy(func(emp *model.NewEmployee) bool {
						if emp.Username != "sunilf" || emp.PasswordHash == "secret1" {
							return false
						}
						return bcrypt.CompareHashAndPassword([]byte(emp.PasswordHash), []byte("secret1")) == nil
					})).
					Return(uint64(3), nil).
					Once()
				f.employeeRepo.
					On("InsertPhonesTx", mock.Anything, tx, uint64(3), []string{"0755555555"}).
					Return(nil).
					Once()
			},
			wantErr: false,
		},
		{
			name: "error: email already exists",
			fields: fields{
				txRepo:       txmocks.NewTxRepository(t),
				employeeRepo: employeemocks.NewEmployeeRepository(t),
			},
			req: validReq(),
			mockCall: func(f fields) {
				f.employeeRepo.
					On("EmailExists", mock.Anything, "sunil@x.com", uint64(0)).
					Return(true, nil).
					Once()
			},
			wantErr: true,
			errMsg:  "Email already exists",
		},
		{
			name: "error: username already exists",
			fields: fields{
				txRepo:       txmocks.NewTxRepository(t),
				employeeRepo: employeemocks.NewEmployeeRepository(t),
			},
			req: validReq(),
			mockCall: func(f fields) {
				f.employeeRepo.
					On("EmailExists", mock.Anything, "sunil@x.com", uint64(0)).
					Return(false, nil).
					Once()
				f.employeeRepo.
					On("UsernameExists", mock.Anything, "sunilf", uint64(0)).
					Return(true, nil).
					Once()
			},
			wantErr: true,
			errMsg:  "Username already exists",
		},
		{
			name: "error: phone already exists",
			fields: fields{
				txRepo:       txmocks.NewTxRepository(t),
				employeeRepo: employeemocks.NewEmployeeRepository(t),
			},
			req: validReq(),
			mockCall: func(f fields) {
				f.employeeRepo.
					On("EmailExists", mock.Anything, "sunil@x.com", uint64(0)).
					Return(false, nil).
					Once()
				f.employeeRepo.
					On("UsernameExists", mock.Anything, "sunilf", uint64(0)).
					Return(false, nil).
					Once()
				f.employeeRepo.
					On("PhoneExists", mock.Anything, "0755555555").
					Return(true, nil).
					Once()
			},
			wantErr: true,
			errMsg:  "Phone number 0755555555 already exists",
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}

			app := appemployee.NewEmployeeApp(tt.fields.txRepo, tt.fields.employeeRepo, nil)

			err := app.Register(context.Background(), tt.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Register() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.errMsg != "" && err.Error() != tt.errMsg {
				t.Fatalf("Register() error message = %q, want %q", err.Error(), tt.errMsg)
			}
		})
	}
}

func TestEmployeeApp_FullUpdate(t *testing.T) {
	type fields struct {
		txRepo       *txmocks.TxRepository
		employeeRepo *employeemocks.EmployeeRepository
	}
	tests := []struct {
		name     string
		fields   fields
		id       uint64
		req      *model.UpdateEmployeeRequest
		mockCall func(f fields)
		wantErr  bool
	}{
		{
			name: "success: new password is rehashed before the write",
			fields: fields{
				txRepo:       txmocks.NewTxRepository(t),
				employeeRepo: employeemocks.NewEmployeeRepository(t),
			},
			id: 3,
			req: &model.UpdateEmployeeRequest{
				Email:        strPtr("sunil@x.com"),
				Password:     strPtr("newsecret"),
				PhoneNumbers: []string{"0766666666"},
			},
			mockCall: func(f fields) {
				f.employeeRepo.
					On("EmailExists", mock.Anything, "sunil@x.com", uint64(3)).
					Return(false, nil).
					Once()

				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()

				f.employeeRepo.
					On("UpdateTx", mock.Anything, tx, uint64(3), mock.MatchedBy(func(upd *model.EmployeeUpdate) bool {
						if upd.PasswordHash == nil || *upd.PasswordHash == "newsecret" {
							return false
						}
						return bcrypt.CompareHashAndPassword([]byte(*upd.PasswordHash), []byte("newsecret")) == nil
					})).
					Return(nil).
					Once()
				f.employeeRepo.
					On("DeletePhonesTx", mock.Anything, tx, uint64(3)).
					Return(nil).
					Once()
				f.employeeRepo.
					On("InsertPhonesTx", mock.Anything, tx, uint64(3), []string{"0766666666"}).
					Return(nil).
					Once()
			},
			wantErr: false,
		},
		{
			name: "success: absent phoneNumbers clears the phone set",
			fields: fields{
				txRepo:       txmocks.NewTxRepository(t),
				employeeRepo: employeemocks.NewEmployeeRepository(t),
			},
			id: 3,
			req: &model.UpdateEmployeeRequest{
				FirstName: strPtr("Sunil"),
			},
			mockCall: func(f fields) {
				f.employeeRepo.
					On("EmailExists", mock.Anything, "", uint64(3)).
					Return(false, nil).
					Once()

				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()

				f.employeeRepo.
					On("UpdateTx", mock.Anything, tx, uint64(3), mock.MatchedBy(func(upd *model.EmployeeUpdate) bool {
						return upd.PasswordHash == nil && upd.Email == nil &&
							upd.FirstName != nil && *upd.FirstName == "Sunil"
					})).
					Return(nil).
					Once()
				f.employeeRepo.
					On("DeletePhonesTx", mock.Anything, tx, uint64(3)).
					Return(nil).
					Once()
			},
			wantErr: false,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}

			app := appemployee.NewEmployeeApp(tt.fields.txRepo, tt.fields.employeeRepo, nil)

			err := app.FullUpdate(context.Background(), tt.id, tt.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("FullUpdate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestEmployeeApp_Delete(t *testing.T) {
	txRepo := txmocks.NewTxRepository(t)
	employeeRepo := employeemocks.NewEmployeeRepository(t)

	tx := &sqlx.Tx{}
	txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
	txRepo.On("CommitTx", tx).Return(nil).Once()

	employeeRepo.On("DeleteTx", mock.Anything, tx, uint64(4)).Return(nil).Once()
	employeeRepo.On("DeletePhonesTx", mock.Anything, tx, uint64(4)).Return(nil).Once()

	app := appemployee.NewEmployeeApp(txRepo, employeeRepo, nil)
	if err := app.Delete(context.Background(), 4); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
}

func TestEmployeeApp_GetByID(t *testing.T) {
	employeeRepo := employeemocks.NewEmployeeRepository(t)

	employeeRepo.
		On("GetByID", mock.Anything, uint64(1)).
		Return(&model.EmployeeEntity{
			EmployeeID: 1,
			FirstName:  "Sunil",
			LastName:   "Fernando",
			Email:      "sunil@x.com",
			NIC:        "912345678V",
			Role:       "employee",
			Username:   "sunilf",
			DOB:        "1991-04-12",
			Phones:     "",
		}, nil).
		Once()
	employeeRepo.
		On("GetByID", mock.Anything, uint64(99)).
		Return(nil, nil).
		Once()

	app := appemployee.NewEmployeeApp(txmocks.NewTxRepository(t), employeeRepo, nil)

	got, err := app.GetByID(context.Background(), 1)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if got.DOB != "1991-04-12" || !reflect.DeepEqual(got.PhoneNumbers, []string{}) {
		t.Fatalf("GetByID() = %+v", got)
	}

	_, err = app.GetByID(context.Background(), 99)
	ce, ok := err.(cerr.CustomError)
	if !ok || ce.ErrorType() != constant.ErrNotFound {
		t.Fatalf("GetByID() error = %v, want not found", err)
	}
}
