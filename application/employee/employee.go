package employee

import (
	"context"

	"github.com/sahanperera/repairshop-backend/constant"
	"github.com/sahanperera/repairshop-backend/model"
	employeerepo "github.com/sahanperera/repairshop-backend/repository/employee"
	txrepo "github.com/sahanperera/repairshop-backend/repository/tx"
	"github.com/sahanperera/repairshop-backend/thirdparty/rabbitmq"
	"github.com/sahanperera/repairshop-backend/utils/errors"
	"github.com/sahanperera/repairshop-backend/utils/logger"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type EmployeeApp interface {
	Register(ctx context.Context, req *model.RegisterEmployeeRequest) error
	FullUpdate(ctx context.Context, id uint64, req *model.UpdateEmployeeRequest) error
	Delete(ctx context.Context, id uint64) error
	GetAll(ctx context.Context) ([]model.Employee, error)
	GetByID(ctx context.Context, id uint64) (*model.Employee, error)
}

type employeeAppImpl struct {
	txRepo       txrepo.TxRepository
	employeeRepo employeerepo.EmployeeRepository
	publisher    *rabbitmq.Publisher
}

func NewEmployeeApp(txRepo txrepo.TxRepository, employeeRepo employeerepo.EmployeeRepository, publisher *rabbitmq.Publisher) EmployeeApp {
	return &employeeAppImpl{
		txRepo:       txRepo,
		employeeRepo: employeeRepo,
		publisher:    publisher,
	}
}

// Register checks email, username and each phone against current state, then
// writes the employee and its phone rows in one transaction. Passwords are
// bcrypt-hashed before they reach the repository and are never read back.
func (s *employeeAppImpl) Register(ctx context.Context, req *model.RegisterEmployeeRequest) error {
	exists, err := s.employeeRepo.EmailExists(ctx, req.Email, 0)
	if err != nil {
		logger.Error("[RegisterEmployee] err employeeRepo.EmailExists", zap.String("error", err.Error()))
		return err
	}
	if exists {
		return errors.SetCustomErrorf(constant.ErrConflict, "Email already exists")
	}

	exists, err = s.employeeRepo.UsernameExists(ctx, req.Username, 0)
	if err != nil {
		logger.Error("[RegisterEmployee] err employeeRepo.UsernameExists", zap.String("error", err.Error()))
		return err
	}
	if exists {
		return errors.SetCustomErrorf(constant.ErrConflict, "Username already exists")
	}

	// First colliding phone aborts the call; later phones are not checked.
	for _, phone := range req.MobileNo {
		taken, err := s.employeeRepo.PhoneExists(ctx, phone)
		if err != nil {
			logger.Error("[RegisterEmployee] err employeeRepo.PhoneExists", zap.String("error", err.Error()))
			return err
		}
		if taken {
			return errors.SetCustomErrorf(constant.ErrConflict, "Phone number %s already exists", phone)
		}
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("[RegisterEmployee] err bcrypt.GenerateFromPassword", zap.String("error", err.Error()))
		return err
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[RegisterEmployee] begin tx", zap.String("error", err.Error()))
		return err
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	employeeID, err := s.employeeRepo.CreateTx(ctx, tx, &model.NewEmployee{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		NIC:          req.NIC,
		Role:         req.Role,
		Username:     req.Username,
		PasswordHash: string(hashed),
		DOB:          req.DOB,
	})
	if err != nil {
		logger.Error("[RegisterEmployee] err employeeRepo.CreateTx", zap.String("error", err.Error()))
		return err
	}

	if len(req.MobileNo) > 0 {
		if err := s.employeeRepo.InsertPhonesTx(ctx, tx, employeeID, req.MobileNo); err != nil {
			logger.Error("[RegisterEmployee] err employeeRepo.InsertPhonesTx", zap.String("error", err.Error()))
			return err
		}
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[RegisterEmployee] commit tx", zap.String("error", err.Error()))
		return err
	}
	committed = true

	s.publishEvent(constant.EventEmployeeRegistered, map[string]any{
		"employee_id": employeeID,
		"username":    req.Username,
	})

	return nil
}

// FullUpdate overwrites every mutable column with the supplied values (absent
// fields become NULL) and replaces the phone set wholesale: rows are deleted
// unconditionally and reinserted only for a non-empty phoneNumbers list.
func (s *employeeAppImpl) FullUpdate(ctx context.Context, id uint64, req *model.UpdateEmployeeRequest) error {
	// The conflict probe always runs, even with no email in the request.
	email := ""
	if req.Email != nil {
		email = *req.Email
	}
	exists, err := s.employeeRepo.EmailExists(ctx, email, id)
	if err != nil {
		logger.Error("[UpdateEmployee] err employeeRepo.EmailExists", zap.String("error", err.Error()))
		return err
	}
	if exists {
		return errors.SetCustomErrorf(constant.ErrConflict, "Email already exists")
	}

	var passwordHash *string
	if req.Password != nil {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			logger.Error("[UpdateEmployee] err bcrypt.GenerateFromPassword", zap.String("error", err.Error()))
			return err
		}
		h := string(hashed)
		passwordHash = &h
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[UpdateEmployee] begin tx", zap.String("error", err.Error()))
		return err
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	err = s.employeeRepo.UpdateTx(ctx, tx, id, &model.EmployeeUpdate{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		NIC:          req.NIC,
		Role:         req.Role,
		Username:     req.Username,
		PasswordHash: passwordHash,
		DOB:          req.DOB,
	})
	if err != nil {
		logger.Error("[UpdateEmployee] err employeeRepo.UpdateTx", zap.String("error", err.Error()))
		return err
	}

	if err := s.employeeRepo.DeletePhonesTx(ctx, tx, id); err != nil {
		logger.Error("[UpdateEmployee] err employeeRepo.DeletePhonesTx", zap.String("error", err.Error()))
		return err
	}

	if len(req.PhoneNumbers) > 0 {
		if err := s.employeeRepo.InsertPhonesTx(ctx, tx, id, req.PhoneNumbers); err != nil {
			logger.Error("[UpdateEmployee] err employeeRepo.InsertPhonesTx", zap.String("error", err.Error()))
			return err
		}
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[UpdateEmployee] commit tx", zap.String("error", err.Error()))
		return err
	}
	committed = true

	return nil
}

func (s *employeeAppImpl) Delete(ctx context.Context, id uint64) error {
	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[DeleteEmployee] begin tx", zap.String("error", err.Error()))
		return err
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	if err := s.employeeRepo.DeleteTx(ctx, tx, id); err != nil {
		logger.Error("[DeleteEmployee] err employeeRepo.DeleteTx", zap.String("error", err.Error()))
		return err
	}

	if err := s.employeeRepo.DeletePhonesTx(ctx, tx, id); err != nil {
		logger.Error("[DeleteEmployee] err employeeRepo.DeletePhonesTx", zap.String("error", err.Error()))
		return err
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[DeleteEmployee] commit tx", zap.String("error", err.Error()))
		return err
	}
	committed = true

	return nil
}

func (s *employeeAppImpl) GetAll(ctx context.Context) ([]model.Employee, error) {
	entities, err := s.employeeRepo.GetAll(ctx)
	if err != nil {
		logger.Error("[GetAllEmployees] err employeeRepo.GetAll", zap.String("error", err.Error()))
		return nil, err
	}

	employees := make([]model.Employee, 0, len(entities))
	for i := range entities {
		employees = append(employees, entities[i].ToEmployee())
	}
	return employees, nil
}

func (s *employeeAppImpl) GetByID(ctx context.Context, id uint64) (*model.Employee, error) {
	entity, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		logger.Error("[GetEmployee] err employeeRepo.GetByID", zap.String("error", err.Error()))
		return nil, err
	}
	if entity == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	employee := entity.ToEmployee()
	return &employee, nil
}

func (s *employeeAppImpl) publishEvent(routingKey string, payload any) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishEvent(routingKey, payload); err != nil {
		logger.Warn("[Employee] publish event failed", zap.String("routing_key", routingKey), zap.String("error", err.Error()))
	}
}
