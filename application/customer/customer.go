package customer

import (
	"context"
	"fmt"

	"github.com/sahanperera/repairshop-backend/cmd/config"
	"github.com/sahanperera/repairshop-backend/constant"
	"github.com/sahanperera/repairshop-backend/model"
	customerrepo "github.com/sahanperera/repairshop-backend/repository/customer"
	redisrepo "github.com/sahanperera/repairshop-backend/repository/redis"
	txrepo "github.com/sahanperera/repairshop-backend/repository/tx"
	"github.com/sahanperera/repairshop-backend/thirdparty/rabbitmq"
	"github.com/sahanperera/repairshop-backend/utils/errors"
	"github.com/sahanperera/repairshop-backend/utils/logger"
	"go.uber.org/zap"
)

type CustomerApp interface {
	Register(ctx context.Context, req *model.RegisterCustomerRequest) error
	FullUpdate(ctx context.Context, id uint64, req *model.UpdateCustomerRequest) error
	PartialUpdate(ctx context.Context, id uint64, updates model.PatchCustomerRequest) error
	Delete(ctx context.Context, id uint64) error
	GetAll(ctx context.Context) ([]model.Customer, error)
	GetByID(ctx context.Context, id uint64) (*model.Customer, error)
	GetByPhone(ctx context.Context, phone string) (*model.Customer, error)
}

type customerAppImpl struct {
	config       *config.Config
	txRepo       txrepo.TxRepository
	customerRepo customerrepo.CustomerRepository
	redisRepo    redisrepo.Repository
	publisher    *rabbitmq.Publisher
}

func NewCustomerApp(config *config.Config, txRepo txrepo.TxRepository, customerRepo customerrepo.CustomerRepository, redisRepo redisrepo.Repository, publisher *rabbitmq.Publisher) CustomerApp {
	return &customerAppImpl{
		config:       config,
		txRepo:       txRepo,
		customerRepo: customerRepo,
		redisRepo:    redisRepo,
		publisher:    publisher,
	}
}

// allowedPatchColumns maps patch payload keys to their columns. The set of
// mutable columns is fixed here, not derived from the payload.
var allowedPatchColumns = map[string]string{
	"firstName":    "firstName",
	"lastName":     "lastName",
	"email":        "email",
	"customerType": "type",
}

func customerCacheKey(id uint64) string {
	return fmt.Sprintf("customer:%d", id)
}

// Register checks the natural keys against current state, then writes the
// parent row and its phone rows in one transaction. The uniqueness probes
// and the insert are not serialized against concurrent registrations.
func (s *customerAppImpl) Register(ctx context.Context, req *model.RegisterCustomerRequest) error {
	exists, err := s.customerRepo.EmailExists(ctx, req.Email, 0)
	if err != nil {
		logger.Error("[RegisterCustomer] err customerRepo.EmailExists", zap.String("error", err.Error()))
		return err
	}
	if exists {
		return errors.SetCustomErrorf(constant.ErrConflict, "Email already exists")
	}

	// First colliding phone aborts the call; later phones are not checked.
	for _, phone := range req.PhoneNumbers {
		taken, err := s.customerRepo.PhoneExists(ctx, phone)
		if err != nil {
			logger.Error("[RegisterCustomer] err customerRepo.PhoneExists", zap.String("error", err.Error()))
			return err
		}
		if taken {
			return errors.SetCustomErrorf(constant.ErrConflict, "Phone number %s already exists", phone)
		}
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[RegisterCustomer] begin tx", zap.String("error", err.Error()))
		return err
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	customerID, err := s.customerRepo.CreateTx(ctx, tx, &model.CustomerEntity{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		CustomerType: req.CustomerType,
	})
	if err != nil {
		logger.Error("[RegisterCustomer] err customerRepo.CreateTx", zap.String("error", err.Error()))
		return err
	}

	if len(req.PhoneNumbers) > 0 {
		if err := s.customerRepo.InsertPhonesTx(ctx, tx, customerID, req.PhoneNumbers); err != nil {
			logger.Error("[RegisterCustomer] err customerRepo.InsertPhonesTx", zap.String("error", err.Error()))
			return err
		}
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[RegisterCustomer] commit tx", zap.String("error", err.Error()))
		return err
	}
	committed = true

	s.publishEvent(constant.EventCustomerRegistered, map[string]any{
		"customer_id": customerID,
		"email":       req.Email,
	})

	return nil
}

// FullUpdate overwrites every mutable column with the supplied values (absent
// fields become NULL), then replaces the phone set: existing rows are always
// deleted and reinserted only when a non-empty list was supplied. An update
// without phoneNumbers leaves the customer with zero phones.
func (s *customerAppImpl) FullUpdate(ctx context.Context, id uint64, req *model.UpdateCustomerRequest) error {
	// The conflict probe always runs; with no email in the request it
	// compares against the empty string and cannot match a stored row.
	email := ""
	if req.Email != nil {
		email = *req.Email
	}
	exists, err := s.customerRepo.EmailExists(ctx, email, id)
	if err != nil {
		logger.Error("[UpdateCustomer] err customerRepo.EmailExists", zap.String("error", err.Error()))
		return err
	}
	if exists {
		return errors.SetCustomErrorf(constant.ErrConflict, "Email already exists")
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[UpdateCustomer] begin tx", zap.String("error", err.Error()))
		return err
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	err = s.customerRepo.UpdateTx(ctx, tx, id, &model.CustomerUpdate{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		CustomerType: req.CustomerType,
	})
	if err != nil {
		logger.Error("[UpdateCustomer] err customerRepo.UpdateTx", zap.String("error", err.Error()))
		return err
	}

	if err := s.customerRepo.DeletePhonesTx(ctx, tx, id); err != nil {
		logger.Error("[UpdateCustomer] err customerRepo.DeletePhonesTx", zap.String("error", err.Error()))
		return err
	}

	if len(req.PhoneNumbers) > 0 {
		if err := s.customerRepo.InsertPhonesTx(ctx, tx, id, req.PhoneNumbers); err != nil {
			logger.Error("[UpdateCustomer] err customerRepo.InsertPhonesTx", zap.String("error", err.Error()))
			return err
		}
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[UpdateCustomer] commit tx", zap.String("error", err.Error()))
		return err
	}
	committed = true

	s.invalidate(ctx, id)
	return nil
}

func (s *customerAppImpl) PartialUpdate(ctx context.Context, id uint64, updates model.PatchCustomerRequest) error {
	columns := make(map[string]interface{}, len(updates))
	for field, value := range updates {
		if col, ok := allowedPatchColumns[field]; ok {
			columns[col] = value
		}
	}
	if len(columns) == 0 {
		return errors.SetCustomError(constant.ErrNoValidFields)
	}

	if _, err := s.customerRepo.UpdateColumns(ctx, id, columns); err != nil {
		logger.Error("[PatchCustomer] err customerRepo.UpdateColumns", zap.String("error", err.Error()))
		return err
	}

	s.invalidate(ctx, id)
	return nil
}

func (s *customerAppImpl) Delete(ctx context.Context, id uint64) error {
	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[DeleteCustomer] begin tx", zap.String("error", err.Error()))
		return err
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	if err := s.customerRepo.DeleteTx(ctx, tx, id); err != nil {
		logger.Error("[DeleteCustomer] err customerRepo.DeleteTx", zap.String("error", err.Error()))
		return err
	}

	// Phones live in customer_telephones; removing them here keeps deletes
	// orphan-free without relying on FK cascade.
	if err := s.customerRepo.DeletePhonesTx(ctx, tx, id); err != nil {
		logger.Error("[DeleteCustomer] err customerRepo.DeletePhonesTx", zap.String("error", err.Error()))
		return err
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[DeleteCustomer] commit tx", zap.String("error", err.Error()))
		return err
	}
	committed = true

	s.invalidate(ctx, id)
	return nil
}

func (s *customerAppImpl) GetAll(ctx context.Context) ([]model.Customer, error) {
	entities, err := s.customerRepo.GetAll(ctx)
	if err != nil {
		logger.Error("[GetAllCustomers] err customerRepo.GetAll", zap.String("error", err.Error()))
		return nil, err
	}

	customers := make([]model.Customer, 0, len(entities))
	for i := range entities {
		customers = append(customers, entities[i].ToCustomer())
	}
	return customers, nil
}

func (s *customerAppImpl) GetByID(ctx context.Context, id uint64) (*model.Customer, error) {
	var cached model.Customer
	hit, err := s.redisRepo.GetEntity(ctx, customerCacheKey(id), &cached)
	if err != nil {
		logger.Warn("[GetCustomer] cache read failed", zap.String("error", err.Error()))
	}
	if hit {
		return &cached, nil
	}

	entity, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		logger.Error("[GetCustomer] err customerRepo.GetByID", zap.String("error", err.Error()))
		return nil, err
	}
	if entity == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	customer := entity.ToCustomer()
	if err := s.redisRepo.CacheEntity(ctx, customerCacheKey(id), customer, s.config.Cache.TTL); err != nil {
		logger.Warn("[GetCustomer] cache write failed", zap.String("error", err.Error()))
	}

	return &customer, nil
}

func (s *customerAppImpl) GetByPhone(ctx context.Context, phone string) (*model.Customer, error) {
	entity, err := s.customerRepo.GetByPhone(ctx, phone)
	if err != nil {
		logger.Error("[GetCustomerByPhone] err customerRepo.GetByPhone", zap.String("error", err.Error()))
		return nil, err
	}
	if entity == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	customer := entity.ToCustomer()
	return &customer, nil
}

func (s *customerAppImpl) invalidate(ctx context.Context, id uint64) {
	if err := s.redisRepo.Delete(ctx, customerCacheKey(id)); err != nil {
		logger.Warn("[Customer] cache invalidation failed", zap.Uint64("customer_id", id), zap.String("error", err.Error()))
	}
}

func (s *customerAppImpl) publishEvent(routingKey string, payload any) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishEvent(routingKey, payload); err != nil {
		logger.Warn("[Customer] publish event failed", zap.String("routing_key", routingKey), zap.String("error", err.Error()))
	}
}
