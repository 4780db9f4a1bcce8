package transport

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/sahanperera/repairshop-backend/constant"
	"github.com/sahanperera/repairshop-backend/model"
	"github.com/sahanperera/repairshop-backend/utils/errors"
	validatorx "github.com/sahanperera/repairshop-backend/utils/validator"
)

// RegisterCustomer handler
// @Summary Register customer
// @Description Register a new customer with optional phone numbers
// @Tags Customers
// @Accept json
// @Produce json
// @Param request body model.RegisterCustomerRequest true "Register Request"
// @Success 201 {object} model.MessageResponse
// @Failure 400 {object} model.ValidationErrorResponse
// @Router /api/customers/register [post]
func (s *RestHandler) RegisterCustomer(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.RegisterCustomerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeValidationErrors(w, err)
		return
	}

	if err := s.CustomerApp.Register(ctx, &req); err != nil {
		writeError(w, err)
		return
	}

	writeCreated(w, model.MessageResponse{Message: "Customer registered successfully"})
}

// UpdateCustomer handler
// @Summary Update customer
// @Description Full update; phone rows are replaced wholesale
// @Tags Customers
// @Accept json
// @Produce json
// @Param id path int true "Customer ID"
// @Param request body model.UpdateCustomerRequest true "Update Request"
// @Success 200 {object} model.MessageResponse
// @Failure 400 {object} model.MessageResponse
// @Router /api/customers/{id} [put]
func (s *RestHandler) UpdateCustomer(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	var req model.UpdateCustomerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeValidationErrors(w, err)
		return
	}

	if err := s.CustomerApp.FullUpdate(ctx, id, &req); err != nil {
		writeError(w, err)
		return
	}

	writeMessage(w, http.StatusOK, "Customer updated successfully")
}

// PatchCustomer handler
// @Summary Partially update customer
// @Tags Customers
// @Accept json
// @Produce json
// @Param id path int true "Customer ID"
// @Success 200 {object} model.MessageResponse
// @Failure 400 {object} model.MessageResponse
// @Router /api/customers/{id} [patch]
func (s *RestHandler) PatchCustomer(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	var updates model.PatchCustomerRequest
	if err := json.NewDecoder(r.Body).Decode(&updates); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := s.CustomerApp.PartialUpdate(ctx, id, updates); err != nil {
		writeError(w, err)
		return
	}

	writeMessage(w, http.StatusOK, "Customer updated successfully")
}

// DeleteCustomer handler
// @Summary Delete customer
// @Tags Customers
// @Produce json
// @Param id path int true "Customer ID"
// @Success 200 {object} model.MessageResponse
// @Router /api/customers/{id} [delete]
func (s *RestHandler) DeleteCustomer(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := s.CustomerApp.Delete(ctx, id); err != nil {
		writeError(w, err)
		return
	}

	writeMessage(w, http.StatusOK, "Customer deleted successfully")
}

// GetAllCustomers handler
// @Summary List customers
// @Tags Customers
// @Produce json
// @Success 200 {array} model.Customer
// @Router /api/customers/all [get]
func (s *RestHandler) GetAllCustomers(w http.ResponseWriter, r *http.Request) {
	customers, err := s.CustomerApp.GetAll(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, customers)
}

// GetCustomer handler
// @Summary Get customer by id
// @Tags Customers
// @Produce json
// @Param id path int true "Customer ID"
// @Success 200 {object} model.Customer
// @Failure 404 {object} model.MessageResponse
// @Router /api/customers/{id} [get]
func (s *RestHandler) GetCustomer(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	customer, err := s.CustomerApp.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, customer)
}

// GetCustomerByPhone handler
// @Summary Get customer by phone number
// @Tags Customers
// @Produce json
// @Param phoneNumber path string true "Phone number"
// @Success 200 {object} model.Customer
// @Failure 404 {object} model.MessageResponse
// @Router /api/customers/phone/{phoneNumber} [get]
func (s *RestHandler) GetCustomerByPhone(w http.ResponseWriter, r *http.Request) {
	phone := mux.Vars(r)["phoneNumber"]

	customer, err := s.CustomerApp.GetByPhone(r.Context(), phone)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, customer)
}
