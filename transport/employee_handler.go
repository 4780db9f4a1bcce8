package transport

import (
	"encoding/json"
	"net/http"

	"github.com/sahanperera/repairshop-backend/constant"
	"github.com/sahanperera/repairshop-backend/model"
	"github.com/sahanperera/repairshop-backend/utils/errors"
	validatorx "github.com/sahanperera/repairshop-backend/utils/validator"
)

// RegisterEmployee handler
// @Summary Register employee
// @Description Register a new employee with optional mobile numbers
// @Tags Employees
// @Accept json
// @Produce json
// @Param request body model.RegisterEmployeeRequest true "Register Request"
// @Success 201 {object} model.MessageResponse
// @Failure 400 {object} model.ValidationErrorResponse
// @Router /api/employees/register [post]
func (s *RestHandler) RegisterEmployee(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.RegisterEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeValidationErrors(w, err)
		return
	}

	if err := s.EmployeeApp.Register(ctx, &req); err != nil {
		writeError(w, err)
		return
	}

	writeCreated(w, model.MessageResponse{Message: "Employee registered successfully"})
}

// UpdateEmployee handler
// @Summary Update employee
// @Tags Employees
// @Accept json
// @Produce json
// @Param id path int true "Employee ID"
// @Param request body model.UpdateEmployeeRequest true "Update Request"
// @Success 200 {object} model.MessageResponse
// @Failure 400 {object} model.MessageResponse
// @Router /api/employees/{id} [put]
func (s *RestHandler) UpdateEmployee(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	var req model.UpdateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeValidationErrors(w, err)
		return
	}

	if err := s.EmployeeApp.FullUpdate(ctx, id, &req); err != nil {
		writeError(w, err)
		return
	}

	writeMessage(w, http.StatusOK, "Employee updated successfully")
}

// DeleteEmployee handler
// @Summary Delete employee
// @Tags Employees
// @Produce json
// @Param id path int true "Employee ID"
// @Success 200 {object} model.MessageResponse
// @Router /api/employees/{id} [delete]
func (s *RestHandler) DeleteEmployee(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := s.EmployeeApp.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}

	writeMessage(w, http.StatusOK, "Employee deleted successfully")
}

// GetAllEmployees handler
// @Summary List employees
// @Tags Employees
// @Produce json
// @Success 200 {array} model.Employee
// @Router /api/employees/all [get]
func (s *RestHandler) GetAllEmployees(w http.ResponseWriter, r *http.Request) {
	employees, err := s.EmployeeApp.GetAll(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, employees)
}

// GetEmployee handler
// @Summary Get employee by id
// @Tags Employees
// @Produce json
// @Param id path int true "Employee ID"
// @Success 200 {object} model.Employee
// @Failure 404 {object} model.MessageResponse
// @Router /api/employees/{id} [get]
func (s *RestHandler) GetEmployee(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	employee, err := s.EmployeeApp.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, employee)
}
