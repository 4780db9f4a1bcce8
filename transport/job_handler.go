package transport

import (
	"encoding/json"
	"net/http"

	"github.com/sahanperera/repairshop-backend/constant"
	"github.com/sahanperera/repairshop-backend/model"
	"github.com/sahanperera/repairshop-backend/utils/errors"
	validatorx "github.com/sahanperera/repairshop-backend/utils/validator"
)

// AddJob handler
// @Summary Create repair job
// @Tags Jobs
// @Accept json
// @Produce json
// @Param request body model.AddJobRequest true "Job Request"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} model.ValidationErrorResponse
// @Router /api/jobs/add [post]
func (s *RestHandler) AddJob(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.AddJobRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeValidationErrors(w, err)
		return
	}

	jobID, err := s.JobApp.Create(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeCreated(w, map[string]interface{}{
		"message": "Job created successfully",
		"jobId":   jobID,
	})
}

// UpdateJobStatus handler
// @Summary Update job status
// @Tags Jobs
// @Accept json
// @Produce json
// @Param id path int true "Job ID"
// @Param request body model.UpdateJobStatusRequest true "Status Request"
// @Success 200 {object} model.MessageResponse
// @Failure 400 {object} model.ValidationErrorResponse
// @Failure 404 {object} model.MessageResponse
// @Router /api/jobs/{id}/status [patch]
func (s *RestHandler) UpdateJobStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	var req model.UpdateJobStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeValidationErrors(w, err)
		return
	}

	if err := s.JobApp.UpdateStatus(ctx, id, req.Status); err != nil {
		writeError(w, err)
		return
	}

	writeMessage(w, http.StatusOK, "Job status updated successfully")
}

// DeleteJob handler
// @Summary Delete job
// @Tags Jobs
// @Produce json
// @Param id path int true "Job ID"
// @Success 200 {object} model.MessageResponse
// @Router /api/jobs/{id} [delete]
func (s *RestHandler) DeleteJob(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := s.JobApp.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}

	writeMessage(w, http.StatusOK, "Job deleted successfully")
}

// GetAllJobs handler
// @Summary List jobs
// @Tags Jobs
// @Produce json
// @Success 200 {array} model.Job
// @Router /api/jobs/all [get]
func (s *RestHandler) GetAllJobs(w http.ResponseWriter, r *http.Request) {
	jobs, err := s.JobApp.GetAll(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, jobs)
}

// GetJob handler
// @Summary Get job by id
// @Tags Jobs
// @Produce json
// @Param id path int true "Job ID"
// @Success 200 {object} model.Job
// @Failure 404 {object} model.MessageResponse
// @Router /api/jobs/{id} [get]
func (s *RestHandler) GetJob(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	job, err := s.JobApp.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, job)
}
