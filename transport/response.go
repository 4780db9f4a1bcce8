package transport

import (
	"encoding/json"
	stderrors "errors"
	"net/http"

	"github.com/sahanperera/repairshop-backend/model"
	cerr "github.com/sahanperera/repairshop-backend/utils/errors"
	validatorx "github.com/sahanperera/repairshop-backend/utils/validator"
)

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeSuccess(w http.ResponseWriter, data interface{}) {
	writeJSON(w, http.StatusOK, data)
}

func writeCreated(w http.ResponseWriter, data interface{}) {
	writeJSON(w, http.StatusCreated, data)
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, model.MessageResponse{Message: message})
}

// writeError maps CustomError to its HTTP code and {message} body. Anything
// else is a store failure: the raw error text goes back as {error} with 500.
func writeError(w http.ResponseWriter, err error) {
	var ce cerr.CustomError
	if stderrors.As(err, &ce) {
		writeJSON(w, ce.ErrorHTTPCode(), model.MessageResponse{Message: ce.Error()})
		return
	}

	writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
}

// writeValidationErrors returns the full ordered list of violated rules.
func writeValidationErrors(w http.ResponseWriter, err error) {
	writeJSON(w, http.StatusBadRequest, model.ValidationErrorResponse{Errors: validatorx.Translate(err)})
}
