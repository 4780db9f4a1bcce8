package errors

import (
	"fmt"

	"github.com/sahanperera/repairshop-backend/constant"
)

type CustomError struct {
	errType constant.ErrorType
	message string
}

func (c CustomError) Error() string {
	if c.message != "" {
		return c.message
	}
	return constant.ErrorTypeMessage[c.errType]
}

func (c CustomError) ErrorCode() string {
	return constant.ErrorTypeCode[c.errType]
}

func (c CustomError) ErrorHTTPCode() int {
	return constant.ErrorTypeHTTPCode[c.errType]
}

func (c CustomError) ErrorType() constant.ErrorType {
	return c.errType
}

func SetCustomError(errorType constant.ErrorType) CustomError {
	return CustomError{
		errType: errorType,
	}
}

// SetCustomErrorf overrides the default message for the error type, used for
// conflicts that name the offending value ("Phone number 0711234567 already
// exists").
func SetCustomErrorf(errorType constant.ErrorType, format string, args ...any) CustomError {
	return CustomError{
		errType: errorType,
		message: fmt.Sprintf(format, args...),
	}
}
