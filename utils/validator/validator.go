package validatorx

import (
	"fmt"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"time"

	gpvalidator "github.com/go-playground/validator/v10"
	"github.com/sahanperera/repairshop-backend/model"
)

var (
	v   *gpvalidator.Validate
	mut sync.Mutex
)

var (
	nameCharsRe = regexp.MustCompile(`^[A-Za-z']+$`)
	phoneLKRe   = regexp.MustCompile(`^07[0-9]{8}$`)
	nicLKRe     = regexp.MustCompile(`^([0-9]{9}[Vv]|[0-9]{12})$`)
)

const dobLayout = "2006-01-02"

// Init initializes the validator singleton (idempotent)
func Init() {
	mut.Lock()
	defer mut.Unlock()
	if v != nil {
		return
	}
	v = gpvalidator.New()

	// Report fields by their json name so messages match the wire format.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = v.RegisterValidation("namechars", func(fl gpvalidator.FieldLevel) bool {
		return nameCharsRe.MatchString(fl.Field().String())
	})

	// Local mobile number: exactly 10 digits, 07 prefix.
	_ = v.RegisterValidation("phonelk", func(fl gpvalidator.FieldLevel) bool {
		return phoneLKRe.MatchString(fl.Field().String())
	})

	// NIC: 9 digits followed by V, or 12 digits.
	_ = v.RegisterValidation("niclk", func(fl gpvalidator.FieldLevel) bool {
		return nicLKRe.MatchString(fl.Field().String())
	})

	_ = v.RegisterValidation("pastdate", func(fl gpvalidator.FieldLevel) bool {
		d, err := time.Parse(dobLayout, fl.Field().String())
		if err != nil {
			return false
		}
		return !d.After(time.Now())
	})

	_ = v.RegisterValidation("minage", func(fl gpvalidator.FieldLevel) bool {
		years, err := strconv.Atoi(fl.Param())
		if err != nil {
			return false
		}
		d, err := time.Parse(dobLayout, fl.Field().String())
		if err != nil {
			return false
		}
		return !d.AddDate(years, 0, 0).After(time.Now())
	})
}

// ValidateStruct validates a struct using go-playground/validator
func ValidateStruct(s interface{}) error {
	if v == nil {
		Init()
	}
	return v.Struct(s)
}

// Translate turns a validation error into the ordered field/message list
// returned to the caller. Rules are evaluated in struct-field order and every
// violated field is reported, not just the first.
func Translate(err error) []model.FieldError {
	verrs, ok := err.(gpvalidator.ValidationErrors)
	if !ok {
		return []model.FieldError{{Field: "request", Message: "invalid request body"}}
	}

	out := make([]model.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, model.FieldError{
			Field:   fe.Field(),
			Message: messageFor(fe),
		})
	}
	return out
}

func messageFor(fe gpvalidator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "email":
		return "Invalid email format"
	case "max":
		return fmt.Sprintf("%s must not exceed %s characters", fe.Field(), fe.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", fe.Field(), fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", fe.Field(), strings.ReplaceAll(fe.Param(), " ", ", "))
	case "namechars":
		return fmt.Sprintf("%s must contain only letters and apostrophes", fe.Field())
	case "phonelk":
		return "Phone number must be exactly 10 digits starting with 07"
	case "niclk":
		return "Invalid NIC format"
	case "datetime":
		return "Invalid date format, expected YYYY-MM-DD"
	case "pastdate":
		return "Date of birth cannot be a future date"
	case "minage":
		return fmt.Sprintf("Employee must be at least %s years old", fe.Param())
	case "alphanum":
		return fmt.Sprintf("%s must be alphanumeric", fe.Field())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}
