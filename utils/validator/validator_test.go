package validatorx_test

import (
	"testing"
	"time"

	"github.com/sahanperera/repairshop-backend/model"
	validatorx "github.com/sahanperera/repairshop-backend/utils/validator"
)

func strPtr(s string) *string { return &s }

func validRegisterEmployee() model.RegisterEmployeeRequest {
	return model.RegisterEmployeeRequest{
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

func fieldMessages(t *testing.T, s interface{}) []model.FieldError {
	t.Helper()
	err := validatorx.ValidateStruct(s)
	if err == nil {
		t.Fatalf("ValidateStruct(%T) = nil, want validation error", s)
	}
	return validatorx.Translate(err)
}

func TestValidate_RegisterCustomer(t *testing.T) {
	validatorx.Init()

	t.Run("valid request passes", func(t *testing.T) {
		req := model.RegisterCustomerRequest{
			FirstName:    "Amal",
			LastName:     "Perera",
			Email:        "amal@x.com",
			CustomerType: "Normal",
			PhoneNumbers: []string{"0711111111"},
		}
		if err := validatorx.ValidateStruct(req); err != nil {
			t.Fatalf("ValidateStruct() error = %v", err)
		}
	})

	t.Run("Premium is not accepted on registration", func(t *testing.T) {
		req := model.RegisterCustomerRequest{
			FirstName:    "Amal",
			LastName:     "Perera",
			Email:        "amal@x.com",
			CustomerType: "Premium",
		}
		errs := fieldMessages(t, req)
		if len(errs) != 1 || errs[0].Field != "customerType" {
			t.Fatalf("Translate() = %+v", errs)
		}
		if errs[0].Message != "customerType must be one of: Regular, Normal" {
			t.Fatalf("message = %q", errs[0].Message)
		}
	})

	t.Run("all violated fields are reported in order", func(t *testing.T) {
		req := model.RegisterCustomerRequest{
			FirstName:    "Amal99",
			LastName:     "Perera",
			Email:        "not-an-email",
			CustomerType: "Regular",
			PhoneNumbers: []string{"0711111111", "12345"},
		}
		errs := fieldMessages(t, req)
		if len(errs) != 3 {
			t.Fatalf("Translate() = %+v, want 3 errors", errs)
		}
		if errs[0].Message != "firstName must contain only letters and apostrophes" {
			t.Fatalf("errs[0] = %+v", errs[0])
		}
		if errs[1].Message != "Invalid email format" {
			t.Fatalf("errs[1] = %+v", errs[1])
		}
		if errs[2].Message != "Phone number must be exactly 10 digits starting with 07" {
			t.Fatalf("errs[2] = %+v", errs[2])
		}
	})

	t.Run("missing fields use the json name", func(t *testing.T) {
		errs := fieldMessages(t, model.RegisterCustomerRequest{})
		if len(errs) != 4 {
			t.Fatalf("Translate() = %+v, want 4 errors", errs)
		}
		if errs[0].Field != "firstName" || errs[0].Message != "firstName is required" {
			t.Fatalf("errs[0] = %+v", errs[0])
		}
	})
}

func TestValidate_UpdateCustomer(t *testing.T) {
	validatorx.Init()

	t.Run("Premium is accepted on update", func(t *testing.T) {
		req := model.UpdateCustomerRequest{CustomerType: strPtr("Premium")}
		if err := validatorx.ValidateStruct(req); err != nil {
			t.Fatalf("ValidateStruct() error = %v", err)
		}
	})

	t.Run("Normal is not accepted on update", func(t *testing.T) {
		req := model.UpdateCustomerRequest{CustomerType: strPtr("Normal")}
		errs := fieldMessages(t, req)
		if len(errs) != 1 || errs[0].Message != "customerType must be one of: Regular, Premium" {
			t.Fatalf("Translate() = %+v", errs)
		}
	})

	t.Run("empty body is valid, every field is optional", func(t *testing.T) {
		if err := validatorx.ValidateStruct(model.UpdateCustomerRequest{}); err != nil {
			t.Fatalf("ValidateStruct() error = %v", err)
		}
	})
}

func TestValidate_RegisterEmployee(t *testing.T) {
	validatorx.Init()

	t.Run("valid request passes", func(t *testing.T) {
		req := validRegisterEmployee()
		if err := validatorx.ValidateStruct(req); err != nil {
			t.Fatalf("ValidateStruct() error = %v", err)
		}
	})

	t.Run("future date of birth is rejected", func(t *testing.T) {
		req := validRegisterEmployee()
		req.DOB = time.Now().AddDate(0, 0, 1).Format("2006-01-02")
		errs := fieldMessages(t, req)
		if errs[0].Field != "dob" || errs[0].Message != "Date of birth cannot be a future date" {
			t.Fatalf("Translate() = %+v", errs)
		}
	})

	t.Run("under 18 is rejected", func(t *testing.T) {
		req := validRegisterEmployee()
		req.DOB = time.Now().AddDate(-17, 0, 0).Format("2006-01-02")
		errs := fieldMessages(t, req)
		if errs[0].Field != "dob" || errs[0].Message != "Employee must be at least 18 years old" {
			t.Fatalf("Translate() = %+v", errs)
		}
	})

	t.Run("malformed date is rejected", func(t *testing.T) {
		req := validRegisterEmployee()
		req.DOB = "12-04-1991"
		errs := fieldMessages(t, req)
		if errs[0].Field != "dob" || errs[0].Message != "Invalid date format, expected YYYY-MM-DD" {
			t.Fatalf("Translate() = %+v", errs)
		}
	})

	t.Run("twelve digit NIC passes", func(t *testing.T) {
		req := validRegisterEmployee()
		req.NIC = "199104123456"
		if err := validatorx.ValidateStruct(req); err != nil {
			t.Fatalf("ValidateStruct() error = %v", err)
		}
	})

	t.Run("bad NIC is rejected", func(t *testing.T) {
		req := validRegisterEmployee()
		req.NIC = "12345"
		errs := fieldMessages(t, req)
		if errs[0].Field != "nic" || errs[0].Message != "Invalid NIC format" {
			t.Fatalf("Translate() = %+v", errs)
		}
	})

	t.Run("short username is rejected", func(t *testing.T) {
		req := validRegisterEmployee()
		req.Username = "abc"
		errs := fieldMessages(t, req)
		if errs[0].Field != "username" || errs[0].Message != "username must be at least 5 characters" {
			t.Fatalf("Translate() = %+v", errs)
		}
	})

	t.Run("bad role is rejected", func(t *testing.T) {
		req := validRegisterEmployee()
		req.Role = "manager"
		errs := fieldMessages(t, req)
		if errs[0].Field != "role" || errs[0].Message != "role must be one of: owner, employee" {
			t.Fatalf("Translate() = %+v", errs)
		}
	})
}

func TestValidate_AddProduct(t *testing.T) {
	validatorx.Init()

	t.Run("missing fields are reported", func(t *testing.T) {
		errs := fieldMessages(t, model.AddProductRequest{})
		if len(errs) != 3 {
			t.Fatalf("Translate() = %+v, want 3 errors", errs)
		}
	})

	t.Run("over-long name is rejected", func(t *testing.T) {
		req := model.AddProductRequest{
			ProductName: string(make([]byte, 101)),
			Model:       "DX-100",
			ModelNo:     "DX100A",
		}
		errs := fieldMessages(t, req)
		if errs[0].Field != "productName" || errs[0].Message != "productName must not exceed 100 characters" {
			t.Fatalf("Translate() = %+v", errs)
		}
	})
}

func TestValidate_UpdateJobStatus(t *testing.T) {
	validatorx.Init()

	t.Run("known statuses pass", func(t *testing.T) {
		for _, status := range []string{"pending", "in_progress", "completed"} {
			req := model.UpdateJobStatusRequest{Status: status}
			if err := validatorx.ValidateStruct(req); err != nil {
				t.Fatalf("ValidateStruct(%q) error = %v", status, err)
			}
		}
	})

	t.Run("unknown status is rejected", func(t *testing.T) {
		req := model.UpdateJobStatusRequest{Status: "done"}
		errs := fieldMessages(t, req)
		if len(errs) != 1 || errs[0].Field != "status" {
			t.Fatalf("Translate() = %+v", errs)
		}
	})
}
