package model

// EmployeeEntity is one row of the employee aggregate query. The password
// hash is intentionally not part of the struct: read paths never select it.
type EmployeeEntity struct {
	EmployeeID uint64 `db:"employee_id"`
	FirstName  string `db:"first_name"`
	LastName   string `db:"last_name"`
	Email      string `db:"email"`
	NIC        string `db:"nic"`
	Role       string `db:"role"`
	Username   string `db:"username"`
	DOB        string `db:"dob"`
	Phones     string `db:"phones"`
}

type Employee struct {
	EmployeeID   uint64   `json:"employee_id"`
	FirstName    string   `json:"firstName"`
	LastName     string   `json:"lastName"`
	Email        string   `json:"email"`
	NIC          string   `json:"nic"`
	Role         string   `json:"role"`
	Username     string   `json:"username"`
	DOB          string   `json:"dob"`
	PhoneNumbers []string `json:"phoneNumbers"`
}

func (e *EmployeeEntity) ToEmployee() Employee {
	return Employee{
		EmployeeID:   e.EmployeeID,
		FirstName:    e.FirstName,
		LastName:     e.LastName,
		Email:        e.Email,
		NIC:          e.NIC,
		Role:         e.Role,
		Username:     e.Username,
		DOB:          e.DOB,
		PhoneNumbers: SplitPhones(e.Phones),
	}
}

// NewEmployee is the insert payload. Password arrives in clear and is
// hashed before it reaches the repository.
type NewEmployee struct {
	FirstName    string
	LastName     string
	Email        string
	NIC          string
	Role         string
	Username     string
	PasswordHash string
	DOB          string
}

type RegisterEmployeeRequest struct {
	FirstName string   `json:"firstName" validate:"required,max=50,namechars"`
	LastName  string   `json:"lastName" validate:"required,max=50,namechars"`
	Email     string   `json:"email" validate:"required,max=100,email"`
	NIC       string   `json:"nic" validate:"required,niclk"`
	Role      string   `json:"role" validate:"required,oneof=owner employee"`
	Username  string   `json:"username" validate:"required,min=5,max=50"`
	Password  string   `json:"password" validate:"required,min=6"`
	DOB       string   `json:"dob" validate:"required,datetime=2006-01-02,pastdate,minage=18"`
	MobileNo  []string `json:"mobileno" validate:"omitempty,dive,phonelk"`
}

type UpdateEmployeeRequest struct {
	FirstName    *string  `json:"firstName" validate:"omitempty,max=50,namechars"`
	LastName     *string  `json:"lastName" validate:"omitempty,max=50,namechars"`
	Email        *string  `json:"email" validate:"omitempty,max=100,email"`
	NIC          *string  `json:"nic" validate:"omitempty,niclk"`
	Role         *string  `json:"role" validate:"omitempty,oneof=owner employee"`
	Username     *string  `json:"username" validate:"omitempty,min=5,max=50"`
	Password     *string  `json:"password" validate:"omitempty,min=6"`
	DOB          *string  `json:"dob" validate:"omitempty,datetime=2006-01-02,pastdate,minage=18"`
	PhoneNumbers []string `json:"phoneNumbers" validate:"omitempty,dive,phonelk"`
}

// EmployeeUpdate is the column image written by a full update. Nil pointers
// overwrite with NULL, the PUT contract being a full replace of the row.
type EmployeeUpdate struct {
	FirstName    *string
	LastName     *string
	Email        *string
	NIC          *string
	Role         *string
	Username     *string
	PasswordHash *string
	DOB          *string
}
