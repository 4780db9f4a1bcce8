package model

import "strings"

// CustomerEntity represents one row of the customer aggregate query: the
// customers table left-joined to customer_telephones with the phone numbers
// concatenated into a single column.
type CustomerEntity struct {
	CustomerID   uint64 `db:"customer_id"`
	FirstName    string `db:"firstName"`
	LastName     string `db:"lastName"`
	Email        string `db:"email"`
	CustomerType string `db:"type"`
	Phones       string `db:"phones"`
}

// Customer is the wire representation. PhoneNumbers is always a list, never
// null, even for customers without phones.
type Customer struct {
	CustomerID   uint64   `json:"customer_id"`
	FirstName    string   `json:"firstName"`
	LastName     string   `json:"lastName"`
	Email        string   `json:"email"`
	CustomerType string   `json:"customerType"`
	PhoneNumbers []string `json:"phoneNumbers"`
}

func (e *CustomerEntity) ToCustomer() Customer {
	return Customer{
		CustomerID:   e.CustomerID,
		FirstName:    e.FirstName,
		LastName:     e.LastName,
		Email:        e.Email,
		CustomerType: e.CustomerType,
		PhoneNumbers: SplitPhones(e.Phones),
	}
}

// SplitPhones splits a GROUP_CONCAT phone column into a list. An empty
// column yields an empty list.
func SplitPhones(concat string) []string {
	if concat == "" {
		return []string{}
	}
	return strings.Split(concat, ",")
}

type RegisterCustomerRequest struct {
	FirstName    string   `json:"firstName" validate:"required,max=10,namechars"`
	LastName     string   `json:"lastName" validate:"required,max=20,namechars"`
	Email        string   `json:"email" validate:"required,max=100,email"`
	CustomerType string   `json:"customerType" validate:"required,oneof=Regular Normal"`
	PhoneNumbers []string `json:"phoneNumbers" validate:"omitempty,dive,phonelk"`
}

// UpdateCustomerRequest carries a full update. Fields are pointers: a field
// absent from the request body overwrites its column with NULL, matching the
// replace-everything contract of PUT.
type UpdateCustomerRequest struct {
	FirstName    *string  `json:"firstName" validate:"omitempty,max=10,namechars"`
	LastName     *string  `json:"lastName" validate:"omitempty,max=20,namechars"`
	Email        *string  `json:"email" validate:"omitempty,max=100,email"`
	CustomerType *string  `json:"customerType" validate:"omitempty,oneof=Regular Premium"`
	PhoneNumbers []string `json:"phoneNumbers" validate:"omitempty,dive,phonelk"`
}

// CustomerUpdate is the column image written by a full update. Nil pointers
// overwrite with NULL, the PUT contract being a full replace of the row.
type CustomerUpdate struct {
	FirstName    *string
	LastName     *string
	Email        *string
	CustomerType *string
}

// PatchCustomerRequest is the raw partial-update payload; keys are filtered
// against an explicit allow-list before hitting the database.
type PatchCustomerRequest map[string]interface{}
