package models

import (
	"fmt"
	"strings"
)

// RentalContract is the persisted record describing a car rental agreement.
type RentalContract struct {
	ID           int64   `json:"id" db:"id"`
	StartDate    Date    `json:"start_date" db:"start_date"`
	EndDate      Date    `json:"end_date" db:"end_date"`
	StartKm      int64   `json:"start_km" db:"start_km"`
	ContractedKm int64   `json:"contracted_km" db:"contracted_km"`
	MonthlyPrice float64 `json:"monthly_price" db:"monthly_price"`
	CarID        int64   `json:"car_id" db:"car_id"`
	CustomerID   int64   `json:"customer_id" db:"customer_id"`
}

// ContractColumns lists the mutable (non-id) columns of rental_contracts, in
// insert order. The create and partial-update paths both derive the legal
// column set from this list, so a schema change is a one-site edit.
var ContractColumns = []string{
	"start_date",
	"end_date",
	"start_km",
	"contracted_km",
	"monthly_price",
	"car_id",
	"customer_id",
}

// Values returns the column values aligned with ContractColumns.
func (c *RentalContract) Values() []interface{} {
	return []interface{}{
		c.StartDate,
		c.EndDate,
		c.StartKm,
		c.ContractedKm,
		c.MonthlyPrice,
		c.CarID,
		c.CustomerID,
	}
}

// ValidationError reports required fields missing from a create payload.
type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing required fields: %s", strings.Join(e.Missing, ", "))
}

// CreateContractInput carries a create payload. Fields are pointers so that
// an absent key is distinguishable from a zero value.
type CreateContractInput struct {
	StartDate    *Date    `json:"start_date"`
	EndDate      *Date    `json:"end_date"`
	StartKm      *int64   `json:"start_km"`
	ContractedKm *int64   `json:"contracted_km"`
	MonthlyPrice *float64 `json:"monthly_price"`
	CarID        *int64   `json:"car_id"`
	CustomerID   *int64   `json:"customer_id"`
}

// Validate checks that every required field is present. Value-level
// constraints (date ordering, non-negativity) are enforced by the store.
func (in *CreateContractInput) Validate() error {
	var missing []string
	if in.StartDate == nil {
		missing = append(missing, "start_date")
	}
	if in.EndDate == nil {
		missing = append(missing, "end_date")
	}
	if in.StartKm == nil {
		missing = append(missing, "start_km")
	}
	if in.ContractedKm == nil {
		missing = append(missing, "contracted_km")
	}
	if in.MonthlyPrice == nil {
		missing = append(missing, "monthly_price")
	}
	if in.CarID == nil {
		missing = append(missing, "car_id")
	}
	if in.CustomerID == nil {
		missing = append(missing, "customer_id")
	}
	if len(missing) > 0 {
		return &ValidationError{Missing: missing}
	}
	return nil
}

// Record converts a validated input into a contract without an id.
// Validate must have returned nil first.
func (in *CreateContractInput) Record() RentalContract {
	return RentalContract{
		StartDate:    *in.StartDate,
		EndDate:      *in.EndDate,
		StartKm:      *in.StartKm,
		ContractedKm: *in.ContractedKm,
		MonthlyPrice: *in.MonthlyPrice,
		CarID:        *in.CarID,
		CustomerID:   *in.CustomerID,
	}
}

// ContractUpdate carries a partial-update payload. Only set (non-nil) fields
// become assignments; unknown JSON keys are dropped during decoding.
type ContractUpdate struct {
	StartDate    *Date    `json:"start_date"`
	EndDate      *Date    `json:"end_date"`
	StartKm      *int64   `json:"start_km"`
	ContractedKm *int64   `json:"contracted_km"`
	MonthlyPrice *float64 `json:"monthly_price"`
	CarID        *int64   `json:"car_id"`
	CustomerID   *int64   `json:"customer_id"`
}

// Assignments returns the column assignments for the set fields, restricted
// to the columns ContractColumns declares mutable. An empty map means the
// payload carried no updatable field.
func (u *ContractUpdate) Assignments() map[string]interface{} {
	set := map[string]interface{}{}
	if u.StartDate != nil {
		set["start_date"] = *u.StartDate
	}
	if u.EndDate != nil {
		set["end_date"] = *u.EndDate
	}
	if u.StartKm != nil {
		set["start_km"] = *u.StartKm
	}
	if u.ContractedKm != nil {
		set["contracted_km"] = *u.ContractedKm
	}
	if u.MonthlyPrice != nil {
		set["monthly_price"] = *u.MonthlyPrice
	}
	if u.CarID != nil {
		set["car_id"] = *u.CarID
	}
	if u.CustomerID != nil {
		set["customer_id"] = *u.CustomerID
	}

	assignments := make(map[string]interface{}, len(set))
	for _, col := range ContractColumns {
		if v, ok := set[col]; ok {
			assignments[col] = v
		}
	}
	return assignments
}
