package domain

import "time"

type Customer struct {
	ID           string    `json:"id" gorm:"primaryKey"`
	CompanyName  string    `json:"company_name" validate:"required"`
	ContactName  string    `json:"contact_name,omitempty"`
	Email        string    `json:"email,omitempty"`
	Phone        string    `json:"phone,omitempty"`
	Address      string    `json:"address,omitempty"`
	City         string    `json:"city,omitempty"`
	State        string    `json:"state,omitempty"`
	Zip          string    `json:"zip,omitempty"`
	BillingEmail string    `json:"billing_email,omitempty"`
	PaymentTerms string    `json:"payment_terms,omitempty"`
	Notes        string    `json:"notes,omitempty" gorm:"type:text"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
