package customer

type CreateCustomerRequest struct {
	CompanyName  string `json:"company_name" binding:"required"`
	ContactName  string `json:"contact_name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Address      string `json:"address"`
	City         string `json:"city"`
	State        string `json:"state"`
	Zip          string `json:"zip"`
	BillingEmail string `json:"billing_email"`
	PaymentTerms string `json:"payment_terms"`
	Notes        string `json:"notes"`
}

type UpdateCustomerRequest struct {
	CompanyName  *string `json:"company_name"`
	ContactName  *string `json:"contact_name"`
	Email        *string `json:"email"`
	Phone        *string `json:"phone"`
	Address      *string `json:"address"`
	City         *string `json:"city"`
	State        *string `json:"state"`
	Zip          *string `json:"zip"`
	BillingEmail *string `json:"billing_email"`
	PaymentTerms *string `json:"payment_terms"`
	Notes        *string `json:"notes"`
}
