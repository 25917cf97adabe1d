package checkout

// Steps is the fixed checkout sequence, in order.
var Steps = []string{
	"Product Selection",
	"Details",
	"Shipping",
	"Payment",
	"Confirmation",
}

// Details is the customer form captured on the second step.
type Details struct {
	FullName string `json:"fullName" validate:"required,max=255"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone" validate:"omitempty,min=6,max=32"`
}

// Shipping is the address form captured on the third step.
type Shipping struct {
	Address    string `json:"address" validate:"required,max=255"`
	City       string `json:"city" validate:"required,max=128"`
	PostalCode string `json:"postalCode" validate:"required,max=16"`
	Country    string `json:"country" validate:"required,max=128"`
}

// State is the snapshot returned to the caller after every transition.
type State struct {
	Step      int    `json:"step"`
	StepName  string `json:"stepName"`
	Completed bool   `json:"completed"`
}
