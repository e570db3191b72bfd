package checkout

import (
	"errors"
	"fmt"
)

// BillingType soportado por el checkout premium.
type BillingType string

const (
	BillingCreditCard BillingType = "CREDIT_CARD"
	BillingPix        BillingType = "PIX"
)

// Cycle de cobro de la suscripción.
type Cycle string

const (
	CycleWeekly  Cycle = "WEEKLY"
	CycleMonthly Cycle = "MONTHLY"
	CycleYearly  Cycle = "YEARLY"
)

const subscriptionDescription = "Assinatura Premium PetID - Controle completo do seu pet"

type Customer struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
	Phone string `json:"phone"`
	CPF   string `json:"cpf_cnpj"`
}

type CreditCard struct {
	HolderName  string `json:"holder_name" validate:"required"`
	Number      string `json:"number" validate:"required"`
	ExpiryMonth string `json:"expiry_month" validate:"required"`
	ExpiryYear  string `json:"expiry_year" validate:"required"`
	CCV         string `json:"ccv" validate:"required"`
}

type SubscribeInput struct {
	Customer    Customer    `json:"customer"`
	BillingType BillingType `json:"billing_type"`
	CreditCard  *CreditCard `json:"credit_card,omitempty"`
}

// Tipos del lado del gateway de pagos.

type NewCustomer struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	CPFCNPJ string `json:"cpfCnpj"`
}

type CustomerRecord struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type NewSubscription struct {
	CustomerID  string      `json:"customer"`
	BillingType BillingType `json:"billingType"`
	Value       float64     `json:"value"`
	NextDueDate string      `json:"nextDueDate"`
	Cycle       Cycle       `json:"cycle"`
	Description string      `json:"description"`

	// ExternalReference correlaciona la suscripción con los logs de este servicio.
	ExternalReference string `json:"externalReference,omitempty"`
}

type Subscription struct {
	ID          string      `json:"id"`
	CustomerID  string      `json:"customer"`
	BillingType BillingType `json:"billingType"`
	Value       float64     `json:"value"`
	NextDueDate string      `json:"nextDueDate"`
	Cycle       Cycle       `json:"cycle"`
	Status      string      `json:"status"`
	Description string      `json:"description"`

	ExternalReference string `json:"externalReference,omitempty"`
}

type Payment struct {
	ID          string      `json:"id"`
	Status      string      `json:"status"`
	Value       float64     `json:"value"`
	DueDate     string      `json:"dueDate"`
	BillingType BillingType `json:"billingType"`
	InvoiceURL  string      `json:"invoiceUrl,omitempty"`
}

type CardHolderInfo struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	CPFCNPJ       string `json:"cpfCnpj"`
	PostalCode    string `json:"postalCode"`
	AddressNumber string `json:"addressNumber"`
	Phone         string `json:"phone,omitempty"`
}

// CardPayment lo traduce cada adapter a su formato de wire.
type CardPayment struct {
	Card   CreditCard
	Holder CardHolderInfo
}

type PixQRCode struct {
	EncodedImage   string `json:"encodedImage"`
	Payload        string `json:"payload"`
	ExpirationDate string `json:"expirationDate"`
}

// Result es lo que devuelve Subscribe.
type Result struct {
	Subscription Subscription `json:"subscription"`
	Payment      *Payment     `json:"payment,omitempty"`
	Pix          *PixQRCode   `json:"pix,omitempty"`
	Message      string       `json:"message"`
}

var (
	ErrNotConfigured = errors.New("billing gateway not configured")
	ErrInvalidInput  = errors.New("invalid input")
)

// InputError es un rechazo de validación con mensaje para el tutor.
type InputError struct {
	Message string
}

func (e *InputError) Error() string { return e.Message }

func (e *InputError) Unwrap() error { return ErrInvalidInput }

// GatewayError es el error tal como lo describe el gateway (código + descripción).
type GatewayError struct {
	StatusCode  int
	Code        string
	Description string
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("gateway error: status=%d code=%s description=%s", e.StatusCode, e.Code, e.Description)
}

// UpstreamError envuelve un fallo del gateway con el mensaje que se muestra al tutor.
type UpstreamError struct {
	Message string
	Err     error
}

func (e *UpstreamError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return e.Message + ": " + e.Err.Error()
}

func (e *UpstreamError) Unwrap() error { return e.Err }
