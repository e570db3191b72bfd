package checkout

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"petid/internal/platform/logger"
)

// Gateway es el proveedor de pagos (Asaas en producción).
type Gateway interface {
	CreateCustomer(ctx context.Context, in NewCustomer) (CustomerRecord, error)
	FindCustomerByEmail(ctx context.Context, email string) (CustomerRecord, bool, error)
	CreateSubscription(ctx context.Context, in NewSubscription) (Subscription, error)
	ListSubscriptionPayments(ctx context.Context, subscriptionID string) ([]Payment, error)
	PayWithCreditCard(ctx context.Context, paymentID string, in CardPayment) (Payment, error)
	PixQRCode(ctx context.Context, paymentID string) (PixQRCode, error)
}

// PlanInvalidator borra el plan cacheado de un email tras una compra.
type PlanInvalidator interface {
	Invalidate(ctx context.Context, key string) error
}

type Plan struct {
	Price float64
	Cycle Cycle
}

type Service struct {
	gateway  Gateway
	plans    PlanInvalidator
	plan     Plan
	log      logger.Logger
	validate *validator.Validate
	now      func() time.Time
}

// NewService: gateway nil deja el checkout deshabilitado (ErrNotConfigured).
func NewService(gateway Gateway, plans PlanInvalidator, plan Plan, log logger.Logger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	if plan.Cycle == "" {
		plan.Cycle = CycleMonthly
	}
	return &Service{
		gateway:  gateway,
		plans:    plans,
		plan:     plan,
		log:      log,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		now:      time.Now,
	}
}

func (s *Service) Subscribe(ctx context.Context, in SubscribeInput) (Result, error) {
	in = normalize(in)
	if err := s.validateInput(in); err != nil {
		return Result{}, err
	}
	if s.gateway == nil {
		s.log.Error("checkout requested but billing gateway is not configured", nil)
		return Result{}, ErrNotConfigured
	}

	customerID, err := s.ensureCustomer(ctx, in.Customer)
	if err != nil {
		return Result{}, err
	}

	ref := uuid.NewString()
	sub, err := s.gateway.CreateSubscription(ctx, NewSubscription{
		CustomerID:        customerID,
		BillingType:       in.BillingType,
		Value:             s.plan.Price,
		NextDueDate:       s.now().AddDate(0, 0, 1).Format("2006-01-02"),
		Cycle:             s.plan.Cycle,
		Description:       subscriptionDescription,
		ExternalReference: ref,
	})
	if err != nil {
		s.log.Error("create subscription failed", map[string]any{"customer_id": customerID, "reference": ref, "err": err})
		return Result{}, &UpstreamError{Message: gatewayMessage(err, "Erro ao criar assinatura"), Err: err}
	}

	var res Result
	switch in.BillingType {
	case BillingCreditCard:
		res, err = s.payWithCard(ctx, sub, in)
	case BillingPix:
		res = s.pix(ctx, sub)
	}
	if err != nil {
		return Result{}, err
	}

	if s.plans != nil {
		if err := s.plans.Invalidate(ctx, in.Customer.Email); err != nil {
			s.log.Warn("plan cache invalidation failed", map[string]any{"email": in.Customer.Email, "err": err})
		}
	}

	s.log.Info("subscription created", map[string]any{
		"subscription_id": sub.ID,
		"reference":       ref,
		"billing_type":    string(in.BillingType),
	})
	return res, nil
}

func (s *Service) validateInput(in SubscribeInput) error {
	if err := s.validate.Struct(in.Customer); err != nil {
		return &InputError{Message: "Dados do cliente incompletos. Verifique nome e e-mail."}
	}
	if len(in.Customer.CPF) != 11 {
		return &InputError{Message: "CPF inválido. Digite um CPF válido com 11 dígitos."}
	}
	switch in.BillingType {
	case BillingCreditCard:
		if in.CreditCard == nil || s.validate.Struct(*in.CreditCard) != nil {
			return &InputError{Message: "Dados do cartão incompletos."}
		}
	case BillingPix:
	default:
		return &InputError{Message: "Forma de pagamento inválida. Use CREDIT_CARD ou PIX."}
	}
	return nil
}

// ensureCustomer crea el cliente; si ya existe lo busca por email.
func (s *Service) ensureCustomer(ctx context.Context, c Customer) (string, error) {
	rec, err := s.gateway.CreateCustomer(ctx, NewCustomer{
		Name:    c.Name,
		Email:   c.Email,
		Phone:   c.Phone,
		CPFCNPJ: c.CPF,
	})
	if err == nil {
		return rec.ID, nil
	}

	if !customerExists(err) {
		s.log.Error("create customer failed", map[string]any{"email": c.Email, "err": err})
		return "", &UpstreamError{Message: gatewayMessage(err, "Erro ao criar cliente"), Err: err}
	}

	found, ok, ferr := s.gateway.FindCustomerByEmail(ctx, c.Email)
	if ferr != nil {
		return "", &UpstreamError{Message: "Erro ao buscar cliente existente.", Err: ferr}
	}
	if !ok {
		return "", &UpstreamError{Message: "Erro ao localizar cliente. Tente novamente.", Err: err}
	}
	return found.ID, nil
}

func (s *Service) payWithCard(ctx context.Context, sub Subscription, in SubscribeInput) (Result, error) {
	payments, err := s.gateway.ListSubscriptionPayments(ctx, sub.ID)
	if err != nil {
		return Result{}, &UpstreamError{Message: "Erro ao buscar cobranças da assinatura", Err: err}
	}
	if len(payments) == 0 {
		return Result{}, &UpstreamError{Message: "Nenhuma cobrança encontrada para a assinatura"}
	}

	card := *in.CreditCard
	card.Number = strings.Join(strings.Fields(card.Number), "")

	paid, err := s.gateway.PayWithCreditCard(ctx, payments[0].ID, CardPayment{
		Card: card,
		Holder: CardHolderInfo{
			Name:          in.Customer.Name,
			Email:         in.Customer.Email,
			CPFCNPJ:       in.Customer.CPF,
			PostalCode:    "00000000",
			AddressNumber: "S/N",
			Phone:         in.Customer.Phone,
		},
	})
	if err != nil {
		s.log.Warn("credit card payment failed", map[string]any{"payment_id": payments[0].ID, "err": err})
		return Result{}, &UpstreamError{Message: cardMessage(err), Err: err}
	}

	return Result{
		Subscription: sub,
		Payment:      &paid,
		Message:      "Assinatura criada e pagamento processado com sucesso!",
	}, nil
}

// pix nunca falla: si no hay QR la suscripción igual quedó creada.
func (s *Service) pix(ctx context.Context, sub Subscription) Result {
	res := Result{Subscription: sub, Message: "Assinatura criada com sucesso!"}

	payments, err := s.gateway.ListSubscriptionPayments(ctx, sub.ID)
	if err != nil || len(payments) == 0 {
		if err != nil {
			s.log.Warn("pix: list payments failed", map[string]any{"subscription_id": sub.ID, "err": err})
		}
		return res
	}

	qr, err := s.gateway.PixQRCode(ctx, payments[0].ID)
	if err != nil {
		s.log.Warn("pix: qr code unavailable", map[string]any{"payment_id": payments[0].ID, "err": err})
		return res
	}

	first := payments[0]
	res.Payment = &first
	res.Pix = &qr
	res.Message = "Assinatura criada! Use o QR Code para pagar."
	return res
}

func customerExists(err error) bool {
	var ge *GatewayError
	if !errors.As(err, &ge) {
		return false
	}
	return ge.Code == "invalid_action" || strings.Contains(ge.Description, "já existe")
}

func gatewayMessage(err error, fallback string) string {
	var ge *GatewayError
	if errors.As(err, &ge) && ge.Description != "" {
		return ge.Description
	}
	return fallback
}

var cardMessages = map[string]string{
	"invalid_card":       "Cartão inválido. Verifique os dados do cartão.",
	"card_declined":      "Cartão recusado. Entre em contato com seu banco.",
	"insufficient_funds": "Saldo insuficiente. Tente outro cartão.",
}

// cardMessage: la descripción del gateway tiene prioridad sobre el mensaje por código.
func cardMessage(err error) string {
	var ge *GatewayError
	if errors.As(err, &ge) {
		if ge.Description != "" {
			return ge.Description
		}
		if msg, ok := cardMessages[ge.Code]; ok {
			return msg
		}
	}
	return "Erro ao processar pagamento com cartão"
}

func normalize(in SubscribeInput) SubscribeInput {
	in.Customer.Name = strings.TrimSpace(in.Customer.Name)
	in.Customer.Email = strings.ToLower(strings.TrimSpace(in.Customer.Email))
	in.Customer.Phone = digits(in.Customer.Phone)
	in.Customer.CPF = digits(in.Customer.CPF)
	in.BillingType = BillingType(strings.ToUpper(strings.TrimSpace(string(in.BillingType))))
	return in
}

func digits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
