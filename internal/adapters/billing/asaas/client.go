package asaas

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"petid/internal/domain/checkout"
	"petid/internal/platform/httpclient"
)

const DefaultBaseURL = "https://sandbox.asaas.com/api/v3"

var ErrNotConfigured = errors.New("asaas client not configured")

type Config struct {
	BaseURL   string
	APIKey    string
	Timeout   time.Duration
	Transport http.RoundTripper
}

// Client habla con la API v3 de Asaas. Implementa checkout.Gateway.
type Client struct {
	http *httpclient.Client
}

func NewClient(cfg Config) (*Client, error) {
	key := strings.TrimSpace(cfg.APIKey)
	if key == "" {
		return nil, ErrNotConfigured
	}
	base := strings.TrimSpace(cfg.BaseURL)
	if base == "" {
		base = DefaultBaseURL
	}

	hc, err := httpclient.New(httpclient.Options{
		BaseURL:   base,
		Timeout:   cfg.Timeout,
		Transport: cfg.Transport,
		Header:    http.Header{"access_token": []string{key}},
	})
	if err != nil {
		return nil, err
	}
	return &Client{http: hc}, nil
}

// errorResponse: {"errors":[{"code":"...","description":"..."}]}
type errorResponse struct {
	Errors []struct {
		Code        string `json:"code"`
		Description string `json:"description"`
	} `json:"errors"`
}

type page[T any] struct {
	HasMore    bool `json:"hasMore"`
	TotalCount int  `json:"totalCount"`
	Data       []T  `json:"data"`
}

func (c *Client) CreateCustomer(ctx context.Context, in checkout.NewCustomer) (checkout.CustomerRecord, error) {
	var out checkout.CustomerRecord
	err := c.do(ctx, http.MethodPost, "/customers", nil, in, &out)
	return out, err
}

func (c *Client) FindCustomerByEmail(ctx context.Context, email string) (checkout.CustomerRecord, bool, error) {
	var out page[checkout.CustomerRecord]
	if err := c.do(ctx, http.MethodGet, "/customers", url.Values{"email": {email}}, nil, &out); err != nil {
		return checkout.CustomerRecord{}, false, err
	}
	if len(out.Data) == 0 {
		return checkout.CustomerRecord{}, false, nil
	}
	return out.Data[0], true, nil
}

func (c *Client) CreateSubscription(ctx context.Context, in checkout.NewSubscription) (checkout.Subscription, error) {
	var out checkout.Subscription
	err := c.do(ctx, http.MethodPost, "/subscriptions", nil, in, &out)
	return out, err
}

// ListActiveSubscriptions lo usa el resolver de planes.
func (c *Client) ListActiveSubscriptions(ctx context.Context, customerID string) ([]checkout.Subscription, error) {
	var out page[checkout.Subscription]
	q := url.Values{"customer": {customerID}, "status": {"ACTIVE"}}
	if err := c.do(ctx, http.MethodGet, "/subscriptions", q, nil, &out); err != nil {
		return nil, err
	}
	return out.Data, nil
}

func (c *Client) ListSubscriptionPayments(ctx context.Context, subscriptionID string) ([]checkout.Payment, error) {
	var out page[checkout.Payment]
	if err := c.do(ctx, http.MethodGet, "/payments", url.Values{"subscription": {subscriptionID}}, nil, &out); err != nil {
		return nil, err
	}
	return out.Data, nil
}

type creditCardWire struct {
	HolderName  string `json:"holderName"`
	Number      string `json:"number"`
	ExpiryMonth string `json:"expiryMonth"`
	ExpiryYear  string `json:"expiryYear"`
	CCV         string `json:"ccv"`
}

type payWithCardRequest struct {
	CreditCard           creditCardWire          `json:"creditCard"`
	CreditCardHolderInfo checkout.CardHolderInfo `json:"creditCardHolderInfo"`
}

func (c *Client) PayWithCreditCard(ctx context.Context, paymentID string, in checkout.CardPayment) (checkout.Payment, error) {
	body := payWithCardRequest{
		CreditCard: creditCardWire{
			HolderName:  in.Card.HolderName,
			Number:      in.Card.Number,
			ExpiryMonth: in.Card.ExpiryMonth,
			ExpiryYear:  in.Card.ExpiryYear,
			CCV:         in.Card.CCV,
		},
		CreditCardHolderInfo: in.Holder,
	}
	var out checkout.Payment
	err := c.do(ctx, http.MethodPost, "/payments/"+url.PathEscape(paymentID)+"/payWithCreditCard", nil, body, &out)
	return out, err
}

func (c *Client) PixQRCode(ctx context.Context, paymentID string) (checkout.PixQRCode, error) {
	var out checkout.PixQRCode
	err := c.do(ctx, http.MethodGet, "/payments/"+url.PathEscape(paymentID)+"/pixQrCode", nil, nil, &out)
	return out, err
}

// do traduce los errores HTTP de Asaas a checkout.GatewayError.
func (c *Client) do(ctx context.Context, method, path string, q url.Values, in, out any) error {
	if c == nil || c.http == nil {
		return ErrNotConfigured
	}

	err := c.http.DoJSON(ctx, method, path, q, in, out)
	if err == nil {
		return nil
	}

	var he *httpclient.HTTPError
	if !errors.As(err, &he) {
		return fmt.Errorf("asaas %s %s: %w", method, path, err)
	}

	ge := &checkout.GatewayError{StatusCode: he.StatusCode}
	var body errorResponse
	if derr := he.Decode(&body); derr == nil && len(body.Errors) > 0 {
		ge.Code = body.Errors[0].Code
		ge.Description = body.Errors[0].Description
	}
	return ge
}

var _ checkout.Gateway = (*Client)(nil)
