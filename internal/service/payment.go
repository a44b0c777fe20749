package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/fitgym/backend/internal/models"
	"github.com/fitgym/backend/internal/mykafka"
	"github.com/fitgym/backend/internal/payment"
	"github.com/fitgym/backend/internal/repo"
	"github.com/fitgym/backend/pkg/logging"
)

type OrderGateway interface {
	PublicKey() string
	CreateOrder(ctx context.Context, req payment.OrderRequest) (*payment.Order, error)
	VerifySignature(orderID, paymentID, signature string) bool
}

type IntentGateway interface {
	CreateIntent(ctx context.Context, req payment.IntentRequest) (*payment.Intent, error)
	GetIntent(ctx context.Context, id string) (*payment.Intent, error)
}

type PaymentService struct {
	Repo     *repo.GormRepo
	Razorpay OrderGateway
	Stripe   IntentGateway
	Events   mykafka.Publisher
	Now      func() time.Time
}

// Checkout is a purchase request from the SPA. Amount is in rupees.
type Checkout struct {
	Amount   float64
	Currency string
	PlanName string
	Billing  string
	UserID   string
}

type OrderResult struct {
	OrderID  string
	Amount   int64
	Currency string
	KeyID    string
}

type IntentResult struct {
	ClientSecret    string
	PaymentIntentID string
}

type ConfirmResult struct {
	Success  bool
	Status   string
	PlanName string
	Billing  string
}

func (s *PaymentService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *PaymentService) RazorpayConfigured() bool { return s.Razorpay != nil }
func (s *PaymentService) StripeConfigured() bool   { return s.Stripe != nil }

func toPaise(rupees float64) int64 {
	return int64(math.Round(rupees * 100))
}

func (c Checkout) validate() error {
	if c.Amount <= 0 || strings.TrimSpace(c.PlanName) == "" {
		return fmt.Errorf("%w: amount and plan name are required", ErrValidation)
	}
	return nil
}

func (c Checkout) user() string {
	if c.UserID == "" {
		return "anonymous"
	}
	return c.UserID
}

func (s *PaymentService) record(ctx context.Context, p *models.Payment) {
	if err := s.Repo.CreatePayment(ctx, p); err != nil {
		logging.FromContext(ctx).Error("payment_ledger_failed", "provider", p.Provider, "ref", p.ProviderRef, "error", err)
	}
}

// transition settles a ledger row that is still in one of the from states.
// Rows are never created here, only by CreateOrder and CreateIntent.
func (s *PaymentService) transition(ctx context.Context, provider, ref, paymentID, status string, from ...string) *models.Payment {
	l := logging.FromContext(ctx)
	p, err := s.Repo.TransitionPayment(ctx, provider, ref, paymentID, status, from...)
	switch {
	case errors.Is(err, repo.ErrNotFound):
		l.Warn("payment_transition_skipped", "provider", provider, "ref", ref, "status", status, "reason", "no row in an eligible state")
		return nil
	case err != nil:
		l.Error("payment_ledger_failed", "provider", provider, "ref", ref, "status", status, "error", err)
		return nil
	}
	return p
}

func (s *PaymentService) publish(ctx context.Context, eventType, key string, fields map[string]any) {
	fields["type"] = eventType
	mykafka.Publish(ctx, s.Events, mykafka.TopicPaymentEvents, key, fields)
}

// CreateOrder opens a Razorpay order for the checkout amount.
func (s *PaymentService) CreateOrder(ctx context.Context, c Checkout) (*OrderResult, error) {
	l := logging.FromContext(ctx).With("svc", "payment.create_order", "plan", c.PlanName)

	if s.Razorpay == nil {
		return nil, ErrNotConfigured
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	if c.Currency == "" {
		c.Currency = "INR"
	}

	amount := toPaise(c.Amount)
	order, err := s.Razorpay.CreateOrder(ctx, payment.OrderRequest{
		Amount:   amount,
		Currency: c.Currency,
		Receipt:  fmt.Sprintf("order_%d", s.now().UnixMilli()),
		Notes: map[string]string{
			"planName": c.PlanName,
			"billing":  c.Billing,
			"userId":   c.user(),
		},
	})
	if err != nil {
		l.Error("create_order_failed", "status", 500, "error", err)
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	s.record(ctx, &models.Payment{
		Provider:    models.ProviderRazorpay,
		ProviderRef: order.ID,
		Amount:      order.Amount,
		Currency:    order.Currency,
		PlanName:    c.PlanName,
		Billing:     c.Billing,
		UserID:      c.UserID,
		Status:      models.PaymentCreated,
	})
	s.publish(ctx, "order_created", order.ID, map[string]any{
		"orderID":  order.ID,
		"amount":   order.Amount,
		"currency": order.Currency,
		"planName": c.PlanName,
		"billing":  c.Billing,
		"userID":   c.user(),
	})

	l.Info("create_order_success", "order_id", order.ID, "amount", order.Amount)
	return &OrderResult{OrderID: order.ID, Amount: order.Amount, Currency: order.Currency, KeyID: s.Razorpay.PublicKey()}, nil
}

// VerifyPayment checks the checkout signature and settles the ledger row.
func (s *PaymentService) VerifyPayment(ctx context.Context, orderID, paymentID, signature string) error {
	l := logging.FromContext(ctx).With("svc", "payment.verify", "order_id", orderID)

	if s.Razorpay == nil {
		return ErrNotConfigured
	}
	if orderID == "" || paymentID == "" || signature == "" {
		return fmt.Errorf("%w: payment verification parameters are required", ErrValidation)
	}

	if !s.Razorpay.VerifySignature(orderID, paymentID, signature) {
		s.transition(ctx, models.ProviderRazorpay, orderID, paymentID, models.PaymentFailed, models.PaymentCreated)
		s.publish(ctx, "payment_failed", orderID, map[string]any{"orderID": orderID, "paymentID": paymentID})
		l.Warn("verify_payment_failed", "status", 400, "reason", "signature mismatch")
		return ErrInvalidSignature
	}

	p := s.transition(ctx, models.ProviderRazorpay, orderID, paymentID, models.PaymentPaid, models.PaymentCreated, models.PaymentFailed)
	fields := map[string]any{"orderID": orderID, "paymentID": paymentID}
	if p != nil {
		fields["amount"] = p.Amount
		fields["planName"] = p.PlanName
		fields["userID"] = p.UserID
	}
	s.publish(ctx, "payment_verified", orderID, fields)
	l.Info("verify_payment_success", "payment_id", paymentID)
	return nil
}

// CreateIntent opens a Stripe payment intent for the checkout amount.
func (s *PaymentService) CreateIntent(ctx context.Context, c Checkout) (*IntentResult, error) {
	l := logging.FromContext(ctx).With("svc", "payment.create_intent", "plan", c.PlanName)

	if s.Stripe == nil {
		return nil, ErrNotConfigured
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	if c.Currency == "" {
		c.Currency = "inr"
	}
	c.Currency = strings.ToLower(c.Currency)

	amount := toPaise(c.Amount)
	in, err := s.Stripe.CreateIntent(ctx, payment.IntentRequest{
		Amount:   amount,
		Currency: c.Currency,
		Metadata: map[string]string{
			"planName": c.PlanName,
			"billing":  c.Billing,
			"userId":   c.user(),
		},
	})
	if err != nil {
		l.Error("create_intent_failed", "status", 500, "error", err)
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	s.record(ctx, &models.Payment{
		Provider:    models.ProviderStripe,
		ProviderRef: in.ID,
		Amount:      amount,
		Currency:    c.Currency,
		PlanName:    c.PlanName,
		Billing:     c.Billing,
		UserID:      c.UserID,
		Status:      models.PaymentCreated,
	})
	s.publish(ctx, "intent_created", in.ID, map[string]any{
		"paymentIntentID": in.ID,
		"amount":          amount,
		"currency":        c.Currency,
		"planName":        c.PlanName,
		"userID":          c.user(),
	})

	l.Info("create_intent_success", "intent_id", in.ID)
	return &IntentResult{ClientSecret: in.ClientSecret, PaymentIntentID: in.ID}, nil
}

// ConfirmIntent reads the intent back from Stripe and records its status.
func (s *PaymentService) ConfirmIntent(ctx context.Context, id string) (*ConfirmResult, error) {
	l := logging.FromContext(ctx).With("svc", "payment.confirm_intent", "intent_id", id)

	if s.Stripe == nil {
		return nil, ErrNotConfigured
	}
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("%w: payment intent id is required", ErrValidation)
	}

	in, err := s.Stripe.GetIntent(ctx, id)
	if err != nil {
		l.Error("confirm_intent_failed", "status", 500, "error", err)
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	succeeded := in.Status == payment.IntentSucceeded
	status := in.Status
	if succeeded {
		status = models.PaymentPaid
	}
	s.transition(ctx, models.ProviderStripe, in.ID, in.ID, status, append([]string{models.PaymentCreated}, payment.IntentUnsettled...)...)
	s.publish(ctx, "intent_confirmed", in.ID, map[string]any{
		"paymentIntentID": in.ID,
		"status":          in.Status,
		"success":         succeeded,
	})

	return &ConfirmResult{
		Success:  succeeded,
		Status:   in.Status,
		PlanName: in.Metadata["planName"],
		Billing:  in.Metadata["billing"],
	}, nil
}
