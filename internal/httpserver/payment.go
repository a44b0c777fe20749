package httpserver

import (
	"errors"
	"net/http"

	"github.com/fitgym/backend/internal/service"
	"github.com/fitgym/backend/internal/transport"
	"github.com/fitgym/backend/pkg/logging"
	"github.com/labstack/echo/v4"
)

type PaymentHTTP struct {
	Svc *service.PaymentService
}

func checkout(req transport.CheckoutRequest) service.Checkout {
	return service.Checkout{
		Amount:   req.Amount,
		Currency: req.Currency,
		PlanName: req.PlanName,
		Billing:  req.Billing,
		UserID:   req.UserID,
	}
}

// checkoutFailure maps the shared create-order / create-intent errors.
func checkoutFailure(c echo.Context, err error) error {
	switch {
	case errors.Is(err, service.ErrNotConfigured):
		return fail(c, http.StatusServiceUnavailable, "Payment service not configured")
	case errors.Is(err, service.ErrValidation):
		return fail(c, http.StatusBadRequest, "Amount and plan name are required")
	}
	return fail(c, http.StatusInternalServerError, "Failed to create order")
}

func (h *PaymentHTTP) CreateOrder(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "payment.create_order")

	var req transport.CheckoutRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("create_order_error", "status", 400, "reason", "invalid body", "error", err)
		return fail(c, http.StatusBadRequest, "Amount and plan name are required")
	}

	res, err := h.Svc.CreateOrder(ctx, checkout(req))
	if err != nil {
		return checkoutFailure(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"orderId":  res.OrderID,
		"amount":   res.Amount,
		"currency": res.Currency,
		"keyId":    res.KeyID,
	})
}

func (h *PaymentHTTP) VerifyPayment(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "payment.verify")

	var req transport.VerifyPaymentRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("verify_payment_error", "status", 400, "reason", "invalid body", "error", err)
		return fail(c, http.StatusBadRequest, "Payment verification parameters are required")
	}

	if err := h.Svc.VerifyPayment(ctx, req.OrderID, req.PaymentID, req.Signature); err != nil {
		switch {
		case errors.Is(err, service.ErrNotConfigured):
			return fail(c, http.StatusServiceUnavailable, "Payment service not configured")
		case errors.Is(err, service.ErrValidation):
			return fail(c, http.StatusBadRequest, "Payment verification parameters are required")
		case errors.Is(err, service.ErrInvalidSignature):
			return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "error": "Invalid payment signature"})
		}
		l.Error("verify_payment_error", "status", 500, "error", err)
		return fail(c, http.StatusInternalServerError, "Payment verification failed")
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success":   true,
		"orderId":   req.OrderID,
		"paymentId": req.PaymentID,
	})
}

func (h *PaymentHTTP) CreateIntent(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "payment.create_intent")

	var req transport.CheckoutRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("create_intent_error", "status", 400, "reason", "invalid body", "error", err)
		return fail(c, http.StatusBadRequest, "Amount and plan name are required")
	}

	res, err := h.Svc.CreateIntent(ctx, checkout(req))
	if err != nil {
		if errors.Is(err, service.ErrUpstream) {
			return fail(c, http.StatusInternalServerError, "Failed to create payment intent")
		}
		return checkoutFailure(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"clientSecret":    res.ClientSecret,
		"paymentIntentId": res.PaymentIntentID,
	})
}

func (h *PaymentHTTP) ConfirmPayment(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "payment.confirm")

	var req transport.ConfirmPaymentRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("confirm_payment_error", "status", 400, "reason", "invalid body", "error", err)
		return fail(c, http.StatusBadRequest, "Payment intent ID is required")
	}

	res, err := h.Svc.ConfirmIntent(ctx, req.PaymentIntentID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotConfigured):
			return fail(c, http.StatusServiceUnavailable, "Payment service not configured")
		case errors.Is(err, service.ErrValidation):
			return fail(c, http.StatusBadRequest, "Payment intent ID is required")
		}
		return fail(c, http.StatusInternalServerError, "Failed to confirm payment")
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success":  res.Success,
		"status":   res.Status,
		"planName": res.PlanName,
		"billing":  res.Billing,
	})
}
