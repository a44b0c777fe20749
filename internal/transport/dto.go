package transport

import "github.com/fitgym/backend/internal/fitbot"

type SignupRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type SetActiveRequest struct {
	IsActive *bool `json:"isActive"`
}

type GoogleCodeRequest struct {
	Code string `json:"code"`
}

type GoogleVerifyRequest struct {
	IDToken string `json:"idToken"`
}

// CheckoutRequest is shared by the Razorpay and Stripe checkout endpoints.
// Amount is in rupees.
type CheckoutRequest struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
	PlanName string  `json:"planName"`
	Billing  string  `json:"billing"`
	UserID   string  `json:"userId"`
}

type VerifyPaymentRequest struct {
	OrderID   string `json:"razorpay_order_id"`
	PaymentID string `json:"razorpay_payment_id"`
	Signature string `json:"razorpay_signature"`
}

type ConfirmPaymentRequest struct {
	PaymentIntentID string `json:"paymentIntentId"`
}

type ChatRequest struct {
	Message string           `json:"message"`
	History []fitbot.Message `json:"history"`
}

type UserView struct {
	ID      string `json:"id"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
	Role    string `json:"role"`
}
