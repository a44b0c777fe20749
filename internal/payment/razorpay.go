package payment

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	razorpay "github.com/razorpay/razorpay-go"
)

type OrderRequest struct {
	Amount   int64 // paise
	Currency string
	Receipt  string
	Notes    map[string]string
}

type Order struct {
	ID       string
	Amount   int64
	Currency string
}

type Razorpay struct {
	KeyID  string
	secret string
	client *razorpay.Client
}

func NewRazorpay(keyID, keySecret string) *Razorpay {
	return &Razorpay{
		KeyID:  keyID,
		secret: keySecret,
		client: razorpay.NewClient(keyID, keySecret),
	}
}

func (r *Razorpay) CreateOrder(_ context.Context, req OrderRequest) (*Order, error) {
	notes := make(map[string]interface{}, len(req.Notes))
	for k, v := range req.Notes {
		notes[k] = v
	}
	body, err := r.client.Order.Create(map[string]interface{}{
		"amount":   req.Amount,
		"currency": req.Currency,
		"receipt":  req.Receipt,
		"notes":    notes,
	}, nil)
	if err != nil {
		return nil, fmt.Errorf("razorpay: create order: %w", err)
	}
	return orderFromBody(body, req)
}

func orderFromBody(body map[string]interface{}, req OrderRequest) (*Order, error) {
	id, _ := body["id"].(string)
	if id == "" {
		return nil, fmt.Errorf("razorpay: order response has no id")
	}
	o := &Order{ID: id, Amount: req.Amount, Currency: req.Currency}
	if amt, ok := body["amount"].(float64); ok {
		o.Amount = int64(amt)
	}
	if cur, ok := body["currency"].(string); ok && cur != "" {
		o.Currency = cur
	}
	return o, nil
}

// VerifySignature checks a checkout signature in constant time.
func (r *Razorpay) VerifySignature(orderID, paymentID, signature string) bool {
	return VerifySignature(r.secret, orderID, paymentID, signature)
}

// Signature is hex(HMAC-SHA256(secret, orderID + "|" + paymentID)).
func Signature(secret, orderID, paymentID string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

func VerifySignature(secret, orderID, paymentID, signature string) bool {
	want := Signature(secret, orderID, paymentID)
	return hmac.Equal([]byte(want), []byte(signature))
}

func (r *Razorpay) PublicKey() string { return r.KeyID }
