package payment

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignature_KnownVector(t *testing.T) {
	sig := Signature("secret", "order_1", "pay_1")
	assert.Equal(t, "52115a0d3400de9e86aade1f1b6eba9e8974604f4e267a9e9a16633a4c8dd2cb", sig)
	assert.True(t, VerifySignature("secret", "order_1", "pay_1", sig))

	assert.False(t, VerifySignature("secret", "order_1", "pay_2", sig))
	assert.False(t, VerifySignature("other", "order_1", "pay_1", sig))
	assert.False(t, VerifySignature("secret", "order_1", "pay_1", ""))

	r := NewRazorpay("rzp_test", "secret")
	assert.True(t, r.VerifySignature("order_1", "pay_1", sig))
}

func TestOrderFromBody(t *testing.T) {
	req := OrderRequest{Amount: 399900, Currency: "INR"}

	o, err := orderFromBody(map[string]interface{}{"id": "order_X", "amount": float64(399900), "currency": "INR"}, req)
	require.NoError(t, err)
	assert.Equal(t, &Order{ID: "order_X", Amount: 399900, Currency: "INR"}, o)

	o, err = orderFromBody(map[string]interface{}{"id": "order_Y"}, req)
	require.NoError(t, err)
	assert.Equal(t, int64(399900), o.Amount)

	_, err = orderFromBody(map[string]interface{}{}, req)
	assert.Error(t, err)
}

func TestStripe_CreateAndGetIntent(t *testing.T) {
	var form url.Values
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/v1/payment_intents":
			raw, _ := io.ReadAll(r.Body)
			form, _ = url.ParseQuery(string(raw))
			_, _ = io.WriteString(w, `{"id":"pi_1","object":"payment_intent","client_secret":"pi_1_secret_abc",
				"status":"requires_payment_method","amount":399900,"currency":"inr",
				"metadata":{"planName":"FitPass Pro","billing":"monthly"}}`)
		case r.Method == http.MethodGet && r.URL.Path == "/v1/payment_intents/pi_1":
			_, _ = io.WriteString(w, `{"id":"pi_1","object":"payment_intent","status":"succeeded",
				"amount":399900,"currency":"inr","metadata":{"planName":"FitPass Pro","billing":"monthly"}}`)
		default:
			w.WriteHeader(http.StatusNotFound)
			_, _ = io.WriteString(w, `{"error":{"type":"invalid_request_error","message":"No such payment_intent"}}`)
		}
	}))
	t.Cleanup(srv.Close)

	s := newStripeWithBackend("sk_test_123", srv.URL)
	ctx := context.Background()

	in, err := s.CreateIntent(ctx, IntentRequest{
		Amount:   399900,
		Currency: "inr",
		Metadata: map[string]string{"planName": "FitPass Pro", "billing": "monthly"},
	})
	require.NoError(t, err)
	assert.Equal(t, "pi_1", in.ID)
	assert.Equal(t, "pi_1_secret_abc", in.ClientSecret)
	assert.Equal(t, "399900", form.Get("amount"))
	assert.Equal(t, "inr", form.Get("currency"))
	assert.Equal(t, "FitPass Pro", form.Get("metadata[planName]"))

	got, err := s.GetIntent(ctx, "pi_1")
	require.NoError(t, err)
	assert.Equal(t, IntentSucceeded, got.Status)
	assert.Equal(t, "monthly", got.Metadata["billing"])

	_, err = s.GetIntent(ctx, "pi_missing")
	assert.Error(t, err)
}
