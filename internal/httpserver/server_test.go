package httpserver

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/fitgym/backend/internal/config"
	"github.com/fitgym/backend/internal/fitbot"
	"github.com/fitgym/backend/internal/mykafka"
	"github.com/fitgym/backend/internal/oauth"
	"github.com/fitgym/backend/internal/payment"
	"github.com/fitgym/backend/internal/repo"
	"github.com/fitgym/backend/internal/service"
	pkgdb "github.com/fitgym/backend/pkg/db"
	middleware "github.com/fitgym/backend/pkg/middleware/auth"
)

var testSecret = []byte("httpserver-test-secret")

const (
	frontendURL    = "http://front.test"
	backendURL     = "http://api.test"
	razorpaySecret = "rzp_secret"
)

type testEnv struct {
	T    *testing.T
	E    *echo.Echo
	DB   *gorm.DB
	Repo *repo.GormRepo
	Deps *Deps

	Users    *service.UserService
	OAuth    *service.OAuthService
	Payments *service.PaymentService
	Bot      *fitbot.Bot

	Google    *fakeGoogle
	Orders    *fakeOrders
	Intents   *fakeIntents
	Completer *fakeCompleter
}

func testConfig() config.Config {
	return config.Config{
		Port:               "5000",
		FrontendURL:        frontendURL,
		BackendURL:         backendURL,
		CORSOrigins:        []string{frontendURL},
		SessionSecret:      testSecret,
		SessionTTL:         time.Hour,
		GoogleClientID:     "client-id",
		GoogleClientSecret: "client-secret",
		RazorpayKeyID:      "rzp_test_key",
		RazorpayKeySecret:  razorpaySecret,
		StripeSecretKey:    "sk_test",
		AIProvider:         config.ProviderGroq,
		GroqAPIKey:         "gsk_test",
		ChatFallback:       true,
	}
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	ctx := context.Background()

	db, err := pkgdb.Open(ctx, "", pkgdb.DriverMemory)
	require.NoError(t, err)
	t.Cleanup(func() { _ = pkgdb.Close(db) })

	rp := &repo.GormRepo{DB: db}
	require.NoError(t, rp.Migrate(ctx))

	events := mykafka.Noop{}
	cfg := testConfig()
	session := middleware.NewSessionAuth(testSecret, false)

	google := &fakeGoogle{profiles: map[string]*oauth.Profile{
		"code-ok":         {ID: "g-1", Email: "Runner@Example.com", Name: "Runner", Picture: "https://p/runner.png"},
		"code-unverified": {ID: "g-2", Email: "member@example.com", Name: "Impostor"},
	}}
	completer := &fakeCompleter{reply: "Great question! Start with three full-body sessions a week and add weight slowly."}

	env := &testEnv{
		T:         t,
		E:         echo.New(),
		DB:        db,
		Repo:      rp,
		Google:    google,
		Orders:    &fakeOrders{},
		Intents:   &fakeIntents{intents: map[string]*payment.Intent{}},
		Completer: completer,
	}

	env.Users = &service.UserService{Repo: rp, Events: events, Secret: testSecret, TTL: time.Hour, AutoActivate: true}
	session.Accounts = env.Users
	env.OAuth = &service.OAuthService{Users: env.Users, Google: env.Google}
	env.Payments = &service.PaymentService{Repo: rp, Razorpay: env.Orders, Stripe: env.Intents, Events: events}
	env.Bot = &fitbot.Bot{
		Provider:   env.Completer,
		ProviderID: config.ProviderGroq,
		Fallback:   true,
		Rules:      fitbot.Rules{Intn: func(int) int { return 0 }},
	}

	catalogSvc := &service.CatalogService{Repo: rp}
	require.NoError(t, catalogSvc.Seed(ctx))

	env.Deps = &Deps{
		DB:             db,
		Config:         cfg,
		Session:        session,
		UserHandler:    &UserHTTP{Svc: env.Users, Session: session},
		OAuthHandler:   &OAuthHTTP{Svc: env.OAuth, Session: session, FrontendURL: frontendURL, BackendURL: backendURL},
		CatalogHandler: &CatalogHTTP{Svc: catalogSvc},
		PaymentHandler: &PaymentHTTP{Svc: env.Payments},
		ChatHandler: &ChatHTTP{
			Bot:            env.Bot,
			ProviderKeys:   map[string]bool{config.ProviderGroq: true},
			AllowedOrigins: cfg.CORSOrigins,
		},
	}
	Register(env.E, env.Deps)
	return env
}

func jsonBody(t *testing.T, body any) *bytes.Reader {
	t.Helper()
	switch b := body.(type) {
	case nil:
		return bytes.NewReader(nil)
	case string:
		return bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		return bytes.NewReader(raw)
	}
}

// doJSONRequest builds a context for calling a handler method directly.
func (env *testEnv) doJSONRequest(method, path string, body any, cookies ...*http.Cookie) (*httptest.ResponseRecorder, *http.Request, echo.Context) {
	req := httptest.NewRequest(method, path, jsonBody(env.T, body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	rec := httptest.NewRecorder()
	return rec, req, env.E.NewContext(req, rec)
}

// serve runs the request through the router and its middleware.
func (env *testEnv) serve(method, path string, body any, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	rec, req, _ := env.doJSONRequest(method, path, body, cookies...)
	env.E.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

func responseCookie(rec *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == name {
			return ck
		}
	}
	return nil
}

func sessionCookie(token string) *http.Cookie {
	return &http.Cookie{Name: middleware.SessionCookie, Value: token, Path: "/"}
}

func (env *testEnv) signup(email, password string) {
	env.T.Helper()
	_, err := env.Users.Register(context.Background(), email, "Member", password)
	require.NoError(env.T, err)
}

// login returns a session cookie for the given account.
func (env *testEnv) login(email, password string) *http.Cookie {
	env.T.Helper()
	res, err := env.Users.Login(context.Background(), email, password)
	require.NoError(env.T, err)
	return sessionCookie(res.Token)
}

func (env *testEnv) loginAdmin() *http.Cookie {
	env.T.Helper()
	require.NoError(env.T, env.Users.EnsureAdmin(context.Background(), "admin@local", "admin123"))
	return env.login("admin@local", "admin123")
}

func redirectQuery(t *testing.T, rec *httptest.ResponseRecorder) url.Values {
	t.Helper()
	require.Equal(t, http.StatusFound, rec.Code, rec.Body.String())
	loc, err := url.Parse(rec.Header().Get(echo.HeaderLocation))
	require.NoError(t, err)
	require.Equal(t, frontendURL+callbackPath, loc.Scheme+"://"+loc.Host+loc.Path)
	return loc.Query()
}

type fakeGoogle struct {
	profiles map[string]*oauth.Profile
	gotURI   string
}

func (f *fakeGoogle) AuthURL(state, redirectURI string) string {
	return "https://accounts.google.com/o/oauth2/v2/auth?" + url.Values{
		"state":        {state},
		"redirect_uri": {redirectURI},
	}.Encode()
}

func (f *fakeGoogle) Exchange(_ context.Context, code, redirectURI string) (*oauth.Profile, error) {
	f.gotURI = redirectURI
	if p, ok := f.profiles[code]; ok {
		return p, nil
	}
	return nil, errors.New("invalid_grant")
}

func (f *fakeGoogle) VerifyIDToken(_ context.Context, raw string) (*oauth.Profile, error) {
	if p, ok := f.profiles[raw]; ok {
		return p, nil
	}
	return nil, errors.New("token audience mismatch")
}

type fakeOrders struct {
	fail bool
	last payment.OrderRequest
}

func (f *fakeOrders) PublicKey() string { return "rzp_test_key" }

func (f *fakeOrders) CreateOrder(_ context.Context, req payment.OrderRequest) (*payment.Order, error) {
	if f.fail {
		return nil, errors.New("razorpay unavailable")
	}
	f.last = req
	return &payment.Order{ID: "order_test_1", Amount: req.Amount, Currency: req.Currency}, nil
}

func (f *fakeOrders) VerifySignature(orderID, paymentID, signature string) bool {
	return payment.VerifySignature(razorpaySecret, orderID, paymentID, signature)
}

type fakeIntents struct {
	intents map[string]*payment.Intent
}

func (f *fakeIntents) CreateIntent(_ context.Context, req payment.IntentRequest) (*payment.Intent, error) {
	in := &payment.Intent{
		ID:           "pi_test_1",
		ClientSecret: "pi_test_1_secret",
		Status:       "requires_payment_method",
		Amount:       req.Amount,
		Currency:     req.Currency,
		Metadata:     req.Metadata,
	}
	f.intents[in.ID] = in
	return in, nil
}

func (f *fakeIntents) GetIntent(_ context.Context, id string) (*payment.Intent, error) {
	if in, ok := f.intents[id]; ok {
		return in, nil
	}
	return nil, errors.New("no such payment_intent")
}

type fakeCompleter struct {
	mu    sync.Mutex
	reply string
	err   error
	calls int
}

func (f *fakeCompleter) Complete(_ context.Context, _ []fitbot.Message) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	return f.reply, f.err
}

func decodeList(t *testing.T, rec *httptest.ResponseRecorder) []map[string]any {
	t.Helper()
	var out []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}
