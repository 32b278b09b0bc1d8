package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/sessions"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/kevinjame2233/Carryluxe-Full1/internal/store"
)

func mustHash(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

const (
	testAdminEmail    = "admin@carryluxe.test"
	testAdminPassword = "opensesame"
)

type sentMail struct {
	To      string
	Subject string
	Body    string
}

// captureMailer records sends on a channel so tests can wait for the
// detached notification goroutine.
type captureMailer struct {
	sent chan sentMail
}

func (m *captureMailer) Send(ctx context.Context, to, subject, body string) error {
	m.sent <- sentMail{To: to, Subject: subject, Body: body}
	return nil
}

type testEnv struct {
	Store  *store.FileStore
	Mailer *captureMailer
	Admin  *AdminHandler
	mux    *http.ServeMux
}

// newTestEnv wires the real handlers over a file store in a temp dir,
// with the same routes the server registers.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	st, err := store.NewFileStore(t.TempDir())
	require.NoError(t, err)

	sessionStore := sessions.NewCookieStore([]byte("0123456789abcdef0123456789abcdef"))
	sessionStore.Options.HttpOnly = true
	sessionStore.Options.Path = "/"

	mailer := &captureMailer{sent: make(chan sentMail, 4)}

	catalog := &CatalogHandler{Store: st}
	orders := &OrderHandler{Store: st, Mailer: mailer, NotifyTo: "ops@carryluxe.test"}
	admin := &AdminHandler{
		Store:    st,
		Sessions: sessionStore,
		Config: AdminConfig{
			Email:    testAdminEmail,
			Password: testAdminPassword,
			DBMode:   "file",
		},
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/products", catalog.ListProducts)
	mux.HandleFunc("GET /api/products/{id}", catalog.GetProduct)
	mux.HandleFunc("POST /api/orders", orders.SubmitOrder)
	mux.HandleFunc("GET /api/health", admin.Health)
	mux.HandleFunc("POST /api/admin/login", admin.Login)
	mux.HandleFunc("POST /api/admin/logout", admin.Logout)
	mux.HandleFunc("POST /api/admin/setup", admin.Setup)
	mux.HandleFunc("GET /api/admin/products", admin.RequireAdmin(admin.ListProducts))
	mux.HandleFunc("POST /api/admin/products", admin.RequireAdmin(admin.CreateProduct))
	mux.HandleFunc("PUT /api/admin/products/{id}", admin.RequireAdmin(admin.UpdateProduct))
	mux.HandleFunc("DELETE /api/admin/products/{id}", admin.RequireAdmin(admin.DeleteProduct))
	mux.HandleFunc("GET /api/admin/orders", admin.RequireAdmin(admin.ListOrders))

	return &testEnv{Store: st, Mailer: mailer, Admin: admin, mux: mux}
}

// do runs one request through the real route table.
func (e *testEnv) do(t *testing.T, method, path string, body any, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for _, c := range cookies {
		req.AddCookie(c)
	}

	rec := httptest.NewRecorder()
	e.mux.ServeHTTP(rec, req)
	return rec
}

// login performs a real login round-trip and returns the session
// cookies.
func (e *testEnv) login(t *testing.T) []*http.Cookie {
	t.Helper()
	rec := e.do(t, http.MethodPost, "/api/admin/login", map[string]string{
		"email":    testAdminEmail,
		"password": testAdminPassword,
	})
	require.Equal(t, http.StatusOK, rec.Code, "login failed: %s", rec.Body.String())
	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies)
	return cookies
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, dst any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), dst))
}
