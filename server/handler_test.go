package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/RazorNd/telegram-login/auth"
	apperrors "github.com/RazorNd/telegram-login/errors"
	"github.com/RazorNd/telegram-login/logger"
	"github.com/RazorNd/telegram-login/login"
	"github.com/RazorNd/telegram-login/session"
)

const (
	testBotToken = "2326476206:3g9iZTSFL5Pw5jaVrRw6em9Va2IEKgOuUXkVf"
	testHash     = "fc8fdb07f0cd97eed41f68fd7ee2e2b167d78be67bd55d657fa334b8960bf7b5"
)

// vectorAuthDate is the auth_date of the signed payload used below; the
// freshness clock is pinned an hour past it so the payload stays fresh.
var vectorAuthDate = time.Unix(1766499044, 0).UTC()

func testQuery() url.Values {
	q := url.Values{}
	q.Set("id", "6787")
	q.Set("first_name", "Lesia")
	q.Set("last_name", "Thane")
	q.Set("username", "cora5")
	q.Set("photo_url", "https://t.me/i/userpic/320/hamptonkfaur7.uqh.jpg")
	q.Set("auth_date", "1766499044")
	q.Set("hash", testHash)
	return q
}

func newTestServer(t *testing.T, cfg Config) (*Server, *session.Service) {
	t.Helper()
	cfg.ApplyDefaults()

	authenticator := auth.NewAuthenticator(login.NewComposite(
		login.NewHashValidator(testBotToken),
		&login.ExpirationValidator{
			Window: login.DefaultExpirationWindow,
			Now:    func() time.Time { return vectorAuthDate.Add(time.Hour) },
		},
	))

	sessions, err := session.NewService(&session.Config{
		Secret: "0123456789abcdef0123456789abcdef",
		Issuer: "test",
	})
	if err != nil {
		t.Fatalf("session service: %v", err)
	}

	log := logger.New(&logger.Config{Level: "error", Format: "json", Output: "stderr"}, "test")
	return New(cfg, authenticator, sessions, log), sessions
}

func doLogin(srv *Server, query url.Values) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/login/telegram?"+query.Encode(), nil)
	srv.GinEngine().ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) apperrors.ErrorResponse {
	t.Helper()
	var resp apperrors.ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode error response: %v (body: %s)", err, rec.Body.String())
	}
	return resp
}

func TestLoginIssuesSessionToken(t *testing.T) {
	srv, sessions := newTestServer(t, Config{})

	rec := doLogin(srv, testQuery())
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (body: %s)", rec.Code, rec.Body.String())
	}

	var resp struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Data.Token == "" {
		t.Fatal("expected a session token in the response")
	}

	claims, err := sessions.Parse(resp.Data.Token)
	if err != nil {
		t.Fatalf("issued token does not parse: %v", err)
	}
	if claims.TelegramID != 6787 {
		t.Errorf("expected telegram id 6787, got %d", claims.TelegramID)
	}
	if claims.Username != "cora5" {
		t.Errorf("expected username cora5, got %q", claims.Username)
	}
}

func TestLoginRejectsTamperedHash(t *testing.T) {
	srv, _ := newTestServer(t, Config{})

	query := testQuery()
	query.Set("first_name", "Mallory")

	rec := doLogin(srv, query)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d (body: %s)", rec.Code, rec.Body.String())
	}

	resp := decodeError(t, rec)
	if resp.Error.Code != apperrors.ErrCodeInvalidCredentials {
		t.Errorf("expected code %s, got %s", apperrors.ErrCodeInvalidCredentials, resp.Error.Code)
	}
	if resp.Error.Message != "Invalid hash" {
		t.Errorf("expected reason \"Invalid hash\", got %q", resp.Error.Message)
	}
}

func TestLoginRejectsEmptyHash(t *testing.T) {
	// "hash=" with no value is a present-but-empty parameter: it passes
	// claim construction and must be rejected as bad credentials, never
	// escalate to a 500.
	srv, _ := newTestServer(t, Config{})

	query := testQuery()
	query.Set("hash", "")

	rec := doLogin(srv, query)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d (body: %s)", rec.Code, rec.Body.String())
	}

	resp := decodeError(t, rec)
	if resp.Error.Code != apperrors.ErrCodeInvalidCredentials {
		t.Errorf("expected code %s, got %s", apperrors.ErrCodeInvalidCredentials, resp.Error.Code)
	}
	if resp.Error.Message != "Invalid hash" {
		t.Errorf("expected reason \"Invalid hash\", got %q", resp.Error.Message)
	}
}

func TestLoginRejectsMissingField(t *testing.T) {
	srv, _ := newTestServer(t, Config{})

	query := testQuery()
	query.Del("id")

	rec := doLogin(srv, query)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d (body: %s)", rec.Code, rec.Body.String())
	}

	resp := decodeError(t, rec)
	if resp.Error.Code != apperrors.ErrCodeMissingField {
		t.Errorf("expected code %s, got %s", apperrors.ErrCodeMissingField, resp.Error.Code)
	}
	if resp.Error.Message != "Missing field 'id'" {
		t.Errorf("unexpected message: %q", resp.Error.Message)
	}
}

func TestLoginRedirectsOnSuccessWhenConfigured(t *testing.T) {
	srv, _ := newTestServer(t, Config{SuccessRedirect: "/app"})

	rec := doLogin(srv, testQuery())
	if rec.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d (body: %s)", rec.Code, rec.Body.String())
	}
	if loc := rec.Header().Get("Location"); loc != "/app" {
		t.Errorf("expected redirect to /app, got %q", loc)
	}

	var found bool
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == "telegram_session" && cookie.Value != "" {
			found = true
		}
	}
	if !found {
		t.Error("expected the session cookie to be set")
	}
}

func TestProtectedRoute(t *testing.T) {
	srv, _ := newTestServer(t, Config{})
	srv.Protected("/api").GET("/me", func(c *gin.Context) {
		RespondOK(c, gin.H{"ok": true})
	})

	loginRec := doLogin(srv, testQuery())
	if loginRec.Code != http.StatusOK {
		t.Fatalf("login failed: %d (body: %s)", loginRec.Code, loginRec.Body.String())
	}
	var resp struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	if err := json.Unmarshal(loginRec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode login response: %v", err)
	}

	tests := []struct {
		name       string
		header     string
		cookie     string
		wantStatus int
		wantCode   apperrors.ErrorCode
	}{
		{
			name:       "bearer token",
			header:     "Bearer " + resp.Data.Token,
			wantStatus: http.StatusOK,
		},
		{
			name:       "session cookie",
			cookie:     resp.Data.Token,
			wantStatus: http.StatusOK,
		},
		{
			name:       "no credentials",
			wantStatus: http.StatusUnauthorized,
			wantCode:   apperrors.ErrCodeUnauthorized,
		},
		{
			name:       "garbage token",
			header:     "Bearer not.a.token",
			wantStatus: http.StatusUnauthorized,
			wantCode:   apperrors.ErrCodeInvalidToken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: "telegram_session", Value: tt.cookie})
			}
			srv.GinEngine().ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("expected %d, got %d (body: %s)", tt.wantStatus, rec.Code, rec.Body.String())
			}
			if tt.wantCode != "" {
				if got := decodeError(t, rec).Error.Code; got != tt.wantCode {
					t.Errorf("expected code %s, got %s", tt.wantCode, got)
				}
			}
		})
	}
}
