package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/vital/internal/db"
	"gorm.io/gorm"
)

func newVitalTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	return newVitalTestAppWithCookieSecure(t, false)
}

func newVitalTestAppWithCookieSecure(t *testing.T, cookieSecure bool) (*fiber.App, *gorm.DB) {
	t.Helper()

	databasePath := filepath.Join(t.TempDir(), "vital-api-test.db")
	database, err := db.OpenSQLite(databasePath)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("open sql db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	handler := NewHandler(database, "test-secret-key", time.UTC, cookieSecure)
	app := fiber.New()
	RegisterRoutes(app, handler)
	return app, database
}

func responseCookie(cookies []*http.Cookie, name string) *http.Cookie {
	for _, cookie := range cookies {
		if cookie.Name == name {
			return cookie
		}
	}
	return nil
}

func jsonRequest(t *testing.T, method, target, cookie string, payload any) *http.Request {
	t.Helper()

	var body *bytes.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal %s %s payload: %v", method, target, err)
		}
		body = bytes.NewReader(encoded)
	} else {
		body = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, target, body)
	if payload != nil {
		req.Header.Set("Content-Type", fiber.MIMEApplicationJSON)
	}
	if cookie != "" {
		req.Header.Set("Cookie", cookie)
	}
	return req
}

func doJSON(t *testing.T, app *fiber.App, req *http.Request, wantStatus int, out any) {
	t.Helper()

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s failed: %v", req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != wantStatus {
		t.Fatalf("%s %s: expected status %d, got %d", req.Method, req.URL.Path, wantStatus, resp.StatusCode)
	}
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			t.Fatalf("decode %s %s response: %v", req.Method, req.URL.Path, err)
		}
	}
}

// registerTestUser creates an account through the public route and returns the
// auth cookie the response sets.
func registerTestUser(t *testing.T, app *fiber.App, email, password string) string {
	t.Helper()

	req := jsonRequest(t, http.MethodPost, "/api/auth/register", "", map[string]any{
		"email":    email,
		"password": password,
	})
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("register request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected register status 201, got %d", resp.StatusCode)
	}
	return extractAuthCookie(t, resp)
}

func extractAuthCookie(t *testing.T, resp *http.Response) string {
	t.Helper()

	for _, raw := range resp.Header.Values("Set-Cookie") {
		if !strings.HasPrefix(raw, authCookieName+"=") {
			continue
		}
		if index := strings.Index(raw, ";"); index > 0 {
			return raw[:index]
		}
		return raw
	}
	t.Fatalf("response did not set the %s cookie", authCookieName)
	return ""
}
