package routes

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/yudistira/siswa_app_v1/internal/config"
	"github.com/yudistira/siswa_app_v1/internal/database"
	"github.com/yudistira/siswa_app_v1/internal/middleware"
)

func testConfig() *config.Config {
	return &config.Config{
		SessionSecret:      "test-secret",
		SessionMaxAgeHours: "24",
		AdminUsername:      "admin",
		AdminPassword:      "admin",
		TglMasukMax:        "2025-12-04",
	}
}

// newTestApp wires the full application against a throwaway sqlite file,
// seeded with the default admin, behind the method-override wrapper the
// real server runs with.
func newTestApp(t *testing.T) (http.Handler, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	cfg := testConfig()
	require.NoError(t, database.SeedAdmin(db, cfg))

	gin.SetMode(gin.TestMode)
	r := gin.New()
	Register(r, db, cfg)
	return middleware.MethodOverride(r), db
}

func do(h http.Handler, method, path string, form url.Values, cookies []*http.Cookie) *httptest.ResponseRecorder {
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req := httptest.NewRequest(method, path, body)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

// sessionCookies collapses the response's Set-Cookie headers to the last
// value per name; saving the session more than once in a request stacks
// headers the way a browser would resolve.
func sessionCookies(resp *http.Response) []*http.Cookie {
	last := map[string]*http.Cookie{}
	var order []string
	for _, ck := range resp.Cookies() {
		if _, ok := last[ck.Name]; !ok {
			order = append(order, ck.Name)
		}
		last[ck.Name] = ck
	}
	out := make([]*http.Cookie, 0, len(order))
	for _, name := range order {
		out = append(out, last[name])
	}
	return out
}

func login(t *testing.T, h http.Handler) []*http.Cookie {
	t.Helper()
	w := do(h, http.MethodPost, "/login", url.Values{
		"username": {"admin"},
		"password": {"admin"},
	}, nil)
	require.Equal(t, http.StatusFound, w.Code)
	require.Equal(t, "/", w.Result().Header.Get("Location"))
	return sessionCookies(w.Result())
}
