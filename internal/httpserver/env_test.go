package httpserver

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/infinity-lifestyle/storefront/internal/cart"
	"github.com/infinity-lifestyle/storefront/internal/repo"
	"github.com/infinity-lifestyle/storefront/internal/search"
	"github.com/infinity-lifestyle/storefront/internal/seed"
	"github.com/infinity-lifestyle/storefront/internal/service"
	"github.com/infinity-lifestyle/storefront/internal/session"
)

type testEnv struct {
	T        *testing.T
	E        *echo.Echo
	DB       *gorm.DB
	Catalog  *CatalogHTTP
	Events   *EventHTTP
	Cart     *CartHTTP
	Search   *SearchHTTP
	Sessions *session.Manager
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, seed.Load(db, 1))

	catalogRepo := repo.New(db)
	catalogSvc := &service.CatalogService{Repo: catalogRepo}
	cartSvc := &service.CartService{Store: cart.NewMemoryStore(), Repo: catalogRepo}
	searchSvc := &search.Service{Repo: catalogRepo}

	return &testEnv{
		T:        t,
		E:        echo.New(),
		DB:       db,
		Catalog:  &CatalogHTTP{Svc: catalogSvc},
		Events:   &EventHTTP{Svc: catalogSvc},
		Cart:     &CartHTTP{Svc: cartSvc},
		Search:   &SearchHTTP{Svc: searchSvc},
		Sessions: session.NewManager([]byte("test-secret"), time.Hour),
	}
}

func (env *testEnv) doJSONRequest(method, path string, body any, cookies ...*http.Cookie) (*httptest.ResponseRecorder, echo.Context) {
	var buf bytes.Buffer
	if body != nil {
		require.NoError(env.T, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	rec := httptest.NewRecorder()
	c := env.E.NewContext(req, rec)
	return rec, c
}

// withSession wraps a cart handler in the session middleware the way the
// router does.
func (env *testEnv) withSession(handler echo.HandlerFunc) echo.HandlerFunc {
	return env.Sessions.Middleware(handler)
}

func sessionCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == session.CookieName {
			return ck
		}
	}
	t.Fatal("no session cookie issued")
	return nil
}
