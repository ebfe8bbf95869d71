//go:build unit

package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"venue-booking-engine/internal/domain/resource"
	"venue-booking-engine/internal/handler"
	"venue-booking-engine/internal/handler/api"
	"venue-booking-engine/internal/handler/middleware"
	"venue-booking-engine/internal/infra/memstore"
	"venue-booking-engine/internal/pkg/clock"
	"venue-booking-engine/internal/pkg/config"
	"venue-booking-engine/internal/pkg/jwt"
	"venue-booking-engine/internal/pkg/lockmap"
	"venue-booking-engine/internal/usecase/commands"
	"venue-booking-engine/internal/usecase/queries"
	"venue-booking-engine/tests/common/builder"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRouterFixture(t *testing.T) (*gin.Engine, *memstore.Store, commands.AuthCommands) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := memstore.New()
	cfg := config.NewTestConfig()
	tokens := jwt.NewService(cfg.JWT.Secret, cfg.JWT.Duration)
	clk := clock.NewMockClock(time.Date(2026, 1, 20, 9, 0, 0, 0, time.UTC))

	authCmds := commands.NewAuthCommands(store.Users(), tokens, clk)
	resourceCmds := commands.NewResourceCommands(store.Resources(), store.Bookings(), store.Users(), clk)
	bookingCmds := commands.NewBookingCommands(store.Bookings(), store.Resources(), lockmap.New(), clk)

	engine := gin.New()
	handler.NewRouter(
		engine,
		cfg,
		api.NewAuthHandler(authCmds, queries.NewUserQueries(store.Users())),
		api.NewResourceHandler(resourceCmds, queries.NewResourceQueries(store.Resources(), store.Bookings())),
		api.NewBookingHandler(bookingCmds, queries.NewBookingQueries(store.Bookings(), store.Resources())),
		middleware.NewAuthMiddleware(tokens),
	)
	return engine, store, authCmds
}

func perform(t *testing.T, engine *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(buf)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	return rec
}

func seedHall(t *testing.T, store *memstore.Store) *resource.Resource {
	t.Helper()
	r, err := builder.NewResourceBuilder().BuildDomain()
	require.NoError(t, err)
	require.NoError(t, store.Resources().Create(context.Background(), r))
	return r
}

func TestPublicRoutes(t *testing.T) {
	t.Run("availability search needs no token", func(t *testing.T) {
		engine, store, _ := newRouterFixture(t)
		seedHall(t, store)

		rec := perform(t, engine, http.MethodGet,
			"/api/resources/search?type=HALL&start=2026-02-01T10:00:00Z&end=2026-02-01T14:00:00Z", "", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var views []map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &views))
		assert.Len(t, views, 1)
	})

	t.Run("booking commit needs no token", func(t *testing.T) {
		engine, store, _ := newRouterFixture(t)
		hall := seedHall(t, store)

		rec := perform(t, engine, http.MethodPost, "/api/bookings", "", gin.H{
			"resource_id":    hall.ID(),
			"start":          "2026-02-01T10:00:00Z",
			"end":            "2026-02-01T14:00:00Z",
			"customer_name":  "Asha Verma",
			"customer_phone": "+91-98100-12345",
		})
		require.Equal(t, http.StatusCreated, rec.Code)

		stored, err := store.Bookings().ListAll(context.Background())
		require.NoError(t, err)
		assert.Len(t, stored, 1)
	})

	t.Run("anonymous booking still loses an overlap", func(t *testing.T) {
		engine, store, _ := newRouterFixture(t)
		hall := seedHall(t, store)

		body := gin.H{
			"resource_id":    hall.ID(),
			"start":          "2026-02-01T10:00:00Z",
			"end":            "2026-02-01T14:00:00Z",
			"customer_name":  "Asha Verma",
			"customer_phone": "+91-98100-12345",
		}
		require.Equal(t, http.StatusCreated, perform(t, engine, http.MethodPost, "/api/bookings", "", body).Code)

		rec := perform(t, engine, http.MethodPost, "/api/bookings", "", body)
		require.Equal(t, http.StatusConflict, rec.Code)
	})
}

func TestProtectedRoutes(t *testing.T) {
	t.Run("management routes reject anonymous callers", func(t *testing.T) {
		engine, _, _ := newRouterFixture(t)

		for _, tc := range []struct {
			method string
			path   string
		}{
			{http.MethodGet, "/api/bookings"},
			{http.MethodGet, "/api/resources"},
			{http.MethodPost, "/api/resources"},
			{http.MethodPost, "/api/bookings/4ac35f14-0000-0000-0000-000000000000/cancel"},
			{http.MethodGet, "/api/auth/owners"},
		} {
			rec := perform(t, engine, tc.method, tc.path, "", nil)
			assert.Equalf(t, http.StatusUnauthorized, rec.Code, "%s %s", tc.method, tc.path)
		}
	})

	t.Run("seeded admin logs in and lists bookings", func(t *testing.T) {
		engine, _, authCmds := newRouterFixture(t)
		require.NoError(t, authCmds.EnsureAdmin(context.Background(), "admin", "admin123", "Platform Admin"))

		rec := perform(t, engine, http.MethodPost, "/api/auth/login", "", gin.H{
			"username": "admin",
			"password": "admin123",
		})
		require.Equal(t, http.StatusOK, rec.Code)

		var login struct {
			AccessToken string `json:"access_token"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &login))
		require.NotEmpty(t, login.AccessToken)

		listed := perform(t, engine, http.MethodGet, "/api/bookings", login.AccessToken, nil)
		assert.Equal(t, http.StatusOK, listed.Code)
	})
}
