package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/phonefix-inc/phonefix/internal/infrastructure/config"
	"github.com/phonefix-inc/phonefix/internal/infrastructure/migration"
	sharedConfig "github.com/phonefix-inc/phonefix/internal/shared/config"
	"github.com/phonefix-inc/phonefix/internal/shared/constants"
	"github.com/phonefix-inc/phonefix/internal/shared/logger"
)

func testConfig() *config.Config {
	return &config.Config{
		Server: sharedConfig.ServerConfig{Mode: constants.EnvTest, AllowedOrigins: []string{"http://localhost:3000"}},
		Auth:   sharedConfig.AuthConfig{Mode: "header"},
		Payment: sharedConfig.PaymentConfig{
			Provider: "mock",
		},
		Pricing: sharedConfig.PricingConfig{
			Currency:              "usd",
			TaxRate:               0.0825,
			FlatShipping:          9.99,
			FreeShippingThreshold: 100,
			DefaultCountry:        "US",
			WholesaleDiscounts:    map[string]float64{"TIER1": 10, "TIER2": 15, "TIER3": 20},
			WholesaleFreeShipping: true,
		},
	}
}

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: gormlogger.Default.LogMode(gormlogger.Silent)})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(migration.AutoMigrateModels()...))

	router, err := NewRouter(db, testConfig(), logger.NewNopLogger())
	require.NoError(t, err)
	t.Cleanup(router.Shutdown)

	router.SetupRoutes()
	return router.GetEngine()
}

func doRequest(engine *gin.Engine, method, path, contentType, body, userID, role string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if contentType != "" {
		req.Header.Set(constants.HeaderContentType, contentType)
	}
	if userID != "" {
		req.Header.Set("x-user-id", userID)
		req.Header.Set("x-user-role", role)
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func jsonBody(t *testing.T, v interface{}) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, json.NewEncoder(&buf).Encode(v))
	return buf.String()
}

func TestRouter_Health(t *testing.T) {
	engine := setupRouter(t)

	w := doRequest(engine, http.MethodGet, "/health", "", "", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get(constants.HeaderXRequestID))
}

func TestRouter_GuestRepairIntake(t *testing.T) {
	engine := setupRouter(t)

	body := jsonBody(t, map[string]interface{}{
		"customer_name":     "Grace Hopper",
		"customer_email":    "grace@example.com",
		"device_brand":      "samsung",
		"device_model":      "Galaxy S21",
		"issue_description": "Battery drains fast",
		"status":            "COMPLETED",
	})
	w := doRequest(engine, http.MethodPost, "/api/repairs", constants.ContentTypeJSON, body, "", "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp struct {
		Data struct {
			TicketNumber string `json:"ticket_number"`
			Status       string `json:"status"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "SUBMITTED", resp.Data.Status)
	assert.True(t, strings.HasPrefix(resp.Data.TicketNumber, "TKT-"))

	track := doRequest(engine, http.MethodGet,
		"/api/repairs/track?ticket_number="+resp.Data.TicketNumber+"&email=grace@example.com", "", "", "", "")
	assert.Equal(t, http.StatusOK, track.Code)

	// Guests track by number; the listing needs an identity.
	list := doRequest(engine, http.MethodGet, "/api/repairs", "", "", "", "")
	assert.Equal(t, http.StatusUnauthorized, list.Code)
}

func TestRouter_RequireJSON(t *testing.T) {
	engine := setupRouter(t)

	w := doRequest(engine, http.MethodPost, "/api/orders", "text/plain", "hello", "user-1", "customer")
	require.Equal(t, http.StatusUnsupportedMediaType, w.Code)

	var resp struct {
		Error struct {
			Type string `json:"type"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "unsupported_media_type", resp.Error.Type)
}

func TestRouter_SetDefaultAddressRequiresJSON(t *testing.T) {
	engine := setupRouter(t)

	create := func(line1 string) uint {
		body := jsonBody(t, map[string]interface{}{
			"full_name":   "Ada Lovelace",
			"line1":       line1,
			"city":        "Austin",
			"state":       "TX",
			"postal_code": "78701",
		})
		w := doRequest(engine, http.MethodPost, "/api/user/addresses", constants.ContentTypeJSON, body, "user-1", "customer")
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var resp struct {
			Data struct {
				ID uint `json:"id"`
			} `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		return resp.Data.ID
	}
	create("1 Main St")
	second := create("2 Side St")
	path := fmt.Sprintf("/api/user/addresses/%d/default", second)

	w := doRequest(engine, http.MethodPost, path, "", "", "user-1", "customer")
	assert.Equal(t, http.StatusUnsupportedMediaType, w.Code)

	w = doRequest(engine, http.MethodPost, path, constants.ContentTypeJSON, "{}", "user-1", "customer")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var resp struct {
		Data struct {
			IsDefault bool `json:"is_default"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Data.IsDefault)
}

func TestRouter_AdminPermissions(t *testing.T) {
	engine := setupRouter(t)

	tests := []struct {
		name       string
		path       string
		userID     string
		role       string
		wantStatus int
	}{
		{"anonymous", "/api/admin/orders", "", "", http.StatusUnauthorized},
		{"customer", "/api/admin/orders", "user-1", "customer", http.StatusForbidden},
		{"technician on orders", "/api/admin/orders", "tech-1", "technician", http.StatusForbidden},
		{"technician on repairs", "/api/admin/repairs", "tech-1", "technician", http.StatusOK},
		{"admin on orders", "/api/admin/orders", "boss", "admin", http.StatusOK},
		{"admin on wholesale", "/api/admin/wholesale", "boss", "ADMIN", http.StatusOK},
		{"admin on repairs", "/api/admin/repairs", "boss", "admin", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(engine, http.MethodGet, tt.path, "", "", tt.userID, tt.role)
			assert.Equal(t, tt.wantStatus, w.Code, w.Body.String())
		})
	}
}

func TestRouter_CheckoutEmptyCart(t *testing.T) {
	engine := setupRouter(t)

	body := jsonBody(t, map[string]interface{}{
		"shipping_address": map[string]interface{}{
			"full_name":   "Ada Lovelace",
			"line1":       "1 Main St",
			"city":        "Austin",
			"state":       "TX",
			"postal_code": "78701",
		},
	})
	w := doRequest(engine, http.MethodPost, "/api/orders", constants.ContentTypeJSON, body, "user-1", "customer")
	assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
}

func TestRouter_ProductsPublic(t *testing.T) {
	engine := setupRouter(t)

	w := doRequest(engine, http.MethodGet, "/api/products?limit=500", "", "", "", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data struct {
			Limit int   `json:"limit"`
			Total int64 `json:"total"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, constants.MaxPageSize, resp.Data.Limit)
	assert.Zero(t, resp.Data.Total)
}
