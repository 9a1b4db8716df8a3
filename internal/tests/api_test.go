// internal/tests/api_test.go
package tests

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/javajoker/saree-sanctuary/internal/config"
	"github.com/javajoker/saree-sanctuary/internal/i18n"
	"github.com/javajoker/saree-sanctuary/internal/router"
	"github.com/javajoker/saree-sanctuary/internal/store"
)

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Details []struct {
			Field   string `json:"field"`
			Tag     string `json:"tag"`
			Message string `json:"message"`
		} `json:"details"`
	} `json:"error"`
}

func testConfig(enforce bool) *config.Config {
	return &config.Config{
		Environment: "test",
		Database:    config.DatabaseConfig{URL: "memory://"},
		CORS:        config.CORSConfig{AllowedOrigins: []string{"*"}},
		RateLimit:   config.RateLimitConfig{RequestsPerSecond: 1000, Burst: 1000},
		References:  config.ReferenceConfig{Enforce: enforce},
	}
}

func newRouter(t *testing.T, handle store.Handle, cfg *config.Config) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	require.NoError(t, i18n.Initialize())

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	logger, _ := test.NewNullLogger()
	return router.Initialize(ctx, store.New(handle, logger), cfg, logger)
}

func do(r *gin.Engine, method, path string, body interface{}) (*httptest.ResponseRecorder, envelope) {
	var reader *bytes.Reader
	switch v := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(v))
	default:
		data, _ := json.Marshal(v)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	_ = json.Unmarshal(w.Body.Bytes(), &env)
	return w, env
}

type APITestSuite struct {
	suite.Suite
	router *gin.Engine
}

func (suite *APITestSuite) SetupTest() {
	suite.router = newRouter(suite.T(), store.Connected(store.NewMemoryBackend()), testConfig(false))
}

func (suite *APITestSuite) decode(raw json.RawMessage, v interface{}) {
	suite.Require().NoError(json.Unmarshal(raw, v))
}

func (suite *APITestSuite) TestRootAndSchema() {
	w, env := do(suite.router, http.MethodGet, "/", nil)
	suite.Equal(http.StatusOK, w.Code)
	var root map[string]string
	suite.decode(env.Data, &root)
	suite.Equal("Saree Sanctuary API", root["name"])
	suite.Equal("ok", root["status"])

	w, env = do(suite.router, http.MethodGet, "/schema", nil)
	suite.Equal(http.StatusOK, w.Code)
	var schema map[string]map[string]interface{}
	suite.decode(env.Data, &schema)
	suite.Contains(schema, "product")
	suite.Contains(schema, "order")
}

func (suite *APITestSuite) TestVendorProductScenario() {
	w, env := do(suite.router, http.MethodPost, "/api/vendors", map[string]interface{}{
		"store_name": "Cotton Looms",
		"slug":       "cotton-looms",
	})
	suite.Require().Equal(http.StatusCreated, w.Code)
	var vendorRes struct{ ID string }
	suite.decode(env.Data, &vendorRes)
	suite.True(primitive.IsValidObjectID(vendorRes.ID))

	w, env = do(suite.router, http.MethodPost, "/api/products", map[string]interface{}{
		"title":          "Summer Breeze Cotton",
		"slug":           "summer-breeze-cotton",
		"vendor_slug":    "cotton-looms",
		"price_in_paise": 299900,
		"saree_type":     "Cotton",
	})
	suite.Require().Equal(http.StatusCreated, w.Code)
	var productRes struct{ ID string }
	suite.decode(env.Data, &productRes)

	w, env = do(suite.router, http.MethodGet, "/api/vendors/cotton-looms", nil)
	suite.Require().Equal(http.StatusOK, w.Code)

	var vendor map[string]interface{}
	suite.decode(env.Data, &vendor)
	suite.Equal(vendorRes.ID, vendor["id"])
	suite.NotContains(vendor, "_id")
	suite.Equal(false, vendor["verified"])
	suite.Equal("active", vendor["membership_status"])

	products := vendor["products"].([]interface{})
	suite.Require().Len(products, 1)
	product := products[0].(map[string]interface{})
	suite.Equal(productRes.ID, product["id"])
	suite.Equal(float64(10), product["stock"])
	suite.Equal([]interface{}{}, product["images"])
	suite.Equal(float64(299900), product["price_in_paise"])
}

func (suite *APITestSuite) TestLargePriceIsStoredExactly() {
	w, _ := do(suite.router, http.MethodPost, "/api/products", `{
		"title": "Heirloom Kanjivaram", "slug": "heirloom-kanjivaram", "vendor_slug": "kanchi-silks",
		"price_in_paise": 9007199254740993, "saree_type": "Kanjivaram"
	}`)
	suite.Require().Equal(http.StatusCreated, w.Code)

	w, _ = do(suite.router, http.MethodGet, "/api/products/heirloom-kanjivaram", nil)
	suite.Require().Equal(http.StatusOK, w.Code)

	var res struct {
		Data map[string]interface{} `json:"data"`
	}
	dec := json.NewDecoder(bytes.NewReader(w.Body.Bytes()))
	dec.UseNumber()
	suite.Require().NoError(dec.Decode(&res))
	suite.Equal(json.Number("9007199254740993"), res.Data["price_in_paise"])
}

func (suite *APITestSuite) TestOutOfRangeAndNullValuesAreRejected() {
	tests := []struct {
		name  string
		body  string
		field string
		tag   string
	}{
		{
			name:  "overflowing integer",
			body:  `{"title": "T", "slug": "t", "vendor_slug": "v", "saree_type": "Silk", "price_in_paise": 1e19}`,
			field: "price_in_paise",
			tag:   "type=integer",
		},
		{
			name:  "null on defaulted field",
			body:  `{"title": "T", "slug": "t", "vendor_slug": "v", "saree_type": "Silk", "price_in_paise": 100, "stock": null}`,
			field: "stock",
			tag:   "type=integer",
		},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			w, env := do(suite.router, http.MethodPost, "/api/products", tt.body)
			suite.Equal(http.StatusBadRequest, w.Code)
			suite.Require().NotNil(env.Error)
			suite.Require().Len(env.Error.Details, 1)
			suite.Equal(tt.field, env.Error.Details[0].Field)
			suite.Equal(tt.tag, env.Error.Details[0].Tag)
		})
	}
}

func (suite *APITestSuite) TestProductDetailEmbedsReviews() {
	do(suite.router, http.MethodPost, "/api/products", map[string]interface{}{
		"title": "Royal Banarasi Brocade", "slug": "royal-banarasi-brocade", "vendor_slug": "varanasi-weaves",
		"price_in_paise": 899900, "saree_type": "Banarasi",
	})

	w, env := do(suite.router, http.MethodGet, "/api/products/royal-banarasi-brocade", nil)
	suite.Require().Equal(http.StatusOK, w.Code)
	var product map[string]interface{}
	suite.decode(env.Data, &product)
	suite.Equal([]interface{}{}, product["reviews"])

	for _, rating := range []int{5, 4} {
		w, _ = do(suite.router, http.MethodPost, "/api/reviews", map[string]interface{}{
			"product_slug": "royal-banarasi-brocade", "rating": rating,
		})
		suite.Require().Equal(http.StatusCreated, w.Code)
	}

	_, env = do(suite.router, http.MethodGet, "/api/products/royal-banarasi-brocade", nil)
	suite.decode(env.Data, &product)
	reviews := product["reviews"].([]interface{})
	suite.Require().Len(reviews, 2)
	suite.Equal(float64(5), reviews[0].(map[string]interface{})["rating"])
	suite.Equal(float64(4), reviews[1].(map[string]interface{})["rating"])

	w, env = do(suite.router, http.MethodGet, "/api/reviews/royal-banarasi-brocade?limit=1", nil)
	suite.Equal(http.StatusOK, w.Code)
	var listed []map[string]interface{}
	suite.decode(env.Data, &listed)
	suite.Len(listed, 1)
}

func (suite *APITestSuite) TestNotFound() {
	w, env := do(suite.router, http.MethodGet, "/api/products/missing", nil)
	suite.Equal(http.StatusNotFound, w.Code)
	suite.Require().NotNil(env.Error)
	suite.Equal("NOT_FOUND", env.Error.Code)
	suite.Equal("Product not found", env.Error.Message)

	w, _ = do(suite.router, http.MethodGet, "/api/vendors/missing", nil)
	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *APITestSuite) TestValidationErrors() {
	w, env := do(suite.router, http.MethodPost, "/api/reviews", map[string]interface{}{
		"product_slug": "p", "rating": 6,
	})
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Require().NotNil(env.Error)
	suite.Equal("VALIDATION_ERROR", env.Error.Code)
	suite.Require().Len(env.Error.Details, 1)
	suite.Equal("rating", env.Error.Details[0].Field)
	suite.Equal("lte=5", env.Error.Details[0].Tag)

	w, env = do(suite.router, http.MethodPost, "/api/vendors", map[string]interface{}{"slug": "no-name"})
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal("store_name", env.Error.Details[0].Field)

	w, env = do(suite.router, http.MethodPost, "/api/orders", []int{1, 2})
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal("BAD_REQUEST", env.Error.Code)
}

func (suite *APITestSuite) TestLimitValidation() {
	for _, q := range []string{"limit=0", "limit=101", "limit=abc"} {
		w, env := do(suite.router, http.MethodGet, "/api/products?"+q, nil)
		suite.Equal(http.StatusBadRequest, w.Code, q)
		suite.Require().NotNil(env.Error)
		suite.Equal("limit", env.Error.Details[0].Field)
	}

	w, _ := do(suite.router, http.MethodGet, "/api/products?limit=100", nil)
	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("100", w.Header().Get("X-Per-Page"))
}

func (suite *APITestSuite) TestSeedAndSearch() {
	w, env := do(suite.router, http.MethodPost, "/api/seed", nil)
	suite.Require().Equal(http.StatusOK, w.Code)
	var seeded struct {
		Seeded map[string]int `json:"seeded"`
	}
	suite.decode(env.Data, &seeded)
	suite.Equal(map[string]int{"categories": 5, "vendors": 3, "products": 3, "reviews": 2}, seeded.Seeded)

	_, env = do(suite.router, http.MethodPost, "/api/seed", nil)
	suite.decode(env.Data, &seeded)
	suite.Equal(map[string]int{"categories": 0, "vendors": 0, "products": 0, "reviews": 0}, seeded.Seeded)

	var products []map[string]interface{}
	_, env = do(suite.router, http.MethodGet, "/api/products?q=ZARI", nil)
	suite.decode(env.Data, &products)
	suite.Require().Len(products, 1)
	suite.Equal("royal-banarasi-brocade", products[0]["slug"])

	_, env = do(suite.router, http.MethodGet, "/api/products?material=Silk&occasion=Festive", nil)
	suite.decode(env.Data, &products)
	suite.Require().Len(products, 1)
	suite.Equal("classic-kanjivaram-gold", products[0]["slug"])

	_, env = do(suite.router, http.MethodGet, "/api/products?q=.*", nil)
	suite.decode(env.Data, &products)
	suite.Empty(products)

	var categories []map[string]interface{}
	_, env = do(suite.router, http.MethodGet, "/api/categories?limit=3", nil)
	suite.decode(env.Data, &categories)
	suite.Len(categories, 3)

	w, env = do(suite.router, http.MethodGet, "/test", nil)
	suite.Equal(http.StatusOK, w.Code)
	var diag map[string]interface{}
	suite.decode(env.Data, &diag)
	suite.Equal("connected", diag["connection_status"])
	suite.Len(diag["collections"], 4)
}

func (suite *APITestSuite) TestCreateOrder() {
	w, env := do(suite.router, http.MethodPost, "/api/orders", map[string]interface{}{
		"buyer_name":     "Asha",
		"buyer_email":    "asha@example.com",
		"vendor_slug":    "cotton-looms",
		"items":          []map[string]interface{}{{"product_slug": "summer-breeze-cotton", "quantity": 1, "price_in_paise": 299900}},
		"total_in_paise": 299900,
	})
	suite.Require().Equal(http.StatusCreated, w.Code)
	var res map[string]string
	suite.decode(env.Data, &res)
	suite.Equal("pending", res["status"])
	suite.True(primitive.IsValidObjectID(res["id"]))

	w, env = do(suite.router, http.MethodPost, "/api/orders", map[string]interface{}{
		"buyer_name": "Asha", "buyer_email": "a@example.com", "vendor_slug": "v",
		"items":          []map[string]interface{}{{"product_slug": "p", "quantity": 0, "price_in_paise": 1}},
		"total_in_paise": 1,
	})
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal("items[0].quantity", env.Error.Details[0].Field)
}

func (suite *APITestSuite) TestLocalizedMessages() {
	req := httptest.NewRequest(http.MethodGet, "/api/products/missing", nil)
	req.Header.Set("Accept-Language", "hi-IN,hi;q=0.9")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.Contains(w.Body.String(), "उत्पाद नहीं मिला")
}

func TestAPITestSuite(t *testing.T) {
	suite.Run(t, new(APITestSuite))
}

func TestDegradedAPI(t *testing.T) {
	r := newRouter(t, store.Uninitialized(), testConfig(false))

	for _, path := range []string{"/api/products", "/api/products?q=silk", "/api/vendors", "/api/reviews/p"} {
		w, env := do(r, http.MethodGet, path, nil)
		assert.Equal(t, http.StatusOK, w.Code, path)
		assert.JSONEq(t, `[]`, string(env.Data), path)
	}

	w, env := do(r, http.MethodGet, "/api/categories", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	var categories []map[string]string
	require.NoError(t, json.Unmarshal(env.Data, &categories))
	assert.Len(t, categories, 5)

	for _, tc := range []struct{ method, path string }{
		{http.MethodPost, "/api/seed"},
		{http.MethodGet, "/api/products/x"},
		{http.MethodGet, "/api/vendors/x"},
	} {
		w, env := do(r, tc.method, tc.path, nil)
		assert.Equal(t, http.StatusServiceUnavailable, w.Code, tc.path)
		require.NotNil(t, env.Error)
		assert.Equal(t, "SERVICE_UNAVAILABLE", env.Error.Code)
	}

	w, _ = do(r, http.MethodPost, "/api/vendors", map[string]interface{}{"store_name": "S", "slug": "s"})
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	w, env = do(r, http.MethodGet, "/test", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	var diag map[string]interface{}
	require.NoError(t, json.Unmarshal(env.Data, &diag))
	assert.Equal(t, "not connected", diag["connection_status"])

	w, _ = do(r, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"healthy","database":false}`, w.Body.String())
}

func TestEnforcedReferencesAPI(t *testing.T) {
	r := newRouter(t, store.Connected(store.NewMemoryBackend()), testConfig(true))

	w, env := do(r, http.MethodPost, "/api/products", map[string]interface{}{
		"title": "Orphan", "slug": "orphan", "vendor_slug": "nobody", "price_in_paise": 1, "saree_type": "Silk",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "vendor_slug", env.Error.Details[0].Field)
	assert.Equal(t, "exists", env.Error.Details[0].Tag)
}
