package integration

import (
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"muhasib/internal/handlers"
	"muhasib/internal/logger"
	"muhasib/internal/middleware"
	"muhasib/internal/services"
	"muhasib/internal/store"
	"muhasib/internal/validator"
)

// testApp holds the full application stack for integration tests.
type testApp struct {
	DB     *gorm.DB
	Store  store.BlobStore
	Router *gin.Engine
}

// dbCounter ensures each test gets a unique in-memory database.
var dbCounter atomic.Int64

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
	validator.Register()
}

// setupIsolatedDB creates an isolated in-memory SQLite database for a single test.
func setupIsolatedDB(t *testing.T) *gorm.DB {
	t.Helper()

	n := dbCounter.Add(1)
	dsn := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared", n)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(&store.Blob{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

// setupApp creates a full application stack backed by an isolated in-memory SQLite.
func setupApp(t *testing.T) *testApp {
	t.Helper()

	db := setupIsolatedDB(t)
	blobStore := store.New(db)

	// Services
	ledgerService, err := services.NewLedgerService(blobStore)
	if err != nil {
		t.Fatalf("failed to load ledger: %v", err)
	}
	valuationService := services.NewValuationService(ledgerService)
	draftService := services.NewDraftService(blobStore)

	// Handlers
	valuationHandler := handlers.NewValuationHandler(valuationService, ledgerService, draftService)
	paymentHandler := handlers.NewPaymentHandler(ledgerService)
	calculationHandler := handlers.NewCalculationHandler(valuationService, ledgerService)
	dashboardHandler := handlers.NewDashboardHandler(ledgerService, draftService)
	draftHandler := handlers.NewDraftHandler(draftService)
	lockHandler := handlers.NewLockHandler()

	// Router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.ErrorHandler())

	v1 := router.Group("/api/v1")

	// Public lock routes
	v1.POST("/unlock", lockHandler.Unlock)
	v1.GET("/lock", lockHandler.GetLockStatus)

	// Protected routes
	protected := v1.Group("/")
	protected.Use(middleware.LockMiddleware())

	protected.POST("/calculate", valuationHandler.Calculate)
	protected.GET("/dashboard", dashboardHandler.GetDashboard)

	payments := protected.Group("/payments")
	payments.POST("", paymentHandler.CreatePayment)
	payments.GET("", paymentHandler.GetPayments)
	payments.DELETE("/:id", paymentHandler.DeletePayment)

	calculations := protected.Group("/calculations")
	calculations.POST("", calculationHandler.SaveCalculation)
	calculations.GET("", calculationHandler.GetCalculations)
	calculations.DELETE("/:index", calculationHandler.DeleteCalculation)

	draft := protected.Group("/draft")
	draft.GET("", draftHandler.GetDraft)
	draft.PUT("", draftHandler.PutDraft)
	draft.POST("/reset", draftHandler.ResetDraft)

	return &testApp{DB: db, Store: blobStore, Router: router}
}

// request makes an HTTP request to the test router and returns the recorder.
func (app *testApp) request(method, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}

// parseJSON parses the response body into a map.
func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

// mustStatus fails the test unless the recorder has the expected status.
func mustStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Fatalf("expected %d, got %d: %s", want, rec.Code, rec.Body.String())
	}
}
