package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	settingsadapter "github.com/etony5555-creator/tony-retail-managment-sytem/internal/adapters/settings"
	"github.com/etony5555-creator/tony-retail-managment-sytem/internal/adapters/store/memory"
	"github.com/etony5555-creator/tony-retail-managment-sytem/internal/core/services"
	"github.com/etony5555-creator/tony-retail-managment-sytem/internal/dto"
	"github.com/etony5555-creator/tony-retail-managment-sytem/internal/handlers"
	"github.com/etony5555-creator/tony-retail-managment-sytem/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	require.NoError(t, dto.RegisterValidations())

	repos := services.Repositories{
		Customer:    memory.NewCustomerRepository(),
		Stock:       memory.NewStockRepository(),
		Transaction: memory.NewTransactionRepository(),
		Borrow:      memory.NewBorrowRepository(),
		Wholesaler:  memory.NewWholesalerRepository(),
		Driver:      memory.NewDriverRepository(),
		Task:        memory.NewTaskRepository(),
		Settings:    settingsadapter.NewYamlRepository(filepath.Join(t.TempDir(), "settings.yaml")),
	}
	container := services.NewServiceContainer(repos, nil)

	cfg := &config.Config{RateLimit: "1000-M"}
	r := gin.New()
	handlers.RegisterRoutes(r, cfg, container)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	r := newTestRouter(t)
	w := doJSON(t, r, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "OK", w.Body.String())
}

func TestCustomerCRUD(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/v1/customers", gin.H{
		"name":        "Alice Nakato",
		"phone":       "0700123456",
		"creditLimit": "100000",
		"creditUsed":  "0",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created dto.CustomerResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.NotEmpty(t, created.CustomerID)

	w = doJSON(t, r, http.MethodGet, "/api/v1/customers/"+created.CustomerID, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodPut, "/api/v1/customers/"+created.CustomerID, gin.H{
		"name":        "Alice N.",
		"creditLimit": "150000",
		"creditUsed":  "20000",
	})
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doJSON(t, r, http.MethodGet, "/api/v1/customers", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var list dto.ListCustomersResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list.Customers, 1)
	assert.Equal(t, "Alice N.", list.Customers[0].Name)
}

func TestCustomerUpdate_MissingIDIs404(t *testing.T) {
	r := newTestRouter(t)
	w := doJSON(t, r, http.MethodPut, "/api/v1/customers/nope", gin.H{
		"name": "Ghost",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateCustomer_MissingNameIs400(t *testing.T) {
	r := newTestRouter(t)
	w := doJSON(t, r, http.MethodPost, "/api/v1/customers", gin.H{
		"phone": "0700123456",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTransactionIsAppendOnly(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/v1/transactions", gin.H{
		"description": "Sold sugar",
		"amount":      "4500",
		"type":        "Income",
		"date":        "2025-03-01",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created dto.TransactionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	// No update or delete routes exist for the ledger.
	w = doJSON(t, r, http.MethodPut, "/api/v1/transactions/"+created.TransactionID, gin.H{})
	assert.Equal(t, http.StatusNotFound, w.Code)
	w = doJSON(t, r, http.MethodDelete, "/api/v1/transactions/"+created.TransactionID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateTransaction_RejectsZeroAmount(t *testing.T) {
	r := newTestRouter(t)
	w := doJSON(t, r, http.MethodPost, "/api/v1/transactions", gin.H{
		"description": "Nothing",
		"amount":      "0",
		"type":        "Income",
		"date":        "2025-03-01",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBorrowStatusRecomputedOnUpdate(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/v1/borrows", gin.H{
		"lender":  "SACCO",
		"amount":  "100",
		"date":    "2025-01-10",
		"dueDate": "2025-02-10",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var created dto.BorrowResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, "Unpaid", string(created.Status))

	w = doJSON(t, r, http.MethodPut, "/api/v1/borrows/"+created.BorrowID, gin.H{
		"lender":     "SACCO",
		"amount":     "100",
		"amountPaid": "40",
		"date":       "2025-01-10",
		"dueDate":    "2025-02-10",
		"status":     "Paid",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var updated dto.BorrowResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(t, "Partially Paid", string(updated.Status))
	assert.Equal(t, "60", updated.Outstanding.String())
}

func TestDashboardSummaryReflectsStore(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/v1/transactions", gin.H{
		"description": "Sold sugar",
		"amount":      "750",
		"type":        "Income",
		"date":        "2025-03-01",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	w = doJSON(t, r, http.MethodPost, "/api/v1/transactions", gin.H{
		"description": "Paid rent",
		"amount":      "300",
		"type":        "Expense",
		"date":        "2025-03-01",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/v1/dashboard/summary", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var summary dto.DashboardSummaryResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &summary))
	assert.Equal(t, "750", summary.TotalRevenue.String())
	assert.Equal(t, "300", summary.TotalExpenses.String())
	assert.Equal(t, "450", summary.NetProfit.String())
}

func TestTaskStatusRoute(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/v1/tasks", gin.H{
		"title":        "Order stock",
		"dueDate":      "2025-03-01",
		"reminderTime": "09:00",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var created dto.TaskResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, "Pending", string(created.Status))
	assert.False(t, created.ReminderSent)

	w = doJSON(t, r, http.MethodPut, "/api/v1/tasks/"+created.TaskID+"/status", gin.H{
		"status": "In Progress",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var updated dto.TaskResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(t, "In Progress", string(updated.Status))

	w = doJSON(t, r, http.MethodPut, "/api/v1/tasks/"+created.TaskID+"/status", gin.H{
		"status": "Done",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSettingsRoundTrip(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/v1/settings", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var defaults dto.SettingsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &defaults))
	assert.Equal(t, "My Shop", defaults.ShopName)

	w = doJSON(t, r, http.MethodPut, "/api/v1/settings", gin.H{
		"shopName": "Tony's Shop",
		"theme":    "light",
		"darkMode": false,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doJSON(t, r, http.MethodGet, "/api/v1/settings", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var saved dto.SettingsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &saved))
	assert.Equal(t, "Tony's Shop", saved.ShopName)
	assert.Equal(t, "light", saved.Theme)
}

func TestInsightsWithoutGenerator(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/v1/insights", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var res dto.InsightsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Contains(t, res.Insights, "not configured")
}

func TestStockDelete(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/v1/stock", gin.H{
		"name":              "Sugar 1kg",
		"quantity":          10,
		"price":             "4500",
		"lowStockThreshold": 5,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var created dto.StockItemResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = doJSON(t, r, http.MethodDelete, "/api/v1/stock/"+created.StockItemID, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(t, r, http.MethodDelete, "/api/v1/stock/"+created.StockItemID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
