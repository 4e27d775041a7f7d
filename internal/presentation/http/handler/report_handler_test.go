package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salesrank/salesrank-api/internal/application/service"
	"github.com/salesrank/salesrank-api/internal/config"
	"github.com/salesrank/salesrank-api/internal/domain/entity"
)

type reportEnvelope struct {
	Success bool                `json:"success"`
	Message string              `json:"message"`
	Data    []entity.SellerStat `json:"data"`
}

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	h := NewReportHandler(service.NewPerformanceService(), config.ReportConfig{
		RevenuePolicy: "discount",
		BonusPolicy:   "tiered",
	})

	router := gin.New()
	router.POST("/api/v1/reports/seller-performance", h.GetSellerPerformance)
	return router
}

func postReport(t *testing.T, router *gin.Engine, body map[string]interface{}) *httptest.ResponseRecorder {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/reports/seller-performance", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func validReportBody() map[string]interface{} {
	return map[string]interface{}{
		"sellers": []map[string]interface{}{
			{"id": 1, "first_name": "A", "last_name": "X"},
		},
		"products": []map[string]interface{}{
			{"sku": "P1", "purchase_price": 5},
		},
		"purchase_records": []map[string]interface{}{
			{
				"seller_id":    1,
				"total_amount": 20,
				"items": []map[string]interface{}{
					{"sku": "P1", "quantity": 2, "sale_price": 10, "discount": 0},
				},
			},
		},
	}
}

func TestGetSellerPerformance_OK(t *testing.T) {
	router := newTestRouter()

	w := postReport(t, router, validReportBody())
	require.Equal(t, http.StatusOK, w.Code)

	var envelope reportEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	require.True(t, envelope.Success)
	require.Len(t, envelope.Data, 1)

	stat := envelope.Data[0]
	assert.Equal(t, int64(1), stat.ID)
	assert.Equal(t, "A X", stat.Name)
	assert.InDelta(t, 20, stat.Revenue, 1e-9)
	assert.InDelta(t, 10, stat.Profit, 1e-9)
	assert.Equal(t, 1, stat.SalesCount)
	assert.InDelta(t, 1.5, stat.Bonus, 1e-9)
	require.Len(t, stat.TopProducts, 1)
	assert.Equal(t, entity.ProductSales{SKU: "P1", Quantity: 2}, stat.TopProducts[0])
}

func TestGetSellerPerformance_FlatBonusOverride(t *testing.T) {
	router := newTestRouter()

	body := validReportBody()
	body["bonus_policy"] = "flat"

	w := postReport(t, router, body)
	require.Equal(t, http.StatusOK, w.Code)

	var envelope reportEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	require.Len(t, envelope.Data, 1)
	// 5% of profit instead of the tiered 15%.
	assert.InDelta(t, 0.5, envelope.Data[0].Bonus, 1e-9)
}

func TestGetSellerPerformance_InvalidBody(t *testing.T) {
	router := newTestRouter()

	body := validReportBody()
	delete(body, "products")

	w := postReport(t, router, body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetSellerPerformance_UnknownPolicyRejected(t *testing.T) {
	router := newTestRouter()

	body := validReportBody()
	body["revenue_policy"] = "markup"

	w := postReport(t, router, body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetSellerPerformance_DuplicateSeller(t *testing.T) {
	router := newTestRouter()

	body := validReportBody()
	body["sellers"] = []map[string]interface{}{
		{"id": 1, "first_name": "A", "last_name": "X"},
		{"id": 1, "first_name": "B", "last_name": "Y"},
	}

	w := postReport(t, router, body)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestGetSellerPerformance_UnknownSeller(t *testing.T) {
	router := newTestRouter()

	body := validReportBody()
	body["purchase_records"] = []map[string]interface{}{
		{
			"seller_id":    99,
			"total_amount": 20,
			"items": []map[string]interface{}{
				{"sku": "P1", "quantity": 2, "sale_price": 10, "discount": 0},
			},
		},
	}

	w := postReport(t, router, body)
	require.Equal(t, http.StatusNotFound, w.Code)

	var envelope reportEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.False(t, envelope.Success)
	assert.Equal(t, "Seller 99 not found", envelope.Message)
}
