package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/salesrank/salesrank-api/internal/application/service"
	"github.com/salesrank/salesrank-api/internal/config"
	"github.com/salesrank/salesrank-api/internal/domain/entity"
	"github.com/salesrank/salesrank-api/internal/domain/policy"
	"github.com/salesrank/salesrank-api/internal/presentation/http/dto/request"
	"github.com/salesrank/salesrank-api/internal/presentation/http/dto/response"
)

// ReportHandler handles analytics report HTTP requests
type ReportHandler struct {
	performanceService *service.PerformanceService
	defaults           config.ReportConfig
}

// NewReportHandler creates a new report handler
func NewReportHandler(performanceService *service.PerformanceService, defaults config.ReportConfig) *ReportHandler {
	return &ReportHandler{
		performanceService: performanceService,
		defaults:           defaults,
	}
}

// GetSellerPerformance handles computing the seller performance report
func (h *ReportHandler) GetSellerPerformance(c *gin.Context) {
	var req request.SellerPerformanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	revenuePolicy, bonusPolicy, err := h.resolvePolicies(&req)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	stats, err := h.performanceService.AnalyzePerformance(c.Request.Context(), toReportInput(&req), &service.ReportOptions{
		Revenue: revenuePolicy,
		Bonus:   bonusPolicy,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Seller performance report generated successfully", stats)
}

// resolvePolicies picks the requested policies, falling back to the
// configured defaults when the request names none.
func (h *ReportHandler) resolvePolicies(req *request.SellerPerformanceRequest) (policy.RevenuePolicy, policy.BonusPolicy, error) {
	revenueName := req.RevenuePolicy
	if revenueName == "" {
		revenueName = h.defaults.RevenuePolicy
	}
	revenuePolicy, err := policy.ResolveRevenue(revenueName)
	if err != nil {
		return nil, nil, err
	}

	bonusName := req.BonusPolicy
	if bonusName == "" {
		bonusName = h.defaults.BonusPolicy
	}
	bonusPolicy, err := policy.ResolveBonus(bonusName)
	if err != nil {
		return nil, nil, err
	}

	return revenuePolicy, bonusPolicy, nil
}

// toReportInput maps the request DTO to the service input bundle
func toReportInput(req *request.SellerPerformanceRequest) *service.ReportInput {
	sellers := make([]entity.Seller, len(req.Sellers))
	for i, s := range req.Sellers {
		sellers[i] = entity.Seller{
			ID:        s.ID,
			FirstName: s.FirstName,
			LastName:  s.LastName,
		}
	}

	products := make([]entity.Product, len(req.Products))
	for i, p := range req.Products {
		products[i] = entity.Product{
			SKU:           p.SKU,
			PurchasePrice: p.PurchasePrice,
		}
	}

	records := make([]entity.PurchaseRecord, len(req.PurchaseRecords))
	for i, r := range req.PurchaseRecords {
		items := make([]entity.PurchaseItem, len(r.Items))
		for j, item := range r.Items {
			items[j] = entity.PurchaseItem{
				SKU:       item.SKU,
				Quantity:  item.Quantity,
				SalePrice: item.SalePrice,
				Discount:  item.Discount,
			}
		}
		records[i] = entity.PurchaseRecord{
			SellerID:    r.SellerID,
			TotalAmount: r.TotalAmount,
			Items:       items,
		}
	}

	return &service.ReportInput{
		Sellers:         sellers,
		Products:        products,
		PurchaseRecords: records,
	}
}
