package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/salesrank/salesrank-api/internal/domain/entity"
	"github.com/salesrank/salesrank-api/internal/domain/policy"
	"github.com/salesrank/salesrank-api/pkg/apperror"
)

// TopProductsLimit caps the per-seller top products ranking
const TopProductsLimit = 10

// ReportInput bundles the three input collections for one report run
type ReportInput struct {
	Sellers         []entity.Seller
	Products        []entity.Product
	PurchaseRecords []entity.PurchaseRecord
}

// ReportOptions carries the pluggable policies for one report run
type ReportOptions struct {
	Revenue policy.RevenuePolicy
	Bonus   policy.BonusPolicy
}

// PerformanceService computes per-seller sales performance reports
type PerformanceService struct{}

// NewPerformanceService creates a new performance service
func NewPerformanceService() *PerformanceService {
	return &PerformanceService{}
}

// AnalyzePerformance validates the input bundle, aggregates purchase
// records into per-seller totals, then ranks sellers by profit and
// decorates each with its bonus and top products. The whole computation
// is fail-fast: the first violation aborts with no partial output.
func (s *PerformanceService) AnalyzePerformance(ctx context.Context, input *ReportInput, opts *ReportOptions) ([]*entity.SellerStat, error) {
	if err := validateInput(input, opts); err != nil {
		return nil, err
	}

	sellerIndex, productIndex := buildIndexes(input)

	if err := aggregate(input.PurchaseRecords, sellerIndex, productIndex, opts.Revenue); err != nil {
		return nil, err
	}

	// Collect accumulators in input order; ranking reorders them.
	stats := make([]*entity.SellerStat, 0, len(input.Sellers))
	for _, seller := range input.Sellers {
		stats = append(stats, sellerIndex[seller.ID])
	}

	rank(stats, opts.Bonus)

	return stats, nil
}

// validateInput is the precondition gate: it runs once before any
// aggregation work and performs no mutation.
func validateInput(input *ReportInput, opts *ReportOptions) error {
	if input == nil {
		return apperror.NewBadRequestError("Report input is required")
	}
	if len(input.Sellers) == 0 {
		return apperror.NewBadRequestError("Sellers collection must not be empty")
	}
	if len(input.Products) == 0 {
		return apperror.NewBadRequestError("Products collection must not be empty")
	}
	if len(input.PurchaseRecords) == 0 {
		return apperror.NewBadRequestError("Purchase records collection must not be empty")
	}
	if opts == nil {
		return apperror.NewBadRequestError("Report options are required")
	}
	if opts.Revenue == nil {
		return apperror.NewBadRequestError("Revenue policy is required")
	}
	if opts.Bonus == nil {
		return apperror.NewBadRequestError("Bonus policy is required")
	}

	sellerIDs := make(map[int64]struct{}, len(input.Sellers))
	for _, seller := range input.Sellers {
		if _, exists := sellerIDs[seller.ID]; exists {
			return apperror.NewConflictError(fmt.Sprintf("Duplicate seller id %d", seller.ID))
		}
		sellerIDs[seller.ID] = struct{}{}
	}

	skus := make(map[string]struct{}, len(input.Products))
	for _, product := range input.Products {
		if _, exists := skus[product.SKU]; exists {
			return apperror.NewConflictError(fmt.Sprintf("Duplicate product SKU %q", product.SKU))
		}
		skus[product.SKU] = struct{}{}
	}

	return nil
}

// buildIndexes creates the lookup structures used by the aggregation
// pass: seller id to its empty accumulator and SKU to product.
func buildIndexes(input *ReportInput) (map[int64]*entity.SellerStat, map[string]*entity.Product) {
	sellerIndex := make(map[int64]*entity.SellerStat, len(input.Sellers))
	for _, seller := range input.Sellers {
		sellerIndex[seller.ID] = entity.NewSellerStat(seller)
	}

	productIndex := make(map[string]*entity.Product, len(input.Products))
	for i := range input.Products {
		productIndex[input.Products[i].SKU] = &input.Products[i]
	}

	return sellerIndex, productIndex
}

// aggregate walks purchase records in input order, accumulating revenue,
// profit, sales count and sold quantities into the seller accumulators.
// Any unresolved seller id or SKU aborts the whole computation.
func aggregate(records []entity.PurchaseRecord, sellerIndex map[int64]*entity.SellerStat, productIndex map[string]*entity.Product, revenue policy.RevenuePolicy) error {
	for _, record := range records {
		stat, ok := sellerIndex[record.SellerID]
		if !ok {
			return apperror.NewNotFoundError(fmt.Sprintf("Seller %d", record.SellerID))
		}

		// One increment per receipt, regardless of its item count.
		stat.SalesCount++

		// Revenue is the sum of receipt totals; the per-item revenue
		// policy feeds profit only. The two are distinct notions.
		stat.Revenue += record.TotalAmount

		for _, item := range record.Items {
			product, ok := productIndex[item.SKU]
			if !ok {
				return apperror.NewNotFoundError(fmt.Sprintf("Product %s", item.SKU))
			}

			cost := product.PurchasePrice * float64(item.Quantity)
			stat.Profit += revenue.Compute(item, item.Quantity) - cost
			stat.ProductsSold[item.SKU] += item.Quantity
		}
	}

	return nil
}

// rank sorts sellers by profit descending, assigns each its
// rank-dependent bonus and derives its top products ranking.
func rank(stats []*entity.SellerStat, bonus policy.BonusPolicy) {
	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].Profit > stats[j].Profit
	})

	total := len(stats)
	for i, stat := range stats {
		stat.Bonus = bonus.Assign(stat, i, total)
		stat.TopProducts = topProducts(stat.ProductsSold)
	}
}

// topProducts converts the sold-quantity map into a quantity-descending
// ranking truncated to TopProductsLimit entries.
func topProducts(sold map[string]int) []entity.ProductSales {
	ranking := make([]entity.ProductSales, 0, len(sold))
	for sku, quantity := range sold {
		ranking = append(ranking, entity.ProductSales{SKU: sku, Quantity: quantity})
	}

	sort.SliceStable(ranking, func(i, j int) bool {
		return ranking[i].Quantity > ranking[j].Quantity
	})

	if len(ranking) > TopProductsLimit {
		ranking = ranking[:TopProductsLimit]
	}

	return ranking
}
