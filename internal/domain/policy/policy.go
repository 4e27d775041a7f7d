package policy

import "github.com/salesrank/salesrank-api/internal/domain/entity"

// RevenuePolicy computes the revenue of a single line item. The policy
// owns the price/discount arithmetic so the aggregation pipeline stays
// agnostic to the exact formula.
type RevenuePolicy interface {
	Compute(item entity.PurchaseItem, quantity int) float64
}

// BonusPolicy assigns a bonus to a ranked seller. rank is the 0-based
// position in the profit-sorted ordering and total the seller count.
type BonusPolicy interface {
	Assign(stat *entity.SellerStat, rank, total int) float64
}
