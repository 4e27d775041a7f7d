package policy

import "github.com/salesrank/salesrank-api/internal/domain/entity"

// DiscountRevenuePolicy values an item at its sale price after applying
// the percentage discount. This is the default revenue policy.
type DiscountRevenuePolicy struct{}

// Compute returns sale_price x quantity x (1 - discount/100)
func (DiscountRevenuePolicy) Compute(item entity.PurchaseItem, quantity int) float64 {
	return item.SalePrice * float64(quantity) * (1 - item.Discount/100)
}

// GrossRevenuePolicy values an item at its full sale price, ignoring
// discounts. Useful for reporting gross figures next to the default.
type GrossRevenuePolicy struct{}

// Compute returns sale_price x quantity
func (GrossRevenuePolicy) Compute(item entity.PurchaseItem, quantity int) float64 {
	return item.SalePrice * float64(quantity)
}
