package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salesrank/salesrank-api/internal/domain/entity"
)

func TestDiscountRevenuePolicy_Compute(t *testing.T) {
	p := DiscountRevenuePolicy{}

	tests := []struct {
		name     string
		item     entity.PurchaseItem
		expected float64
	}{
		{
			name:     "no discount",
			item:     entity.PurchaseItem{SKU: "P1", Quantity: 2, SalePrice: 10, Discount: 0},
			expected: 20,
		},
		{
			name:     "quarter discount",
			item:     entity.PurchaseItem{SKU: "P1", Quantity: 4, SalePrice: 10, Discount: 25},
			expected: 30,
		},
		{
			name:     "full discount",
			item:     entity.PurchaseItem{SKU: "P1", Quantity: 3, SalePrice: 99, Discount: 100},
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, p.Compute(tt.item, tt.item.Quantity), 1e-9)
		})
	}
}

func TestGrossRevenuePolicy_Compute(t *testing.T) {
	p := GrossRevenuePolicy{}

	item := entity.PurchaseItem{SKU: "P1", Quantity: 3, SalePrice: 10, Discount: 50}
	assert.InDelta(t, 30, p.Compute(item, item.Quantity), 1e-9)
}

func TestTieredBonusPolicy_Assign(t *testing.T) {
	p := TieredBonusPolicy{}
	stat := &entity.SellerStat{Profit: 100}

	tests := []struct {
		name     string
		rank     int
		total    int
		expected float64
	}{
		{"first of five", 0, 5, 15},
		{"second of five", 1, 5, 10},
		{"third of five", 2, 5, 10},
		{"fourth of five", 3, 5, 5},
		{"last of five", 4, 5, 0},
		{"second of four", 1, 4, 10},
		{"last of two", 1, 2, 0},
		{"last of three beats second tier", 2, 3, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, p.Assign(stat, tt.rank, tt.total), 1e-9)
		})
	}
}

// A lone seller is both first and last; first place wins the tier.
func TestTieredBonusPolicy_SingleSeller(t *testing.T) {
	p := TieredBonusPolicy{}
	stat := &entity.SellerStat{Profit: 10}

	assert.InDelta(t, 1.5, p.Assign(stat, 0, 1), 1e-9)
}

func TestFlatBonusPolicy_Assign(t *testing.T) {
	p := FlatBonusPolicy{Rate: 0.05}
	stat := &entity.SellerStat{Profit: 200}

	assert.InDelta(t, 10, p.Assign(stat, 0, 3), 1e-9)
	assert.InDelta(t, 10, p.Assign(stat, 2, 3), 1e-9)
}

func TestResolveRevenue(t *testing.T) {
	p, err := ResolveRevenue(RevenueDiscount)
	require.NoError(t, err)
	assert.IsType(t, DiscountRevenuePolicy{}, p)

	p, err = ResolveRevenue(RevenueGross)
	require.NoError(t, err)
	assert.IsType(t, GrossRevenuePolicy{}, p)

	_, err = ResolveRevenue("markup")
	assert.Error(t, err)
}

func TestResolveBonus(t *testing.T) {
	p, err := ResolveBonus(BonusTiered)
	require.NoError(t, err)
	assert.IsType(t, TieredBonusPolicy{}, p)

	p, err = ResolveBonus(BonusFlat)
	require.NoError(t, err)
	assert.IsType(t, FlatBonusPolicy{}, p)

	_, err = ResolveBonus("stepped")
	assert.Error(t, err)
}
