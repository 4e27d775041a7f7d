package policy

import "github.com/salesrank/salesrank-api/internal/domain/entity"

// TieredBonusPolicy pays a percentage of profit by rank: 15% for first
// place, nothing for last place, 10% for second and third, 5% for
// everyone else. First place is checked before last place, so a lone
// seller earns the 15% tier rather than the last-place zero.
type TieredBonusPolicy struct{}

// Assign returns the tiered bonus for the seller at the given rank
func (TieredBonusPolicy) Assign(stat *entity.SellerStat, rank, total int) float64 {
	switch {
	case rank == 0:
		return stat.Profit * 0.15
	case rank == total-1:
		return 0
	case rank == 1 || rank == 2:
		return stat.Profit * 0.10
	default:
		return stat.Profit * 0.05
	}
}

// FlatBonusPolicy pays the same fraction of profit to every seller,
// regardless of rank.
type FlatBonusPolicy struct {
	Rate float64
}

// Assign returns rate x profit
func (p FlatBonusPolicy) Assign(stat *entity.SellerStat, rank, total int) float64 {
	return stat.Profit * p.Rate
}
