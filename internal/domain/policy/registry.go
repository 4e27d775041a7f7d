package policy

import "fmt"

// Policy names accepted over the wire and in configuration
const (
	RevenueDiscount = "discount"
	RevenueGross    = "gross"

	BonusTiered = "tiered"
	BonusFlat   = "flat"
)

// FlatBonusRate is the profit fraction used by the flat bonus policy
// when it is selected by name.
const FlatBonusRate = 0.05

// ResolveRevenue returns the revenue policy registered under name
func ResolveRevenue(name string) (RevenuePolicy, error) {
	switch name {
	case RevenueDiscount:
		return DiscountRevenuePolicy{}, nil
	case RevenueGross:
		return GrossRevenuePolicy{}, nil
	default:
		return nil, fmt.Errorf("unknown revenue policy %q", name)
	}
}

// ResolveBonus returns the bonus policy registered under name
func ResolveBonus(name string) (BonusPolicy, error) {
	switch name {
	case BonusTiered:
		return TieredBonusPolicy{}, nil
	case BonusFlat:
		return FlatBonusPolicy{Rate: FlatBonusRate}, nil
	default:
		return nil, fmt.Errorf("unknown bonus policy %q", name)
	}
}
