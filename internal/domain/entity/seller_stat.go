package entity

// SellerStat accumulates performance totals for a single seller. It is
// built empty from the seller reference data, filled during aggregation,
// then decorated with a bonus and a top products ranking.
type SellerStat struct {
	ID           int64          `json:"id"`
	Name         string         `json:"name"`
	Revenue      float64        `json:"revenue"`
	Profit       float64        `json:"profit"`
	SalesCount   int            `json:"sales_count"`
	Bonus        float64        `json:"bonus"`
	TopProducts  []ProductSales `json:"top_products"`
	ProductsSold map[string]int `json:"-"` // accumulated quantity per SKU
}

// ProductSales represents one entry in a seller's top products ranking
type ProductSales struct {
	SKU      string `json:"sku"`
	Quantity int    `json:"quantity"`
}

// NewSellerStat creates an empty accumulator for the given seller
func NewSellerStat(seller Seller) *SellerStat {
	return &SellerStat{
		ID:           seller.ID,
		Name:         seller.FullName(),
		ProductsSold: make(map[string]int),
	}
}
