package entity

// PurchaseRecord represents one receipt attributed to a seller
type PurchaseRecord struct {
	SellerID    int64          `json:"seller_id"`
	TotalAmount float64        `json:"total_amount"`
	Items       []PurchaseItem `json:"items"`
}

// PurchaseItem represents a line item within a purchase record
type PurchaseItem struct {
	SKU       string  `json:"sku"`
	Quantity  int     `json:"quantity"`
	SalePrice float64 `json:"sale_price"`
	Discount  float64 `json:"discount"` // percentage, 0-100
}
