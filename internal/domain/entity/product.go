package entity

// Product represents a catalog product in the reference data
type Product struct {
	SKU           string  `json:"sku"`
	PurchasePrice float64 `json:"purchase_price"`
}
