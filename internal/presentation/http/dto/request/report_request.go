package request

// SellerPerformanceRequest represents a seller performance report request
type SellerPerformanceRequest struct {
	Sellers         []SellerInput         `json:"sellers" binding:"required,min=1,dive"`
	Products        []ProductInput        `json:"products" binding:"required,min=1,dive"`
	PurchaseRecords []PurchaseRecordInput `json:"purchase_records" binding:"required,min=1,dive"`
	RevenuePolicy   string                `json:"revenue_policy" binding:"omitempty,oneof=discount gross"`
	BonusPolicy     string                `json:"bonus_policy" binding:"omitempty,oneof=tiered flat"`
}

// SellerInput represents one seller in the report input
type SellerInput struct {
	ID        int64  `json:"id" binding:"required"`
	FirstName string `json:"first_name" binding:"required,max=255"`
	LastName  string `json:"last_name" binding:"required,max=255"`
}

// ProductInput represents one catalog product in the report input
type ProductInput struct {
	SKU           string  `json:"sku" binding:"required,max=100"`
	PurchasePrice float64 `json:"purchase_price" binding:"min=0"`
}

// PurchaseRecordInput represents one receipt in the report input
type PurchaseRecordInput struct {
	SellerID    int64               `json:"seller_id" binding:"required"`
	TotalAmount float64             `json:"total_amount" binding:"min=0"`
	Items       []PurchaseItemInput `json:"items" binding:"required,min=1,dive"`
}

// PurchaseItemInput represents one line item within a receipt
type PurchaseItemInput struct {
	SKU       string  `json:"sku" binding:"required,max=100"`
	Quantity  int     `json:"quantity" binding:"required,min=1"`
	SalePrice float64 `json:"sale_price" binding:"min=0"`
	Discount  float64 `json:"discount" binding:"min=0,max=100"`
}
