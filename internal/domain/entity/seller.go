package entity

// Seller represents a salesperson in the reference data
type Seller struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// FullName returns the seller's display name
func (s *Seller) FullName() string {
	return s.FirstName + " " + s.LastName
}
