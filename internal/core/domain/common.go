package domain

import "time"

// AuditFields holds standard audit timestamps for domain entities.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}

// ProductRef is the product snapshot embedded in receipt and sale responses
// for display purposes (id/code/name/unit only, no prices or stock).
type ProductRef struct {
	ProductID string `json:"productID"`
	Code      string `json:"code"`
	Name      string `json:"name"`
	Unit      string `json:"unit"`
}
