// Package entity contains the core business objects of the marketplace,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// TransactionType describes how a property is offered on the market.
type TransactionType string

const (
	// TransactionSale indicates the property is offered for sale.
	TransactionSale TransactionType = "sale"
	// TransactionRent indicates the property is offered for rent.
	TransactionRent TransactionType = "rent"
	// TransactionLease indicates the property is offered for long-term lease.
	TransactionLease TransactionType = "lease"
)

// String returns the string representation of the TransactionType.
func (t TransactionType) String() string {
	return string(t)
}

// IsValid checks if the TransactionType is a valid value.
func (t TransactionType) IsValid() bool {
	switch t {
	case TransactionSale, TransactionRent, TransactionLease:
		return true
	default:
		return false
	}
}

// PropertyStatus is the moderation state of a listing.
type PropertyStatus string

const (
	// PropertyPending means the listing awaits admin review.
	PropertyPending PropertyStatus = "Pending"
	// PropertyApproved means the listing is publicly visible.
	PropertyApproved PropertyStatus = "Approved"
	// PropertyRejected means the listing was declined by an admin.
	PropertyRejected PropertyStatus = "Rejected"
)

// String returns the string representation of the PropertyStatus.
func (s PropertyStatus) String() string {
	return string(s)
}

// Location is the nested address block of a property listing.
type Location struct {
	City        string `json:"city"`
	District    string `json:"district"`
	Area        string `json:"area"`
	FullAddress string `json:"fullAddress"`
	Pincode     string `json:"pincode"`
}

// OwnerRef is the denormalized owner summary embedded in listings.
type OwnerRef struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
	Role string `json:"role"`
}

// Property is a marketplace listing owned by a broker or end user.
type Property struct {
	ID              string          `json:"_id"`
	Title           string          `json:"title"`
	Description     string          `json:"description"`
	Price           float64         `json:"price"`
	Location        Location        `json:"location"`
	PropertyType    string          `json:"property_type"`
	TransactionType TransactionType `json:"transaction_type"`
	Status          PropertyStatus  `json:"status"`
	Bedrooms        int             `json:"bedrooms"`
	Bathrooms       int             `json:"bathrooms"`
	SquareFeet      int             `json:"square_feet"`
	Owner           *OwnerRef       `json:"user,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`
}

// EntityID returns the stable unique identifier of the listing.
func (p Property) EntityID() string {
	return p.ID
}
