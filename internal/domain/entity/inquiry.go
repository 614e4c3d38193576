package entity

import "time"

// InquiryStatus tracks how far an owner has progressed with a lead.
type InquiryStatus string

const (
	// InquiryPending means the lead has not been handled yet.
	InquiryPending InquiryStatus = "Pending"
	// InquiryContacted means the owner reached out to the sender.
	InquiryContacted InquiryStatus = "Contacted"
	// InquiryResolved means the lead is closed.
	InquiryResolved InquiryStatus = "Resolved"
)

// String returns the string representation of the InquiryStatus.
func (s InquiryStatus) String() string {
	return string(s)
}

// IsValid checks if the InquiryStatus is a valid value.
func (s InquiryStatus) IsValid() bool {
	switch s {
	case InquiryPending, InquiryContacted, InquiryResolved:
		return true
	default:
		return false
	}
}

// PartyRef is the denormalized user summary embedded in inquiries.
type PartyRef struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// PropertyRef is the denormalized listing summary embedded in inquiries.
type PropertyRef struct {
	ID    string `json:"_id"`
	Title string `json:"title"`
}

// Inquiry is a lead sent by an interested user to a listing owner.
type Inquiry struct {
	ID        string        `json:"_id"`
	Sender    PartyRef      `json:"user"`
	Owner     PartyRef      `json:"owner"`
	Property  PropertyRef   `json:"property"`
	Name      string        `json:"name"`
	Email     string        `json:"email"`
	Phone     string        `json:"phone"`
	Message   string        `json:"message"`
	Status    InquiryStatus `json:"status"`
	CreatedAt time.Time     `json:"createdAt"`
}

// EntityID returns the stable unique identifier of the inquiry.
func (i Inquiry) EntityID() string {
	return i.ID
}
