package entity

// UserStats breaks the user population down by role.
type UserStats struct {
	Total int            `json:"total"`
	Roles map[string]int `json:"roles"`
}

// PropertyStats summarizes listings and the moderation backlog.
type PropertyStats struct {
	Total   int `json:"total"`
	Pending int `json:"pending"`
}

// InquiryStats breaks leads down by handling status.
type InquiryStats struct {
	Total    int            `json:"total"`
	Statuses map[string]int `json:"statuses"`
}

// DashboardStats is the aggregate snapshot shown on the admin dashboard.
type DashboardStats struct {
	TotalUsers              int           `json:"totalUsers"`
	TotalProperties         int           `json:"totalProperties"`
	TotalInquiries          int           `json:"totalInquiries"`
	PendingPropertiesCount  int           `json:"pendingPropertiesCount"`
	Users                   UserStats     `json:"users"`
	Properties              PropertyStats `json:"properties"`
	Inquiries               InquiryStats  `json:"inquiries"`
}

// EntityID satisfies the store entity contract; the dashboard snapshot is
// a singleton, so a fixed identifier is sufficient.
func (DashboardStats) EntityID() string {
	return "dashboard"
}
