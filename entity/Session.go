package entity

import (
	"gorm.io/gorm"
)

// View ids for the session router. There is no history stack: "back"
// is just another switch.
const (
	ViewLanguageSelect    = "language_select"
	ViewCustomerDashboard = "customer_dashboard"
	ViewAdminDashboard    = "admin_dashboard"
)

// Session holds the mutable per-login state that the desktop original
// kept on its top-level controller: identity, chosen language and the
// currently shown view.
type Session struct {
	gorm.Model
	Token       string `gorm:"uniqueIndex;not null" json:"token"`
	Username    string `gorm:"not null" json:"username"`
	Role        string `json:"role"`
	Language    string `json:"language"` // stored at selection, never consulted again
	CurrentView string `json:"currentView"`
}
