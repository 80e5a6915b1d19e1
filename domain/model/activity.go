package model

import "time"

const (
	EventLogin               = "session.login"
	EventLogout              = "session.logout"
	EventSessionExpired      = "session.expired"
	EventAccountConnected    = "account.connected"
	EventAccountDisconnected = "account.disconnected"
	EventCalendarGenerated   = "calendar.generated"
	EventContentUpdated      = "content.updated"
	EventContentRewritten    = "content.rewritten"
	EventPlanConfirmed       = "plan.confirmed"
	EventSubscribed          = "billing.subscribed"
)

// ActivityEvent is a fire-and-forget notification about a local state change.
type ActivityEvent struct {
	Type     string        `json:"type"`
	Platform Platform      `json:"platform,omitempty"`
	ItemID   int64         `json:"item_id,omitempty"`
	Action   ContentAction `json:"action,omitempty"`
	At       time.Time     `json:"at"`
}
