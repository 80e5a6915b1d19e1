package model

import (
	"fmt"
	"strings"
)

// ConnectionRecord marks a simulated social account link. The stored form is
// keyed by platform, so Platform is omitted from the persisted JSON.
type ConnectionRecord struct {
	Platform    Platform `json:"platform,omitempty"`
	DisplayName string   `json:"name"`
	ConnectedAt int64    `json:"ts"`
}

// AccountHandle is the display name given to a simulated account.
func AccountHandle(p Platform) string {
	return fmt.Sprintf("@%s_account", strings.ToLower(p.Label()))
}
