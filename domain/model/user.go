package model

import "strings"

// User is the authenticated account as reported by the backend.
type User struct {
	ID         int64   `json:"id"`
	Name       string  `json:"name"`
	Email      string  `json:"email"`
	Picture    *string `json:"picture,omitempty"`
	HasProfile bool    `json:"has_profile"`
}

// FirstName is what the dashboard greets the user with.
func (u User) FirstName() string {
	name := strings.TrimSpace(u.Name)
	if idx := strings.IndexByte(name, ' '); idx > 0 {
		return name[:idx]
	}
	return name
}
