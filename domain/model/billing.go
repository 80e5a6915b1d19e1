package model

import "time"

type Plan struct {
	ID     string `json:"id"`
	Label  string `json:"label"`
	Price  int    `json:"price"`
	Period string `json:"period"`
	Save   string `json:"save,omitempty"`
}

type PaymentMethod string

const (
	PaymentCard PaymentMethod = "card"
	PaymentBank PaymentMethod = "bank"
)

type Subscription struct {
	Plan        Plan          `json:"plan"`
	Method      PaymentMethod `json:"method"`
	Status      string        `json:"status"`
	ActivatedAt time.Time     `json:"activated_at"`
}
