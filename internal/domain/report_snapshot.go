package domain

import "time"

// TopCustomersSnapshot é o último TopCustomersReport calculado pelo agendador para um dono
type TopCustomersSnapshot struct {
	OwnerID    int                `json:"ownerId"`
	Report     TopCustomersReport `json:"report"`
	ComputedAt time.Time          `json:"computedAt"`
}
