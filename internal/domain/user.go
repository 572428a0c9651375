package domain

import "time"

// User is a person reachable over the external chat channel. The WhatsApp
// number is the external identity; users are created on first contact or
// through the onboarding API and never deleted by the engine.
type User struct {
	ID             string
	WhatsAppNumber string
	Name           string
	CreatedAt      time.Time
}
