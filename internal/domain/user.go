package domain

import "time"

// User is an account that owns workout lists. Accounts created through an
// external identity provider carry a random placeholder password hash.
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	GoogleID     *string   `json:"-"`
	StravaID     *string   `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// IdentityProvider names an external login source.
type IdentityProvider string

const (
	ProviderGoogle IdentityProvider = "google"
	ProviderStrava IdentityProvider = "strava"
)

// ExternalIdentity is what an identity provider tells us about a person.
type ExternalIdentity struct {
	Provider    IdentityProvider
	ExternalID  string
	Email       string
	DisplayName string
}
