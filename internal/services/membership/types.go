package membership

import (
	"net/http"
	"time"
)

// DefaultCacheTTL bounds how long a fetched community list is reused
const DefaultCacheTTL = 5 * time.Minute

// Community is one mandatory community an actor must belong to
type Community struct {
	// ID identifies the community to the checker
	ID string `json:"id"`

	// Title is the human-readable community name
	Title string `json:"title"`

	// InviteURL is where the actor can join
	InviteURL string `json:"invite_url"`

	// Mandatory marks communities the gate enforces; the endpoint also
	// lists optional ones
	Mandatory bool `json:"MandatoryMembership"`
}

// Config holds configuration for the membership service
type Config struct {
	// APIURL is the endpoint serving the mandatory community list; empty
	// disables the gate entirely
	APIURL string

	// Checker answers membership questions
	Checker MemberChecker

	// HTTPClient overrides the default HTTP client
	HTTPClient *http.Client

	// CacheTTL overrides DefaultCacheTTL
	CacheTTL time.Duration
}

// CheckAccessInput contains parameters for an access check
type CheckAccessInput struct {
	// ActorID is the actor to check
	ActorID string
}

// CheckAccessOutput contains the result of an access check
type CheckAccessOutput struct {
	// Authorized is true when the actor belongs to every mandatory community
	Authorized bool

	// Missing lists the communities the actor still needs to join
	Missing []Community
}
