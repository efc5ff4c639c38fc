package membership

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go -source=interface.go

import "context"

// Service defines the interface for the mandatory-community gate. Players
// must belong to every mandatory community before they can play.
type Service interface {
	// CheckAccess reports whether an actor belongs to every mandatory
	// community and lists the ones they still need to join
	CheckAccess(ctx context.Context, input *CheckAccessInput) (*CheckAccessOutput, error)
}

// MemberChecker answers whether an actor belongs to a community. The
// Discord front end implements it on top of the gateway session.
type MemberChecker interface {
	// IsMember reports whether the actor belongs to the community
	IsMember(ctx context.Context, communityID, actorID string) (bool, error)
}
