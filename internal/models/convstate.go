package models

// ConversationState tracks where an actor is in a multi-step flow, such as
// resolving a dealt prompt. States expire rather than accumulate.
type ConversationState struct {
	// ActorID is the user the state belongs to
	ActorID string

	// Flow names the multi-step flow in progress
	Flow string

	// Step is the current step within the flow
	Step string

	// Data carries values collected so far, keyed by field name
	Data map[string]string
}
