package ai

// IntentResult captures the structured output from the AI model.
type IntentResult struct {
	// Intent describes the user's primary goal: "search" when enough detail
	// exists to query the catalog, "chat" otherwise.
	Intent string `json:"intent"`

	// Origin and Destination are station names extracted from the user's
	// input. Nullable because a chat turn may have neither.
	Origin      *string `json:"origin,omitempty"`
	Destination *string `json:"destination,omitempty"`

	// EarliestDeparture is an RFC3339 timestamp for "morning", "after six"
	// and similar phrases, resolved against current_time from the context.
	EarliestDeparture *string `json:"earliest_departure,omitempty"`

	// Railcard is the discount category the user mentioned, if any.
	// Valid values: "none", "over60s", "family".
	Railcard string `json:"railcard,omitempty"`

	// TicketType is "one_way" or "return" when the user stated it.
	TicketType string `json:"ticket_type,omitempty"`

	// Reply is a short, polite response to the user from the booking desk.
	Reply string `json:"reply"`
}
