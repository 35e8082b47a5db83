package models

const (
	EventTypeReactionAdded = "reaction_added"
	ItemTypeMessage        = "message"
)

// ReactionEvent is the part of a Slack reaction event the relay acts on
type ReactionEvent struct {
	Type      string
	Reaction  string // emoji identifier without colons, e.g. "flag-jp" or "jp"
	User      string
	ItemType  string
	Channel   string
	MessageTS string
}

// ResolutionPolicy records how an emoji identifier was turned into a directory key
type ResolutionPolicy string

const (
	// PolicyFlagPrefixed resolves "flag-<token>" to <token>
	PolicyFlagPrefixed ResolutionPolicy = "flag_prefixed"
	// PolicyBare uses the identifier itself when it is a directory key
	PolicyBare ResolutionPolicy = "bare"
)

// Classification is the outcome of an actionable reaction event
type Classification struct {
	Channel      string
	MessageTS    string
	Reaction     string
	CountryCode  string
	LanguageCode string
	Policy       ResolutionPolicy
}
