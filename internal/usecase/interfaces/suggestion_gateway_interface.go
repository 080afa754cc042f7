package interfaces

import "context"

// SuggestionFields is the structured prompt material for a status suggestion.
type SuggestionFields struct {
	AssetID       string
	CurrentStatus string
	StatusHistory []string
	UserNotes     string
}

// ISuggestionGateway abstracts the external text-generation provider.
//
// The returned string is raw model output, not a validated status; the use
// case maps it onto the canonical set before anyone may act on it.

type ISuggestionGateway interface {
	SuggestStatus(ctx context.Context, fields SuggestionFields) (string, error)
}
