package response

import "assettrack/internal/usecase"

// SuggestionResponse separates the raw model reply from the canonical status
// it maps to, if any. MatchedStatus is null for free-text answers, so clients
// can only offer a one-click transition when the reply was parseable.
type SuggestionResponse struct {
	AssetID            string  `json:"asset_id"`
	SuggestedStatusRaw string  `json:"suggested_status_raw"`
	MatchedStatus      *string `json:"matched_status"`
}

func FromSuggestion(s usecase.Suggestion) SuggestionResponse {
	resp := SuggestionResponse{
		AssetID:            s.AssetID,
		SuggestedStatusRaw: s.Raw,
	}
	if s.Matched != nil {
		matched := string(*s.Matched)
		resp.MatchedStatus = &matched
	}
	return resp
}
