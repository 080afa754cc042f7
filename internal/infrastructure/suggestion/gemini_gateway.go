package suggestion

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"assettrack/internal/usecase/interfaces"

	"google.golang.org/genai"
)

var ErrMissingGeminiAPIKey = errors.New("missing GEMINI_API_KEY")
var ErrSuggestionGatewayNotConfigured = errors.New("suggestion gateway not configured")

const defaultGeminiModel = "gemini-2.0-flash"

// GeminiGateway asks a Gemini model for the next status of an asset. The raw
// reply is passed through untouched; validation against the canonical status
// set happens in the use case.
type GeminiGateway struct {
	client   *genai.Client
	model    string
	mockMode bool
}

var _ interfaces.ISuggestionGateway = (*GeminiGateway)(nil)

func NewGeminiGateway(ctx context.Context, apiKey string) (*GeminiGateway, error) {
	if isSuggestionGatewayMockEnabled() {
		log.Printf("[suggestion][gateway] mock mode enabled")
		return &GeminiGateway{mockMode: true}, nil
	}

	if apiKey == "" {
		log.Printf("[suggestion][gateway] missing GEMINI_API_KEY")
		return nil, ErrMissingGeminiAPIKey
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		log.Printf("[suggestion][gateway] failed creating genai client err=%v", err)
		return nil, err
	}
	log.Printf("[suggestion][gateway] Gemini client initialized")

	return &GeminiGateway{
		client: client,
		model:  getenvDefault("GEMINI_MODEL", defaultGeminiModel),
	}, nil
}

func (g *GeminiGateway) SuggestStatus(ctx context.Context, fields interfaces.SuggestionFields) (string, error) {
	if g != nil && g.mockMode {
		suggested := mockSuggestion(fields)
		log.Printf("[suggestion][gateway] mock suggest asset_id=%s suggested=%s", fields.AssetID, suggested)
		return suggested, nil
	}

	if g == nil || g.client == nil {
		log.Printf("[suggestion][gateway] gateway not configured")
		return "", ErrSuggestionGatewayNotConfigured
	}

	prompt := buildPrompt(fields)
	log.Printf("[suggestion][gateway] suggest start asset_id=%s prompt_len=%d", fields.AssetID, len(prompt))

	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		log.Printf("[suggestion][gateway] generate failed asset_id=%s err=%v", fields.AssetID, err)
		return "", err
	}

	text := strings.TrimSpace(resp.Text())
	log.Printf("[suggestion][gateway] suggest success asset_id=%s reply=%q", fields.AssetID, text)
	return text, nil
}

func buildPrompt(fields interfaces.SuggestionFields) string {
	var b strings.Builder
	b.WriteString("You are an AI assistant helping users determine the next status of an asset.\n\n")
	fmt.Fprintf(&b, "The asset has the following ID: %s\n", fields.AssetID)
	fmt.Fprintf(&b, "The current status is: %s\n", fields.CurrentStatus)
	b.WriteString("The status history is:\n")
	for _, line := range fields.StatusHistory {
		fmt.Fprintf(&b, "- %s\n", line)
	}
	if fields.UserNotes != "" {
		fmt.Fprintf(&b, "\nThe user has provided the following information:\n%s\n", fields.UserNotes)
	}
	b.WriteString("\nBased on this information, suggest the next status for the asset. ")
	b.WriteString("The status should be one of the following: in-use, broken, repairing, disposed.\n")
	b.WriteString("Return ONLY the suggested status.\n")
	return b.String()
}

// mockSuggestion gives a deterministic answer so the rest of the system can
// be exercised without provider credentials.
func mockSuggestion(fields interfaces.SuggestionFields) string {
	notes := strings.ToLower(fields.UserNotes)
	switch {
	case strings.Contains(notes, "broken") || strings.Contains(notes, "damaged"):
		return "broken"
	case fields.CurrentStatus == "broken":
		return "repairing"
	case fields.CurrentStatus == "repairing":
		return "in-use"
	default:
		return "in-use"
	}
}

func isSuggestionGatewayMockEnabled() bool {
	for _, key := range []string{"SUGGESTION_GATEWAY_MOCK", "GEMINI_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
