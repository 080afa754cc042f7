package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"assettrack/internal/domain/entities"
	"assettrack/internal/usecase/interfaces"
)

var ErrSuggestionUnavailable = errors.New("status suggestion unavailable")

// Suggestion is the gateway's answer. Raw is unvalidated model output;
// Matched is non-nil only when the reply maps onto a canonical status, and
// only a matched value may be fed back into UpdateStatus.
type Suggestion struct {
	AssetID string
	Raw     string
	Matched *entities.AssetStatus
}

// ISuggestionUseCase asks the external text-generation provider for the next
// status of an asset.

type ISuggestionUseCase interface {
	Suggest(ctx context.Context, assetID, notes string) (Suggestion, error)
}

type SuggestionUseCase struct {
	assetRepo interfaces.IAssetRepository
	gateway   interfaces.ISuggestionGateway
}

var _ ISuggestionUseCase = (*SuggestionUseCase)(nil)

func NewSuggestionUseCase(assetRepo interfaces.IAssetRepository, gateway interfaces.ISuggestionGateway) *SuggestionUseCase {
	return &SuggestionUseCase{assetRepo: assetRepo, gateway: gateway}
}

// Suggest loads the asset and submits its id, status, history and the user's
// optional condition notes to the provider. A missing or failing provider
// degrades to ErrSuggestionUnavailable; it is never fatal to anything else.
func (u *SuggestionUseCase) Suggest(ctx context.Context, assetID, notes string) (Suggestion, error) {
	assetID = strings.TrimSpace(assetID)
	if assetID == "" {
		return Suggestion{}, ErrInvalidAssetID
	}

	asset, err := u.assetRepo.GetByID(ctx, assetID)
	if err != nil {
		return Suggestion{}, err
	}
	if asset.ID == "" {
		return Suggestion{}, ErrAssetNotFound
	}

	if u.gateway == nil {
		log.Printf("[suggestion][usecase] gateway not configured asset_id=%s", assetID)
		return Suggestion{}, ErrSuggestionUnavailable
	}

	fields := interfaces.SuggestionFields{
		AssetID:       asset.ID,
		CurrentStatus: string(asset.Status),
		StatusHistory: historyLines(asset.History),
		UserNotes:     strings.TrimSpace(notes),
	}

	raw, err := u.gateway.SuggestStatus(ctx, fields)
	if err != nil {
		log.Printf("[suggestion][usecase] gateway call failed asset_id=%s err=%v", assetID, err)
		return Suggestion{}, ErrSuggestionUnavailable
	}

	s := Suggestion{AssetID: asset.ID, Raw: strings.TrimSpace(raw)}
	if matched, ok := entities.ParseAssetStatus(s.Raw); ok {
		s.Matched = &matched
	}
	return s, nil
}

func historyLines(history []entities.HistoryEntry) []string {
	lines := make([]string, 0, len(history))
	for _, entry := range history {
		lines = append(lines, fmt.Sprintf("%s (%s)", entry.Status, entry.Date))
	}
	return lines
}
