package response

import "assettrack/internal/domain/entities"

type HistoryEntryResponse struct {
	Status string `json:"status"`
	Date   string `json:"date"`
}

type AssetResponse struct {
	ID          string                 `json:"id"`
	Code        string                 `json:"code"`
	Name        string                 `json:"name"`
	RoomID      string                 `json:"room_id"`
	Status      string                 `json:"status"`
	StatusLabel string                 `json:"status_label"`
	DateAdded   string                 `json:"date_added"`
	History     []HistoryEntryResponse `json:"history"`
}

func FromAsset(a entities.Asset) AssetResponse {
	history := make([]HistoryEntryResponse, 0, len(a.History))
	for _, entry := range a.History {
		history = append(history, HistoryEntryResponse{Status: string(entry.Status), Date: entry.Date})
	}
	return AssetResponse{
		ID:          a.ID,
		Code:        a.Code,
		Name:        a.Name,
		RoomID:      a.RoomID,
		Status:      string(a.Status),
		StatusLabel: a.Status.Label(),
		DateAdded:   a.DateAdded,
		History:     history,
	}
}

func FromAssets(assets []entities.Asset) []AssetResponse {
	out := make([]AssetResponse, 0, len(assets))
	for _, a := range assets {
		out = append(out, FromAsset(a))
	}
	return out
}
