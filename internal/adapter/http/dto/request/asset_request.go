package request

// AllocateAssetsRequest asks for a batch of identically-named assets in a
// room. Quantity validation (>= 1, transaction cap) lives in the use case.
type AllocateAssetsRequest struct {
	Name     string `json:"name" binding:"required"`
	Quantity int    `json:"quantity" binding:"required"`
}

// UpdateAssetStatusRequest carries the new status as free text; the use case
// rejects anything outside the canonical set.
type UpdateAssetStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// MoveAssetRequest names the destination room.
type MoveAssetRequest struct {
	RoomID string `json:"room_id" binding:"required"`
}

// SuggestStatusRequest carries optional free-text condition notes for the
// suggestion prompt.
type SuggestStatusRequest struct {
	Notes string `json:"notes"`
}
