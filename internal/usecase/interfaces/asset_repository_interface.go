package interfaces

import (
	"context"
	"errors"

	"assettrack/internal/domain/entities"
)

// ErrSequenceConflict is returned by CreateBatch when the per-name sequence
// counter moved between the caller's CurrentSequence read and the transaction
// commit. Nothing was written; the caller may re-read and retry.
var ErrSequenceConflict = errors.New("asset sequence counter conflict")

// IAssetRepository abstracts DynamoDB persistence for Asset, including the
// counter items that back code allocation.
//
// Mutating methods on a single asset return a zero-value Asset (empty ID)
// when the asset does not exist.

type IAssetRepository interface {
	GetByID(ctx context.Context, id string) (entities.Asset, error)
	ListByRoomID(ctx context.Context, roomID string) ([]entities.Asset, error)
	ListAll(ctx context.Context) ([]entities.Asset, error)

	// CurrentSequence reads the last allocated sequence number for the asset
	// name scope (0 when nothing was ever allocated for it).
	CurrentSequence(ctx context.Context, name string) (int, error)
	// CreateBatch writes the counter bump and every asset in one atomic
	// transaction, conditioned on the counter still holding lastSeq. Partial
	// batches are never visible.
	CreateBatch(ctx context.Context, name string, lastSeq int, assets []entities.Asset) ([]entities.Asset, error)

	// AppendStatus sets the live status and appends the history entry in a
	// single write, letting the store serialize concurrent appends.
	AppendStatus(ctx context.Context, id string, status entities.AssetStatus, entry entities.HistoryEntry) (entities.Asset, error)
	// UpdateRoom reassigns the asset's room and touches nothing else.
	UpdateRoom(ctx context.Context, id string, roomID string) (entities.Asset, error)

	// DeleteByRoomID sweeps every asset of a deleted room and reports how
	// many records were removed.
	DeleteByRoomID(ctx context.Context, roomID string) (int, error)
}
