package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"assettrack/internal/domain/entities"
	"assettrack/internal/usecase/interfaces"

	"github.com/google/uuid"
)

const (
	// DynamoDB caps TransactWriteItems at 100 items; one slot is spent on the
	// counter bump.
	maxAllocationQuantity = 99

	allocationAttempts = 3
	allocationBackoff  = 50 * time.Millisecond
)

var (
	ErrAssetNotFound      = errors.New("asset not found")
	ErrInvalidAssetID     = errors.New("invalid asset id")
	ErrInvalidAssetName   = errors.New("invalid asset name")
	ErrInvalidQuantity    = errors.New("invalid quantity")
	ErrInvalidStatus      = errors.New("invalid asset status")
	ErrInvalidTargetRoom  = errors.New("target room not found")
	ErrAllocationConflict = errors.New("asset allocation conflict")
)

// IAssetUseCase exposes asset operations.
//
// Allocate is the only way assets come into existence; creating them in
// batches against a per-name counter keeps code numbering contiguous. Assets
// are never deleted individually (disposal is a status).

type IAssetUseCase interface {
	GetByID(ctx context.Context, id string) (entities.Asset, error)
	ListByRoomID(ctx context.Context, roomID string) ([]entities.Asset, error)
	Allocate(ctx context.Context, roomID, name string, quantity int) ([]entities.Asset, error)
	UpdateStatus(ctx context.Context, id string, status string) (entities.Asset, error)
	Move(ctx context.Context, id, roomID string) (entities.Asset, error)
}

type AssetUseCase struct {
	repo     interfaces.IAssetRepository
	roomRepo interfaces.IRoomRepository
	now      func() time.Time
}

var _ IAssetUseCase = (*AssetUseCase)(nil)

func NewAssetUseCase(repo interfaces.IAssetRepository, roomRepo interfaces.IRoomRepository) *AssetUseCase {
	return &AssetUseCase{repo: repo, roomRepo: roomRepo, now: time.Now}
}

func (u *AssetUseCase) GetByID(ctx context.Context, id string) (entities.Asset, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Asset{}, ErrInvalidAssetID
	}

	asset, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Asset{}, err
	}
	if asset.ID == "" {
		return entities.Asset{}, ErrAssetNotFound
	}
	return asset, nil
}

func (u *AssetUseCase) ListByRoomID(ctx context.Context, roomID string) ([]entities.Asset, error) {
	roomID = strings.TrimSpace(roomID)
	if roomID == "" {
		return nil, ErrInvalidRoomID
	}

	room, err := u.roomRepo.GetByID(ctx, roomID)
	if err != nil {
		return nil, err
	}
	if room.ID == "" {
		return nil, ErrRoomNotFound
	}
	return u.repo.ListByRoomID(ctx, roomID)
}

// Allocate creates quantity new assets named name inside roomID, with codes
// numbered from the per-name counter. The counter read and the batch write
// run as one transaction; a concurrent allocation for the same name cancels
// it and the call retries from a fresh read, so sequence ranges never
// overlap and aborted batches leave nothing behind.
func (u *AssetUseCase) Allocate(ctx context.Context, roomID, name string, quantity int) ([]entities.Asset, error) {
	roomID = strings.TrimSpace(roomID)
	if roomID == "" {
		return nil, ErrInvalidRoomID
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrInvalidAssetName
	}
	if quantity < 1 || quantity > maxAllocationQuantity {
		return nil, ErrInvalidQuantity
	}

	room, err := u.roomRepo.GetByID(ctx, roomID)
	if err != nil {
		return nil, err
	}
	if room.ID == "" {
		return nil, ErrRoomNotFound
	}

	today := u.today()
	for attempt := 1; attempt <= allocationAttempts; attempt++ {
		lastSeq, err := u.repo.CurrentSequence(ctx, name)
		if err != nil {
			return nil, err
		}

		assets := make([]entities.Asset, 0, quantity)
		for i := 1; i <= quantity; i++ {
			assets = append(assets, entities.Asset{
				ID:        uuid.NewString(),
				Code:      entities.AssetCode(name, lastSeq+i),
				Name:      name,
				RoomID:    roomID,
				Status:    entities.AssetStatusInUse,
				DateAdded: today,
				History:   []entities.HistoryEntry{{Status: entities.AssetStatusInUse, Date: today}},
			})
		}

		created, err := u.repo.CreateBatch(ctx, name, lastSeq, assets)
		if err == nil {
			return created, nil
		}
		if !errors.Is(err, interfaces.ErrSequenceConflict) {
			return nil, err
		}

		log.Printf("[asset][usecase] allocation conflict name=%q attempt=%d", name, attempt)
		if attempt < allocationAttempts {
			select {
			case <-time.After(allocationBackoff * time.Duration(attempt)):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}
	}
	return nil, ErrAllocationConflict
}

// UpdateStatus appends a dated history entry and sets the live status in one
// write, so racing updates both land in the store's serial order and the last
// history entry always matches the status field.
func (u *AssetUseCase) UpdateStatus(ctx context.Context, id string, status string) (entities.Asset, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Asset{}, ErrInvalidAssetID
	}
	parsed, ok := entities.ParseAssetStatus(status)
	if !ok {
		return entities.Asset{}, ErrInvalidStatus
	}

	entry := entities.HistoryEntry{Status: parsed, Date: u.today()}
	updated, err := u.repo.AppendStatus(ctx, id, parsed, entry)
	if err != nil {
		return entities.Asset{}, err
	}
	if updated.ID == "" {
		return entities.Asset{}, ErrAssetNotFound
	}
	return updated, nil
}

// Move reassigns the asset to roomID. A move is not a status change, so the
// history is deliberately left untouched.
func (u *AssetUseCase) Move(ctx context.Context, id, roomID string) (entities.Asset, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Asset{}, ErrInvalidAssetID
	}
	roomID = strings.TrimSpace(roomID)
	if roomID == "" {
		return entities.Asset{}, ErrInvalidTargetRoom
	}

	asset, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Asset{}, err
	}
	if asset.ID == "" {
		return entities.Asset{}, ErrAssetNotFound
	}

	room, err := u.roomRepo.GetByID(ctx, roomID)
	if err != nil {
		return entities.Asset{}, err
	}
	if room.ID == "" {
		return entities.Asset{}, ErrInvalidTargetRoom
	}

	updated, err := u.repo.UpdateRoom(ctx, id, roomID)
	if err != nil {
		return entities.Asset{}, err
	}
	if updated.ID == "" {
		return entities.Asset{}, ErrAssetNotFound
	}
	return updated, nil
}

func (u *AssetUseCase) today() string {
	return u.now().UTC().Format("2006-01-02")
}
