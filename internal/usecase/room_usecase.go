package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"unicode/utf8"

	"assettrack/internal/domain/entities"
	"assettrack/internal/usecase/interfaces"

	"github.com/google/uuid"
)

const minRoomFieldLength = 3

var (
	ErrRoomNotFound       = errors.New("room not found")
	ErrInvalidRoomID      = errors.New("invalid room id")
	ErrInvalidRoomName    = errors.New("invalid room name")
	ErrInvalidRoomManager = errors.New("invalid room manager")
)

// IRoomUseCase exposes room operations.
//
// Delete cascades to the room's assets: the room record goes first, then the
// asset sweep. A second delete of the same room reports not-found instead of
// failing, and never touches other rooms' assets.

type IRoomUseCase interface {
	List(ctx context.Context) ([]entities.Room, error)
	GetByID(ctx context.Context, id string) (entities.Room, error)
	Create(ctx context.Context, name, manager string) (entities.Room, error)
	Update(ctx context.Context, id, name, manager string) (entities.Room, error)
	Delete(ctx context.Context, id string) error
}

type RoomUseCase struct {
	repo      interfaces.IRoomRepository
	assetRepo interfaces.IAssetRepository
}

var _ IRoomUseCase = (*RoomUseCase)(nil)

func NewRoomUseCase(repo interfaces.IRoomRepository, assetRepo interfaces.IAssetRepository) *RoomUseCase {
	return &RoomUseCase{repo: repo, assetRepo: assetRepo}
}

func (u *RoomUseCase) List(ctx context.Context) ([]entities.Room, error) {
	return u.repo.List(ctx)
}

func (u *RoomUseCase) GetByID(ctx context.Context, id string) (entities.Room, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Room{}, ErrInvalidRoomID
	}

	room, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Room{}, err
	}
	if room.ID == "" {
		return entities.Room{}, ErrRoomNotFound
	}
	return room, nil
}

func (u *RoomUseCase) Create(ctx context.Context, name, manager string) (entities.Room, error) {
	name, manager = strings.TrimSpace(name), strings.TrimSpace(manager)
	if err := validateRoomFields(name, manager); err != nil {
		return entities.Room{}, err
	}

	room := entities.Room{
		ID:      uuid.NewString(),
		Name:    name,
		Manager: manager,
	}
	return u.repo.Create(ctx, room)
}

func (u *RoomUseCase) Update(ctx context.Context, id, name, manager string) (entities.Room, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Room{}, ErrInvalidRoomID
	}
	name, manager = strings.TrimSpace(name), strings.TrimSpace(manager)
	if err := validateRoomFields(name, manager); err != nil {
		return entities.Room{}, err
	}

	updated, err := u.repo.Update(ctx, entities.Room{ID: id, Name: name, Manager: manager})
	if err != nil {
		return entities.Room{}, err
	}
	if updated.ID == "" {
		return entities.Room{}, ErrRoomNotFound
	}
	return updated, nil
}

func (u *RoomUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidRoomID
	}

	found, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return ErrRoomNotFound
	}

	// Room record is gone; sweep its assets. The sweep retries partial
	// failures internally and is safe to re-run.
	removed, err := u.assetRepo.DeleteByRoomID(ctx, id)
	if err != nil {
		log.Printf("[room][usecase] cascade sweep failed room_id=%s err=%v", id, err)
		return err
	}
	log.Printf("[room][usecase] deleted room room_id=%s swept_assets=%d", id, removed)
	return nil
}

func validateRoomFields(name, manager string) error {
	if utf8.RuneCountInString(name) < minRoomFieldLength {
		return ErrInvalidRoomName
	}
	if utf8.RuneCountInString(manager) < minRoomFieldLength {
		return ErrInvalidRoomManager
	}
	return nil
}
