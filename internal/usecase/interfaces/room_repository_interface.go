package interfaces

import (
	"context"

	"assettrack/internal/domain/entities"
)

// IRoomRepository abstracts DynamoDB persistence for Room.
//
// Read methods return a zero-value Room (empty ID) for a missing record; the
// use case layer converts that into its not-found sentinel.

type IRoomRepository interface {
	List(ctx context.Context) ([]entities.Room, error)
	GetByID(ctx context.Context, id string) (entities.Room, error)
	Create(ctx context.Context, room entities.Room) (entities.Room, error)
	Update(ctx context.Context, room entities.Room) (entities.Room, error)
	// Delete removes the room record. It reports false when the room did not
	// exist, which keeps a repeated delete a no-op rather than an error.
	Delete(ctx context.Context, id string) (bool, error)
}
