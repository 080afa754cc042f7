package usecase

import (
	"context"

	"assettrack/internal/domain/entities"
	"assettrack/internal/usecase/interfaces"
)

// RoomReport is one room together with its assets, as shown on the reports
// page and in the CSV/PDF exports.
type RoomReport struct {
	Room   entities.Room
	Assets []entities.Asset
}

type IReportUseCase interface {
	Build(ctx context.Context) ([]RoomReport, error)
}

type ReportUseCase struct {
	roomRepo  interfaces.IRoomRepository
	assetRepo interfaces.IAssetRepository
}

var _ IReportUseCase = (*ReportUseCase)(nil)

func NewReportUseCase(roomRepo interfaces.IRoomRepository, assetRepo interfaces.IAssetRepository) *ReportUseCase {
	return &ReportUseCase{roomRepo: roomRepo, assetRepo: assetRepo}
}

// Build groups every asset under its room. Assets pointing at a room that no
// longer exists are stale references and are left out, matching the per-room
// grouping of the original report.
func (u *ReportUseCase) Build(ctx context.Context) ([]RoomReport, error) {
	rooms, err := u.roomRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	assets, err := u.assetRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	byRoom := make(map[string][]entities.Asset, len(rooms))
	for _, asset := range assets {
		byRoom[asset.RoomID] = append(byRoom[asset.RoomID], asset)
	}

	report := make([]RoomReport, 0, len(rooms))
	for _, room := range rooms {
		report = append(report, RoomReport{Room: room, Assets: byRoom[room.ID]})
	}
	return report, nil
}
