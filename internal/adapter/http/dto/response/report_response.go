package response

import "assettrack/internal/usecase"

type RoomReportResponse struct {
	Room       RoomResponse    `json:"room"`
	AssetCount int             `json:"asset_count"`
	Assets     []AssetResponse `json:"assets"`
}

type ReportResponse struct {
	Rooms []RoomReportResponse `json:"rooms"`
}

func FromReport(report []usecase.RoomReport) ReportResponse {
	rooms := make([]RoomReportResponse, 0, len(report))
	for _, rr := range report {
		rooms = append(rooms, RoomReportResponse{
			Room:       FromRoom(rr.Room),
			AssetCount: len(rr.Assets),
			Assets:     FromAssets(rr.Assets),
		})
	}
	return ReportResponse{Rooms: rooms}
}
