package export

import (
	"encoding/csv"
	"io"

	"assettrack/internal/usecase"
)

var csvHeader = []string{"room", "room_manager", "asset_code", "asset_name", "date_added", "status"}

// WriteReportCSV renders the per-room asset report as CSV, one row per asset.
// Rooms without assets contribute no rows.
func WriteReportCSV(w io.Writer, report []usecase.RoomReport) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, rr := range report {
		for _, asset := range rr.Assets {
			row := []string{
				rr.Room.Name,
				rr.Room.Manager,
				asset.Code,
				asset.Name,
				asset.DateAdded,
				asset.Status.Label(),
			}
			if err := cw.Write(row); err != nil {
				return err
			}
		}
	}
	cw.Flush()
	return cw.Error()
}
