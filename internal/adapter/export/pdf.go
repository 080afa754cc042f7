package export

import (
	"fmt"
	"io"

	"assettrack/internal/usecase"

	"github.com/jung-kurt/gofpdf"
)

// WriteReportPDF renders the asset report as an A4 portrait PDF: one section
// per room with a header line and a code/name/date/status table, mirroring
// the reports page layout.
func WriteReportPDF(w io.Writer, report []usecase.RoomReport) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Asset report", true)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, "Asset report", "", 1, "L", false, 0, "")
	pdf.Ln(2)

	colWidths := []float64{45, 60, 35, 40}
	headers := []string{"Code", "Name", "Date added", "Status"}

	for _, rr := range report {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.CellFormat(0, 8, fmt.Sprintf("%s (%d assets) - %s", rr.Room.Name, len(rr.Assets), rr.Room.Manager), "", 1, "L", false, 0, "")

		pdf.SetFont("Helvetica", "B", 10)
		for i, h := range headers {
			pdf.CellFormat(colWidths[i], 7, h, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)

		pdf.SetFont("Helvetica", "", 10)
		if len(rr.Assets) == 0 {
			pdf.CellFormat(sum(colWidths), 7, "No assets in this room.", "1", 1, "C", false, 0, "")
		}
		for _, asset := range rr.Assets {
			pdf.CellFormat(colWidths[0], 7, asset.Code, "1", 0, "L", false, 0, "")
			pdf.CellFormat(colWidths[1], 7, asset.Name, "1", 0, "L", false, 0, "")
			pdf.CellFormat(colWidths[2], 7, asset.DateAdded, "1", 0, "L", false, 0, "")
			pdf.CellFormat(colWidths[3], 7, asset.Status.Label(), "1", 0, "L", false, 0, "")
			pdf.Ln(-1)
		}
		pdf.Ln(4)
	}

	return pdf.Output(w)
}

func sum(widths []float64) float64 {
	total := 0.0
	for _, w := range widths {
		total += w
	}
	return total
}
