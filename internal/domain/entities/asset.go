package entities

import (
	"fmt"
	"strings"
	"unicode"
)

// AssetStatus is the lifecycle state of a tracked asset.
//
// Domain notes:
//   - Closed set; the four values below are the only canonical statuses.
//   - The status graph is fully connected: any status may follow any other,
//     so a mistaken "disposed" can be corrected back to "in-use".
//   - Disposal is a status, never a deletion.

type AssetStatus string

const (
	AssetStatusInUse     AssetStatus = "in-use"
	AssetStatusBroken    AssetStatus = "broken"
	AssetStatusRepairing AssetStatus = "repairing"
	AssetStatusDisposed  AssetStatus = "disposed"
)

// ParseAssetStatus maps free text onto a canonical status. The suggestion
// gateway returns raw model output, so this is the required validation step
// before a suggestion can become a real status transition.
func ParseAssetStatus(s string) (AssetStatus, bool) {
	switch AssetStatus(strings.ToLower(strings.TrimSpace(s))) {
	case AssetStatusInUse:
		return AssetStatusInUse, true
	case AssetStatusBroken:
		return AssetStatusBroken, true
	case AssetStatusRepairing:
		return AssetStatusRepairing, true
	case AssetStatusDisposed:
		return AssetStatusDisposed, true
	}
	// Tolerate the spaced spelling the model tends to produce.
	if strings.EqualFold(strings.TrimSpace(s), "in use") {
		return AssetStatusInUse, true
	}
	return "", false
}

// Label returns the human-readable form used on reports.
func (s AssetStatus) Label() string {
	switch s {
	case AssetStatusInUse:
		return "In use"
	case AssetStatusBroken:
		return "Broken"
	case AssetStatusRepairing:
		return "Repairing"
	case AssetStatusDisposed:
		return "Disposed"
	default:
		return string(s)
	}
}

// HistoryEntry is an immutable {status, date} record appended on every status
// change. Dates are calendar dates (YYYY-MM-DD), not timestamps.
type HistoryEntry struct {
	Status AssetStatus `json:"status"`
	Date   string      `json:"date"`
}

// Asset is a tracked physical item persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id (uuid)
//   - GSI room_id-index: room_id (room listing + cascade delete sweep)
//   - Code is the human-readable label ("OFFICE-CHAIR-0003"); the sequence inside it
//     is allocated from a per-name counter item so that concurrent batches
//     never collide.
//
// Invariants:
//   - History is never empty; the first entry is written at creation.
//   - History is append-only, and its last entry always matches Status.
//   - Moving an asset changes RoomID only; history records state, not place.
type Asset struct {
	ID        string         `json:"id"`
	Code      string         `json:"code"`
	Name      string         `json:"name"`
	RoomID    string         `json:"roomId"`
	Status    AssetStatus    `json:"status"`
	DateAdded string         `json:"dateAdded"`
	History   []HistoryEntry `json:"history"`
}

// NormalizeAssetName is the counter scope key for an asset name: lower-cased
// with runs of whitespace collapsed. "Office  Chair" and "office chair" share
// one sequence.
func NormalizeAssetName(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), " "))
}

// AssetCode builds the human-readable code for the given name and sequence
// number, e.g. AssetCode("office chair", 3) == "OFFICE-CHAIR-0003".
func AssetCode(name string, seq int) string {
	return fmt.Sprintf("%s-%04d", codePrefix(name), seq)
}

// codePrefix is the upper-cased full name with non-alphanumeric runes dropped
// and words joined by hyphens. The prefix and the counter scope key
// (NormalizeAssetName) derive from the same words, so distinct names never
// share a code.
func codePrefix(name string) string {
	words := make([]string, 0, 4)
	for _, field := range strings.Fields(name) {
		var b strings.Builder
		for _, r := range field {
			if unicode.IsLetter(r) || unicode.IsDigit(r) {
				b.WriteRune(unicode.ToUpper(r))
			}
		}
		if b.Len() > 0 {
			words = append(words, b.String())
		}
	}
	if len(words) == 0 {
		return "ASSET"
	}
	return strings.Join(words, "-")
}
