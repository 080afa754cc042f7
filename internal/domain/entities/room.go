package entities

// Room is a physical location that owns zero or more assets.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Deleting a room cascades to every asset whose room_id points at it; the
// sweep runs outside the room delete itself (see the asset repository).
type Room struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Manager string `json:"manager"`
}
