package request

// RoomRequest is the payload for creating or updating a room.
type RoomRequest struct {
	Name    string `json:"name" binding:"required"`
	Manager string `json:"manager" binding:"required"`
}
