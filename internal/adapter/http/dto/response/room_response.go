package response

import "assettrack/internal/domain/entities"

type RoomResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Manager string `json:"manager"`
}

func FromRoom(r entities.Room) RoomResponse {
	return RoomResponse{ID: r.ID, Name: r.Name, Manager: r.Manager}
}

func FromRooms(rooms []entities.Room) []RoomResponse {
	out := make([]RoomResponse, 0, len(rooms))
	for _, r := range rooms {
		out = append(out, FromRoom(r))
	}
	return out
}
