package dto

type CreateRoomRequest struct {
	MaxPlayers int    `json:"maxPlayers" binding:"required"`
	MaxRounds  int    `json:"maxRounds"`
	UserID     string `json:"userId" binding:"required"`
}

type CreateRoomResponse struct {
	RoomID string `json:"room_id"`
}

type DeleteRoomRequest struct {
	RoomID string `json:"roomId" binding:"required"`
}

type RoomPlayer struct {
	PlayerID string `json:"playerId"`
	Online   bool   `json:"online"`
}

type RoomInfo struct {
	RoomID     string       `json:"roomID"`
	UserID     string       `json:"userId"`
	MaxPlayers int          `json:"maxPlayers"`
	MaxRounds  int          `json:"maxRounds"`
	Started    bool         `json:"started"`
	RoomPlayer []RoomPlayer `json:"players"`
}

type GetRoomList struct {
	Rooms []RoomInfo `json:"rooms"`
}

type TokenRequest struct {
	UserID string `json:"userId" binding:"required"`
}

type TokenResponse struct {
	Token string `json:"token"`
}
