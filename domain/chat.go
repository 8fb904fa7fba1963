package domain

// RoomID identifies the broadcast room of a chat. Rooms are keyed by the
// chat identifier.
type RoomID string

// Chat groups participants around a shared message log.
// A personal chat has IsGroup=false and exactly two participants; at most one
// personal chat exists per unordered participant pair.
type Chat struct {
	ID           string
	Name         string
	IsGroup      bool
	Participants []string // user ids, non-empty after creation
}

func (c Chat) Room() RoomID {
	return RoomID(c.ID)
}

// HasParticipant reports whether the given user belongs to the chat.
func (c Chat) HasParticipant(userID string) bool {
	for _, id := range c.Participants {
		if id == userID {
			return true
		}
	}
	return false
}

// ChatSummary is the payload shape returned by the chat listing operations.
type ChatSummary struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	IsGroup      bool          `json:"is_group"`
	Participants []UserSummary `json:"participants"`
}
