package domain

// Command is an intent addressed to a single chat room.
type Command interface {
	Room() RoomID
}

// SendMessageCommand carries a client intent to post text into a chat.
type SendMessageCommand struct {
	ChatID   string
	SenderID string
	Text     string
}

func (c SendMessageCommand) Room() RoomID {
	return RoomID(c.ChatID)
}

// JoinChatCommand subscribes the issuing session to a chat room.
type JoinChatCommand struct {
	ChatID string
}

func (c JoinChatCommand) Room() RoomID {
	return RoomID(c.ChatID)
}
