package e2e

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/suite"
)

type testChatFlowSuite struct {
	BaseHTTPSuite
}

func TestChatFlowSuite(t *testing.T) {
	suite.Run(t, &testChatFlowSuite{})
}

// TestFullChatFlow drives the whole surface against a live server: two fresh
// accounts, a shared personal chat, a realtime exchange over the websocket
// and the persisted log read back over REST.
func (s *testChatFlowSuite) TestFullChatFlow() {
	// Unique per run so the suite can be replayed against the same instance
	run := uuid.New().String()[:8]
	alice := "alice-" + run
	bob := "bob-" + run

	var aliceID, bobID, chatID string

	s.Run("Step 1: Register both users", func() {
		s.Step("Registering " + alice + " and " + bob)

		body := s.PostJSON("/register", map[string]string{
			"email": alice + "@example.com", "username": alice, "password": "pw1",
		}, 201)
		aliceID, _ = body["user_id"].(string)
		s.Require().NotEmpty(aliceID)

		body = s.PostJSON("/register", map[string]string{
			"email": bob + "@example.com", "username": bob, "password": "pw1",
		}, 201)
		bobID, _ = body["user_id"].(string)
		s.Require().NotEmpty(bobID)

		// Re-registering the same address is rejected
		body = s.PostJSON("/register", map[string]string{
			"email": alice + "@example.com", "username": alice + "-again", "password": "pw1",
		}, 400)
		s.Require().Equal("Email already registered", body["error"])
	})

	s.Run("Step 2: Login returns the user id", func() {
		s.Step("Logging in as " + alice)

		body := s.PostJSON("/login", map[string]string{
			"username": alice, "password": "pw1",
		}, 200)
		s.Require().Equal(aliceID, body["user_id"])
		s.Require().NotEmpty(body["token"])

		body = s.PostJSON("/login", map[string]string{
			"username": alice, "password": "wrong",
		}, 401)
		s.Require().Equal("Invalid credentials", body["error"])
	})

	s.Run("Step 3: Create the personal chat", func() {
		s.Step("Creating chat between " + alice + " and " + bob)

		body := s.PostJSON("/create_personal_chat", map[string]string{
			"user_id": aliceID, "participant_id": bobID,
		}, 201)
		chat := body["chat"].(map[string]any)
		chatID, _ = chat["id"].(string)
		s.Require().NotEmpty(chatID)
		s.Require().Equal(bob, chat["name"])

		// Doing it again, reversed, reuses the same chat
		body = s.PostJSON("/create_personal_chat", map[string]string{
			"user_id": bobID, "participant_id": aliceID,
		}, 200)
		s.Require().Equal("Chat already exists", body["message"])
		s.Require().Equal(chatID, body["chat"].(map[string]any)["id"])
	})

	s.Run("Step 4: Realtime join and message exchange", func() {
		s.Step("Joining chat " + chatID + " over websocket")

		aliceWS := s.Dial()
		defer aliceWS.Close()
		bobWS := s.Dial()
		defer bobWS.Close()

		s.Require().NoError(aliceWS.WriteJSON(map[string]string{
			"type": "join_chat", "chat_id": chatID,
		}))
		frame := s.ReadFrame(aliceWS)
		s.Require().Equal("status", frame["type"])
		s.Require().Equal(fmt.Sprintf("Joined chat %s", chatID), frame["message"])

		s.Require().NoError(bobWS.WriteJSON(map[string]string{
			"type": "join_chat", "chat_id": chatID,
		}))
		s.Require().Equal("status", s.ReadFrame(bobWS)["type"])
		// The earlier member sees the newcomer's join announce too
		s.Require().Equal("status", s.ReadFrame(aliceWS)["type"])

		s.Step("Sending a message as " + alice)
		s.Require().NoError(aliceWS.WriteJSON(map[string]string{
			"type": "send_message", "chat_id": chatID, "user_id": aliceID, "text": "hello bob",
		}))

		// Everyone in the room, sender included, receives the echo
		for _, conn := range []*websocket.Conn{aliceWS, bobWS} {
			frame := s.ReadFrame(conn)
			s.Require().Equal("receive_message", frame["type"])
			s.Require().Equal("hello bob", frame["text"])
			s.Require().Equal(alice, frame["username"])
		}

		s.Step("Sending with an unknown sender fails")
		s.Require().NoError(aliceWS.WriteJSON(map[string]string{
			"type": "send_message", "chat_id": chatID, "user_id": "ghost", "text": "boo",
		}))
		frame = s.ReadFrame(aliceWS)
		s.Require().Equal("error", frame["type"])
		s.Require().Equal("Invalid user or chat", frame["message"])
	})

	s.Run("Step 5: Persisted log is readable over REST", func() {
		s.Step("Fetching messages of chat " + chatID)

		messages := s.GetJSONList("/get_messages/"+chatID, 200)
		s.Require().Len(messages, 1)
		s.Require().Equal("hello bob", messages[0]["content"])
		s.Require().Equal(aliceID, messages[0]["sender_id"])
	})

	s.Run("Step 6: Chat listing and profile", func() {
		s.Step("Listing chats of " + alice)

		chats := s.GetJSONList("/get_chats/"+aliceID, 200)
		s.Require().Len(chats, 1)
		s.Require().Equal(chatID, chats[0]["id"])

		profile := s.GetJSON("/get_user_profile/"+bobID, 200)
		s.Require().Equal(bob, profile["username"])
	})

	s.Run("Step 7: User search finds the fresh accounts", func() {
		s.Step("Searching for " + run)

		users := s.GetJSONList("/search_users?username="+run, 200)
		s.Require().GreaterOrEqual(len(users), 2)
	})
}
