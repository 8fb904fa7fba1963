package e2e

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gookit/color"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/suite"
)

type BaseHTTPSuite struct {
	suite.Suite
	Config Config
	client *http.Client
}

// SetupSuite loads the environment configuration before running tests.
// Without a SERVER_ADDR the whole suite is skipped.
func (s *BaseHTTPSuite) SetupSuite() {
	var err error
	s.Config, err = LoadConfig()
	s.Require().NoError(err)

	if s.Config.ServerAddr == "" {
		s.T().Skip("SERVER_ADDR not set, skipping e2e suite")
	}
	s.client = &http.Client{Timeout: 10 * time.Second}
}

// Step prints a colorized header so each scenario stage stands out in logs.
func (s *BaseHTTPSuite) Step(name string) {
	header := fmt.Sprintf("  ====== %s ======", name)
	if s.Config.Colours {
		header = color.New(color.BgBlack, color.FgGreen).Render(header)
	}
	s.T().Log(header)
}

// PostJSON sends a JSON body and decodes the JSON response, asserting the
// expected status code.
func (s *BaseHTTPSuite) PostJSON(path string, payload any, wantStatus int) map[string]any {
	body, err := json.Marshal(payload)
	s.Require().NoError(err)

	resp, err := s.client.Post(s.url(path), "application/json", bytes.NewReader(body))
	s.Require().NoError(err)
	return s.decode(path, resp, wantStatus)
}

// GetJSON fetches a path and decodes the JSON object response.
func (s *BaseHTTPSuite) GetJSON(path string, wantStatus int) map[string]any {
	resp, err := s.client.Get(s.url(path))
	s.Require().NoError(err)
	return s.decode(path, resp, wantStatus)
}

// GetJSONList fetches a path whose response is a JSON array.
func (s *BaseHTTPSuite) GetJSONList(path string, wantStatus int) []map[string]any {
	resp, err := s.client.Get(s.url(path))
	s.Require().NoError(err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	s.Require().NoError(err)
	s.logBody(path, resp.StatusCode, raw)
	s.Require().Equal(wantStatus, resp.StatusCode, "unexpected status for %s: %s", path, raw)

	var body []map[string]any
	s.Require().NoError(json.Unmarshal(raw, &body))
	return body
}

// Dial opens a websocket session against the server's /ws endpoint.
func (s *BaseHTTPSuite) Dial() *websocket.Conn {
	url := "ws://" + s.Config.ServerAddr + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	s.Require().NoError(err, "Failed to connect to websocket at "+url)
	return conn
}

// ReadFrame reads one websocket frame with a deadline.
func (s *BaseHTTPSuite) ReadFrame(conn *websocket.Conn) map[string]any {
	s.Require().NoError(conn.SetReadDeadline(time.Now().Add(5 * time.Second)))
	_, raw, err := conn.ReadMessage()
	s.Require().NoError(err)

	if s.Config.DebugJSON {
		s.T().Log("WS <- " + string(raw))
	}

	var frame map[string]any
	s.Require().NoError(json.Unmarshal(raw, &frame))
	return frame
}

func (s *BaseHTTPSuite) url(path string) string {
	return "http://" + s.Config.ServerAddr + "/" + strings.TrimPrefix(path, "/")
}

func (s *BaseHTTPSuite) decode(path string, resp *http.Response, wantStatus int) map[string]any {
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	s.Require().NoError(err)
	s.logBody(path, resp.StatusCode, raw)
	s.Require().Equal(wantStatus, resp.StatusCode, "unexpected status for %s: %s", path, raw)

	var body map[string]any
	s.Require().NoError(json.Unmarshal(raw, &body))
	return body
}

func (s *BaseHTTPSuite) logBody(path string, status int, raw []byte) {
	if !s.Config.DebugJSON {
		return
	}
	s.T().Logf("HTTP %s [%d]\n%s", path, status, raw)
}
