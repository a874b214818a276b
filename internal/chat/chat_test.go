package chat

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/ziadkadry99/campusbot/internal/responder"
	"github.com/ziadkadry99/campusbot/internal/session"
)

func setupTest(t *testing.T, opts session.Options) *Chat {
	t.Helper()

	resp, err := responder.New(nil, responder.WithChooser(responder.NewSequenceChooser(0)))
	if err != nil {
		t.Fatalf("creating responder: %v", err)
	}
	return New(resp, opts, nil)
}

func setupRouter(c *Chat) chi.Router {
	r := chi.NewRouter()
	c.RegisterRoutes(r)
	return r
}

func dial(t *testing.T, r http.Handler) *websocket.Conn {
	t.Helper()

	server := httptest.NewServer(r)
	t.Cleanup(server.Close)

	wsURL := "ws" + strings.TrimPrefix(server.URL, "http") + "/ws/chat"
	conn, resp, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("websocket dial: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if resp.StatusCode != http.StatusSwitchingProtocols {
		t.Fatalf("expected 101, got %d", resp.StatusCode)
	}
	return conn
}

func exchange(t *testing.T, conn *websocket.Conn, req interface{}) chatResponse {
	t.Helper()

	if err := conn.WriteJSON(req); err != nil {
		t.Fatalf("write: %v", err)
	}
	var resp chatResponse
	if err := conn.ReadJSON(&resp); err != nil {
		t.Fatalf("read: %v", err)
	}
	return resp
}

func TestRespondEndpoint(t *testing.T) {
	r := setupRouter(setupTest(t, session.Options{}))

	body := `{"utterance": "When does the library close?"}`
	req := httptest.NewRequest(http.MethodPost, "/api/respond", strings.NewReader(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp respondResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Reply != "The library is open from 9:00 AM to 6:00 PM." {
		t.Errorf("unexpected reply %q", resp.Reply)
	}
	if resp.Category != responder.CategoryFacilityHours {
		t.Errorf("expected category %q, got %q", responder.CategoryFacilityHours, resp.Category)
	}
	if resp.Facility != "library" {
		t.Errorf("expected facility library, got %q", resp.Facility)
	}
	if _, err := uuid.Parse(resp.ID); err != nil {
		t.Errorf("id %q is not a uuid: %v", resp.ID, err)
	}
}

func TestRespondEndpointFallback(t *testing.T) {
	r := setupRouter(setupTest(t, session.Options{}))

	req := httptest.NewRequest(http.MethodPost, "/api/respond", strings.NewReader(`{"utterance": ""}`))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp respondResponse
	json.NewDecoder(w.Body).Decode(&resp)
	if resp.Category != responder.CategoryFallback || resp.Reply == "" {
		t.Errorf("expected non-empty fallback, got %+v", resp)
	}
	if resp.Facility != "" {
		t.Errorf("fallback should carry no facility, got %q", resp.Facility)
	}
}

func TestRespondEndpointInvalidBody(t *testing.T) {
	r := setupRouter(setupTest(t, session.Options{}))

	for _, body := range []string{"not json", `{"utterance": 5}`, ""} {
		req := httptest.NewRequest(http.MethodPost, "/api/respond", strings.NewReader(body))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("body %q: expected 400, got %d", body, w.Code)
		}
	}
}

func TestRespondEndpointBodyTooLarge(t *testing.T) {
	r := setupRouter(setupTest(t, session.Options{}))

	body := `{"utterance": "` + strings.Repeat("a", maxRequestBody) + `"}`
	req := httptest.NewRequest(http.MethodPost, "/api/respond", bytes.NewBufferString(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestAgentNameEndpoint(t *testing.T) {
	tests := []struct {
		name string
		opts session.Options
		want string
	}{
		{"configured", session.Options{AgentName: "Casey"}, "Casey"},
		{"random", session.Options{}, responder.AgentNames[0]},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := setupRouter(setupTest(t, tt.opts))

			req := httptest.NewRequest(http.MethodGet, "/api/agent-name", nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			var resp map[string]string
			if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
				t.Fatalf("decoding: %v", err)
			}
			if resp["name"] != tt.want {
				t.Errorf("expected %q, got %q", tt.want, resp["name"])
			}
		})
	}
}

func TestFacilitiesEndpoint(t *testing.T) {
	c := setupTest(t, session.Options{})
	r := setupRouter(c)

	req := httptest.NewRequest(http.MethodGet, "/api/facilities", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var facilities []facilityResponse
	if err := json.NewDecoder(w.Body).Decode(&facilities); err != nil {
		t.Fatalf("decoding: %v", err)
	}
	if len(facilities) != c.resp.Knowledge().Len() {
		t.Fatalf("expected %d facilities, got %d", c.resp.Knowledge().Len(), len(facilities))
	}
	if facilities[0].Key != "library" || facilities[0].Hours == "" {
		t.Errorf("unexpected first facility: %+v", facilities[0])
	}
	if facilities[2].Name != "coffee shop" {
		t.Errorf("expected display name 'coffee shop', got %q", facilities[2].Name)
	}
}

func TestWebSocketStartAndMessage(t *testing.T) {
	conn := dial(t, setupRouter(setupTest(t, session.Options{AgentName: "Alex"})))

	welcome := exchange(t, conn, chatRequest{Type: "start", UserName: "Sam"})
	if welcome.Type != "welcome" {
		t.Fatalf("expected welcome, got %+v", welcome)
	}
	if welcome.Content != "Welcome Sam! I'm Alex, your personal assistant. How can I help you today?" {
		t.Errorf("unexpected welcome %q", welcome.Content)
	}
	if _, err := uuid.Parse(welcome.SessionID); err != nil {
		t.Errorf("session id %q is not a uuid", welcome.SessionID)
	}

	resp := exchange(t, conn, chatRequest{Type: "message", Content: "where is the gym?"})
	if resp.Type != "response" {
		t.Fatalf("expected response, got %+v", resp)
	}
	if resp.SessionID != welcome.SessionID {
		t.Errorf("session id changed within a connection: %q -> %q", welcome.SessionID, resp.SessionID)
	}
	if resp.Category != responder.CategoryFacilityLocation || resp.Facility != "gym" {
		t.Errorf("unexpected classification: %+v", resp)
	}
	if !strings.Contains(resp.Content, "gym") {
		t.Errorf("expected gym answer, got %q", resp.Content)
	}
}

func TestWebSocketStartOverridesAgent(t *testing.T) {
	conn := dial(t, setupRouter(setupTest(t, session.Options{AgentName: "Alex"})))

	welcome := exchange(t, conn, chatRequest{Type: "start", AgentName: "Jordan"})
	if welcome.AgentName != "Jordan" {
		t.Errorf("expected agent Jordan, got %q", welcome.AgentName)
	}
	if !strings.HasPrefix(welcome.Content, "Welcome Friend!") {
		t.Errorf("expected default user name, got %q", welcome.Content)
	}
}

func TestWebSocketMessageWithoutStart(t *testing.T) {
	conn := dial(t, setupRouter(setupTest(t, session.Options{})))

	resp := exchange(t, conn, chatRequest{Type: "message", Content: "hello"})
	if resp.Type != "response" {
		t.Fatalf("expected response, got %+v", resp)
	}
	if resp.Category != responder.CategoryGreeting {
		t.Errorf("expected greeting, got %q", resp.Category)
	}
}

func TestWebSocketGoodbyeCloses(t *testing.T) {
	conn := dial(t, setupRouter(setupTest(t, session.Options{})))

	exchange(t, conn, chatRequest{Type: "start", UserName: "Sam"})
	resp := exchange(t, conn, chatRequest{Type: "message", Content: "Okay bye"})

	if resp.Type != "goodbye" {
		t.Fatalf("expected goodbye, got %+v", resp)
	}
	if resp.Content != "Goodbye Sam! Have a great day!" {
		t.Errorf("unexpected goodbye %q", resp.Content)
	}

	_, _, err := conn.ReadMessage()
	if !websocket.IsCloseError(err, websocket.CloseNormalClosure) {
		t.Errorf("expected normal close after goodbye, got %v", err)
	}
}

func TestWebSocketCustomExitPhrase(t *testing.T) {
	conn := dial(t, setupRouter(setupTest(t, session.Options{ExitPhrases: []string{"later"}})))

	if resp := exchange(t, conn, chatRequest{Type: "message", Content: "bye"}); resp.Type != "response" {
		t.Errorf("'bye' should not end a session with custom exit phrases, got %q", resp.Type)
	}
	if resp := exchange(t, conn, chatRequest{Type: "message", Content: "later"}); resp.Type != "goodbye" {
		t.Errorf("expected goodbye for custom phrase, got %q", resp.Type)
	}
}

func TestWebSocketEmptyContent(t *testing.T) {
	conn := dial(t, setupRouter(setupTest(t, session.Options{})))

	resp := exchange(t, conn, chatRequest{Type: "message", Content: ""})
	if resp.Type != "error" {
		t.Errorf("expected error type, got %q", resp.Type)
	}
	if !strings.Contains(resp.Content, "content is required") {
		t.Errorf("expected content error, got %q", resp.Content)
	}
}

func TestWebSocketUnknownType(t *testing.T) {
	conn := dial(t, setupRouter(setupTest(t, session.Options{})))

	resp := exchange(t, conn, chatRequest{Type: "ask", Content: "hello"})
	if resp.Type != "error" {
		t.Errorf("expected error type, got %q", resp.Type)
	}
	if !strings.Contains(resp.Content, "unknown message type") {
		t.Errorf("expected unknown type error, got %q", resp.Content)
	}
}

func TestWebSocketMalformedJSON(t *testing.T) {
	conn := dial(t, setupRouter(setupTest(t, session.Options{})))

	if err := conn.WriteMessage(websocket.TextMessage, []byte("{nope")); err != nil {
		t.Fatalf("write: %v", err)
	}
	var resp chatResponse
	if err := conn.ReadJSON(&resp); err != nil {
		t.Fatalf("read: %v", err)
	}
	if resp.Type != "error" || resp.Content != "invalid message format" {
		t.Errorf("unexpected response %+v", resp)
	}

	// The connection stays usable after an error frame.
	if next := exchange(t, conn, chatRequest{Type: "message", Content: "thanks"}); next.Type != "response" {
		t.Errorf("expected response after error, got %+v", next)
	}
}

func TestServeIndex(t *testing.T) {
	r := setupRouter(setupTest(t, session.Options{}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); !strings.Contains(ct, "text/html") {
		t.Errorf("expected text/html content type, got %q", ct)
	}
	if !strings.Contains(w.Body.String(), "Campus Assistant") {
		t.Error("expected HTML to contain 'Campus Assistant'")
	}
}

func TestCheckOrigin(t *testing.T) {
	tests := []struct {
		name     string
		origin   string
		host     string
		allowAll bool
		want     bool
	}{
		{"no origin", "", "campus.example.edu", false, true},
		{"same host", "https://campus.example.edu", "campus.example.edu", false, true},
		{"localhost", "http://localhost:3000", "campus.example.edu", false, true},
		{"loopback", "http://127.0.0.1:5173", "127.0.0.1:8080", false, true},
		{"foreign site", "https://evil.example.com", "localhost:8080", false, false},
		{"foreign site allowed", "https://evil.example.com", "localhost:8080", true, true},
		{"bad origin", "://", "localhost:8080", false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := setupTest(t, session.Options{})
			c.AllowAllOrigins = tt.allowAll

			req := httptest.NewRequest(http.MethodGet, "/ws/chat", nil)
			req.Host = tt.host
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			if got := c.checkOrigin(req); got != tt.want {
				t.Errorf("checkOrigin(%q, host %q) = %v, want %v", tt.origin, tt.host, got, tt.want)
			}
		})
	}
}

func TestWebSocketRejectsForeignOrigin(t *testing.T) {
	server := httptest.NewServer(setupRouter(setupTest(t, session.Options{})))
	defer server.Close()

	wsURL := "ws" + strings.TrimPrefix(server.URL, "http") + "/ws/chat"
	header := http.Header{"Origin": []string{"https://evil.example.com"}}

	conn, resp, err := websocket.DefaultDialer.Dial(wsURL, header)
	if err == nil {
		conn.Close()
		t.Fatal("expected handshake to fail for a foreign origin")
	}
	if resp == nil || resp.StatusCode != http.StatusForbidden {
		t.Errorf("expected 403, got %v", resp)
	}

	header.Set("Origin", "http://localhost:3000")
	conn, _, err = websocket.DefaultDialer.Dial(wsURL, header)
	if err != nil {
		t.Fatalf("localhost origin should be accepted: %v", err)
	}
	conn.Close()
}
