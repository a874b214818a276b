package chat

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/ziadkadry99/campusbot/internal/responder"
)

// maxRequestBody caps POST /api/respond bodies.
const maxRequestBody = 1 << 20

// respondRequest is the body of POST /api/respond.
type respondRequest struct {
	Utterance string `json:"utterance"`
}

// respondResponse is the JSON response for POST /api/respond.
type respondResponse struct {
	ID       string             `json:"id"`
	Reply    string             `json:"reply"`
	Category responder.Category `json:"category"`
	Facility string             `json:"facility,omitempty"`
}

// facilityResponse is one entry of GET /api/facilities.
type facilityResponse struct {
	Key      string   `json:"key"`
	Name     string   `json:"name"`
	Aliases  []string `json:"aliases,omitempty"`
	Location string   `json:"location,omitempty"`
	Hours    string   `json:"hours,omitempty"`
}

func (c *Chat) handleRespond(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBody)

	var req respondRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	m := c.resp.Match(req.Utterance)
	c.logger.Debug("respond", "category", m.Category, "facility", m.Facility)

	writeJSON(w, http.StatusOK, respondResponse{
		ID:       uuid.NewString(),
		Reply:    m.Reply,
		Category: m.Category,
		Facility: m.Facility,
	})
}

func (c *Chat) handleAgentName(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"name": c.agentName()})
}

func (c *Chat) handleFacilities(w http.ResponseWriter, r *http.Request) {
	facilities := c.resp.Knowledge().Facilities()
	out := make([]facilityResponse, 0, len(facilities))
	for _, f := range facilities {
		out = append(out, facilityResponse{
			Key:      f.Key,
			Name:     f.DisplayName(),
			Aliases:  f.Aliases,
			Location: f.Location,
			Hours:    f.Hours,
		})
	}
	writeJSON(w, http.StatusOK, out)
}

// agentName is the configured name, or a fresh random one.
func (c *Chat) agentName() string {
	if c.opts.AgentName != "" {
		return c.opts.AgentName
	}
	return c.resp.AgentName()
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
