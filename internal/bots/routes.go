package bots

import "github.com/go-chi/chi/v5"

// RegisterRoutes mounts the Slack and Teams webhooks under /api/bots, both
// answering through gw. An empty signing secret disables Slack request
// verification.
func RegisterRoutes(r chi.Router, gw *Gateway, slackSigningSecret string) {
	r.Route("/api/bots", func(r chi.Router) {
		r.Post("/slack/events", NewSlackHandler(gw, slackSigningSecret).HandleEvent)
		r.Post("/teams/activity", NewTeamsHandler(gw).HandleActivity)
	})
}
