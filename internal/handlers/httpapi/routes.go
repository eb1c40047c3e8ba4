package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// SetupRoutes builds the router for the engine's HTTP surface
func SetupRoutes(s *Server) http.Handler {
	r := chi.NewRouter()

	r.Get("/healthz", s.Healthz)

	r.Route("/sessions", func(r chi.Router) {
		r.Get("/", s.ListSessions)
		r.Post("/", s.LoadOrCreateSession)
		r.Post("/resume", s.ResumeSession)

		r.Route("/{sessionID}", func(r chi.Router) {
			r.Get("/", s.GetSession)
			r.Put("/", s.SaveSession)
			r.Delete("/", s.DeleteSession)
			r.Get("/qr", s.SessionQR)

			r.Post("/start", s.StartGame)
			r.Post("/cards/{playerIndex}/viewed", s.MarkCardViewed)
			r.Post("/voting/open", s.OpenVoting)
			r.Post("/votes", s.SubmitVote)
			r.Post("/tally", s.TallyVotes)
			r.Post("/next-round", s.NextRound)
			r.Post("/end", s.EndGame)
			r.Post("/rematch", s.Rematch)
			r.Post("/new-game", s.NewGame)
		})
	})

	return r
}
