package router

import (
	"net/http"
	"time"

	middleware2 "github.com/hyemnyarwi-dev/hackathon-voting-system-public/pkg/middleware"

	"github.com/hyemnyarwi-dev/hackathon-voting-system-public/internal/handler"
	"github.com/hyemnyarwi-dev/hackathon-voting-system-public/internal/middleware"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

func SetupRouter(
	authHandler *handler.AuthHandler,
	voteHandler *handler.VoteHandler,
	teamHandler *handler.TeamHandler,
	rosterHandler *handler.RosterHandler,
	judgeHandler *handler.JudgeHandler,
	voterHandler *handler.VoterHandler,
	resultsHandler *handler.ResultsHandler,
	healthHandler *handler.HealthHandler,
	authService middleware.AuthService,
) http.Handler {
	r := chi.NewRouter()

	// Global middlewares
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware2.LoggingMiddleware)
	r.Use(chimiddleware.Timeout(30 * time.Second)) // spreadsheet uploads take a while

	// Public endpoints
	r.Head("/health", healthHandler.Health)
	r.Get("/teams", teamHandler.ListTeams)
	r.Get("/results", resultsHandler.GetResults)
	r.Get("/results/rankings", resultsHandler.GetRankings)

	// Voting endpoints
	r.Post("/vote/authenticate", authHandler.AuthenticateVoter)
	r.Post("/vote/submit", voteHandler.SubmitVoterVote)
	r.Post("/judge/authenticate", authHandler.AuthenticateJudge)
	r.Post("/judge/submit", voteHandler.SubmitJudgeVote)

	r.Post("/admin/login", authHandler.AdminLogin)

	// Admin endpoints (require bearer token)
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthMiddleware(authService))

		r.Get("/admin/teams", teamHandler.ListAllTeams)
		r.Post("/admin/teams/upload", rosterHandler.UploadRoster)
		r.Post("/admin/teams/save", teamHandler.SaveTeams)
		r.Delete("/admin/teams/{id}", teamHandler.DeleteTeam)

		r.Get("/admin/auth-codes/export", rosterHandler.ExportAuthCodes)
		r.Post("/admin/auth-codes/upload", rosterHandler.UploadAuthCodes)

		r.Get("/admin/judges", judgeHandler.ListJudges)
		r.Post("/admin/judges", judgeHandler.CreateJudge)
		r.Delete("/admin/judges/{id}", judgeHandler.DeleteJudge)
		r.Post("/admin/judges/{id}/reset-votes", judgeHandler.ResetJudgeVotes)

		r.Get("/admin/voters", voterHandler.ListVoters)
		r.Post("/admin/voters/{id}/reset-votes", voterHandler.ResetVoterVotes)

		r.Get("/admin/results/export", resultsHandler.ExportResults)
	})

	return r
}
