package router

import (
	"net/http"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/qanda-dev/qanda/internal/middleware"
	"github.com/qanda-dev/qanda/internal/recovery"
	"github.com/qanda-dev/qanda/internal/setup"
)

// New creates and configures the mux router with all the routes.
func New(deps *setup.Dependencies) *mux.Router {
	r := mux.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Metrics)
	r.Use(handlers.CompressHandler)
	r.Use(middleware.CORS(deps.Config.Public.AllowedOrigins))

	// An unmatched path is a rejection like any other: it goes through
	// recovery so the body and logging stay uniform.
	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		recovery.Write(w, recovery.NoRoute{})
	})

	h := deps.Handler

	r.HandleFunc("/questions", h.GetQuestions).Methods("GET")
	r.HandleFunc("/questions", h.AddQuestion).Methods("POST")
	r.HandleFunc("/questions/{id}", h.UpdateQuestion).Methods("PUT")
	r.HandleFunc("/questions/{id}", h.DeleteQuestion).Methods("DELETE")

	r.HandleFunc("/answers", h.AddAnswer).Methods("POST")

	r.HandleFunc("/registration", h.Register).Methods("POST")
	r.HandleFunc("/login", h.Login).Methods("POST")

	r.Handle("/metrics", promhttp.Handler()).Methods("GET")

	return r
}
