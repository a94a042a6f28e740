package worker

import (
	"net/http"
	"time"

	"wallet/src/config"
	handlers "wallet/src/worker/handlers"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

type Server struct {
	Router  *chi.Mux
	Handler *handlers.Handler
	Port    string
}

// NewServer builds the worker server and installs the snapshot schedule.
func NewServer(cfg *config.Config, logger *logrus.Logger) (*Server, error) {
	server := &Server{
		Router:  chi.NewRouter(),
		Handler: handlers.NewHandler(cfg, logger),
		Port:    cfg.Service.Port,
	}
	if err := server.Handler.Controller.ScheduleSnapshots(cfg.Scheduler.SnapshotCron); err != nil {
		return nil, err
	}
	server.InitRoutes()
	return server, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}

func (s *Server) InitRoutes() {
	s.Router.Get("/alive", handlers.Healthcheck)
	s.Router.Post("/api/snapshots", s.Handler.TakeSnapshot)
}

func NewHTTPServer(server *Server) *http.Server {
	httpServer := &http.Server{
		Addr:         ":" + server.Port,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: server.Handler.PriceTimeout + 30*time.Second,
		Handler:      server,
	}
	return httpServer
}
