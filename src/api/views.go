package api

import (
	"net/http"
	"time"

	handlers "wallet/src/api/handlers"
	"wallet/src/config"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

type Server struct {
	Router  *chi.Mux
	Handler *handlers.Handler
	Port    string
}

func NewServer(cfg *config.Config, logger *logrus.Logger) *Server {
	return NewServerWithHandler(cfg, handlers.NewHandler(cfg, logger))
}

// NewServerWithHandler builds the router around an existing handler.
func NewServerWithHandler(cfg *config.Config, handler *handlers.Handler) *Server {
	server := &Server{
		Router:  chi.NewRouter(),
		Handler: handler,
		Port:    cfg.Service.Port,
	}
	server.InitRoutes()
	return server
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}

func (s *Server) InitRoutes() {
	s.Router.Get("/alive", handlers.Healthcheck)

	s.Router.Route("/api", func(r chi.Router) {
		r.Get("/overview", s.Handler.GetOverview)
		r.Get("/overview/report", s.Handler.GetOverviewReport)

		r.Get("/stocks", s.Handler.GetStocks)
		r.Post("/stocks", s.Handler.AddStock)
		r.Get("/stocks/name/{symbol}", s.Handler.GetStockName)

		r.Get("/mutual-funds", s.Handler.GetMutualFunds)
		r.Post("/mutual-funds", s.Handler.AddMutualFund)
		r.Get("/mutual-funds/scheme/{code}", s.Handler.GetSchemeName)
		r.Post("/mutual-funds/import", s.Handler.ImportMutualFunds)

		r.Get("/loans", s.Handler.GetLoans)
		r.Post("/loans", s.Handler.AddLoan)
		r.Get("/credit-cards", s.Handler.GetCreditCards)
		r.Post("/credit-cards", s.Handler.AddCreditCard)
		r.Get("/savings-accounts", s.Handler.GetSavingsAccounts)
		r.Post("/savings-accounts", s.Handler.AddSavingsAccount)
		r.Get("/other-investments", s.Handler.GetOtherInvestments)
		r.Post("/other-investments", s.Handler.AddOtherInvestment)

		r.Get("/{class}/export", s.Handler.GetExportFile)

		r.Route("/market", func(r chi.Router) {
			r.Get("/", s.Handler.GetMarket)
			r.Get("/sectors/chart", s.Handler.GetSectorChart)
			r.Get("/history", s.Handler.GetHistory)
			r.Get("/history/chart", s.Handler.GetHistoryChart)
		})
	})
}

func NewHTTPServer(server *Server) *http.Server {
	httpServer := &http.Server{
		Addr:         ":" + server.Port,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: server.Handler.PriceTimeout + 60*time.Second,
		Handler:      server,
	}
	return httpServer
}
