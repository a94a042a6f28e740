package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"wallet/src/api/controllers"
	"wallet/src/config"
	"wallet/src/repositories"
	"wallet/src/services"
	"wallet/src/utils"

	"github.com/sirupsen/logrus"
)

type Handler struct {
	Controller   controllers.IController
	Logger       *logrus.Logger
	PriceTimeout time.Duration
}

func NewHandler(cfg *config.Config, logger *logrus.Logger) *Handler {
	return &Handler{
		Controller:   controllers.NewController(cfg),
		Logger:       logger,
		PriceTimeout: PriceTimeout(cfg),
	}
}

// PriceTimeout is the budget of requests that fetch quotes.
func PriceTimeout(cfg *config.Config) time.Duration {
	if cfg.Prices.RequestTimeout > 0 {
		return cfg.Prices.RequestTimeout
	}
	return 10 * time.Second
}

func (h *Handler) respond(w http.ResponseWriter, _ *http.Request, data interface{}, status int) {
	res, err := json.Marshal(data)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(status)
	_, _ = w.Write(res)
}

func (h *Handler) HandleErrors(w http.ResponseWriter, err error) {
	var httpErr *utils.HTTPError
	var extractionErr *services.ExtractionError
	var duplicateErr *repositories.DuplicateError
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		h.respond(w, nil, map[string]string{"error": "Request timed out"}, http.StatusGatewayTimeout)
	case errors.As(err, &httpErr):
		h.respond(w, nil, map[string]string{"error": httpErr.Message}, httpErr.Code)
	case errors.As(err, &extractionErr):
		h.respond(w, nil, map[string]string{"error": extractionErr.Error()}, http.StatusUnprocessableEntity)
	case errors.As(err, &duplicateErr):
		h.respond(w, nil, map[string]string{"error": duplicateErr.Error()}, http.StatusConflict)
	case err != nil:
		h.respond(w, nil, map[string]string{"error": err.Error()}, http.StatusInternalServerError)
	default:
		h.respond(w, nil, map[string]string{"error": "Unhandled error"}, http.StatusInternalServerError)
	}
}

// decode reads a JSON request body into dst.
func decode(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return utils.BadRequest(fmt.Sprintf("invalid request body: %v", err))
	}
	return nil
}

func Healthcheck(w http.ResponseWriter, r *http.Request) {
	if r.Method == "GET" {
		fmt.Fprintf(w, "Im alive!")
	} else {
		fmt.Fprintf(w, "Method not available: %s", r.Method)
	}
}
