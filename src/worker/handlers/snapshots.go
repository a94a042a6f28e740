package handlers

import (
	"context"
	"net/http"

	"wallet/src/utils"
)

// TakeSnapshot records a portfolio snapshot immediately instead of waiting
// for the scheduled run.
func (h *Handler) TakeSnapshot(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.PriceTimeout)
	defer cancel()
	ctx = utils.WithLogger(ctx, h.Logger)

	snapshot, err := h.Controller.TakeSnapshot(ctx)
	if err != nil {
		h.Logger.Warning(err)
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, snapshot, http.StatusCreated)
}
