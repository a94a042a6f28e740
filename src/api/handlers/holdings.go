package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"wallet/src/schemas"
	"wallet/src/utils"

	"github.com/go-chi/chi/v5"
)

const maxUploadSize = 32 << 20

func (h *Handler) GetOverview(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.PriceTimeout)
	defer cancel()
	ctx = utils.WithLogger(ctx, h.Logger)

	overview, err := h.Controller.GetOverview(ctx)
	if err != nil {
		h.Logger.Warning(err)
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, overview, http.StatusOK)
}

func (h *Handler) GetStocks(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.PriceTimeout)
	defer cancel()
	ctx = utils.WithLogger(ctx, h.Logger)

	stocks, err := h.Controller.GetStocks(ctx)
	if err != nil {
		h.Logger.Warning(err)
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, stocks, http.StatusOK)
}

func (h *Handler) AddStock(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.PriceTimeout)
	defer cancel()
	ctx = utils.WithLogger(ctx, h.Logger)

	var req schemas.AddStockRequest
	if err := decode(r, &req); err != nil {
		h.HandleErrors(w, err)
		return
	}

	stocks, err := h.Controller.AddStock(ctx, req)
	if err != nil {
		h.Logger.Warning(err)
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, stocks, http.StatusCreated)
}

func (h *Handler) GetStockName(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.PriceTimeout)
	defer cancel()
	ctx = utils.WithLogger(ctx, h.Logger)

	symbol := chi.URLParam(r, "symbol")
	if symbol == "" {
		h.HandleErrors(w, utils.BadRequest("Missing symbol URL parameter"))
		return
	}
	h.respond(w, r, h.Controller.LookupStockName(ctx, symbol), http.StatusOK)
}

func (h *Handler) GetMutualFunds(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.PriceTimeout)
	defer cancel()
	ctx = utils.WithLogger(ctx, h.Logger)

	funds, err := h.Controller.GetMutualFunds(ctx)
	if err != nil {
		h.Logger.Warning(err)
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, funds, http.StatusOK)
}

func (h *Handler) AddMutualFund(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.PriceTimeout)
	defer cancel()
	ctx = utils.WithLogger(ctx, h.Logger)

	var req schemas.AddMutualFundRequest
	if err := decode(r, &req); err != nil {
		h.HandleErrors(w, err)
		return
	}

	funds, err := h.Controller.AddMutualFund(ctx, req)
	if err != nil {
		h.Logger.Warning(err)
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, funds, http.StatusCreated)
}

func (h *Handler) GetSchemeName(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.PriceTimeout)
	defer cancel()
	ctx = utils.WithLogger(ctx, h.Logger)

	code := chi.URLParam(r, "code")
	if code == "" {
		h.HandleErrors(w, utils.BadRequest("Missing code URL parameter"))
		return
	}
	h.respond(w, r, h.Controller.LookupSchemeName(ctx, code), http.StatusOK)
}

// ImportMutualFunds accepts a workbook in the multipart field "file".
// ?replace=true overwrites the mutual fund file instead of appending.
func (h *Handler) ImportMutualFunds(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()
	ctx = utils.WithLogger(ctx, h.Logger)

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		h.HandleErrors(w, utils.BadRequest("could not parse upload: "+err.Error()))
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		h.HandleErrors(w, utils.BadRequest("Missing file field"))
		return
	}
	defer file.Close()

	replace := false
	if raw := r.URL.Query().Get("replace"); raw != "" {
		replace, err = strconv.ParseBool(raw)
		if err != nil {
			h.HandleErrors(w, utils.BadRequest("replace must be true or false"))
			return
		}
	}

	res, err := h.Controller.ImportMutualFunds(ctx, file, schemas.ImportOptions{FileName: header.Filename, Replace: replace})
	if err != nil {
		h.Logger.Warning(err)
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, res, http.StatusCreated)
}
