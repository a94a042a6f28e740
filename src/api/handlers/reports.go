package handlers

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"wallet/src/utils"

	"github.com/go-chi/chi/v5"
)

// GetExportFile answers the enriched table of one asset class as XLSX.
func (h *Handler) GetExportFile(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.PriceTimeout)
	defer cancel()
	ctx = utils.WithLogger(ctx, h.Logger)

	class := chi.URLParam(r, "class")
	xlsxFile, err := h.Controller.GenerateXLSX(ctx, class)
	if err != nil {
		h.Logger.Warning(err)
		h.HandleErrors(w, err)
		return
	}
	defer xlsxFile.Close()

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s.xlsx", class))
	if err := xlsxFile.Write(w); err != nil {
		h.Logger.Warning(err)
	}
}

func (h *Handler) GetOverviewReport(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.PriceTimeout+30*time.Second)
	defer cancel()
	ctx = utils.WithLogger(ctx, h.Logger)

	pdfData, err := h.Controller.GeneratePDFReport(ctx)
	if err != nil {
		h.Logger.Warning(err)
		h.HandleErrors(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=overview.pdf")
	w.Header().Set("Content-Length", fmt.Sprintf("%d", len(pdfData)))
	if _, err := w.Write(pdfData); err != nil {
		h.Logger.Warning(err)
	}
}

func (h *Handler) GetMarket(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.PriceTimeout)
	defer cancel()
	ctx = utils.WithLogger(ctx, h.Logger)

	market, err := h.Controller.GetMarket(ctx)
	if err != nil {
		h.Logger.Warning(err)
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, market, http.StatusOK)
}

func (h *Handler) GetHistory(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()
	ctx = utils.WithLogger(ctx, h.Logger)

	history, err := h.Controller.GetHistory(ctx)
	if err != nil {
		h.Logger.Warning(err)
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, history, http.StatusOK)
}

func (h *Handler) GetSectorChart(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.PriceTimeout)
	defer cancel()
	ctx = utils.WithLogger(ctx, h.Logger)

	page, err := h.Controller.SectorChartHTML(ctx)
	if err != nil {
		h.Logger.Warning(err)
		h.HandleErrors(w, err)
		return
	}
	writeHTML(w, page)
}

func (h *Handler) GetHistoryChart(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()
	ctx = utils.WithLogger(ctx, h.Logger)

	page, err := h.Controller.HistoryChartHTML(ctx)
	if err != nil {
		h.Logger.Warning(err)
		h.HandleErrors(w, err)
		return
	}
	writeHTML(w, page)
}

func writeHTML(w http.ResponseWriter, page string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(page))
}
