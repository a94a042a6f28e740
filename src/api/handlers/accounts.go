package handlers

import (
	"context"
	"net/http"
	"time"

	"wallet/src/schemas"
	"wallet/src/utils"
)

func (h *Handler) GetLoans(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()
	ctx = utils.WithLogger(ctx, h.Logger)

	loans, err := h.Controller.GetLoans(ctx)
	if err != nil {
		h.Logger.Warning(err)
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, loans, http.StatusOK)
}

func (h *Handler) AddLoan(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()
	ctx = utils.WithLogger(ctx, h.Logger)

	var req schemas.AddLoanRequest
	if err := decode(r, &req); err != nil {
		h.HandleErrors(w, err)
		return
	}
	loans, err := h.Controller.AddLoan(ctx, req)
	if err != nil {
		h.Logger.Warning(err)
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, loans, http.StatusCreated)
}

func (h *Handler) GetCreditCards(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()
	ctx = utils.WithLogger(ctx, h.Logger)

	cards, err := h.Controller.GetCreditCards(ctx)
	if err != nil {
		h.Logger.Warning(err)
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, cards, http.StatusOK)
}

func (h *Handler) AddCreditCard(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()
	ctx = utils.WithLogger(ctx, h.Logger)

	var req schemas.AddCreditCardRequest
	if err := decode(r, &req); err != nil {
		h.HandleErrors(w, err)
		return
	}
	cards, err := h.Controller.AddCreditCard(ctx, req)
	if err != nil {
		h.Logger.Warning(err)
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, cards, http.StatusCreated)
}

func (h *Handler) GetSavingsAccounts(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()
	ctx = utils.WithLogger(ctx, h.Logger)

	accounts, err := h.Controller.GetSavingsAccounts(ctx)
	if err != nil {
		h.Logger.Warning(err)
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, accounts, http.StatusOK)
}

func (h *Handler) AddSavingsAccount(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()
	ctx = utils.WithLogger(ctx, h.Logger)

	var req schemas.AddSavingsAccountRequest
	if err := decode(r, &req); err != nil {
		h.HandleErrors(w, err)
		return
	}
	accounts, err := h.Controller.AddSavingsAccount(ctx, req)
	if err != nil {
		h.Logger.Warning(err)
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, accounts, http.StatusCreated)
}

func (h *Handler) GetOtherInvestments(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()
	ctx = utils.WithLogger(ctx, h.Logger)

	investments, err := h.Controller.GetOtherInvestments(ctx)
	if err != nil {
		h.Logger.Warning(err)
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, investments, http.StatusOK)
}

func (h *Handler) AddOtherInvestment(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()
	ctx = utils.WithLogger(ctx, h.Logger)

	var req schemas.AddOtherInvestmentRequest
	if err := decode(r, &req); err != nil {
		h.HandleErrors(w, err)
		return
	}
	investments, err := h.Controller.AddOtherInvestment(ctx, req)
	if err != nil {
		h.Logger.Warning(err)
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, investments, http.StatusCreated)
}
