package controllers

import (
	"context"

	"wallet/src/schemas"
)

func (c *Controller) GetLoans(ctx context.Context) (*schemas.LoansResponse, error) {
	return c.PortfolioService.GetLoans(ctx)
}

func (c *Controller) AddLoan(ctx context.Context, req schemas.AddLoanRequest) (*schemas.LoansResponse, error) {
	return c.PortfolioService.AddLoan(ctx, req)
}

func (c *Controller) GetCreditCards(ctx context.Context) (*schemas.CreditCardsResponse, error) {
	return c.PortfolioService.GetCreditCards(ctx)
}

func (c *Controller) AddCreditCard(ctx context.Context, req schemas.AddCreditCardRequest) (*schemas.CreditCardsResponse, error) {
	return c.PortfolioService.AddCreditCard(ctx, req)
}

func (c *Controller) GetSavingsAccounts(ctx context.Context) (*schemas.SavingsAccountsResponse, error) {
	return c.PortfolioService.GetSavingsAccounts(ctx)
}

func (c *Controller) AddSavingsAccount(ctx context.Context, req schemas.AddSavingsAccountRequest) (*schemas.SavingsAccountsResponse, error) {
	return c.PortfolioService.AddSavingsAccount(ctx, req)
}

func (c *Controller) GetOtherInvestments(ctx context.Context) (*schemas.OtherInvestmentsResponse, error) {
	return c.PortfolioService.GetOtherInvestments(ctx)
}

func (c *Controller) AddOtherInvestment(ctx context.Context, req schemas.AddOtherInvestmentRequest) (*schemas.OtherInvestmentsResponse, error) {
	return c.PortfolioService.AddOtherInvestment(ctx, req)
}
