package services

import (
	"wallet/src/clients/mfapi"
	"wallet/src/clients/yahoo"
	"wallet/src/config"
	"wallet/src/models"
	"wallet/src/repositories"
)

// NewStores opens the holdings files named in the storage config.
func NewStores(cfg *config.Config) Stores {
	st := cfg.Storage
	return Stores{
		Stocks:           repositories.NewStockStore(st.Path(st.Stocks)),
		MutualFunds:      repositories.NewMutualFundStore(st.Path(st.MutualFunds)),
		Loans:            repositories.NewLoanStore(st.Path(st.Loans)),
		CreditCards:      repositories.NewCreditCardStore(st.Path(st.CreditCards)),
		SavingsAccounts:  repositories.NewSavingsAccountStore(st.Path(st.SavingsAccounts)),
		OtherInvestments: repositories.NewOtherInvestmentStore(st.Path(st.OtherInvestments)),
	}
}

func NewHistoryStore(cfg *config.Config) repositories.Store[models.PortfolioSnapshot] {
	return repositories.NewSnapshotStore(cfg.Storage.Path(cfg.Storage.History))
}

// NewPriceServiceFromConfig wires the quote providers named in the config.
func NewPriceServiceFromConfig(cfg *config.Config) *PriceService {
	return NewPriceService(yahoo.NewClient(cfg), mfapi.NewClient(cfg), cfg.Prices.RequestDelay)
}
