package models

var SavingsAccountColumns = []string{"Bank", "AccountType", "AccountNumber", "Balance", "InterestRate", "LastUpdated"}

type SavingsAccount struct {
	Bank          string  `json:"Bank"`
	AccountType   string  `json:"AccountType"`
	AccountNumber string  `json:"AccountNumber"`
	Balance       float64 `json:"Balance"`
	InterestRate  float64 `json:"InterestRate"`
	LastUpdated   string  `json:"LastUpdated"`
}

func (s SavingsAccount) Key() string { return s.AccountNumber }

func (s SavingsAccount) Record() []string {
	return []string{s.Bank, s.AccountType, s.AccountNumber, num(s.Balance), num(s.InterestRate), s.LastUpdated}
}

func DecodeSavingsAccount(r Row) (SavingsAccount, error) {
	s := SavingsAccount{
		Bank:          r.String("Bank"),
		AccountType:   r.String("AccountType"),
		AccountNumber: r.String("AccountNumber"),
		LastUpdated:   r.String("LastUpdated"),
	}
	err := r.floats(map[string]*float64{
		"Balance":      &s.Balance,
		"InterestRate": &s.InterestRate,
	})
	return s, err
}
