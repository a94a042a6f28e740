package models

var CreditCardColumns = []string{"Bank", "CardType", "CardNumber", "CreditLimit", "OutstandingBalance", "MinimumDue", "DueDate", "APR"}

type CreditCard struct {
	Bank               string  `json:"Bank"`
	CardType           string  `json:"CardType"`
	CardNumber         string  `json:"CardNumber"`
	CreditLimit        float64 `json:"CreditLimit"`
	OutstandingBalance float64 `json:"OutstandingBalance"`
	MinimumDue         float64 `json:"MinimumDue"`
	DueDate            string  `json:"DueDate"`
	APR                float64 `json:"APR"`
}

func (c CreditCard) Key() string { return c.CardNumber }

func (c CreditCard) Record() []string {
	return []string{c.Bank, c.CardType, c.CardNumber, num(c.CreditLimit), num(c.OutstandingBalance), num(c.MinimumDue), c.DueDate, num(c.APR)}
}

func DecodeCreditCard(r Row) (CreditCard, error) {
	c := CreditCard{
		Bank:       r.String("Bank"),
		CardType:   r.String("CardType"),
		CardNumber: r.String("CardNumber"),
		DueDate:    r.String("DueDate"),
	}
	err := r.floats(map[string]*float64{
		"CreditLimit":        &c.CreditLimit,
		"OutstandingBalance": &c.OutstandingBalance,
		"MinimumDue":         &c.MinimumDue,
		"APR":                &c.APR,
	})
	return c, err
}
