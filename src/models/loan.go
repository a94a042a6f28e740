package models

var LoanColumns = []string{"LoanType", "Lender", "Principal", "OutstandingAmount", "InterestRate", "EMI", "Tenure", "StartDate", "EndDate"}

type Loan struct {
	LoanType          string  `json:"LoanType"`
	Lender            string  `json:"Lender"`
	Principal         float64 `json:"Principal"`
	OutstandingAmount float64 `json:"OutstandingAmount"`
	InterestRate      float64 `json:"InterestRate"`
	EMI               float64 `json:"EMI"`
	Tenure            float64 `json:"Tenure"`
	StartDate         string  `json:"StartDate"`
	EndDate           string  `json:"EndDate"`
}

// Loans have no natural identifier.
func (l Loan) Key() string { return "" }

func (l Loan) Record() []string {
	return []string{l.LoanType, l.Lender, num(l.Principal), num(l.OutstandingAmount), num(l.InterestRate), num(l.EMI), num(l.Tenure), l.StartDate, l.EndDate}
}

func DecodeLoan(r Row) (Loan, error) {
	l := Loan{
		LoanType:  r.String("LoanType"),
		Lender:    r.String("Lender"),
		StartDate: r.String("StartDate"),
		EndDate:   r.String("EndDate"),
	}
	err := r.floats(map[string]*float64{
		"Principal":         &l.Principal,
		"OutstandingAmount": &l.OutstandingAmount,
		"InterestRate":      &l.InterestRate,
		"EMI":               &l.EMI,
		"Tenure":            &l.Tenure,
	})
	return l, err
}
