package models

var MutualFundColumns = []string{"Scheme", "UnitsOwned", "AverageNAV", "SchemeCode"}

// MutualFund is one scheme holding as stored in myMFPortfolio.csv. Imported
// rows carry no AverageNAV and no SchemeCode until the user fills them in.
type MutualFund struct {
	Scheme     string  `json:"Scheme"`
	UnitsOwned float64 `json:"UnitsOwned"`
	AverageNAV float64 `json:"AverageNAV"`
	SchemeCode string  `json:"SchemeCode"`

	// averageNAVBlank keeps an empty AverageNAV cell empty on rewrite.
	averageNAVBlank bool
}

// NewImportedMutualFund builds the canonical row for an extracted holding.
func NewImportedMutualFund(scheme string, units float64) MutualFund {
	return MutualFund{Scheme: scheme, UnitsOwned: units, averageNAVBlank: true}
}

func (m MutualFund) Key() string { return m.SchemeCode }

func (m MutualFund) Record() []string {
	avg := num(m.AverageNAV)
	if m.averageNAVBlank && m.AverageNAV == 0 {
		avg = ""
	}
	return []string{m.Scheme, num(m.UnitsOwned), avg, m.SchemeCode}
}

func DecodeMutualFund(r Row) (MutualFund, error) {
	m := MutualFund{
		Scheme:          r.String("Scheme"),
		SchemeCode:      r.String("SchemeCode"),
		averageNAVBlank: r.String("AverageNAV") == "",
	}
	err := r.floats(map[string]*float64{
		"UnitsOwned": &m.UnitsOwned,
		"AverageNAV": &m.AverageNAV,
	})
	return m, err
}
