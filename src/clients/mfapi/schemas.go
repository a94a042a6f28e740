package mfapi

import "github.com/shopspring/decimal"

type SchemeMeta struct {
	FundHouse      string `json:"fund_house"`
	SchemeType     string `json:"scheme_type"`
	SchemeCategory string `json:"scheme_category"`
	SchemeCode     int64  `json:"scheme_code"`
	SchemeName     string `json:"scheme_name"`
}

// NAVPoint is one daily NAV. The API sends nav as a quoted string;
// decimal.Decimal accepts both quoted and bare numbers.
type NAVPoint struct {
	Date string          `json:"date"`
	NAV  decimal.Decimal `json:"nav"`
}

type SchemeResponse struct {
	Meta   SchemeMeta `json:"meta"`
	Data   []NAVPoint `json:"data"`
	Status string     `json:"status"`
}
