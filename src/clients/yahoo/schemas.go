package yahoo

type ChartMeta struct {
	Currency           string  `json:"currency"`
	Symbol             string  `json:"symbol"`
	ExchangeName       string  `json:"exchangeName"`
	RegularMarketPrice float64 `json:"regularMarketPrice"`
	PreviousClose      float64 `json:"chartPreviousClose"`
	LongName           string  `json:"longName"`
	ShortName          string  `json:"shortName"`
}

type ChartResult struct {
	Meta ChartMeta `json:"meta"`
}

type ChartError struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

type ChartResponse struct {
	Chart struct {
		Result []ChartResult `json:"result"`
		Error  *ChartError   `json:"error"`
	} `json:"chart"`
}

// RawValue is Yahoo's {"raw": 1.0, "fmt": "1.00"} number wrapper.
type RawValue struct {
	Raw float64 `json:"raw"`
	Fmt string  `json:"fmt"`
}

type AssetProfileModule struct {
	Sector   string `json:"sector"`
	Industry string `json:"industry"`
	Country  string `json:"country"`
	Website  string `json:"website"`
}

type PriceModule struct {
	LongName           string   `json:"longName"`
	ShortName          string   `json:"shortName"`
	RegularMarketPrice RawValue `json:"regularMarketPrice"`
	MarketCap          RawValue `json:"marketCap"`
	Currency           string   `json:"currency"`
}

type QuoteSummaryResponse struct {
	QuoteSummary struct {
		Result []struct {
			AssetProfile *AssetProfileModule `json:"assetProfile"`
			Price        *PriceModule        `json:"price"`
		} `json:"result"`
		Error *ChartError `json:"error"`
	} `json:"quoteSummary"`
}

// AssetProfile is the flattened company profile used by the market view.
type AssetProfile struct {
	Symbol    string  `json:"symbol"`
	Name      string  `json:"name"`
	Sector    string  `json:"sector"`
	Industry  string  `json:"industry"`
	MarketCap float64 `json:"marketCap"`
}
