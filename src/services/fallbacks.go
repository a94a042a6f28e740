package services

// StockFallbackPrices are used when the quote provider cannot price a symbol.
var StockFallbackPrices = StaticFallback{
	"GAIL":       190.50,
	"MOTHERSON":  140.25,
	"NTPC":       352.75,
	"RPOWER":     42.30,
	"ADANIGREEN": 910.20,
	"INDIANREN":  170.45,
	"SUZLON":     60.80,
	"OBEROIRLTY": 1650.30,
	"TATAMOTORS": 700.90,
	"MAHLIFE":    360.40,
	"DLF":        695.75,
	"TATASTEEL":  155.20,
	"SHRIRAMPPS": 90.50,
	"VIKASECO":   2.75,
	"BLS":        430.60,
	"JYOTISTRUC": 25.30,
	"MOTILALOFS": 200.45,
	"BEL":        290.25,
	"IDFCFIRSTB": 62.30,
	"NHPC":       80.40,
	"L&TFH":      155.25,
	"SBIN":       750.40,
	"NCC":        205.30,
	"BANDHANBNK": 160.45,
	"BANKINDIA":  110.25,
	"IEX":        185.60,
	"ASHOKLEY":   220.40,
	"APOLLOTYRE": 440.25,
	"JIOFIN":     250.75,
	"JKTYRE":     300.40,
	"PNB":        100.25,
	"IDBI":       82.30,
	"TATAPOWER":  385.45,
	"ITC":        420.30,
	"REDINGTON":  245.70,
}

// NAVFallbacks are used when the NAV provider cannot price a scheme code.
var NAVFallbacks = StaticFallback{
	"119598": 45.12,
	"119551": 57.80,
	"120505": 110.25,
	"122639": 85.45,
	"119609": 76.30,
	"119533": 65.20,
	"120178": 155.90,
	"118759": 92.35,
	"100356": 125.60,
	"118560": 84.70,
}

var StockNames = map[string]string{
	"SBIN":       "State Bank Of India",
	"HDFC":       "HDFC Bank Ltd",
	"ICICIBANK":  "ICICI Bank Ltd",
	"INFY":       "Infosys Ltd",
	"TATAMOTORS": "Tata Motors Ltd",
	"IREDA":      "Indian Renewable Energy Development Agency",
	"IEX":        "Indian Energy Exchange",
	"NHPC":       "NHPC Ltd",
	"NTPC":       "NTPC Ltd",
	"BEL":        "Bharat Electronics Ltd",
	"GAIL":       "GAIL (India) Ltd",
	"LTF":        "L&T Finance Ltd",
	"ITC":        "ITC Ltd",
	"PNB":        "Punjab National Bank",
	"IDBI":       "IDBI Bank Ltd",
}

var SchemeNames = map[string]string{
	"119598": "SBI Blue Chip Fund-Direct Plan-Growth",
	"119551": "Axis Bluechip Fund Direct Plan Growth",
	"120505": "HDFC Index Fund-NIFTY 50 Plan Direct Plan",
	"122639": "Mirae Asset Large Cap Fund Direct Growth",
	"119609": "ICICI Prudential Bluechip Fund Direct Plan Growth",
	"119533": "Kotak Standard Multicap Fund Direct Plan Growth",
	"120178": "UTI Nifty Index Fund Direct Growth Plan",
	"118759": "Aditya Birla Sun Life Frontline Equity Fund Direct Growth",
	"100356": "HDFC Mid-Cap Opportunities Fund Direct Plan Growth",
	"118560": "ICICI Prudential Value Discovery Fund Direct Plan Growth",
}
