package payment

import "math"

// Currencies whose smallest unit is the unit itself. Gateway amounts for these
// are sent unscaled; every other currency is scaled to hundredths.
var zeroDecimalCurrencies = map[string]struct{}{
	"bif": {}, "clp": {}, "djf": {}, "gnf": {}, "jpy": {},
	"kmf": {}, "krw": {}, "mga": {}, "pyg": {}, "rwf": {},
	"vnd": {}, "vuv": {}, "xaf": {}, "xof": {}, "xpf": {},
}

// UnitAmount converts a monetary amount into the gateway's smallest currency
// unit.
func UnitAmount(amount float64, currency string) int64 {
	if _, ok := zeroDecimalCurrencies[currency]; ok {
		return int64(math.Round(amount))
	}
	return int64(math.Round(amount * 100))
}
