package synth

import "fmt"

// fxRates quotes each supported currency against USD. The set is intentionally
// small and fixed; anything outside it is an error at the point of lookup.
var fxRates = map[string]float64{
	"USD": 1.0,
	"EUR": 1.08,
	"MXN": 18.0,
	"COP": 4000.0,
}

// FXRate returns the conversion rate from base to quote.
func FXRate(base, quote string) (float64, error) {
	b, ok := fxRates[base]
	if !ok {
		return 0, fmt.Errorf("unsupported currency: %s", base)
	}
	q, ok := fxRates[quote]
	if !ok {
		return 0, fmt.Errorf("unsupported currency: %s", quote)
	}
	return q / b, nil
}
