package consts

// USAStateCodes - two-letter codes of the 50 states plus D.C., the set of
// subdivisions the states source reports on.
var USAStateCodes = []string{
	"AL", "AK", "AZ", "AR", "CA", "CO", "CT", "DC", "DE", "FL",
	"GA", "HI", "ID", "IL", "IN", "IA", "KS", "KY", "LA", "ME",
	"MD", "MA", "MI", "MN", "MS", "MO", "MT", "NE", "NV", "NH",
	"NJ", "NM", "NY", "NC", "ND", "OH", "OK", "OR", "PA", "RI",
	"SC", "SD", "TN", "TX", "UT", "VT", "VA", "WA", "WV", "WI",
	"WY",
}

var usaStateCodeSet map[string]bool

func init() {
	usaStateCodeSet = make(map[string]bool, len(USAStateCodes))
	for _, code := range USAStateCodes {
		usaStateCodeSet[code] = true
	}
}

// IsUSAStateCode reports whether code names a tracked US state or D.C.
func IsUSAStateCode(code string) bool {
	return usaStateCodeSet[code]
}
