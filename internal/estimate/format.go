package estimate

import (
	"math/big"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// maxUnits caps how many consecutive units Humanize looks at, starting from
// the largest non-zero one.
const maxUnits = 3

var units = []struct {
	name    string
	seconds int64
}{
	{"year", 365 * 24 * 60 * 60},
	{"month", 365 * 24 * 60 * 60 / 12},
	{"day", 24 * 60 * 60},
	{"hour", 60 * 60},
	{"minute", 60},
	{"second", 1},
}

var printer = message.NewPrinter(language.English)

// Humanize renders a number of seconds as e.g. "2 years 3 months 15 days".
// A month is a twelfth of a 365-day year, so twelve months always make a year.
// Year counts too large for an int64 are written in scientific notation.
func Humanize(seconds *big.Int) string {
	if seconds == nil || seconds.Sign() <= 0 {
		return "less than a second"
	}

	rest := new(big.Int).Set(seconds)
	var parts []string
	window := 0
	for _, u := range units {
		q, r := new(big.Int).QuoRem(rest, big.NewInt(u.seconds), new(big.Int))
		rest = r

		if len(parts) == 0 && q.Sign() == 0 {
			continue
		}
		if q.Sign() > 0 {
			if !q.IsInt64() {
				return new(big.Float).SetInt(q).Text('e', 2) + " " + u.name + "s"
			}
			parts = append(parts, plural(q.Int64(), u.name))
		}
		window++
		if window == maxUnits {
			break
		}
	}
	return strings.Join(parts, " ")
}

// FormatCount writes n with thousands separators, switching to scientific
// notation once it no longer fits in an int64.
func FormatCount(n *big.Int) string {
	if n == nil {
		return "0"
	}
	if n.IsInt64() {
		return printer.Sprintf("%d", n.Int64())
	}
	return new(big.Float).SetInt(n).Text('e', 3)
}

func plural(n int64, unit string) string {
	if n == 1 {
		return printer.Sprintf("%d %s", n, unit)
	}
	return printer.Sprintf("%d %ss", n, unit)
}
