package normalize

import (
	"regexp"
	"strconv"
	"time"

	"github.com/joseph-ayodele/invoice-parser/constants"
)

var reDate = regexp.MustCompile(constants.PatternDate)

// ParseDate extracts a day/month/year date from s. Two-digit years are
// taken as 2000-era. A date more than one year ahead of now is assumed to be
// a systematic recognition error in the year's tens digit and is shifted
// back by the fixed offset; if it is still implausible the parse fails.
func ParseDate(s string, now time.Time) (time.Time, bool) {
	m := reDate.FindStringSubmatch(s)
	if m == nil {
		return time.Time{}, false
	}
	day, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	year, _ := strconv.Atoi(m[3])
	if year < 100 {
		year += 2000
	}
	if day < 1 || day > 31 || month < 1 || month > 12 {
		return time.Time{}, false
	}

	d := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	horizon := now.AddDate(1, 0, 0)
	if d.After(horizon) {
		d = time.Date(year-constants.YearMisreadOffset, time.Month(month), day, 0, 0, 0, 0, time.UTC)
		if d.After(horizon) {
			return time.Time{}, false
		}
	}
	return d, true
}
