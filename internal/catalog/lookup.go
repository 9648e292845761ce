package catalog

import (
	"strconv"
	"strings"
)

// Find returns the first record whose id matches the requested one.
//
// Equality is loose the way the feed is loose: an exact match on the
// canonical string form, or numeric equality when both sides parse as
// numbers. "3" finds a record with numeric id 3, and "3.0" finds "3". A
// miss returns ok == false; it never fails.
func Find(records []Product, id string) (Product, bool) {
	want := strings.TrimSpace(id)
	wantNum, wantIsNum := parseNumeric(want)
	for _, rec := range records {
		have := rec.ID.String()
		if have == want {
			return rec, true
		}
		if wantIsNum {
			if haveNum, ok := parseNumeric(have); ok && haveNum == wantNum {
				return rec, true
			}
		}
	}
	return Product{}, false
}

func parseNumeric(s string) (float64, bool) {
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	return f, err == nil
}
