package heavens

import (
	"fmt"
	"html"
	"regexp"
	"strconv"
)

var (
	// mjd parameter of a pass detail link, e.g. passdetails.aspx?lat=...&mjd=61085.28472&...
	summaryLinkRe = regexp.MustCompile(`passdetails\.aspx\?[^"']*?\bmjd=([0-9.]+)\b`)

	// passID parameter of a chart link, e.g. PassSkyChart2.ashx?passID=12345&size=800
	chartLinkRe = regexp.MustCompile(`PassSkyChart2\.ashx\?[^"']*\bpassID=(\d+)\b`)
)

// ParseSummary extracts the start MJD of every pass linked from a pass
// summary page, in order of first appearance without duplicates.
// A page without pass links yields an empty slice and no error.
func ParseSummary(page string) ([]float64, error) {
	s := html.UnescapeString(page)

	var mjds []float64
	seen := make(map[float64]bool)
	for _, m := range summaryLinkRe.FindAllStringSubmatch(s, -1) {
		v, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			return nil, &ParseError{Page: "pass summary", Err: fmt.Errorf("mjd %q: %w", m[1], err)}
		}
		if seen[v] {
			continue
		}
		seen[v] = true
		mjds = append(mjds, v)
	}
	return mjds, nil
}

// ParseDetail extracts the pass identifier from the first chart link of a
// pass detail page. The identifier is returned verbatim.
func ParseDetail(page string) (string, error) {
	m := chartLinkRe.FindStringSubmatch(page)
	if m == nil {
		return "", &ParseError{Page: "pass detail", Err: fmt.Errorf("pass sky chart link: %w", ErrNotFound)}
	}
	return m[1], nil
}
