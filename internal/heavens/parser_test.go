package heavens

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const summaryPage = `<table class="standardTable">
<tr class="clickableRow" onclick="window.location='passdetails.aspx?lat=35.000000&amp;lng=139.000000&amp;loc=Unspecified&amp;alt=0&amp;tz=UCT&amp;satid=25544&amp;mjd=61085.1&amp;type=V'">
<td><a href="passdetails.aspx?lat=35.000000&amp;lng=139.000000&amp;loc=Unspecified&amp;alt=0&amp;tz=UCT&amp;satid=25544&amp;mjd=61085.1&amp;type=V">14 Feb</a></td></tr>
<tr class="clickableRow"><td><a href="passdetails.aspx?satid=25544&amp;mjd=61085.2&amp;type=V">14 Feb</a></td></tr>
<tr class="clickableRow"><td><a href='passdetails.aspx?mjd=61086.0&amp;satid=25544'>15 Feb</a></td></tr>
</table>`

func TestParseSummaryDeduplicatesInOrder(t *testing.T) {
	mjds, err := ParseSummary(summaryPage)
	require.NoError(t, err)
	assert.Equal(t, []float64{61085.1, 61085.2, 61086.0}, mjds)
}

func TestParseSummaryNoLinks(t *testing.T) {
	mjds, err := ParseSummary(`<html><body>No visible passes found.</body></html>`)
	require.NoError(t, err)
	assert.Empty(t, mjds)
}

func TestParseSummaryIgnoresOtherLinks(t *testing.T) {
	page := `<a href="WholeSkyChart.aspx?mjd=61000.5">sky</a>
<a href="passdetails.aspx?satid=1&amp;mjd=61085.5">pass</a>`
	mjds, err := ParseSummary(page)
	require.NoError(t, err)
	assert.Equal(t, []float64{61085.5}, mjds)
}

func TestParseSummaryMalformedNumber(t *testing.T) {
	_, err := ParseSummary(`<a href="passdetails.aspx?satid=1&mjd=610.85.1&type=V">x</a>`)
	require.Error(t, err)

	var pe *ParseError
	assert.True(t, errors.As(err, &pe))
}

func TestParseDetail(t *testing.T) {
	page := `<img id="ctl00_cph1_imgViewFinder" src="PassSkyChart2.ashx?passID=12345&amp;size=800&amp;lat=35.000000&amp;showUnlit=false" />`
	id, err := ParseDetail(page)
	require.NoError(t, err)
	assert.Equal(t, "12345", id)
}

func TestParseDetailParamNotFirst(t *testing.T) {
	page := `<img src="PassSkyChart2.ashx?size=800&passID=0042&lat=0" />`
	id, err := ParseDetail(page)
	require.NoError(t, err)
	assert.Equal(t, "0042", id)
}

func TestParseDetailMissing(t *testing.T) {
	for name, page := range map[string]string{
		"empty":         "",
		"no chart":      `<p>This pass is not visible.</p>`,
		"other handler": `<img src="WholeSkyChart.ashx?passID=12345" />`,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := ParseDetail(page)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrNotFound)

			var pe *ParseError
			assert.True(t, errors.As(err, &pe))
		})
	}
}
