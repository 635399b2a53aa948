package heavens

import (
	"strconv"

	"github.com/kiyo-astro/heavens-above/internal/mjd"
)

// DefaultTimezone is the display timezone label heavens-above uses for UTC.
const DefaultTimezone = "UCT"

// DefaultImageSize is the chart edge length in pixels.
const DefaultImageSize = 800

// locationName is sent as the "loc" parameter on every request.
const locationName = "Unspecified"

// Observer is a geodetic ground position.
type Observer struct {
	LongitudeDeg float64
	LatitudeDeg  float64
	HeightKm     float64
}

func (o Observer) lat() string { return strconv.FormatFloat(o.LatitudeDeg, 'f', 6, 64) }
func (o Observer) lng() string { return strconv.FormatFloat(o.LongitudeDeg, 'f', 6, 64) }

// alt returns the height rounded to the nearest metre.
func (o Observer) alt() string {
	return strconv.FormatFloat(o.HeightKm*1000, 'f', 0, 64)
}

func (o Observer) params(tz string) map[string]string {
	return map[string]string{
		"lat": o.lat(),
		"lng": o.lng(),
		"loc": locationName,
		"alt": o.alt(),
		"tz":  tz,
	}
}

// SummaryRequest asks for the list of upcoming passes of one satellite.
type SummaryRequest struct {
	SatelliteID int
	Observer    Observer
	Timezone    string
}

func (r SummaryRequest) params() map[string]string {
	p := r.Observer.params(r.Timezone)
	p["satid"] = strconv.Itoa(r.SatelliteID)
	return p
}

// DetailRequest asks for the detail page of the pass starting at MJD.
type DetailRequest struct {
	SatelliteID int
	Observer    Observer
	Timezone    string
	MJD         float64
}

func (r DetailRequest) params() map[string]string {
	p := r.Observer.params(r.Timezone)
	p["satid"] = strconv.Itoa(r.SatelliteID)
	p["mjd"] = mjd.Format(r.MJD)
	p["type"] = "V"
	return p
}

// PassChartRequest asks for the rendered sky chart of one pass.
type PassChartRequest struct {
	PassID    string
	Observer  Observer
	Timezone  string
	ImageSize int
}

func (r PassChartRequest) params() map[string]string {
	p := r.Observer.params(r.Timezone)
	p["passID"] = r.PassID
	p["size"] = strconv.Itoa(r.ImageSize)
	p["showUnlit"] = "false"
	return p
}

// SkyChartRequest asks for the whole-sky chart at an observer and time.
type SkyChartRequest struct {
	Observer  Observer
	Timezone  string
	ImageSize int
	MJD       float64
}

func (r SkyChartRequest) params() map[string]string {
	p := r.Observer.params(r.Timezone)
	p["size"] = strconv.Itoa(r.ImageSize)
	p["SL"] = "1"
	p["SN"] = "1"
	p["BW"] = "1"
	p["time"] = mjd.Format(r.MJD)
	p["ecl"] = "0"
	p["cb"] = "0"
	return p
}
