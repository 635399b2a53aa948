package passes

import (
	"context"
	"errors"
	"log/slog"

	"github.com/kiyo-astro/heavens-above/internal/heavens"
	"github.com/kiyo-astro/heavens-above/internal/metrics"
	"github.com/kiyo-astro/heavens-above/internal/mjd"
)

// Fetcher is the subset of heavens.Client used by the chain.
type Fetcher interface {
	FetchSummary(ctx context.Context, req heavens.SummaryRequest) (string, error)
	FetchDetail(ctx context.Context, req heavens.DetailRequest) (string, error)
	FetchPassChart(ctx context.Context, req heavens.PassChartRequest) ([]byte, error)
	FetchSkyChart(ctx context.Context, req heavens.SkyChartRequest) ([]byte, error)
}

// Source identifies which chart a Result carries.
type Source string

const (
	SourcePass     Source = "pass"
	SourceWholeSky Source = "wholesky"
)

// Request is one pass chart lookup.
type Request struct {
	SatelliteID int
	Observer    heavens.Observer
	Timestamp   string // ISO-8601, UTC
	Timezone    string
	ImageSize   int
}

// Result is the chart retrieved for a Request.
type Result struct {
	Image     []byte
	Source    Source
	TargetMJD float64

	// Set when Source is SourcePass.
	PassMJD float64
	PassID  string

	// Set when Source is SourceWholeSky: the primary chain failure.
	Failure *Failure

	// Trace lists the states visited, ending in StateDone.
	Trace []State
}

// Retriever runs the summary -> detail -> chart chain and falls back to the
// whole-sky chart once if any step fails.
type Retriever struct {
	fetcher Fetcher
	logger  *slog.Logger
}

// NewRetriever creates a Retriever backed by fetcher.
func NewRetriever(fetcher Fetcher, logger *slog.Logger) *Retriever {
	return &Retriever{fetcher: fetcher, logger: logger}
}

// Retrieve returns the pass chart for req, or the whole-sky chart at the
// requested time when the pass chart cannot be obtained. The returned error
// is always a *Failure: an input error (no request was sent) or a failure
// of the fallback itself.
func (r *Retriever) Retrieve(ctx context.Context, req Request) (*Result, error) {
	if req.Timezone == "" {
		req.Timezone = heavens.DefaultTimezone
	}
	if req.ImageSize == 0 {
		req.ImageSize = heavens.DefaultImageSize
	}

	target, err := mjd.FromISO(req.Timestamp)
	if err != nil {
		return nil, &Failure{Stage: StateStart, Kind: KindInput, Err: err}
	}

	res, trace, failure := r.primary(ctx, req, target)
	if failure == nil {
		res.Trace = append(trace, StateDone)
		metrics.SetChartBytes(string(SourcePass), len(res.Image))
		return res, nil
	}

	r.logger.Warn("pass chart unavailable, falling back to whole-sky chart",
		"component", "passes",
		"satellite_id", req.SatelliteID,
		"stage", failure.Stage.String(),
		"kind", failure.Kind.String(),
		"error", failure.Err,
	)
	metrics.IncFallback(failure.Kind.String())

	img, err := r.fetcher.FetchSkyChart(ctx, heavens.SkyChartRequest{
		Observer:  req.Observer,
		Timezone:  req.Timezone,
		ImageSize: req.ImageSize,
		MJD:       target,
	})
	if err != nil {
		return nil, &Failure{Stage: StateFallback, Kind: Classify(err), Err: errors.Join(err, failure)}
	}

	metrics.SetChartBytes(string(SourceWholeSky), len(img))
	return &Result{
		Image:     img,
		Source:    SourceWholeSky,
		TargetMJD: target,
		Failure:   failure,
		Trace:     append(trace, StateFallback, StateDone),
	}, nil
}

// primary walks the chain and returns the states it reached. A non-nil
// Failure carries the last of them.
func (r *Retriever) primary(ctx context.Context, req Request, target float64) (*Result, []State, *Failure) {
	state := StateStart
	trace := []State{state}
	advance := func(next State) {
		state = next
		trace = append(trace, next)
	}

	summary, err := r.fetcher.FetchSummary(ctx, heavens.SummaryRequest{
		SatelliteID: req.SatelliteID,
		Observer:    req.Observer,
		Timezone:    req.Timezone,
	})
	if err != nil {
		return nil, trace, newFailure(state, err)
	}
	advance(StateSummaryFetched)

	candidates, err := heavens.ParseSummary(summary)
	if err != nil {
		return nil, trace, newFailure(state, err)
	}
	advance(StateCandidatesParsed)
	r.logger.Debug("pass candidates", "component", "passes", "count", len(candidates), "target_mjd", target)

	passMJD, err := Match(candidates, target)
	if err != nil {
		return nil, trace, newFailure(state, err)
	}
	advance(StatePassMatched)

	detail, err := r.fetcher.FetchDetail(ctx, heavens.DetailRequest{
		SatelliteID: req.SatelliteID,
		Observer:    req.Observer,
		Timezone:    req.Timezone,
		MJD:         passMJD,
	})
	if err != nil {
		return nil, trace, newFailure(state, err)
	}
	advance(StateDetailFetched)

	passID, err := heavens.ParseDetail(detail)
	if err != nil {
		return nil, trace, newFailure(state, err)
	}
	advance(StatePassIDParsed)

	img, err := r.fetcher.FetchPassChart(ctx, heavens.PassChartRequest{
		PassID:    passID,
		Observer:  req.Observer,
		Timezone:  req.Timezone,
		ImageSize: req.ImageSize,
	})
	if err != nil {
		return nil, trace, newFailure(state, err)
	}
	advance(StateChartFetched)

	r.logger.Info("pass chart retrieved",
		"component", "passes",
		"satellite_id", req.SatelliteID,
		"pass_mjd", passMJD,
		"pass_id", passID,
		"bytes", len(img),
	)
	return &Result{
		Image:     img,
		Source:    SourcePass,
		TargetMJD: target,
		PassMJD:   passMJD,
		PassID:    passID,
	}, trace, nil
}
