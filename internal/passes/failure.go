package passes

import (
	"errors"
	"fmt"

	"github.com/kiyo-astro/heavens-above/internal/heavens"
	"github.com/kiyo-astro/heavens-above/internal/mjd"
)

// State is a step of the retrieval chain.
type State int

const (
	StateStart State = iota
	StateSummaryFetched
	StateCandidatesParsed
	StatePassMatched
	StateDetailFetched
	StatePassIDParsed
	StateChartFetched
	StateFallback
	StateDone
)

var stateNames = [...]string{
	StateStart:            "start",
	StateSummaryFetched:   "summary_fetched",
	StateCandidatesParsed: "candidates_parsed",
	StatePassMatched:      "pass_matched",
	StateDetailFetched:    "detail_fetched",
	StatePassIDParsed:     "passid_parsed",
	StateChartFetched:     "chart_fetched",
	StateFallback:         "fallback",
	StateDone:             "done",
}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return fmt.Sprintf("state(%d)", int(s))
	}
	return stateNames[s]
}

// Kind classifies a Failure.
type Kind int

const (
	KindUnknown Kind = iota
	KindInput
	KindNetwork
	KindParse
	KindNoMatch
)

func (k Kind) String() string {
	switch k {
	case KindInput:
		return "input"
	case KindNetwork:
		return "network"
	case KindParse:
		return "parse"
	case KindNoMatch:
		return "no_match"
	default:
		return "unknown"
	}
}

// Classify maps an error from any chain stage to its Kind.
func Classify(err error) Kind {
	var (
		reqErr   *heavens.RequestError
		parseErr *heavens.ParseError
		failure  *Failure
	)
	switch {
	case err == nil:
		return KindUnknown
	case errors.As(err, &failure):
		return failure.Kind
	case errors.Is(err, mjd.ErrInvalidTimestamp):
		return KindInput
	case errors.As(err, &reqErr):
		return KindNetwork
	case errors.As(err, &parseErr):
		return KindParse
	case errors.Is(err, ErrNoMatch):
		return KindNoMatch
	default:
		return KindUnknown
	}
}

// Failure is the error of one chain stage. Stage is the last state reached
// before the failing step.
type Failure struct {
	Stage State
	Kind  Kind
	Err   error
}

func newFailure(stage State, err error) *Failure {
	return &Failure{Stage: stage, Kind: Classify(err), Err: err}
}

func (f *Failure) Error() string {
	return fmt.Sprintf("%s failure after %s: %v", f.Kind, f.Stage, f.Err)
}

func (f *Failure) Unwrap() error { return f.Err }
