package service

import (
	"math"
	"time"

	fcentity "surfplan-api/modules/forecast/entity"
	"surfplan-api/modules/planner/entity"
	prefentity "surfplan-api/modules/preference/entity"
)

// WindowBuilder walks one spot's hourly series in order and emits a candidate
// session window for every hour the user is available, extending each to two
// hours when the next sample is the exact local successor.
//
// The walk advances one index per iteration even after pairing, so an hour
// consumed as a second hour may also open its own window. Overlap is left in
// on purpose: the ranker surfaces the strongest windows and callers that want
// distinct slots dedupe by start time.
type WindowBuilder struct {
	mapper  *CalendarMapper
	weights entity.ScoreWeights
}

func NewWindowBuilder(mapper *CalendarMapper, weights entity.ScoreWeights) *WindowBuilder {
	return &WindowBuilder{mapper: mapper, weights: weights}
}

// Build scores the series against pref and returns the windows that start at
// or before cutoff. Availability gates only the opening hour; a paired second
// hour rides along regardless of its own slot.
func (b *WindowBuilder) Build(hours []fcentity.ForecastHour, pref *prefentity.SpotPreferenceView, avail map[int]bool, cutoff time.Time) []entity.SessionWindow {
	windows := []entity.SessionWindow{}
	for i := 0; i < len(hours); i++ {
		h := hours[i]
		if h.Time.After(cutoff) {
			break
		}

		dow, hr := b.mapper.LocalSlot(h.Time)
		if !avail[prefentity.SlotKey(dow, hr)] {
			continue
		}

		scored := []entity.ScoredHour{{
			Time:       h.Time,
			Conditions: h,
			Scores:     ScoreHour(h, &pref.SpotPreference, b.weights),
		}}

		if i+1 < len(hours) {
			next := hours[i+1]
			ndow, nhr := b.mapper.LocalSlot(next.Time)
			if isLocalSuccessor(dow, hr, ndow, nhr) {
				scored = append(scored, entity.ScoredHour{
					Time:       next.Time,
					Conditions: next,
					Scores:     ScoreHour(next, &pref.SpotPreference, b.weights),
				})
			}
		}

		windows = append(windows, buildWindow(pref, scored))
	}
	return windows
}

// isLocalSuccessor reports whether (nextDow, nextHr) is exactly one local
// wall-clock hour after (dow, hr), including the 23 to 0 day rollover.
func isLocalSuccessor(dow, hr, nextDow, nextHr int) bool {
	if dow == nextDow && nextHr == hr+1 {
		return true
	}
	return hr == 23 && nextHr == 0 && nextDow == (dow+1)%7
}

func buildWindow(pref *prefentity.SpotPreferenceView, scored []entity.ScoredHour) entity.SessionWindow {
	total := 0.0
	for _, sh := range scored {
		total += sh.Scores.Composite
	}
	mean := total / float64(len(scored))

	// Ties go to the earlier hour.
	best := scored[0]
	if len(scored) == 2 && scored[1].Scores.Composite > scored[0].Scores.Composite {
		best = scored[1]
	}

	last := scored[len(scored)-1]
	return entity.SessionWindow{
		SpotID:     pref.SpotID,
		SpotName:   pref.SpotName,
		SpotRegion: pref.SpotRegion,
		StartTime:  scored[0].Time,
		EndTime:    last.Time.Add(time.Hour),
		Score:      int(math.Round(mean * 100)),
		Scores:     scored[0].Scores,
		BestHour:   best.Time,
		Hours:      scored,
	}
}
