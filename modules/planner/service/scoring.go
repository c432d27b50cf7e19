package service

import (
	"math"

	fcentity "surfplan-api/modules/forecast/entity"
	"surfplan-api/modules/planner/entity"
	prefentity "surfplan-api/modules/preference/entity"
)

// octantCenters maps the eight compass octants to their center bearings.
var octantCenters = map[string]float64{
	"N": 0, "NE": 45, "E": 90, "SE": 135,
	"S": 180, "SW": 225, "W": 270, "NW": 315,
}

const (
	octantHalfWidth = 22.5
	octantFalloff   = 45.0
)

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

// circularDistance returns the shortest arc between two bearings, in [0, 180].
func circularDistance(a, b float64) float64 {
	d := math.Mod(math.Abs(a-b), 360)
	if d > 180 {
		d = 360 - d
	}
	return d
}

// DirectionScore rates a bearing against a set of allowed octants. An empty
// set accepts anything; a missing reading scores neutral-unknown. Within
// half an octant of the nearest allowed center the score is perfect, then it
// falls on a cosine ramp to zero at a full octant out.
func DirectionScore(actualDeg *float64, allowed []string) float64 {
	if len(allowed) == 0 {
		return 1.0
	}
	if actualDeg == nil {
		return 0.5
	}

	nearest := 180.0
	for _, octant := range allowed {
		center, ok := octantCenters[octant]
		if !ok {
			continue
		}
		if d := circularDistance(*actualDeg, center); d < nearest {
			nearest = d
		}
	}

	switch {
	case nearest <= octantHalfWidth:
		return 1.0
	case nearest <= octantFalloff:
		return 0.5 * (1 + math.Cos(math.Pi*(nearest-octantHalfWidth)/octantHalfWidth))
	default:
		return 0
	}
}

// BandScore rates a reading against an optional [min, max] band. Inside the
// band scores perfect; outside, a two-sided band falls off linearly over a
// pad of a quarter of the band width, and a one-sided bound falls off
// linearly with the bound itself as the scale.
func BandScore(value, lower, upper *float64) float64 {
	if value == nil {
		return 0.5
	}
	if lower == nil && upper == nil {
		return 1.0
	}
	v := *value

	switch {
	case lower != nil && upper != nil:
		if v >= *lower && v <= *upper {
			return 1.0
		}
		pad := 0.25 * (*upper - *lower)
		if pad <= 0 {
			return 0
		}
		dist := *lower - v
		if v > *upper {
			dist = v - *upper
		}
		return clamp01(1 - dist/pad)

	case lower != nil:
		if v >= *lower {
			return 1.0
		}
		if *lower <= 0 {
			return 0
		}
		return clamp01(v / *lower)

	default:
		if v <= *upper {
			return 1.0
		}
		if *upper <= 0 {
			return 0
		}
		return clamp01(1 - (v-*upper)/(*upper))
	}
}

// WindSpeedScore rates wind speed against an optional ceiling, falling
// linearly from perfect at the ceiling to zero at one and a half times it.
func WindSpeedScore(speedKt, maxKt *float64) float64 {
	if speedKt == nil {
		return 0.5
	}
	if maxKt == nil {
		return 1.0
	}
	if *speedKt <= *maxKt {
		return 1.0
	}
	if *maxKt <= 0 {
		return 0
	}
	return clamp01(1 - (*speedKt-*maxKt)/(0.5*(*maxKt)))
}

// TideScore is BandScore with a mildly positive default when the user has no
// tide opinion, so tide neither helps nor hurts much.
func TideScore(tideM, lower, upper *float64) float64 {
	if lower == nil && upper == nil {
		return 0.75
	}
	return BandScore(tideM, lower, upper)
}

// ScoreHour evaluates one forecast hour against a preference profile and
// returns the full breakdown. The composite is the weighted sum clamped
// into [0, 1].
func ScoreHour(h fcentity.ForecastHour, pref *prefentity.SpotPreference, w entity.ScoreWeights) entity.HourScores {
	s := entity.HourScores{
		Height:         BandScore(h.WaveHeightM, pref.MinWaveHeightM, pref.MaxWaveHeightM),
		Period:         BandScore(h.SwellPeriodS, pref.MinSwellPeriodS, pref.MaxSwellPeriodS),
		SwellDirection: DirectionScore(h.SwellDirectionDeg, pref.SwellDirections),
		WindDirection:  DirectionScore(h.WindDirectionDeg, pref.WindDirections),
		WindSpeed:      WindSpeedScore(h.WindSpeedKt, pref.MaxWindSpeedKt),
		Tide:           TideScore(h.TideHeightM, pref.MinTideM, pref.MaxTideM),
	}
	s.Composite = clamp01(
		w.Height*s.Height +
			w.Period*s.Period +
			w.SwellDirection*s.SwellDirection +
			w.WindDirection*s.WindDirection +
			w.WindSpeed*s.WindSpeed +
			w.Tide*s.Tide,
	)
	return s
}
