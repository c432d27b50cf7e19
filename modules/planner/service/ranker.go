package service

import (
	"sort"

	"surfplan-api/modules/planner/entity"
)

// RankWindows orders pooled windows by score descending, breaking ties by
// earlier start. The sort is stable so equal windows keep their per-spot
// order. Windows are neither merged nor deduplicated here.
func RankWindows(windows []entity.SessionWindow) {
	sort.SliceStable(windows, func(i, j int) bool {
		if windows[i].Score != windows[j].Score {
			return windows[i].Score > windows[j].Score
		}
		return windows[i].StartTime.Before(windows[j].StartTime)
	})
}
