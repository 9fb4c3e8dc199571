package schedule

// boundary marks the start or end index of an existing schedule.
type boundary struct {
	end bool
	idx int
}

// RangeFree reports whether the candidate slot range [from, to) collides
// with any of the given schedules. The input must be sorted ascending by
// start time and the range normalized (from <= to); synthetic selection
// blocks are skipped.
//
// The check is a single scan over flattened start/end boundaries: the first
// boundary strictly after `from` decides the outcome. No boundary means
// nothing can overlap. An end boundary means `from` lies inside a schedule.
// A start boundary collides only when it falls before `to`; a candidate
// ending exactly where a schedule starts is fine (half-open ranges).
// This tie-break is sound only because the existing schedules themselves
// never overlap each other.
func RangeFree(sorted []Schedule, from, to int) bool {
	var bounds []boundary
	for _, s := range sorted {
		if s.Type.Synthetic() {
			continue
		}
		bounds = append(bounds,
			boundary{end: false, idx: s.StartIndex()},
			boundary{end: true, idx: s.EndIndex()},
		)
	}

	for _, b := range bounds {
		if b.idx <= from {
			continue
		}
		if b.end {
			return false
		}
		return b.idx >= to
	}
	return true
}
