package habit

// MarkDone records today in the habit's history and recomputes the
// withered flag. The wither check runs before the revive check, so a mark
// that both ends a long gap and completes a qualifying run leaves the habit
// healthy.
func MarkDone(h Habit, today Day) Habit {
	prior := h.History
	withered := h.Withered

	if last, ok := latest(prior); ok && gap(today, last) >= MissThreshold {
		withered = true
	}

	h.History = normalizeDays(append(append([]Day{}, prior...), today))

	if withered && ComputeStreak(h.History) >= ReviveThreshold {
		withered = false
	}
	h.Withered = withered
	return h
}

// Undo removes today from the habit's history. An emptied history is
// always healthy; otherwise the habit can only wither, never revive.
func Undo(h Habit, today Day) Habit {
	next := make([]Day, 0, len(h.History))
	for _, d := range h.History {
		if d != today {
			next = append(next, d)
		}
	}
	h.History = next

	last, ok := latest(next)
	if !ok {
		h.Withered = false
		return h
	}
	if gap(today, last) >= MissThreshold {
		h.Withered = true
	}
	return h
}
