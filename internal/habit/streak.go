package habit

// ComputeStreak counts consecutive days present in history, walking
// backwards from the latest recorded day. It does not depend on today.
func ComputeStreak(history []Day) int {
	last, ok := latest(history)
	if !ok {
		return 0
	}

	set := make(map[Day]struct{}, len(history))
	for _, d := range history {
		set[d] = struct{}{}
	}

	count := 0
	for cursor := last; ; cursor-- {
		if _, ok := set[cursor]; !ok {
			break
		}
		count++
	}
	return count
}
