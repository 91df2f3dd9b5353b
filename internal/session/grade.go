package session

// GradeSingle reports whether the selected option matches the canonical one.
func GradeSingle(selected, canonical int) bool {
	return selected == canonical
}

// GradeMultiple reports exact set equality between the selected and
// canonical option indices. Selection order and duplicates are irrelevant;
// there is no partial credit.
func GradeMultiple(selected, canonical []int) bool {
	selectedSet := indexSet(selected)
	canonicalSet := indexSet(canonical)
	if len(selectedSet) != len(canonicalSet) {
		return false
	}
	for idx := range canonicalSet {
		if _, ok := selectedSet[idx]; !ok {
			return false
		}
	}
	return true
}

func indexSet(indices []int) map[int]struct{} {
	set := make(map[int]struct{}, len(indices))
	for _, idx := range indices {
		set[idx] = struct{}{}
	}
	return set
}
