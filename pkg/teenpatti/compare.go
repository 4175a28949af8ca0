package teenpatti

// CompareHands compares two analyzed hands and returns:
// 1 if a wins, -1 if b wins, 0 if tie
func CompareHands(a, b *HandAnalyzer) int {
	if a.category != b.category {
		if a.category < b.category {
			return 1
		}

		return -1
	}

	if a.tiebreak != b.tiebreak {
		if a.tiebreak > b.tiebreak {
			return 1
		}

		return -1
	}

	if a.HighValue() != b.HighValue() {
		if a.HighValue() > b.HighValue() {
			return 1
		}

		return -1
	}

	return 0
}

// Beats reports whether the hand is strictly stronger than the other
func (h *HandAnalyzer) Beats(other *HandAnalyzer) bool {
	return CompareHands(h, other) > 0
}
