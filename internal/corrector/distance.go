package corrector

// maxLengthDelta is the length difference beyond which the exact distance
// is not computed. The delta itself is returned instead: a lower bound, and
// already past every matching threshold the corrector uses. Documented
// approximation for performance.
const maxLengthDelta = 3

// editDistance computes the Damerau-Levenshtein distance (optimal string
// alignment variant: insertion, deletion, substitution, adjacent
// transposition) between two words.
func editDistance(a, b string) int {
	if a == b {
		return 0
	}

	ra := []rune(a)
	rb := []rune(b)
	la, lb := len(ra), len(rb)

	delta := la - lb
	if delta < 0 {
		delta = -delta
	}
	if delta > maxLengthDelta {
		return delta
	}

	if la == 0 {
		return lb
	}
	if lb == 0 {
		return la
	}

	// Three rolling rows: previous-previous, previous, current.
	prev2 := make([]int, lb+1)
	prev := make([]int, lb+1)
	curr := make([]int, lb+1)

	for j := 0; j <= lb; j++ {
		prev[j] = j
	}

	for i := 1; i <= la; i++ {
		curr[0] = i
		for j := 1; j <= lb; j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}

			d := curr[j-1] + 1 // insertion
			if del := prev[j] + 1; del < d {
				d = del // deletion
			}
			if sub := prev[j-1] + cost; sub < d {
				d = sub // substitution
			}
			if i > 1 && j > 1 && ra[i-1] == rb[j-2] && ra[i-2] == rb[j-1] {
				if tr := prev2[j-2] + 1; tr < d {
					d = tr // adjacent transposition
				}
			}
			curr[j] = d
		}
		prev2, prev, curr = prev, curr, prev2
	}

	return prev[lb]
}
