package match

// Jaro returns the Jaro similarity of two strings in [0, 1]: matching
// characters within a sliding window, penalized by transpositions.
// An empty string compares to 0.0 with anything, including another empty
// string.
func Jaro(a, b string) float64 {
	s1 := []rune(a)
	s2 := []rune(b)
	if len(s1) == 0 || len(s2) == 0 {
		return 0
	}

	window := max(len(s1), len(s2))/2 - 1
	if window < 0 {
		window = 0
	}

	matched1 := make([]bool, len(s1))
	matched2 := make([]bool, len(s2))
	matches := 0

	for i := range s1 {
		lo := i - window
		if lo < 0 {
			lo = 0
		}
		hi := i + window
		if hi >= len(s2) {
			hi = len(s2) - 1
		}
		for j := lo; j <= hi; j++ {
			if matched2[j] || s1[i] != s2[j] {
				continue
			}
			matched1[i] = true
			matched2[j] = true
			matches++
			break
		}
	}

	if matches == 0 {
		return 0
	}

	// Half-transpositions: matched characters out of order.
	transpositions := 0
	j := 0
	for i := range s1 {
		if !matched1[i] {
			continue
		}
		for !matched2[j] {
			j++
		}
		if s1[i] != s2[j] {
			transpositions++
		}
		j++
	}

	m := float64(matches)
	t := float64(transpositions) / 2
	return (m/float64(len(s1)) + m/float64(len(s2)) + (m-t)/m) / 3
}

const (
	winklerScale     = 0.1
	winklerMaxPrefix = 4
)

// JaroWinkler boosts the Jaro similarity by a common-prefix bonus: scale
// factor 0.1 over at most 4 leading characters. Symmetric, total, and 1.0
// for identical non-empty inputs.
func JaroWinkler(a, b string) float64 {
	j := Jaro(a, b)
	if j == 0 {
		return 0
	}

	s1 := []rune(a)
	s2 := []rune(b)
	prefix := 0
	for prefix < len(s1) && prefix < len(s2) && prefix < winklerMaxPrefix && s1[prefix] == s2[prefix] {
		prefix++
	}

	return j + float64(prefix)*winklerScale*(1-j)
}
