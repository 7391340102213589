package topcode

// EnumerateValidCodes returns the first n ids that are valid TopCode
// codewords: their low Sectors bits have a population count of 5, and they
// are already their own rotation-minimum (rotateLowest(id, 0) == id).
// Walking ids upward from 0 and testing both conditions is exactly how
// the reference TopCodes generateCodes() builds its symbol set;
// enumerating valid codewords is distinct from rendering or assigning
// them to physical symbols. This is primarily useful to tests that need a
// handful of known-good ids without hardcoding magic numbers.
func EnumerateValidCodes(n int) []int {
	codes := make([]int, 0, n)
	for base := 0; len(codes) < n; base++ {
		minimum, _ := rotateLowest(base, 0)
		if minimum == base && checksum(base) {
			codes = append(codes, base)
		}
	}
	return codes
}
