package topcode

import "testing"

func TestChecksumPopcountFive(t *testing.T) {
	cases := []struct {
		bits int
		want bool
	}{
		{0x1F, true},    // 0b0000000011111, popcount 5
		{0x1FFF, false}, // all 13 bits set, popcount 13
		{0, false},      // popcount 0
		{0x155, true},   // 0b0101010101, popcount 5
	}
	for _, c := range cases {
		if got := checksum(c.bits); got != c.want {
			t.Errorf("checksum(%#x) = %v, want %v", c.bits, got, c.want)
		}
	}
}

func TestChecksumMatchesPopcountInvariant(t *testing.T) {
	for b := 0; b < 0x2000; b++ {
		count := 0
		for i := 0; i < Sectors; i++ {
			count += (b >> uint(i)) & 1
		}
		want := count == 5
		if got := checksum(b); got != want {
			t.Fatalf("checksum(%#x) = %v, want %v (popcount %d)", b, got, want, count)
		}
	}
}

func TestRotateLowestIdempotentOnMinimalValues(t *testing.T) {
	for _, id := range EnumerateValidCodes(20) {
		minimum, _ := rotateLowest(id, 0)
		if minimum != id {
			t.Errorf("rotateLowest(%d, 0) = %d, want %d (id already minimal)", id, minimum, id)
		}
	}
}

func TestRotateLowestNeverIncreases(t *testing.T) {
	for b := 0; b < 0x2000; b += 7 {
		minimum, _ := rotateLowest(b, 0)
		if minimum > b {
			t.Errorf("rotateLowest(%#x, 0) = %#x, which is larger than input", b, minimum)
		}
	}
}

func TestInBullseyeReflexiveAndMonotone(t *testing.T) {
	c := &Codeword{x: 50, y: 50, unit: 10}
	if !c.InBullseye(c.x, c.y) {
		t.Fatal("InBullseye is not reflexive at the code's own center")
	}
	if !c.InBullseye(55, 50) {
		t.Error("point 5px away (inside a 10px-radius disc) should be in the bullseye")
	}
	if c.InBullseye(65, 50) {
		t.Error("point 15px away (outside a 10px-radius disc) should not be in the bullseye")
	}
	// Monotonicity: once a point along a ray leaves the disc, no farther
	// point on the same ray re-enters it.
	for d := 0.0; d <= 20; d++ {
		inside := c.InBullseye(c.x+d, c.y)
		if !inside {
			for d2 := d; d2 <= 20; d2++ {
				if c.InBullseye(c.x+d2, c.y) {
					t.Fatalf("point at distance %v re-entered the bullseye after leaving at %v", d2, d)
				}
			}
			break
		}
	}
}

func TestEnumerateValidCodesAreAllPopcountFiveAndMinimal(t *testing.T) {
	codes := EnumerateValidCodes(30)
	if len(codes) != 30 {
		t.Fatalf("got %d codes, want 30", len(codes))
	}
	seen := map[int]bool{}
	for _, id := range codes {
		if !checksum(id) {
			t.Errorf("enumerated id %d fails checksum", id)
		}
		minimum, _ := rotateLowest(id, 0)
		if minimum != id {
			t.Errorf("enumerated id %d is not rotation-minimal (minimum %d)", id, minimum)
		}
		if seen[id] {
			t.Errorf("duplicate id %d", id)
		}
		seen[id] = true
	}
}
