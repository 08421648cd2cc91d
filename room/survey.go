package room

// Range is an inclusive integer span
type Range struct {
	Min, Max int
}

// Histogram is a decimal digit frequency count over a block of room identities
type Histogram struct {
	Counts [10]int
	Rooms  int
	Unique int
}

// Total returns the number of digits counted
func (h Histogram) Total() int {
	n := 0
	for _, c := range h.Counts {
		n += c
	}
	return n
}

// Frequency returns the share of digit d
func (h Histogram) Frequency(d int) float64 {
	total := h.Total()
	if total == 0 || d < 0 || d > 9 {
		return 0
	}
	return float64(h.Counts[d]) / float64(total)
}

// ChiSquare measures deviation from a uniform digit distribution (9 degrees of freedom)
func (h Histogram) ChiSquare() float64 {
	total := h.Total()
	if total == 0 {
		return 0
	}
	expected := float64(total) / 10
	chi := 0.0
	for _, c := range h.Counts {
		d := float64(c) - expected
		chi += d * d / expected
	}
	return chi
}

// Survey hashes every coordinate in the block and counts identity digits
func Survey(xr, yr, zr Range) Histogram {
	var h Histogram
	seen := make(map[string]struct{})
	for x := xr.Min; x <= xr.Max; x++ {
		for y := yr.Min; y <= yr.Max; y++ {
			for z := zr.Min; z <= zr.Max; z++ {
				id := UniqueID(x, y, z)
				seen[id] = struct{}{}
				h.Rooms++
				for i := 0; i < len(id); i++ {
					h.Counts[id[i]-'0']++
				}
			}
		}
	}
	h.Unique = len(seen)
	return h
}
