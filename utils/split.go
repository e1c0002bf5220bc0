package utils

// Range is a half-open interval of integers: [Start, End)
type Range struct {
	Start, End int
}

func (r Range) Len() int {
	return r.End - r.Start
}

// Split divides [start, end) into at most 'parts' contiguous, non-empty ranges, in order, whose
// lengths differ by at most one. Fewer ranges are returned if there are fewer than 'parts' values.
//
// Split assumes that end ≥ start. It panics if parts < 1.
func Split(start, end, parts int) []Range {
	if parts < 1 {
		panic("utils.Split: parts < 1")
	}

	n := end - start
	if n <= 0 {
		return nil
	} else if parts > n {
		parts = n
	}

	size, extra := n/parts, n%parts
	rs := make([]Range, parts)

	index := start
	for i := range rs {
		e := index + size
		// the first 'extra' ranges take one more
		if i < extra {
			e++
		}

		rs[i] = Range{index, e}
		index = e
	}

	return rs
}
