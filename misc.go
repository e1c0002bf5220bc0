package vectornn

// CorrectRound returns whether every output rounds to its target, assuming targets of 0 or 1.
//
// assumes len(outs) == len(targets)
func CorrectRound(outs, targets []float32) bool {
	for i := range outs {
		if (outs[i] >= 0.5) != (targets[i] >= 0.5) {
			return false
		}
	}

	return true
}

// CorrectThreshold returns a test for correctness that requires outputs to be above 'high' where
// their target is above 0.5, and below 'low' otherwise. Outputs between the two are never correct.
func CorrectThreshold(high, low float32) func(outs, targets []float32) bool {
	return func(outs, targets []float32) bool {
		for i := range outs {
			if targets[i] > 0.5 {
				if outs[i] <= high {
					return false
				}
			} else if outs[i] >= low {
				return false
			}
		}

		return true
	}
}
