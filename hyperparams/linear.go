package hyperparams

type linear struct {
	start, end float32
	total      int
}

// Linear returns a learning rate that moves in a straight line from 'start' at iteration 0 towards
// 'end' at iteration 'total'. The value at the last iteration (total - 1) is therefore not quite
// 'end'.
func Linear(start, end float32, total int) *linear {
	return &linear{start, end, total}
}

func (l *linear) Value(iter int) float32 {
	return l.start + (l.end-l.start)*float32(iter)/float32(l.total)
}
