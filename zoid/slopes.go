package zoid

// Slopes is a D-tuple of per-axis face slopes, conventionally in {-1, +1}.
// A negative slope denotes an opening face: the base expands by 1 per time
// step on that axis. A positive slope denotes a closing face: the base
// contracts by 1 per time step.
type Slopes []int

// Clone returns an independent copy of s.
func (s Slopes) Clone() Slopes {
	out := make(Slopes, len(s))
	copy(out, s)
	return out
}

// Flip returns a copy of s with axis i's sign inverted.
func (s Slopes) Flip(i int) Slopes {
	out := s.Clone()
	out[i] = -out[i]
	return out
}
