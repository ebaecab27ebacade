package canvas

// KeyRepeat turns a held key into discrete presses. Durations are counted in
// driver updates: the first update fires, then the key fires again every
// Interval updates once it has been held for Delay updates.
type KeyRepeat struct {
	Delay    int
	Interval int
}

// DefaultKeyRepeat approximates desktop key repeat at 60 updates per second.
var DefaultKeyRepeat = KeyRepeat{Delay: 15, Interval: 3}

// Fire reports whether a key held for d updates should fire now.
// A d of zero means the key is up.
func (r KeyRepeat) Fire(d int) bool {
	switch {
	case d <= 0:
		return false
	case d == 1:
		return true
	case d < r.Delay || r.Interval <= 0:
		return false
	default:
		return (d-r.Delay)%r.Interval == 0
	}
}
