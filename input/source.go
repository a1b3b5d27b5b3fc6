package input

// Snapshot is the input state for one frame
type Snapshot struct {
	Keys KeySet
	Quit bool
}

// Source yields one snapshot per frame; Poll must not block
type Source interface {
	Poll() Snapshot
}
