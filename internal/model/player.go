package model

// PlayerState tracks the lifecycle of the single playback slot a viewer
// owns. Transitions are driven by selection changes on the server and by
// attach reports coming back from the page.
type PlayerState string

const (
	// PlayerIdle means no manifest is bound to the playback surface.
	PlayerIdle PlayerState = "idle"
	// PlayerAttaching means a manifest was handed to the surface and the
	// streaming library is still establishing the session.
	PlayerAttaching PlayerState = "attaching"
	// PlayerAttached means the page reported the source as bound.
	PlayerAttached PlayerState = "attached"
)

// PlayerSession is the scoped resource behind a playing movie: acquired
// when a manifest is assigned, released on every path that changes or
// removes it.
type PlayerSession struct {
	ViewerID ViewerID
	Manifest string
	State    PlayerState
}
