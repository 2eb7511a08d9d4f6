package model

import "github.com/google/uuid"

type ViewerID string

const EmptyViewerID ViewerID = ""

func NewViewerID() ViewerID {
	return ViewerID(uuid.NewString())
}

// ViewerState is the ephemeral per-viewer UI state: what they typed, which
// genre they picked and which movie (if any) is currently selected for
// playback. It is created on first contact and dropped when the cache
// entry expires.
type ViewerState struct {
	Query    string
	Genre    string
	Selected *uuid.UUID
}

// OverlayOpen is derived from the selection; there is no separate
// open/closed flag.
func (s ViewerState) OverlayOpen() bool {
	return s.Selected != nil
}
