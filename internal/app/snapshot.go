package app

import "github.com/verte-zerg/tuidrill/internal/session"

// Snapshot is a read-only view of the controller for rendering.
type Snapshot struct {
	Mode Mode

	Entries  []string
	Selected int
	Notice   string

	SetName  string
	Language string
	Prompt   string
	Input    string
	Feedback *Feedback
	Stats    session.Stats

	CanRetry bool
	CanSkip  bool
}

// Snapshot builds the display view of the current state.
func (c *Controller) Snapshot() Snapshot {
	switch st := c.state.(type) {
	case *Selecting:
		names := make([]string, len(st.Catalog))
		for i, e := range st.Catalog {
			names[i] = e.Name
		}
		return Snapshot{
			Mode:     ModeSelecting,
			Entries:  names,
			Selected: st.Index,
			Notice:   st.Notice,
		}
	case *Drilling:
		snap := Snapshot{
			Mode:     ModeDrilling,
			SetName:  st.Set.Name,
			Language: st.Set.Language,
			Prompt:   st.Session.CurrentItem().Prompt,
			Input:    string(st.Input),
			Stats:    st.Session.Stats(),
		}
		if st.Feedback != nil {
			fb := *st.Feedback
			snap.Feedback = &fb
			snap.CanRetry = !fb.Correct
			snap.CanSkip = !fb.Correct
		}
		return snap
	case *Finished:
		return Snapshot{
			Mode:    ModeFinished,
			SetName: st.SetName,
			Stats:   st.Stats,
		}
	default:
		return Snapshot{}
	}
}
