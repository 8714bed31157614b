package dashboard

// PanelStatus tracks one analytics panel through its lifecycle. A panel
// leaves Unfetched exactly once; Loaded and Failed are terminal for the
// lifetime of the dashboard.
type PanelStatus int

const (
	PanelUnfetched PanelStatus = iota
	PanelLoading
	PanelLoaded
	PanelFailed
)

func (s PanelStatus) String() string {
	switch s {
	case PanelUnfetched:
		return "unfetched"
	case PanelLoading:
		return "loading"
	case PanelLoaded:
		return "loaded"
	case PanelFailed:
		return "failed"
	}
	return "unknown"
}

type PanelState struct {
	Status PanelStatus
	Data   map[string]any
	Err    string
}

func panelStart(s PanelState) PanelState {
	return PanelState{Status: PanelLoading, Data: s.Data}
}

func panelLoaded(data map[string]any) PanelState {
	return PanelState{Status: PanelLoaded, Data: data}
}

func panelFailed(msg string) PanelState {
	return PanelState{Status: PanelFailed, Err: msg}
}
