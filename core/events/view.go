package events

// KindViewChanged identifies switches of the active view.
const KindViewChanged Kind = "view.changed"

// ViewChanged marks a switch of the active view.
type ViewChanged struct {
	Base
	View string
}

// NewViewChanged creates a view changed event.
func NewViewChanged(view string) ViewChanged {
	return ViewChanged{Base: NewBase(KindViewChanged), View: view}
}
