package wizard

// Host is the shell that displays the wizard (a modal, a terminal program,
// a remote client). The engine only ever asks it to close.
type Host interface {
	Open()
	Close()
	IsOpen() bool
}

// ModalHost is an in-memory Host with close callbacks.
type ModalHost struct {
	open    bool
	onClose []func()
}

// NewModalHost returns a closed host.
func NewModalHost() *ModalHost {
	return &ModalHost{}
}

// Open marks the host open.
func (h *ModalHost) Open() {
	h.open = true
}

// Close marks the host closed and runs close callbacks when it was open.
func (h *ModalHost) Close() {
	if !h.open {
		return
	}
	h.open = false
	for _, fn := range h.onClose {
		fn()
	}
}

// IsOpen reports whether the host is open.
func (h *ModalHost) IsOpen() bool {
	return h.open
}

// OnClose registers fn to run every time the host closes.
func (h *ModalHost) OnClose(fn func()) {
	h.onClose = append(h.onClose, fn)
}
