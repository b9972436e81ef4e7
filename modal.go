package ui

import (
	"errors"

	"github.com/chewxy/math32"

	"github.com/gogpu/ui/recording"
)

// BufferState is the state of a Modal's render buffer.
type BufferState uint8

const (
	// Stale means the next Render redraws every element into the buffer.
	Stale BufferState = iota
	// Fresh means the buffer is valid and Render replays it.
	Fresh
)

func (s BufferState) String() string {
	if s == Fresh {
		return "fresh"
	}
	return "stale"
}

// Modal is a Container that renders its content once into a buffer and
// replays that buffer on later frames. Only a change of the container's
// Size invalidates the buffer; changes to elements or other container
// properties show up after an explicit Invalidate.
type Modal struct {
	*Container

	state    BufferState
	buffer   *recording.Recording
	recorder *recording.Recorder
}

// NewModal creates an empty modal in the Stale state.
func NewModal(name string, opts ...ContainerOption) (*Modal, error) {
	c, err := NewContainer(name, opts...)
	if err != nil {
		return nil, err
	}
	m := &Modal{
		Container: c,
		state:     Stale,
		recorder:  recording.NewRecorder(),
	}
	c.onSize = m.Invalidate
	return m, nil
}

// State returns the buffer state.
func (m *Modal) State() BufferState {
	return m.state
}

// Buffer returns the buffered recording in panel coordinates, or nil before
// the first render.
func (m *Modal) Buffer() *recording.Recording {
	return m.buffer
}

// Invalidate marks the buffer stale so the next Render redraws the content.
func (m *Modal) Invalidate() {
	if m.state == Stale {
		return
	}
	m.state = Stale
	Logger().Debug("ui: modal buffer invalidated", "container", m.name)
}

// Render replays the buffered content into b, offset by Position. When the
// buffer is stale it first redraws the panel and every element into it and
// becomes Fresh. While Fresh no element is recomputed or drawn.
func (m *Modal) Render(b recording.Backend) error {
	m.stats.Frames++

	var drawErr error
	if m.state == Stale {
		size := m.GetVec2(Size)
		_ = m.recorder.Begin(int(math32.Ceil(math32.Max(size.X, 0))), int(math32.Ceil(math32.Max(size.Y, 0))))
		drawErr = m.drawContent(m.recorder)
		_ = m.recorder.End()
		m.buffer = m.recorder.Finish()
		m.state = Fresh
		Logger().Debug("ui: modal buffer recorded",
			"container", m.name, "commands", len(m.buffer.Commands()),
			"width", m.buffer.Width(), "height", m.buffer.Height())
	}

	pos := m.GetVec2(Position)
	b.Save()
	b.Translate(pos.X, pos.Y)
	replayErr := m.buffer.Replay(b)
	b.Restore()
	return errors.Join(drawErr, replayErr)
}
