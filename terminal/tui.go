package terminal

import (
	"bytes"
	"sync"
	"sync/atomic"

	tea "charm.land/bubbletea/v2"
)

// frameMsg carries the next frame to display.
type frameMsg string

// logMsg carries one entry read from the log channel.
type logMsg []byte

// closeMsg asks the program to exit.
type closeMsg struct{}

// TUI is a display backed by a Bubble Tea program on the alternate screen.
// Pressing q, esc, or ctrl+c calls the interrupt function given to [NewTUI];
// the program keeps running until [TUI.Close].
//
// Create instances with [NewTUI].
type TUI struct {
	err    error
	prog   *tea.Program
	model  *tuiModel
	done   chan struct{}
	width  atomic.Int64
	closer sync.Once
}

// TUIOption configures a [TUI].
type TUIOption func(*tuiModel)

// WithLogs shows the most recent entry received on ch in a status row
// below the frame.
func WithLogs(ch <-chan []byte) TUIOption {
	return func(m *tuiModel) {
		m.logs = ch
	}
}

// WithProgramOptions passes options through to [tea.NewProgram].
func WithProgramOptions(opts ...tea.ProgramOption) TUIOption {
	return func(m *tuiModel) {
		m.progOpts = append(m.progOpts, opts...)
	}
}

// NewTUI creates a [TUI]. The interrupt function is called, possibly more
// than once, when the user asks to stop.
func NewTUI(interrupt func(), opts ...TUIOption) *TUI {
	t := &TUI{done: make(chan struct{})}

	m := &tuiModel{interrupt: interrupt, width: &t.width}
	for _, opt := range opts {
		opt(m)
	}

	t.model = m
	t.prog = tea.NewProgram(m, m.progOpts...)

	return t
}

// Open starts the program in the background.
func (t *TUI) Open() error {
	go func() {
		_, t.err = t.prog.Run()
		close(t.done)
	}()

	return nil
}

// Show replaces the displayed frame.
func (t *TUI) Show(frame string) error {
	select {
	case <-t.done:
		return t.err
	default:
	}

	t.prog.Send(frameMsg(frame))

	return nil
}

// Close stops the program, restoring the terminal, and returns the error
// the program exited with, if any. Idempotent.
func (t *TUI) Close() error {
	t.closer.Do(func() {
		t.prog.Send(closeMsg{})
		<-t.done
	})

	return t.err
}

// Width returns the last reported window width, or 0 before the first
// resize event.
func (t *TUI) Width() int {
	return int(t.width.Load())
}

// tuiModel is the Bubble Tea model behind [TUI].
type tuiModel struct {
	width     *atomic.Int64
	interrupt func()
	logs      <-chan []byte
	frame     string
	status    string
	progOpts  []tea.ProgramOption
}

func (m *tuiModel) Init() tea.Cmd {
	return m.waitLog()
}

// waitLog returns a command that blocks for the next log entry.
func (m *tuiModel) waitLog() tea.Cmd {
	if m.logs == nil {
		return nil
	}

	ch := m.logs

	return func() tea.Msg {
		entry, ok := <-ch
		if !ok {
			return nil
		}

		return logMsg(entry)
	}
}

func (m *tuiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			if m.interrupt != nil {
				m.interrupt()
			}
		}

	case tea.WindowSizeMsg:
		m.width.Store(int64(msg.Width))

	case frameMsg:
		m.frame = string(msg)

	case logMsg:
		lines := bytes.Split(bytes.TrimRight(msg, "\n"), []byte("\n"))
		m.status = string(lines[len(lines)-1])

		return m, m.waitLog()

	case closeMsg:
		return m, tea.Quit
	}

	return m, nil
}

func (m *tuiModel) View() tea.View {
	content := m.frame
	if m.status != "" {
		content += "\n" + m.status
	}

	v := tea.NewView(content)
	v.AltScreen = true

	return v
}
