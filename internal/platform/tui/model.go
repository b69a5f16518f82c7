package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ogrinko/bastion/internal/core"
	"github.com/ogrinko/bastion/internal/siege"
	"github.com/ogrinko/bastion/internal/storage"
)

// battleDoneMsg is sent when the battle engine returns.
type battleDoneMsg struct {
	result siege.BattleResult
	err    error
}

// BattleModel is the Bubble Tea model for one battle. The simulation runs
// in the engine's own goroutines; the model only forwards key presses and
// paints snapshots of the shared screen.
type BattleModel struct {
	engine    *siege.Engine
	keys      *core.Keys
	store     *storage.Store
	keyMapper *KeyMapper
	ctx       context.Context
	cancel    context.CancelFunc

	fps       int
	lastFrame uint64
	view      string
	result    *siege.BattleResult
	err       error
	quitting  bool
}

// NewBattleModel creates a model around an assembled engine. The store may
// be nil; the battle then simply goes unrecorded.
func NewBattleModel(engine *siege.Engine, keys *core.Keys, store *storage.Store, fps int) BattleModel {
	if fps <= 0 {
		fps = 30
	}
	// The context lives on the model so ctrl+c can abort the engine from
	// Update; Init copies the model by value and cannot set it.
	ctx, cancel := context.WithCancel(context.Background())
	return BattleModel{
		engine:    engine,
		keys:      keys,
		store:     store,
		keyMapper: NewKeyMapper(),
		ctx:       ctx,
		cancel:    cancel,
		fps:       fps,
	}
}

// Result returns the battle outcome once the engine has finished.
func (m BattleModel) Result() *siege.BattleResult {
	return m.result
}

// Err returns the engine error, if any.
func (m BattleModel) Err() error {
	return m.err
}

// Init starts the battle goroutines and the display refresh loop.
func (m BattleModel) Init() tea.Cmd {
	runCmd := func() tea.Msg {
		result, err := m.engine.Run(m.ctx)
		return battleDoneMsg{result: result, err: err}
	}
	return tea.Batch(runCmd, frameCmd(m.fps))
}

// Update handles messages and updates the model state.
func (m BattleModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		action, isInterrupt := m.keyMapper.MapKey(msg)
		if isInterrupt {
			// Hard quit: abort the engine and leave immediately.
			m.engine.State().EndBattle(siege.CauseAborted)
			if m.cancel != nil {
				m.cancel()
			}
			m.quitting = true
			return m, tea.Quit
		}
		m.keys.Push(action)
		return m, nil

	case FrameMsg:
		if m.quitting {
			return m, nil
		}
		if frame := m.engine.State().Frame(); frame != m.lastFrame {
			m.lastFrame = frame
			m.view = RenderScreen(m.engine.State().Snapshot())
		}
		return m, frameCmd(m.fps)

	case battleDoneMsg:
		m.result = &msg.result
		m.err = msg.err
		m.saveResult()
		if m.cancel != nil {
			m.cancel()
		}
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// saveResult persists the finished battle, best effort.
func (m *BattleModel) saveResult() {
	if m.store == nil || m.result == nil || m.err != nil {
		return
	}
	//nolint:errcheck // Best-effort save, the battle is already over
	m.store.SaveBattle(storage.BattleRecord{
		Defender:     m.result.DefenderName,
		Attacker:     m.result.AttackerName,
		Outcome:      string(m.result.Outcome),
		Projectiles:  m.result.Projectiles,
		CityMass:     m.result.CityMass,
		DurationSecs: int(m.result.Duration / time.Second),
	})
}

// View renders the latest battle snapshot.
func (m BattleModel) View() string {
	if m.quitting {
		return ""
	}
	if m.view == "" {
		m.view = RenderScreen(m.engine.State().Snapshot())
	}
	return m.view
}

// Run starts the Bubble Tea program for a battle and returns its result.
func Run(engine *siege.Engine, keys *core.Keys, store *storage.Store, fps int) (*siege.BattleResult, error) {
	model := NewBattleModel(engine, keys, store, fps)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if err != nil {
		return nil, err
	}
	if fm, ok := final.(BattleModel); ok {
		if fm.Err() != nil {
			return nil, fm.Err()
		}
		return fm.Result(), nil
	}
	return nil, nil
}
