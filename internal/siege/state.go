// Package siege implements the concurrent battle engine: a shared city
// grid mutated by one defender controller, one attacker controller, and a
// bounded batch of projectile actors, all serialized by a single lock.
package siege

import (
	"sync"

	"github.com/ogrinko/bastion/internal/core"
)

// Glyphs on the shared grid. Projectiles and structure walls share a rune;
// the restore logic accounts for it.
const (
	GlyphBarrier    = '#'
	GlyphProjectile = '|'
	GlyphExplosion  = '*'
	GlyphScorch     = '?'
	GlyphRoof       = '_'
	GlyphWall       = '|'
)

const (
	// FloorHeight is ground level for a structure column. Erosion never
	// takes a column below it; heights 0 and 1 are render states, not
	// structure.
	FloorHeight = 2

	// FieldTop is the first row projectiles occupy. The two rows above it
	// belong to the status area.
	FieldTop = 2
)

// Cause identifies which side ended the battle.
type Cause string

const (
	CauseNone         Cause = ""
	CauseDefenderQuit Cause = "defender_quit"
	CauseBudgetSpent  Cause = "budget_spent"
	CauseAborted      Cause = "aborted"
)

// State is the shared mutable battle state: the screen, the city layout,
// the barrier position, and the game-over flag. Every read or write goes
// through the single mutex; no caller holds it across a sleep or a blocking
// read. Code outside this package only sees synchronized accessors.
type State struct {
	mu     sync.Mutex
	screen *core.Screen
	frame  uint64

	layout  []int
	tallest int

	barrierX int
	barrierY int
	barrierW int

	gameOver bool
	cause    Cause
	done     chan struct{}

	// Status-area cursor, advanced by announcements.
	msgRow int
	msgCol int
}

// NewState creates the shared state for a battle on a width x height grid.
// The layout is copied; the scenario stays immutable.
func NewState(width, height int, layout []int, tallest, barrierW int) *State {
	l := make([]int, len(layout))
	copy(l, layout)

	return &State{
		screen:   core.NewScreen(width, height),
		layout:   l,
		tallest:  tallest,
		barrierX: width/2 - barrierW/2,
		barrierY: height - core.Max(FloorHeight, tallest) - 2,
		barrierW: barrierW,
		done:     make(chan struct{}),
		msgRow:   FieldTop,
	}
}

// Width returns the field width. Immutable after creation.
func (s *State) Width() int {
	return s.screen.Width()
}

// Height returns the field height. Immutable after creation.
func (s *State) Height() int {
	return s.screen.Height()
}

// Tallest returns the tallest initial structure height. Never updated, even
// as columns erode; the chained-detonation rule depends on that.
func (s *State) Tallest() int {
	return s.tallest
}

// GameOver reports whether either side has ended the battle.
func (s *State) GameOver() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gameOver
}

// EndBattle marks the battle over. The transition is monotonic: the first
// cause wins and repeated calls are no-ops.
func (s *State) EndBattle(cause Cause) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.gameOver {
		return
	}
	s.gameOver = true
	s.cause = cause
	close(s.done)
}

// Done returns a channel closed when the battle ends. Lets a reader blocked
// on input observe an attacker-side shutdown.
func (s *State) Done() <-chan struct{} {
	return s.done
}

// Cause returns who ended the battle, or CauseNone while it runs.
func (s *State) Cause() Cause {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cause
}

// BarrierX returns the left edge of the barrier.
func (s *State) BarrierX() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.barrierX
}

// MoveBarrier shifts the barrier by delta columns, clamped to the field,
// and re-stamps it. The vacated cells are blanked.
func (s *State) MoveBarrier(delta int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	nx := core.Clamp(s.barrierX+delta, 0, s.screen.Width()-s.barrierW)
	if nx == s.barrierX {
		return
	}
	for i := 0; i < s.barrierW; i++ {
		s.screen.Set(s.barrierX+i, s.barrierY, ' ')
	}
	s.barrierX = nx
	for i := 0; i < s.barrierW; i++ {
		s.screen.SetCell(s.barrierX+i, s.barrierY, GlyphBarrier, core.ColorCyan)
	}
	s.frame++
}

// ColumnHeight returns the height of a structure column. Columns beyond the
// layout are ground level.
func (s *State) ColumnHeight(col int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.columnHeightLocked(col)
}

func (s *State) columnHeightLocked(col int) int {
	if col < 0 || col >= len(s.layout) {
		return FloorHeight
	}
	return s.layout[col]
}

func (s *State) erodeLocked(col int) {
	if col >= 0 && col < len(s.layout) && s.layout[col] > FloorHeight {
		s.layout[col]--
	}
}

// LayoutSnapshot returns a copy of the current column heights.
func (s *State) LayoutSnapshot() []int {
	s.mu.Lock()
	defer s.mu.Unlock()
	l := make([]int, len(s.layout))
	copy(l, s.layout)
	return l
}

// CityMass returns the sum of the remaining column heights, a measure of
// how much city survived the attack.
func (s *State) CityMass() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	mass := 0
	for _, h := range s.layout {
		mass += h
	}
	return mass
}

// CellRune returns the rune currently on the grid at (x, y).
func (s *State) CellRune(x, y int) rune {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.screen.Get(x, y)
}

// Frame returns the flush counter. It is bumped on every visible mutation,
// so the platform can skip redraws of unchanged frames.
func (s *State) Frame() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.frame
}

// Snapshot returns a consistent copy of the screen for rendering.
func (s *State) Snapshot() *core.Screen {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.screen.Clone()
}

// InitField draws the initial skyline and the barrier.
//
// The skyline is an outline: each column taller than the floor has a roof
// glyph, with a wall segment on the taller side of every height transition.
// Floor-level columns get a roof glyph at ground; zero-height columns stay
// blank.
func (s *State) InitField() {
	s.mu.Lock()
	defer s.mu.Unlock()

	h := s.screen.Height()
	w := s.screen.Width()

	prev := FloorHeight
	for i := 0; i < w; i++ {
		curr := s.columnHeightLocked(i)
		switch {
		case curr > FloorHeight:
			if curr < prev {
				s.dropRoofLocked(i-1, prev)
			}
			s.screen.SetCell(i, h-curr, GlyphRoof, core.ColorGray)
			if curr > prev {
				for j := h - curr + 1; j <= h-2; j++ {
					s.screen.SetCell(i, j, GlyphWall, core.ColorGray)
				}
			}
		case curr == 1 || curr == FloorHeight:
			if prev > FloorHeight {
				s.dropRoofLocked(i-1, prev)
			}
			s.screen.SetCell(i, h-curr, GlyphRoof, core.ColorGray)
		}
		prev = curr
	}

	for i := 0; i < s.barrierW; i++ {
		s.screen.SetCell(s.barrierX+i, s.barrierY, GlyphBarrier, core.ColorCyan)
	}
	s.frame++
}

// dropRoofLocked converts the roof of a taller column into its right-edge
// wall when the skyline steps down after it.
func (s *State) dropRoofLocked(col, height int) {
	h := s.screen.Height()
	if col < 0 || s.screen.Get(col, h-height) != GlyphRoof {
		return
	}
	for j := h - height; j <= h-2; j++ {
		s.screen.SetCell(col, j, GlyphWall, core.ColorGray)
	}
}
