package siege

import (
	"math/rand"
	"time"

	"github.com/ogrinko/bastion/internal/core"
)

// ProjectileState is the lifecycle of a projectile actor.
type ProjectileState int

const (
	// Falling: descending one row per tick.
	Falling ProjectileState = iota
	// Exploded: hit the barrier, a structure, or a chained explosion.
	Exploded
	// PastField: left the bottom of the field without exploding. Only
	// reachable on degenerate layouts; the ground floor normally
	// guarantees an impact.
	PastField
)

// Projectile is one falling projectile. It is owned exclusively by the
// goroutine running it; everything it shares with other actors goes through
// the State lock.
type Projectile struct {
	col   int
	row   int
	glyph rune
	under rune // glyph beneath the projectile, restored on the next tick
	state ProjectileState

	rng      *rand.Rand
	maxDelay time.Duration
}

// NewProjectile creates a projectile for the given column. The rng must be
// private to this projectile; delays are drawn from it between rows.
func NewProjectile(col int, rng *rand.Rand, maxDelay time.Duration) *Projectile {
	return &Projectile{
		col:      col,
		row:      FieldTop,
		glyph:    GlyphProjectile,
		rng:      rng,
		maxDelay: maxDelay,
	}
}

// State returns the projectile's lifecycle state.
func (p *Projectile) State() ProjectileState {
	return p.state
}

// Row returns the projectile's current row.
func (p *Projectile) Row() int {
	return p.row
}

// Run simulates the descent until the projectile explodes or leaves the
// field. Each tick sleeps a randomized delay outside the lock, then
// performs one erase/advance/collide/draw transaction under it.
func (p *Projectile) Run(st *State) {
	p.launch(st)

	for p.state == Falling {
		p.sleep()

		st.mu.Lock()
		p.step(st)
		st.frame++
		st.mu.Unlock()

		if p.row > st.Height() {
			if p.state == Falling {
				p.state = PastField
			}
			return
		}
	}
}

// launch draws the projectile at the top of the field, remembering what was
// underneath. A structure wall restores as blank so repeated passes do not
// smear wall glyphs around.
func (p *Projectile) launch(st *State) {
	st.mu.Lock()
	defer st.mu.Unlock()

	under := st.screen.Get(p.col, p.row)
	if under == GlyphWall {
		under = ' '
	}
	p.under = under
	st.screen.SetCell(p.col, p.row, p.glyph, core.ColorYellow)
	st.frame++
}

// step advances the projectile one row and resolves collisions.
// Caller holds the state lock.
func (p *Projectile) step(st *State) {
	h := st.screen.Height()

	// Erase the old position, restoring what the projectile covered.
	if p.row < h {
		st.screen.Set(p.col, p.row, p.under)
	}
	p.row++

	entered := ' '
	if p.row < h {
		entered = st.screen.Get(p.col, p.row)
	}

	switch {
	case entered == GlyphBarrier:
		// Intercepted.
		p.explode()
	case entered == GlyphExplosion && p.row < h-st.tallest:
		// Chained detonation above the structure zone.
		p.explode()
	case p.row == h-st.columnHeightLocked(p.col)+1:
		// Structure impact: the column absorbs the hit and erodes.
		p.explode()
		st.erodeLocked(p.col)
	case entered == GlyphWall || entered == GlyphRoof ||
		entered == GlyphScorch || entered == GlyphExplosion:
		// Passing through structure or debris; restore as blank.
		p.under = ' '
	default:
		p.under = entered
	}

	if p.row < h {
		color := core.ColorYellow
		if p.state == Exploded {
			color = core.ColorRed
		}
		st.screen.SetCell(p.col, p.row, p.glyph, color)
	}
	if p.state == Exploded && p.row <= h {
		st.screen.SetCell(p.col, p.row-1, GlyphScorch, core.ColorOrange)
	}
}

func (p *Projectile) explode() {
	p.state = Exploded
	p.glyph = GlyphExplosion
}

func (p *Projectile) sleep() {
	if p.maxDelay <= 0 {
		return
	}
	time.Sleep(time.Duration(p.rng.Int63n(int64(p.maxDelay))))
}
