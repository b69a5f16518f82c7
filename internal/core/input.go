package core

// Action represents a semantic battle action, abstracted from physical key
// presses. The platform layer maps keys to actions; controllers only ever
// see actions.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // Left arrow, A - move barrier left
	ActionRight          // Right arrow, D - move barrier right
	ActionQuit           // Q - end the defense
	ActionConfirm        // Enter - acknowledge the closing prompt
	ActionOther          // Any other key; consumed and ignored
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionQuit:
		return "Quit"
	case ActionConfirm:
		return "Confirm"
	case ActionOther:
		return "Other"
	default:
		return "Unknown"
	}
}

// keyBuffer is the queue depth before presses are dropped.
// Deep enough for key repeat on held arrows.
const keyBuffer = 64

// Keys is the input capability for a battle: a buffered queue of actions fed
// by the platform layer and consumed by the defender controller. A read
// blocks until a key arrives or the supplied interrupt channel is closed.
type Keys struct {
	ch chan Action
}

// NewKeys creates an empty key queue.
func NewKeys() *Keys {
	return &Keys{ch: make(chan Action, keyBuffer)}
}

// Push enqueues an action. If the queue is full the press is dropped;
// a stale backlog of moves is worse than a lost one.
func (k *Keys) Push(a Action) {
	select {
	case k.ch <- a:
	default:
	}
}

// Next returns the next queued action, blocking until one arrives.
// Returns ok=false without an action if interrupt is closed first, which
// lets a reader blocked on input observe shutdown.
func (k *Keys) Next(interrupt <-chan struct{}) (Action, bool) {
	select {
	case a := <-k.ch:
		return a, true
	case <-interrupt:
		return ActionNone, false
	}
}

// TryNext returns a queued action without blocking.
// Used to drain buffered input when a controller winds down.
func (k *Keys) TryNext() (Action, bool) {
	select {
	case a := <-k.ch:
		return a, true
	default:
		return ActionNone, false
	}
}
