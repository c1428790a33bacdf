package reconcile

// EditPhase is the state of one editable field (board name, column name).
type EditPhase int

const (
	EditIdle EditPhase = iota
	EditEditing
	EditSubmitting
)

func (p EditPhase) String() string {
	switch p {
	case EditEditing:
		return "editing"
	case EditSubmitting:
		return "submitting"
	default:
		return "idle"
	}
}

// Editor is the per-field edit state machine: Idle -> Editing -> Submitting
// -> Idle. Transitions are total; a call that does not apply in the current
// phase is a no-op, so escape/blur/submit cannot race into a bad state.
type Editor struct {
	phase EditPhase
	draft string
}

func NewEditor() *Editor {
	return &Editor{}
}

func (e *Editor) Phase() EditPhase {
	return e.phase
}

// Begin enters Editing on explicit user intent (focus/click), seeding the
// draft with the currently displayed value.
func (e *Editor) Begin(current string) {
	if e.phase != EditIdle {
		return
	}
	e.phase = EditEditing
	e.draft = current
}

func (e *Editor) Type(draft string) {
	if e.phase != EditEditing {
		return
	}
	e.draft = draft
}

// Cancel exits Editing (Escape), dropping the draft.
func (e *Editor) Cancel() {
	if e.phase != EditEditing {
		return
	}
	e.phase = EditIdle
	e.draft = ""
}

// Blur exits Editing on loss of focus, dropping the draft.
func (e *Editor) Blur() {
	e.Cancel()
}

// Submit moves Editing -> Submitting and hands back the draft to fire the
// mutation with. The mutation is fire-and-forget from the field's
// perspective; call Settle once it is dispatched.
func (e *Editor) Submit() (string, bool) {
	if e.phase != EditEditing {
		return "", false
	}
	e.phase = EditSubmitting
	return e.draft, true
}

// Settle returns to Idle after the submitted mutation has been dispatched.
// Its eventual completion reconciles canonical data separately.
func (e *Editor) Settle() {
	if e.phase != EditSubmitting {
		return
	}
	e.phase = EditIdle
	e.draft = ""
}
