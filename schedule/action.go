package schedule

import "fmt"

// ActionKind tags the public, high-level instructions a Schedule emits to
// its consumer.
type ActionKind int

const (
	// ActionClear drops cached initial conditions / adjoint data.
	ActionClear ActionKind = iota
	// ActionConfigure tells the consumer whether the next forward interval
	// must store initial conditions / adjoint data.
	ActionConfigure
	// ActionForward advances the forward solver from N0 to N1 (N1 > N0).
	ActionForward
	// ActionReverse advances the adjoint from N1 down to N0 (N1 > N0).
	ActionReverse
	// ActionRead restores the checkpoint for step N from Storage.
	ActionRead
	// ActionWrite persists a checkpoint for step N into Storage.
	ActionWrite
	// ActionCopy duplicates the checkpoint for step N from From to To,
	// leaving the source slot live.
	ActionCopy
	// ActionMove relocates the checkpoint for step N from From to To,
	// freeing the source slot.
	ActionMove
	// ActionEndForward marks the end of the forward pass.
	ActionEndForward
	// ActionEndReverse marks the end of a reverse pass. Exhausted is true
	// iff the schedule cannot be restarted.
	ActionEndReverse
)

func (k ActionKind) String() string {
	switch k {
	case ActionClear:
		return "Clear"
	case ActionConfigure:
		return "Configure"
	case ActionForward:
		return "Forward"
	case ActionReverse:
		return "Reverse"
	case ActionRead:
		return "Read"
	case ActionWrite:
		return "Write"
	case ActionCopy:
		return "Copy"
	case ActionMove:
		return "Move"
	case ActionEndForward:
		return "EndForward"
	case ActionEndReverse:
		return "EndReverse"
	default:
		return fmt.Sprintf("ActionKind(%d)", int(k))
	}
}

// Action is the public, high-level instruction a Schedule's ActionIterator
// yields. It is a tagged struct; only the fields relevant to Kind are
// meaningful (see the ActionKind constants' doc comments).
type Action struct {
	Kind ActionKind

	// Clear
	ClearICs  bool
	ClearData bool

	// Configure
	StoreICs  bool
	StoreData bool

	// Forward / Reverse. StoreICs, StoreData and Storage are meaningful on
	// Forward only for schedules (the two-level driver) that fold what
	// H-Revolve expresses as a separate Configure action directly into the
	// advance itself; H-Revolve's adapter leaves them at their zero value
	// and emits Configure alongside instead.
	N0 int64
	N1 int64

	// Read / Write
	N            int64
	Storage      StorageType
	Delete       bool // Read only
	ClearAdjDeps bool // Reverse only: whether the adjoint-dependency slot for this step is freed

	// Copy / Move
	From StorageType
	To   StorageType

	// EndReverse
	Exhausted bool
}

// Clear builds a Clear action.
func Clear(clearICs, clearData bool) Action {
	return Action{Kind: ActionClear, ClearICs: clearICs, ClearData: clearData}
}

// Configure builds a Configure action.
func Configure(storeICs, storeData bool) Action {
	return Action{Kind: ActionConfigure, StoreICs: storeICs, StoreData: storeData}
}

// ForwardAction builds a Forward action advancing from n0 to n1, with no
// embedded store/storage directive (H-Revolve's shape: a separate Configure
// action carries that information).
func ForwardAction(n0, n1 int64) Action {
	return Action{Kind: ActionForward, N0: n0, N1: n1}
}

// ForwardActionWithStorage builds a Forward action that embeds its own
// store-ICs/store-data/storage directive, the shape the two-level driver
// emits in place of a separate Configure action.
func ForwardActionWithStorage(n0, n1 int64, storeICs, storeData bool, storage StorageType) Action {
	return Action{
		Kind: ActionForward, N0: n0, N1: n1,
		StoreICs: storeICs, StoreData: storeData, Storage: storage,
	}
}

// ReverseAction builds a Reverse action advancing the adjoint from n1 to n0.
func ReverseAction(n1, n0 int64, clearAdjDeps bool) Action {
	return Action{Kind: ActionReverse, N0: n0, N1: n1, ClearAdjDeps: clearAdjDeps}
}

// ReadAction builds a Read action restoring step n from storage.
func ReadAction(n int64, storage StorageType, delete bool) Action {
	return Action{Kind: ActionRead, N: n, Storage: storage, Delete: delete}
}

// WriteAction builds a Write action persisting step n into storage.
func WriteAction(n int64, storage StorageType) Action {
	return Action{Kind: ActionWrite, N: n, Storage: storage}
}

// CopyAction builds a Copy action relocating step n's checkpoint, keeping
// the source live.
func CopyAction(n int64, from, to StorageType) Action {
	return Action{Kind: ActionCopy, N: n, From: from, To: to}
}

// MoveAction builds a Move action relocating step n's checkpoint, freeing
// the source.
func MoveAction(n int64, from, to StorageType) Action {
	return Action{Kind: ActionMove, N: n, From: from, To: to}
}

// EndForward builds the terminal forward-pass marker.
func EndForward() Action { return Action{Kind: ActionEndForward} }

// EndReverse builds the terminal reverse-pass marker.
func EndReverse(exhausted bool) Action {
	return Action{Kind: ActionEndReverse, Exhausted: exhausted}
}

func (a Action) String() string {
	switch a.Kind {
	case ActionClear:
		return fmt.Sprintf("Clear(ics=%v,data=%v)", a.ClearICs, a.ClearData)
	case ActionConfigure:
		return fmt.Sprintf("Configure(ics=%v,data=%v)", a.StoreICs, a.StoreData)
	case ActionForward:
		return fmt.Sprintf("Forward(%d,%d)", a.N0, a.N1)
	case ActionReverse:
		return fmt.Sprintf("Reverse(%d,%d)", a.N1, a.N0)
	case ActionRead:
		return fmt.Sprintf("Read(%d,%s,delete=%v)", a.N, a.Storage, a.Delete)
	case ActionWrite:
		return fmt.Sprintf("Write(%d,%s)", a.N, a.Storage)
	case ActionCopy:
		return fmt.Sprintf("Copy(%d,%s->%s)", a.N, a.From, a.To)
	case ActionMove:
		return fmt.Sprintf("Move(%d,%s->%s)", a.N, a.From, a.To)
	case ActionEndForward:
		return "EndForward"
	case ActionEndReverse:
		return fmt.Sprintf("EndReverse(exhausted=%v)", a.Exhausted)
	default:
		return a.Kind.String()
	}
}
