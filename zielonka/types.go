package zielonka

// moveKind distinguishes the four meanings the source packs into a single
// int per vertex (SPEC_FULL.md §3/§9): a not-yet-computed placeholder, a
// confirmed loss, a confirmed win with an unspecified edge, and a confirmed
// win with a specific witness edge.
type moveKind uint8

const (
	// moveUnknown is the placeholder a vertex gets when it enters the
	// current high-priority layer, before its edge is chosen.
	moveUnknown moveKind = iota
	// moveLosing means the vertex's owner has no winning move here.
	moveLosing
	// moveWinAny means the vertex's owner wins, but any out-edge still
	// inside the winning region works — no specific witness was computed.
	moveWinAny
	// moveTo means the vertex's owner wins by moving to Target.
	moveTo
)

// move is the solver-local strategy draft for one vertex within the
// current Run call.
type move struct {
	kind   moveKind
	target int
}

var (
	unknownMove = move{kind: moveUnknown}
	losingMove  = move{kind: moveLosing}
	winAnyMove  = move{kind: moveWinAny}
)

func toMove(v int) move { return move{kind: moveTo, target: v} }

// winning reports whether m represents a win for the vertex's owner.
func (m move) winning() bool {
	return m.kind == moveWinAny || m.kind == moveTo
}
