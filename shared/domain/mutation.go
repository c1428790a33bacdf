package domain

// MutationKind is the closed set of operations the mutation endpoint accepts.
// Dispatch switches over it exhaustively; only ParseMutationKind deals with
// the wire-level (model, intent) strings.
type MutationKind int

const (
	MutationUnknown MutationKind = iota
	MutationBoardRename
	MutationColumnCreate
	MutationColumnRename
	MutationColumnDelete
	MutationItemCreate
	MutationItemRename
	MutationItemDelete
)

func (k MutationKind) String() string {
	switch k {
	case MutationBoardRename:
		return "board-rename"
	case MutationColumnCreate:
		return "column-create"
	case MutationColumnRename:
		return "column-rename"
	case MutationColumnDelete:
		return "column-delete"
	case MutationItemCreate:
		return "item-create"
	case MutationItemRename:
		return "item-rename"
	case MutationItemDelete:
		return "item-delete"
	default:
		return "unknown"
	}
}

// ParseMutationKind maps the (model, intent) pair of a mutation request onto
// a kind. ok is false for pairs outside the closed set.
func ParseMutationKind(model, intent string) (MutationKind, bool) {
	switch model + "-" + intent {
	case "board-rename":
		return MutationBoardRename, true
	case "column-create":
		return MutationColumnCreate, true
	case "column-rename":
		return MutationColumnRename, true
	case "column-delete":
		return MutationColumnDelete, true
	case "item-create":
		return MutationItemCreate, true
	case "item-rename":
		return MutationItemRename, true
	case "item-delete":
		return MutationItemDelete, true
	default:
		return MutationUnknown, false
	}
}
