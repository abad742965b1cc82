package chat

// Point is a screen position. Units depend on the surface: pixels for
// DefaultMenuBounds, terminal cells for CellMenuBounds.
type Point struct {
	X, Y int
}

// MenuBounds places the action menu relative to the long-press point:
// x = clamp(x-BiasX, MinX, MaxX), y = min(y+OffsetY, MaxY).
type MenuBounds struct {
	BiasX   int
	MinX    int
	MaxX    int
	OffsetY int
	MaxY    int
}

// DefaultMenuBounds is the placement rule in pixels.
var DefaultMenuBounds = MenuBounds{BiasX: 90, MinX: 20, MaxX: 300, OffsetY: 20, MaxY: 600}

// CellMenuBounds is DefaultMenuBounds scaled to terminal cells (about 10px
// per column and 20px per row).
var CellMenuBounds = MenuBounds{BiasX: 9, MinX: 2, MaxX: 30, OffsetY: 1, MaxY: 30}

// Clamp returns the menu anchor for a long-press at p.
func (b MenuBounds) Clamp(p Point) Point {
	return Point{
		X: max(b.MinX, min(p.X-b.BiasX, b.MaxX)),
		Y: min(p.Y+b.OffsetY, b.MaxY),
	}
}

// Selection is the message the action menu is open for.
type Selection struct {
	MessageID string
	Anchor    Point
}

// MenuAction is an entry of the action menu.
type MenuAction int

const (
	ActionCopy MenuAction = iota
	ActionEdit
	ActionDelete
)

// MenuActions lists the menu entries in display order.
var MenuActions = []MenuAction{ActionCopy, ActionEdit, ActionDelete}

func (a MenuAction) String() string {
	switch a {
	case ActionCopy:
		return "Copy"
	case ActionEdit:
		return "Edit"
	case ActionDelete:
		return "Delete"
	default:
		return "Unknown"
	}
}

// Key is the shortcut that triggers the action while the menu is open.
func (a MenuAction) Key() string {
	switch a {
	case ActionCopy:
		return "c"
	case ActionEdit:
		return "e"
	case ActionDelete:
		return "d"
	default:
		return ""
	}
}

// Destructive reports whether the action should render in the error color.
func (a MenuAction) Destructive() bool {
	return a == ActionDelete
}
