package tree

// Limits is the configuration bundle the engine consumes. Values come
// from the surrounding application; the engine itself only enforces
// MaxChildren and MaxLevels, through AllowExpand. GlobalQty, MinNodeQty
// and MaxGlobalQty are inputs the caller passes to DistributeQty and
// Normalize.
type Limits struct {
	GlobalQty    int
	MinNodeQty   int
	MaxChildren  int
	MaxGlobalQty int
	MaxLevels    int
}

// DefaultLimits returns the limits used when no configuration is
// present.
func DefaultLimits() Limits {
	return Limits{
		GlobalQty:    100000,
		MinNodeQty:   3000,
		MaxChildren:  5,
		MaxGlobalQty: 1000000,
		MaxLevels:    4,
	}
}

// AllowExpand reports whether a node at the given level may receive
// another child. Levels count from the root at 0.
func AllowExpand(lim Limits, level int, children []*Node) bool {
	return len(children) < lim.MaxChildren && level < lim.MaxLevels
}
