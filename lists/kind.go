package lists

// Kind selects the list flavour a command works on.
type Kind uint8

const (
	BulletList Kind = iota
	OrderedList
)

// String returns the syntax node name of the list kind.
func (k Kind) String() string {
	switch k {
	case BulletList:
		return "BulletList"
	case OrderedList:
		return "OrderedList"
	default:
		return "Unknown"
	}
}

// Match tests text against the marker pattern of the kind.
func (k Kind) Match(text string) Match {
	if k == OrderedList {
		return MatchOrdered(text)
	}
	return MatchBullet(text)
}
