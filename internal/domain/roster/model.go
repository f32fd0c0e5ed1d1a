package roster

// Entry is one season-roster row: the externally supplied baseline the
// aggregator merges computed statistics onto.
type Entry struct {
	Name        string
	Position    string
	Age         int
	CallUps     int
	Appearances int
	Starts      int
	Minutes     int
	Goals       int
	YellowCards int
	RedCards    int
	Assists     int
}

// MatchKind tags the confidence of a roster resolution so callers can
// distinguish a firm identity from a substring guess.
type MatchKind int

const (
	MatchNone MatchKind = iota
	MatchExact
	MatchAliased
	MatchSubstring
)

func (k MatchKind) String() string {
	switch k {
	case MatchExact:
		return "exact"
	case MatchAliased:
		return "aliased"
	case MatchSubstring:
		return "substring"
	default:
		return "none"
	}
}
