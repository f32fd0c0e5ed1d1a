// Package matchday holds match metadata. The engine reads it only for
// chronological ordering and opponent decoration, never for
// classification.
package matchday

import (
	"regexp"
	"sort"
	"time"
)

// Match is one fixture of the primary team's season.
type Match struct {
	ID       string
	Date     *time.Time
	Round    string
	Home     bool
	Opponent string
	Location string
}

// RoundLabel returns the round text, with the original fallback label
// for unlabeled fixtures.
func (m Match) RoundLabel() string {
	if m.Round == "" {
		return "Partido sin jornada"
	}
	return m.Round
}

var roundNumberRe = regexp.MustCompile(`(\d+)`)

// RoundNumber extracts the first integer in a round label ("Jornada 14"
// -> 14). The second return is false when the label has no number.
func RoundNumber(label string) (int, bool) {
	match := roundNumberRe.FindString(label)
	if match == "" {
		return 0, false
	}
	number := 0
	for _, ch := range match {
		number = number*10 + int(ch-'0')
	}
	return number, true
}

// SortChronological orders matches by round number (numberless rounds
// last), then date, then ID. This is the ordering every per-match
// breakdown uses.
func SortChronological(matches []Match) {
	sort.SliceStable(matches, func(i, j int) bool {
		ni, iOK := RoundNumber(matches[i].Round)
		nj, jOK := RoundNumber(matches[j].Round)
		if iOK != jOK {
			return iOK
		}
		if iOK && ni != nj {
			return ni < nj
		}
		di, dj := dateKey(matches[i]), dateKey(matches[j])
		if di != dj {
			return di < dj
		}
		return matches[i].ID < matches[j].ID
	})
}

func dateKey(m Match) string {
	if m.Date == nil {
		return ""
	}
	return m.Date.Format("2006-01-02")
}
