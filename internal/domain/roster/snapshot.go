// Package roster resolves free-text player names against the season
// roster through an ordered pipeline: alias table, exact key lookup,
// then substring fallback.
package roster

import (
	"sort"
	"strings"

	"github.com/webstats/matchstats/internal/platform/textnorm"
)

// DefaultAliases maps the nicknames and shorthand the analysts type to
// canonical roster keys. Keys and targets are slug form.
func DefaultAliases() map[string]string {
	return map[string]string{
		"antonio":                       "antonio-gamez-paniagua",
		"andrew":                        "andrew-brayce-gonzales-ticona",
		"andrews":                       "andrew-brayce-gonzales-ticona",
		"andrew-brayce-gonzales-ticona": "andrew-brayce-gonzales-ticona",
		"manu":                          "manuel-torres-palenzuela",
		"lolo":                          "manuel-fernandez-canete",
		"jaime":                         "javier-gutierrez-palma",
		"javi":                          "javier-gutierrez-palma",
		"martinez":                      "antonio-martinez-campens",
		"nico":                          "nicolas-villalba-alcaide",
		"nicolas":                       "nicolas-villalba-alcaide",
		"nacho":                         "ignacio-dorado-morales",
		"ivan":                          "ivan-fernandez-reina",
		"yaco":                          "yaco-uriel-campoamor",
		"acosta":                        "jose-garcia-acosta",
		"francis":                       "francisco-javier-ruiz-perez",
		"juanmi":                        "juan-miguel-anaya-bustamante",
		"victor":                        "victor-ruiz-postigo",
		"antonio-ruiz":                  "antonio-vilches",
	}
}

// Snapshot is an immutable, resolution-ready view of the season roster.
// Built once per aggregation request; never mutated afterwards. Entries
// are held in canonical-key order so the substring fallback scans a
// stable sequence and resolution stays reproducible.
type Snapshot struct {
	keys    []string
	byKey   map[string]Entry
	aliases map[string]string
}

// NewSnapshot indexes the entries by their canonical key (slug of the
// display name). Later duplicates of a key overwrite earlier ones. A nil
// alias map installs DefaultAliases.
func NewSnapshot(entries []Entry, aliases map[string]string) *Snapshot {
	if aliases == nil {
		aliases = DefaultAliases()
	}
	byKey := make(map[string]Entry, len(entries))
	for _, e := range entries {
		key := textnorm.Slug(e.Name)
		if key == "" {
			continue
		}
		byKey[key] = e
	}
	keys := make([]string, 0, len(byKey))
	for key := range byKey {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	return &Snapshot{keys: keys, byKey: byKey, aliases: aliases}
}

// Len returns the number of indexed entries.
func (s *Snapshot) Len() int {
	return len(s.byKey)
}

// Entries returns the entries in canonical-key order.
func (s *Snapshot) Entries() []Entry {
	entries := make([]Entry, 0, len(s.keys))
	for _, key := range s.keys {
		entries = append(entries, s.byKey[key])
	}
	return entries
}

// CanonicalKey resolves a free-text name through the alias table to the
// key used for exact lookup.
func (s *Snapshot) CanonicalKey(name string) (string, bool) {
	key := textnorm.Slug(name)
	if target, ok := s.aliases[key]; ok {
		return target, true
	}
	return key, false
}

// Resolve runs the resolution pipeline for a free-text name. The second
// return tags the confidence; MatchNone means no roster identity and
// callers must fall back to a zero baseline, never treat it as an error.
func (s *Snapshot) Resolve(name string) (Entry, MatchKind) {
	key, aliased := s.CanonicalKey(name)
	if key != "" {
		if entry, ok := s.byKey[key]; ok {
			if aliased {
				return entry, MatchAliased
			}
			return entry, MatchExact
		}
	}

	target := strings.ToLower(strings.TrimSpace(name))
	if target == "" {
		return Entry{}, MatchNone
	}
	for _, candidateKey := range s.keys {
		entry := s.byKey[candidateKey]
		entryName := strings.ToLower(entry.Name)
		if strings.Contains(entryName, target) || strings.Contains(target, entryName) {
			return entry, MatchSubstring
		}
	}

	return Entry{}, MatchNone
}
