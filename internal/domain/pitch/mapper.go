package pitch

import (
	"sort"
	"strings"

	"github.com/webstats/matchstats/internal/platform/textnorm"
)

// mapping is one (phrase -> canonical value) rule. Tables are data so the
// vocabulary stays swappable and testable apart from the matching code.
type mapping struct {
	phrase string
	zone   Zone
	third  Third
}

// Zone rules. Phrases are pre-normalized; table order does not matter
// because lookup sorts longest-first so "defensa central" always wins over
// the bare "central".
var zoneRules = byLengthDesc([]mapping{
	{phrase: "defensa izquierda", zone: "Defensa Izquierda"},
	{phrase: "lateral izquierdo", zone: "Defensa Izquierda"},
	{phrase: "carril izquierdo", zone: "Defensa Izquierda"},
	{phrase: "costa izquierda", zone: "Defensa Izquierda"},
	{phrase: "defensa izquierda centro", zone: "Defensa Izquierda"},
	{phrase: "defensa central", zone: "Defensa Centro"},
	{phrase: "central", zone: "Defensa Centro"},
	{phrase: "zona central", zone: "Defensa Centro"},
	{phrase: "defensa derecha", zone: "Defensa Derecha"},
	{phrase: "lateral derecho", zone: "Defensa Derecha"},
	{phrase: "carril derecho", zone: "Defensa Derecha"},
	{phrase: "costa derecha", zone: "Defensa Derecha"},
	{phrase: "medio izquierdo", zone: "Medio Izquierdo"},
	{phrase: "medio centro", zone: "Medio Centro"},
	{phrase: "mediocentro", zone: "Medio Centro"},
	{phrase: "medio derecho", zone: "Medio Derecho"},
	{phrase: "media punta", zone: "Ataque Centro"},
	{phrase: "pivote", zone: "Medio Centro"},
	{phrase: "central ofensivo", zone: "Medio Centro"},
	{phrase: "ataque izquierdo", zone: "Ataque Izquierda"},
	{phrase: "extremo izquierdo", zone: "Ataque Izquierda"},
	{phrase: "delantero izquierdo", zone: "Ataque Izquierda"},
	{phrase: "ataque centro", zone: "Ataque Centro"},
	{phrase: "delantero centro", zone: "Ataque Centro"},
	{phrase: "punta", zone: "Ataque Centro"},
	{phrase: "ataque derecho", zone: "Ataque Derecha"},
	{phrase: "delantero derecho", zone: "Ataque Derecha"},
	{phrase: "extremo derecho", zone: "Ataque Derecha"},
	{phrase: "delantero", zone: "Ataque Centro"},
	{phrase: "atacante", zone: "Ataque Centro"},
	{phrase: "delanztero", zone: "Ataque Centro"}, // recurring sheet typo
})

// Position rules reuse the grid cells as position labels; the table is
// looser than zoneRules (a bare "izquierda"/"derecha" is enough).
var positionRules = byLengthDesc([]mapping{
	{phrase: "defensa izquierda", zone: "Defensa Izquierda"},
	{phrase: "lateral izquierdo", zone: "Defensa Izquierda"},
	{phrase: "carril izquierdo", zone: "Defensa Izquierda"},
	{phrase: "izquierda", zone: "Defensa Izquierda"},
	{phrase: "defensa central", zone: "Defensa Centro"},
	{phrase: "central", zone: "Defensa Centro"},
	{phrase: "defensa derecha", zone: "Defensa Derecha"},
	{phrase: "lateral derecho", zone: "Defensa Derecha"},
	{phrase: "carril derecho", zone: "Defensa Derecha"},
	{phrase: "derecha", zone: "Defensa Derecha"},
	{phrase: "medio izquierdo", zone: "Medio Izquierdo"},
	{phrase: "medio centro", zone: "Medio Centro"},
	{phrase: "mediocentro", zone: "Medio Centro"},
	{phrase: "medio derecho", zone: "Medio Derecho"},
	{phrase: "pivote", zone: "Medio Centro"},
	{phrase: "delantero izquierdo", zone: "Ataque Izquierda"},
	{phrase: "ataque izquierdo", zone: "Ataque Izquierda"},
	{phrase: "extremo izquierdo", zone: "Ataque Izquierda"},
	{phrase: "delantero centro", zone: "Ataque Centro"},
	{phrase: "ataque centro", zone: "Ataque Centro"},
	{phrase: "delantero derecho", zone: "Ataque Derecha"},
	{phrase: "ataque derecho", zone: "Ataque Derecha"},
	{phrase: "extremo derecho", zone: "Ataque Derecha"},
	{phrase: "punta", zone: "Ataque Centro"},
	{phrase: "delantero", zone: "Ataque Centro"},
	{phrase: "atacante", zone: "Ataque Centro"},
})

var thirdRules = byLengthDesc([]mapping{
	{phrase: "ataque", third: ThirdAttack},
	{phrase: "ofensivo", third: ThirdAttack},
	{phrase: "zona ataque", third: ThirdAttack},
	{phrase: "finalizacion", third: ThirdAttack},
	{phrase: "propia", third: ThirdDefense},
	{phrase: "defensa", third: ThirdDefense},
	{phrase: "defensivo", third: ThirdDefense},
	{phrase: "construccion", third: ThirdBuildUp},
	{phrase: "medio", third: ThirdBuildUp},
	{phrase: "progresion", third: ThirdBuildUp},
	{phrase: "posesion", third: ThirdBuildUp},
	{phrase: "control", third: ThirdBuildUp},
})

// byLengthDesc orders rules longest phrase first, ties broken
// alphabetically so lookup order is deterministic.
func byLengthDesc(rules []mapping) []mapping {
	sort.SliceStable(rules, func(i, j int) bool {
		if len(rules[i].phrase) != len(rules[j].phrase) {
			return len(rules[i].phrase) > len(rules[j].phrase)
		}
		return rules[i].phrase < rules[j].phrase
	})
	return rules
}

// MapZone resolves free zone text onto a canonical grid cell. The empty
// zone means unmapped; such events stay in raw totals but leave the zone
// heatmap alone.
func MapZone(raw string) (Zone, bool) {
	normalized := textnorm.Normalize(raw)
	if normalized == "" {
		return "", false
	}
	for _, rule := range zoneRules {
		if contains(normalized, rule.phrase) {
			return rule.zone, true
		}
	}
	return "", false
}

// MapThird resolves free third text onto one of the three canonical
// thirds.
func MapThird(raw string) (Third, bool) {
	normalized := textnorm.Normalize(raw)
	if normalized == "" {
		return "", false
	}
	for _, rule := range thirdRules {
		if contains(normalized, rule.phrase) {
			return rule.third, true
		}
	}
	return "", false
}

// ThirdFromZone derives a third straight from a zone label when no
// explicit third text was captured.
func ThirdFromZone(zoneText string) (Third, bool) {
	normalized := textnorm.Normalize(zoneText)
	switch {
	case normalized == "":
		return "", false
	case contains(normalized, "defensa"):
		return ThirdDefense, true
	case contains(normalized, "medio"), contains(normalized, "construccion"):
		return ThirdBuildUp, true
	case contains(normalized, "ataque"):
		return ThirdAttack, true
	}
	return "", false
}

// MapPosition categorizes a player into a grid-cell position label from
// the declared position, falling back to the event's zone text.
func MapPosition(position, zoneText string) (Zone, bool) {
	normalizedPosition := textnorm.Normalize(position)
	normalizedZone := textnorm.Normalize(zoneText)
	if normalizedPosition == "" && normalizedZone == "" {
		return "", false
	}
	for _, rule := range positionRules {
		if contains(normalizedPosition, rule.phrase) || contains(normalizedZone, rule.phrase) {
			return rule.zone, true
		}
	}
	return "", false
}

func contains(haystack, needle string) bool {
	return needle != "" && strings.Contains(haystack, needle)
}
