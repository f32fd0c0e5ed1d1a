package event

import "github.com/webstats/matchstats/internal/platform/textnorm"

// Facts is the classification of one event: independent keyword predicates
// evaluated over the event's free-text fields. Categories overlap on
// purpose (ambiguous text can make an event both a shot and a pass); only
// substitution entry/exit are mutually exclusive.
type Facts struct {
	Success    bool
	Goal       bool
	Assist     bool
	YellowCard bool
	RedCard    bool
	Shot       bool
	Pass       bool
	Duel       bool
	DuelWon    bool
	SubEntry   bool
	SubExit    bool
}

// Classify evaluates every predicate once. Stateless per event.
func Classify(e Event) Facts {
	entry := IsSubstitutionEntry(e)
	exit := !entry && IsSubstitutionExit(e)

	return Facts{
		Success:    IsSuccess(e.Result),
		Goal:       IsGoal(e),
		Assist:     IsAssist(e),
		YellowCard: IsYellowCard(e),
		RedCard:    IsRedCard(e),
		Shot:       IsShot(e),
		Pass:       IsPass(e),
		Duel:       IsDuel(e),
		DuelWon:    IsDuel(e) && IsDuelWon(e.Result),
		SubEntry:   entry,
		SubExit:    exit,
	}
}

// IsSuccess reports whether the result text is one of the successful
// outcome tokens. Exact token match, not containment, so "no ok" and
// "ganado el duelo" stay negative here and duel scoring applies its own
// broader rule.
func IsSuccess(result string) bool {
	return textnorm.Equals(result, successResults)
}

func IsGoal(e Event) bool {
	return textnorm.ContainsAny(e.Type, goalKeywords) ||
		textnorm.ContainsAny(e.Result, goalKeywords) ||
		textnorm.ContainsAny(e.Observation, goalKeywords)
}

func IsAssist(e Event) bool {
	return textnorm.ContainsAny(e.Type, assistKeywords) ||
		textnorm.ContainsAny(e.Result, assistKeywords) ||
		textnorm.ContainsAny(e.Observation, assistKeywords)
}

// Card checks read the zone field too: analysts often drop the card color
// in the zone column of the capture sheet.
func IsYellowCard(e Event) bool {
	return textnorm.ContainsAny(e.Type, yellowCardKeywords) ||
		textnorm.ContainsAny(e.Result, yellowCardKeywords) ||
		textnorm.ContainsAny(e.Zone, yellowCardKeywords)
}

func IsRedCard(e Event) bool {
	return textnorm.ContainsAny(e.Type, redCardKeywords) ||
		textnorm.ContainsAny(e.Result, redCardKeywords) ||
		textnorm.ContainsAny(e.Zone, redCardKeywords)
}

func IsShot(e Event) bool {
	return textnorm.ContainsAny(e.Type, shotKeywords) ||
		textnorm.ContainsAny(e.Observation, shotKeywords)
}

func IsPass(e Event) bool {
	return textnorm.ContainsAny(e.Type, passKeywords) ||
		textnorm.ContainsAny(e.Observation, passKeywords)
}

func IsDuel(e Event) bool {
	return textnorm.ContainsAny(e.Type, duelKeywords) ||
		textnorm.ContainsAny(e.Observation, duelKeywords)
}

// IsDuelWon uses a narrower containment set than IsSuccess; duel outcomes
// are phrased ("ganado", "recuperado") rather than ticked "OK".
func IsDuelWon(result string) bool {
	return textnorm.ContainsAny(result, duelSuccessKeywords)
}

// IsSubstitution reports whether the event describes a substitution at
// all, from the type or the zone column.
func IsSubstitution(e Event) bool {
	return textnorm.ContainsAny(e.Type, substitutionKeywords) ||
		textnorm.ContainsAny(e.Zone, substitutionKeywords)
}

// IsSubstitutionEntry accepts both the long form ("Sustitución" with an
// entry marker in result or zone) and the bare "Entrada" type the touch
// capture sheet produces.
func IsSubstitutionEntry(e Event) bool {
	if textnorm.ContainsAny(e.Type, subEntryKeywords) {
		return true
	}
	if !IsSubstitution(e) {
		return false
	}

	return textnorm.ContainsAny(e.Result, subEntryKeywords) ||
		textnorm.ContainsAny(e.Zone, subEntryKeywords)
}

// IsSubstitutionExit mirrors IsSubstitutionEntry for the exit markers.
func IsSubstitutionExit(e Event) bool {
	if textnorm.ContainsAny(e.Type, subExitKeywords) {
		return true
	}
	if !IsSubstitution(e) {
		return false
	}

	return textnorm.ContainsAny(e.Result, subExitKeywords) ||
		textnorm.ContainsAny(e.Zone, subExitKeywords)
}
