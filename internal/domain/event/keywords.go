package event

// Keyword tables driving classification. The vocabulary is the Spanish
// match-sheet shorthand the club's analysts type, so broad and overlapping
// sets are intentional; classification never enforces exclusivity between
// categories. Entries are stored pre-normalized (lowercase, no diacritics).
var (
	successResults = []string{"ok", "ganado", "g", "gano", "goles", "anotado", "marcado"}

	goalKeywords   = []string{"gol", "goles", "anotado", "marcado", "goal"}
	assistKeywords = []string{"asistencia", "asist", "pase gol", "asiste"}

	yellowCardKeywords = []string{"amarilla", "tarjeta amarilla"}
	redCardKeywords    = []string{"roja", "tarjeta roja"}

	shotKeywords = []string{"tiro", "remate", "disparo", "chuza", "chute"}
	passKeywords = []string{"pase", "pases", "pase clave", "pase al hueco"}

	duelKeywords = []string{
		"duelo",
		"regate",
		"regates",
		"robo",
		"robado",
		"intercepcion",
		"intervencion",
		"entrada",
		"entradas",
		"recuperacion",
		"recuperado",
		"falta cometida",
		"falta recibida",
		"presion",
		"presionado",
		"error forzado",
		"error",
		"disputa",
	}
	duelSuccessKeywords = []string{"ganado", "recuperado", "ok", "fortaleza", "favorable", "superado"}

	substitutionKeywords = []string{"sustitucion", "cambio"}
	subEntryKeywords     = []string{"entrada", "entrante", "subida"}
	subExitKeywords      = []string{"salida", "saliente", "bajada"}
)
