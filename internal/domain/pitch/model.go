// Package pitch defines the canonical field geometry statistics are
// normalized onto: a fixed 9-cell grid (3 longitudinal sections by 3
// lateral lanes) and the 3-value field third.
package pitch

// Third is one of the three longitudinal field sections.
type Third string

const (
	ThirdAttack  Third = "Ataque"
	ThirdBuildUp Third = "Construcción"
	ThirdDefense Third = "Defensa"
)

// Thirds lists the canonical thirds in the fixed presentation order used
// by every third summary.
func Thirds() []Third {
	return []Third{ThirdAttack, ThirdBuildUp, ThirdDefense}
}

// Zone is one of the nine canonical grid cells, labeled in the analysts'
// vocabulary ("Defensa Izquierda" .. "Ataque Derecha").
type Zone string

// Cell is one grid cell with its percentage geometry for field overlays.
type Cell struct {
	Zone      Zone
	Label     string
	LeftPct   int
	TopPct    int
	WidthPct  int
	HeightPct int
}

type section struct {
	key     string
	leftPct int
	width   int
}

type lane struct {
	suffix string
	topPct int
	height int
}

var gridCells = buildGrid()

func buildGrid() []Cell {
	sections := []section{
		{key: "Defensa", leftPct: 0, width: 35},
		{key: "Medio", leftPct: 35, width: 30},
		{key: "Ataque", leftPct: 65, width: 35},
	}
	lanes := []lane{
		{suffix: "Izquierda", topPct: 0, height: 33},
		{suffix: "Centro", topPct: 33, height: 34},
		{suffix: "Derecha", topPct: 67, height: 33},
	}

	cells := make([]Cell, 0, len(sections)*len(lanes))
	for _, s := range sections {
		for _, l := range lanes {
			label := s.key + " " + l.suffix
			cells = append(cells, Cell{
				Zone:      Zone(label),
				Label:     label,
				LeftPct:   s.leftPct,
				TopPct:    l.topPct,
				WidthPct:  s.width,
				HeightPct: l.height,
			})
		}
	}

	return cells
}

// Grid returns the nine cells in their fixed order. The slice is a copy;
// callers may decorate it freely.
func Grid() []Cell {
	cells := make([]Cell, len(gridCells))
	copy(cells, gridCells)
	return cells
}

// Zones returns the nine canonical zones in grid order.
func Zones() []Zone {
	zones := make([]Zone, len(gridCells))
	for i, cell := range gridCells {
		zones[i] = cell.Zone
	}
	return zones
}
