package game

import "fmt"

// ClearKind classifies a line clear for scoring and garbage conversion.
type ClearKind uint8

const (
	Single ClearKind = iota
	Double
	Triple
	Tetris
	TSpinSingle
	TSpinDouble
	TSpinTriple
	PerfectClear
)

func (k ClearKind) String() string {
	switch k {
	case Single:
		return "Single"
	case Double:
		return "Double"
	case Triple:
		return "Triple"
	case Tetris:
		return "Tetris"
	case TSpinSingle:
		return "T-Spin Single"
	case TSpinDouble:
		return "T-Spin Double"
	case TSpinTriple:
		return "T-Spin Triple"
	case PerfectClear:
		return "Perfect Clear"
	}
	return "?"
}

// ClassifyClear determines the clear kind from the post-removal state:
// the number of rows removed, whether the well is now empty, and
// whether the placement qualified as a T-spin. Emptying the well wins
// over every other label.
//
// The classifier is only reachable from a legal placement, so an
// unmappable combination (zero rows, five or more, a T-spin quad) is a
// programming error and panics.
func ClassifyClear(rows int, boardEmpty, tSpin bool) ClearKind {
	if boardEmpty {
		return PerfectClear
	}
	if tSpin {
		switch rows {
		case 1:
			return TSpinSingle
		case 2:
			return TSpinDouble
		case 3:
			return TSpinTriple
		}
	} else {
		switch rows {
		case 1:
			return Single
		case 2:
			return Double
		case 3:
			return Triple
		case 4:
			return Tetris
		}
	}
	panic(fmt.Sprintf("invalid clear: rows=%d tSpin=%v", rows, tSpin))
}

// ClearedRows returns the row count a kind contributes to the line
// total. A perfect clear always counts as four.
func (k ClearKind) ClearedRows() int {
	switch k {
	case Single, TSpinSingle:
		return 1
	case Double, TSpinDouble:
		return 2
	case Triple, TSpinTriple:
		return 3
	case Tetris, PerfectClear:
		return 4
	}
	return 0
}

// GarbageLines returns the number of garbage rows this clear sends to
// the opponent.
func (k ClearKind) GarbageLines() int {
	switch k {
	case Single:
		return 0
	case Double:
		return 1
	case Triple:
		return 2
	case Tetris:
		return 4
	case TSpinSingle:
		return 2
	case TSpinDouble:
		return 4
	case TSpinTriple:
		return 6
	case PerfectClear:
		return 10
	}
	return 0
}

// base returns the pre-multiplier score value of a clear.
func (k ClearKind) base() int {
	switch k {
	case Single:
		return 100
	case Double:
		return 300
	case Triple:
		return 500
	case Tetris:
		return 800
	case TSpinSingle:
		return 800
	case TSpinDouble:
		return 1200
	case TSpinTriple:
		return 1600
	case PerfectClear:
		return 2000
	}
	return 0
}

// Score tracks one player's scoring state.
type Score struct {
	StartLevel int
	Level      int
	Lines      int
	Points     int
	Combo      int // -1 between chains; placements that clear extend it
}

// NewScore returns the scoring state for a game starting at the given
// level.
func NewScore(startLevel int) Score {
	return Score{
		StartLevel: startLevel,
		Level:      startLevel,
		Combo:      -1,
	}
}

// ScoreClear applies a classified clear. Order matters: the line total
// and level advance first so the base score uses the new level, then
// the combo increments, then points are awarded as base*level plus
// 50*combo*level.
func (s *Score) ScoreClear(kind ClearKind) {
	s.Lines += kind.ClearedRows()
	s.Level = s.StartLevel + s.Lines/10
	s.Combo++
	s.Points += kind.base()*s.Level + 50*s.Combo*s.Level
}
