package game

import "testing"

func TestClassifyClear(t *testing.T) {
	tests := []struct {
		name       string
		rows       int
		boardEmpty bool
		tSpin      bool
		want       ClearKind
	}{
		{"single", 1, false, false, Single},
		{"double", 2, false, false, Double},
		{"triple", 3, false, false, Triple},
		{"tetris", 4, false, false, Tetris},
		{"t-spin single", 1, false, true, TSpinSingle},
		{"t-spin double", 2, false, true, TSpinDouble},
		{"t-spin triple", 3, false, true, TSpinTriple},
		{"perfect clear", 4, true, false, PerfectClear},
		{"perfect clear beats single", 1, true, false, PerfectClear},
		{"perfect clear beats t-spin", 2, true, true, PerfectClear},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := ClassifyClear(tc.rows, tc.boardEmpty, tc.tSpin); got != tc.want {
				t.Errorf("ClassifyClear(%d, %v, %v) = %v, expected %v",
					tc.rows, tc.boardEmpty, tc.tSpin, got, tc.want)
			}
		})
	}
}

func TestClassifyClearPanicsOnInvalid(t *testing.T) {
	tests := []struct {
		name  string
		rows  int
		tSpin bool
	}{
		{"zero rows", 0, false},
		{"five rows", 5, false},
		{"t-spin quad", 4, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("ClassifyClear(%d, false, %v) did not panic", tc.rows, tc.tSpin)
				}
			}()
			ClassifyClear(tc.rows, false, tc.tSpin)
		})
	}
}

func TestClearedRows(t *testing.T) {
	tests := []struct {
		kind ClearKind
		want int
	}{
		{Single, 1}, {TSpinSingle, 1},
		{Double, 2}, {TSpinDouble, 2},
		{Triple, 3}, {TSpinTriple, 3},
		{Tetris, 4}, {PerfectClear, 4},
	}
	for _, tc := range tests {
		if got := tc.kind.ClearedRows(); got != tc.want {
			t.Errorf("%v.ClearedRows() = %d, expected %d", tc.kind, got, tc.want)
		}
	}
}

func TestGarbageLines(t *testing.T) {
	tests := []struct {
		kind ClearKind
		want int
	}{
		{Single, 0},
		{Double, 1},
		{Triple, 2},
		{Tetris, 4},
		{TSpinSingle, 2},
		{TSpinDouble, 4},
		{TSpinTriple, 6},
		{PerfectClear, 10},
	}
	for _, tc := range tests {
		if got := tc.kind.GarbageLines(); got != tc.want {
			t.Errorf("%v.GarbageLines() = %d, expected %d", tc.kind, got, tc.want)
		}
	}
}

func TestScoreClearLadder(t *testing.T) {
	s := NewScore(1)
	if s.Level != 1 || s.Combo != -1 {
		t.Fatalf("fresh score: level=%d combo=%d", s.Level, s.Combo)
	}

	steps := []struct {
		kind       ClearKind
		wantLines  int
		wantLevel  int
		wantCombo  int
		wantPoints int
	}{
		// base*level + 50*combo*level, combo starting the chain at 0
		{Single, 1, 1, 0, 100},
		{Double, 3, 1, 1, 450},
		{Tetris, 7, 1, 2, 1350},
		// crossing 10 lines bumps the level before the base applies
		{Tetris, 11, 2, 3, 3250},
	}
	for i, st := range steps {
		s.ScoreClear(st.kind)
		if s.Lines != st.wantLines || s.Level != st.wantLevel || s.Combo != st.wantCombo || s.Points != st.wantPoints {
			t.Fatalf("step %d (%v): lines=%d level=%d combo=%d points=%d, expected %d/%d/%d/%d",
				i, st.kind, s.Lines, s.Level, s.Combo, s.Points,
				st.wantLines, st.wantLevel, st.wantCombo, st.wantPoints)
		}
	}
}

func TestScoreClearAfterComboBreak(t *testing.T) {
	s := NewScore(1)
	s.ScoreClear(Single)
	s.ScoreClear(Single)
	s.Combo = -1 // a placement without a clear breaks the chain
	s.ScoreClear(Single)
	// third single pays no combo bonus again
	if s.Points != 100+150+100 {
		t.Errorf("points = %d, expected 350", s.Points)
	}
}

func TestScoreClearPerfectClear(t *testing.T) {
	s := NewScore(1)
	s.ScoreClear(PerfectClear)
	if s.Lines != 4 {
		t.Errorf("perfect clear lines = %d, expected 4", s.Lines)
	}
	if s.Points != 2000 {
		t.Errorf("perfect clear points = %d, expected 2000", s.Points)
	}
}

func TestScoreClearStartLevelScaling(t *testing.T) {
	s := NewScore(5)
	s.ScoreClear(Single)
	if s.Level != 5 || s.Points != 500 {
		t.Errorf("level=%d points=%d, expected 5/500", s.Level, s.Points)
	}

	s = NewScore(5)
	s.Lines = 9
	s.ScoreClear(Single)
	if s.Level != 6 || s.Points != 600 {
		t.Errorf("level-up crossing: level=%d points=%d, expected 6/600", s.Level, s.Points)
	}
}

func TestScorePointsNeverDecrease(t *testing.T) {
	s := NewScore(1)
	prev := 0
	kinds := []ClearKind{Single, Double, Triple, Tetris, TSpinSingle, TSpinDouble, TSpinTriple, PerfectClear}
	for _, k := range kinds {
		s.ScoreClear(k)
		if s.Points < prev {
			t.Fatalf("points decreased to %d after %v", s.Points, k)
		}
		prev = s.Points
	}
}
