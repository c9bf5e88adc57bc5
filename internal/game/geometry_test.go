package game

import (
	"errors"
	"testing"
)

func TestFacingCycle(t *testing.T) {
	tests := []struct {
		from    Facing
		cw, ccw Facing
	}{
		{North, East, West},
		{East, South, North},
		{South, West, East},
		{West, North, South},
	}

	for _, tc := range tests {
		if got := tc.from.CW(); got != tc.cw {
			t.Errorf("%v.CW() = %v, expected %v", tc.from, got, tc.cw)
		}
		if got := tc.from.CCW(); got != tc.ccw {
			t.Errorf("%v.CCW() = %v, expected %v", tc.from, got, tc.ccw)
		}
	}
}

func TestTranslate(t *testing.T) {
	g := NewPiece(VariantT).Geometry
	orig := g

	g.Translate(2, -3)
	if g.Center != (Point{7, 15}) {
		t.Errorf("Center after translate = %v, expected (7, 15)", g.Center)
	}
	for i, p := range g.Cells {
		want := Point{orig.Cells[i].X + 2, orig.Cells[i].Y - 3}
		if p != want {
			t.Errorf("Cell %d after translate = %v, expected %v", i, p, want)
		}
	}

	g.Translate(-2, 3)
	if g != orig {
		t.Errorf("Translate back did not restore geometry: %v vs %v", g, orig)
	}
}

func TestRotateCW(t *testing.T) {
	g := NewPiece(VariantT).Geometry
	g.RotateCW()

	if g.Facing != East {
		t.Errorf("Facing after CW = %v, expected east", g.Facing)
	}
	if g.Center != (Point{5, 18}) {
		t.Errorf("Rotation moved the pivot: %v", g.Center)
	}

	// T spawn cells (4,18)(5,18)(5,19)(6,18) pivot on nub base
	want := [4]Point{{5, 19}, {5, 18}, {6, 18}, {5, 17}}
	if g.Cells != want {
		t.Errorf("Cells after CW = %v, expected %v", g.Cells, want)
	}
}

func TestRotateFourTimesIsIdentity(t *testing.T) {
	for v := Variant(0); v < NumVariants; v++ {
		t.Run(v.String(), func(t *testing.T) {
			g := NewPiece(v).Geometry
			orig := g

			for range 4 {
				g.RotateCW()
			}
			if g != orig {
				t.Errorf("four CW rotations changed geometry: %v vs %v", g, orig)
			}

			for range 4 {
				g.RotateCCW()
			}
			if g != orig {
				t.Errorf("four CCW rotations changed geometry: %v vs %v", g, orig)
			}
		})
	}
}

func TestRotateCCWInvertsCW(t *testing.T) {
	for v := Variant(0); v < NumVariants; v++ {
		g := NewPiece(v).Geometry
		orig := g
		g.RotateCW()
		g.RotateCCW()
		if g != orig {
			t.Errorf("%v: CCW did not undo CW: %v vs %v", v, g, orig)
		}
	}
}

func TestGeometryCodecRoundTrip(t *testing.T) {
	for v := Variant(0); v < NumVariants; v++ {
		t.Run(v.String(), func(t *testing.T) {
			g := NewPiece(v).Geometry
			g.RotateCW()
			g.Translate(-7, -25) // negative coordinates must survive too

			buf := g.AppendBinary(nil)
			if len(buf) != GeometryLen {
				t.Fatalf("encoded length = %d, expected %d", len(buf), GeometryLen)
			}

			decoded, err := DecodeGeometry(buf)
			if err != nil {
				t.Fatalf("DecodeGeometry: %v", err)
			}
			if decoded != g {
				t.Errorf("round trip mismatch: %v vs %v", decoded, g)
			}
		})
	}
}

func TestDecodeGeometryIgnoresTrailingBytes(t *testing.T) {
	g := NewPiece(VariantS).Geometry
	buf := g.AppendBinary(nil)
	buf = append(buf, make([]byte, 22)...) // frame padding

	decoded, err := DecodeGeometry(buf)
	if err != nil {
		t.Fatalf("DecodeGeometry with padding: %v", err)
	}
	if decoded != g {
		t.Errorf("round trip with padding mismatch: %v vs %v", decoded, g)
	}
}

func TestDecodeGeometryErrors(t *testing.T) {
	g := NewPiece(VariantZ).Geometry
	buf := g.AppendBinary(nil)

	if _, err := DecodeGeometry(buf[:GeometryLen-1]); !errors.Is(err, ErrGeometryLen) {
		t.Errorf("short buffer: err = %v, expected ErrGeometryLen", err)
	}
	if _, err := DecodeGeometry(nil); !errors.Is(err, ErrGeometryLen) {
		t.Errorf("nil buffer: err = %v, expected ErrGeometryLen", err)
	}

	bad := append([]byte(nil), buf...)
	bad[0] = 4
	if _, err := DecodeGeometry(bad); !errors.Is(err, ErrBadFacing) {
		t.Errorf("bad facing byte: err = %v, expected ErrBadFacing", err)
	}
}
