package font

import (
	"testing"

	"github.com/BeatGlow/signboard/frame"
)

func TestLayoutLeft(t *testing.T) {
	for _, count := range []int{0, 1, 5, MaxChars, MaxChars + 7} {
		col, idx := Layout(count, Left)
		if col != 0 || idx != 0 {
			t.Errorf("Layout(%d, Left) = (%d, %d), expected (0, 0)", count, col, idx)
		}
	}
}

func TestLayoutCenter(t *testing.T) {
	testCases := []struct {
		count    int
		col, idx int
	}{
		{0, 60, 0},
		{1, 58, 0}, // odd count: 60 - floor(5/2)
		{2, 55, 0},
		{5, 48, 0}, // 60 - floor(25/2) = 60 - 12
		{6, 45, 0},
		{23, 3, 0}, // 60 - floor(115/2) = 60 - 57
		{24, 0, 0},
		{25, 0, 0},  // oversize, odd overflow: floor(1/2)
		{26, 0, 1},  // floor(2/2)
		{30, 0, 3},  // floor(6/2)
		{33, 0, 4},  // floor(9/2)
		{100, 0, 38},
	}
	for _, test := range testCases {
		col, idx := Layout(test.count, Center)
		if col != test.col || idx != test.idx {
			t.Errorf("Layout(%d, Center) = (%d, %d), expected (%d, %d)",
				test.count, col, idx, test.col, test.idx)
		}
	}
}

func TestLayoutRight(t *testing.T) {
	testCases := []struct {
		count    int
		col, idx int
	}{
		{0, 120, 0},
		{1, 115, 0},
		{5, 95, 0},
		{24, 0, 0},
		{25, 0, 1},
		{30, 0, 6},
	}
	for _, test := range testCases {
		col, idx := Layout(test.count, Right)
		if col != test.col || idx != test.idx {
			t.Errorf("Layout(%d, Right) = (%d, %d), expected (%d, %d)",
				test.count, col, idx, test.col, test.idx)
		}
	}
}

func TestDrawTextCentered(t *testing.T) {
	var b frame.Buffer
	DrawText(&b, []byte("HI"), Center, false)

	// 2 chars, start column 55. 'H' column 0 is 0x7f: rows 0..6 lit.
	for row := 0; row < 7; row++ {
		if !b.Pixel(55, row) {
			t.Errorf("expected 'H' stem lit at (55, %d)", row)
		}
	}
	if b.Pixel(55, 7) {
		t.Error("expected bottom row dark for 7-row glyph")
	}
	if b.Pixel(54, 3) {
		t.Error("expected column left of the text dark")
	}
}

func TestDrawTextOversize(t *testing.T) {
	long := make([]byte, MaxChars+10)
	for i := range long {
		long[i] = 'A' + byte(i%26)
	}

	var b frame.Buffer
	DrawText(&b, long, Right, false)

	// Trailing window: first drawn char is long[10].
	want := long[10]
	for i := 0; i < Pitch; i++ {
		pattern := Column(want, i)
		for row := 0; row < frame.Rows; row++ {
			if b.Pixel(i, row) != (pattern&(1<<uint(row)) != 0) {
				t.Fatalf("column %d row %d does not match glyph %q", i, row, want)
			}
		}
	}
}
