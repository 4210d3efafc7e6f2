package tetris

import "testing"

var kindRunes = map[rune]PieceKind{
	'I': I, 'O': O, 'T': T, 'S': S, 'Z': Z, 'J': J, 'L': L,
}

// parseBoard builds a board from rows of '.' (empty) and kind letters.
func parseBoard(t *testing.T, rows ...string) *Board {
	t.Helper()
	b := NewBoard(len(rows[0]), len(rows))
	for y, row := range rows {
		if len(row) != b.width {
			t.Fatalf("row %d has width %d, want %d", y, len(row), b.width)
		}
		for x, r := range row {
			if r == '.' {
				continue
			}
			kind, ok := kindRunes[r]
			if !ok {
				t.Fatalf("unknown cell %q at %d,%d", r, x, y)
			}
			b.set(x, y, Filled(kind))
		}
	}
	return b
}

// fillRow occupies every cell of row y except the listed columns.
func fillRow(b *Board, y int, kind PieceKind, gaps ...int) {
	skip := make(map[int]bool, len(gaps))
	for _, x := range gaps {
		skip[x] = true
	}
	for x := 0; x < b.width; x++ {
		if !skip[x] {
			b.set(x, y, Filled(kind))
		}
	}
}

func testConfig(kinds ...PieceKind) Config {
	cfg := DefaultConfig()
	cfg.Randomizer = NewSequence(kinds...)
	return cfg
}
