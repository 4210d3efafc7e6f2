package tetris

const (
	lineScore     = 100
	linesPerLevel = 10
)

// LineMultiplier returns the bonus factor for clearing n rows at once.
func LineMultiplier(n int) int {
	switch n {
	case 1:
		return 1
	case 2:
		return 3
	case 3:
		return 5
	case 4:
		return 8
	default:
		return n * 2
	}
}

// ClearScore returns the points for clearing n rows while at level.
func ClearScore(n, level int) int {
	if n <= 0 {
		return 0
	}
	return lineScore * LineMultiplier(n) * level
}

// LevelForLines returns the level reached after total cleared rows.
func LevelForLines(total int) int {
	return total/linesPerLevel + 1
}
