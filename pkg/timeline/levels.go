// Package timeline computes vertical label offsets ("levels") for the
// release timeline. A level is a signed integer: positive levels place a
// label above the date axis, negative levels below it. Alternating sides
// per series keeps neighboring labels from stacking on top of each other.
package timeline

// maxLevel is the farthest offset from the axis before the running counter
// wraps around.
const maxLevel = 16

// GenerateLevels assigns a level to each record of a chronologically ordered
// sequence of series names.
//
// Each distinct series is pinned to one side of the axis the first time it
// appears: the first unseen series goes above (+1 coefficient), the next
// unseen one below (-1), alternating from there. Two running counters walk
// outward on their side, one step per record placed on that side. The
// positive counter starts at 2 and wraps back to 2 after emitting 16; the
// negative counter starts at -2 and wraps to -3 after emitting -16. The
// wrap values differ on purpose; keep them as-is.
func GenerateLevels(series []string) []int {
	side := make(map[string]int, len(series))
	positive := 2
	negative := -2
	next := 1

	levels := make([]int, 0, len(series))
	for _, s := range series {
		if _, seen := side[s]; !seen {
			side[s] = next
			next = -next
		}
		if c := side[s]; c > 0 {
			levels = append(levels, positive)
			if positive == maxLevel {
				positive = 2
			} else {
				positive += c
			}
		} else {
			levels = append(levels, negative)
			if negative == -maxLevel {
				negative = -3
			} else {
				negative += c
			}
		}
	}
	return levels
}

// manualLevels is the hand-tuned level sequence for the full 63-game
// catalogue. Values were picked by eye against the rendered timeline.
var manualLevels = []int{
	2, 3, 4, 5, 6, -2, -3, -4, 8, 9, // 1-10
	10, 11, 12, 13, 14, 15, 16, 17, -2, -3, // 11-20
	2, -4, -5, -6, -7, 6, 7, 8, 3, -8, // 21-30
	9, 4, 11, 12, 13, -9, 14, -10, -14, -15, // 31-40
	15, -2, -3, 16, -4, -11, 5, -12, -7, -8, // 41-50
	-9, -13, 13, -14, 6, 7, 8, -15, -16, 9, // 51-60
	2, 2, 3, // 61-63
}

// ManualLevels returns the first n entries of the hand-tuned table.
// The table has 63 entries; asking for more panics with an out-of-range
// error, the same way any over-long slice expression does.
func ManualLevels(n int) []int {
	out := make([]int, n)
	copy(out, manualLevels[:n])
	return out
}
