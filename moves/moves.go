package moves

import "fmt"

// ToActionList converts a path of cell indices into one Direction per edge.
// A path of zero or one cells yields an empty list.
// Returns ErrBadStride for stride ≤ 0 and ErrInvalidStep, naming the
// offending pair, when consecutive indices are not one unit move apart.
func ToActionList(path []int, stride int) ([]Direction, error) {
	if stride <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadStride, stride)
	}
	table := offsetTable(stride)
	actions := make([]Direction, 0, max(len(path)-1, 0))
	for i := 0; i+1 < len(path); i++ {
		cur, next := path[i], path[i+1]
		d, ok := table[next-cur]
		if !ok {
			return nil, fmt.Errorf("%w: step %d: %d→%d (offset %d, stride %d)", ErrInvalidStep, i, cur, next, next-cur, stride)
		}
		actions = append(actions, d)
	}

	return actions, nil
}

// Replay applies actions from start and returns the visited indices,
// start included. It is the inverse of ToActionList.
func Replay(start int, actions []Direction, stride int) []int {
	path := make([]int, 0, len(actions)+1)
	path = append(path, start)
	at := start
	for _, d := range actions {
		at += d.Offset(stride)
		path = append(path, at)
	}

	return path
}

// Commands renders each action as a simulator movement command.
func Commands(actions []Direction) []string {
	out := make([]string, len(actions))
	for i, d := range actions {
		out[i] = d.Command()
	}

	return out
}

func offsetTable(stride int) map[int]Direction {
	t := make(map[int]Direction, 4)
	// stride 1 would alias North/West and South/East; the vertical entries win.
	for _, d := range []Direction{West, East, North, South} {
		t[d.Offset(stride)] = d
	}

	return t
}
