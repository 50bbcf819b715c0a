// Copyright (c) 2024 sergiocalde94
// Advent of Code 2024 - puzzle solutions and runner
// This source code is licensed under the MIT license found in the LICENSE file.

package days

import (
	"fmt"
	"strings"

	"github.com/sergiocalde94/advent-of-code-2024/internal/puzzle"
)

func init() {
	puzzle.Register(puzzle.Puzzle{
		Day:   15,
		Title: "Warehouse Woes",
		Part1: day15Part1,
		Part2: day15Part2,
	})
}

var moveDirs = map[byte]point{
	'<': {-1, 0},
	'>': {1, 0},
	'^': {0, -1},
	'v': {0, 1},
}

// parseWarehouse splits the map from the move sequence and returns the map
// as mutable rows plus the robot position.
func parseWarehouse(input string) ([][]byte, string, point, error) {
	parts := blocks(input)
	if len(parts) != 2 {
		return nil, "", point{}, fmt.Errorf("expected map and moves separated by a blank line")
	}
	var cells [][]byte
	robot := point{-1, -1}
	for y, row := range lines(parts[0]) {
		cells = append(cells, []byte(row))
		if x := strings.IndexByte(row, '@'); x >= 0 {
			robot = point{x, y}
		}
	}
	if robot.x < 0 {
		return nil, "", point{}, fmt.Errorf("no robot in warehouse map")
	}
	moves := strings.ReplaceAll(parts[1], "\n", "")
	return cells, moves, robot, nil
}

// gpsSum scores box positions: 100 * distance from top + distance from left.
func gpsSum(cells [][]byte, boxCh byte) int {
	sum := 0
	for y, row := range cells {
		for x, ch := range row {
			if ch == boxCh {
				sum += 100*y + x
			}
		}
	}
	return sum
}

// day15Part1 pushes single-cell boxes: a move shifts the whole row of boxes
// ahead of the robot if there is a free cell before the next wall.
func day15Part1(input string) (string, error) {
	cells, moves, robot, err := parseWarehouse(input)
	if err != nil {
		return "", err
	}

	for i := 0; i < len(moves); i++ {
		d, ok := moveDirs[moves[i]]
		if !ok {
			continue
		}
		next := robot.add(d)
		// Find the first non-box cell in the push direction.
		end := next
		for cells[end.y][end.x] == 'O' {
			end = end.add(d)
		}
		if cells[end.y][end.x] == '#' {
			continue
		}
		// Shift: the first box (if any) teleports to the free cell.
		if end != next {
			cells[end.y][end.x] = 'O'
		}
		cells[robot.y][robot.x] = '.'
		cells[next.y][next.x] = '@'
		robot = next
	}
	return itoa(gpsSum(cells, 'O')), nil
}

// widenWarehouse doubles the map horizontally: walls and floor double,
// boxes become [] pairs and the robot keeps a single cell.
func widenWarehouse(cells [][]byte) [][]byte {
	wide := make([][]byte, len(cells))
	for y, row := range cells {
		wrow := make([]byte, 0, len(row)*2)
		for _, ch := range row {
			switch ch {
			case '#':
				wrow = append(wrow, '#', '#')
			case 'O':
				wrow = append(wrow, '[', ']')
			case '@':
				wrow = append(wrow, '@', '.')
			default:
				wrow = append(wrow, '.', '.')
			}
		}
		wide[y] = wrow
	}
	return wide
}

// collectWideBoxes gathers the [ cells of every box that would move when
// pushing vertically from the robot. It returns false if a wall blocks the push.
func collectWideBoxes(cells [][]byte, robot point, dy int) ([]point, bool) {
	var boxes []point
	seen := map[point]bool{}
	frontier := []point{robot}

	for len(frontier) > 0 {
		var next []point
		for _, p := range frontier {
			t := point{p.x, p.y + dy}
			switch cells[t.y][t.x] {
			case '#':
				return nil, false
			case '[':
				if !seen[t] {
					seen[t] = true
					boxes = append(boxes, t)
					next = append(next, t, point{t.x + 1, t.y})
				}
			case ']':
				l := point{t.x - 1, t.y}
				if !seen[l] {
					seen[l] = true
					boxes = append(boxes, l)
					next = append(next, l, t)
				}
			}
		}
		frontier = next
	}
	return boxes, true
}

// day15Part2 runs the widened warehouse where boxes are two cells wide and
// vertical pushes can fan out over stacked, offset boxes.
func day15Part2(input string) (string, error) {
	cells, moves, _, err := parseWarehouse(input)
	if err != nil {
		return "", err
	}
	cells = widenWarehouse(cells)
	var robot point
	for y, row := range cells {
		for x, ch := range row {
			if ch == '@' {
				robot = point{x, y}
			}
		}
	}

	for i := 0; i < len(moves); i++ {
		d, ok := moveDirs[moves[i]]
		if !ok {
			continue
		}

		if d.y == 0 {
			// Horizontal pushes behave like part 1 but shift every cell.
			end := robot.add(d)
			for cells[end.y][end.x] == '[' || cells[end.y][end.x] == ']' {
				end = end.add(d)
			}
			if cells[end.y][end.x] == '#' {
				continue
			}
			for p := end; p != robot; p = (point{p.x - d.x, p.y}) {
				cells[p.y][p.x] = cells[p.y][p.x-d.x]
			}
			cells[robot.y][robot.x] = '.'
			robot = robot.add(d)
			continue
		}

		boxes, free := collectWideBoxes(cells, robot, d.y)
		if !free {
			continue
		}
		// Move the farthest boxes first so cells are vacated before reuse.
		for i := len(boxes) - 1; i >= 0; i-- {
			b := boxes[i]
			cells[b.y][b.x], cells[b.y][b.x+1] = '.', '.'
			cells[b.y+d.y][b.x], cells[b.y+d.y][b.x+1] = '[', ']'
		}
		cells[robot.y][robot.x] = '.'
		robot = robot.add(d)
		cells[robot.y][robot.x] = '@'
	}
	return itoa(gpsSum(cells, '[')), nil
}
