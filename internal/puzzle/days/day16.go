// Copyright (c) 2024 sergiocalde94
// Advent of Code 2024 - puzzle solutions and runner
// This source code is licensed under the MIT license found in the LICENSE file.

package days

import (
	"container/heap"
	"fmt"

	"github.com/sergiocalde94/advent-of-code-2024/internal/puzzle"
)

func init() {
	puzzle.Register(puzzle.Puzzle{
		Day:   16,
		Title: "Reindeer Maze",
		Part1: day16Part1,
		Part2: day16Part2,
	})
}

// mazeState is a position plus a heading index into mazeDirs.
type mazeState struct {
	pos point
	dir int
}

// mazeDirs: east, south, west, north. The reindeer starts facing east.
var mazeDirs = []point{{1, 0}, {0, 1}, {-1, 0}, {0, -1}}

type mazeItem struct {
	state mazeState
	cost  int
}

type mazeQueue []mazeItem

func (q mazeQueue) Len() int            { return len(q) }
func (q mazeQueue) Less(i, j int) bool  { return q[i].cost < q[j].cost }
func (q mazeQueue) Swap(i, j int)       { q[i], q[j] = q[j], q[i] }
func (q *mazeQueue) Push(x any)         { *q = append(*q, x.(mazeItem)) }
func (q *mazeQueue) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]
	return item
}

// mazeDistances runs Dijkstra over (position, heading) states. Moving ahead
// costs 1, turning 90 degrees costs 1000.
func mazeDistances(g grid, start mazeState) map[mazeState]int {
	dist := map[mazeState]int{start: 0}
	q := &mazeQueue{{state: start}}
	for q.Len() > 0 {
		item := heap.Pop(q).(mazeItem)
		if item.cost > dist[item.state] {
			continue
		}
		s := item.state

		type edge struct {
			next mazeState
			cost int
		}
		edges := []edge{
			{mazeState{s.pos, (s.dir + 1) % 4}, 1000},
			{mazeState{s.pos, (s.dir + 3) % 4}, 1000},
		}
		ahead := s.pos.add(mazeDirs[s.dir])
		if g.in(ahead) && g.at(ahead) != '#' {
			edges = append(edges, edge{mazeState{ahead, s.dir}, 1})
		}

		for _, e := range edges {
			nc := item.cost + e.cost
			if d, ok := dist[e.next]; !ok || nc < d {
				dist[e.next] = nc
				heap.Push(q, mazeItem{state: e.next, cost: nc})
			}
		}
	}
	return dist
}

func parseMaze(input string) (grid, point, point, error) {
	g := parseGrid(input)
	start, ok := g.find('S')
	if !ok {
		return g, point{}, point{}, fmt.Errorf("no start in maze")
	}
	end, ok := g.find('E')
	if !ok {
		return g, point{}, point{}, fmt.Errorf("no end in maze")
	}
	return g, start, end, nil
}

// bestMazeScore returns the minimum cost over the four end headings.
func bestMazeScore(dist map[mazeState]int, end point) (int, bool) {
	best, found := 0, false
	for dir := range mazeDirs {
		if d, ok := dist[mazeState{end, dir}]; ok && (!found || d < best) {
			best, found = d, true
		}
	}
	return best, found
}

func day16Part1(input string) (string, error) {
	g, start, end, err := parseMaze(input)
	if err != nil {
		return "", err
	}
	dist := mazeDistances(g, mazeState{pos: start})
	best, found := bestMazeScore(dist, end)
	if !found {
		return "", fmt.Errorf("no path through maze")
	}
	return itoa(best), nil
}

// day16Part2 counts the tiles lying on at least one optimal path. A state is
// on a best path when forward distance + backward distance equals the best
// score; the backward search runs from the end with reversed headings.
func day16Part2(input string) (string, error) {
	g, start, end, err := parseMaze(input)
	if err != nil {
		return "", err
	}
	forward := mazeDistances(g, mazeState{pos: start})
	best, found := bestMazeScore(forward, end)
	if !found {
		return "", fmt.Errorf("no path through maze")
	}

	// Backward distances: start from every end heading at cost 0, walking the
	// reversed graph (heading flipped, same turn costs).
	backward := map[mazeState]int{}
	q := &mazeQueue{}
	for dir := range mazeDirs {
		s := mazeState{end, dir}
		backward[s] = 0
		heap.Push(q, mazeItem{state: s})
	}
	for q.Len() > 0 {
		item := heap.Pop(q).(mazeItem)
		if item.cost > backward[item.state] {
			continue
		}
		s := item.state

		type edge struct {
			next mazeState
			cost int
		}
		edges := []edge{
			{mazeState{s.pos, (s.dir + 1) % 4}, 1000},
			{mazeState{s.pos, (s.dir + 3) % 4}, 1000},
		}
		behind := s.pos.add(mazeDirs[(s.dir+2)%4])
		if g.in(behind) && g.at(behind) != '#' {
			edges = append(edges, edge{mazeState{behind, s.dir}, 1})
		}

		for _, e := range edges {
			nc := item.cost + e.cost
			if d, ok := backward[e.next]; !ok || nc < d {
				backward[e.next] = nc
				heap.Push(q, mazeItem{state: e.next, cost: nc})
			}
		}
	}

	onBest := map[point]bool{}
	for s, df := range forward {
		if db, ok := backward[s]; ok && df+db == best {
			onBest[s.pos] = true
		}
	}
	return itoa(len(onBest)), nil
}
