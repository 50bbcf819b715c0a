// Copyright (c) 2024 sergiocalde94
// Advent of Code 2024 - puzzle solutions and runner
// This source code is licensed under the MIT license found in the LICENSE file.

package days

import (
	"fmt"
	"sort"
	"strings"

	"github.com/sergiocalde94/advent-of-code-2024/internal/puzzle"
)

func init() {
	puzzle.Register(puzzle.Puzzle{
		Day:   23,
		Title: "LAN Party",
		Part1: day23Part1,
		Part2: day23Part2,
	})
}

// parseLAN builds the adjacency sets of the computer network.
func parseLAN(input string) (map[string]map[string]bool, error) {
	adj := map[string]map[string]bool{}
	link := func(a, b string) {
		if adj[a] == nil {
			adj[a] = map[string]bool{}
		}
		adj[a][b] = true
	}
	for _, line := range lines(input) {
		a, b, ok := strings.Cut(line, "-")
		if !ok {
			return nil, fmt.Errorf("bad connection %q", line)
		}
		link(a, b)
		link(b, a)
	}
	return adj, nil
}

// day23Part1 counts the fully connected trios containing a computer whose
// name starts with t.
func day23Part1(input string) (string, error) {
	adj, err := parseLAN(input)
	if err != nil {
		return "", err
	}

	names := make([]string, 0, len(adj))
	for n := range adj {
		names = append(names, n)
	}
	sort.Strings(names)

	count := 0
	for i, a := range names {
		for j := i + 1; j < len(names); j++ {
			b := names[j]
			if !adj[a][b] {
				continue
			}
			for k := j + 1; k < len(names); k++ {
				c := names[k]
				if adj[a][c] && adj[b][c] &&
					(a[0] == 't' || b[0] == 't' || c[0] == 't') {
					count++
				}
			}
		}
	}
	return itoa(count), nil
}

// growClique greedily extends a clique seeded on one computer by trying its
// neighbours in order and keeping those connected to everything so far.
func growClique(seed string, adj map[string]map[string]bool) []string {
	clique := []string{seed}
	var neighbours []string
	for n := range adj[seed] {
		neighbours = append(neighbours, n)
	}
	sort.Strings(neighbours)

	for _, cand := range neighbours {
		ok := true
		for _, member := range clique {
			if !adj[cand][member] {
				ok = false
				break
			}
		}
		if ok {
			clique = append(clique, cand)
		}
	}
	return clique
}

// day23Part2 finds the largest fully connected set and joins its sorted
// member names as the party password.
func day23Part2(input string) (string, error) {
	adj, err := parseLAN(input)
	if err != nil {
		return "", err
	}

	var best []string
	for seed := range adj {
		clique := growClique(seed, adj)
		if len(clique) > len(best) {
			best = clique
		}
	}
	sort.Strings(best)
	return strings.Join(best, ","), nil
}
