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
		Day:   9,
		Title: "Disk Fragmenter",
		Part1: day09Part1,
		Part2: day09Part2,
	})
}

// expandDiskMap turns the dense map into per-block file IDs, -1 for free.
func expandDiskMap(input string) ([]int, error) {
	diskMap := strings.TrimSpace(input)
	var blocks []int
	for i, ch := range diskMap {
		if ch < '0' || ch > '9' {
			return nil, fmt.Errorf("bad disk map digit %q", ch)
		}
		length := int(ch - '0')
		id := -1
		if i%2 == 0 {
			id = i / 2
		}
		for j := 0; j < length; j++ {
			blocks = append(blocks, id)
		}
	}
	return blocks, nil
}

func checksum(blocks []int) int {
	sum := 0
	for i, id := range blocks {
		if id >= 0 {
			sum += i * id
		}
	}
	return sum
}

// day09Part1 compacts block by block: rightmost file block into leftmost gap.
func day09Part1(input string) (string, error) {
	blocks, err := expandDiskMap(input)
	if err != nil {
		return "", err
	}

	left, right := 0, len(blocks)-1
	for left < right {
		if blocks[left] != -1 {
			left++
			continue
		}
		if blocks[right] == -1 {
			right--
			continue
		}
		blocks[left], blocks[right] = blocks[right], -1
	}
	return itoa(checksum(blocks)), nil
}

// fileSpan is a run of blocks belonging to one file, or a free run (id -1).
type fileSpan struct {
	id     int
	start  int
	length int
}

// day09Part2 moves whole files, highest ID first, into the leftmost free
// span that fits.
func day09Part2(input string) (string, error) {
	blocks, err := expandDiskMap(input)
	if err != nil {
		return "", err
	}

	// Collect file spans and free spans from the block list.
	var files, free []fileSpan
	for i := 0; i < len(blocks); {
		j := i
		for j < len(blocks) && blocks[j] == blocks[i] {
			j++
		}
		span := fileSpan{id: blocks[i], start: i, length: j - i}
		if span.id == -1 {
			free = append(free, span)
		} else {
			files = append(files, span)
		}
		i = j
	}

	for fi := len(files) - 1; fi >= 0; fi-- {
		f := files[fi]
		for gi := range free {
			gap := &free[gi]
			if gap.start >= f.start {
				break
			}
			if gap.length < f.length {
				continue
			}
			for k := 0; k < f.length; k++ {
				blocks[gap.start+k] = f.id
				blocks[f.start+k] = -1
			}
			gap.start += f.length
			gap.length -= f.length
			break
		}
	}
	return itoa(checksum(blocks)), nil
}
