package planner

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/HanYiChoong/MDP-Grp6-Algorithms/internal/geometry"
)

// ToMovements lowers a node path into a Forward/Left/Right/Backward sequence
// by rolling a direction forward from initialDirection and, for each node,
// emitting the turn implied by the delta to that node's direction before
// emitting the Forward step itself, per §4.4.
func ToMovements(path []*Node, initialDirection geometry.Direction) []geometry.Movement {
	movements := make([]geometry.Movement, 0, len(path)*2)
	rolling := initialDirection

	for _, n := range path {
		delta := ((int(n.Direction) - int(rolling)) % 8 + 8) % 8
		switch delta {
		case 2:
			movements = append(movements, geometry.Right)
		case 4:
			movements = append(movements, geometry.Right, geometry.Right)
		case 6:
			movements = append(movements, geometry.Left)
		}
		movements = append(movements, geometry.Forward)
		rolling = n.Direction
	}

	return movements
}

var movementLetters = map[geometry.Movement]byte{
	geometry.Forward:  'F',
	geometry.Right:    'R',
	geometry.Left:     'L',
	geometry.Backward: 'B',
}

// Consolidate groups consecutive identical movements into
// "<letter><count>|" tokens, e.g. [F,F,R,F] -> "F2|R1|F1|".
func Consolidate(movements []geometry.Movement) string {
	if len(movements) == 0 {
		return ""
	}

	var out strings.Builder
	run := 1
	for i := 1; i <= len(movements); i++ {
		if i < len(movements) && movements[i] == movements[i-1] {
			run++
			continue
		}
		out.WriteByte(movementLetters[movements[i-1]])
		out.WriteString(strconv.Itoa(run))
		out.WriteByte('|')
		run = 1
	}
	return out.String()
}

// Batch splits a consolidated command string into chunks no longer than
// budget characters, never splitting a "<letter><count>|" token across a
// chunk boundary. Pacing between chunks is the caller's responsibility.
func Batch(consolidated string, budget int) []string {
	if consolidated == "" {
		return nil
	}

	tokens := strings.SplitAfter(consolidated, "|")
	if len(tokens) > 0 && tokens[len(tokens)-1] == "" {
		tokens = tokens[:len(tokens)-1]
	}

	var chunks []string
	var current strings.Builder
	for _, tok := range tokens {
		if current.Len() > 0 && current.Len()+len(tok) > budget {
			chunks = append(chunks, current.String())
			current.Reset()
		}
		current.WriteString(tok)
	}
	if current.Len() > 0 {
		chunks = append(chunks, current.String())
	}
	return chunks
}

// FormatMotionFrame wraps a batched chunk in the "h <commands>" motion
// envelope described in §6.
func FormatMotionFrame(chunk string) string {
	return fmt.Sprintf("h %s", chunk)
}
