// Package celebrate produces the feedback shown after a correct guess: a
// random congratulation and a handful of coloured balloons.
package celebrate

import (
	"math/rand/v2"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// balloonColors is the balloon palette, cycled by balloon index.
var balloonColors = []string{
	"#FF6B6B",
	"#4ECDC4",
	"#FFE66D",
	"#6A0572",
	"#1A936F",
}

const (
	balloonHead   = '●'
	balloonString = '│'
	maxBands      = 3
)

var stringStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))

// Picker chooses congratulation messages and balloon positions. It is safe
// for concurrent use.
type Picker struct {
	messages []string

	mu  sync.Mutex
	rng *rand.Rand
}

// NewPicker creates a Picker over messages. A nil rng seeds one from the
// clock.
func NewPicker(messages []string, rng *rand.Rand) *Picker {
	if rng == nil {
		rng = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0))
	}
	return &Picker{messages: messages, rng: rng}
}

// Message returns a random congratulation, or "" if none are configured.
func (p *Picker) Message() string {
	if len(p.messages) == 0 {
		return ""
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.messages[p.rng.IntN(len(p.messages))]
}

type cell struct {
	ch    rune
	color string
}

// Balloons renders n balloons scattered across width columns. Each balloon
// is a coloured head with a string hanging below it.
func (p *Picker) Balloons(n, width int) string {
	if n <= 0 || width <= 0 {
		return ""
	}

	bands := min(n, maxBands)
	rows := make([][]cell, bands*2)
	for i := range rows {
		rows[i] = make([]cell, width)
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	for i := 0; i < n; i++ {
		// Keep balloons between 5% and 95% of the width.
		col := width * (5 + p.rng.IntN(91)) / 100
		if col >= width {
			col = width - 1
		}
		band := i % bands
		color := balloonColors[i%len(balloonColors)]
		rows[band*2][col] = cell{ch: balloonHead, color: color}
		rows[band*2+1][col] = cell{ch: balloonString}
	}

	lines := make([]string, len(rows))
	for i, row := range rows {
		lines[i] = strings.TrimRight(renderRow(row), " ")
	}
	return strings.Join(lines, "\n")
}

func renderRow(row []cell) string {
	var b strings.Builder
	for _, c := range row {
		switch {
		case c.ch == 0:
			b.WriteByte(' ')
		case c.color != "":
			b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(c.color)).Render(string(c.ch)))
		default:
			b.WriteString(stringStyle.Render(string(c.ch)))
		}
	}
	return b.String()
}
