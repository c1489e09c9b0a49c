package tui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/aretw0/waterjug/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sample = struct {
	problem domain.Problem
	steps   domain.Solution
}{
	problem: domain.Problem{CapacityX: 2, CapacityY: 100, Target: 96},
	steps: domain.Solution{
		{State: domain.State{X: 0, Y: 100}, Action: domain.ActionFillY},
		{State: domain.State{X: 2, Y: 98}, Action: domain.ActionPourYToX},
		{State: domain.State{X: 0, Y: 98}, Action: domain.ActionEmptyX},
		{State: domain.State{X: 2, Y: 96}, Action: domain.ActionPourYToX},
	},
}

func TestMarkdown(t *testing.T) {
	md := Markdown(sample.problem, sample.steps)

	assert.Contains(t, md, "## Water jug (2, 100) -> 96")
	assert.Contains(t, md, "| 1 | 0 | 100 | Fill Y jug |")
	assert.Contains(t, md, "| 4 | 2 | 96 | Pour Y to X |")
	assert.Contains(t, md, "Solved in **4** steps.")
}

func TestMarkdown_Empty(t *testing.T) {
	md := Markdown(domain.Problem{CapacityX: 3, CapacityY: 5}, domain.Solution{})
	assert.Contains(t, md, "already measured")
	assert.NotContains(t, md, "| Step |")
}

func TestPlain(t *testing.T) {
	out := Plain(sample.problem, sample.steps)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")

	require.Len(t, lines, 6)
	assert.Equal(t, "Water jug (2, 100) -> 96", lines[0])
	assert.Equal(t, "   1      0    100  Fill Y jug", lines[2])
	assert.Equal(t, "   4      2     96  Pour Y to X", lines[5])
}

func TestPrintSolution_NonTerminal(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, PrintSolution(&buf, sample.problem, sample.steps))

	assert.Equal(t, Plain(sample.problem, sample.steps), buf.String())
	assert.False(t, IsTerminal(&buf))
}

func TestNewRenderer(t *testing.T) {
	render, err := NewRenderer()
	require.NoError(t, err)

	out, err := render(Markdown(sample.problem, sample.steps))
	require.NoError(t, err)
	assert.Contains(t, out, "Fill Y jug")
	assert.Contains(t, out, "Pour Y to X")
}

func TestPrintBanner(t *testing.T) {
	var buf bytes.Buffer
	PrintBanner(&buf)

	// A buffer has no color support, so the art comes through unstyled.
	assert.Contains(t, buf.String(), "/  \\    /  \\____ _/  |_")
	assert.NotContains(t, buf.String(), "\x1b[")
}
