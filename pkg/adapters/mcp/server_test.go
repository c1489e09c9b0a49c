package mcp

import (
	"context"
	"encoding/json"
	"math"
	"testing"

	"github.com/aretw0/waterjug"
	"github.com/aretw0/waterjug/internal/logging"
	"github.com/aretw0/waterjug/pkg/domain"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer() *Server {
	return NewServer(waterjug.New(), logging.NewNop())
}

func callSolve(t *testing.T, s *Server, args map[string]any) *mcp.CallToolResult {
	t.Helper()
	req := mcp.CallToolRequest{}
	req.Params.Name = ToolSolve
	req.Params.Arguments = args

	res, err := s.handleSolve(context.Background(), req)
	require.NoError(t, err)
	require.NotNil(t, res)
	return res
}

func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	require.Len(t, res.Content, 1)
	text, ok := res.Content[0].(mcp.TextContent)
	require.True(t, ok, "expected text content, got %T", res.Content[0])
	return text.Text
}

func TestSolveTool_Success(t *testing.T) {
	s := newTestServer()

	res := callSolve(t, s, map[string]any{
		"x_capacity":    float64(2),
		"y_capacity":    float64(100),
		"target_amount": float64(96),
	})

	assert.False(t, res.IsError)
	structured, ok := res.StructuredContent.(SolveResult)
	require.True(t, ok)
	require.Len(t, structured.Steps, 4)
	assert.Equal(t, domain.ActionFillY, structured.Steps[0].Action)

	var decoded struct {
		Steps []struct {
			XAmount int    `json:"xAmount"`
			YAmount int    `json:"yAmount"`
			Action  string `json:"action"`
		} `json:"steps"`
	}
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &decoded))
	require.Len(t, decoded.Steps, 4)
	assert.Equal(t, 96, decoded.Steps[3].YAmount)
	assert.Equal(t, "Pour Y to X", decoded.Steps[3].Action)
}

func TestSolveTool_ZeroTarget(t *testing.T) {
	s := newTestServer()

	res := callSolve(t, s, map[string]any{
		"x_capacity":    float64(3),
		"y_capacity":    float64(5),
		"target_amount": float64(0),
	})

	assert.False(t, res.IsError)
	assert.JSONEq(t, `{"steps": []}`, resultText(t, res))
}

func TestSolveTool_Failures(t *testing.T) {
	s := newTestServer()

	cases := []struct {
		name    string
		args    map[string]any
		message string
	}{
		{
			name:    "Invalid Input",
			args:    map[string]any{"x_capacity": float64(0), "y_capacity": float64(5), "target_amount": float64(4)},
			message: "Invalid input: Values must be positive integers.",
		},
		{
			name:    "Infeasible",
			args:    map[string]any{"x_capacity": float64(2), "y_capacity": float64(6), "target_amount": float64(5)},
			message: "No solution possible.",
		},
		{
			name:    "Missing Argument",
			args:    map[string]any{"x_capacity": float64(3), "y_capacity": float64(5)},
			message: "Invalid input: Values must be positive integers.",
		},
		{
			name:    "Fractional Argument",
			args:    map[string]any{"x_capacity": 3.5, "y_capacity": float64(5), "target_amount": float64(4)},
			message: "Invalid input: Values must be positive integers.",
		},
		{
			name:    "String Argument",
			args:    map[string]any{"x_capacity": "three", "y_capacity": float64(5), "target_amount": float64(4)},
			message: "Invalid input: Values must be positive integers.",
		},
		{
			name:    "Out Of Range Argument",
			args:    map[string]any{"x_capacity": 1e19, "y_capacity": float64(5), "target_amount": float64(4)},
			message: "Invalid input: Values must be positive integers.",
		},
		{
			name:    "Unknown Argument",
			args:    map[string]any{"x_capacity": float64(3), "y_capacity": float64(5), "target_amount": float64(4), "z": float64(1)},
			message: "Invalid input: Values must be positive integers.",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res := callSolve(t, s, tc.args)
			assert.True(t, res.IsError)
			assert.Equal(t, tc.message, resultText(t, res))
		})
	}
}

func TestDecodeArgs(t *testing.T) {
	args, err := decodeArgs(map[string]any{
		"x_capacity":    float64(3),
		"y_capacity":    5,
		"target_amount": float64(4),
	})
	require.NoError(t, err)
	assert.Equal(t, SolveArgs{XCapacity: 3, YCapacity: 5, TargetAmount: 4}, args)

	_, err = decodeArgs(nil)
	assert.Error(t, err)

	for _, v := range []float64{1e19, -1e19, math.Exp2(63)} {
		_, err = decodeArgs(map[string]any{"x_capacity": v, "y_capacity": 5, "target_amount": 4})
		assert.ErrorContains(t, err, "out of range", "value %v", v)
	}
}

func TestActionsResource(t *testing.T) {
	s := newTestServer()

	contents, err := s.handleActions(context.Background(), mcp.ReadResourceRequest{})
	require.NoError(t, err)
	require.Len(t, contents, 1)

	text, ok := contents[0].(mcp.TextResourceContents)
	require.True(t, ok)
	assert.Equal(t, ResourceActions, text.URI)

	var labels []string
	require.NoError(t, json.Unmarshal([]byte(text.Text), &labels))
	assert.Equal(t, []string{
		"Fill X jug", "Fill Y jug", "Empty X jug", "Empty Y jug", "Pour X to Y", "Pour Y to X",
	}, labels)
}
