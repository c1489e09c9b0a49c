package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/waterjug/pkg/domain"
)

// GenerateMermaid produces a Mermaid flowchart of a solution path.
// The initial (0, 0) state is drawn as a circle, every step as a rectangle
// reached by an edge labelled with its action, and the final state is
// highlighted as the goal.
func GenerateMermaid(p domain.Problem, steps domain.Solution) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")
	sb.WriteString(fmt.Sprintf("    %%%% %s\n", p))

	sb.WriteString(fmt.Sprintf("    %s((\"%s\"))\n", nodeID(0), label(domain.State{})))
	for i, step := range steps {
		sb.WriteString(fmt.Sprintf("    %s[\"%s\"]\n", nodeID(i+1), label(step.State)))
	}
	for i, step := range steps {
		sb.WriteString(fmt.Sprintf("    %s -- \"%s\" --> %s\n", nodeID(i), step.Action, nodeID(i+1)))
	}

	sb.WriteString("\n    %% Goal Style\n")
	// Force black text (color:#000) for high-contrast regardless of theme
	sb.WriteString("    classDef goal fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")
	sb.WriteString(fmt.Sprintf("    class %s goal;\n", nodeID(len(steps))))

	return sb.String()
}

func nodeID(i int) string {
	return fmt.Sprintf("s%d", i)
}

func label(s domain.State) string {
	return fmt.Sprintf("X=%d, Y=%d", s.X, s.Y)
}
