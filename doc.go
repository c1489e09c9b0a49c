/*
Package waterjug solves the two-jug measuring puzzle: given jugs of integer
capacities X and Y, find the shortest sequence of fill, empty and pour actions that
leaves exactly a target amount in either jug.

The core search lives in [github.com/aretw0/waterjug/pkg/solver] and is pure. This
package wraps it in a Service that adds optional memoization, lifecycle hooks for
metrics, and structured logging. Adapters expose the Service over HTTP (with an
OpenAPI document and Swagger UI), as an MCP tool, and as a CLI.

# Usage

	svc := waterjug.New(
		waterjug.WithCache(memory.NewCache(0)),
		waterjug.WithMaxStates(1_000_000),
	)

	steps, err := svc.Solve(ctx, domain.Problem{CapacityX: 2, CapacityY: 100, Target: 96})
	if err != nil {
		// domain.ErrInvalidInput, domain.ErrInfeasible or domain.ErrNoSolutionFound
	}
	for _, step := range steps {
		fmt.Printf("%-12s (%d, %d)\n", step.Action, step.X, step.Y)
	}
*/
package waterjug
