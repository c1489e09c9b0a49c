package waterjug_test

import (
	"context"
	"fmt"
	"log"

	"github.com/aretw0/waterjug"
	"github.com/aretw0/waterjug/pkg/adapters/memory"
	"github.com/aretw0/waterjug/pkg/domain"
)

// ExampleService_Solve demonstrates solving a problem with an in-memory cache.
func ExampleService_Solve() {
	svc := waterjug.New(waterjug.WithCache(memory.NewCache(0)))

	steps, err := svc.Solve(context.Background(), domain.Problem{CapacityX: 2, CapacityY: 100, Target: 96})
	if err != nil {
		log.Fatal(err)
	}

	for i, step := range steps {
		fmt.Printf("%d. %s -> (%d, %d)\n", i+1, step.Action, step.X, step.Y)
	}

	// Output:
	// 1. Fill Y jug -> (0, 100)
	// 2. Pour Y to X -> (2, 98)
	// 3. Empty X jug -> (0, 98)
	// 4. Pour Y to X -> (2, 96)
}

// ExampleService_Solve_infeasible shows the user-facing failure message.
func ExampleService_Solve_infeasible() {
	_, err := waterjug.New().Solve(context.Background(), domain.Problem{CapacityX: 2, CapacityY: 6, Target: 5})
	fmt.Println(err)

	// Output:
	// No solution possible.
}
