/*
Package solver finds the shortest sequence of jug actions that measures a target amount.

A request is checked in three stages, each cheaper than the next:

 1. Validation: both capacities must be positive and the target non-negative.
 2. Feasibility: the target must fit in the larger jug and be a multiple of
    gcd(capacityX, capacityY). A zero target is always feasible and needs no steps.
 3. Search: a breadth-first search over (x, y) states from (0, 0). Edges are
    unweighted, so the first goal state dequeued lies on a shortest path.

Every call owns its queue and visited set, so a Solver is safe for concurrent use.
*/
package solver
