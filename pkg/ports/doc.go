/*
Package ports defines the driven ports (interfaces) of the water jug service.

These interfaces decouple the solver facade from external implementations, allowing
it to work with various cache backends.

# Key Interfaces

  - SolutionCache: Memoizes solved problems (e.g., in memory or in Redis).
*/
package ports
