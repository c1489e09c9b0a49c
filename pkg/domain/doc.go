/*
Package domain contains the core domain models for the water jug solver.

It defines the fundamental entities of the search, such as jug States, the six
canonical Actions and the Steps that make up a Solution. This package is kept pure
and free of external dependencies like I/O or caching, following Hexagonal
Architecture principles.

# Key Entities

  - Problem: The two jug capacities and the amount to measure.
  - State: The water level of each jug (a node of the search graph).
  - Action: One of Fill X, Fill Y, Empty X, Empty Y, Pour X to Y, Pour Y to X.
  - Step: The State produced by an Action. Predecessors are never recorded.
  - Solution: The ordered Steps leading from two empty jugs to the target.
*/
package domain
