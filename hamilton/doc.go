// SPDX-License-Identifier: MIT
// Package hamilton searches for a Hamiltonian cycle: a closed tour visiting
// every vertex exactly once.
//
// Search(g, start) runs exhaustive backtracking. At each step the unvisited
// neighbors of the current vertex are tried in ascending edge weight, which
// tends to find a light tour first but does not guarantee the lightest one.
// The worst case is exponential; callers keep graphs small (the store caps
// them at 15 vertices) and may bound the work with WithMaxExpansions or a
// context.
package hamilton
