// SPDX-License-Identifier: MIT

// Package contraction simplifies a simplex.Tree by edge contraction.
//
// Contracting the edge uv onto a placement p ∈ {u, v} replaces the other
// endpoint r by p in every simplex that contains r, then deletes r with all
// its cofaces. A replaced simplex keeps the value of the simplex it came
// from (the minimum when several collapse onto the same vertex set), and
// monotonicity is enforced afterwards.
//
// The three policies are plain interfaces:
//
//   - Placement chooses the surviving endpoint (FirstVertex, LowerFiltrationVertex).
//   - Validity accepts or rejects a contraction (LinkCondition, AlwaysValid).
//   - Cost orders the candidate edges for Simplify (FiltrationCost).
//
// LinkCondition accepts uv only when lk(u) ∩ lk(v) = lk(uv), which
// guarantees that the contraction preserves the homotopy type.
package contraction
