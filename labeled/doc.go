// Package labeled attaches typed vertex and edge payloads to any graph
// builder satisfying haggle.Builder, without the underlying topology knowing
// about them.
//
// Three adapter compositions are provided, each generic over its label
// types:
//
//   - VertexLabeled[VL] — vertex payloads; edges stay unlabeled.
//   - EdgeLabeled[EL]   — edge payloads; vertices stay unlabeled.
//   - Labeled[VL, EL]   — both.
//
// Each has a frozen counterpart (FrozenVertexLabeled, FrozenEdgeLabeled,
// FrozenLabeled) produced by Freeze and reversed by Thaw; label stores are
// copied at both transitions, so snapshots and thawed builders never share
// label state.
//
// The label-sync invariant is enforced by construction: for each labeled
// dimension, the adapter's public surface exposes only the labeled add
// (AddLabeledVertex / AddLabeledEdge), which records the label in the same
// call that creates the element. An element can only lack a label when the
// wrapped graph was mutated directly, bypassing the adapter — reaching
// around the adapter is the documented hazard, not a supported path. Safe
// accessors report such elements as absent; LabeledVertices and the Must*
// accessors treat them as contract violations and panic.
//
// Labels are held in dense tables keyed by handle id, bounds-checked against
// the ids seen so far. Structural queries delegate to the wrapped graph
// unchanged; the adapter caches no structural state.
package labeled
