// Package core provides the foundational domain types and invariants used by
// TripMesh. It defines:
//
//   - Tasks, the task Registry and forward-only status tracking
//   - The append-only message Board shared by agents and the presentation layer
//   - SharedState / OrchestrationState, the root aggregate of one run
//   - The VolleyCounter bounding total coordinator decisions
//   - The Node contract agent implementations fulfil, and the TurnContext
//     handed to a node for exactly one turn
//
// The package intentionally keeps implementation concerns (concrete agents,
// coordinators, the orchestration engine, tool adapters) out of scope,
// exposing small types the rest of the module builds on.
package core
