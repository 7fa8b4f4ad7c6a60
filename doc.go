// Package shuffleplan contains the core types of an adaptive post-shuffle
// partition planner. It turns per-partition byte statistics reported by
// upstream map stages into a concrete plan describing how a downstream
// reduce stage should read from them. Orchestration lives in the coordinator
// package; pure decision logic lives in internal/coalesce and internal/broadcast.
package shuffleplan
