// Package schedule plans the sequence of forward recomputations, checkpoint
// writes, reads and discards, and adjoint steps needed to reverse a
// time-stepping simulation under a bounded number of storage slots.
//
// # Reading Guide
//
// Start with these files to understand the engine:
//   - operation.go / action.go: the low-level Operation and public Action
//     tagged types that flow between the internal builders and the consumer.
//   - costtable.go: the H-Revolve dynamic-programming cost tables (opt, optp).
//   - sequence.go: recursive translation of the cost tables into an ordered
//     Operation list (the H-Revolve schedule itself).
//   - adapter.go: walks that Operation list and emits the public Action
//     stream, enforcing the checkpointing invariants.
//   - twolevel.go: the simpler two-level periodic/binomial schedule, which
//     emits Actions directly without a cost table.
//   - hrevolve.go / twolevel_schedule.go: the Schedule façade a consumer
//     actually constructs and drives.
//
// # Architecture
//
// Two concrete Schedule implementations share the Action vocabulary:
//   - HRevolveSchedule: optimal multi-level schedule (Herrmann & Pallez).
//   - TwoLevelSchedule: periodic disk checkpoints with binomial
//     checkpointing (in RAM or on disk) between them, restartable
//     indefinitely.
//
// Neither schedule performs I/O or runs a solver; they only name actions for
// an external forward/adjoint solver to execute.
package schedule
