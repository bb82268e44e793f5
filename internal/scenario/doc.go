// Package scenario describes scripted sequences of list operations that can
// be loaded from YAML or JSON and replayed onto a forwardlist.List[int].
//
// A scenario names each step by operation and, where needed, by a position
// index: 0 addresses the before-begin anchor and k addresses the k-th
// element. The runner checks every precondition before touching the list,
// so an invalid script reports a *StepError rather than panicking.
package scenario
