// Package txgen generates the memory transactions of PIM workloads and
// measures how many cycles a timing model needs to serve them.
package txgen

// A Generator runs one workload against a timing model.
//
// Initialize, SetData, GetResult and CheckResult are the data-path stages of a
// workload. Generators that only measure timing may leave them empty.
type Generator interface {
	// Initialize prepares the workload.
	Initialize()

	// SetData places operands in memory and in the PIM registers.
	SetData()

	// Execute issues the workload and returns when it has completed.
	Execute()

	// GetResult reads the results back.
	GetResult()

	// CheckResult compares the results with a reference.
	CheckResult()

	// GetCycleCount returns the cycles that the last Execute took.
	GetCycleCount() uint64

	// GetTransactionCount returns the transactions that the last Execute
	// issued.
	GetTransactionCount() uint64

	// PrintStats prints the statistics of the timing model.
	PrintStats()
}
