package core

// AuditEntry captures a single balance mutation for operational traceability.
// Amount fields carry exact decimal strings so the trail never loses precision.
type AuditEntry struct {
	RunID       string // processing run that produced the mutation
	EventKind   string // snapshot_init, snapshot_delta, accrual, fixed_reward
	UserName    string
	Game        string
	Coefficient int64
	Delta       string // game-local change applied by this mutation
	BankBefore  string
	BankAfter   string
	LastBalance string // absolute mirror value after the mutation
	BotBalance  string // accumulated award total after the mutation
}

// AuditLogger narrates every balance mutation and processing failure.
// The trail is append-only: implementations must never drop or rewrite entries.
type AuditLogger interface {
	// RecordMutation appends one successful balance mutation to the trail
	RecordMutation(entry AuditEntry)

	// RecordError appends a processing failure with its context tag
	// (parsing, configuration or processing)
	RecordError(runID, contextTag string, err error, fields map[string]any)
}
