package shuffleplan

// BroadcastConfig toggles the broadcast-join optimization and sets the byte
// threshold under which a side of a two-input join is considered small
// enough to broadcast.
type BroadcastConfig struct {
	Enabled   bool
	Threshold uint64
}

// CoordinatorConfig is the complete, explicit configuration for one
// ExchangeCoordinator instance. It is supplied once, at construction, and
// never mutated: there is no process-wide configuration registry behind it.
type CoordinatorConfig struct {
	// NumExchanges is the number of Exchanges expected to register before
	// estimation runs. Asserted against the actual registration count.
	NumExchanges uint32
	// TargetBytes is the advisory post-shuffle partition byte budget the
	// Coalescer tries to meet.
	TargetBytes uint64
	// MinPartitions, if set, puts upward pressure on the post-shuffle
	// partition count (see Coalescer's effective-target computation). Nil
	// means no floor is enforced.
	MinPartitions *uint32
	// IsTwoInputJoin enables BroadcastDecider eligibility. Ignored for any
	// other NumExchanges than two.
	IsTwoInputJoin bool
	// Broadcast configures the broadcast-join optimization.
	Broadcast BroadcastConfig
}
