package metrics

// Metrics defines the interface for collecting application metrics.
// This decouples the application from the specific metrics implementation (e.g., Prometheus).
type Metrics interface {
	IncSubmissionsAccepted()
	IncSubmissionsRejected(reason string)
	IncPersistenceFailures()
	IncLeaderboardRenders(board string)
	ObserveSubmitDuration(duration float64)
	IncSlackMessageSent()
	IncSlackMessageFailed()
	SetStartupTime(duration float64)
}

// CounterStore keeps lifetime totals that survive restarts.
type CounterStore interface {
	Increment(key string)
	GetAll() (map[string]int, error)
}
