package metrics

import "sync"

var (
	_ Metrics      = (*Mock)(nil)
	_ CounterStore = (*MockCounters)(nil)
)

// Mock is a mock implementation of the Metrics interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu                  sync.Mutex
	submissionsAccepted int
	rejections          map[string]int
	persistenceFailures int
	renders             map[string]int
	submitDurations     []float64
	slackMessageSent    int
	slackMessageFailed  int
	startupTime         float64
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{
		rejections: make(map[string]int),
		renders:    make(map[string]int),
	}
}

func (m *Mock) IncSubmissionsAccepted() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.submissionsAccepted++
}

func (m *Mock) IncSubmissionsRejected(reason string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rejections[reason]++
}

func (m *Mock) IncPersistenceFailures() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.persistenceFailures++
}

func (m *Mock) IncLeaderboardRenders(board string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.renders[board]++
}

func (m *Mock) ObserveSubmitDuration(duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.submitDurations = append(m.submitDurations, duration)
}

func (m *Mock) IncSlackMessageSent() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.slackMessageSent++
}

func (m *Mock) IncSlackMessageFailed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.slackMessageFailed++
}

func (m *Mock) SetStartupTime(duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.startupTime = duration
}

func (m *Mock) SubmissionsAccepted() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.submissionsAccepted
}

// Rejections returns how often IncSubmissionsRejected was called with reason.
func (m *Mock) Rejections(reason string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.rejections[reason]
}

func (m *Mock) PersistenceFailures() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.persistenceFailures
}

// Renders returns how often IncLeaderboardRenders was called with board.
func (m *Mock) Renders(board string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.renders[board]
}

func (m *Mock) SubmitDurations() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.submitDurations)
}

func (m *Mock) SlackMessageSent() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.slackMessageSent
}

func (m *Mock) SlackMessageFailed() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.slackMessageFailed
}

// MockCounters is an in-memory CounterStore.
type MockCounters struct {
	mu     sync.Mutex
	values map[string]int
	// GetAllErr, when set, is returned by GetAll.
	GetAllErr error
}

func NewMockCounters() *MockCounters {
	return &MockCounters{values: make(map[string]int)}
}

func (m *MockCounters) Increment(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key]++
}

func (m *MockCounters) GetAll() (map[string]int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetAllErr != nil {
		return nil, m.GetAllErr
	}
	out := make(map[string]int, len(m.values))
	for k, v := range m.values {
		out[k] = v
	}
	return out, nil
}
