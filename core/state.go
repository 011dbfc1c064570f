package core

import "sync"

// Phase is the coarse lifecycle stage of an orchestration run.
type Phase string

const (
	// PhasePlanning covers initial task creation.
	PhasePlanning Phase = "planning"
	// PhaseResearch covers attraction / weather gathering.
	PhaseResearch Phase = "research"
	// PhaseBooking covers hotel reservation.
	PhaseBooking Phase = "booking"
	// PhaseSummary is terminal; only the summarizer runs afterwards.
	PhaseSummary Phase = "summary"
)

// Well-known actor identifiers routed by coordinators.
const (
	AgentPlanner     = "planner"
	AgentResearcher  = "researcher"
	AgentBooker      = "booker"
	AgentCoordinator = "coordinator"

	// ActorSummarize is the terminal actor of the task-driven variant.
	ActorSummarize = "summarize"
	// ActorHuman is the terminal actor of the persona variant.
	ActorHuman = "human"
)

// SharedState is the cross-agent working memory: the task registry, collected
// results (last-writer-wins per key) and accumulated bookings. It is owned by
// the orchestration loop; agents mutate it only during their own turn.
type SharedState struct {
	Registry *Registry

	mu       sync.RWMutex
	results  map[string]any
	bookings []Booking
}

// NewSharedState constructs an empty shared state with a fresh registry.
func NewSharedState() *SharedState {
	return &SharedState{Registry: NewRegistry(), results: make(map[string]any)}
}

// MergeResults merges key/value pairs into the results map, last writer wins
// per key.
func (s *SharedState) MergeResults(delta map[string]any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for k, v := range delta {
		s.results[k] = v
	}
}

// Result returns the value stored under key and whether it exists.
func (s *SharedState) Result(key string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.results[key]
	return v, ok
}

// ResultCount returns the number of collected result keys.
func (s *SharedState) ResultCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.results)
}

// AddBooking appends a booking record.
func (s *SharedState) AddBooking(b Booking) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bookings = append(s.bookings, b)
}

// Bookings returns a copy of the accumulated booking records.
func (s *SharedState) Bookings() []Booking {
	s.mu.RLock()
	defer s.mu.RUnlock()
	bookings := make([]Booking, len(s.bookings))
	copy(bookings, s.bookings)
	return bookings
}

// OrchestrationState is the root aggregate for one run: shared state, message
// board, the original request, the volley counter, current phase and the
// next-agent hint. It is created at session start, mutated every turn by the
// orchestration loop, and discarded at session end.
type OrchestrationState struct {
	Request TravelRequest
	Shared  *SharedState
	Board   *Board
	Volleys *VolleyCounter

	mu        sync.RWMutex
	phase     Phase
	nextAgent string
	err       string
}

// NewOrchestrationState builds the aggregate for a request with the given
// volley budget. The run starts in the planning phase with the planner as
// next-agent hint.
func NewOrchestrationState(req TravelRequest, volleys int) *OrchestrationState {
	return &OrchestrationState{
		Request:   req,
		Shared:    NewSharedState(),
		Board:     NewBoard(),
		Volleys:   NewVolleyCounter(volleys),
		phase:     PhasePlanning,
		nextAgent: AgentPlanner,
	}
}

// Phase returns the current phase.
func (o *OrchestrationState) Phase() Phase {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.phase
}

// SetPhase moves the run to the given phase.
func (o *OrchestrationState) SetPhase(p Phase) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.phase = p
}

// NextAgent returns the current next-agent hint.
func (o *OrchestrationState) NextAgent() string {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.nextAgent
}

// SetNextAgent records the next-agent hint.
func (o *OrchestrationState) SetNextAgent(agent string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.nextAgent = agent
}

// Err returns the sticky session error message, empty when none occurred.
func (o *OrchestrationState) Err() string {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.err
}

// SetErr records the session error. The first recorded error wins; once set
// it is never cleared and short-circuits the next completion check.
func (o *OrchestrationState) SetErr(msg string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.err == "" {
		o.err = msg
	}
}

// Update is the delta an agent node hands back to the orchestration loop at
// the end of its turn. Zero values mean "no change"; the loop is the single
// authority that commits updates between turns.
type Update struct {
	Phase     Phase
	NextAgent string
	Err       error
}
