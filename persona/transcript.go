package persona

import (
	"strings"

	"github.com/hupe1980/tripmesh/core"
)

// Transcript renders the conversation variant's terminal report: the spoken
// utterances in order, without coordinator routing noise.
type Transcript struct{}

// NewTranscript constructs the transcript reporter.
func NewTranscript() *Transcript { return &Transcript{} }

// Report implements the engine's Finalizer contract as a pure reader.
func (*Transcript) Report(state *core.OrchestrationState) string {
	var sb strings.Builder
	sb.WriteString("=== KOPITIAM CONVERSATION ===\n\n")
	for _, e := range state.Board.Snapshot(0) {
		if e.Agent == core.AgentCoordinator {
			continue
		}
		sb.WriteString(e.Agent)
		sb.WriteString(": ")
		sb.WriteString(e.Content)
		sb.WriteByte('\n')
	}
	return sb.String()
}
