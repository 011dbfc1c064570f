// Package persona implements the simulated multi-persona conversation
// variant: named conversational identities with fixed backstories and tool
// grants, driven by a bounded think/act/message loop against a reasoning
// model. Participants fulfil the core.Node contract so the same
// orchestration loop drives both the travel and conversation variants.
package persona

import (
	"fmt"
	"strings"
)

// Tool grant identifiers personas may hold.
const (
	ToolTime    = "time"
	ToolWeather = "weather"
	ToolNews    = "news"
)

// Persona is a named conversational identity with a fixed backstory,
// personality, speech style and set of tool grants.
type Persona struct {
	ID          string
	Name        string
	Age         int
	Backstory   string
	Personality string
	SpeechStyle string
	Tools       []string
}

// HasTool reports whether the persona is granted the named tool.
func (p Persona) HasTool(name string) bool {
	for _, t := range p.Tools {
		if t == name {
			return true
		}
	}
	return false
}

// Defaults returns the built-in kopitiam cast.
func Defaults() []Persona {
	return []Persona{
		{
			ID:          "ah_seng",
			Name:        "Uncle Ah Seng",
			Age:         68,
			Backstory:   "30+ years running drinks stall at kopitiam, pragmatic and thrifty",
			Personality: "Practical, wise, caring about regulars, complains about costs",
			SpeechStyle: "Heavy Singlish, short sentences, uses 'lah', 'lor', 'wah'",
			Tools:       []string{ToolTime, ToolWeather},
		},
		{
			ID:          "mei_qi",
			Name:        "Mei Qi",
			Age:         21,
			Backstory:   "Young content creator promoting kopitiam online, social media influencer, very chatty.",
			Personality: "Upbeat, trendy, enthusiastic, loves sharing stories",
			SpeechStyle: "Mix of English and Singlish, uses 'OMG', 'yasss', occasionally emoji expressions",
			Tools:       []string{ToolTime, ToolNews},
		},
		{
			ID:          "bala",
			Name:        "Bala Nair",
			Age:         45,
			Backstory:   "Ex-statistician turned football tipster, hangs out at kopitiam daily",
			Personality: "Analytical, dry humor, sees patterns in everything",
			SpeechStyle: "Formal English with occasional Singlish, makes statistical references",
			Tools:       []string{ToolTime},
		},
		{
			ID:          "dr_tan",
			Name:        "Dr. Tan",
			Age:         72,
			Backstory:   "Retired philosophy professor, enjoys deep conversations over kopi",
			Personality: "Thoughtful, philosophical, patient, loves teaching moments",
			SpeechStyle: "Proper English with minimal Singlish, thoughtful pauses, asks profound questions",
			Tools:       []string{ToolTime, ToolWeather, ToolNews},
		},
	}
}

// IDs returns the actor identifiers of the given personas, in order.
func IDs(personas []Persona) []string {
	ids := make([]string, 0, len(personas))
	for _, p := range personas {
		ids = append(ids, p.ID)
	}
	return ids
}

// CoordinatorInstructions builds the system prompt for the model-driven
// coordinator selecting the next speaker among the given cast.
func CoordinatorInstructions(personas []Persona) string {
	var sb strings.Builder
	sb.WriteString("You are managing a lively conversation at a Singapore kopitiam.\n\nAvailable speakers:\n")
	for _, p := range personas {
		fmt.Fprintf(&sb, "- %s: %s, %dyo. %s\n", p.ID, p.Name, p.Age, p.Backstory)
	}
	sb.WriteString(`
Based on the conversation flow, select who should speak next to keep the conversation lively and natural.
Consider:
- Who hasn't spoken recently
- Who has relevant expertise for the current topic
- Most importantly, who would add interesting perspective
- Natural kopitiam banter flow

Respond with ONLY the speaker ID (` + strings.Join(IDs(personas), ", ") + `).`)
	return sb.String()
}
