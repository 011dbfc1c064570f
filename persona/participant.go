package persona

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/hupe1980/tripmesh/core"
	"github.com/hupe1980/tripmesh/model"
	"github.com/hupe1980/tripmesh/tool"
)

// step is a state of the participant's bounded reasoning machine.
type step int

const (
	stepThinking step = iota
	stepActing
	stepMessaging
)

var (
	actionRe  = regexp.MustCompile(`Action:\s*(\w+)`)
	messageRe = regexp.MustCompile(`(?s)Message:\s*(.*)`)
)

const (
	// fallbackUtterance is spoken when the model is unreachable.
	fallbackUtterance = "Sorry ah, my mind a bit blur now..."
	// terminalUtterance is spoken when the transition budget runs out
	// without the model producing a message.
	terminalUtterance = "Well, that's interesting lah..."
)

// Participant drives one persona through a bounded think/act/message loop:
// the model thinks, optionally requests tool actions whose observations feed
// the next thought, and eventually emits an in-character message. The loop is
// capped by a maximum transition count; exhausting it yields a default
// terminal message, and a model failure yields a fallback utterance. Either
// way the participant always speaks and never returns an error.
type Participant struct {
	persona        Persona
	model          model.Model
	local          tool.LocalInfo
	maxTransitions int
}

var _ core.Node = (*Participant)(nil)

// ParticipantOptions configure a participant.
type ParticipantOptions struct {
	// MaxTransitions caps the think/act steps per turn. Defaults to 5.
	MaxTransitions int
}

// NewParticipant constructs a participant for one persona.
func NewParticipant(p Persona, m model.Model, local tool.LocalInfo, optFns ...func(o *ParticipantOptions)) *Participant {
	opts := ParticipantOptions{MaxTransitions: 5}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Participant{persona: p, model: m, local: local, maxTransitions: opts.MaxTransitions}
}

// Name implements core.Node.
func (p *Participant) Name() string { return p.persona.ID }

// Run implements core.Node. The participant speaks exactly one utterance,
// posted to the board under its persona id.
func (p *Participant) Run(tc *core.TurnContext) (core.Update, error) {
	utterance := p.speak(tc.Context, tc.State.Board.History())
	tc.State.Board.Post(p.persona.ID, utterance, nil)
	tc.LogDebug("participant spoke", "persona", p.persona.ID)
	return core.Update{}, nil
}

// speak runs the bounded reasoning machine and returns the utterance.
func (p *Participant) speak(ctx context.Context, history string) string {
	prompt := fmt.Sprintf("Recent conversation:\n%s\n\nContinue the conversation as %s.\n", history, p.persona.Name)

	current := stepThinking
	var pendingAction, pendingContent, message string

	for transitions := 0; transitions < p.maxTransitions; transitions++ {
		switch current {
		case stepThinking:
			resp, err := p.model.Complete(ctx, model.Request{
				Instructions: p.instructions(),
				Prompt:       prompt,
			})
			if err != nil {
				return fallbackUtterance
			}
			content := strings.TrimSpace(resp)

			if m := messageRe.FindStringSubmatch(content); m != nil {
				message = strings.TrimSpace(m[1])
				current = stepMessaging
				continue
			}
			if m := actionRe.FindStringSubmatch(content); m != nil {
				pendingAction = m[1]
				pendingContent = content
				current = stepActing
				continue
			}
			// No action or message yet; fold the thought back in and keep thinking.
			prompt += "\n" + content + "\n"

		case stepActing:
			observation := p.execute(pendingAction)
			prompt += fmt.Sprintf("\n%s\n\nObservation: %s\n", pendingContent, observation)
			current = stepThinking

		case stepMessaging:
			return message
		}
	}

	if current == stepMessaging {
		return message
	}
	return terminalUtterance
}

// execute dispatches a granted tool and returns its observation.
func (p *Participant) execute(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	if !p.persona.HasTool(name) {
		return fmt.Sprintf("Unknown tool: %s", name)
	}
	switch name {
	case ToolTime:
		return p.local.Time()
	case ToolWeather:
		return p.local.Weather()
	case ToolNews:
		return p.local.News()
	default:
		return fmt.Sprintf("Unknown tool: %s", name)
	}
}

// instructions renders the persona's system prompt including the reasoning
// protocol and its granted actions.
func (p *Participant) instructions() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "You are %s, %d years old.\n", p.persona.Name, p.persona.Age)
	fmt.Fprintf(&sb, "Background: %s\n", p.persona.Backstory)
	fmt.Fprintf(&sb, "Personality: %s\n", p.persona.Personality)
	fmt.Fprintf(&sb, "Speech style: %s\n\n", p.persona.SpeechStyle)
	sb.WriteString(`You are at a Singapore kopitiam having a casual conversation.

You run in a loop of Thought, Action, Observation.
At the end of the loop you output a Message.

Use Thought to describe your thoughts about the conversation.
Use Action to run one of the actions available to you.
Observation will be the result of running those actions.

Your available actions are:
`)
	descriptions := map[string]string{
		ToolTime:    "Returns current time in Singapore",
		ToolWeather: "Returns current weather in Singapore",
		ToolNews:    "Returns latest Singapore news",
	}
	for _, t := range p.persona.Tools {
		fmt.Fprintf(&sb, "\n%s:\n%s\n", t, descriptions[t])
	}
	sb.WriteString(`
You must never guess the time, weather or news; rely on Observations returned after an Action.

Once you have enough information, output Message: followed by your response.
Keep your Message concise (1-2 sentences) and in character.`)
	return sb.String()
}
