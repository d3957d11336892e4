package innovation

import "github.com/innovation-engine/innovation/cards"

// ChoiceKind describes what a pending choice asks for.
type ChoiceKind string

const (
	// ChoiceCards asks for between MinCount and MaxCount card ids from Options.
	ChoiceCards ChoiceKind = "cards"
	// ChoiceSplay asks for colors from Options (encoded as ints).
	ChoiceSplay ChoiceKind = "splay"
	// ChoiceValue asks for card ages from Options.
	ChoiceValue ChoiceKind = "value"
	// ChoiceYesNo asks for exactly one of Options [0,1].
	ChoiceYesNo ChoiceKind = "yes_no"
)

// Choice is the suspend point of the dogma engine: what input is required,
// from whom, and where execution resumes. It is stored inside GameData, so
// suspension state survives save and reload.
type Choice struct {
	Kind     ChoiceKind   `json:"kind"`
	Player   PlayerID     `json:"player"`
	Prompt   string       `json:"prompt"`
	MinCount int          `json:"min_count"`
	MaxCount int          `json:"max_count"`
	Options  []int        `json:"options"`
	Resume   Continuation `json:"resume"`
}

func (c Choice) clone() Choice {
	c.Options = cloneInts(c.Options)
	c.Resume = c.Resume.clone()
	return c
}

// ChoiceAnswer is the actor-supplied reply to a pending Choice. Empty
// Picks decline an optional choice.
type ChoiceAnswer struct {
	Player PlayerID `json:"player"`
	Picks  []int    `json:"picks"`
}

// Continuation records what remains to run of a suspended dogma
// activation: which effect of which card, which step within it, the
// executors still owed the effect (head is the current one), and scratch
// values earlier steps left for later ones. Resuming re-enters the
// suspended step with the answer attached; completed side effects are
// never re-run.
type Continuation struct {
	Card        cards.CardID   `json:"card"`
	Activator   PlayerID       `json:"activator"`
	EffectIndex int            `json:"effect_index"`
	StepIndex   int            `json:"step_index"`
	Queue       []PlayerID     `json:"queue,omitempty"`
	Vars        map[string]int `json:"vars,omitempty"`
}

func (c Continuation) clone() Continuation {
	if c.Queue != nil {
		q := make([]PlayerID, len(c.Queue))
		copy(q, c.Queue)
		c.Queue = q
	}
	if c.Vars != nil {
		v := make(map[string]int, len(c.Vars))
		for k, x := range c.Vars {
			v[k] = x
		}
		c.Vars = v
	}
	return c
}

// ChoiceRequest is a step's description of the input it needs.
type ChoiceRequest struct {
	Kind     ChoiceKind
	Prompt   string
	MinCount int
	MaxCount int
	Options  []int
}

// StepResult steers the dogma engine after a step runs. The zero value
// means the step completed and execution moves to the next step.
type StepResult struct {
	// Choice suspends execution; the same step is re-entered with the answer.
	Choice *ChoiceRequest
	// Repeat restarts the current effect's steps for the current executor.
	Repeat bool
	// Halt skips the executor's remaining steps of this effect.
	Halt bool
}

// EffectContext is what a step sees while it runs. Answer is nil on first
// entry and non-nil (possibly empty) when re-entering after a suspension.
// Vars persists across steps and suspensions for the current executor.
type EffectContext struct {
	Engine    *Engine
	Game      *GameData
	Card      cards.Card
	Activator PlayerID
	Executor  PlayerID
	Answer    []int
	Vars      map[string]int
}

// StepFunc is one step of a dogma effect. Steps that request a choice must
// perform their side effects only after the answer arrives, so re-entry
// never repeats work.
type StepFunc func(*EffectContext) (StepResult, error)

// DogmaEffect is one printed effect: a demand flag and the steps that
// implement it.
type DogmaEffect struct {
	Demand bool
	Steps  []StepFunc
}

// ProcessDogmaAction begins executing the registered effect list of a card,
// top to bottom, for the activating player. It either runs to completion
// or suspends with a pending choice. The snapshot is mutated in place;
// ProcessAction clones before dispatching here.
func (e *Engine) ProcessDogmaAction(g *GameData, p PlayerID, id cards.CardID) error {
	g.logEvent(GameEvent{Type: EventDogmaActivated, Player: p, Card: id})
	return e.runDogma(g, Continuation{Card: id, Activator: p}, nil)
}

// runDogma drives a dogma activation from wherever cont points until it
// completes, suspends, or the game ends. A demand effect executes for the
// activating player first, then for each affected opponent in turn order;
// an unaffected opponent skips the effect without being offered a choice.
func (e *Engine) runDogma(g *GameData, cont Continuation, answer []int) error {
	effects := e.effects.effectsFor(cont.Card)
	card := e.card(cont.Card)

	for cont.EffectIndex < len(effects) {
		eff := effects[cont.EffectIndex]

		if cont.Queue == nil {
			// entering this effect fresh: fix the executor queue now so a
			// mid-effect icon change cannot reshuffle it on resume
			cont.Queue = e.executorQueue(g, eff, cont.Activator, card.DogmaIcon)
			cont.StepIndex = 0
			cont.Vars = nil
		}
		if len(cont.Queue) == 0 {
			cont.EffectIndex++
			cont.Queue = nil
			continue
		}
		executor := cont.Queue[0]

		for cont.StepIndex < len(eff.Steps) {
			if cont.Vars == nil {
				cont.Vars = map[string]int{}
			}
			ctx := &EffectContext{
				Engine:    e,
				Game:      g,
				Card:      card,
				Activator: cont.Activator,
				Executor:  executor,
				Answer:    answer,
				Vars:      cont.Vars,
			}
			answer = nil

			res, err := eff.Steps[cont.StepIndex](ctx)
			if err != nil {
				return err
			}
			if g.Phase.State == GameOver {
				// a draw inside the effect hit the score-victory trigger
				return nil
			}
			if res.Choice != nil {
				g.PendingChoice = &Choice{
					Kind:     res.Choice.Kind,
					Player:   executor,
					Prompt:   res.Choice.Prompt,
					MinCount: res.Choice.MinCount,
					MaxCount: res.Choice.MaxCount,
					Options:  cloneInts(res.Choice.Options),
					Resume:   cont.clone(),
				}
				g.Phase.State = AwaitingChoice
				g.logEvent(GameEvent{Type: EventChoiceRequested, Player: executor, Card: cont.Card})
				return nil
			}
			if res.Halt {
				break
			}
			if res.Repeat {
				cont.StepIndex = 0
				continue
			}
			cont.StepIndex++
		}

		// executor finished this effect
		cont.Queue = cont.Queue[1:]
		cont.StepIndex = 0
		cont.Vars = nil
		if len(cont.Queue) == 0 {
			cont.EffectIndex++
			cont.Queue = nil
		}
	}
	return nil
}

// resumeDogma continues a suspended activation with a validated answer.
func (e *Engine) resumeDogma(g *GameData, ans ChoiceAnswer) error {
	cont := g.PendingChoice.Resume.clone()
	g.PendingChoice = nil
	g.Phase.State = AwaitingAction
	g.logEvent(GameEvent{Type: EventChoiceAnswered, Player: ans.Player, Card: cont.Card})

	answer := ans.Picks
	if answer == nil {
		// an empty answer still marks the step as answered
		answer = []int{}
	}
	return e.runDogma(g, cont, answer)
}

// executorQueue decides who an effect runs for, in order.
func (e *Engine) executorQueue(g *GameData, eff DogmaEffect, activator PlayerID, icon cards.Icon) []PlayerID {
	q := []PlayerID{activator}
	if eff.Demand {
		q = append(q, e.AffectedPlayers(g, activator, icon)...)
	}
	return q
}
