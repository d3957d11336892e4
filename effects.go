package innovation

import (
	"fmt"

	"github.com/innovation-engine/innovation/cards"
)

// Registry associates card ids with the effect lists the dogma engine
// executes. It is populated once before any engine is constructed and
// read-only afterwards; NewEngine rejects a card set containing an id the
// registry does not cover.
type Registry struct {
	effects map[cards.CardID][]DogmaEffect
}

func NewRegistry() *Registry {
	return &Registry{effects: map[cards.CardID][]DogmaEffect{}}
}

// Register wires an effect list to a card id. Re-registering an id is a
// wiring defect.
func (r *Registry) Register(id cards.CardID, effects []DogmaEffect) error {
	if _, ok := r.effects[id]; ok {
		return fmt.Errorf("effect for card %d already registered: %w", id, ErrConfiguration)
	}
	r.effects[id] = effects
	return nil
}

func (r *Registry) Has(id cards.CardID) bool {
	_, ok := r.effects[id]
	return ok
}

func (r *Registry) effectsFor(id cards.CardID) []DogmaEffect {
	return r.effects[id]
}

// BaseRegistry returns a registry covering every card in the base set. A
// base id without a script is a build defect, caught here rather than at
// activation time.
func BaseRegistry() *Registry {
	r := NewRegistry()
	for _, id := range cards.BaseSet().IDs() {
		effects := baseEffects(id)
		if effects == nil {
			panic(fmt.Sprintf("innovation: no effect script for base card %d", id))
		}
		if err := r.Register(id, effects); err != nil {
			panic("innovation: " + err.Error())
		}
	}
	return r
}

// nd and dd assemble non-demand and demand effects. Demand steps are
// wrapped so they no-op during the activating player's own pass; the
// scripts in this file are all opponent-directed.
func nd(steps ...StepFunc) DogmaEffect {
	return DogmaEffect{Steps: steps}
}

func dd(steps ...StepFunc) DogmaEffect {
	wrapped := make([]StepFunc, len(steps))
	for i, s := range steps {
		wrapped[i] = onOpponent(s)
	}
	return DogmaEffect{Demand: true, Steps: wrapped}
}

func onOpponent(step StepFunc) StepFunc {
	return func(ctx *EffectContext) (StepResult, error) {
		if ctx.Executor == ctx.Activator {
			return StepResult{}, nil
		}
		return step(ctx)
	}
}

// ---- context conveniences ------------------------------------------------

func (ctx *EffectContext) board() *PlayerBoard {
	return ctx.Game.Player(ctx.Executor)
}

func (ctx *EffectContext) cardAge(id cards.CardID) cards.Age {
	return ctx.Engine.card(id).Age
}

func (ctx *EffectContext) over() bool {
	return ctx.Game.Phase.State == GameOver
}

// draw pulls one card of the given age into the executor's hand. ok is
// false when the draw ended the game via the empty-supply trigger.
func (ctx *EffectContext) draw(age cards.Age) (cards.CardID, bool, error) {
	id, err := ctx.Engine.DrawCard(ctx.Game, ctx.Executor, age)
	if err != nil {
		return 0, false, err
	}
	if ctx.over() {
		return 0, false, nil
	}
	return id, true, nil
}

func idsToInts(ids []cards.CardID) []int {
	xs := make([]int, len(ids))
	for i, id := range ids {
		xs[i] = int(id)
	}
	return xs
}

func intsToIDs(xs []int) []cards.CardID {
	ids := make([]cards.CardID, len(xs))
	for i, x := range xs {
		ids[i] = cards.CardID(x)
	}
	return ids
}

func bitcount(x int) int {
	n := 0
	for x != 0 {
		x &= x - 1
		n++
	}
	return n
}

// ---- card filters and zone selectors -------------------------------------

type cardFilter func(ctx *EffectContext, c cards.Card) bool

func anyCard(*EffectContext, cards.Card) bool { return true }

func hasIconOn(icon cards.Icon) cardFilter {
	return func(_ *EffectContext, c cards.Card) bool {
		for _, ic := range c.Icons {
			if ic == icon {
				return true
			}
		}
		return false
	}
}

func lacksIconOn(icon cards.Icon) cardFilter {
	has := hasIconOn(icon)
	return func(ctx *EffectContext, c cards.Card) bool { return !has(ctx, c) }
}

func isColor(col cards.Color) cardFilter {
	return func(_ *EffectContext, c cards.Card) bool { return c.Color == col }
}

func notColor(col cards.Color) cardFilter {
	return func(_ *EffectContext, c cards.Card) bool { return c.Color != col }
}

func ageAtMost(a cards.Age) cardFilter {
	return func(_ *EffectContext, c cards.Card) bool { return c.Age <= a }
}

func ageIn(ages ...cards.Age) cardFilter {
	return func(_ *EffectContext, c cards.Card) bool {
		for _, a := range ages {
			if c.Age == a {
				return true
			}
		}
		return false
	}
}

func both(a, b cardFilter) cardFilter {
	return func(ctx *EffectContext, c cards.Card) bool { return a(ctx, c) && b(ctx, c) }
}

type picker func(ctx *EffectContext) []cards.CardID

func filterIDs(ctx *EffectContext, ids []cards.CardID, f cardFilter) []cards.CardID {
	out := []cards.CardID{}
	for _, id := range ids {
		if f == nil || f(ctx, ctx.Engine.card(id)) {
			out = append(out, id)
		}
	}
	return out
}

func fromHand(f cardFilter) picker {
	return func(ctx *EffectContext) []cards.CardID {
		return filterIDs(ctx, ctx.board().Hand, f)
	}
}

func fromScore(f cardFilter) picker {
	return func(ctx *EffectContext) []cards.CardID {
		return filterIDs(ctx, ctx.board().Scores, f)
	}
}

func fromTops(f cardFilter) picker {
	return func(ctx *EffectContext) []cards.CardID {
		return filterIDs(ctx, ctx.board().TopCards(), f)
	}
}

// fromOppTops selects among the top cards of the executor's opponent.
func fromOppTops(f cardFilter) picker {
	return func(ctx *EffectContext) []cards.CardID {
		return filterIDs(ctx, ctx.Game.Player(ctx.Executor.Opponent()).TopCards(), f)
	}
}

func fromOppScore(f cardFilter) picker {
	return func(ctx *EffectContext) []cards.CardID {
		return filterIDs(ctx, ctx.Game.Player(ctx.Executor.Opponent()).Scores, f)
	}
}

// fromActivatorTops selects among the activating player's top cards; used
// by demand follow-ups where the defender takes something back.
func fromActivatorTops(f cardFilter) picker {
	return func(ctx *EffectContext) []cards.CardID {
		return filterIDs(ctx, ctx.Game.Player(ctx.Activator).TopCards(), f)
	}
}

func highest(sel picker) picker {
	return func(ctx *EffectContext) []cards.CardID {
		return extremeAge(ctx, sel(ctx), true)
	}
}

func lowest(sel picker) picker {
	return func(ctx *EffectContext) []cards.CardID {
		return extremeAge(ctx, sel(ctx), false)
	}
}

// highestN keeps the n highest-valued candidates, ties broken by zone
// order so the result is deterministic.
func highestN(sel picker, n int) picker {
	return func(ctx *EffectContext) []cards.CardID {
		ids := append([]cards.CardID{}, sel(ctx)...)
		for i := 1; i < len(ids); i++ {
			for j := i; j > 0 && ctx.cardAge(ids[j]) > ctx.cardAge(ids[j-1]); j-- {
				ids[j], ids[j-1] = ids[j-1], ids[j]
			}
		}
		if len(ids) > n {
			ids = ids[:n]
		}
		return ids
	}
}

func extremeAge(ctx *EffectContext, ids []cards.CardID, max bool) []cards.CardID {
	if len(ids) == 0 {
		return ids
	}
	best := ctx.cardAge(ids[0])
	for _, id := range ids[1:] {
		a := ctx.cardAge(id)
		if (max && a > best) || (!max && a < best) {
			best = a
		}
	}
	out := []cards.CardID{}
	for _, id := range ids {
		if ctx.cardAge(id) == best {
			out = append(out, id)
		}
	}
	return out
}

func zExec(kind ZoneKind) func(ctx *EffectContext) ZoneRef {
	return func(ctx *EffectContext) ZoneRef { return ZoneRef{Player: ctx.Executor, Kind: kind} }
}

func zAct(kind ZoneKind) func(ctx *EffectContext) ZoneRef {
	return func(ctx *EffectContext) ZoneRef { return ZoneRef{Player: ctx.Activator, Kind: kind} }
}

func zOpp(kind ZoneKind) func(ctx *EffectContext) ZoneRef {
	return func(ctx *EffectContext) ZoneRef { return ZoneRef{Player: ctx.Executor.Opponent(), Kind: kind} }
}

// ---- generic step builders -----------------------------------------------

type pickAct func(ctx *EffectContext, picks []cards.CardID) (StepResult, error)

// pickCards builds a step that asks the executor to pick between min and
// max cards from the candidates and applies act to the picks. max < 0
// means "up to all"; min < 0 forces the full candidate set. No candidates
// skips the step. A pick that is forced in full is applied without
// suspending.
func pickCards(prompt string, min, max int, sel picker, act pickAct) StepFunc {
	return pickCardsFn(prompt, func(*EffectContext) (int, int) { return min, max }, sel, act)
}

// pickCardsFn is pickCards with the pick bounds computed from game state
// at execution time.
func pickCardsFn(prompt string, counts func(ctx *EffectContext) (int, int), sel picker, act pickAct) StepFunc {
	return func(ctx *EffectContext) (StepResult, error) {
		if ctx.Answer != nil {
			return act(ctx, intsToIDs(ctx.Answer))
		}
		opts := sel(ctx)
		if len(opts) == 0 {
			return StepResult{}, nil
		}
		lo, hi := counts(ctx)
		if hi < 0 || hi > len(opts) {
			hi = len(opts)
		}
		if lo < 0 || lo > hi {
			lo = hi
		}
		if lo == 0 && hi == 0 {
			return StepResult{}, nil
		}
		if lo == hi && lo == len(opts) {
			return act(ctx, opts)
		}
		return StepResult{Choice: &ChoiceRequest{
			Kind:     ChoiceCards,
			Prompt:   prompt,
			MinCount: lo,
			MaxCount: hi,
			Options:  idsToInts(opts),
		}}, nil
	}
}

// yesNo asks a binary question; act runs only on yes.
func yesNo(prompt string, act func(ctx *EffectContext) (StepResult, error)) StepFunc {
	return func(ctx *EffectContext) (StepResult, error) {
		if ctx.Answer != nil {
			if len(ctx.Answer) == 1 && ctx.Answer[0] == 1 {
				return act(ctx)
			}
			return StepResult{}, nil
		}
		return StepResult{Choice: &ChoiceRequest{
			Kind:     ChoiceYesNo,
			Prompt:   prompt,
			MinCount: 1,
			MaxCount: 1,
			Options:  []int{0, 1},
		}}, nil
	}
}

// ---- pick actions ---------------------------------------------------------

// returnPicked returns each pick to the supply and records how many and the
// highest value returned in Vars for later steps of the same effect.
func returnPicked(from ZoneKind) pickAct {
	return func(ctx *EffectContext, picks []cards.CardID) (StepResult, error) {
		for _, id := range picks {
			if err := ctx.Engine.ReturnCard(ctx.Game, ctx.Executor, id, from); err != nil {
				return StepResult{}, err
			}
			ctx.Vars["count"]++
			if a := int(ctx.cardAge(id)); a > ctx.Vars["value"] {
				ctx.Vars["value"] = a
			}
			ctx.Vars["values"] |= 1 << ctx.cardAge(id)
		}
		return StepResult{}, nil
	}
}

func meldPicked(from ZoneKind) pickAct {
	return func(ctx *EffectContext, picks []cards.CardID) (StepResult, error) {
		for _, id := range picks {
			if err := ctx.Engine.MeldCard(ctx.Game, ctx.Executor, id, from); err != nil {
				return StepResult{}, err
			}
			ctx.Vars["count"]++
		}
		return StepResult{}, nil
	}
}

func scorePicked(from ZoneKind) pickAct {
	return func(ctx *EffectContext, picks []cards.CardID) (StepResult, error) {
		for _, id := range picks {
			if err := ctx.Engine.ScoreCard(ctx.Game, ctx.Executor, id, from); err != nil {
				return StepResult{}, err
			}
			ctx.Vars["count"]++
		}
		return StepResult{}, nil
	}
}

func tuckPicked(from ZoneKind) pickAct {
	return func(ctx *EffectContext, picks []cards.CardID) (StepResult, error) {
		for _, id := range picks {
			if err := ctx.Engine.TuckCard(ctx.Game, ctx.Executor, id, from); err != nil {
				return StepResult{}, err
			}
			c := ctx.Engine.card(id)
			ctx.Vars["count"]++
			ctx.Vars["values"] |= 1 << c.Age
			ctx.Vars["colors"] |= 1 << c.Color
		}
		return StepResult{}, nil
	}
}

func transferPicked(from, to func(ctx *EffectContext) ZoneRef) pickAct {
	return func(ctx *EffectContext, picks []cards.CardID) (StepResult, error) {
		for _, id := range picks {
			if err := ctx.Engine.TransferCard(ctx.Game, id, from(ctx), to(ctx)); err != nil {
				return StepResult{}, err
			}
			ctx.Vars["count"]++
		}
		return StepResult{}, nil
	}
}

// ---- draw step builders ---------------------------------------------------

func drawN(age cards.Age, n int) StepFunc {
	return func(ctx *EffectContext) (StepResult, error) {
		for i := 0; i < n; i++ {
			if _, ok, err := ctx.draw(age); err != nil || !ok {
				return StepResult{}, err
			}
		}
		return StepResult{}, nil
	}
}

func drawAnd(age cards.Age, n int, place func(ctx *EffectContext, id cards.CardID) error) StepFunc {
	return func(ctx *EffectContext) (StepResult, error) {
		for i := 0; i < n; i++ {
			id, ok, err := ctx.draw(age)
			if err != nil || !ok {
				return StepResult{}, err
			}
			if err := place(ctx, id); err != nil {
				return StepResult{}, err
			}
		}
		return StepResult{}, nil
	}
}

func placeScore(ctx *EffectContext, id cards.CardID) error {
	return ctx.Engine.ScoreCard(ctx.Game, ctx.Executor, id, ZoneHand)
}

func placeMeld(ctx *EffectContext, id cards.CardID) error {
	return ctx.Engine.MeldCard(ctx.Game, ctx.Executor, id, ZoneHand)
}

func placeTuck(ctx *EffectContext, id cards.CardID) error {
	return ctx.Engine.TuckCard(ctx.Game, ctx.Executor, id, ZoneHand)
}

func drawScore(age cards.Age, n int) StepFunc { return drawAnd(age, n, placeScore) }
func drawMeld(age cards.Age, n int) StepFunc  { return drawAnd(age, n, placeMeld) }
func drawTuck(age cards.Age, n int) StepFunc  { return drawAnd(age, n, placeTuck) }

// drawDyn draws one card whose value is computed from game state, placing
// it with place when non-nil.
func drawDyn(agef func(ctx *EffectContext) cards.Age, place func(ctx *EffectContext, id cards.CardID) error) StepFunc {
	return func(ctx *EffectContext) (StepResult, error) {
		age := agef(ctx)
		if age < 1 {
			age = 1
		}
		id, ok, err := ctx.draw(age)
		if err != nil || !ok {
			return StepResult{}, err
		}
		if place != nil {
			if err := place(ctx, id); err != nil {
				return StepResult{}, err
			}
		}
		return StepResult{}, nil
	}
}

// drawPerIcon draws (and optionally places) one card per `per` visible
// copies of icon on the executor's board.
func drawPerIcon(icon cards.Icon, per int, age cards.Age, place func(ctx *EffectContext, id cards.CardID) error) StepFunc {
	return func(ctx *EffectContext) (StepResult, error) {
		n := ctx.Engine.CountIcons(ctx.Game, ctx.Executor, icon) / per
		for i := 0; i < n; i++ {
			id, ok, err := ctx.draw(age)
			if err != nil || !ok {
				return StepResult{}, err
			}
			if place != nil {
				if err := place(ctx, id); err != nil {
					return StepResult{}, err
				}
			}
		}
		return StepResult{}, nil
	}
}

// ---- splay step builders --------------------------------------------------

// maySplay offers to splay one of the listed colors in the given direction.
// Colors whose stack has fewer than two cards or is already splayed that
// way are not offered. A successful splay records the color in Vars.
func maySplay(to SplayDirection, colors ...cards.Color) StepFunc {
	return maySplayFrom("", to, colors...)
}

// maySplayFrom is maySplay restricted to colors currently splayed `from`.
func maySplayFrom(from, to SplayDirection, colors ...cards.Color) StepFunc {
	return func(ctx *EffectContext) (StepResult, error) {
		if ctx.Answer != nil {
			if len(ctx.Answer) == 0 {
				return StepResult{}, nil
			}
			col := cards.Color(ctx.Answer[0])
			if err := ctx.Engine.SplayColor(ctx.Game, ctx.Executor, col, to); err != nil {
				return StepResult{}, err
			}
			ctx.Vars["splayed"] = 1
			ctx.Vars["splaycolor"] = int(col)
			return StepResult{}, nil
		}
		opts := []int{}
		for _, col := range colors {
			st := &ctx.board().Stacks[col]
			if len(st.Cards) < 2 || st.Splay == to {
				continue
			}
			if from != "" && st.Splay != from {
				continue
			}
			opts = append(opts, int(col))
		}
		if len(opts) == 0 {
			return StepResult{}, nil
		}
		return StepResult{Choice: &ChoiceRequest{
			Kind:     ChoiceSplay,
			Prompt:   fmt.Sprintf("You may splay a color %s", to),
			MinCount: 0,
			MaxCount: 1,
			Options:  opts,
		}}, nil
	}
}

var allColors = []cards.Color{cards.Red, cards.Yellow, cards.Green, cards.Blue, cards.Purple}

// ---- conditional wrappers -------------------------------------------------

// ifCond runs inner only when cond holds on first entry; once inner has
// suspended, re-entry goes straight back to it.
func ifCond(cond func(ctx *EffectContext) bool, inner StepFunc) StepFunc {
	return func(ctx *EffectContext) (StepResult, error) {
		if ctx.Answer == nil && !cond(ctx) {
			return StepResult{}, nil
		}
		return inner(ctx)
	}
}

func ifVarAtLeast(key string, n int, inner StepFunc) StepFunc {
	return ifCond(func(ctx *EffectContext) bool { return ctx.Vars[key] >= n }, inner)
}

func ifSplayed(color cards.Color, dir SplayDirection, inner StepFunc) StepFunc {
	return ifCond(func(ctx *EffectContext) bool {
		st := &ctx.board().Stacks[color]
		return len(st.Cards) >= 2 && st.Splay == dir
	}, inner)
}

// ifMovedSince gates on whether any event of the given types was logged
// since the current card's activation. Demand follow-ups ("if any card was
// transferred, …") read the event log because Vars do not cross executors.
func ifMovedSince(inner StepFunc, types ...EventType) StepFunc {
	return ifCond(func(ctx *EffectContext) bool {
		return movedSinceActivation(ctx.Game, ctx.Card.ID, types...) > 0
	}, inner)
}

func movedSinceActivation(g *GameData, card cards.CardID, types ...EventType) int {
	n := 0
	for i := len(g.EventLog) - 1; i >= 0; i-- {
		ev := g.EventLog[i]
		if ev.Type == EventDogmaActivated && ev.Card == card {
			break
		}
		for _, t := range types {
			if ev.Type == t {
				n++
			}
		}
	}
	return n
}

// ---- inline execution -----------------------------------------------------

// runInlineEffects executes a card's non-demand effects for one player as
// part of another card's resolution. Choices raised inside are resolved
// deterministically (optional choices declined, forced choices take the
// first legal options) so the outer activation keeps a single suspension
// point.
func (e *Engine) runInlineEffects(g *GameData, target cards.CardID, executor PlayerID) error {
	card := e.card(target)
	for _, eff := range e.effects.effectsFor(target) {
		if eff.Demand {
			continue
		}
		vars := map[string]int{}
		step := 0
		var answer []int
		for step < len(eff.Steps) {
			ctx := &EffectContext{
				Engine:    e,
				Game:      g,
				Card:      card,
				Activator: executor,
				Executor:  executor,
				Answer:    answer,
				Vars:      vars,
			}
			answer = nil
			res, err := eff.Steps[step](ctx)
			if err != nil {
				return err
			}
			if g.Phase.State == GameOver {
				return nil
			}
			if res.Choice != nil {
				answer = autoAnswer(res.Choice)
				continue
			}
			if res.Halt {
				break
			}
			if res.Repeat {
				step = 0
				continue
			}
			step++
		}
	}
	return nil
}

func autoAnswer(req *ChoiceRequest) []int {
	if req.MinCount <= 0 {
		return []int{}
	}
	n := req.MinCount
	if n > len(req.Options) {
		n = len(req.Options)
	}
	return append([]int{}, req.Options[:n]...)
}

// executeInline is the step form of runInlineEffects, applied to the last
// card recorded in Vars by a preceding draw-and-meld step.
func executeInline(varKey string) StepFunc {
	return func(ctx *EffectContext) (StepResult, error) {
		id := cards.CardID(ctx.Vars[varKey])
		if id == 0 {
			return StepResult{}, nil
		}
		return StepResult{}, ctx.Engine.runInlineEffects(ctx.Game, id, ctx.Executor)
	}
}

// drawMeldRemember is drawMeld for a single card that records the melded
// id for a later executeInline or score-beneath step.
func drawMeldRemember(age cards.Age, varKey string) StepFunc {
	return func(ctx *EffectContext) (StepResult, error) {
		id, ok, err := ctx.draw(age)
		if err != nil || !ok {
			return StepResult{}, err
		}
		if err := placeMeld(ctx, id); err != nil {
			return StepResult{}, err
		}
		ctx.Vars[varKey] = int(id)
		return StepResult{}, nil
	}
}
