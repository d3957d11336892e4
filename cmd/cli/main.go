package main

import (
	"fmt"
	"io/ioutil"
	"os"
	"strconv"
	"strings"

	"github.com/chzyer/readline"

	innovation "github.com/innovation-engine/innovation"
	"github.com/innovation-engine/innovation/cards"
)

// A hot-seat console client. One session at a time; actions are always
// submitted for the player whose turn it is, answers for the player the
// pending choice names.
type repl struct {
	engine *innovation.Engine
	sess   *innovation.Session
}

func main() {
	engine, err := innovation.NewEngine(cards.BaseSet(), innovation.BaseRegistry())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	rl, err := readline.New("innovation> ")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer rl.Close()

	r := &repl{engine: engine}
	fmt.Println("type 'help' for commands")

	for {
		line, err := rl.Readline()
		if err != nil {
			return
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		if fields[0] == "quit" || fields[0] == "exit" {
			return
		}
		if err := r.dispatch(fields[0], fields[1:]); err != nil {
			fmt.Println("error:", err)
		}
	}
}

func (r *repl) dispatch(cmd string, args []string) error {
	switch cmd {
	case "help":
		r.help()
		return nil
	case "new":
		return r.newGame(args)
	case "load":
		return r.loadGame(args)
	}

	if r.sess == nil {
		return fmt.Errorf("no game in progress; use 'new [seed]'")
	}

	switch cmd {
	case "draw":
		return r.act(innovation.Action{Type: innovation.ActionDraw})
	case "meld":
		id, err := cardArg(args)
		if err != nil {
			return err
		}
		return r.act(innovation.Action{Type: innovation.ActionMeld, Card: id})
	case "dogma":
		id, err := cardArg(args)
		if err != nil {
			return err
		}
		return r.act(innovation.Action{Type: innovation.ActionDogma, Card: id})
	case "achieve":
		if len(args) != 1 {
			return fmt.Errorf("usage: achieve <age>")
		}
		age, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("bad age %q", args[0])
		}
		return r.act(innovation.Action{Type: innovation.ActionAchieve, Age: cards.Age(age)})
	case "answer":
		return r.answer(args)
	case "legal":
		r.legal()
		return nil
	case "board":
		r.board()
		return nil
	case "save":
		return r.saveGame(args)
	}
	return fmt.Errorf("unknown command %q", cmd)
}

func (r *repl) help() {
	fmt.Print(`commands:
  new [seed]        start a game (default seed 1)
  load <file>       restore a saved game
  save <file>       write the current game to a file
  draw              take a draw action
  meld <card>       meld a card from hand
  dogma <card>      activate a top card's dogma
  achieve <age>     claim an age achievement
  answer [picks...] answer the pending choice
  legal             list the current player's legal actions
  board             show the full table
  quit              leave
`)
}

func (r *repl) newGame(args []string) error {
	seed := uint32(1)
	if len(args) > 0 {
		n, err := strconv.ParseUint(args[0], 10, 32)
		if err != nil {
			return fmt.Errorf("bad seed %q", args[0])
		}
		seed = uint32(n)
	}
	g, err := r.engine.NewGame(seed)
	if err != nil {
		return err
	}
	r.sess = innovation.NewSession(r.engine, g)
	fmt.Printf("game %s started (seed %d)\n", g.GameID, seed)
	r.status(r.sess.Summary())
	return nil
}

func (r *repl) loadGame(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: load <file>")
	}
	raw, err := ioutil.ReadFile(args[0])
	if err != nil {
		return err
	}
	g, err := r.engine.DeserializeGame(raw)
	if err != nil {
		return err
	}
	r.sess = innovation.NewSession(r.engine, g)
	fmt.Printf("game %s loaded\n", g.GameID)
	r.status(r.sess.Summary())
	return nil
}

func (r *repl) saveGame(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: save <file>")
	}
	raw, err := r.sess.Save()
	if err != nil {
		return err
	}
	if err := ioutil.WriteFile(args[0], raw, 0644); err != nil {
		return err
	}
	fmt.Println("saved to", args[0])
	return nil
}

func (r *repl) act(act innovation.Action) error {
	act.Player = r.sess.Snapshot().Phase.Player
	summary, err := r.sess.Act(act)
	if err != nil {
		return err
	}
	r.status(summary)
	return nil
}

func (r *repl) answer(args []string) error {
	g := r.sess.Snapshot()
	if g.PendingChoice == nil {
		return fmt.Errorf("nothing to answer")
	}
	picks := []int{}
	for _, a := range args {
		n, err := strconv.Atoi(a)
		if err != nil {
			return fmt.Errorf("bad pick %q", a)
		}
		picks = append(picks, n)
	}
	summary, err := r.sess.Answer(innovation.ChoiceAnswer{
		Player: g.PendingChoice.Player,
		Picks:  picks,
	})
	if err != nil {
		return err
	}
	r.status(summary)
	return nil
}

func (r *repl) legal() {
	g := r.sess.Snapshot()
	actions := r.sess.LegalActions(g.Phase.Player)
	if len(actions) == 0 {
		fmt.Println("no legal actions")
		return
	}
	for _, a := range actions {
		switch a.Type {
		case innovation.ActionDraw:
			fmt.Println("  draw")
		case innovation.ActionMeld:
			fmt.Printf("  meld %s\n", r.cardLabel(a.Card))
		case innovation.ActionDogma:
			fmt.Printf("  dogma %s\n", r.cardLabel(a.Card))
		case innovation.ActionAchieve:
			fmt.Printf("  achieve %d\n", a.Age)
		}
	}
}

func (r *repl) board() {
	g := r.sess.Snapshot()
	for p := innovation.Player0; p < innovation.NumPlayers; p++ {
		b := g.Player(p)
		marker := " "
		if p == g.Phase.Player {
			marker = "*"
		}
		fmt.Printf("%s player %d  score %d  achievements %d\n",
			marker, p, r.engine.ScoreTotal(g, p), b.AchievementCount())
		for i := range b.Stacks {
			st := &b.Stacks[i]
			if len(st.Cards) == 0 {
				continue
			}
			labels := make([]string, len(st.Cards))
			for j, id := range st.Cards {
				labels[j] = r.cardLabel(id)
			}
			splay := ""
			if st.Splay != innovation.SplayNone {
				splay = fmt.Sprintf(" (splayed %s)", st.Splay)
			}
			fmt.Printf("    %s%s: %s\n", st.Color, splay, strings.Join(labels, ", "))
		}
		fmt.Printf("    hand:")
		for _, id := range b.Hand {
			fmt.Printf(" [%s]", r.cardLabel(id))
		}
		fmt.Println()
	}
	fmt.Println("unclaimed achievements:", len(g.Shared.Achievements))
	r.status(r.sess.Summary())
}

func (r *repl) status(s innovation.GameSummary) {
	switch s.State {
	case innovation.GameOver:
		if s.Winner != nil {
			fmt.Printf("game over: player %d wins by %s\n", *s.Winner, s.Condition)
		} else {
			fmt.Printf("game over: draw by %s\n", s.Condition)
		}
	case innovation.AwaitingChoice:
		c := s.PendingChoice
		fmt.Printf("player %d must choose: %s\n", c.Player, c.Prompt)
		if c.Kind == innovation.ChoiceCards {
			for _, opt := range c.Options {
				fmt.Printf("  %d: %s\n", opt, r.cardLabel(cards.CardID(opt)))
			}
		} else {
			fmt.Printf("  options: %v\n", c.Options)
		}
		fmt.Printf("  pick %d to %d with 'answer'\n", c.MinCount, c.MaxCount)
	default:
		fmt.Printf("turn %d, player %d to act (%d remaining)\n",
			s.Turn, s.Player, s.ActionsRemaining)
	}
}

func (r *repl) cardLabel(id cards.CardID) string {
	c, ok := r.engine.Cards().Card(id)
	if !ok {
		return fmt.Sprintf("card %d", id)
	}
	return fmt.Sprintf("%d %s a%d %s", c.ID, c.Title, c.Age, c.Color)
}

func cardArg(args []string) (cards.CardID, error) {
	if len(args) != 1 {
		return 0, fmt.Errorf("expected a card id")
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, fmt.Errorf("bad card id %q", args[0])
	}
	return cards.CardID(n), nil
}
