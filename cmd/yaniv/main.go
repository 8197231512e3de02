// Command yaniv runs a game from the terminal. It reads commands from stdin,
// forwards them to a game session and prints the resulting state. The driver
// makes no decisions itself; both seats are driven by whoever is typing.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/ysetbon/yaniv/engine"
	"github.com/ysetbon/yaniv/internal/config"
	"github.com/ysetbon/yaniv/internal/game"
)

func main() {
	cfg := config.Load()

	logger := logrus.New()
	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		logger.SetLevel(level)
	}

	sess := game.NewSession(cfg.PlayerNames, cfg.Seed, cfg.Rules, logger)
	sess.OnRoundEnd = func(_ uuid.UUID, assaf bool, _ map[uuid.UUID]int) {
		if assaf {
			fmt.Println("Assaf!")
		}
		fmt.Println("--- round over ---")
	}

	fmt.Printf("Yaniv to %d. Type 'help' for commands.\n\n", cfg.Rules.TargetScore)
	printState(sess)

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "quit" || line == "exit" {
			return
		}
		if err := dispatch(sess, line); err != nil {
			fmt.Println("error:", err)
			continue
		}
		if sess.State().GamePhase == engine.PhaseGameEnd {
			printState(sess)
			state := sess.State()
			fmt.Printf("%s wins.\n", state.Players[state.Winner].Name)
			return
		}
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintln(os.Stderr, "read:", err)
		os.Exit(1)
	}
}

// dispatch executes one line of input against the session. Commands always
// act for the player whose turn it is.
func dispatch(sess *game.Session, line string) error {
	state := sess.State()
	player := sess.PlayerIDs()[state.CurrentPlayer]

	verb, rest, _ := strings.Cut(line, " ")
	switch verb {
	case "help":
		printHelp()
	case "state":
		printState(sess)
	case "actions":
		actions, err := sess.LegalActions(player)
		if err != nil {
			return err
		}
		for _, a := range actions {
			if len(a.Cards) > 0 {
				fmt.Printf("  %s %s\n", a.Type, cardList(a.Cards))
			} else {
				fmt.Printf("  %s\n", a.Type)
			}
		}
	case "discard":
		cards, err := engine.ParseCards(rest)
		if err != nil {
			return err
		}
		ok, err := sess.Discard(player, cards)
		if err != nil {
			return err
		}
		if !ok {
			fmt.Println("that is not a legal discard")
			return nil
		}
		printState(sess)
	case "draw":
		var card engine.Card
		var err error
		switch strings.TrimSpace(rest) {
		case "deck":
			card, err = sess.DrawFromDeck(player)
		case "pile":
			card, err = sess.DrawFromDiscard(player)
		default:
			return fmt.Errorf("draw deck or draw pile")
		}
		if err != nil {
			return err
		}
		fmt.Printf("drew %s\n", card)
		printState(sess)
	case "yaniv":
		res, err := sess.CallYaniv(player)
		if err != nil {
			return err
		}
		if !res.Success {
			fmt.Println("hand value is too high to call Yaniv")
			return nil
		}
		if res.Assaf {
			fmt.Println("Assaf! The call backfired.")
		}
		for seat, delta := range res.Scores {
			fmt.Printf("  %s: +%d\n", sess.State().Players[seat].Name, delta)
		}
		printState(sess)
	default:
		return fmt.Errorf("unknown command %q, try 'help'", verb)
	}
	return nil
}

func printState(sess *game.Session) {
	state := sess.State()
	fmt.Printf("round %d, %s to %s\n", state.Round,
		state.Players[state.CurrentPlayer].Name, state.TurnPhase)
	for _, p := range state.Players {
		marker := " "
		if p.ID == state.CurrentPlayer {
			marker = "*"
		}
		fmt.Printf("%s %-10s score %3d  hand (%2d) %s\n",
			marker, p.Name, p.Score, p.HandValue, cardList(p.Hand))
	}
	top := "-"
	if len(state.DiscardPile) > 0 {
		top = state.DiscardPile[len(state.DiscardPile)-1].String()
	}
	fmt.Printf("  deck %d, discard top %s\n", state.DeckSize, top)
}

func cardList(cards []engine.Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}

func printHelp() {
	fmt.Print(`commands (always act for the player to move):
  state                 print the full game state
  actions               list legal actions
  discard <cards...>    e.g. discard AS 2S 3S
  draw deck             draw the top card of the deck
  draw pile             take the opponent's newest discarded card
  yaniv                 declare Yaniv
  quit                  leave the game
`)
}
