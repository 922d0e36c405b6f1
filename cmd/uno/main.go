// Command uno is a terminal table for the engine: one human seat against
// naive bots. It is host glue only; every rule lives in the game package.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	jsoniter "github.com/json-iterator/go"
	"github.com/rs/zerolog"

	"github.com/feel-easy/uno-engine/card"
	"github.com/feel-easy/uno-engine/card/color"
	"github.com/feel-easy/uno-engine/game"
	"github.com/feel-easy/uno-engine/gamelog"
	"github.com/feel-easy/uno-engine/player"
	"github.com/feel-easy/uno-engine/ui"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func main() {
	name := flag.String("name", "you", "name of the human seat")
	bots := flag.Int("bots", 2, "number of bot opponents")
	stack := flag.Bool("stack", false, "enable draw-two / wild-draw-four stacking")
	configPath := flag.String("config", "", "path to a JSON game option file")
	verbose := flag.Bool("verbose", false, "log a structured play-by-play to stderr")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if *stack {
		cfg.StackCards = true
	}

	specs := []game.PlayerSpec{game.Named(*name)}
	for i := 1; i <= *bots; i++ {
		specs = append(specs, game.Named(fmt.Sprintf("bot-%d", i)))
	}

	g := game.New(specs, cfg)
	ui.Announce(g.Events())
	if *verbose {
		log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
		gamelog.Register(g, log)
	}
	if err := g.Start(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	rl, err := readline.New("uno> ")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer rl.Close()

	ui.Printfln(
		"WELCOME TO %s%s%s",
		color.Red.Paint("U"),
		color.Yellow.Paint("N"),
		color.Blue.Paint("O"),
	)
	if err := run(g, rl, *name); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func loadConfig(path string) (game.Config, error) {
	if path == "" {
		return game.Config{}, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return game.Config{}, err
	}
	var options map[string]interface{}
	if err := json.Unmarshal(data, &options); err != nil {
		return game.Config{}, fmt.Errorf("bad config file %s: %w", path, err)
	}
	return game.ConfigFromMap(options)
}

func run(g *game.Game, rl *readline.Instance, humanName string) error {
	strategy := player.Naive{}
	for !g.Finished() {
		current := g.CurrentPlayer()
		if current.Name() != humanName {
			botTurn(g, strategy, current)
			continue
		}
		if err := humanTurn(g, rl, current); err != nil {
			return err
		}
	}
	ui.Printfln("%s wins!", g.Winner().Name())
	return nil
}

func botTurn(g *game.Game, strategy player.Naive, bot game.Player) {
	pick := strategy.Choose(g, bot)
	if pick == nil {
		g.Draw(bot, 1)
		return
	}
	if !g.Play(bot, pick) {
		// nothing valid after all; absorb whatever is pending
		g.Draw(bot, 1)
	}
}

func humanTurn(g *game.Game, rl *readline.Instance, human game.Player) error {
	top := g.DiscardPile().TopCard(false)
	ui.Printfln("Top of the pile: %s", top)
	if g.Stacking() {
		ui.Printfln("A draw stack of %d is pending! Counter it or draw.", g.StackAmount())
	}
	menu, options := ui.CardOptions(human.Hand().Cards())
	ui.Println(menu)
	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt || err == io.EOF {
			return fmt.Errorf("game aborted")
		}
		if err != nil {
			return err
		}
		input := strings.ToUpper(strings.TrimSpace(line))
		if input == "D" {
			g.Draw(human, 1)
			return nil
		}
		pick, ok := options[input]
		if !ok {
			ui.Printfln("No card assigned to '%s' (enter a letter, or 'd' to draw)", input)
			continue
		}
		if pick.IsWild() {
			if err := pickWildColor(rl, pick); err != nil {
				return err
			}
		}
		if !g.Play(human, pick) {
			ui.Printfln("%s cannot be played on %s", pick, top)
			continue
		}
		return nil
	}
}

func pickWildColor(rl *readline.Instance, wild *card.Card) error {
	ui.Printfln(
		"Pick a color: %s, %s, %s or %s",
		color.Red, color.Yellow, color.Green, color.Blue,
	)
	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt || err == io.EOF {
			return fmt.Errorf("game aborted")
		}
		if err != nil {
			return err
		}
		chosen, err := color.ByName(strings.TrimSpace(line))
		if err != nil || chosen.IsBlack() {
			ui.Printfln("Unknown color '%s'", strings.TrimSpace(line))
			continue
		}
		return wild.PickColor(chosen)
	}
}
