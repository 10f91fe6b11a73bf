// Command pokercore is a thin CLI demo: load a variant file, seat two
// players, deal one hand with a fixed seed, and drive it to completion
// against a trivial random-legal bot, printing the result. It exists to
// exercise the engine end to end; it is not a platform layer (no
// accounts, lobby, or network transport).
package main

import (
	"fmt"
	"math/rand"
	"os"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/lox/generic-poker/internal/deck"
	"github.com/lox/generic-poker/internal/evaluator"
	"github.com/lox/generic-poker/internal/interpreter"
	"github.com/lox/generic-poker/internal/registryconfig"
	"github.com/lox/generic-poker/internal/rules"
	"github.com/lox/generic-poker/internal/table"
)

var version = "dev"

type CLI struct {
	Version kong.VersionFlag `short:"v" help:"Show version"`
	Deal    DealCmd          `cmd:"" help:"Deal one hand of a variant to completion against a random bot"`
}

// DealCmd loads a variant and eval-type directory, seats two stacks, and
// plays a single hand.
type DealCmd struct {
	Variant        string `arg:"" help:"Path to a variant JSON file" default:"testdata/variants/holdem_heads_up.json"`
	EvalDir        string `help:"Directory of evaluation-type JSON files, overrides the registry config's config_dir" default:""`
	RegistryConfig string `help:"Path to the registry bootstrap HCL file" default:"registry.hcl"`
	Stack          int    `help:"Starting stack for each seat" default:"200"`
	SmallBlind     int    `help:"Small blind amount" default:"1"`
	BigBlind       int    `help:"Big blind amount" default:"2"`
	Seed           int64  `help:"Seed for the random bot's choices (the shuffle is seeded from the hand id)" default:"1"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("pokercore"),
		kong.Description("Demo CLI for the generic-poker engine core"),
		kong.UsageOnError(),
		kong.Vars{"version": version},
	)
	ctx.FatalIfErrorf(ctx.Run())
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7D56F4"))
	infoStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#96CEB4"))
	winStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#04B575"))
	errorStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF5F5F"))
)

func (c *DealCmd) Run() error {
	rc, err := registryconfig.Load(c.RegistryConfig)
	if err != nil {
		return fmt.Errorf("loading registry config: %w", err)
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{Level: parseLogLevel(rc.Registry.LogLevel)})

	evalDir := c.EvalDir
	if evalDir == "" {
		evalDir = rc.Registry.ConfigDir
		if _, statErr := os.Stat(evalDir); statErr != nil {
			evalDir = "testdata/evaluations"
		}
	}

	knownEvalTypes, err := loadKnownEvalTypes(evalDir)
	if err != nil {
		return err
	}

	r, err := rules.LoadVariant(c.Variant, knownEvalTypes)
	if err != nil {
		return fmt.Errorf("loading variant: %w", err)
	}
	fmt.Println(headerStyle.Render(r.GameName))

	registry := evaluator.NewRegistry(evalDir, logger.WithPrefix("registry"))
	defer registry.Close()

	t := table.New()
	t.Sit("alice", c.Stack)
	t.Sit("bob", c.Stack)
	t.SetButton(0)

	deckOpts := deckOptionsFor(r.Deck)
	g := interpreter.New(r, t, registry, deckOpts, logger.WithPrefix("interpreter"))
	g.SetStakes(c.SmallBlind, c.BigBlind)
	if err := g.StartHand("demo-1"); err != nil {
		return fmt.Errorf("starting hand: %w", err)
	}

	rng := rand.New(rand.NewSource(c.Seed))
	for g.Mode() != interpreter.ModeComplete {
		playerID := g.CurrentPlayer()
		if playerID == "" {
			return fmt.Errorf("engine stalled: no current player but hand not complete")
		}
		legal := g.ValidActions(playerID)
		if len(legal) == 0 {
			return fmt.Errorf("engine stalled: no legal actions for %s", playerID)
		}
		choice := legal[rng.Intn(len(legal))]
		payload := interpreter.Payload{Amount: choice.Min}
		result, err := g.Act(playerID, choice.Action, payload)
		if err != nil {
			return fmt.Errorf("acting for %s: %w", playerID, err)
		}
		if !result.OK {
			logger.Warn("action rejected", "player", playerID, "action", choice.Action, "reason", result.Reason)
			continue
		}
		fmt.Println(infoStyle.Render(fmt.Sprintf("%s: %s", playerID, choice.Action)))
	}

	results, err := g.HandResults()
	if err != nil {
		fmt.Println(errorStyle.Render(err.Error()))
		return nil
	}
	fmt.Println(headerStyle.Render(fmt.Sprintf("Total pot: %d", results.TotalPot)))
	for _, pot := range results.Pots {
		fmt.Println(winStyle.Render(fmt.Sprintf("%s pot %d -> %v", pot.PotType, pot.Amount, pot.Winners)))
	}
	return nil
}

func loadKnownEvalTypes(dir string) (map[string]bool, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading evaluation-type directory: %w", err)
	}
	known := make(map[string]bool, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if len(name) > 5 && name[len(name)-5:] == ".json" {
			known[name[:len(name)-5]] = true
		}
	}
	return known, nil
}

func parseLogLevel(level string) log.Level {
	switch level {
	case "debug":
		return log.DebugLevel
	case "warn":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}

func deckOptionsFor(spec rules.DeckSpec) deck.Options {
	switch spec.Type {
	case "short36":
		return deck.Options{Spec: deck.Short36}
	case "short20":
		return deck.Options{Spec: deck.Short20}
	case "40nocard":
		return deck.Options{Spec: deck.NoEightTen}
	default:
		return deck.Options{Spec: deck.Standard52}
	}
}
