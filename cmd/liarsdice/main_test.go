package main

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
	"github.com/lox/liarsdice/internal/bot"
	"github.com/lox/liarsdice/internal/config"
	"github.com/lox/liarsdice/internal/randutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "liarsdice.hcl")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func parse(t *testing.T, args ...string) (*CLI, *kong.Context) {
	t.Helper()
	var cli CLI
	parser, err := kong.New(&cli, kong.Name("liarsdice"), kong.Vars{"version": version}, kong.Exit(func(int) {}))
	require.NoError(t, err)
	ctx, err := parser.Parse(args)
	require.NoError(t, err)
	return &cli, ctx
}

func TestParseCommands(t *testing.T) {
	cli, ctx := parse(t, "simulate", "-n", "50", "--bots", "random,cautious", "--seed", "7", "-o", "out.json")
	assert.Equal(t, "simulate", ctx.Command())
	assert.Equal(t, 50, cli.Simulate.Games)
	assert.Equal(t, []string{"random", "cautious"}, cli.Simulate.Bots)
	assert.Equal(t, "out.json", cli.Simulate.Out)
	assert.Equal(t, int64(7), cli.Seed)

	cli, ctx = parse(t, "watch", "--headless", "--human-as", "random")
	assert.Equal(t, "watch", ctx.Command())
	assert.True(t, cli.Watch.Headless)
	assert.Equal(t, "random", cli.Watch.HumanAs)

	cli, ctx = parse(t)
	assert.Equal(t, "play", ctx.Command())
	assert.Equal(t, "liarsdice.hcl", cli.Config)
}

func TestGlobalsLoadAppliesOverrides(t *testing.T) {
	path := writeConfig(t, `
seed            = 3
dice_per_player = 4

player "You" {
  kind = "human"
}
player "Rand" {
  kind = "random"
}
`)

	g := &Globals{Config: path, LogLevel: "debug", Dice: 2}
	cfg, err := g.load()
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, int64(3), cfg.Seed)
	assert.Equal(t, 2, cfg.DicePerPlayer)

	g.LogLevel = "chatty"
	_, err = g.load()
	assert.ErrorContains(t, err, "invalid config")
}

func TestGlobalsLoadMissingFileUsesDefaults(t *testing.T) {
	g := &Globals{Config: filepath.Join(t.TempDir(), "absent.hcl")}
	cfg, err := g.load()
	require.NoError(t, err)
	assert.Equal(t, config.Default().Names(), cfg.Names())
}

func TestBuildAgents(t *testing.T) {
	cfg := config.Default()
	logger := log.New(io.Discard)
	src := randutil.New(1)

	agents, err := buildAgents(cfg, src, logger, "")
	require.NoError(t, err)
	require.Len(t, agents, len(cfg.Players))
	assert.Nil(t, agents[0], "human seat has no agent")
	assert.IsType(t, &bot.CautiousBot{}, agents[1])
	assert.IsType(t, &bot.RandomBot{}, agents[2])

	agents, err = buildAgents(cfg, src, logger, bot.KindRandom)
	require.NoError(t, err)
	assert.IsType(t, &bot.RandomBot{}, agents[0])
}

func TestNewGameFromConfig(t *testing.T) {
	cfg := config.Default()
	cfg.DicePerPlayer = 3

	src, seed := seededSource(&config.Config{Seed: 9})
	assert.Equal(t, int64(9), seed)

	g, err := newGame(cfg, src)
	require.NoError(t, err)
	assert.Equal(t, len(cfg.Players), g.PlayerCount())
	assert.Equal(t, 3*len(cfg.Players), g.TotalDice())
	assert.Equal(t, "You", g.Player(0).Name)
}

func TestSimulateKinds(t *testing.T) {
	cfg := config.Default()

	kinds, err := (&SimulateCmd{}).kinds(cfg)
	require.NoError(t, err)
	assert.Equal(t, []bot.Kind{bot.KindCautious, bot.KindCautious, bot.KindRandom, bot.KindCautious}, kinds)

	kinds, err = (&SimulateCmd{Bots: []string{"Random", "cautious"}}).kinds(cfg)
	require.NoError(t, err)
	assert.Equal(t, []bot.Kind{bot.KindRandom, bot.KindCautious}, kinds)

	_, err = (&SimulateCmd{Bots: []string{"oracle"}}).kinds(cfg)
	assert.Error(t, err)
}

func TestSimulateWritesSummary(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "summary.json")
	cfgPath := writeConfig(t, `
log_level = "error"
seed      = 11

player "A" {
  kind = "cautious"
}
player "B" {
  kind = "random"
}
`)

	cmd := &SimulateCmd{Games: 10, Out: out}
	require.NoError(t, cmd.Run(&Globals{Config: cfgPath}))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"games": 10`)
	assert.Contains(t, string(data), `"seed": 11`)
}
