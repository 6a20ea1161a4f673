// Command peppa runs a full table of automated players and prints the score
// sheet. It exists to exercise the engine end to end from the shell; the
// human seat is simply given the baseline strategy.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"

	"peppa/internal/app"
	"peppa/internal/bot"
	"peppa/internal/config"
	"peppa/internal/domain"
)

func main() {
	var (
		configPath = flag.String("config", "", "path to a JSON game config")
		name       = flag.String("name", "", "seat 0 display name")
		aiType     = flag.String("ai", "", "bot strategy: HAL, GEM, GPT52 or MIXED")
		rounds     = flag.Int("rounds", 0, "rounds to play: 4, 8 or 12")
		maxScore   = flag.Int("score", 0, "score that ends the game early: 50 or 100")
		sequence   = flag.String("sequence", "", "pass cycle: DSC- or DS-C")
		seed       = flag.Int64("seed", 0, "rng seed, 0 for time-based")
		fast       = flag.Bool("fast", false, "drop all humanizing delays")
		verbose    = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if *verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	if *configPath != "" {
		if err := config.Load(*configPath); err != nil {
			log.WithError(err).Fatal("loading config")
		}
	}
	cfg := config.Get()
	if *name != "" {
		cfg.PlayerName = *name
	}
	if *aiType != "" {
		cfg.AIType = config.AIChoice(*aiType)
	}
	if *rounds != 0 {
		cfg.MaxRounds = *rounds
	}
	if *maxScore != 0 {
		cfg.MaxScore = *maxScore
	}
	if *sequence != "" {
		cfg.PassSequence = config.PassSequence(*sequence)
	}
	cfg = cfg.Normalize()

	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(rngSeed))

	svc := app.NewService(rng, log)
	game, _ := svc.NewGame(cfg)

	agents := make(map[int]*bot.Agent, len(game.Players))
	for _, p := range game.Players {
		kind := p.AIType
		if p.IsHuman {
			kind = domain.AITypeHAL
		}
		strategy, err := bot.New(kind)
		if err != nil {
			log.WithError(err).Fatal("building strategy")
		}
		agents[p.ID] = bot.NewAgent(p.ID, strategy, log)
	}

	schedCfg := app.DefaultSchedulerConfig()
	if *fast {
		schedCfg = app.SchedulerConfig{}
	}

	sched := app.NewScheduler(svc, game, agents, schedCfg, rng, log, func(events []app.Event) {
		for _, ev := range events {
			log.WithField("kind", ev.Kind).Debug("event")
		}
	})

	select {
	case <-sched.Run():
	case <-time.After(10 * time.Minute):
		log.Error("game did not finish in time")
		os.Exit(1)
	}

	final := sched.Snapshot()
	fmt.Println(renderScoreSheet(final))
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	cellStyle   = lipgloss.NewStyle().Width(18).Align(lipgloss.Right)
	labelStyle  = lipgloss.NewStyle().Width(8)
	totalStyle  = lipgloss.NewStyle().Bold(true)
	winnerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
)

// renderScoreSheet prints the round-by-round score table: one row per settled
// round labelled with its pass-direction letter, then cumulative totals and
// the final standing.
func renderScoreSheet(g *domain.Game) string {
	rows := []string{}

	head := labelStyle.Render("")
	for _, p := range g.Players {
		head += cellStyle.Render(headerStyle.Render(p.Name))
	}
	rows = append(rows, head)

	settled := 0
	for _, p := range g.Players {
		if len(p.ScoreHistory) > settled {
			settled = len(p.ScoreHistory)
		}
	}
	for r := 1; r <= settled; r++ {
		row := labelStyle.Render(strconv.Itoa(r) + " " + directionLetter(r, g.Config.PassSequence))
		for _, p := range g.Players {
			val := ""
			if r <= len(p.ScoreHistory) {
				val = strconv.Itoa(p.ScoreHistory[r-1])
			}
			row += cellStyle.Render(val)
		}
		rows = append(rows, row)
	}

	total := labelStyle.Render("Tot")
	for _, p := range g.Players {
		total += cellStyle.Render(totalStyle.Render(strconv.Itoa(p.Score)))
	}
	rows = append(rows, total)

	var winner *domain.Player
	for _, p := range g.Players {
		if winner == nil || p.Score > winner.Score {
			winner = p
		}
	}
	if winner != nil {
		rows = append(rows, winnerStyle.Render(fmt.Sprintf("Winner: %s (%d)", winner.Name, winner.Score)))
	}
	if g.WinningMessage != "" {
		rows = append(rows, g.WinningMessage)
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func directionLetter(round int, seq config.PassSequence) string {
	switch domain.DirectionForRound(round, seq) {
	case domain.PassRight:
		return "D"
	case domain.PassLeft:
		return "S"
	case domain.PassAcross:
		return "C"
	}
	return "-"
}
