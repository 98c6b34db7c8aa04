package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"clashberry/internal/app"
	"clashberry/internal/clash"
	"clashberry/internal/config"
	"clashberry/internal/domain/activity"
	"clashberry/internal/domain/selection"
	"clashberry/internal/domain/war"
	"clashberry/internal/processing"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

func main() {
	app.SetupEnvironment()

	// Parse command line flags
	interval := flag.Duration("interval", app.DefaultUpdateInterval, "Interval between war refreshes (e.g., 1m, 5m); overrides CLASHBERRY_UPDATE_INTERVAL")
	runOnce := flag.Bool("once", false, "Refresh once and exit (don't start scheduler)")
	tabName := flag.String("tab", "attacks", "Activity sub-tab: attacks, defenses or remaining")
	sideName := flag.String("side", "own", "Clan side: own or opponent")
	flag.Parse()

	tab, ok := activity.ParseSubTab(strings.ToLower(*tabName))
	if !ok {
		log.Fatal().Str("tab", *tabName).Msg("Unknown sub-tab")
	}
	side, ok := activity.ParseClanSide(strings.ToLower(*sideName))
	if !ok {
		log.Fatal().Str("side", *sideName).Msg("Unknown clan side")
	}

	// Load configuration
	cfg, err := app.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "interval" {
			cfg.UpdateInterval = *interval
		}
	})
	if cfg.UpdateInterval <= 0 {
		log.Fatal().Dur("interval", cfg.UpdateInterval).Msg("Refresh interval must be positive")
	}

	clanTags := cfg.ClanTags
	if flag.NArg() > 0 {
		clanTags = flag.Args()
	}
	if len(clanTags) == 0 {
		log.Fatal().Msg("No clan tags given; pass them as arguments or set CLASHBERRY_CLAN_TAGS")
	}

	log.Info().
		Str("api_url", cfg.APIBaseURL).
		Strs("clan_tags", clanTags).
		Dur("interval", cfg.UpdateInterval).
		Bool("run_once", *runOnce).
		Str("tab", tab.String()).
		Str("side", side.String()).
		Msg("Starting ClashBerry war activity monitor")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client := clash.NewClientWithConfig(cfg.APIBaseURL, config.DefaultHTTPClientConfig.WithTimeout(cfg.HTTPTimeout))

	// One presenter per clan so each keeps its own war and selection
	presenters := make(map[string]*processing.ActivityPresenter, len(clanTags))
	for _, tag := range clanTags {
		machine := selection.NewMachine()
		machine.Restore(selection.State{SubTab: tab, ClanSide: side})
		presenter := processing.NewActivityPresenter(processing.NewRefreshCoordinator(client), machine, logView)
		defer presenter.Close()
		presenters[clash.FormatClanTag(tag)] = presenter
	}

	// Define the main refresh function
	refreshAll := func() {
		log.Debug().Msg("Starting war refresh cycle")

		// Reset API call counter at the start of each cycle
		client.ResetAPICallCount()

		g, gctx := errgroup.WithContext(ctx)
		for tag, presenter := range presenters {
			tag, presenter := tag, presenter
			g.Go(func() error {
				logResult(presenter.Refresh(gctx, tag))
				return nil
			})
		}
		g.Wait()

		log.Info().
			Int64("api_calls", client.GetAPICallCount()).
			Int("clans", len(presenters)).
			Msg("Completed war refresh cycle")
	}

	// Resolve clan names and warn early about private war logs
	lookupClans(ctx, client, clanTags)

	// Run initial refresh
	refreshAll()

	if *runOnce {
		log.Info().Msg("Run-once mode: exiting after initial refresh")
		return
	}

	log.Info().
		Dur("interval", cfg.UpdateInterval).
		Msg("Starting scheduled war refreshes")

	ticker := time.NewTicker(cfg.UpdateInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("Shutting down")
			return
		case <-ticker.C:
			refreshAll()
		}
	}
}

// lookupClans fetches basic info for each clan tag. Failures are logged and
// do not stop the monitor; the war refresh reports them again.
func lookupClans(ctx context.Context, client *clash.Client, clanTags []string) {
	for _, tag := range clanTags {
		info, err := client.GetClanInfo(ctx, tag)
		if err != nil {
			log.Warn().
				Err(err).
				Str("clan_tag", clash.FormatClanTag(tag)).
				Str("message_key", clash.KindOf(err).MessageKey()).
				Msg("Failed to look up clan")
			continue
		}

		event := log.Info()
		if !info.IsWarLogPublic {
			event = log.Warn()
		}
		event.
			Str("clan_tag", info.Tag).
			Str("name", info.Name).
			Int("level", info.Level).
			Int("members", info.MemberCount).
			Bool("war_log_public", info.IsWarLogPublic).
			Msg("Tracking clan")
	}
}

// logResult reports refreshes that did not produce a war
func logResult(result processing.RefreshResult) {
	switch result.Status {
	case processing.StatusNoWar:
		log.Info().
			Str("clan_tag", result.ClanTag).
			Str("message_key", result.MessageKey()).
			Msg("No war to show")
	case processing.StatusFailed:
		log.Warn().
			Str("clan_tag", result.ClanTag).
			Str("message_key", result.MessageKey()).
			Msg("Refresh failed; keeping previous war data")
	}
}

// logView writes the selected bucket of a rendered view
func logView(view processing.ActivityView) {
	if view.Clan == nil {
		return
	}

	log.Info().
		Str("clan_tag", view.Clan.Tag).
		Str("clan", view.Clan.Name).
		Str("status", view.StatusLine).
		Str("bucket", view.Label).
		Int("members", len(view.Members)).
		Int("stars", view.Clan.StarsTotal).
		Float64("destruction", view.Clan.DestructionPercentage).
		Msg("War activity")

	for _, m := range view.Members {
		event := log.Info().
			Int("position", m.MapPosition).
			Str("name", m.Name).
			Str("tag", m.Tag).
			Int("townhall", war.ClampTownhallLevel(m.TownhallLevel))

		switch view.Selection.SubTab {
		case activity.Attacks:
			stars := make([]string, 0, len(m.Attacks))
			for _, a := range m.Attacks {
				stars = append(stars, war.StarsDisplay(a.Stars))
			}
			event = event.Strs("attacks", stars)
		case activity.Defenses:
			event = event.Int("defenses_received", m.OpponentAttacksReceived)
		case activity.RemainingOrMissed:
			event = event.Int("attacks_used", m.AttackCount())
		}
		event.Msg(view.Label + " member")
	}
}
