package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"jobradar-engine/internal/config"
	"jobradar-engine/internal/notify"
	"jobradar-engine/internal/scheduler"
	"jobradar-engine/internal/scrape"
	"jobradar-engine/internal/secrets"
	"jobradar-engine/internal/store"

	"github.com/gofrs/flock"
)

func main() {
	dryRun := flag.Bool("dry-run", false, "print scraped jobs and exit without DB writes")
	resolveLinks := flag.Bool("resolve-links", false, "follow redirects to resolve final apply URLs before printing/inserting")
	resolveAll := flag.Bool("resolve-all", false, "resolve redirects for all links (by default only non-ATS hosts are resolved)")
	resolveLimit := flag.Int("resolve-limit", 100, "max number of links to resolve per source")
	resolveTimeout := flag.Duration("resolve-timeout", 6*time.Second, "per-request timeout when resolving links")
	resolveWorkers := flag.Int("resolve-workers", 16, "max concurrent workers for link resolution")
	cfgPath := flag.String("config", "", "path to config.yml (default: <data dir>/config.yml, created on first run)")
	every := flag.Duration("every", 0, "run on this interval instead of once (0 = single run)")
	flag.Parse()

	dataDir := os.Getenv("JOBRADAR_DATA_DIR")
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		log.Fatal(err)
	}

	config.LoadDotenv(dataDir)

	path := *cfgPath
	if path == "" {
		var err error
		path, err = config.EnsureUserConfig(dataDir)
		if err != nil {
			log.Fatalf("config bootstrap failed: %v", err)
		}
	}
	cfg, err := config.Load(path)
	if err != nil {
		log.Fatalf("config load failed (%s): %v", path, err)
	}
	config.ApplyEnv(&cfg)
	if cfg.App.DataDir != "" {
		dataDir = cfg.App.DataDir
	}
	if err := config.Validate(cfg); err != nil {
		log.Fatal(err)
	}

	opts := scrape.Options{
		DryRun:         *dryRun,
		ResolveLinks:   *resolveLinks,
		ResolveAll:     *resolveAll,
		ResolveLimit:   *resolveLimit,
		ResolveTimeout: *resolveTimeout,
		ResolveWorkers: *resolveWorkers,
	}

	var st scrape.Store
	var notifier notify.Notifier = notify.Noop{}
	if !*dryRun {
		// One harvester at a time: the exists-then-insert sequence is not
		// transactional, so overlapping invocations must not share the db.
		lock := flock.New(filepath.Join(dataDir, "jobradar.lock"))
		locked, err := lock.TryLock()
		if err != nil {
			log.Fatalf("run lock: %v", err)
		}
		if !locked {
			log.Println("[info] another run is in progress; exiting")
			return
		}
		defer lock.Unlock()

		db, err := store.Open(filepath.Join(dataDir, "jobradar.db"))
		if err != nil {
			log.Fatalf("open database: %v", err)
		}
		defer db.Close()
		st = db

		notifier = &notify.Chain{Transports: []notify.Notifier{
			&notify.IMessage{Recipient: cfg.Notify.IMessageRecipient},
			notify.NewTelegram(secrets.TelegramBotToken(), cfg.Notify.TelegramChatID),
		}}
	}

	runner := scrape.NewRunner(cfg, opts, st, notifier)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	runOnce := func(ctx context.Context) error {
		added, err := runner.Run(ctx)
		if err != nil {
			return err
		}
		if *dryRun {
			fmt.Println("[info] Dry run complete. No database changes were made.")
		} else {
			fmt.Printf("[info] Completed. New jobs added: %d\n", added)
		}
		return nil
	}

	if *every > 0 {
		scheduler.Every(ctx, *every, "radar", runOnce)
		return
	}
	if err := runOnce(ctx); err != nil {
		log.Fatal(err)
	}
}
