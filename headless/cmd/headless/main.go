package main

import (
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	cfg "github.com/automoto/huskyhunt/config"
	"github.com/automoto/huskyhunt/core"
	"github.com/automoto/huskyhunt/headless"
	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	ticks := flag.Int("ticks", 3600, "Ticks to run before exiting (0 = until interrupted)")
	rate := flag.Int("rate", 0, "Simulation tick rate in updates per second (0 = game.tick_rate from config)")
	seed := flag.Int64("seed", 1, "Random seed for enemy spawns")
	configPath := flag.String("config", "", "YAML file overriding the built-in tuning")
	metricsAddr := flag.String("metrics", "", "Address to serve Prometheus metrics on (empty = off)")
	fast := flag.Bool("fast", false, "Run ticks back to back instead of in real time")
	difficulty := flag.String("difficulty", "normal", "Autopilot difficulty: easy, normal or hard")
	restart := flag.Bool("restart", true, "Start a new run after each win or loss")
	flag.Parse()

	if err := cfg.LoadOverrides(*configPath); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	game := core.NewGame(*seed)
	pilot := headless.NewAutopilot(cfg.ParseBotDifficulty(*difficulty), *restart)

	var metrics *headless.Metrics
	if *metricsAddr != "" {
		registry := prometheus.NewRegistry()
		metrics = headless.NewMetrics(registry)

		mux := http.NewServeMux()
		mux.Handle("/metrics", headless.Handler(registry))
		go func() {
			log.Printf("Serving metrics on %s/metrics", *metricsAddr)
			if err := http.ListenAndServe(*metricsAddr, mux); err != nil {
				log.Printf("Warning: metrics server stopped: %v", err)
			}
		}()
	}

	loop := headless.NewGameLoop(game, pilot, metrics, *rate)
	loop.SetTickBudget(*ticks)
	loop.SetFast(*fast)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Println("Shutting down...")
		loop.Stop()
	}()

	log.Printf("Starting headless run (seed: %d, rate: %d/s, difficulty: %s)", *seed, loop.TickRate(), *difficulty)
	loop.Run()

	stats := game.PlayerStats()
	log.Printf("Run summary: ticks=%d state=%s kills=%d level=%d health=%d",
		loop.Ticks(), game.State(), game.Data().Kills, stats.Level, game.PlayerHealth().Current)
}
