// Command tourd serves the tour pipeline over HTTP.
//
// Configuration comes from the environment (optionally a .env file) and may be
// overridden by flags:
//
//	TOURKIT_ADDR    -addr    listen address, default :8080
//	TOURKIT_MATRIX  -matrix  distance table path, required
//	TOURKIT_FORMAT  -format  json (default) or tsplib
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/katalvlaran/tourkit/distance"
	"github.com/katalvlaran/tourkit/server"
)

const defaultAddr = ":8080"

type config struct {
	Addr   string
	Matrix string
	Format string
}

// loadConfig reads the environment through getenv, then applies args.
func loadConfig(args []string, getenv func(string) string) (config, error) {
	cfg := config{
		Addr:   getenv("TOURKIT_ADDR"),
		Matrix: getenv("TOURKIT_MATRIX"),
		Format: getenv("TOURKIT_FORMAT"),
	}
	if cfg.Addr == "" {
		cfg.Addr = defaultAddr
	}
	if cfg.Format == "" {
		cfg.Format = "json"
	}

	fs := flag.NewFlagSet("tourd", flag.ContinueOnError)
	fs.StringVar(&cfg.Addr, "addr", cfg.Addr, "Listen address")
	fs.StringVar(&cfg.Matrix, "matrix", cfg.Matrix, "Path to the distance table")
	fs.StringVar(&cfg.Format, "format", cfg.Format, "Distance table format: json or tsplib")
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}

	if cfg.Matrix == "" {
		return cfg, fmt.Errorf("missing distance table (TOURKIT_MATRIX or -matrix)")
	}
	if cfg.Format != "json" && cfg.Format != "tsplib" {
		return cfg, fmt.Errorf("format must be json or tsplib, got %q", cfg.Format)
	}

	return cfg, nil
}

func loadTable(cfg config) (*distance.Table, error) {
	if cfg.Format == "json" {
		return distance.LoadFile(cfg.Matrix)
	}
	f, err := os.Open(cfg.Matrix)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", distance.ErrDataLoad, err)
	}
	defer f.Close()

	return distance.LoadTSPLIB(f)
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := loadConfig(os.Args[1:], os.Getenv)
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	tab, err := loadTable(cfg)
	if err != nil {
		log.Fatalf("Failed to load distance table: %v", err)
	}
	log.Printf("Distance table loaded: %d nodes", tab.Len())

	logger := log.New(os.Stderr, "tourd ", log.LstdFlags)
	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           server.New(tab, logger).Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		shutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdown); err != nil {
			log.Printf("Shutdown: %v", err)
		}
	}()

	log.Printf("tourd listening on %s", cfg.Addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("Server failed: %v", err)
	}
	log.Println("tourd stopped")
}
