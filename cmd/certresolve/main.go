package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/dmitrymomot/certresolve/core/certindex"
	"github.com/dmitrymomot/certresolve/core/certstore"
	"github.com/dmitrymomot/certresolve/core/config"
	"github.com/dmitrymomot/certresolve/core/logger"
)

type appConfig struct {
	CertDir      string        `env:"CERT_DIR"`
	ParseTimeout time.Duration `env:"CERT_PARSE_TIMEOUT" envDefault:"5s"`
	LogLevel     string        `env:"LOG_LEVEL" envDefault:"info"`
}

func main() {
	dirFlag := flag.String("dir", "", "Base directory with one subdirectory per certificate bundle (overrides CERT_DIR)")
	domainFlag := flag.String("domain", "", "Fully-qualified domain name to resolve (required)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s -domain <fqdn> [-dir <cert-dir>]\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Resolves the authoritative certificate bundle for a domain and prints its file paths.\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}

	flag.Parse()

	var cfg appConfig
	if err := config.Load(&cfg); err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLevel(cfg.LogLevel),
	}))

	certDir := cfg.CertDir
	if *dirFlag != "" {
		certDir = *dirFlag
	}
	if *domainFlag == "" || certDir == "" {
		flag.Usage()
		os.Exit(1)
	}

	resolver, err := certindex.New(certindex.Config{CertDir: certDir},
		certindex.WithLogger(log),
		certindex.WithParseTimeout(cfg.ParseTimeout),
	)
	if err != nil {
		log.Error("failed to create resolver", slog.String("cert_dir", certDir), logger.Error(err))
		os.Exit(1)
	}

	bundleID, err := resolver.Resolve(context.Background(), *domainFlag)
	if err != nil {
		// No match blocks deployment: serving without a certificate, or with
		// the wrong one, is a security regression.
		if errors.Is(err, certindex.ErrNoCertificate) {
			log.Error("no certificate bundle covers domain", slog.String("domain", *domainFlag), slog.String("cert_dir", certDir))
		} else {
			log.Error("resolution failed", slog.String("domain", *domainFlag), logger.Error(err))
		}
		os.Exit(1)
	}

	store, err := certstore.New(certDir)
	if err != nil {
		log.Error("failed to open bundle store", slog.String("cert_dir", certDir), logger.Error(err))
		os.Exit(1)
	}

	paths := store.Paths(bundleID)
	fmt.Printf("bundle\t%s\n", bundleID)
	fmt.Printf("cert\t%s\n", paths.Cert)
	fmt.Printf("key\t%s\n", paths.Key)
	fmt.Printf("chain\t%s\n", paths.Chain)
}

func parseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
