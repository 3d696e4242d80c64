package main

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/gofiber/fiber/v2/log"

	"github.com/stickball/presskit/internal/config"
	"github.com/stickball/presskit/internal/contact"
	"github.com/stickball/presskit/internal/server"
	"github.com/stickball/presskit/pkg/api"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "stickball: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log.SetLevel(cfg.LogLevel())

	opts := api.DefaultOptions()
	opts.Debug = cfg.Development()
	opts.Logo = cfg.Logo
	if cfg.MessagesDir != "" {
		files, err := filepath.Glob(filepath.Join(cfg.MessagesDir, "*.json"))
		if err != nil {
			return fmt.Errorf("failed to list messages: %w", err)
		}
		opts.MessagesFiles = files
	}
	gen := api.NewWithOptions(opts)

	svc := &contact.Service{
		Sender: contact.NewSMTPSender(cfg.SMTP),
		From:   cfg.MailFrom,
		To:     cfg.MailTo,
	}

	app, err := server.New(cfg, gen, svc)
	if err != nil {
		return err
	}

	errc := make(chan error, 1)
	go func() {
		log.Infof("listening on %s (%s)", cfg.Addr, cfg.Env)
		errc <- app.Listen(cfg.Addr)
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	select {
	case err := <-errc:
		return err
	case s := <-sig:
		log.Infof("received %s, shutting down", s)
	}
	return app.ShutdownWithTimeout(cfg.ShutdownTimeout)
}
