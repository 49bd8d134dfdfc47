package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/joho/godotenv/autoload"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"github.com/Zachkp/portfolio/internal/assets"
	"github.com/Zachkp/portfolio/internal/catalog"
	"github.com/Zachkp/portfolio/internal/config"
	"github.com/Zachkp/portfolio/internal/contact"
	"github.com/Zachkp/portfolio/internal/sshserve"
	"github.com/Zachkp/portfolio/internal/tui"
	"github.com/Zachkp/portfolio/internal/web"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "", "config file (YAML)")
	flag.Parse()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	if err := run(cfg); err != nil {
		log.Fatalf("portfolio: %v", err)
	}
}

func run(cfg config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	content, err := catalog.Load(cfg.ContentPath)
	if err != nil {
		return err
	}
	store, err := catalog.Open(ctx, content)
	if err != nil {
		return fmt.Errorf("opening catalog: %w", err)
	}
	defer store.Close()

	images := assets.NewProbe(cfg.ImagesDir)
	submitter := contact.Simulated{Delay: cfg.ContactDelay}

	site, err := web.New(content, store, web.Options{
		ImagesDir: cfg.ImagesDir,
		StaticDir: cfg.StaticDir,
		Timing:    cfg.Timing(),
		Images:    images,
		Submitter: submitter,
	})
	if err != nil {
		return fmt.Errorf("building web server: %w", err)
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return site.Run(ctx, cfg.Addr()) })

	if cfg.SSHEnabled {
		sshServer, err := sshserve.New(cfg, sshserve.TeaHandler(func(opts tui.Options) tui.Model {
			opts.Timing = cfg.Timing()
			opts.Images = images
			opts.Submitter = submitter
			return tui.New(content, store, opts)
		}))
		if err != nil {
			return fmt.Errorf("building ssh server: %w", err)
		}
		g.Go(func() error { return sshServer.Run(ctx) })
	}

	return g.Wait()
}
