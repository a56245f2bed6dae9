package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"SpliceSafari/ai"
	"SpliceSafari/api"
	"SpliceSafari/bot"
	"SpliceSafari/catalog"
	"SpliceSafari/core"
	"SpliceSafari/lib/sl"
	"SpliceSafari/mashup"

	"golang.org/x/sync/errgroup"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

func main() {

	configPath := flag.String("conf", "config.yml", "path to config file")
	flag.Parse()

	conf := core.MustLoad(*configPath)
	log := setupLogger(conf.Env)
	log.With(
		slog.String("config", *configPath),
		slog.String("env", conf.Env),
		slog.String("addr", conf.Addr()),
		slog.String("provider", conf.ImageProvider),
		sl.Secret(conf.OpenAI.ApiKey),
	).Info("starting splice safari")

	c := catalog.Default()
	if err := mashup.CheckCatalog(c); err != nil {
		log.Error("invalid catalog", sl.Err(err))
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	illustrator := ai.NewIllustratorFromConfig(ctx, conf, c.Captions, log)
	status := illustrator.Status()
	log.With(
		slog.Bool("available", status.Available),
		slog.String("model", status.Model),
		slog.String("reason", status.Reason),
	).Info("image provider")

	lab := mashup.NewLab(c, nil, illustrator, log)
	server := api.NewServer(conf, lab, log)

	var tgBot *bot.TgBot
	if conf.Telegram.Enabled {
		var err error
		tgBot, err = bot.NewTgBot(conf, lab, log)
		if err != nil {
			log.Error("creating telegram bot; continuing without it", sl.Err(err))
		}
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(server.Start)
	if tgBot != nil {
		g.Go(tgBot.Start)
	}
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down")
		if tgBot != nil {
			tgBot.Stop()
		}
		return server.Stop()
	})

	if err := g.Wait(); err != nil {
		log.Error("stopped with error", sl.Err(err))
		os.Exit(1)
	}
	log.Info("shutdown complete")
}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal, envDev:
		log = slog.New(
			slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}),
		)
	case envProd:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}),
		)
	default:
		log = slog.New(
			slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}),
		)
	}

	return log
}
