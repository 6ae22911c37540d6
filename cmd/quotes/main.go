package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"stock-quotes/internal/application"
	"stock-quotes/internal/bootstrap"
	"stock-quotes/internal/config"
	"stock-quotes/internal/infrastructure/logx"
	"stock-quotes/internal/infrastructure/render"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

const (
	tickersFlag = "tickers"
	modeFlag    = "mode"
)

var version = "dev"

func init() { _ = godotenv.Load() }

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app := newApp(os.Stdout, os.Stderr)
	if err := app.RunContext(ctx, os.Args); err != nil {
		stop()
		logx.L().Fatal("quotes lookup failed", zap.Error(err))
	}
}

// newApp writes the result line to out. Help, usage and version text go to
// errOut so stdout stays empty on any failure.
func newApp(out, errOut io.Writer) *cli.App {
	return &cli.App{
		Name:      "quotes",
		Usage:     "print stock prices for a list of ticker symbols",
		Version:   version,
		Writer:    errOut,
		ErrWriter: errOut,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     tickersFlag,
				Aliases:  []string{"t"},
				Usage:    "A comma-separated list of stock ticker symbols",
				Required: true,
			},
			&cli.StringFlag{
				Name:    modeFlag,
				Aliases: []string{"m"},
				Usage:   "Matching variant: strict (every ticker must be found, request order) or set (found tickers only, response order)",
			},
		},
		Before: func(*cli.Context) error {
			// init ran before .env was read
			logx.SetLevel(config.Load().LogLevel)
			return nil
		},
		Action: func(cCtx *cli.Context) error {
			return run(cCtx, out)
		},
	}
}

func run(cCtx *cli.Context, out io.Writer) error {
	cfg := config.Load()
	if cCtx.IsSet(modeFlag) {
		cfg.MatchMode = cCtx.String(modeFlag)
	}

	svc, err := bootstrap.InitQuoteService(cfg)
	if err != nil {
		return fmt.Errorf("init: %w", err)
	}

	quotes, err := svc.Lookup(cCtx.Context, cCtx.String(tickersFlag))
	if err != nil {
		return err
	}

	style := render.PriceOnly
	if svc.Mode() == application.MatchSet {
		style = render.WithChange
	}
	_, err = fmt.Fprintln(out, render.Line(quotes, style))
	return err
}
