package main

import (
	"crypto/rand"
	"errors"
	"flag"
	"io"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/joho/godotenv"

	"github.com/vaultpass/passgen-go/internal/config"
	"github.com/vaultpass/passgen-go/internal/handler"
	"github.com/vaultpass/passgen-go/internal/middleware"
	"github.com/vaultpass/passgen-go/internal/service"
)

func main() {
	os.Exit(run(os.Args[1:], rand.Reader, os.Stdin, os.Stdout, os.Stderr))
}

// run executes one command and returns the process exit code: 0 on success
// or help, 2 on a usage error, 1 on any other failure.
func run(args []string, rng io.Reader, in io.Reader, out, errOut io.Writer) int {
	envErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		color.New(color.FgRed).Fprintln(errOut, err)
		return 2
	}

	if cfg.NoColor {
		color.NoColor = true
	}
	setupLogger(cfg, errOut)
	if envErr != nil {
		slog.Debug("no .env file found, using environment variables")
	}

	genService := service.NewGeneratorService(rng)
	genHandler := handler.NewGeneratorHandler(genService, cfg, in, out, errOut)

	r := handler.NewRouter("generate")
	r.Use(middleware.Logger)
	r.Handle("generate", genHandler.HandleGenerate)
	r.Handle("analyze", genHandler.HandleAnalyze)
	r.Handle("verify", genHandler.HandleVerify)
	r.Handle("help", func([]string) error {
		r.Usage(out, "passgen")
		return nil
	})

	err = r.Dispatch(args)
	switch {
	case err == nil:
		return 0
	case errors.Is(err, flag.ErrHelp):
		return 0
	case errors.Is(err, handler.ErrUsage):
		color.New(color.FgRed).Fprintln(errOut, err)
		r.Usage(errOut, "passgen")
		return 2
	default:
		color.New(color.FgRed).Fprintln(errOut, "error:", err)
		return 1
	}
}

func setupLogger(cfg config.Config, w io.Writer) {
	// Load has already validated both settings.
	level, _ := cfg.SlogLevel()
	opts := &slog.HandlerOptions{Level: level}

	var h slog.Handler = slog.NewTextHandler(w, opts)
	if cfg.LogFormat == "json" {
		h = slog.NewJSONHandler(w, opts)
	}
	slog.SetDefault(slog.New(h).With("app", "passgen"))
}
