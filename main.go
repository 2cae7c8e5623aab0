package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"git.lost.host/meutraa/bowl/internal/config"
	"git.lost.host/meutraa/bowl/internal/input"
	"git.lost.host/meutraa/bowl/internal/parser"
	"git.lost.host/meutraa/bowl/internal/render"
	"git.lost.host/meutraa/bowl/internal/score"
	"git.lost.host/meutraa/bowl/internal/theme"
	"github.com/eiannone/keyboard"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/term"
)

const banner = `----------------------------------------------
-----------BOWLING SCORE CALCULATOR-----------
----------------------------------------------

Enter the pins knocked down in each frame, each shot separated by a space (ex: 7 3)
- Each frame has at most 2 shots, except the tenth
- Strikes can be entered as "X" or "x"
- The second shot of a spare can be entered as "/"
- A gutter ball can be entered as "-"

`

func main() {
	log.Logger = consoleLog(os.Stderr)

	if err := run(os.Args[1:], os.Stdout); nil != err {
		log.Fatal().Err(err).Msg("bowl")
	}
}

// isTerminal reports whether w is a file attached to a terminal
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// consoleLog writes human readable logs, coloured only on a terminal.
func consoleLog(w io.Writer) zerolog.Logger {
	return log.Output(zerolog.ConsoleWriter{Out: w, NoColor: !isTerminal(w)})
}

func run(args []string, out io.Writer) error {
	// A missing .env file is fine
	_ = godotenv.Load()

	cfg, err := config.Parse(args)
	if nil != err {
		return err
	}
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if nil != err {
		return errors.Wrap(err, "unable to set log level")
	}
	zerolog.SetGlobalLevel(level)

	// Ensure our Default implementations are used as interfaces
	var psr parser.Parser = &parser.DefaultParser{}
	var scr score.Scorer = &score.DefaultScorer{}
	var r render.Renderer = &render.DefaultRenderer{
		Theme: &theme.DefaultTheme{Color: cfg.Color && isTerminal(out)},
	}

	var in io.Reader = os.Stdin
	interactive := isTerminal(os.Stdin)
	if cfg.File != "" {
		f, err := os.Open(cfg.File)
		if nil != err {
			return errors.Wrap(err, "unable to open frames file")
		}
		defer f.Close()
		in = f
		interactive = false
	}
	prompt := interactive && !cfg.Quiet

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if prompt {
		fmt.Fprint(out, banner)
	}
	reader := input.NewReader(in, out, psr, prompt)
	defer reader.Close()
	g, err := reader.ReadGame(ctx)
	if nil != err {
		return err
	}
	result := scr.Score(g)

	if f, ok := out.(*os.File); ok {
		if columns, _, err := term.GetSize(int(f.Fd())); nil == err && columns < render.Width {
			log.Warn().Int("columns", columns).Int("required", render.Width).Msg("terminal is narrower than the score sheet")
		}
	}

	fmt.Fprintln(out)
	if err := r.Render(out, g, result); nil != err {
		return errors.Wrap(err, "unable to render score sheet")
	}
	scores := make([]string, len(result.Frames))
	for i, s := range result.Frames {
		scores[i] = fmt.Sprint(s)
	}
	fmt.Fprintf(out, "\nTotal score: %v\n", result.Total)
	fmt.Fprintf(out, "Frame scores: %v\n", strings.Join(scores, " "))

	if cfg.Wait && isTerminal(os.Stdin) {
		fmt.Fprint(out, "\nPress any key to exit")
		if _, _, err := keyboard.GetSingleKey(); nil != err {
			return errors.Wrap(err, "unable to open keyboard")
		}
		fmt.Fprintln(out)
	}
	return nil
}
