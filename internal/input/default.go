package input

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"sync"

	"git.lost.host/meutraa/bowl/internal/game"
	"git.lost.host/meutraa/bowl/internal/parser"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

var (
	ErrIncomplete = errors.New("input ended before the game was complete")
	ErrClosed     = errors.New("reader is closed")
)

type line struct {
	text string
	err  error
}

// Reader asks for frames one at a time until each one is valid. Lines are
// read in the background from NewReader until Close, so a cancelled call
// leaves the reader usable with a fresh context.
type Reader struct {
	parser parser.Parser
	out    io.Writer
	prompt bool

	lines <-chan line
	done  chan struct{}
	once  sync.Once
}

// NewReader reads lines from in. When prompt is set, frame prompts and
// rejections are written to out, otherwise rejections are only logged.
func NewReader(in io.Reader, out io.Writer, p parser.Parser, prompt bool) *Reader {
	r := &Reader{parser: p, out: out, prompt: prompt, done: make(chan struct{})}
	r.lines = r.readLines(in)
	return r
}

// Close stops handing out lines. A scan blocked on in returns once in does.
func (r *Reader) Close() {
	r.once.Do(func() { close(r.done) })
}

func (r *Reader) readLines(in io.Reader) <-chan line {
	lines := make(chan line)
	go func() {
		defer close(lines)

		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- line{text: scanner.Text()}:
			case <-r.done:
				return
			}
		}
		if err := scanner.Err(); nil != err {
			select {
			case lines <- line{err: err}:
			case <-r.done:
			}
		}
	}()
	return lines
}

func (r *Reader) next(ctx context.Context) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case <-r.done:
		return "", ErrClosed
	case l, ok := <-r.lines:
		if !ok {
			return "", ErrIncomplete
		}
		if nil != l.err {
			return "", errors.Wrap(l.err, "unable to read input")
		}
		return l.text, nil
	}
}

func (r *Reader) reject(number int, text string, err error, message string) {
	log.Warn().Err(err).Int("frame", number).Str("input", text).Msg("rejected frame")
	if r.prompt {
		fmt.Fprintln(r.out, message)
	}
}

// ReadFrame reads lines until one holds valid shots for frame number, 1 to 10.
func (r *Reader) ReadFrame(ctx context.Context, number int) (game.Frame, error) {
	final := number == game.FrameCount
	for {
		if r.prompt {
			fmt.Fprintf(r.out, "Frame %v: ", number)
		}
		text, err := r.next(ctx)
		if nil != err {
			return game.Frame{}, errors.Wrapf(err, "frame %v", number)
		}

		shots, err := r.parser.Parse(text)
		if nil != err {
			r.reject(number, text, err, "Invalid input. Try again.")
			continue
		}
		shots = trimStrike(shots, final)

		frame, err := game.NewFrame(shots, final)
		if nil != err {
			r.reject(number, text, err, fmt.Sprintf("The numbers for this frame are incorrect (%v). Try again.", err))
			continue
		}
		return frame, nil
	}
}

// ReadGame reads all ten frames.
func (r *Reader) ReadGame(ctx context.Context) (*game.Game, error) {
	frames := make([]game.Frame, 0, game.FrameCount)
	for i := 1; i <= game.FrameCount; i++ {
		frame, err := r.ReadFrame(ctx, i)
		if nil != err {
			return nil, err
		}
		frames = append(frames, frame)
	}
	return game.NewGame(frames)
}

// A strike typed as "10 0" is read as the single strike shot it stands for
func trimStrike(shots []int, final bool) []int {
	if !final && len(shots) == 2 && game.IsStrike(shots[0]) && shots[1] == 0 {
		return shots[:1]
	}
	return shots
}
