package game

import (
	"errors"
	"testing"
)

func mustFrame(t *testing.T, final bool, shots ...int) Frame {
	t.Helper()
	f, err := NewFrame(shots, final)
	if nil != err {
		t.Fatal(err)
	}
	return f
}

func openFrames(t *testing.T) []Frame {
	frames := make([]Frame, 0, FrameCount)
	for i := 0; i < FrameCount-1; i++ {
		frames = append(frames, mustFrame(t, false, i%10, 0))
	}
	return append(frames, mustFrame(t, true, 1, 2))
}

func TestNewGame(t *testing.T) {
	g, err := NewGame(openFrames(t))
	if nil != err {
		t.Fatal(err)
	}
	if g.Len() != FrameCount {
		t.Errorf("expected %v frames, got %v", FrameCount, g.Len())
	}
	if !g.Frame(FrameCount - 1).Final() {
		t.Error("last frame should be the tenth")
	}
}

func TestNewGameRejects(t *testing.T) {
	short := openFrames(t)[1:]
	if _, err := NewGame(short); !errors.Is(err, ErrInvalidGame) {
		t.Errorf("nine frames: expected ErrInvalidGame, got %v", err)
	}

	long := append(openFrames(t), mustFrame(t, true, 1, 1))
	if _, err := NewGame(long); !errors.Is(err, ErrInvalidGame) {
		t.Errorf("eleven frames: expected ErrInvalidGame, got %v", err)
	}

	misplaced := openFrames(t)
	misplaced[3] = mustFrame(t, true, 2, 2)
	if _, err := NewGame(misplaced); !errors.Is(err, ErrInvalidGame) {
		t.Errorf("early tenth frame: expected ErrInvalidGame, got %v", err)
	}

	noTenth := openFrames(t)
	noTenth[FrameCount-1] = mustFrame(t, false, 2, 2)
	if _, err := NewGame(noTenth); !errors.Is(err, ErrInvalidGame) {
		t.Errorf("missing tenth frame: expected ErrInvalidGame, got %v", err)
	}
}

func TestNeighbours(t *testing.T) {
	g, err := NewGame(openFrames(t))
	if nil != err {
		t.Fatal(err)
	}

	if _, ok := g.Previous(0); ok {
		t.Error("first frame has no previous frame")
	}
	if _, ok := g.Next(FrameCount - 1); ok {
		t.Error("tenth frame has no next frame")
	}
	for i := 0; i < FrameCount-1; i++ {
		next, ok := g.Next(i)
		if !ok || next.Shot(0) != g.Frame(i+1).Shot(0) {
			t.Errorf("Next(%v) = %v, %v", i, next.Shots(), ok)
		}
		prev, ok := g.Previous(i + 1)
		if !ok || prev.Shot(0) != g.Frame(i).Shot(0) {
			t.Errorf("Previous(%v) = %v, %v", i+1, prev.Shots(), ok)
		}
	}
}
