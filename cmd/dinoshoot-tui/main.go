// Command dinoshoot-tui plays the game in a terminal, using the mouse for aim.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/gopxl/beep"
	"golang.org/x/sync/errgroup"

	"dinoshoot/config"
	"dinoshoot/input"
	"dinoshoot/render"
	"dinoshoot/session"
	"dinoshoot/sim"
	"dinoshoot/sound"
)

// arrowStep is how far an arrow key moves the aim point, in play-area units.
const arrowStep = 25

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "dinoshoot-tui:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(os.Args[0], os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	// stderr belongs to the screen, so logs go to a file or nowhere
	var logOut io.Writer = io.Discard
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		logOut = f
	}
	log := cfg.Logger(logOut)

	table, err := cfg.Table()
	if err != nil {
		return err
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	st := sim.New(float64(cfg.Width), float64(cfg.Height), table, rand.New(rand.NewSource(seed)))
	st.Step = cfg.StepMillis()

	var snd sound.Player = sound.Silent{}
	if !cfg.Mute {
		rate := beep.SampleRate(sound.SampleRate)
		if err := sound.InitSpeaker(rate); err != nil {
			log.Warn("audio unavailable", "err", err)
		} else {
			defer sound.Close()
			snd = sound.Click{Rate: rate, Freq: 880, Duration: 50 * time.Millisecond}
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("new screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	screen.EnableMouse()
	screen.HideCursor()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.InfoContext(ctx, "starting", "width", cfg.Width, "height", cfg.Height, "seed", seed, "levels", table.Len())
	t := &term{
		screen:  screen,
		surface: render.NewTermSurface(screen, float64(cfg.Width), float64(cfg.Height)),
		session: session.New(st, snd, log),
		events:  make(chan tcell.Event, 64),
	}
	t.raw.Cursor = input.Point{X: float64(cfg.Width) / 2, Y: float64(cfg.Height) / 2}

	err = t.run(ctx, time.Second/time.Duration(cfg.TPS))
	screen.Fini()
	log.InfoContext(ctx, "exit", "level", st.Level, "score", st.Score, "shots", t.session.Shots())
	return err
}

var errQuit = errors.New("quit")

type term struct {
	screen  tcell.Screen
	surface *render.TermSurface
	session *session.Session
	adapter input.Adapter
	events  chan tcell.Event

	raw     input.Raw
	buttons tcell.ButtonMask
}

func (t *term) run(ctx context.Context, tick time.Duration) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		for {
			ev := t.screen.PollEvent()
			if ev == nil || ctx.Err() != nil {
				return nil
			}
			select {
			case t.events <- ev:
			case <-ctx.Done():
				return nil
			}
		}
	})

	g.Go(func() error {
		// unblocks PollEvent once the loop is done
		defer t.screen.PostEvent(tcell.NewEventInterrupt(nil))

		ticker := time.NewTicker(tick)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return nil
			case ev := <-t.events:
				if err := t.handle(ev); err != nil {
					return err
				}
			case <-ticker.C:
				if err := t.step(ctx); err != nil {
					return err
				}
			}
		}
	})

	err := g.Wait()
	if errors.Is(err, errQuit) {
		return nil
	}
	return err
}

func (t *term) handle(ev tcell.Event) error {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return errQuit
		case tcell.KeyEnter:
			t.raw.Confirm = true
		case tcell.KeyLeft:
			t.raw.Cursor.X -= arrowStep
		case tcell.KeyRight:
			t.raw.Cursor.X += arrowStep
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q', 'Q':
				return errQuit
			case ' ':
				t.raw.FireKey = true
			}
		}
	case *tcell.EventMouse:
		x, y := ev.Position()
		wx, wy := t.surface.ToWorld(x, y)
		t.raw.Cursor = input.Point{X: wx, Y: wy}
		b := ev.Buttons()
		if b&tcell.Button1 != 0 && t.buttons&tcell.Button1 == 0 {
			t.raw.MousePressed = true
		}
		t.buttons = b
	case *tcell.EventResize:
		t.screen.Sync()
	}
	return nil
}

func (t *term) step(ctx context.Context) error {
	f := t.adapter.Resolve(t.raw)
	t.raw.MousePressed = false
	t.raw.FireKey = false
	t.raw.Confirm = false

	if err := t.session.Update(ctx, f); err != nil {
		return err
	}
	render.Draw(t.surface, t.session.State(), t.session.Button())
	t.screen.Show()
	return nil
}
