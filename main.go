package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"math/rand"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"

	"dinoshoot/config"
	"dinoshoot/input"
	"dinoshoot/render"
	"dinoshoot/replay"
	"dinoshoot/session"
	"dinoshoot/sim"
	"dinoshoot/sound"
)

type Game struct {
	ctx     context.Context
	session *session.Session
	adapter input.Adapter
	raw     input.Raw
	surface *render.EbitenSurface

	w, h int
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) { return g.w, g.h }

func (g *Game) Update() error {
	input.Poll(&g.raw)
	return g.session.Update(g.ctx, g.adapter.Resolve(g.raw))
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.surface.Target(screen)
	render.Draw(g.surface, g.session.State(), g.session.Button())
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "dinoshoot:", err)
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

	var logOut io.Writer = os.Stderr
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		logOut = f
	}
	log := cfg.Logger(logOut)
	slog.SetDefault(log)
	ctx := context.Background()

	if cfg.VerifyReplay != "" {
		return verify(ctx, log, cfg.VerifyReplay)
	}

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
	log.InfoContext(ctx, "starting", "width", cfg.Width, "height", cfg.Height, "seed", seed, "levels", table.Len())

	assets := os.DirFS(cfg.Assets)
	s := session.New(st, shotSound(ctx, log, cfg, assets), log)

	if cfg.Record != "" {
		f, err := os.Create(cfg.Record)
		if err != nil {
			return fmt.Errorf("create replay: %w", err)
		}
		defer f.Close()
		rec, err := replay.NewRecorder(f, replay.NewHeader(seed, st))
		if err != nil {
			return err
		}
		s.SetRecorder(rec)
		log.InfoContext(ctx, "recording replay", "path", cfg.Record, "id", rec.Header().ID)
		defer func() {
			log.InfoContext(ctx, "replay closed", "path", cfg.Record, "frames", rec.Frames())
		}()
	}

	surface, err := render.NewEbitenSurface(assets, log)
	if err != nil {
		return err
	}
	g := &Game{ctx: ctx, session: s, surface: surface, w: cfg.Width, h: cfg.Height}

	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle("Dino Shoot")
	ebiten.SetTPS(cfg.TPS)
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	log.InfoContext(ctx, "exit", "level", st.Level, "score", st.Score, "shots", s.Shots())
	return nil
}

func shotSound(ctx context.Context, log *slog.Logger, cfg config.Config, assets fs.FS) sound.Player {
	if cfg.Mute {
		return sound.Silent{}
	}
	actx := audio.NewContext(sound.SampleRate)
	clip, err := sound.LoadClip(actx, assets, cfg.Sound)
	if err != nil {
		log.WarnContext(ctx, "shot sound unavailable, using tone", "err", err)
		return sound.Tone(actx, 880, 0.08)
	}
	return clip
}

func verify(ctx context.Context, log *slog.Logger, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open replay: %w", err)
	}
	defer f.Close()

	s, h, err := replay.Run(ctx, f)
	if err != nil {
		return err
	}
	st := s.State()
	log.InfoContext(ctx, "replay verified",
		"id", h.ID,
		"ticks", s.Ticks(),
		"phase", st.Phase,
		"level", st.Level,
		"score", st.Score,
	)
	return nil
}
