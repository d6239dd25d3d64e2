// cmd/bounce/main.go
package main

import (
	"context"
	"flag"
	"fmt"
	"go-bouncing-ball/internal/actor"
	"go-bouncing-ball/internal/app"
	"go-bouncing-ball/internal/audio"
	"go-bouncing-ball/internal/config"
	"go-bouncing-ball/internal/defs"
	"go-bouncing-ball/internal/host"
	"go-bouncing-ball/internal/loop"
	"go-bouncing-ball/internal/terminal"
	"image/png"
	"io"
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"time"

	"github.com/gdamore/tcell/v2"
)

func main() {
	cfg := config.Default()
	mode := flag.String("mode", "window", "window, term or headless")
	out := flag.String("out", "frame.png", "snapshot written by headless mode")
	pprofAddr := flag.String("pprof", "", "serve net/http/pprof on this address, e.g. localhost:6060")
	logPath := flag.String("log", "", "log file for term mode, empty discards the log while the terminal is taken")
	flag.IntVar(&cfg.Width, "width", cfg.Width, "display width")
	flag.IntVar(&cfg.Height, "height", cfg.Height, "display height")
	flag.Float64Var(&cfg.FadeAlpha, "fade", cfg.FadeAlpha, "opacity of the per-frame clear, 1 disables the trail")
	flag.Int64Var(&cfg.Seed, "seed", 0, "seed for update ids, 0 uses the clock")
	flag.IntVar(&cfg.MaxTicks, "frames", 0, "stop after this many frames, 0 runs forever")
	flag.StringVar(&cfg.ScenePath, "scene", "", "JSON scene file")
	flag.BoolVar(&cfg.HUD, "hud", false, "show tick and actor overlay")
	flag.BoolVar(&cfg.Sound, "sound", false, "blip on wall hits")
	flag.Parse()

	if *pprofAddr != "" {
		go func() {
			log.Println(http.ListenAndServe(*pprofAddr, nil))
		}()
	}

	actors, err := loadActors(&cfg)
	if err != nil {
		log.Fatal(err)
	}
	a := app.New(cfg, actors)
	a.LogSkippedActors()
	if cfg.Sound {
		if err := audio.Attach(a.Bus()); err != nil {
			// Не фатально, анимация работает и без звука
			log.Printf("audio disabled: %v", err)
		}
	}

	switch *mode {
	case "window":
		err = host.Run(a, cfg.HUD, config.WindowTitle)
	case "term":
		err = runTerminal(a, *logPath)
	case "headless":
		err = runHeadless(a, *out)
	default:
		err = fmt.Errorf("unknown mode %q", *mode)
	}
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("stopped after %d frames", a.Ticks())
}

func loadActors(cfg *config.Settings) ([]actor.Actor, error) {
	if cfg.ScenePath == "" {
		return nil, nil
	}
	scene, err := defs.LoadScene(cfg.ScenePath)
	if err != nil {
		return nil, err
	}
	if scene.Width > 0 && scene.Height > 0 {
		cfg.Width, cfg.Height = scene.Width, scene.Height
	}
	actors, err := scene.BuildActors()
	if err != nil {
		return nil, fmt.Errorf("scene %s: %w", cfg.ScenePath, err)
	}
	log.Printf("Loaded %d actors from %s", len(actors), cfg.ScenePath)
	return actors, nil
}

func runHeadless(a *app.App, path string) error {
	if err := a.RunHeadless(); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create snapshot: %w", err)
	}
	defer f.Close()
	if err := png.Encode(f, a.Display().Image()); err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	log.Printf("wrote %s", path)
	return nil
}

// redirectLog уводит log из stderr, пока экран принадлежит tcell: иначе
// строки лога ломают кадр. restore возвращает прежний вывод.
func redirectLog(path string) (restore func(), err error) {
	prev := log.Writer()
	if path == "" {
		log.SetOutput(io.Discard)
		return func() { log.SetOutput(prev) }, nil
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	log.SetOutput(f)
	return func() {
		log.SetOutput(prev)
		f.Close()
	}, nil
}

func runTerminal(a *app.App, logPath string) error {
	restore, err := redirectLog(logPath)
	if err != nil {
		return err
	}
	defer restore()

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil || terminal.QuitRequested(ev) {
				cancel()
				return
			}
		}
	}()

	presenter := terminal.NewPresenter(screen)
	sched := loop.NewTickerScheduler(ctx, time.Second/config.RefreshRate)
	// Дожидаемся горутины тикера до screen.Fini и до чтения a.Ticks()
	defer sched.Wait()
	defer cancel()
	l := loop.Run(sched, func(elapsed float64) error {
		if ctx.Err() != nil {
			return loop.ErrStop
		}
		err := a.Tick(elapsed)
		presenter.Present(a.Display().Image())
		return err
	})

	select {
	case <-l.Done():
		return l.Err()
	case <-ctx.Done():
		return nil
	}
}
