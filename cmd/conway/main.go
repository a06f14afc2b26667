//go:build ebiten

package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"conway/internal/app"
	"conway/internal/leaderboard"
	"conway/internal/session"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg, err := app.Parse(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}
	sc, err := cfg.Session()
	if err != nil {
		log.Fatal(err)
	}

	sess, err := session.New(sc, session.WithLogger(log.New(os.Stderr, "", log.LstdFlags)))
	if err != nil {
		log.Fatal(err)
	}
	game := app.New(sess, leaderboard.Static(), cfg.Palette())
	sess.Start(time.Now())

	w, h := game.Layout(0, 0)
	ebiten.SetWindowTitle(fmt.Sprintf("conway %dx%d", sc.GridSize().W, sc.GridSize().H))
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(w*cfg.Scale, h*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
