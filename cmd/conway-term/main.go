package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/gdamore/tcell/v2"

	"conway/internal/app"
	"conway/internal/leaderboard"
	"conway/internal/session"
	"conway/internal/term"
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

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("creating screen: %v", err)
	}
	if err = screen.Init(); err != nil {
		log.Fatalf("initializing screen: %v", err)
	}
	screen.EnableMouse()
	w, h := screen.Size()
	sc = term.Config(sc, w, h)

	sess, err := session.New(sc)
	if err != nil {
		screen.Fini()
		log.Fatal(err)
	}
	frontend := term.New(screen, sess, leaderboard.Static())
	sess.Start(time.Now())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	frame := time.Second / time.Duration(max(cfg.TPS, 1))
	err = frontend.Run(ctx, frame)
	screen.Fini()
	if err != nil && ctx.Err() == nil {
		log.Fatal(err)
	}
}
