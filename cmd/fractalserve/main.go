// seehuhn.de/go/fractal - fractal images for 2D drawing surfaces
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Command fractalserve serves fractal images over a websocket.
//
// Every text message received on /ws is a JSON render request, for
// example
//
//	{"fractal": "mandelbrot", "width": 512, "iterations": 200, "preset": "zoom"}
//	{"fractal": "sierpinski", "width": 512, "depth": 6}
//
// and is answered with a binary message containing a PNG image, or with
// a text message {"error": "..."} if the request cannot be served.
// The page at / is a small client for the service.
package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

func main() {
	if err := run(); err != nil {
		slog.Error("fractalserve failed", "err", err)
		os.Exit(1)
	}
}

func run() error {
	addr := flag.String("addr", ":8080", "listen address")
	maxWidth := flag.Uint("max-width", 2048, "largest image width in pixels")
	maxDepth := flag.Int("max-depth", 10, "largest Sierpinski depth")
	maxIter := flag.Int("max-iter", 100000, "largest Mandelbrot iteration limit")
	workers := flag.Int("workers", 0, "goroutines per Mandelbrot image (0: one per CPU)")
	verbose := flag.Bool("v", false, "log debug messages")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	s := newServer(logger)
	s.MaxWidth = *maxWidth
	s.MaxDepth = *maxDepth
	s.MaxIterations = *maxIter
	if *workers > 0 {
		s.Workers = *workers
	}

	srv := &http.Server{
		Addr:              *addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errc := make(chan error, 1)
	go func() {
		logger.Info("listening", "addr", *addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
