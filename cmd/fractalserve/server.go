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

package main

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"log/slog"
	"net/http"
	"runtime"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"

	"seehuhn.de/go/fractal"
	"seehuhn.de/go/fractal/mandelbrot"
	"seehuhn.de/go/fractal/surface"
)

//go:embed index.html
var indexHTML []byte

// errBadRequest is wrapped by all errors caused by invalid requests.
var errBadRequest = errors.New("bad request")

// request is a single render request.
type request struct {
	Fractal    string `json:"fractal"`
	Width      uint   `json:"width"`
	Iterations int    `json:"iterations,omitempty"`
	Preset     string `json:"preset,omitempty"`
	Color      string `json:"color,omitempty"`
	Depth      int    `json:"depth,omitempty"`
}

type errorReply struct {
	Error string `json:"error"`
}

// server renders fractal images for websocket clients.
type server struct {
	MaxWidth      uint
	MaxDepth      int
	MaxIterations int
	Workers       int

	logger *slog.Logger
}

func newServer(logger *slog.Logger) *server {
	return &server{
		MaxWidth:      2048,
		MaxDepth:      10,
		MaxIterations: 100000,
		Workers:       runtime.NumCPU(),
		logger:        logger,
	}
}

// Handler returns the HTTP handler serving the client page on / and
// the websocket endpoint on /ws.
func (s *server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.serveIndex)
	mux.HandleFunc("/ws", s.serveWS)
	return mux
}

func (s *server) serveIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(indexHTML)
}

func (s *server) serveWS(w http.ResponseWriter, r *http.Request) {
	c, err := websocket.Accept(w, r, nil)
	if err != nil {
		s.logger.Warn("websocket accept failed", "remote", r.RemoteAddr, "err", err)
		return
	}
	defer c.CloseNow()

	log := s.logger.With("remote", r.RemoteAddr)
	log.Debug("client connected")

	ctx := r.Context()
	for {
		typ, data, err := c.Read(ctx)
		if err != nil {
			switch websocket.CloseStatus(err) {
			case websocket.StatusNormalClosure, websocket.StatusGoingAway:
				log.Debug("client disconnected")
			default:
				log.Warn("read failed", "err", err)
			}
			return
		}

		img, err := s.handle(typ, data)
		if err != nil {
			log.Debug("request rejected", "err", err)
			if err := wsjson.Write(ctx, c, errorReply{Error: err.Error()}); err != nil {
				log.Warn("write failed", "err", err)
				return
			}
			continue
		}
		if err := c.Write(ctx, websocket.MessageBinary, img); err != nil {
			log.Warn("write failed", "err", err)
			return
		}
	}
}

// handle decodes and serves a single message.
func (s *server) handle(typ websocket.MessageType, data []byte) ([]byte, error) {
	if typ != websocket.MessageText {
		return nil, fmt.Errorf("%w: expected a JSON text message", errBadRequest)
	}
	var req request
	if err := json.Unmarshal(data, &req); err != nil {
		return nil, fmt.Errorf("%w: %v", errBadRequest, err)
	}
	return s.render(req)
}

// render draws the requested image and returns it PNG encoded.
func (s *server) render(req request) ([]byte, error) {
	if req.Width == 0 || req.Width > s.MaxWidth {
		return nil, fmt.Errorf("%w: width must be between 1 and %d", errBadRequest, s.MaxWidth)
	}

	start := time.Now()
	w := int(req.Width)
	c := surface.NewCanvas(w, w)

	switch req.Fractal {
	case "mandelbrot":
		opts, err := s.mandelbrotOptions(req)
		if err != nil {
			return nil, err
		}
		iter := req.Iterations
		if iter == 0 {
			iter = 256
		}
		if iter < 0 || iter > s.MaxIterations {
			return nil, fmt.Errorf("%w: iterations must be between 1 and %d", errBadRequest, s.MaxIterations)
		}
		if _, err := fractal.Mandelbrot(req.Width, iter, c, opts...); err != nil {
			return nil, err
		}
	case "sierpinski":
		if req.Depth < 0 || req.Depth > s.MaxDepth {
			return nil, fmt.Errorf("%w: depth must be between 0 and %d", errBadRequest, s.MaxDepth)
		}
		c.Clear(color.White)
		if _, err := fractal.Sierpinski(req.Width, req.Depth, c); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: unknown fractal %q", errBadRequest, req.Fractal)
	}

	data, err := encodePNG(c.Image())
	if err != nil {
		return nil, err
	}
	s.logger.Debug("rendered",
		"fractal", req.Fractal,
		"width", w,
		"bytes", len(data),
		"elapsed", time.Since(start))
	return data, nil
}

func (s *server) mandelbrotOptions(req request) ([]fractal.Option, error) {
	p := mandelbrot.DefaultPreset
	if req.Preset != "" {
		var err error
		p, err = mandelbrot.LookupPreset(req.Preset)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", errBadRequest, err)
		}
	}
	opts := []fractal.Option{fractal.WithPreset(p), fractal.WithWorkers(s.Workers)}
	if req.Color != "" {
		col, err := mandelbrot.ColorizerByName(req.Color)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", errBadRequest, err)
		}
		opts = append(opts, fractal.WithColorizer(col))
	}
	return opts, nil
}

func encodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
