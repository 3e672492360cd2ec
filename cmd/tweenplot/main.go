// Command tweenplot draws an easing curve in the terminal and animates a
// marker along it with a live tween.
//
//	tweenplot -easing "Out Bounce" -duration 2
//	tweenplot -script fade.json
//
// Keys: left/right cycle curves, space pauses, e toggles an editor-style
// freeze, q or Esc quits. With -script, every running tween is also drawn as
// a bar under the plot.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/phanxgames/tween"
)

var (
	easingName = flag.String("easing", "Linear", "easing curve name, e.g. \"InOut Elastic\"")
	duration   = flag.Float64("duration", 2, "seconds per run")
	scriptPath = flag.String("script", "", "optional JSON tween script to play alongside")
)

const (
	frame    = 16 * time.Millisecond
	plotLow  = -0.5 // overshooting curves leave [0, 1]
	plotHigh = 1.5
)

type plot struct {
	screen  tcell.Screen
	manager *tween.Manager
	ticker  *tween.Ticker
	easing  tween.Easing
	marker  tween.Handle
	paused  bool
	editing bool
}

func main() {
	flag.Parse()

	easing, err := tween.ParseEasing(*easingName)
	if err != nil {
		log.Fatal(err)
	}

	// The manager logs through the standard logger; keep it off the screen.
	m := tween.NewManager(tween.Config{Logger: log.New(os.Stderr, "", log.LstdFlags)})
	p := &plot{manager: m, easing: easing}
	p.ticker = &tween.Ticker{Manager: m, Simulating: func() bool { return !p.editing }}

	if *scriptPath != "" {
		data, err := os.ReadFile(*scriptPath)
		if err != nil {
			log.Fatalf("read script: %v", err)
		}
		script, err := tween.LoadScript(data)
		if err != nil {
			log.Fatal(err)
		}
		p.ticker.Runner = tween.NewRunner(m, script)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatal(err)
	}
	if err := screen.Init(); err != nil {
		log.Fatal(err)
	}
	p.screen = screen
	defer screen.Fini()

	p.restart()
	p.run()
}

func (p *plot) restart() {
	p.manager.Destroy(p.marker)
	p.marker = p.manager.Create(0, 1, float32(*duration), p.easing)
	p.manager.SetPaused(p.marker, p.paused)
}

func (p *plot) run() {
	ticker := time.NewTicker(frame)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			eventChan <- p.screen.PollEvent()
		}
	}()

	last := time.Now()
	for {
		select {
		case ev := <-eventChan:
			if !p.handleInput(ev) {
				return
			}

		case now := <-ticker.C:
			dt := float32(now.Sub(last).Seconds())
			last = now
			p.ticker.Tick(dt)
			if !p.manager.IsRunning(p.marker) {
				p.restart()
			}
			p.draw()
		}
	}
}

func (p *plot) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyRight:
			p.easing = tween.Easing((int(p.easing) + 1) % len(tween.Easings()))
			p.restart()
		case tcell.KeyLeft:
			n := len(tween.Easings())
			p.easing = tween.Easing((int(p.easing) - 1 + n) % n)
			p.restart()
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return false
			case ' ':
				p.paused = !p.paused
				p.manager.SetPaused(p.marker, p.paused)
			case 'e':
				p.editing = !p.editing
			}
		}
	case *tcell.EventResize:
		p.screen.Sync()
	}
	return true
}

func (p *plot) draw() {
	p.screen.Clear()
	w, h := p.screen.Size()
	plotH := h - 4
	if *scriptPath != "" {
		plotH = h * 2 / 3
	}
	if w < 10 || plotH < 5 {
		p.screen.Show()
		return
	}

	axis := tcell.StyleDefault.Foreground(tcell.ColorGray)
	curve := tcell.StyleDefault.Foreground(tcell.ColorGreen)
	marker := tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	if p.paused {
		marker = marker.Foreground(tcell.ColorOrange)
	}

	rowOf := func(v float32) int {
		norm := (float64(v) - plotLow) / (plotHigh - plotLow)
		return 1 + int((1-norm)*float64(plotH-1))
	}
	for _, v := range []float32{0, 1} {
		y := rowOf(v)
		for x := 0; x < w; x++ {
			p.screen.SetContent(x, y, '·', nil, axis)
		}
	}
	for x := 0; x < w; x++ {
		t := float32(x) / float32(w-1)
		p.screen.SetContent(x, rowOf(p.easing.Ease(t)), '•', nil, curve)
	}

	if r, ok := p.manager.Find(p.marker); ok {
		x := int(r.Progress() * float32(w-1))
		p.screen.SetContent(x, rowOf(r.Value()), '●', nil, marker)
	}

	status := fmt.Sprintf("%s  value %.3f  live %d", p.easing, p.manager.Value(p.marker), p.manager.Len())
	if p.paused {
		status += "  [paused]"
	}
	if p.editing {
		status += "  [editing]"
	}
	p.text(0, 0, status, tcell.StyleDefault)
	p.drawScriptBars(plotH+2, w, h)
	p.text(0, h-1, "←/→ curve  space pause  e freeze  q quit", axis)
	p.screen.Show()
}

func (p *plot) drawScriptBars(top, w, h int) {
	if p.ticker.Runner == nil {
		return
	}
	bar := tcell.StyleDefault.Foreground(tcell.ColorTeal)
	y := top
	p.manager.Each(func(r tween.Record) bool {
		if r.Handle == p.marker {
			return true
		}
		if y >= h-1 {
			return false
		}
		label := fmt.Sprintf("#%-4d %-13s %8.2f ", r.Handle, r.Easing, r.Value())
		p.text(0, y, label, tcell.StyleDefault)
		n := int(r.Progress() * float32(w-len(label)-1))
		for x := 0; x < n; x++ {
			p.screen.SetContent(len(label)+x, y, '█', nil, bar)
		}
		y++
		return true
	})
}

func (p *plot) text(x, y int, s string, style tcell.Style) {
	for _, r := range s {
		p.screen.SetContent(x, y, r, nil, style)
		x++
	}
}
