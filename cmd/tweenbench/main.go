// Profiling:
// go build ./cmd/tweenbench
// ./tweenbench -profile cpu
// go tool pprof -http=":8000" ./tweenbench cpu.pprof

package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"time"

	"github.com/phanxgames/tween"
	"github.com/pkg/profile"
)

var (
	tweens = flag.Int("tweens", 10000, "tweens kept alive per tick")
	ticks  = flag.Int("ticks", 600, "ticks to simulate")
	mode   = flag.String("profile", "", "profile to record: cpu|mem|allocs (empty for none)")
	churn  = flag.Float64("churn", 0.05, "fraction of live tweens destroyed and recreated each tick")
)

func main() {
	flag.Parse()

	switch *mode {
	case "":
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	case "allocs":
		defer profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	default:
		log.Fatalf("unknown profile %q", *mode)
	}

	start := time.Now()
	created, expired := run(*tweens, *ticks, *churn)
	elapsed := time.Since(start)

	fmt.Printf("tweens: %d  ticks: %d  created: %d  expired: %d\n", *tweens, *ticks, created, expired)
	fmt.Printf("total: %v  per tick: %v\n", elapsed, elapsed/time.Duration(max(*ticks, 1)))
}

func run(live, ticks int, churn float64) (created, expired int) {
	m := tween.NewManager(tween.Config{})
	easings := tween.Easings()
	handles := make([]tween.Handle, 0, live)

	spawn := func() {
		e := easings[rand.IntN(len(easings))]
		handles = append(handles, m.Create(0, 100, 0.5+rand.Float32()*2, e))
		created++
	}
	for range live {
		spawn()
	}

	const dt = tween.DefaultDelta
	var sink float32
	for range ticks {
		// Scripts poll their handles, some stop early, then the tick runs.
		kept := handles[:0]
		for _, h := range handles {
			if !m.IsRunning(h) {
				expired++
				continue
			}
			sink += m.Value(h)
			if rand.Float64() < churn {
				m.Destroy(h)
				continue
			}
			kept = append(kept, h)
		}
		handles = kept
		for len(handles) < live {
			spawn()
		}
		m.Advance(dt)
	}
	_ = sink
	return created, expired
}
