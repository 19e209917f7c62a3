package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"time"

	"github.com/jamiealquiza/tachymeter"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/rubenromani/ant"
)

var (
	fanouts = []int{1, 10, 100, 1_000}
	depths  = []int{1, 10, 100, 1_000}
	iters   = 100
)

func main() {
	flag.Parse()

	f, err := os.Create("default.pgo")
	if err != nil {
		log.Fatal(err)
	}
	pprof.StartCPUProfile(f)
	defer pprof.StopCPUProfile()

	log.Printf("warming up")
	benchmarkFanout(false)

	benchmarkFanout(true)
	benchmarkReentrantChains(true)
}

func benchmarkFanout(shouldRender bool) {
	tbl := table.NewWriter()
	tbl.SetTitle("Emit Fan-Out")
	tbl.SetOutputMirror(os.Stdout)
	tbl.AppendHeader(table.Row{"benchmark", "avg", "min", "p75", "p99", "max"})

	for _, fanout := range fanouts {
		tach := tachymeter.New(&tachymeter.Config{Size: iters})

		sig := ant.NewSignal1[int]()
		sink := 0
		for i := 0; i < fanout; i++ {
			sig.Connect(func(v int) {
				sink += v
			})
		}

		for i := 0; i < iters; i++ {
			start := time.Now()
			sig.Emit(i)
			tach.AddTime(time.Since(start))
		}
		sig.DisconnectAll()

		calc := tach.Calc()
		tbl.AppendRows([]table.Row{
			{
				fmt.Sprintf("emit to %d slots", fanout),
				calc.Time.Avg,
				calc.Time.Min,
				calc.Time.P75,
				calc.Time.P99,
				calc.Time.Max,
			},
		})
	}

	if shouldRender {
		tbl.Render()
	}
}

func benchmarkReentrantChains(shouldRender bool) {
	tbl := table.NewWriter()
	tbl.SetTitle("Reentrant Emission Chains")
	tbl.SetOutputMirror(os.Stdout)
	tbl.AppendHeader(table.Row{"benchmark", "avg", "min", "p75", "p99", "max"})

	for _, depth := range depths {
		tach := tachymeter.New(&tachymeter.Config{Size: iters})

		// Each invocation re-emits until the chain bottoms out; the shared
		// queue keeps the call stack flat no matter the depth.
		sig := ant.NewSignal1[int]()
		sig.Connect(func(v int) {
			if v > 0 {
				sig.Emit(v - 1)
			}
		})

		for i := 0; i < iters; i++ {
			start := time.Now()
			sig.Emit(depth)
			tach.AddTime(time.Since(start))
		}
		sig.DisconnectAll()

		calc := tach.Calc()
		tbl.AppendRows([]table.Row{
			{
				fmt.Sprintf("chain of %d emissions", depth),
				calc.Time.Avg,
				calc.Time.Min,
				calc.Time.P75,
				calc.Time.P99,
				calc.Time.Max,
			},
		})
	}

	if shouldRender {
		tbl.Render()
	}
}
