// Command analysis sweeps the randomness weight dr and measures the
// NTRU decryption-failure rate per weight, rendering the sweep as a
// go-echarts HTML page plus a JSON summary. Runs are deterministic for
// a given -seed so a reported rate can be reproduced exactly.
package main

import (
	"encoding/binary"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/tuneinsight/lattigo/v4/utils"

	"NTRU-Encrypt/ntru"
	"NTRU-Encrypt/prof"
)

type sweepPoint struct {
	Dr       int     `json:"dr"`
	Runs     int     `json:"runs"`
	Failures int     `json:"failures"`
	Rate     float64 `json:"failure_rate"`
}

type sweepReport struct {
	N      int          `json:"N"`
	Q      int64        `json:"q"`
	Df     int          `json:"df"`
	Dg     int          `json:"dg"`
	Seed   int64        `json:"seed"`
	Points []sweepPoint `json:"points"`
}

func main() {
	n := flag.Int("n", ntru.DefaultN, "ring rank N")
	q := flag.Int64("q", ntru.DefaultQ, "large modulus (power of two)")
	df := flag.Int("df", ntru.DefaultDf, "private-key weight")
	dg := flag.Int("dg", ntru.DefaultDg, "public-salt weight")
	drMin := flag.Int("dr-min", 10, "first randomness weight to sweep")
	drMax := flag.Int("dr-max", 40, "last randomness weight to sweep")
	runs := flag.Int("runs", 50, "encrypt/decrypt trials per weight")
	seed := flag.Int64("seed", 1, "deterministic sweep seed")
	outDir := flag.String("out", "analysis_output", "output directory")
	flag.Parse()

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		log.Fatalf("create output dir: %v", err)
	}

	report := sweepReport{N: *n, Q: *q, Df: *df, Dg: *dg, Seed: *seed}
	for dr := *drMin; dr <= *drMax; dr++ {
		pt, err := measureFailureRate(*n, *q, *df, *dg, dr, *runs, *seed)
		if err != nil {
			log.Fatalf("dr=%d: %v", dr, err)
		}
		report.Points = append(report.Points, pt)
		fmt.Printf("dr=%-3d failures=%d/%d rate=%.4f\n", dr, pt.Failures, pt.Runs, pt.Rate)
	}

	ts := time.Now().Format("20060102_150405")
	jsonPath := filepath.Join(*outDir, fmt.Sprintf("failure_sweep_%s.json", ts))
	if err := saveJSON(jsonPath, report); err != nil {
		log.Printf("warn: save report: %v", err)
	}

	page := components.NewPage()
	page.AddCharts(newSweepChart(report))
	htmlPath := filepath.Join(*outDir, fmt.Sprintf("failure_sweep_%s.html", ts))
	f, err := os.Create(htmlPath)
	if err != nil {
		log.Fatalf("create html: %v", err)
	}
	defer f.Close()
	if err := page.Render(f); err != nil {
		log.Fatalf("render html: %v", err)
	}
	fmt.Println("Sweep page:", htmlPath)
	fmt.Println("Report JSON:", jsonPath)

	for label, st := range prof.Summary() {
		fmt.Printf("%-22s calls=%-6d total=%-12s max=%s\n", label, st.Count, st.Total, st.Max)
	}
}

// measureFailureRate generates one key per trial from a keyed PRNG and
// counts round-trip value mismatches. A mismatch is the probabilistic
// decryption failure under measurement, not an error; genuine errors
// abort the sweep.
func measureFailureRate(n int, q int64, df, dg, dr, runs int, seed int64) (sweepPoint, error) {
	par, err := ntru.NewParams(n, ntru.DefaultP, q, df, dg, dr)
	if err != nil {
		return sweepPoint{}, err
	}
	pt := sweepPoint{Dr: dr, Runs: runs}
	for trial := 0; trial < runs; trial++ {
		prng, err := utils.NewKeyedPRNG(sweepSeed(seed, dr, trial))
		if err != nil {
			return sweepPoint{}, err
		}
		smp := ntru.NewTrinarySampler(prng)
		kp, err := ntru.GenerateKeyPair(par, ntru.KeygenOpts{}, smp)
		if err != nil {
			return sweepPoint{}, err
		}
		m, err := smp.Trinary(par.N, par.N/3, par.N/3)
		if err != nil {
			return sweepPoint{}, err
		}
		m = ntru.EmbedMod(m, par.P)
		e, err := ntru.Encrypt(m, kp, smp)
		if err != nil {
			return sweepPoint{}, err
		}
		c, err := ntru.Decrypt(e, kp)
		if err != nil {
			return sweepPoint{}, err
		}
		if !c.Equal(m) {
			pt.Failures++
		}
	}
	pt.Rate = float64(pt.Failures) / float64(runs)
	return pt, nil
}

func sweepSeed(seed int64, dr, trial int) []byte {
	b := make([]byte, 24)
	binary.LittleEndian.PutUint64(b[0:], uint64(seed))
	binary.LittleEndian.PutUint64(b[8:], uint64(dr))
	binary.LittleEndian.PutUint64(b[16:], uint64(trial))
	return b
}

func newSweepChart(rep sweepReport) *charts.Line {
	xLabels := make([]string, len(rep.Points))
	items := make([]opts.LineData, len(rep.Points))
	for i, pt := range rep.Points {
		xLabels[i] = fmt.Sprintf("%d", pt.Dr)
		items[i] = opts.LineData{Value: pt.Rate}
	}
	title := fmt.Sprintf("Decryption-failure rate vs dr (N=%d, q=%d)", rep.N, rep.Q)
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: title, Subtitle: fmt.Sprintf("df=%d, dg=%d, %d runs per point", rep.Df, rep.Dg, pointRuns(rep))}),
		charts.WithInitializationOpts(opts.Initialization{PageTitle: title, Width: "1200px", Height: "600px"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	line.SetXAxis(xLabels).
		AddSeries("failure rate", items).
		SetSeriesOptions(charts.WithLabelOpts(opts.Label{Show: opts.Bool(false)}))
	return line
}

func pointRuns(rep sweepReport) int {
	if len(rep.Points) == 0 {
		return 0
	}
	return rep.Points[0].Runs
}

func saveJSON(path string, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}
