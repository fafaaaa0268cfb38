//go:build analysis

// Command analysis times the transform and batch kernels across a sweep of
// power-of-two domain sizes and renders the results as an HTML chart page
// plus a JSON report.
//
// Build and run with the analysis tag:
//
//	go run -tags analysis ./cmd/analysis -sizes 256,1024,4096 -reps 7 -out out
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math/big"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"STARK-Field/gf"
	"STARK-Field/poly"
	"STARK-Field/prof"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// goldilocks = 2^64 - 2^32 + 1, FFT-friendly up to order 2^32.
const goldilocks = "18446744069414584321"

type sizeReport struct {
	Size       int                `json:"size"`
	MeanMillis map[string]float64 `json:"mean_ms"`
	MinMillis  map[string]float64 `json:"min_ms"`
	MaxMillis  map[string]float64 `json:"max_ms"`
}

func main() {
	sizesFlag := flag.String("sizes", "256,512,1024,2048", "comma-separated power-of-two domain sizes")
	reps := flag.Int("reps", 5, "repetitions per kernel and size")
	outDir := flag.String("out", "analysis_out", "output directory for HTML and JSON")
	flag.Parse()

	sizes, err := parseSizes(*sizesFlag)
	if err != nil {
		log.Fatalf("parsing -sizes: %v", err)
	}
	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		log.Fatalf("creating output dir: %v", err)
	}

	p, _ := new(big.Int).SetString(goldilocks, 10)
	field, err := gf.NewPrimeField(p)
	if err != nil {
		log.Fatalf("building field: %v", err)
	}

	reports := make([]sizeReport, 0, len(sizes))
	for _, k := range sizes {
		rep, err := sweepSize(field, k, *reps)
		if err != nil {
			log.Fatalf("size %d: %v", k, err)
		}
		reports = append(reports, rep)
		log.Printf("size %5d: eval %.3fms interp %.3fms invmany %.3fms",
			k, rep.MeanMillis["eval"], rep.MeanMillis["interpolate"], rep.MeanMillis["invmany"])
	}

	if err := writeJSON(filepath.Join(*outDir, "report.json"), reports); err != nil {
		log.Fatalf("writing report: %v", err)
	}
	if err := writeCharts(filepath.Join(*outDir, "report.html"), reports); err != nil {
		log.Fatalf("writing charts: %v", err)
	}
	log.Printf("wrote %s and %s", filepath.Join(*outDir, "report.json"), filepath.Join(*outDir, "report.html"))
}

func parseSizes(s string) ([]int, error) {
	var out []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		k, err := strconv.Atoi(part)
		if err != nil {
			return nil, err
		}
		if k < 2 || k&(k-1) != 0 {
			return nil, fmt.Errorf("size %d is not a power of two >= 2", k)
		}
		out = append(out, k)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no sizes given")
	}
	return out, nil
}

// sweepSize times eval, interpolate and batch inversion at domain size k.
func sweepSize(field *gf.PrimeField, k, reps int) (sizeReport, error) {
	root, err := field.RootOfUnity(uint64(k))
	if err != nil {
		return sizeReport{}, err
	}
	roots, err := field.PowerCycle(root)
	if err != nil {
		return sizeReport{}, err
	}
	coeffs, err := field.Prng([]byte(fmt.Sprintf("analysis-%d", k)), k)
	if err != nil {
		return sizeReport{}, err
	}
	for i, v := range coeffs {
		if v.Sign() == 0 {
			coeffs[i] = big.NewInt(1)
		}
	}

	var values []*big.Int
	for rep := 0; rep < reps; rep++ {
		start := time.Now()
		values, err = poly.EvalAtRoots(field, poly.Poly(coeffs), roots)
		prof.Track(start, "eval")
		if err != nil {
			return sizeReport{}, err
		}

		start = time.Now()
		_, err = poly.InterpolateRoots(field, roots, values)
		prof.Track(start, "interpolate")
		if err != nil {
			return sizeReport{}, err
		}

		start = time.Now()
		_, err = field.InvMany(coeffs)
		prof.Track(start, "invmany")
		if err != nil {
			return sizeReport{}, err
		}
	}

	labels, durs := prof.ByLabel(prof.SnapshotAndReset())
	rep := sizeReport{
		Size:       k,
		MeanMillis: map[string]float64{},
		MinMillis:  map[string]float64{},
		MaxMillis:  map[string]float64{},
	}
	for _, label := range labels {
		mean, minv, maxv := summarize(durs[label])
		rep.MeanMillis[label] = mean
		rep.MinMillis[label] = minv
		rep.MaxMillis[label] = maxv
	}
	return rep, nil
}

func summarize(ds []time.Duration) (mean, minv, maxv float64) {
	if len(ds) == 0 {
		return 0, 0, 0
	}
	minv = ds[0].Seconds() * 1000
	maxv = minv
	var total float64
	for _, d := range ds {
		ms := d.Seconds() * 1000
		total += ms
		if ms < minv {
			minv = ms
		}
		if ms > maxv {
			maxv = ms
		}
	}
	return total / float64(len(ds)), minv, maxv
}

func writeJSON(path string, reports []sizeReport) error {
	buf, err := json.MarshalIndent(reports, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, buf, 0o644)
}

func writeCharts(path string, reports []sizeReport) error {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Transform kernel timings",
			Subtitle: fmt.Sprintf("GF(p), p = %s", goldilocks),
		}),
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "field analysis", Width: "1200px", Height: "600px"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)

	xAxis := make([]string, len(reports))
	for i, r := range reports {
		xAxis[i] = strconv.Itoa(r.Size)
	}
	line.SetXAxis(xAxis)
	for _, label := range []string{"eval", "interpolate", "invmany"} {
		series := make([]opts.LineData, len(reports))
		for i, r := range reports {
			series[i] = opts.LineData{Value: r.MeanMillis[label]}
		}
		line.AddSeries(label, series)
	}

	page := components.NewPage()
	page.AddCharts(line)
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return page.Render(f)
}
