package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	gojson "github.com/goccy/go-json"

	"github.com/joshuapare/varkit/internal/atomicfile"
)

const ownImpl = "varkit"

// BenchmarkResult represents a parsed benchmark result.
type BenchmarkResult struct {
	Name        string
	Operation   string
	Size        string
	Impl        string // "varkit" or the reference library name
	Iterations  int
	NsPerOp     float64
	BytesPerOp  int64
	AllocsPerOp int64
}

// ComparisonResult pairs the varkit result with a reference library on the same input.
type ComparisonResult struct {
	Operation    string
	Size         string
	Reference    string
	VarkitNs     float64
	RefNs        float64
	Speedup      float64
	VarkitMem    int64
	RefMem       int64
	VarkitAllocs int64
	RefAllocs    int64
	VarkitOnly   bool
}

var (
	inputFile = flag.String(
		"input",
		"",
		"Input file with benchmark output (stdin if not specified)",
	)
	outputFile = flag.String("output", "", "Output markdown file (stdout if not specified)")
	quiet      = flag.Bool("quiet", false, "Suppress progress output")
)

func main() {
	flag.Parse()

	var scanner *bufio.Scanner
	if *inputFile != "" {
		f, err := os.Open(*inputFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening input file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		scanner = bufio.NewScanner(f)
	} else {
		scanner = bufio.NewScanner(os.Stdin)
	}

	results := parseBenchmarks(scanner)
	if !*quiet {
		fmt.Fprintf(os.Stderr, "Parsed %d benchmark results\n", len(results))
	}

	comparisons := generateComparisons(results)
	if !*quiet {
		fmt.Fprintf(os.Stderr, "Generated %d comparisons\n", len(comparisons))
	}

	report := generateMarkdownReport(comparisons, time.Now())

	if *outputFile == "" {
		fmt.Fprint(os.Stdout, report)
		return
	}
	if err := atomicfile.WriteFile(*outputFile, []byte(report), atomicfile.Options{Perm: 0o644}); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing output file: %v\n", err)
		os.Exit(1)
	}
	if !*quiet {
		fmt.Fprintf(os.Stderr, "Report written to %s\n", *outputFile)
	}
}

// BenchmarkDecodeBenc/varkit/small-8    10000    12450 ns/op    2.1 MB/s    4096 B/op    8 allocs/op
var benchmarkRegex = regexp.MustCompile(
	`^(Benchmark\S+)\s+(\d+)\s+([\d.]+)\s+ns/op(?:\s+[\d.]+\s+MB/s)?(?:\s+(\d+)\s+B/op)?(?:\s+(\d+)\s+allocs/op)?`,
)

func parseBenchmarks(scanner *bufio.Scanner) []BenchmarkResult {
	var results []BenchmarkResult

	for scanner.Scan() {
		line := scanner.Text()

		// go test -json wraps each line in an event
		var event struct {
			Output string `json:"Output"`
		}
		if err := gojson.Unmarshal([]byte(line), &event); err == nil && event.Output != "" {
			line = event.Output
		}

		if r, ok := parseLine(strings.TrimSpace(line)); ok {
			results = append(results, r)
		}
	}

	return results
}

func parseLine(line string) (BenchmarkResult, bool) {
	matches := benchmarkRegex.FindStringSubmatch(line)
	if matches == nil {
		return BenchmarkResult{}, false
	}

	r := BenchmarkResult{Name: matches[1]}
	r.Iterations, _ = strconv.Atoi(matches[2])
	r.NsPerOp, _ = strconv.ParseFloat(matches[3], 64)
	if matches[4] != "" {
		r.BytesPerOp, _ = strconv.ParseInt(matches[4], 10, 64)
	}
	if matches[5] != "" {
		r.AllocsPerOp, _ = strconv.ParseInt(matches[5], 10, 64)
	}

	// Benchmark<Op>/<impl>/<size>-<procs> or Benchmark<Op>_Varkit-<procs>
	parts := strings.Split(stripProcs(r.Name), "/")
	r.Operation = strings.TrimPrefix(parts[0], "Benchmark")
	switch len(parts) {
	case 1:
		if idx := strings.Index(r.Operation, "_"); idx > 0 {
			r.Operation = r.Operation[:idx]
		}
		r.Impl = ownImpl
	case 2:
		r.Impl = parts[1]
	default:
		r.Impl = parts[1]
		r.Size = parts[len(parts)-1]
	}
	return r, true
}

func stripProcs(name string) string {
	dashIdx := strings.LastIndex(name, "-")
	if dashIdx <= 0 {
		return name
	}
	if _, err := strconv.Atoi(name[dashIdx+1:]); err != nil {
		return name
	}
	return name[:dashIdx]
}

func generateComparisons(results []BenchmarkResult) []ComparisonResult {
	type key struct {
		operation string
		size      string
	}

	grouped := make(map[key]map[string]BenchmarkResult)
	for _, result := range results {
		k := key{result.Operation, result.Size}
		if grouped[k] == nil {
			grouped[k] = make(map[string]BenchmarkResult)
		}
		grouped[k][result.Impl] = result
	}

	var comparisons []ComparisonResult
	for k, impls := range grouped {
		own, ok := impls[ownImpl]
		if !ok {
			continue
		}

		paired := false
		for name, ref := range impls {
			if name == ownImpl {
				continue
			}
			paired = true
			comparisons = append(comparisons, ComparisonResult{
				Operation:    k.operation,
				Size:         k.size,
				Reference:    name,
				VarkitNs:     own.NsPerOp,
				RefNs:        ref.NsPerOp,
				Speedup:      ref.NsPerOp / own.NsPerOp,
				VarkitMem:    own.BytesPerOp,
				RefMem:       ref.BytesPerOp,
				VarkitAllocs: own.AllocsPerOp,
				RefAllocs:    ref.AllocsPerOp,
			})
		}
		if !paired {
			comparisons = append(comparisons, ComparisonResult{
				Operation:    k.operation,
				Size:         k.size,
				VarkitNs:     own.NsPerOp,
				VarkitMem:    own.BytesPerOp,
				VarkitAllocs: own.AllocsPerOp,
				VarkitOnly:   true,
			})
		}
	}

	sort.Slice(comparisons, func(i, j int) bool {
		a, b := comparisons[i], comparisons[j]
		if a.Operation != b.Operation {
			return a.Operation < b.Operation
		}
		if sizeRank(a.Size) != sizeRank(b.Size) {
			return sizeRank(a.Size) < sizeRank(b.Size)
		}
		return a.Reference < b.Reference
	})

	return comparisons
}

func sizeRank(size string) int {
	switch size {
	case "small":
		return 0
	case "medium":
		return 1
	case "large":
		return 2
	}
	return 3
}

func generateMarkdownReport(comparisons []ComparisonResult, now time.Time) string {
	var sb strings.Builder

	sb.WriteString("# Benchmark Report\n\n")
	fmt.Fprintf(&sb, "Generated: %s\n\n", now.Format("2006-01-02 15:04:05"))

	faster, slower, only := 0, 0, 0
	totalSpeedup := 0.0
	for _, comp := range comparisons {
		if comp.VarkitOnly {
			only++
			continue
		}
		if comp.Speedup > 1.0 {
			faster++
		} else if comp.Speedup < 1.0 {
			slower++
		}
		totalSpeedup += comp.Speedup
	}

	comparable := len(comparisons) - only
	avgSpeedup := 0.0
	if comparable > 0 {
		avgSpeedup = totalSpeedup / float64(comparable)
	}

	sb.WriteString("## Summary\n\n")
	fmt.Fprintf(&sb, "- **Total benchmarks**: %d\n", len(comparisons))
	fmt.Fprintf(&sb, "- **Comparable** (paired with a reference library): %d\n", comparable)
	if comparable > 0 {
		fmt.Fprintf(&sb, "  - varkit faster: %d (%.1f%%)\n", faster, float64(faster)/float64(comparable)*100)
		fmt.Fprintf(&sb, "  - reference faster: %d (%.1f%%)\n", slower, float64(slower)/float64(comparable)*100)
		fmt.Fprintf(&sb, "  - Average speedup: **%.2fx**\n", avgSpeedup)
	}
	fmt.Fprintf(&sb, "- **varkit-only**: %d\n\n", only)

	sb.WriteString("## Detailed Results\n\n")
	sb.WriteString("| Operation | Size | Reference | varkit (ns/op) | ref (ns/op) | Speedup | Memory (B/op) | Allocs |\n")
	sb.WriteString("|-----------|------|-----------|----------------|-------------|---------|---------------|--------|\n")

	for _, comp := range comparisons {
		if comp.VarkitOnly {
			fmt.Fprintf(&sb, "| %s | %s | *N/A* | %s | *N/A* | *varkit only* | %s | %s |\n",
				comp.Operation,
				comp.Size,
				formatNumber(comp.VarkitNs),
				formatBytes(comp.VarkitMem),
				formatNumber(float64(comp.VarkitAllocs)),
			)
			continue
		}

		indicator := "✓"
		speedupStyle := "**"
		if comp.Speedup < 1.0 {
			indicator = "✗"
			speedupStyle = ""
		}

		fmt.Fprintf(&sb, "| %s | %s | %s | %s | %s | %s%.2fx%s %s | %s vs %s%s | %s vs %s%s |\n",
			comp.Operation,
			comp.Size,
			comp.Reference,
			formatNumber(comp.VarkitNs),
			formatNumber(comp.RefNs),
			speedupStyle,
			comp.Speedup,
			speedupStyle,
			indicator,
			formatBytes(comp.VarkitMem),
			formatBytes(comp.RefMem),
			compareIndicator(comp.VarkitMem, comp.RefMem),
			formatNumber(float64(comp.VarkitAllocs)),
			formatNumber(float64(comp.RefAllocs)),
			compareIndicator(comp.VarkitAllocs, comp.RefAllocs),
		)
	}
	sb.WriteString("\n")

	sb.WriteString("## Performance by Category\n\n")
	categories := categorizeOperations(comparisons)
	names := make([]string, 0, len(categories))
	for name := range categories {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, category := range names {
		comps := categories[category]
		if len(comps) == 0 {
			continue
		}

		avg, count := 0.0, 0
		for _, comp := range comps {
			if !comp.VarkitOnly {
				avg += comp.Speedup
				count++
			}
		}
		if count == 0 {
			fmt.Fprintf(&sb, "- **%s**: varkit-only\n", category)
			continue
		}
		avg /= float64(count)
		status := "✓"
		if avg < 1.0 {
			status = "✗"
		}
		fmt.Fprintf(&sb, "- %s **%s**: %.2fx average speedup\n", status, category, avg)
	}
	sb.WriteString("\n")

	sb.WriteString("## Notes\n\n")
	sb.WriteString("- **Speedup > 1.0**: varkit is faster ✓\n")
	sb.WriteString("- **Speedup < 1.0**: the reference library is faster ✗\n")
	sb.WriteString("- **Memory comparison**: Lower is better\n")
	sb.WriteString("- **Allocations**: Fewer is better\n")

	return sb.String()
}

func compareIndicator(own, ref int64) string {
	switch {
	case own < ref:
		return " ✓"
	case own > ref:
		return " ✗"
	}
	return ""
}

func categorizeOperations(comparisons []ComparisonResult) map[string][]ComparisonResult {
	categories := map[string][]ComparisonResult{
		"Bencode": {},
		"JSON":    {},
		"Dict":    {},
		"Other":   {},
	}

	for _, comp := range comparisons {
		op := strings.ToLower(comp.Operation)
		switch {
		case strings.Contains(op, "benc"):
			categories["Bencode"] = append(categories["Bencode"], comp)
		case strings.Contains(op, "json"):
			categories["JSON"] = append(categories["JSON"], comp)
		case strings.Contains(op, "dict"):
			categories["Dict"] = append(categories["Dict"], comp)
		default:
			categories["Other"] = append(categories["Other"], comp)
		}
	}

	return categories
}

func formatNumber(n float64) string {
	if n >= 1000000 {
		return fmt.Sprintf("%.2fM", n/1000000)
	} else if n >= 1000 {
		return fmt.Sprintf("%.1fK", n/1000)
	}
	return fmt.Sprintf("%.0f", n)
}

func formatBytes(b int64) string {
	if b >= 1024*1024 {
		return fmt.Sprintf("%.2fMB", float64(b)/(1024*1024))
	} else if b >= 1024 {
		return fmt.Sprintf("%.1fKB", float64(b)/1024)
	}
	return fmt.Sprintf("%dB", b)
}
