package dronelbl

// Label statistics over a directory of YOLO label files.

import (
	"fmt"
	"io"
	"math"
	"sort"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"gonum.org/v1/gonum/stat"
)

// BoxSize is a normalized bounding box size.
type BoxSize struct {
	Width  float64
	Height float64
}

// LabelStats summarizes the YOLO labels of a split.
type LabelStats struct {
	Files         int                   // Number of label files read.
	Total         int                   // Number of objects with a known class.
	ClassCounts   [NumClasses]int       // Objects per class id.
	BoxSizes      []BoxSize             // Sizes of all objects.
	ClassBoxSizes [NumClasses][]BoxSize // Sizes per class id.
}

// Percentage is the share of class among all objects, in percent.
func (s *LabelStats) Percentage(class int) float64 {
	if s.Total == 0 || class < 0 || class >= NumClasses {
		return 0
	}
	return float64(s.ClassCounts[class]) / float64(s.Total) * 100
}

// add records a single label line. Lines with an unknown class are ignored.
func (s *LabelStats) add(line string) error {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return nil
	}
	class, err := strconv.Atoi(parts[0])
	if err != nil {
		return fmt.Errorf("unexpected class id in %q: %w", line, err)
	}
	if class < 0 || class >= NumClasses {
		return nil
	}
	if len(parts) < 5 {
		return fmt.Errorf("insufficient tokens in %q", line)
	}
	width, err := strconv.ParseFloat(parts[3], 64)
	if err != nil {
		return fmt.Errorf("unexpected width in %q: %w", line, err)
	}
	height, err := strconv.ParseFloat(parts[4], 64)
	if err != nil {
		return fmt.Errorf("unexpected height in %q: %w", line, err)
	}
	if !isUnitValue(width) || !isUnitValue(height) {
		return fmt.Errorf("box size out of range in %q", line)
	}

	size := BoxSize{Width: width, Height: height}
	s.ClassCounts[class]++
	s.Total++
	s.BoxSizes = append(s.BoxSizes, size)
	s.ClassBoxSizes[class] = append(s.ClassBoxSizes[class], size)
	return nil
}

// isUnitValue reports whether v is a finite number in [0, 1].
func isUnitValue(v float64) bool {
	return !math.IsNaN(v) && v >= 0 && v <= 1
}

// CollectLabelStats reads all YOLO label files in labelDir. Files and lines that cannot be read
// are logged and skipped.
func CollectLabelStats(labelDir string) (*LabelStats, error) {
	files, err := filesByExtInDir(labelDir, ".txt")
	if err != nil {
		return nil, err
	}
	log.Infof("Collecting statistics from %d label files", len(files))

	stats := &LabelStats{}
	for _, path := range files {
		lines, err := readLines(path)
		if err != nil {
			log.Warnf("Error processing %q: %v", path, err)
			continue
		}
		stats.Files++
		for _, line := range lines {
			if err := stats.add(line); err != nil {
				log.Warnf("Error processing %q: %v", path, err)
			}
		}
	}

	return stats, nil
}

// WriteSummaryTable writes the per class object counts and shares as a table to w.
func (s *LabelStats) WriteSummaryTable(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "Class\tCount\tShare")
	for i, name := range classNames {
		fmt.Fprintf(tw, "%s\t%s\t%.2f%%\n", name, humanize.Comma(int64(s.ClassCounts[i])),
			s.Percentage(i))
	}
	fmt.Fprintf(tw, "Total\t%s\t100.00%%\n", humanize.Comma(int64(s.Total)))
	return tw.Flush()
}

// SizeSummary describes the distribution of one normalized box dimension.
type SizeSummary struct {
	Mean   float64
	StdDev float64
	Median float64
	P90    float64
}

func summarize(x []float64) SizeSummary {
	if len(x) == 0 {
		return SizeSummary{}
	}
	sort.Float64s(x)
	var sum SizeSummary
	sum.Mean, sum.StdDev = stat.MeanStdDev(x, nil)
	if len(x) == 1 {
		sum.StdDev = 0
	}
	sum.Median = stat.Quantile(0.5, stat.Empirical, x, nil)
	sum.P90 = stat.Quantile(0.9, stat.Empirical, x, nil)
	return sum
}

// SizeSummaries returns the width and height distributions over all boxes.
func (s *LabelStats) SizeSummaries() (width, height SizeSummary) {
	widths := make([]float64, len(s.BoxSizes))
	heights := make([]float64, len(s.BoxSizes))
	for i, b := range s.BoxSizes {
		widths[i] = b.Width
		heights[i] = b.Height
	}
	return summarize(widths), summarize(heights)
}
