package dronelbl

// Conversion of VisDrone dataset splits to YOLO label files.
//
// Dataset layout below the root directory:
//
//	annotations/<split>/<name>.txt  VisDrone annotations (input)
//	images/<split>/<name>.jpg       images (input)
//	labels/<split>/<name>.txt       YOLO labels (output)

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// DefaultSplits are the dataset splits converted when none are given.
var DefaultSplits = []string{"train", "val", "test"}

// FileStatus is the outcome of converting a single annotation file.
type FileStatus int

// The possible outcomes of converting an annotation file.
const (
	StatusWritten                FileStatus = iota // A label file was written.
	StatusNoOutput                                 // No record survived, nothing written.
	StatusSkippedMissingImage                      // The image does not exist.
	StatusSkippedUnreadableImage                   // The image dimensions could not be read.
	StatusSkippedReadError                         // The annotation file could not be read.
	StatusSkippedWriteError                        // The label file could not be written.
)

var fileStatusNames = [...]string{"written", "no-output", "missing-image", "unreadable-image",
	"read-error", "write-error"}

func (s FileStatus) String() string {
	if int(s) < len(fileStatusNames) {
		return fileStatusNames[s]
	}
	return fmt.Sprintf("FileStatus(%d)", int(s))
}

// MarshalText implements encoding.TextMarshaler, so that FileStatus map keys serialize by name.
func (s FileStatus) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Skipped reports whether the file was skipped due to an error.
func (s FileStatus) Skipped() bool {
	return s >= StatusSkippedMissingImage
}

// DropCounts counts dropped annotation records by reason.
type DropCounts struct {
	Malformed   int `json:"malformed"`
	Ignored     int `json:"ignored"`
	ZeroScore   int `json:"zero_score"`
	ClassRange  int `json:"class_out_of_range"`
	OutOfBounds int `json:"out_of_bounds"`
}

// Total is the sum of all dropped records.
func (d DropCounts) Total() int {
	return d.Malformed + d.Ignored + d.ZeroScore + d.ClassRange + d.OutOfBounds
}

func (d *DropCounts) add(o DropCounts) {
	d.Malformed += o.Malformed
	d.Ignored += o.Ignored
	d.ZeroScore += o.ZeroScore
	d.ClassRange += o.ClassRange
	d.OutOfBounds += o.OutOfBounds
}

// count records err as a drop reason.
func (d *DropCounts) count(err error) {
	switch {
	case errors.Is(err, ErrMalformedLine):
		d.Malformed++
	case errors.Is(err, ErrIgnoredRegion):
		d.Ignored++
	case errors.Is(err, ErrZeroScore):
		d.ZeroScore++
	case errors.Is(err, ErrClassOutOfRange):
		d.ClassRange++
	case errors.Is(err, ErrBoxOutOfBounds):
		d.OutOfBounds++
	}
}

// FileResult describes the conversion of one annotation file.
type FileResult struct {
	AnnotationPath string
	LabelPath      string // Empty unless Status is StatusWritten.
	Status         FileStatus
	Written        int // Number of label lines written.
	Dropped        DropCounts
}

// SplitResult aggregates the conversion results of a split.
type SplitResult struct {
	Split    string             `json:"split"`
	Files    int                `json:"files"`
	Statuses map[FileStatus]int `json:"statuses"`
	Written  int                `json:"records_written"`
	Dropped  DropCounts         `json:"records_dropped"`
	Missing  bool               `json:"missing,omitempty"` // No annotation dir for the split.
}

func (r *SplitResult) add(f FileResult) {
	if r.Statuses == nil {
		r.Statuses = make(map[FileStatus]int)
	}
	r.Files++
	r.Statuses[f.Status]++
	r.Written += f.Written
	r.Dropped.add(f.Dropped)
}

// DatasetResult aggregates the conversion results of all splits.
type DatasetResult struct {
	RunID  string        `json:"run_id"`
	Root   string        `json:"root"`
	Splits []SplitResult `json:"splits"`
}

// Converter converts VisDrone annotations to YOLO labels. The zero value is ready to use.
type Converter struct {
	// ImageExt is the extension of the images matching annotation files. Defaults to ".jpg".
	ImageExt string

	log logrus.FieldLogger
}

func (c *Converter) imageExt() string {
	if c.ImageExt == "" {
		return ".jpg"
	}
	return c.ImageExt
}

func (c *Converter) logger() logrus.FieldLogger {
	if c.log == nil {
		return log
	}
	return c.log
}

// ParseSplits parses a comma separated list of split names. Names are trimmed and empty names
// dropped; an empty result means DefaultSplits.
func ParseSplits(list string) []string {
	var splits []string
	for _, s := range strings.Split(list, ",") {
		if s = strings.TrimSpace(s); s != "" {
			splits = append(splits, s)
		}
	}
	return splits
}

// ConvertDataset converts the given splits (DefaultSplits if empty) of the dataset at root. Splits
// without an annotation directory are skipped. Only failures to create an output directory are
// returned as errors; per file problems are logged and reflected in the result.
func (c *Converter) ConvertDataset(root string, splits []string) (DatasetResult, error) {
	if len(splits) == 0 {
		splits = DefaultSplits
	}

	runID := uuid.NewString()
	run := *c
	run.log = c.logger().WithFields(logrus.Fields{"run_id": runID, "root": root})

	result := DatasetResult{RunID: runID, Root: root}
	for _, split := range splits {
		r, err := run.ConvertSplit(root, split)
		if err != nil {
			return result, err
		}
		result.Splits = append(result.Splits, r)
	}

	return result, nil
}

// ConvertSplit converts all annotation files of a single split.
func (c *Converter) ConvertSplit(root, split string) (SplitResult, error) {
	result := SplitResult{Split: split, Statuses: make(map[FileStatus]int)}
	l := c.logger().WithField("split", split)

	annotationDir := filepath.Join(root, "annotations", split)
	if info, err := os.Stat(annotationDir); err != nil || !info.IsDir() {
		l.Infof("No annotation directory %q, skipping split", annotationDir)
		result.Missing = true
		return result, nil
	}

	imageDir := filepath.Join(root, "images", split)
	labelDir := filepath.Join(root, "labels", split)
	if err := os.MkdirAll(labelDir, 0755); err != nil {
		return result, fmt.Errorf("failed to create label directory %q: %w", labelDir, err)
	}

	files, err := filesByExtInDir(annotationDir, ".txt")
	if err != nil {
		l.Warnf("Cannot list annotations, skipping split: %v", err)
		return result, nil
	}
	l.Infof("Converting %d annotation files", len(files))

	run := *c
	run.log = l
	for i, path := range files {
		r := run.ConvertFile(path, imageDir, labelDir)
		result.add(r)
		l.WithFields(logrus.Fields{"file": filepath.Base(path), "status": r.Status}).
			Debugf("Converted %d/%d", i+1, len(files))
	}

	l.Infof("Wrote %d label files with %d records, dropped %d records, skipped %d files",
		result.Statuses[StatusWritten], result.Written, result.Dropped.Total(), result.skipped())

	return result, nil
}

func (r SplitResult) skipped() int {
	n := 0
	for s, count := range r.Statuses {
		if s.Skipped() {
			n += count
		}
	}
	return n
}

// ConvertFile converts the VisDrone annotation file at annotationPath into a YOLO label file of
// the same name in labelDir, using the image of the same base name in imageDir for normalization.
//
// The label file is only written if at least one record survives conversion, replacing any
// existing file.
func (c *Converter) ConvertFile(annotationPath, imageDir, labelDir string) FileResult {
	result := FileResult{AnnotationPath: annotationPath}
	name := filepath.Base(annotationPath)
	baseNoExt := strings.TrimSuffix(name, filepath.Ext(name))
	l := c.logger()

	// Find the corresponding image.
	imagePath := filepath.Join(imageDir, baseNoExt+c.imageExt())
	if _, err := os.Stat(imagePath); errors.Is(err, fs.ErrNotExist) {
		l.Warnf("Image %q not found, skipping annotation %q", imagePath, name)
		result.Status = StatusSkippedMissingImage
		return result
	} else if err != nil {
		l.Warnf("Error accessing image %q, skipping annotation %q: %v", imagePath, name, err)
		result.Status = StatusSkippedUnreadableImage
		return result
	}

	img, _, err := decodeImageConfig(imagePath)
	if err != nil {
		l.Warnf("Error opening image %q, skipping annotation %q: %v", imagePath, name, err)
		result.Status = StatusSkippedUnreadableImage
		return result
	}
	if img.Width <= 0 || img.Height <= 0 {
		l.Warnf("Image %q has no pixels, skipping annotation %q", imagePath, name)
		result.Status = StatusSkippedUnreadableImage
		return result
	}

	lines, err := readLines(annotationPath)
	if err != nil {
		l.Warnf("Error processing annotation %q, skipping: %v", name, err)
		result.Status = StatusSkippedReadError
		return result
	}

	annotations := make([]YOLOAnnotation, 0, len(lines))
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		a, err := ConvertRecord(line, img.Width, img.Height)
		if err != nil {
			if errors.Is(err, ErrMalformedLine) {
				l.Debugf("Skipping line in %q: %v", name, err)
			}
			result.Dropped.count(err)
			continue
		}
		annotations = append(annotations, a)
	}

	labelPath := filepath.Join(labelDir, name)
	written, err := WriteYOLO(labelPath, annotations)
	if err != nil {
		l.Warnf("Failed to write labels for %q: %v", name, err)
		result.Status = StatusSkippedWriteError
		return result
	}
	if !written {
		result.Status = StatusNoOutput
		return result
	}

	result.Status = StatusWritten
	result.LabelPath = labelPath
	result.Written = len(annotations)
	return result
}
