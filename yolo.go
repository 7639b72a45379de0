package dronelbl

// YOLO specific functionality.

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// YOLOAnnotation is a single annotation within a YOLO label file. All coordinates are normalized
// by the image width and height.
type YOLOAnnotation struct {
	ClassID int
	CenterX float64
	CenterY float64
	Width   float64
	Height  float64
}

// String formats the annotation as a YOLO label line, without the line break.
func (a YOLOAnnotation) String() string {
	return fmt.Sprintf("%d %.6f %.6f %.6f %.6f", a.ClassID, a.CenterX, a.CenterY, a.Width, a.Height)
}

func (a YOLOAnnotation) inUnitRange() bool {
	for _, v := range [4]float64{a.CenterX, a.CenterY, a.Width, a.Height} {
		if v < 0 || v > 1 {
			return false
		}
	}
	return true
}

// Coords returns the absolute x1, y1, x2, y2 corner coordinates for an image of the given size.
func (a YOLOAnnotation) Coords(imgWidth, imgHeight int) [4]float64 {
	w := a.Width * float64(imgWidth)
	h := a.Height * float64(imgHeight)
	x1 := a.CenterX*float64(imgWidth) - w/2
	y1 := a.CenterY*float64(imgHeight) - h/2
	return [4]float64{x1, y1, x1 + w, y1 + h}
}

// ParseYOLOAnnotation parses the whitespace separated values of a YOLO label line.
func ParseYOLOAnnotation(line string) (YOLOAnnotation, error) {
	a := YOLOAnnotation{}

	tokens := strings.Fields(line)
	if len(tokens) < 5 {
		return a, fmt.Errorf("insufficient tokens in %q", line)
	}

	var err error
	if a.ClassID, err = strconv.Atoi(tokens[0]); err != nil {
		return a, fmt.Errorf("unexpected class id in %q: %w", line, err)
	}
	values := [4]*float64{&a.CenterX, &a.CenterY, &a.Width, &a.Height}
	for i := 0; i < 4 && err == nil; i++ {
		*values[i], err = strconv.ParseFloat(tokens[i+1], 64)
	}
	if err != nil {
		return a, fmt.Errorf("unexpected values in %q: %w", line, err)
	}

	return a, nil
}

// formatYOLO serializes annotations as the contents of a YOLO label file.
func formatYOLO(annotations []YOLOAnnotation) []byte {
	var buf bytes.Buffer
	for _, a := range annotations {
		buf.WriteString(a.String())
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}

// WriteYOLO writes the annotations to path, replacing any existing file. Nothing is written when
// annotations is empty; the return value reports whether a file was written.
func WriteYOLO(path string, annotations []YOLOAnnotation) (bool, error) {
	if len(annotations) == 0 {
		return false, nil
	}
	if err := writeFileAtomic(path, formatYOLO(annotations)); err != nil {
		return false, fmt.Errorf("cannot write file %q: %w", path, err)
	}
	return true, nil
}

// ReadYOLO reads and parses the YOLO label file at path. Blank lines are skipped; the first line
// that fails to parse aborts the read.
func ReadYOLO(path string) ([]YOLOAnnotation, error) {
	lines, err := readLines(path)
	if err != nil {
		return nil, err
	}

	annotations := make([]YOLOAnnotation, 0, len(lines))
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		a, err := ParseYOLOAnnotation(line)
		if err != nil {
			return nil, err
		}
		annotations = append(annotations, a)
	}

	return annotations, nil
}

// FromYOLO reads the YOLO label files in labelDir and matches them to the images in imageDir.
// Annotations with an unknown class id are dropped.
func FromYOLO(labelDir, imageDir string) ([]AnnotatedFile, error) {
	return parseLabelsWithOneToOneImages(labelDir, ".txt", imageDir, parseYOLOFile)
}

// parseYOLOFile parses the label file at labelPath and reads the image size from the image at
// imagePath to construct an AnnotatedFile in absolute coordinates.
func parseYOLOFile(labelPath, imagePath string) (AnnotatedFile, error) {
	yoloData, err := ReadYOLO(labelPath)
	if err != nil {
		return AnnotatedFile{}, err
	}

	img, _, err := decodeImageConfig(imagePath)
	if err != nil {
		return AnnotatedFile{}, err
	}

	fileData := AnnotatedFile{
		Annotations: make([]Annotation, 0, len(yoloData)),
		FilePath:    imagePath,
		Width:       img.Width,
		Height:      img.Height,
	}
	for _, a := range yoloData {
		if _, ok := ClassName(a.ClassID); !ok {
			log.Debugf("Unknown class id %d in %q", a.ClassID, labelPath)
			continue
		}
		fileData.Annotations = append(fileData.Annotations, Annotation{
			ClassID: a.ClassID,
			Coords:  a.Coords(img.Width, img.Height),
		})
	}

	return fileData, nil
}
