package dronelbl

// VisDrone specific functionality.

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Reasons for dropping a VisDrone record during conversion.
var (
	ErrMalformedLine   = errors.New("malformed annotation line")
	ErrIgnoredRegion   = errors.New("ignored region")
	ErrZeroScore       = errors.New("zero score")
	ErrClassOutOfRange = errors.New("class id out of range")
	ErrBoxOutOfBounds  = errors.New("normalized box out of bounds")
)

// visDroneMinFields is the number of fields required in a VisDrone annotation line.
const visDroneMinFields = 8

// VisDroneAnnotation is a single annotation within a VisDrone file.
//
// Line format: x1,y1,width,height,score,category,truncation,occlusion
type VisDroneAnnotation struct {
	X, Y          int // Top-left corner in pixels.
	Width, Height int
	Score         int // Zero marks the record as invalid.
	Category      int // One-based. Zero is an ignored region.
	Truncation    int
	Occlusion     int
}

// Box returns the bounding box as x1, y1, width, height.
func (a VisDroneAnnotation) Box() [4]int {
	return [4]int{a.X, a.Y, a.Width, a.Height}
}

// ParseVisDroneAnnotation parses the comma-separated values for a single annotation. Values after
// the eighth are ignored.
func ParseVisDroneAnnotation(line string) (VisDroneAnnotation, error) {
	a := VisDroneAnnotation{}

	tokens := strings.Split(strings.TrimSpace(line), ",")
	if len(tokens) < visDroneMinFields {
		return a, fmt.Errorf("%w: insufficient fields in %q", ErrMalformedLine, line)
	}

	var values [visDroneMinFields]int
	for i := range values {
		v, err := strconv.Atoi(strings.TrimSpace(tokens[i]))
		if err != nil {
			return a, fmt.Errorf("%w: unexpected value in %q: %v", ErrMalformedLine, line, err)
		}
		values[i] = v
	}

	a.X, a.Y, a.Width, a.Height = values[0], values[1], values[2], values[3]
	a.Score = values[4]
	a.Category = values[5]
	a.Truncation = values[6]
	a.Occlusion = values[7]

	return a, nil
}

// ConvertBox converts a VisDrone box (x1, y1, width, height in pixels) to YOLO's normalized
// center x, center y, width and height for an image of imgWidth x imgHeight pixels.
//
// The result is not clamped; imgWidth and imgHeight must be positive.
func ConvertBox(imgWidth, imgHeight int, box [4]int) (cx, cy, nw, nh float64) {
	dw := 1.0 / float64(imgWidth)
	dh := 1.0 / float64(imgHeight)

	cx = (float64(box[0]) + float64(box[2])/2.0) * dw
	cy = (float64(box[1]) + float64(box[3])/2.0) * dh
	nw = float64(box[2]) * dw
	nh = float64(box[3]) * dh

	return cx, cy, nw, nh
}

// ToYOLO converts a parsed VisDrone annotation into a YOLO annotation for an image of the given
// size. The returned error is one of the Err* drop reasons when the annotation must be dropped.
func (a VisDroneAnnotation) ToYOLO(imgWidth, imgHeight int) (YOLOAnnotation, error) {
	if a.Category == 0 {
		return YOLOAnnotation{}, ErrIgnoredRegion
	}
	if a.Score == 0 {
		return YOLOAnnotation{}, ErrZeroScore
	}

	class := a.Category - 1
	if class < 0 || class >= NumClasses {
		return YOLOAnnotation{}, fmt.Errorf("%w: %d", ErrClassOutOfRange, class)
	}

	cx, cy, nw, nh := ConvertBox(imgWidth, imgHeight, a.Box())
	y := YOLOAnnotation{ClassID: class, CenterX: cx, CenterY: cy, Width: nw, Height: nh}
	if !y.inUnitRange() {
		return YOLOAnnotation{}, ErrBoxOutOfBounds
	}

	return y, nil
}

// ConvertRecord parses a VisDrone annotation line and converts it to YOLO format.
func ConvertRecord(line string, imgWidth, imgHeight int) (YOLOAnnotation, error) {
	a, err := ParseVisDroneAnnotation(line)
	if err != nil {
		return YOLOAnnotation{}, err
	}
	return a.ToYOLO(imgWidth, imgHeight)
}
