package dronelbl

// The intermediate annotation metadata representation, in absolute image coordinates.

// Annotation is the intermediate representation of an object label.
type Annotation struct {
	ClassID int        // Zero-based YOLO class id.
	Coords  [4]float64 // Absolute x1, y1, x2, y2 offsets from the top-left corner.
}

// Label is the class name of the annotation, or "unknown".
func (a Annotation) Label() string {
	if name, ok := ClassName(a.ClassID); ok {
		return name
	}
	return "unknown"
}

// Width is the object width from a.Coords.
func (a Annotation) Width() float64 {
	return a.Coords[2] - a.Coords[0]
}

// Height is the object height from a.Coords.
func (a Annotation) Height() float64 {
	return a.Coords[3] - a.Coords[1]
}

// AnnotatedFile is the intermediate representation of file metadata.
type AnnotatedFile struct {
	Annotations []Annotation // The annotations.
	FilePath    string       // The annotated image.
	Width       int          // Image width in pixels.
	Height      int          // Image height in pixels.
}

// scaleCoords scales all Annotations.Coords by the given scale factors.
func (f *AnnotatedFile) scaleCoords(width, height float64) {
	for i := range f.Annotations {
		for j := 0; j < 4; j++ {
			if j&1 == 0 {
				f.Annotations[i].Coords[j] *= width
			} else {
				f.Annotations[i].Coords[j] *= height
			}
		}
	}
}

// AnnotatedFiles is the annotation metadata for a list of files.
type AnnotatedFiles []AnnotatedFile

// Filter removes annotations whose class is not in classIDs (empty keeps all) or whose bounding
// box is smaller than minBboxWidth x minBboxHeight pixels. If requireLabel is set, files left
// without annotations are removed too.
func (data *AnnotatedFiles) Filter(classIDs []int, minBboxWidth, minBboxHeight float64,
	requireLabel bool) {

	keepClass := func(id int) bool {
		if len(classIDs) == 0 {
			return true
		}
		for _, c := range classIDs {
			if c == id {
				return true
			}
		}
		return false
	}

	numFiles := len(*data)
	numLabelsBeforeFilter := 0
	numLabelsAfterFilter := 0

	kept := (*data)[:0]
	for _, d := range *data {
		numLabelsBeforeFilter += len(d.Annotations)

		annotations := d.Annotations[:0]
		for _, a := range d.Annotations {
			if !keepClass(a.ClassID) || a.Width() < minBboxWidth || a.Height() < minBboxHeight {
				continue
			}
			annotations = append(annotations, a)
		}
		d.Annotations = annotations
		numLabelsAfterFilter += len(annotations)

		if requireLabel && len(annotations) == 0 {
			continue
		}
		kept = append(kept, d)
	}
	*data = kept

	log.Infof("Filtered out %d labels and %d files",
		numLabelsBeforeFilter-numLabelsAfterFilter, numFiles-len(*data))
}
