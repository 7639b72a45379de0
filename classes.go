package dronelbl

// VisDrone object categories.

// NumClasses is the number of object classes in the YOLO label space.
const NumClasses = 10

// classNames maps YOLO class ids (the index) to names. VisDrone category ids are one higher, with
// category 0 reserved for ignored regions and 11 for "others".
var classNames = [NumClasses]string{
	"pedestrian",
	"people",
	"bicycle",
	"car",
	"van",
	"truck",
	"tricycle",
	"awning-tricycle",
	"bus",
	"motor",
}

// ClassNames returns the class names ordered by class id.
func ClassNames() []string {
	names := make([]string, NumClasses)
	copy(names, classNames[:])
	return names
}

// ClassName returns the name of the class with the given zero-based id.
func ClassName(id int) (string, bool) {
	if id < 0 || id >= NumClasses {
		return "", false
	}
	return classNames[id], true
}

// ClassID returns the zero-based id of the named class.
func ClassID(name string) (int, bool) {
	for i, n := range classNames {
		if n == name {
			return i, true
		}
	}
	return -1, false
}
