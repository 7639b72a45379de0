package dronelbl

// TFRecord object detection specific functionality.

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/golang/protobuf/proto"
	"github.com/ryszard/tfutils/go/example"
	"github.com/ryszard/tfutils/go/tfrecord"
	"github.com/ryszard/tfutils/proto/tensorflow/core/example" // package tensorflow
)

// TFFeatureMap maps feature names to their values. Values must be convertible to
// tensorflow.Feature.
type TFFeatureMap map[string]interface{}

// toTFFeatures converts the intermediate representation for a single file to the feature map of
// a TensorFlow object detection example. Class labels are the class ids plus one, as id 0 is
// reserved for the background.
func toTFFeatures(fileData AnnotatedFile) (TFFeatureMap, error) {
	img, format, err := decodeImageConfig(fileData.FilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to decode the image metadata: %w", err)
	}

	imgData, err := os.ReadFile(fileData.FilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read the image: %w", err)
	}

	f := make(TFFeatureMap, 16)
	f["image/height"] = img.Height
	f["image/width"] = img.Width
	f["image/filename"] = fileData.FilePath
	f["image/source_id"] = fileData.FilePath
	f["image/encoded"] = imgData
	f["image/format"] = format

	numLabels := len(fileData.Annotations)
	xmins := make([]float32, numLabels)
	ymins := make([]float32, numLabels)
	xmaxs := make([]float32, numLabels)
	ymaxs := make([]float32, numLabels)
	classes := make([]string, numLabels)
	classIDs := make([]int64, numLabels)
	for i, a := range fileData.Annotations {
		xmins[i] = float32(a.Coords[0]) / float32(img.Width)
		ymins[i] = float32(a.Coords[1]) / float32(img.Height)
		xmaxs[i] = float32(a.Coords[2]) / float32(img.Width)
		ymaxs[i] = float32(a.Coords[3]) / float32(img.Height)
		classes[i] = a.Label()
		classIDs[i] = int64(a.ClassID + 1)
	}
	f["image/object/bbox/xmin"] = xmins
	f["image/object/bbox/ymin"] = ymins
	f["image/object/bbox/xmax"] = xmaxs
	f["image/object/bbox/ymax"] = ymaxs
	f["image/object/class/text"] = classes
	f["image/object/class/label"] = classIDs

	return f, nil
}

// WriteTFRecord does a streaming conversion, serialisation and file write for the annotation data
// to one or more TFRecord files stored under recordFilePath (with suffixes added when numShards>1).
//
// The label map for the class list is written to labelMapPath. Returns the number of examples
// written.
func WriteTFRecord(recordFilePath, labelMapPath string, data []AnnotatedFile, numShards int) (
	written int, err error) {
	defer func() {
		if e := recover(); e != nil {
			err = fmt.Errorf("conversion to TensorFlow Example failed: %v", e)
		}
	}()

	if numShards <= 0 {
		numShards = 1
	}
	if numShards > len(data) && len(data) > 0 {
		numShards = len(data)
	}

	fmtShardSuffix := func(idx int) string {
		return fmt.Sprintf("-%05d-of-%05d", idx, numShards)
	}

	var shardFile *os.File
	closeShard := func() error {
		if shardFile == nil {
			return nil
		}
		err := shardFile.Close()
		shardFile = nil
		return err
	}
	defer func() {
		if e := closeShard(); e != nil && err == nil {
			err = e
		}
	}()

	shardSize := int(math.Ceil(float64(len(data)) / float64(numShards)))
	shardIdx := -1

	for i, fileData := range data {
		// Check if a new shard file needs to be opened for writing.
		if i%shardSize == 0 {
			shardIdx++
			if err := closeShard(); err != nil {
				return written, err
			}

			shardPath := recordFilePath
			if numShards > 1 {
				shardPath += fmtShardSuffix(shardIdx)
			}
			f, err := os.Create(shardPath)
			if err != nil {
				return written, fmt.Errorf("failed to create shard at %q: %w", shardPath, err)
			}
			shardFile = f
		}

		features, err := toTFFeatures(fileData)
		if err != nil {
			log.Warnf("Failed to convert %q: %v", fileData.FilePath, err)
			continue
		}
		tfExample := example.New(features)

		if err := writeTFRecordExample(shardFile, tfExample); err != nil {
			return written, fmt.Errorf("failed to write example: %w", err)
		}
		written++
	}

	return written, saveTFRecordLabelMap(labelMapPath)
}

// writeTFRecordExample serialises the example and writes it as a TFRecord to w.
func writeTFRecordExample(w io.Writer, e *tensorflow.Example) error {
	enc, err := proto.Marshal(e)
	if err != nil {
		return err
	}

	return tfrecord.Write(w, enc)
}

// saveTFRecordLabelMap writes the class list in the prototxt label map format of the TensorFlow
// object detection API to path.
func saveTFRecordLabelMap(path string) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create the label map file %q: %w", path, err)
	}
	defer closeWithErrCheck(file, &err)

	w := bufio.NewWriter(file)
	for i, name := range classNames {
		fmt.Fprintf(w, "item {\n  id: %d\n  name: %q\n}\n", i+1, name)
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to write the label map %q: %w", path, err)
	}

	return nil
}
