// Exports a converted dataset split to TFRecord files for the TensorFlow object detection API.
package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/akamensky/argparse"

	"github.com/sensorable/dronelbl"
	"github.com/sensorable/dronelbl/internal/cli"
)

func main() {
	cli.LoadEnv()

	parser := argparse.NewParser("yolo2tfrecord", "Export YOLO labels and images to TFRecord")
	dirPath := parser.String("", "dir_path", &argparse.Options{
		Help:    "Path to the dataset root directory",
		Default: cli.Getenv(cli.EnvDatasetDir, "../datasets/visdrone2019"),
	})
	split := parser.Selector("", "split", dronelbl.DefaultSplits, &argparse.Options{Help: "Dataset split", Default: "train"})
	out := parser.String("o", "out", &argparse.Options{Help: "TFRecord output path", Required: true})
	labelMap := parser.String("", "label-map", &argparse.Options{Help: "Label map output path", Required: true})
	numShards := parser.Int("", "num-shards", &argparse.Options{Help: "Number of shard files", Default: 1})
	classes := parser.String("", "classes", &argparse.Options{Help: "Comma-separated class names to keep (empty keeps all)"})
	minWidth := parser.Float("", "min-bbox-width", &argparse.Options{Help: "Min. bounding box width in pixels", Default: 0.0})
	minHeight := parser.Float("", "min-bbox-height", &argparse.Options{Help: "Min. bounding box height in pixels", Default: 0.0})
	requireLabel := parser.Flag("", "require-label", &argparse.Options{Help: "Drop images without labels"})
	common := cli.AddCommon(parser)
	cli.Parse(parser, os.Args)

	log := common.Logger()

	var classIDs []int
	if *classes != "" {
		for _, name := range strings.Split(*classes, ",") {
			id, ok := dronelbl.ClassID(strings.TrimSpace(name))
			if !ok {
				log.Fatalf("Unknown class %q", name)
			}
			classIDs = append(classIDs, id)
		}
	}

	labelDir := filepath.Join(*dirPath, "labels", *split)
	imageDir := filepath.Join(*dirPath, "images", *split)
	data, err := dronelbl.FromYOLO(labelDir, imageDir)
	if err != nil {
		log.Fatal("Failed to parse the input: ", err)
	}

	af := dronelbl.AnnotatedFiles(data)
	af.Filter(classIDs, *minWidth, *minHeight, *requireLabel)

	n, err := dronelbl.WriteTFRecord(*out, *labelMap, af, *numShards)
	if err != nil {
		log.Fatal("Conversion failed: ", err)
	}
	log.Infof("Successfully wrote %d examples to %s", n, *out)
}
