// Draws YOLO labels onto their images for visual inspection.
package main

import (
	"os"

	"github.com/akamensky/argparse"

	"github.com/sensorable/dronelbl"
	"github.com/sensorable/dronelbl/internal/cli"
)

func main() {
	cli.LoadEnv()

	parser := argparse.NewParser("lblpreview", "Render YOLO labels onto images")
	labels := parser.String("l", "labels", &argparse.Options{Help: "YOLO label directory", Required: true})
	images := parser.String("i", "images", &argparse.Options{Help: "Image directory", Required: true})
	out := parser.String("o", "out", &argparse.Options{Help: "Output directory", Required: true})
	longerSide := parser.Int("", "longer-side", &argparse.Options{
		Help:    "Resize previews so the longer side has this length (0 keeps the size)",
		Default: 0,
	})
	limit := parser.Int("n", "limit", &argparse.Options{Help: "Render at most this many images (0 for all)", Default: 0})
	hideLabels := parser.Flag("", "hide-labels", &argparse.Options{Help: "Do not draw class names"})
	common := cli.AddCommon(parser)
	cli.Parse(parser, os.Args)

	log := common.Logger()

	data, err := dronelbl.FromYOLO(*labels, *images)
	if err != nil {
		log.Fatal("Failed to parse the input: ", err)
	}
	if *limit > 0 && len(data) > *limit {
		data = data[:*limit]
	}

	n := dronelbl.RenderPreviews(data, *out, dronelbl.PreviewOptions{
		LongerSide: *longerSide,
		HideLabels: *hideLabels,
	})
	log.Infof("Rendered %d of %d previews to %s", n, len(data), *out)
}
