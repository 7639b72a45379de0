// Runs detector inference on images, videos or directories by invoking the detector command line
// tool.
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/akamensky/argparse"

	"github.com/sensorable/dronelbl"
	"github.com/sensorable/dronelbl/internal/cli"
)

func main() {
	cli.LoadEnv()
	def := dronelbl.DefaultPredictOptions()

	parser := argparse.NewParser("yolopredict", "Run detector inference")
	weights := parser.String("", "weights", &argparse.Options{Help: "Model weights path", Default: def.Weights})
	source := parser.String("", "source", &argparse.Options{Help: "Input image, video or directory", Required: true})
	conf := parser.Float("", "conf", &argparse.Options{Help: "Confidence threshold", Default: def.Conf})
	noSave := parser.Flag("", "no-save", &argparse.Options{Help: "Do not save the annotated results"})
	executable := parser.String("", "yolo", &argparse.Options{
		Help:    "Detector executable",
		Default: cli.Getenv(cli.EnvDetector, dronelbl.DefaultDetectorExecutable),
	})
	common := cli.AddCommon(parser)
	cli.Parse(parser, os.Args)

	log := common.Logger()

	opts := def
	opts.Weights = *weights
	opts.Source = *source
	opts.Conf = *conf
	opts.Save = !*noSave

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	runner := dronelbl.DetectorRunner{Executable: *executable}
	if err := runner.Run(ctx, opts); err != nil {
		log.Fatal("Inference failed: ", err)
	}
	log.Info("Inference finished")
}
