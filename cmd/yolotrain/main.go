// Trains the detector on the VisDrone dataset by invoking the detector command line tool.
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
	def := dronelbl.DefaultTrainOptions()

	parser := argparse.NewParser("yolotrain", "Train the detector on the VisDrone dataset")
	data := parser.String("", "data", &argparse.Options{Help: "Dataset config path", Default: def.Data})
	epochs := parser.Int("", "epochs", &argparse.Options{Help: "Number of epochs", Default: def.Epochs})
	batch := parser.Int("", "batch", &argparse.Options{Help: "Batch size", Default: def.Batch})
	lr := parser.Float("", "lr", &argparse.Options{Help: "Initial learning rate", Default: def.LearningRate})
	optimizer := parser.Selector("", "optimizer", []string{"sgd", "adam", "adamw", "rmsprop"},
		&argparse.Options{Help: "Optimizer", Default: def.Optimizer})
	device := parser.String("", "device", &argparse.Options{Help: "Device, e.g. 0, 0,1 or cpu", Default: def.Device})
	workers := parser.Int("", "workers", &argparse.Options{Help: "Data loader workers", Default: def.Workers})
	model := parser.String("", "model", &argparse.Options{Help: "Model weights path", Default: def.Model})
	name := parser.String("", "name", &argparse.Options{Help: "Run name", Default: def.Name})
	executable := parser.String("", "yolo", &argparse.Options{
		Help:    "Detector executable",
		Default: cli.Getenv(cli.EnvDetector, dronelbl.DefaultDetectorExecutable),
	})
	common := cli.AddCommon(parser)
	cli.Parse(parser, os.Args)

	log := common.Logger()

	opts := def
	opts.Data = *data
	opts.Epochs = *epochs
	opts.Batch = *batch
	opts.LearningRate = *lr
	opts.Optimizer = *optimizer
	opts.Device = *device
	opts.Workers = *workers
	opts.Model = *model
	opts.Name = *name

	log.WithFields(map[string]interface{}{
		"data": opts.Data, "epochs": opts.Epochs, "batch": opts.Batch, "lr": opts.LearningRate,
		"optimizer": opts.Optimizer, "device": opts.Device, "workers": opts.Workers,
	}).Infof("Training %s", opts.Model)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	runner := dronelbl.DetectorRunner{Executable: *executable}
	if err := runner.Run(ctx, opts); err != nil {
		log.Error("Training failed: ", err)
		return
	}
	log.Infof("Training finished, best weights in %s/%s/weights/best.pt", opts.Project, opts.Name)
}
