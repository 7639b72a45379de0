// Writes the dataset config for training the detector on a converted VisDrone dataset.
package main

import (
	"os"
	"path/filepath"

	"github.com/akamensky/argparse"

	"github.com/sensorable/dronelbl"
	"github.com/sensorable/dronelbl/internal/cli"
)

func main() {
	cli.LoadEnv()

	parser := argparse.NewParser("visdroneyaml", "Write the VisDrone dataset config")
	dirPath := parser.String("", "dir_path", &argparse.Options{
		Help:    "Path to the VisDrone dataset root directory",
		Default: cli.Getenv(cli.EnvDatasetDir, "../datasets/visdrone2019"),
	})
	out := parser.String("o", "out", &argparse.Options{
		Help:    "Output path of the config",
		Default: "configs/VisDrone.yaml",
	})
	common := cli.AddCommon(parser)
	cli.Parse(parser, os.Args)

	log := common.Logger()

	root, err := filepath.Abs(*dirPath)
	if err != nil {
		log.Fatal(err)
	}
	if err := dronelbl.WriteDatasetConfig(*out, dronelbl.NewDatasetConfig(root)); err != nil {
		log.Fatal("Failed to write the dataset config: ", err)
	}
	log.Info("Wrote ", *out)
}
