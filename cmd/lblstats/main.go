// Analyses and plots the class and bounding box size distributions of the YOLO labels of a
// dataset split.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/akamensky/argparse"

	"github.com/sensorable/dronelbl"
	"github.com/sensorable/dronelbl/internal/cli"
)

func main() {
	cli.LoadEnv()

	parser := argparse.NewParser("lblstats", "Visualise the VisDrone label distribution")
	dataDir := parser.String("", "data_dir", &argparse.Options{
		Help:    "Path to the dataset root directory",
		Default: cli.Getenv(cli.EnvDatasetDir, "./datasets/visdrone2019"),
	})
	split := parser.Selector("", "split", dronelbl.DefaultSplits, &argparse.Options{
		Help:    "Dataset split",
		Default: "train",
	})
	outputDir := parser.String("", "output_dir", &argparse.Options{
		Help:    "Output directory for the charts",
		Default: "./visualization",
	})
	common := cli.AddCommon(parser)
	cli.Parse(parser, os.Args)

	log := common.Logger()

	labelDir := filepath.Join(*dataDir, "labels", *split)
	if info, err := os.Stat(labelDir); err != nil || !info.IsDir() {
		log.Errorf("Label directory %q does not exist, run visdrone2yolo first", labelDir)
		os.Exit(1)
	}

	stats, err := dronelbl.CollectLabelStats(labelDir)
	if err != nil {
		log.Fatal("Failed to collect label statistics: ", err)
	}
	if err := stats.WriteSummaryTable(os.Stdout); err != nil {
		log.Fatal(err)
	}
	width, height := stats.SizeSummaries()
	fmt.Printf("\nBox width:  mean %.4f  std %.4f  median %.4f  p90 %.4f\n",
		width.Mean, width.StdDev, width.Median, width.P90)
	fmt.Printf("Box height: mean %.4f  std %.4f  median %.4f  p90 %.4f\n",
		height.Mean, height.StdDev, height.Median, height.P90)

	files, err := dronelbl.PlotLabelStats(stats, *split, *outputDir)
	if err != nil {
		log.Fatal("Failed to plot label statistics: ", err)
	}
	for _, f := range files {
		log.Info("Saved ", f)
	}
}
