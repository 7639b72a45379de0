// Converts VisDrone annotations to YOLO label files.
//
// For every split the annotations in <dir_path>/annotations/<split> are converted, using the image
// sizes from <dir_path>/images/<split>, and written to <dir_path>/labels/<split>.
package main

import (
	"os"
	"strings"

	"github.com/akamensky/argparse"
	"github.com/dustin/go-humanize"

	"github.com/sensorable/dronelbl"
	"github.com/sensorable/dronelbl/internal/cli"
)

func main() {
	cli.LoadEnv()

	parser := argparse.NewParser("visdrone2yolo", "Convert VisDrone annotations to YOLO format")
	dirPath := parser.String("", "dir_path", &argparse.Options{
		Help:    "Path to the VisDrone dataset root directory",
		Default: cli.Getenv(cli.EnvDatasetDir, "../datasets/visdrone2019"),
	})
	splits := parser.String("", "splits", &argparse.Options{
		Help:    "Comma-separated list of splits to convert",
		Default: strings.Join(dronelbl.DefaultSplits, ","),
	})
	reportPath := parser.String("", "report", &argparse.Options{Help: "Write a JSON summary to this path"})
	common := cli.AddCommon(parser)
	cli.Parse(parser, os.Args)

	log := common.Logger()

	var c dronelbl.Converter
	result, err := c.ConvertDataset(*dirPath, dronelbl.ParseSplits(*splits))
	if err != nil {
		log.Fatal("Conversion failed: ", err)
	}

	var files, records int
	for _, s := range result.Splits {
		files += s.Statuses[dronelbl.StatusWritten]
		records += s.Written
	}
	log.Infof("Wrote %s label files with %s records", humanize.Comma(int64(files)),
		humanize.Comma(int64(records)))

	if *reportPath != "" {
		if err := dronelbl.WriteReport(*reportPath, result); err != nil {
			log.Error("Failed to write the report: ", err)
		}
	}
}
