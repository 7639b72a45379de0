package dronelbl

// Wrappers around the external detector command line tool. They only marshal options into its
// "key=value" argument syntax and run it.

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strconv"

	"github.com/go-playground/validator/v10"
)

// DefaultDetectorExecutable is the detector command line tool.
const DefaultDetectorExecutable = "yolo"

var validate = validator.New()

// TrainOptions are the training parameters passed to the detector.
type TrainOptions struct {
	Data         string  `validate:"required"` // Dataset config path.
	Model        string  `validate:"required"` // Pretrained weights path.
	Name         string  `validate:"required"` // Run name.
	Project      string  `validate:"required"` // Output directory for runs.
	Device       string  `validate:"required"` // e.g. "0", "0,1" or "cpu".
	Optimizer    string  `validate:"oneof=sgd adam adamw rmsprop"`
	Epochs       int     `validate:"min=1"`
	Batch        int     `validate:"min=1"`
	Workers      int     `validate:"min=0"`
	Patience     int     `validate:"min=0"`
	LearningRate float64 `validate:"gt=0"`
}

// DefaultTrainOptions returns the default training parameters.
func DefaultTrainOptions() TrainOptions {
	return TrainOptions{
		Data:         "configs/VisDrone.yaml",
		Model:        "weights/best.pt",
		Name:         "visdrone_yolo11",
		Project:      "weights/runs",
		Device:       "0",
		Optimizer:    "sgd",
		Epochs:       100,
		Batch:        8,
		Workers:      2,
		Patience:     10,
		LearningRate: 0.0015,
	}
}

// Validate checks the options.
func (o TrainOptions) Validate() error {
	return validate.Struct(o)
}

// Args returns the detector arguments for a training run.
func (o TrainOptions) Args() []string {
	return []string{
		"detect", "train",
		"data=" + o.Data,
		"model=" + o.Model,
		"epochs=" + strconv.Itoa(o.Epochs),
		"batch=" + strconv.Itoa(o.Batch),
		"lr0=" + strconv.FormatFloat(o.LearningRate, 'g', -1, 64),
		"optimizer=" + o.Optimizer,
		"device=" + o.Device,
		"workers=" + strconv.Itoa(o.Workers),
		"name=" + o.Name,
		"project=" + o.Project,
		"patience=" + strconv.Itoa(o.Patience),
		"augment=True",
		"val=True",
	}
}

// PredictOptions are the inference parameters passed to the detector.
type PredictOptions struct {
	Weights string  `validate:"required"`
	Source  string  `validate:"required"` // Image, video or directory.
	Conf    float64 `validate:"gte=0,lte=1"`
	Save    bool
}

// DefaultPredictOptions returns the default inference parameters, without a source.
func DefaultPredictOptions() PredictOptions {
	return PredictOptions{
		Weights: "weights/best.pt",
		Conf:    0.25,
		Save:    true,
	}
}

// Validate checks the options.
func (o PredictOptions) Validate() error {
	return validate.Struct(o)
}

// Args returns the detector arguments for an inference run.
func (o PredictOptions) Args() []string {
	return []string{
		"detect", "predict",
		"model=" + o.Weights,
		"source=" + o.Source,
		"conf=" + strconv.FormatFloat(o.Conf, 'g', -1, 64),
		"save=" + pyBool(o.Save),
	}
}

func pyBool(b bool) string {
	if b {
		return "True"
	}
	return "False"
}

// DetectorRunner runs the detector command line tool.
type DetectorRunner struct {
	Executable string    // Defaults to DefaultDetectorExecutable.
	Stdout     io.Writer // Defaults to os.Stdout.
	Stderr     io.Writer // Defaults to os.Stderr.
}

// argser is implemented by TrainOptions and PredictOptions.
type argser interface {
	Validate() error
	Args() []string
}

// Run validates opts and runs the detector with its arguments until it exits or ctx is done.
func (r DetectorRunner) Run(ctx context.Context, opts argser) error {
	if err := opts.Validate(); err != nil {
		return fmt.Errorf("invalid options: %w", err)
	}

	executable := r.Executable
	if executable == "" {
		executable = DefaultDetectorExecutable
	}
	cmd := exec.CommandContext(ctx, executable, opts.Args()...)
	cmd.Stdout = r.Stdout
	if cmd.Stdout == nil {
		cmd.Stdout = os.Stdout
	}
	cmd.Stderr = r.Stderr
	if cmd.Stderr == nil {
		cmd.Stderr = os.Stderr
	}

	log.Infof("Running %s", cmd.String())
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s failed: %w", executable, err)
	}
	return nil
}
