package dronelbl

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrainOptions_Args(t *testing.T) {
	opts := DefaultTrainOptions()
	require.NoError(t, opts.Validate())
	assert.Equal(t, []string{
		"detect", "train",
		"data=configs/VisDrone.yaml",
		"model=weights/best.pt",
		"epochs=100",
		"batch=8",
		"lr0=0.0015",
		"optimizer=sgd",
		"device=0",
		"workers=2",
		"name=visdrone_yolo11",
		"project=weights/runs",
		"patience=10",
		"augment=True",
		"val=True",
	}, opts.Args())
}

func TestTrainOptions_Validate(t *testing.T) {
	for name, mutate := range map[string]func(*TrainOptions){
		"no data":       func(o *TrainOptions) { o.Data = "" },
		"zero epochs":   func(o *TrainOptions) { o.Epochs = 0 },
		"zero batch":    func(o *TrainOptions) { o.Batch = 0 },
		"bad optimizer": func(o *TrainOptions) { o.Optimizer = "lbfgs" },
		"zero lr":       func(o *TrainOptions) { o.LearningRate = 0 },
		"no device":     func(o *TrainOptions) { o.Device = "" },
	} {
		t.Run(name, func(t *testing.T) {
			opts := DefaultTrainOptions()
			mutate(&opts)
			assert.Error(t, opts.Validate())
		})
	}
}

func TestPredictOptions(t *testing.T) {
	opts := DefaultPredictOptions()
	assert.Error(t, opts.Validate(), "source is required")

	opts.Source = "images/test.jpg"
	require.NoError(t, opts.Validate())
	assert.Equal(t, []string{
		"detect", "predict", "model=weights/best.pt", "source=images/test.jpg", "conf=0.25", "save=True",
	}, opts.Args())

	opts.Save = false
	opts.Conf = 0.5
	assert.Equal(t, "save=False", opts.Args()[5])
	assert.Equal(t, "conf=0.5", opts.Args()[4])

	opts.Conf = 1.5
	assert.Error(t, opts.Validate())
}

func TestDetectorRunner_Run(t *testing.T) {
	var stdout bytes.Buffer
	r := DetectorRunner{Executable: "echo", Stdout: &stdout}

	opts := DefaultPredictOptions()
	opts.Source = "img.jpg"
	require.NoError(t, r.Run(context.Background(), opts))
	assert.Equal(t, "detect predict model=weights/best.pt source=img.jpg conf=0.25 save=True\n",
		stdout.String())
}

func TestDetectorRunner_RunErrors(t *testing.T) {
	r := DetectorRunner{Executable: "echo"}
	assert.Error(t, r.Run(context.Background(), DefaultPredictOptions()))

	r = DetectorRunner{Executable: "dronelbl-no-such-detector"}
	assert.Error(t, r.Run(context.Background(), DefaultTrainOptions()))
}
