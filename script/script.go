// Package script loads and plays spinner scenes: YAML documents describing
// a sequence of timed spinner steps and how the spinner finishes. The CLI's
// "play" command is a thin wrapper around this package.
package script

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/exapsy/twirl"
	"github.com/exapsy/twirl/spinners"
)

// KindSceneV1 is the only scene document version currently understood.
const KindSceneV1 = "scene:v1"

var ErrUnknownKind = errors.New("unknown scene kind")

type ErrFieldRequired struct {
	Field string
}

func (e ErrFieldRequired) Error() string {
	return "field is required: " + e.Field
}

// Finish kinds.
const (
	FinishSuccess = "success"
	FinishFail    = "fail"
	FinishWarn    = "warn"
	FinishInfo    = "info"
	FinishStop    = "stop"
	FinishPersist = "persist"
)

// Step is one resolved scene step. Nil Frames or Color keep the spinner's
// current value, mirroring twirl.Spinner.Update.
type Step struct {
	Message  string
	Duration time.Duration
	Frames   *twirl.FrameSet
	Color    *twirl.Color
}

// Finish is what the spinner does after the last step.
type Finish struct {
	Kind    string
	Symbol  string // only used by FinishPersist
	Message string
}

// Scene is a validated, playable spinner script.
type Scene struct {
	Name   string
	Steps  []Step
	Finish Finish
}

// Raw document shapes; validation happens after decoding.
type sceneDoc struct {
	Kind   string     `yaml:"kind"`
	Name   string     `yaml:"name"`
	Steps  []stepDoc  `yaml:"steps"`
	Finish *finishDoc `yaml:"finish"`
}

type stepDoc struct {
	Message    string   `yaml:"message"`
	Duration   string   `yaml:"duration"`
	Spinner    string   `yaml:"spinner,omitempty"`
	Color      string   `yaml:"color,omitempty"`
	Frames     []string `yaml:"frames,omitempty"`
	IntervalMS int      `yaml:"interval_ms,omitempty"`
}

type finishDoc struct {
	Kind    string `yaml:"kind"`
	Symbol  string `yaml:"symbol,omitempty"`
	Message string `yaml:"message"`
}

// Load decodes and validates a scene document.
func Load(r io.Reader) (*Scene, error) {
	var doc sceneDoc
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode scene: %w", err)
	}

	if doc.Kind != KindSceneV1 {
		return nil, fmt.Errorf("%w: %q (want %q)", ErrUnknownKind, doc.Kind, KindSceneV1)
	}
	if len(doc.Steps) == 0 {
		return nil, ErrFieldRequired{Field: "steps"}
	}

	scene := &Scene{Name: doc.Name}
	for i, sd := range doc.Steps {
		step, err := sd.resolve()
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", i, err)
		}
		scene.Steps = append(scene.Steps, step)
	}

	finish, err := resolveFinish(doc.Finish)
	if err != nil {
		return nil, err
	}
	scene.Finish = finish

	return scene, nil
}

// LoadFile is Load on a file path.
func LoadFile(path string) (*Scene, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open scene: %w", err)
	}
	defer f.Close()
	return Load(f)
}

func (sd stepDoc) resolve() (Step, error) {
	if sd.Message == "" {
		return Step{}, ErrFieldRequired{Field: "message"}
	}
	if sd.Duration == "" {
		return Step{}, ErrFieldRequired{Field: "duration"}
	}

	d, err := time.ParseDuration(sd.Duration)
	if err != nil {
		return Step{}, fmt.Errorf("duration: %w", err)
	}
	if d <= 0 {
		return Step{}, fmt.Errorf("duration must be positive, got %v", d)
	}

	step := Step{Message: sd.Message, Duration: d}

	switch {
	case len(sd.Frames) > 0 && sd.Spinner != "":
		return Step{}, fmt.Errorf("spinner and frames are mutually exclusive")
	case len(sd.Frames) > 0:
		fs, err := twirl.NewFrameSet(sd.Frames, time.Duration(sd.IntervalMS)*time.Millisecond)
		if err != nil {
			return Step{}, err
		}
		step.Frames = &fs
	case sd.Spinner != "":
		fs, err := spinners.Named(sd.Spinner)
		if err != nil {
			return Step{}, err
		}
		step.Frames = &fs
	}

	if sd.Color != "" {
		c, err := twirl.ParseColor(sd.Color)
		if err != nil {
			return Step{}, err
		}
		step.Color = &c
	}

	return step, nil
}

func resolveFinish(fd *finishDoc) (Finish, error) {
	if fd == nil {
		return Finish{Kind: FinishStop}, nil
	}

	switch fd.Kind {
	case FinishSuccess, FinishFail, FinishWarn, FinishInfo, FinishStop:
	case FinishPersist:
		if fd.Symbol == "" {
			return Finish{}, ErrFieldRequired{Field: "finish.symbol"}
		}
	case "":
		return Finish{}, ErrFieldRequired{Field: "finish.kind"}
	default:
		return Finish{}, fmt.Errorf("unknown finish kind %q", fd.Kind)
	}

	return Finish{Kind: fd.Kind, Symbol: fd.Symbol, Message: fd.Message}, nil
}

// PlayConfig controls where a scene draws. The zero value plays on stdout.
type PlayConfig struct {
	Stream   twirl.Stream
	Writer   io.Writer // overrides Stream, mostly for tests
	ForceTTY bool
}

// Play runs the scene: one spinner, updated per step, finished per the
// scene's finish action. It blocks for the scene's total duration.
func (sc *Scene) Play(cfg PlayConfig) error {
	first := sc.Steps[0]

	frames := spinners.Default
	if first.Frames != nil {
		frames = *first.Frames
	}
	color := twirl.NoColor
	if first.Color != nil {
		color = *first.Color
	}

	sp, err := twirl.NewWithConfig(twirl.Config{
		Frames:   frames,
		Message:  first.Message,
		Color:    color,
		Stream:   cfg.Stream,
		Writer:   cfg.Writer,
		ForceTTY: cfg.ForceTTY,
	})
	if err != nil {
		return err
	}

	time.Sleep(first.Duration)

	for _, step := range sc.Steps[1:] {
		if err := sp.Update(step.Frames, &step.Message, step.Color); err != nil {
			return err
		}
		time.Sleep(step.Duration)
	}

	switch sc.Finish.Kind {
	case FinishSuccess:
		return sp.Success(sc.Finish.Message)
	case FinishFail:
		return sp.Fail(sc.Finish.Message)
	case FinishWarn:
		return sp.Warn(sc.Finish.Message)
	case FinishInfo:
		return sp.Info(sc.Finish.Message)
	case FinishPersist:
		return sp.StopAndPersist(sc.Finish.Symbol, sc.Finish.Message)
	default:
		return sp.Stop()
	}
}
