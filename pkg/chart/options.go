package chart

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/taigrr/plot3d/pkg/math3d"
	"github.com/taigrr/plot3d/pkg/render"
)

// DataColor is the fixed color pair used by styles that do not encode a
// scalar in color.
type DataColor struct {
	Fill        string  `json:"fill"`
	Stroke      string  `json:"stroke"`
	StrokeWidth float64 `json:"strokeWidth"`
}

// Options configures a chart. The zero value is not useful; start from
// DefaultOptions.
type Options struct {
	Style Style `json:"style"`

	ShowPerspective bool  `json:"showPerspective"`
	ShowGrid        bool  `json:"showGrid"`
	ShowShadow      bool  `json:"showShadow"`
	ShowGrayBottom  bool  `json:"showGrayBottom"`
	ShowLegend      *bool `json:"showLegend"`
	KeepAspectRatio bool  `json:"keepAspectRatio"`

	VerticalRatio float64 `json:"verticalRatio"`
	DotSizeRatio  float64 `json:"dotSizeRatio"`
	Margin        float64 `json:"margin"`

	// XCenter and YCenter place the chart center, in pixels or as a
	// percentage ("55%") of the canvas width and height.
	XCenter string `json:"xCenter"`
	YCenter string `json:"yCenter"`

	XLabel      string `json:"xLabel"`
	YLabel      string `json:"yLabel"`
	ZLabel      string `json:"zLabel"`
	LegendLabel string `json:"legendLabel"`

	XMin     *float64 `json:"xMin"`
	XMax     *float64 `json:"xMax"`
	YMin     *float64 `json:"yMin"`
	YMax     *float64 `json:"yMax"`
	ZMin     *float64 `json:"zMin"`
	ZMax     *float64 `json:"zMax"`
	ValueMin *float64 `json:"valueMin"`
	ValueMax *float64 `json:"valueMax"`

	XStep *float64 `json:"xStep"`
	YStep *float64 `json:"yStep"`
	ZStep *float64 `json:"zStep"`

	XBarWidth *float64 `json:"xBarWidth"`
	YBarWidth *float64 `json:"yBarWidth"`

	DataColor       DataColor `json:"dataColor"`
	AxisColor       string    `json:"axisColor"`
	GridColor       string    `json:"gridColor"`
	BackgroundColor string    `json:"backgroundColor"`

	// AnimationInterval is the time between filter steps in milliseconds.
	AnimationInterval  int  `json:"animationInterval"`
	AnimationAutoStart bool `json:"animationAutoStart"`

	CameraPosition *CameraPosition `json:"cameraPosition"`

	XValueLabel func(float64) string `json:"-"`
	YValueLabel func(float64) string `json:"-"`
	ZValueLabel func(float64) string `json:"-"`

	Logger *zap.SugaredLogger `json:"-"`
}

// DefaultOptions returns the options of a new chart.
func DefaultOptions() Options {
	return Options{
		Style:           StyleDot,
		ShowPerspective: true,
		ShowGrid:        true,
		KeepAspectRatio: true,
		VerticalRatio:   0.5,
		DotSizeRatio:    0.02,
		Margin:          10,
		XCenter:         "55%",
		YCenter:         "50%",
		XLabel:          "x",
		YLabel:          "y",
		ZLabel:          "z",
		DataColor: DataColor{
			Fill:        "#7DC1FF",
			Stroke:      "#3267D2",
			StrokeWidth: 1,
		},
		AxisColor:         "#4D4D4D",
		GridColor:         "#D3D3D3",
		BackgroundColor:   "#FFFFFF",
		AnimationInterval: 1000,
	}
}

// DecodeOptions applies the settings in raw, typically parsed from JSON, on
// top of DefaultOptions.
func DecodeOptions(raw map[string]any) (Options, error) {
	opts := DefaultOptions()
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		Result:           &opts,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
	})
	if err != nil {
		return Options{}, errors.Wrap(err, "create options decoder")
	}
	if err := decoder.Decode(raw); err != nil {
		return Options{}, errors.Wrap(err, "decode options")
	}
	return opts, nil
}

// Validate reports every problem with the options.
func (o Options) Validate() error {
	var err error
	if _, e := ParseStyle(string(o.Style)); e != nil {
		err = multierr.Append(err, e)
	}
	if o.VerticalRatio <= 0 {
		err = multierr.Append(err, errors.Errorf("verticalRatio must be positive, got %v", o.VerticalRatio))
	}
	if o.DotSizeRatio <= 0 {
		err = multierr.Append(err, errors.Errorf("dotSizeRatio must be positive, got %v", o.DotSizeRatio))
	}
	if o.DataColor.StrokeWidth < 0 {
		err = multierr.Append(err, errors.Errorf("strokeWidth must not be negative, got %v", o.DataColor.StrokeWidth))
	}
	if o.AnimationInterval <= 0 {
		err = multierr.Append(err, errors.Errorf("animationInterval must be positive, got %v", o.AnimationInterval))
	}
	steps := []struct {
		name     string
		step     *float64
		min, max *float64
	}{
		{"xStep", o.XStep, o.XMin, o.XMax},
		{"yStep", o.YStep, o.YMin, o.YMax},
		{"zStep", o.ZStep, o.ZMin, o.ZMax},
		{"xBarWidth", o.XBarWidth, nil, nil},
		{"yBarWidth", o.YBarWidth, nil, nil},
	}
	for _, s := range steps {
		if s.step == nil {
			continue
		}
		if !(*s.step > 0) || math.IsInf(*s.step, 0) {
			err = multierr.Append(err, errors.Errorf("%s must be positive and finite, got %v", s.name, *s.step))
			continue
		}
		if s.min != nil && s.max != nil && (*s.max-*s.min)/(*s.step) > MaxSteps {
			err = multierr.Append(err, errors.Errorf("%s %v gives more than %d ticks between %v and %v",
				s.name, *s.step, MaxSteps, *s.min, *s.max))
		}
	}
	for name, c := range map[string]string{
		"dataColor.fill":   o.DataColor.Fill,
		"dataColor.stroke": o.DataColor.Stroke,
		"axisColor":        o.AxisColor,
		"gridColor":        o.GridColor,
		"backgroundColor":  o.BackgroundColor,
	} {
		if _, e := render.ParseHex(c); e != nil {
			err = multierr.Append(err, errors.Wrap(e, name))
		}
	}
	for name, v := range map[string]string{"xCenter": o.XCenter, "yCenter": o.YCenter} {
		if _, e := parseOffset(v, 100); e != nil {
			err = multierr.Append(err, errors.Wrap(e, name))
		}
	}
	return err
}

func (o Options) palette() Palette {
	return Palette{
		Fill:       render.MustHex(o.DataColor.Fill),
		Stroke:     render.MustHex(o.DataColor.Stroke),
		Axis:       render.MustHex(o.AxisColor),
		Grid:       render.MustHex(o.GridColor),
		Background: render.MustHex(o.BackgroundColor),
		Gray:       render.ColorGray,
		Info:       render.ColorGray,
	}
}

// center resolves XCenter and YCenter for a canvas size.
func (o Options) center(width, height float64) math3d.Vec2 {
	x, _ := parseOffset(o.XCenter, width)
	y, _ := parseOffset(o.YCenter, height)
	return math3d.V2(x, y)
}

// parseOffset parses "12", "12px" or "55%" (of total).
func parseOffset(s string, total float64) (float64, error) {
	s = strings.TrimSpace(s)
	pct := strings.HasSuffix(s, "%")
	s = strings.TrimSuffix(strings.TrimSuffix(s, "%"), "px")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid offset %q", s)
	}
	if pct {
		return v / 100 * total, nil
	}
	return v, nil
}

func defaultValueLabel(v float64) string {
	return fmt.Sprintf("%g", v)
}

func (o Options) valueLabels() (x, y, z func(float64) string) {
	x, y, z = o.XValueLabel, o.YValueLabel, o.ZValueLabel
	if x == nil {
		x = defaultValueLabel
	}
	if y == nil {
		y = defaultValueLabel
	}
	if z == nil {
		z = defaultValueLabel
	}
	return x, y, z
}
