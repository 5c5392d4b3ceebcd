package report

import (
	"encoding/json"
	"math"
	"strconv"
)

type ChartType string

const (
	ChartBar  ChartType = "bar"
	ChartLine ChartType = "line"
	ChartPie  ChartType = "pie"
)

// tickStep is the y-axis step of charts with custom ticks.
const tickStep = 55

// Value is a chart data point, an invalid value leaves a gap.
type Value struct {
	Number float64
	Valid  bool
}

func Number(v float64) Value {
	return Value{Number: v, Valid: true}
}

func (v Value) String() string {
	if !v.Valid {
		return ""
	}
	return strconv.FormatFloat(v.Number, 'f', -1, 64)
}

func (v Value) MarshalJSON() ([]byte, error) {
	if !v.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(v.Number)
}

// Style is the color set of a dataset.
type Style struct {
	BackgroundColor string `json:"backgroundColor,omitempty"`
	BorderColor     string `json:"borderColor,omitempty"`
	BorderWidth     int    `json:"borderWidth,omitempty"`
}

var (
	styleRed = Style{
		BackgroundColor: "rgba(255, 99, 132, 0.2)",
		BorderColor:     "rgba(255,99,132,1)",
		BorderWidth:     1,
	}
	styleBlue = Style{
		BackgroundColor: "rgba(118, 99, 255, 0.2)",
		BorderColor:     "rgba(118,99,132,1)",
		BorderWidth:     1,
	}
	styleGreen = Style{
		BackgroundColor: "rgba(99, 255, 157, 0.2)",
		BorderColor:     "rgba(99,99,132,1)",
		BorderWidth:     1,
	}
)

const (
	colorDone    = "lightgreen"
	colorNotDone = "lightgray"
)

type Dataset struct {
	Label string  `json:"label,omitempty"`
	Data  []Value `json:"data"`
	// Type overrides the chart type for this dataset (a cumulative line on
	// top of bars).
	Type ChartType `json:"type,omitempty"`
	Style
	// Colors are per point background colors (pie slices).
	Colors []string `json:"pointColors,omitempty"`
}

// Chart is a chart definition in the shape the chart library takes it.
type Chart struct {
	ID       string    `json:"id"`
	Type     ChartType `json:"type"`
	Labels   []string  `json:"labels"`
	Datasets []Dataset `json:"datasets"`
	// YMax and StepSize are set on charts with custom ticks, zero means
	// automatic.
	YMax     float64 `json:"yMax,omitempty"`
	StepSize float64 `json:"stepSize,omitempty"`
	// ScaledTooltip marks charts whose first dataset is in scaled credits,
	// the tooltip divides those back.
	ScaledTooltip bool `json:"scaledTooltip,omitempty"`
}

// CeilToStep rounds v up to the next multiple of step.
func CeilToStep(v, step float64) float64 {
	return math.Ceil(v/step) * step
}

// withCustomTicks sets the y-axis maximum to the largest data point
// rounded up to tickStep.
func (c Chart) withCustomTicks() Chart {
	var highest float64
	for _, d := range c.Datasets {
		for _, v := range d.Data {
			if v.Valid && v.Number > highest {
				highest = v.Number
			}
		}
	}
	c.YMax = CeilToStep(highest, tickStep)
	c.StepSize = tickStep
	return c
}

func values(numbers []float64) []Value {
	out := make([]Value, len(numbers))
	for i, n := range numbers {
		out[i] = Number(n)
	}
	return out
}
