package draw

import "fmt"

// Op identifies a recorded surface call.
type Op int

const (
	OpResize Op = iota
	OpTranslate
	OpStrokeColor
	OpStrokeWidth
	OpFilter
	OpClearRect
	OpBeginPath
	OpMoveTo
	OpLineTo
	OpClosePath
	OpStroke
)

var opNames = [...]string{
	OpResize:      "resize",
	OpTranslate:   "translate",
	OpStrokeColor: "strokeColor",
	OpStrokeWidth: "strokeWidth",
	OpFilter:      "filter",
	OpClearRect:   "clearRect",
	OpBeginPath:   "beginPath",
	OpMoveTo:      "moveTo",
	OpLineTo:      "lineTo",
	OpClosePath:   "closePath",
	OpStroke:      "stroke",
}

func (o Op) String() string {
	if o >= 0 && int(o) < len(opNames) {
		return opNames[o]
	}
	return fmt.Sprintf("Op(%d)", int(o))
}

// Command is one recorded surface call. Args holds the numeric arguments
// in call order; Color and Filter are set for their ops only.
type Command struct {
	Op     Op
	Args   []float64
	Color  Color
	Filter Filter
}

// Recorder is a Surface that draws nothing and records every call. It
// turns a frame into a plain list of draw commands.
type Recorder struct {
	width, height int
	Commands      []Command
}

// NewRecorder creates a recorder reporting the given size.
func NewRecorder(width, height int) *Recorder {
	return &Recorder{width: width, height: height}
}

// Reset drops recorded commands but keeps the size.
func (r *Recorder) Reset() {
	r.Commands = r.Commands[:0]
}

// Count returns how many commands of the given op were recorded.
func (r *Recorder) Count(op Op) int {
	n := 0
	for _, c := range r.Commands {
		if c.Op == op {
			n++
		}
	}
	return n
}

func (r *Recorder) add(op Op, args ...float64) {
	r.Commands = append(r.Commands, Command{Op: op, Args: args})
}

func (r *Recorder) Size() (int, int) { return r.width, r.height }

func (r *Recorder) Resize(width, height int) {
	r.width, r.height = width, height
	r.add(OpResize, float64(width), float64(height))
}

func (r *Recorder) Translate(x, y float64) { r.add(OpTranslate, x, y) }

func (r *Recorder) SetStrokeColor(c Color) {
	r.Commands = append(r.Commands, Command{Op: OpStrokeColor, Color: c})
}

func (r *Recorder) SetStrokeWidth(w float64) { r.add(OpStrokeWidth, w) }

func (r *Recorder) SetFilter(f Filter) {
	r.Commands = append(r.Commands, Command{Op: OpFilter, Filter: f})
}

func (r *Recorder) ClearRect(x, y, w, h float64) { r.add(OpClearRect, x, y, w, h) }
func (r *Recorder) BeginPath()                   { r.add(OpBeginPath) }
func (r *Recorder) MoveTo(x, y float64)          { r.add(OpMoveTo, x, y) }
func (r *Recorder) LineTo(x, y float64)          { r.add(OpLineTo, x, y) }
func (r *Recorder) ClosePath()                   { r.add(OpClosePath) }
func (r *Recorder) Stroke()                      { r.add(OpStroke) }
