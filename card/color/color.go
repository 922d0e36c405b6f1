package color

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// Color is one of the five UNO card colors. Black is the color of wild cards
// whose effective color has not been chosen yet; None is the zero value and
// means "no color constraint" in deck searches.
type Color struct {
	name string
}

var (
	Red    = Color{"RED"}
	Green  = Color{"GREEN"}
	Blue   = Color{"BLUE"}
	Yellow = Color{"YELLOW"}
	Black  = Color{"BLACK"}

	None = Color{}
)

// Stdout understands the ANSI sequences emitted by Paint on every platform.
var Stdout io.Writer = color.Output

var paints = map[string]func(string, ...interface{}) string{
	Red.name:    color.New(color.FgHiRed).SprintfFunc(),
	Yellow.name: color.New(color.FgHiYellow).SprintfFunc(),
	Green.name:  color.New(color.FgHiGreen).SprintfFunc(),
	Blue.name:   color.New(color.FgHiCyan).SprintfFunc(),
	Black.name:  color.New(color.FgHiBlack).SprintfFunc(),
}

var colors = map[string]Color{
	Red.name:    Red,
	Yellow.name: Yellow,
	Green.name:  Green,
	Blue.name:   Blue,
	Black.name:  Black,
}

// All returns the four playable colors, Black excluded.
func All() []Color {
	return []Color{Red, Yellow, Green, Blue}
}

func ByName(name string) (Color, error) {
	c, ok := colors[strings.ToUpper(name)]
	if !ok {
		return None, fmt.Errorf("invalid color '%s'", name)
	}
	return c, nil
}

func (c Color) Name() string {
	return c.name
}

func (c Color) IsBlack() bool {
	return c == Black
}

func (c Color) Paint(text string) string {
	paint, ok := paints[c.name]
	if !ok {
		return text
	}
	return paint(text)
}

func (c Color) Paintf(format string, args ...interface{}) string {
	paint, ok := paints[c.name]
	if !ok {
		return fmt.Sprintf(format, args...)
	}
	return paint(format, args...)
}

func (c Color) String() string {
	return c.Paint(c.name)
}

func (c Color) MarshalJSON() ([]byte, error) {
	if c == None {
		return nil, fmt.Errorf("cannot serialize the zero color")
	}
	return []byte(`"` + c.name + `"`), nil
}

func (c *Color) UnmarshalJSON(data []byte) error {
	name := strings.Trim(string(data), `"`)
	parsed, err := ByName(name)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
