package value

import (
	"fmt"
	"strings"
)

// Value is one of the fifteen UNO card faces. None is the zero value and
// means "no value constraint" in deck searches.
type Value struct {
	name   string
	number int
}

const noNumber = -1

var (
	Zero  = Value{"ZERO", 0}
	One   = Value{"ONE", 1}
	Two   = Value{"TWO", 2}
	Three = Value{"THREE", 3}
	Four  = Value{"FOUR", 4}
	Five  = Value{"FIVE", 5}
	Six   = Value{"SIX", 6}
	Seven = Value{"SEVEN", 7}
	Eight = Value{"EIGHT", 8}
	Nine  = Value{"NINE", 9}

	Skip         = Value{"SKIP", noNumber}
	Reverse      = Value{"REVERSE", noNumber}
	DrawTwo      = Value{"DRAW_TWO", noNumber}
	Wild         = Value{"WILD", noNumber}
	WildDrawFour = Value{"WILD_DRAW_FOUR", noNumber}

	None = Value{}
)

var all = []Value{
	Zero, One, Two, Three, Four, Five, Six, Seven, Eight, Nine,
	Skip, Reverse, DrawTwo, Wild, WildDrawFour,
}

var values = func() map[string]Value {
	m := make(map[string]Value, len(all))
	for _, v := range all {
		m[v.name] = v
	}
	return m
}()

// All returns every face in a fixed order, numbers first.
func All() []Value {
	return append([]Value(nil), all...)
}

func ByName(name string) (Value, error) {
	v, ok := values[strings.ToUpper(name)]
	if !ok {
		return None, fmt.Errorf("invalid value '%s'", name)
	}
	return v, nil
}

func ByNumber(number int) (Value, error) {
	if number < 0 || number > 9 {
		return None, fmt.Errorf("no card value for number %d", number)
	}
	return all[number], nil
}

func (v Value) Name() string {
	return v.name
}

func (v Value) String() string {
	return v.name
}

func (v Value) IsWild() bool {
	return v == Wild || v == WildDrawFour
}

// Number reports the digit of a number face; ok is false for action faces.
func (v Value) Number() (int, bool) {
	if v.number == noNumber || v == None {
		return 0, false
	}
	return v.number, true
}

func (v Value) MarshalJSON() ([]byte, error) {
	if v == None {
		return nil, fmt.Errorf("cannot serialize the zero value")
	}
	return []byte(`"` + v.name + `"`), nil
}

func (v *Value) UnmarshalJSON(data []byte) error {
	name := strings.Trim(string(data), `"`)
	parsed, err := ByName(name)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}
