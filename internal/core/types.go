package core

// Stepper advances a board by one generation. Step treats the current
// board as read-only and returns a freshly allocated next board; the
// caller owns the result and may discard the input afterwards.
type Stepper interface {
	Name() string
	Step(*Board) *Board
}

// Factory constructs a Stepper for the requested worker count.
type Factory func(workers int) Stepper

var steppers = map[string]Factory{}

// Register adds a stepper factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	steppers[name] = f
}

// Steppers exposes the registry of available stepper factories.
func Steppers() map[string]Factory {
	return steppers
}
