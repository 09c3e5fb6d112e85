package input

// Direction is a movement request from the keyboard, used for focus walks
// and zone switching.
type Direction int

const (
	Up Direction = iota //nolint:varnamelen
	Down
	Left
	Right
)
