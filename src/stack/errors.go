package stack

type errorType int

const (
	ErrNotError errorType = iota
	ErrEmpty
)

var errMap = map[errorType]string{
	ErrNotError: "not a valid error",
	ErrEmpty:    "stack is empty",
}

func (e errorType) Error() string {
	return errMap[e]
}

func (e errorType) Is(target error) bool {
	t, ok := target.(errorType)
	if !ok {
		return false
	}
	return t == e
}
