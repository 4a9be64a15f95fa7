package list

type errorType int

const (
	ErrNotError errorType = iota
	ErrEmpty
	ErrNotFound
	ErrIndexOutOfRange
)

var errMap = map[errorType]string{
	ErrNotError:        "not a valid error",
	ErrEmpty:           "list is empty",
	ErrNotFound:        "value not in list",
	ErrIndexOutOfRange: "index out of range",
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
