package search

type errorType int

const (
	ErrNotError errorType = iota
	ErrNotFound
)

var errMap = map[errorType]string{
	ErrNotError: "not a valid error",
	ErrNotFound: "needle not found",
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
