package util

// Must unwraps value or panics with err. Only for program setup where an
// error means the program cannot continue.
func Must[T any](value T, err error) T {
	if err != nil {
		panic(err)
	}

	return value
}
