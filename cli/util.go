package cli

// MustGet is used with an [input.Input] getter to panic if the argument or option is not declared.
// The developer usually knows whether a get call will fail, so this function makes handlers easier to read.
//
//	name := cli.MustGet(in.Argument("name")).String()
func MustGet[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
