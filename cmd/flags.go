package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// flagGetter is one of the typed pflag getters, e.g. FlagSet.GetFloat64.
type flagGetter[T any] func(name string) (T, error)

// flagValue reads a flag registered in init(). A lookup error means the flag
// name or type is wrong in code, so it panics.
func flagValue[T any](name string, get flagGetter[T]) T {
	val, err := get(name)
	if err != nil {
		panic(fmt.Sprintf("flag error for --%s: %v", name, err))
	}
	return val
}

// overrideFlag copies the flag into dst only when the user set it, so preset
// and environment values survive untouched defaults.
func overrideFlag[T any](cmd *cobra.Command, name string, get flagGetter[T], dst *T) {
	if cmd.Flags().Changed(name) {
		*dst = flagValue(name, get)
	}
}

// overrideOptionalFlag is overrideFlag for settings where nil means "auto".
func overrideOptionalFlag[T any](cmd *cobra.Command, name string, get flagGetter[T], dst **T) {
	if cmd.Flags().Changed(name) {
		val := flagValue(name, get)
		*dst = &val
	}
}
