// Package commands provides the built-in internal commands of the Sorrel
// shell. Each command implements pipeline.Command and produces a lazy result
// sequence of values, debug values, control actions, or errors.
package commands

import (
	"github.com/sambeau/sorrel/pkg/sorrel/errors"
	"github.com/sambeau/sorrel/pkg/sorrel/pipeline"
	"github.com/sambeau/sorrel/pkg/sorrel/tag"
	"github.com/sambeau/sorrel/pkg/sorrel/value"
)

// stringArg extracts the i-th positional argument in its string form. The
// second result is the argument's own tag. Returns present=false when the
// slot is absent.
func stringArg(args pipeline.CommandArgs, i int) (s string, t tag.Tag, present bool, err *errors.ShellError) {
	v, ok := args.Call.Args.Nth(i)
	if !ok {
		return "", tag.Tag{}, false, nil
	}
	s, cerr := value.AsString(v)
	if cerr != nil {
		return "", v.Tag, true, cerr
	}
	return s, v.Tag, true, nil
}

// intArg extracts the i-th positional argument as a native integer.
func intArg(args pipeline.CommandArgs, i int, command string) (n int64, present bool, err *errors.ShellError) {
	v, ok := args.Call.Args.Nth(i)
	if !ok {
		return 0, false, nil
	}
	if !v.IsPrimitive(value.KindInt) || !v.Value.Primitive.Int.IsInt64() {
		return 0, true, errors.ArgumentError(command, "expected an integer", v.Tag)
	}
	return v.Value.Primitive.Int.Int64(), true, nil
}
