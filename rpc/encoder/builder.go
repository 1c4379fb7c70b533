package encoder

import (
	"strconv"
)

// --------------------------------------------------------------------------
// Token Abstraction
// --------------------------------------------------------------------------

// Token is the set of argument representations a command can be encoded
// in: UTF-8 text tokens or binary-safe byte tokens. A command invocation
// is encoded entirely in one representation - the type parameter of
// ArgsBuilder makes mixing the two a compile time error instead of a
// runtime check.
type Token interface {
	~string | ~[]byte
}

// --------------------------------------------------------------------------
// Argument Builder
// --------------------------------------------------------------------------

// ArgsBuilder assembles the ordered argument vector of a single command
// invocation. The first token is always the command name, followed by the
// key token and the per-command option, path and value tokens in their
// documented order. The builder performs no validation beyond what the
// type system already guarantees - callers pre-quote JSON scalar values
// before passing them as value tokens.
type ArgsBuilder[T Token] struct {
	args [][]byte
}

// NewArgsBuilder creates a builder with the command name as first token.
func NewArgsBuilder[T Token](command string) *ArgsBuilder[T] {
	b := &ArgsBuilder[T]{args: make([][]byte, 0, 4)}
	return b.AddName(command)
}

// Add appends one or more tokens in the invocation's representation.
func (b *ArgsBuilder[T]) Add(tokens ...T) *ArgsBuilder[T] {
	for _, t := range tokens {
		b.args = append(b.args, []byte(string(t)))
	}
	return b
}

// AddName appends protocol keyword tokens (command names, option flags).
// Keywords are plain ASCII and identical in both representations.
func (b *ArgsBuilder[T]) AddName(names ...string) *ArgsBuilder[T] {
	for _, n := range names {
		b.args = append(b.args, []byte(n))
	}
	return b
}

// AddInt appends an integer argument in its canonical decimal text form.
// The rendering is the same regardless of the token representation.
func (b *ArgsBuilder[T]) AddInt(i int64) *ArgsBuilder[T] {
	b.args = append(b.args, []byte(strconv.FormatInt(i, 10)))
	return b
}

// Build returns the finished argument vector.
func (b *ArgsBuilder[T]) Build() [][]byte {
	return b.args
}
