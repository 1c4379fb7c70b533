package encoder

// --------------------------------------------------------------------------
// Conditional Write Option
// --------------------------------------------------------------------------

// ConditionalChange restricts when a JSON.SET write takes effect. It is
// emitted as a single flag token after the value token. There is no "none"
// value - an unconditional write simply omits the option.
type ConditionalChange string

const (
	// OnlyIfExists - only update an existing value ("XX").
	OnlyIfExists ConditionalChange = "XX"
	// OnlyIfDoesNotExist - only write if nothing exists at the path ("NX").
	OnlyIfDoesNotExist ConditionalChange = "NX"
)

// ToArgs returns the option's token form.
func (c ConditionalChange) ToArgs() []string {
	return []string{string(c)}
}

// --------------------------------------------------------------------------
// Read Formatting Options
// --------------------------------------------------------------------------

// Option flag tokens of JSON.GET.
const (
	flagIndent  = "INDENT"
	flagNewline = "NEWLINE"
	flagSpace   = "SPACE"
)

// GetOptions holds the formatting directives of JSON.GET. Each set option
// is emitted as a flag-name/value token pair; unset options are omitted
// entirely, never emitted as placeholders. The options precede the path
// tokens on the wire.
type GetOptions struct {
	// Indent is the prefix applied per nesting level
	Indent string
	// Newline is the line terminator between elements
	Newline string
	// Space is the separator printed after each object key's colon
	Space string
}

// ToArgs serializes the option set into its canonical token sequence.
// The emission order INDENT, NEWLINE, SPACE is fixed.
func (o GetOptions) ToArgs() []string {
	args := make([]string, 0, 6)
	if o.Indent != "" {
		args = append(args, flagIndent, o.Indent)
	}
	if o.Newline != "" {
		args = append(args, flagNewline, o.Newline)
	}
	if o.Space != "" {
		args = append(args, flagSpace, o.Space)
	}
	return args
}
