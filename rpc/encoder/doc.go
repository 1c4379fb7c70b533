// Package encoder converts logical document store operations into the
// ordered token vectors of the wire protocol.
//
// The package provides:
//
//   - ArgsBuilder: a generic argument vector builder parameterized over
//     the token representation (UTF-8 text or binary-safe bytes). The
//     encoding logic exists exactly once; the two representations are the
//     two instantiations of the type parameter.
//
//   - Option serialization: the conditional-write flag of JSON.SET and
//     the formatting option set of JSON.GET, each rendered into their
//     canonical token form with unset options omitted.
//
// Builders are single-use, hold no shared state and perform no I/O.
package encoder
