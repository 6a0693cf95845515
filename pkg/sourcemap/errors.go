package sourcemap

import "errors"

// ErrInvalidMapping is returned by Generator.AddMapping when validation is
// enabled and the mapping's shape violates the rules in validateMapping.
var ErrInvalidMapping = errors.New("sourcemap: invalid mapping")

// ErrMalformedInput is returned by FromSourceMap when the supplied JSON or
// its mappings string cannot be parsed.
var ErrMalformedInput = errors.New("sourcemap: malformed input")
