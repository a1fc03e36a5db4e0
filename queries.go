// queries.go — variant-indexed lookups over a Result's error sequence.
//
// Scope:
//   - Zero-policy helpers that answer "does this failed result carry variant
//     V, and what is its value". All are total: safe on successful results
//     (they report absence) and on the malformed zero value.
//   - Free generic functions rather than methods: Go methods cannot introduce
//     the variant type parameter V.
//
// V follows the same matching rule as set membership (errorset.go): a dynamic
// type assertion, so V may be a concrete variant or an interface over several.
package result

// FindError returns the first error of variant V in the failure sequence, in
// original order. The second return reports presence; it is false on a
// successful result or when no error matches.
func FindError[V error, T any, S ErrorSet](r Result[T, S]) (V, bool) {
	for _, err := range r.errs {
		if v, ok := err.(V); ok {
			return v, true
		}
	}
	var zero V
	return zero, false
}

// FindErrors returns every error of variant V, preserving the original
// sequence order. It returns nil on a successful result or when none match.
func FindErrors[V error, T any, S ErrorSet](r Result[T, S]) []V {
	var out []V
	for _, err := range r.errs {
		if v, ok := err.(V); ok {
			out = append(out, v)
		}
	}
	return out
}

// HasError reports whether at least one error of variant V is present.
func HasError[V error, T any, S ErrorSet](r Result[T, S]) bool {
	_, ok := FindError[V](r)
	return ok
}

// HasSingleError reports whether the result failed with EXACTLY one error and
// that error is of variant V. A second error of any variant makes this false
// even when exactly one V is present; use HasError for the looser question.
func HasSingleError[V error, T any, S ErrorSet](r Result[T, S]) bool {
	if len(r.errs) != 1 {
		return false
	}
	_, ok := r.errs[0].(V)
	return ok
}
