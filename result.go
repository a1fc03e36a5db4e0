// result.go — the Result container for operation-result.
//
// A Result[T, S] holds exactly one of:
//   - a success value of type T, or
//   - a non-empty, ordered sequence of error values, every one of which is a
//     member of the declared error set S.
//
// Invariants:
//   - Exclusivity: exactly one arm is populated. The only malformed shape
//     reachable from outside the package is the zero value (neither arm);
//     operations that require a valid state fail fast on it.
//   - Closed-set membership: enforced at every construction boundary
//     (construct.go, transform.go), never deferred to read time. Reads
//     therefore never re-validate.
//   - Immutability: a Result never changes after construction. Map and
//     Forward build new values; accessors return defensive copies. Sharing a
//     Result across goroutines needs no synchronization.
package result

// Result is a typed outcome: either a success value or a non-empty error
// sequence constrained to the declared set S. Construct via Success, Failure,
// Failures, Map, or Forward; the zero value is malformed.
type Result[T any, S ErrorSet] struct {
	value T
	errs  []error
	ok    bool
}

// IsSuccessful reports whether the success arm is populated.
func (r Result[T, S]) IsSuccessful() bool { return r.ok }

// IsFailed reports whether the error arm is populated.
//
// On a well-formed Result this is the complement of IsSuccessful. Both report
// false on the malformed zero value.
func (r Result[T, S]) IsFailed() bool { return len(r.errs) > 0 }

// Value returns the success value. Reading the value of a failed (or
// malformed) Result is a contract violation: it panics with an
// InvariantViolation whose message carries the full error sequence.
func (r Result[T, S]) Value() T {
	r.EnsureSuccess()
	return r.value
}

// EnsureSuccess is the guard of Value without the read: it returns normally
// on success and panics with the same InvariantViolation otherwise.
func (r Result[T, S]) EnsureSuccess() {
	if r.ok {
		return
	}
	if len(r.errs) == 0 {
		panic(violate("success required on malformed (zero value) result of set "+setName[S](), nil))
	}
	panic(violate("success required on failed result of set "+setName[S](), r.errs))
}

// Errors returns a defensive copy of the error sequence in its original
// order, or nil on success.
func (r Result[T, S]) Errors() []error {
	if len(r.errs) == 0 {
		return nil
	}
	out := make([]error, len(r.errs))
	copy(out, r.errs)
	return out
}

// ErrorCount returns the total number of errors held; 0 on success.
func (r Result[T, S]) ErrorCount() int { return len(r.errs) }

// wellFormed reports whether exactly one arm is populated.
func (r Result[T, S]) wellFormed() bool {
	if r.ok {
		return len(r.errs) == 0
	}
	return len(r.errs) > 0
}
