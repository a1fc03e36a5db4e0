// transform.go — Map and Forward, the two ways a Result becomes another.
//
// Map stays inside the declared set: it transforms the success value and
// passes a failure through untouched, so no re-validation is needed.
//
// Forward crosses sets: it re-expresses a Result over one declared set as a
// Result over another, remapping each error exactly once and re-validating
// every mapped error against the destination set. The destination set is a
// hard upper bound on what a forwarding function may return, enforced at the
// boundary rather than only at the origin.
//
// Every precondition failure below is a programmer bug, reported by panicking
// with *InvariantViolation — never by returning a failed Result.
package result

// Map transforms the success value with f, producing a Result over the SAME
// error set. On failure the error sequence is passed through unchanged
// (errors are untouched, so membership needs no re-check). f must be non-nil.
func Map[T, U any, S ErrorSet](r Result[T, S], f func(T) U) Result[U, S] {
	if f == nil {
		panic(violate("map: nil transform for set "+setName[S](), nil))
	}
	if r.ok {
		return Result[U, S]{value: f(r.value), ok: true}
	}
	// The sequence is immutable and only ever exposed via defensive copies,
	// so the new Result may share it.
	return Result[U, S]{errs: r.errs}
}

// Forward re-expresses r as a Result over the destination set NS.
//
// Exactly the callbacks the source state needs are consulted:
//   - success: on a successful source, its return becomes the new success
//     value. Required whenever the source is successful.
//   - failure: on a failed source, applied to each error in original order;
//     every mapped error must be a member of NS. Required whenever the
//     source is failed.
//
// Preconditions (each failure panics with *InvariantViolation):
//  1. at least one callback is supplied;
//  2. r is well-formed (exactly one arm populated);
//  3. a successful source has a success callback;
//  4. a failed source has a failure callback.
//
// On the success path the failure callback and NS membership are never
// touched. On the failure path a mapped error outside NS means an unexpected
// error leaked through forwarding; the violation enumerates the offenders.
func Forward[U any, NS ErrorSet, T any, S ErrorSet](
	r Result[T, S],
	success func(T) U,
	failure func(error) error,
) Result[U, NS] {
	if success == nil && failure == nil {
		panic(violate("forward: no callbacks supplied ("+setName[S]()+" -> "+setName[NS]()+")", nil))
	}
	if !r.wellFormed() {
		panic(violate("forward: malformed source result of set "+setName[S](), r.errs))
	}

	if r.ok {
		if success == nil {
			panic(violate("forward: successful source requires a success callback ("+
				setName[S]()+" -> "+setName[NS]()+")", nil))
		}
		return Result[U, NS]{value: success(r.value), ok: true}
	}

	if failure == nil {
		panic(violate("forward: failed source requires a failure callback ("+
			setName[S]()+" -> "+setName[NS]()+")", r.errs))
	}
	mapped := make([]error, len(r.errs))
	for i, err := range r.errs {
		mapped[i] = failure(err)
	}
	mustMembers[NS]("forward", mapped)
	return Result[U, NS]{errs: mapped}
}
