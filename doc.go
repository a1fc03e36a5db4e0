// doc.go — package documentation for operation-result
//
// Package result provides a typed result container over closed, declared
// error sets. A function states, in its own return type, the exact failure
// variants it may produce; callers branch on variant identity instead of
// catching broad errors or trusting out-of-band documentation. It is designed
// to be:
//   - Explicit at call sites (the error set is part of the signature)
//   - Strict at boundaries (membership re-validated on every construction
//     and every forwarding step)
//   - Policy-free (no logging/HTTP/JSON/retry rules in core)
//
// # Two Error Tiers
//
// The package keeps two failure channels strictly apart:
//
//   - Expected errors: domain outcomes a caller is meant to handle. They
//     travel as data inside a failed Result and are constrained to the
//     declared set.
//   - Contract violations: programmer bugs — a non-member error value, an
//     empty failure sequence, a missing Forward callback, a malformed
//     Result. These panic with *InvariantViolation at the point of
//     violation; the core never models, recovers, or retries them.
//
// Do not unify the tiers: the separation is the mechanism's entire value.
//
// # Declaring an Error Set
//
// An error set is a zero-data descriptor type, Of1 through Of6, parameterized
// by the variant types. Bind it once per layer:
//
//	type Unauthorized struct{}
//	func (Unauthorized) Error() string { return "unauthorized" }
//
//	type ValidationError struct{ Field string }
//	func (e ValidationError) Error() string { return "invalid " + e.Field }
//
//	type TransportErrors = result.Of2[Unauthorized, ValidationError]
//
// A producer then returns Result values over that set:
//
//	func fetchProfile(id string) result.Result[Profile, TransportErrors] {
//	    if !authorized(id) {
//	        return result.Failure[Profile, TransportErrors](Unauthorized{})
//	    }
//	    ...
//	    return result.Success[Profile, TransportErrors](p)
//	}
//
// Membership is a dynamic-type test: the error's concrete type must assert to
// one of the declared variants. Pointer and value types are distinct variants;
// declare the one you construct.
//
// # Consuming a Result
//
// Queries are total — safe on success and failure alike:
//
//	r := fetchProfile(id)
//	if result.HasError[Unauthorized](r) {
//	    return login()
//	}
//	for _, ve := range result.FindErrors[ValidationError](r) {
//	    markField(ve.Field)
//	}
//	p := r.Value() // panics with InvariantViolation if r failed
//
// Value and EnsureSuccess are assertions, not queries: reading the value of a
// failed Result is a defect, and the panic message carries the full error
// sequence so the mismatch is locatable from a log line.
//
// # Forwarding Between Sets
//
// Forward re-expresses a lower-level Result as one over the caller's own
// declared set, remapping each error exactly once and re-validating every
// mapped error against the destination set:
//
//	type LoginErrors = result.Of2[InvalidCredentials, EmailNotConfirmed]
//
//	func login(creds Credentials) result.Result[Session, LoginErrors] {
//	    r := authClient.Authenticate(creds) // Result[Token, TransportErrors]
//	    return result.Forward[Session, LoginErrors](r,
//	        func(t Token) Session { return newSession(t) },
//	        func(err error) error {
//	            if _, ok := err.(Unauthorized); ok {
//	                return InvalidCredentials{}
//	            }
//	            return err
//	        })
//	}
//
// The destination set is a hard upper bound: a mapped error outside it is an
// "unexpected error leaked through forwarding" violation, caught at the
// boundary rather than discovered downstream. A successful source needs a
// success callback; a failed source needs a failure callback; supplying
// neither is always a violation.
//
// # Compile-Time Narrowing
//
// A variant may itself be an interface. Declaring a sealed interface over
// your variants and using it as the sole member of Of1 moves the membership
// guarantee to compile time wherever construction goes through typed values:
//
//	type loginError interface{ error; loginError() }
//	type LoginErrors = result.Of1[loginError]
//
// The runtime check at Failure/Forward boundaries remains as the backstop for
// values that arrive as plain error.
//
// # Immutability & Concurrency
//
// A Result is an immutable value: Map and Forward build new Results, Errors
// returns a defensive copy, and nothing mutates after construction. Results
// are therefore safe to share across concurrent readers without copying or
// locks. A Result is a completed outcome, not an in-flight operation — there
// is no cancellation and nothing to tear down. Pairing Results with whatever
// concurrency machinery the host application has (channels, futures, worker
// pools) requires no support from this package.
//
// # Formatting
//
// Result and InvariantViolation implement fmt.Formatter:
//   - %v, %s → concise one-liner (ok(...) / failed[...])
//   - %+v    → verbose multi-line (set name, state, numbered errors, and for
//     violations the capture-site stack)
//   - %q     → quoted concise form
//
// # Minimal Surface, Clear Semantics
//
// The surface is intentionally small:
//   - Of1..Of6 descriptors
//   - Success / Failure / Failures
//   - IsSuccessful / IsFailed / Value / EnsureSuccess / Errors / ErrorCount
//   - FindError / FindErrors / HasError / HasSingleError
//   - Map / Forward
//
// See example_test.go for runnable demonstrations.
package result
