// construct.go — constructors for operation-result.
//
// All three constructors fail fast (panic with *InvariantViolation) on
// contract violations: a non-member error value, or an empty failure
// sequence. A constructor never returns a malformed Result.
//
// Call-site ergonomics: bind the set once per layer and the type arguments
// stay short:
//
//	type LoginErrors = result.Of2[InvalidCredentials, EmailNotConfirmed]
//
//	return result.Failure[Session, LoginErrors](InvalidCredentials{})
package result

// Success builds a successful Result holding value. It never fails: the
// declared set constrains only the error arm.
func Success[T any, S ErrorSet](value T) Result[T, S] {
	return Result[T, S]{value: value, ok: true}
}

// Failure builds a failed Result holding the single error err. err must be a
// member of the declared set S; a non-member (including nil) is a contract
// violation reported immediately.
func Failure[T any, S ErrorSet](err error) Result[T, S] {
	mustMembers[S]("failure constructor", []error{err})
	return Result[T, S]{errs: []error{err}}
}

// Failures builds a failed Result holding errs in the given order. The
// sequence must be non-empty and every element must be a member of S; either
// violation is reported immediately. The input slice is copied.
func Failures[T any, S ErrorSet](errs []error) Result[T, S] {
	if len(errs) == 0 {
		panic(violate("failures constructor: empty error sequence for set "+setName[S](), nil))
	}
	copied := make([]error, len(errs))
	copy(copied, errs)
	mustMembers[S]("failures constructor", copied)
	return Result[T, S]{errs: copied}
}
