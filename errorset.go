// errorset.go — closed error-set descriptors for the operation-result core.
//
// Scope (tiny core):
//   - Define the ErrorSet contract: a pure membership predicate over a closed
//     list of declared error variant types.
//   - Provide the zero-data descriptors Of1..Of6, parameterized by 1..6
//     distinct variant types. Descriptors carry no state; the declared set
//     travels entirely in the type.
//   - Keep policy out: no registries, no central code enum, no HTTP/logging.
//
// Design notes:
//   - Membership is a dynamic-type test: an error value belongs to the set iff
//     it asserts to one of the declared variant types. A variant may itself be
//     an interface; declaring a single sealed interface via Of1 turns set
//     membership into something the compiler can check exhaustively at the
//     call site (see doc.go).
//   - Overlapping variants (e.g. an interface variant that subsumes a struct
//     variant) are logically redundant but never an error; Member simply ORs
//     the per-variant tests.
//   - nil is a member of no set: a nil error carries no variant.
package result

import "fmt"

// ErrorSet is the contract every error-set descriptor satisfies. It is a pure
// predicate: no side effects, no shared state, safe to evaluate concurrently.
//
// The shipped implementations are the zero-data descriptors Of1..Of6. Result
// values are parameterized by a descriptor type, and every operation that must
// validate membership consults the descriptor's zero value.
type ErrorSet interface {
	// Member reports whether err's dynamic type matches one of the declared
	// variant types. Member(nil) is always false.
	Member(err error) bool
}

// isVariant reports whether err's dynamic type asserts to the variant type E.
// E may be a concrete type or an interface; nil never matches.
func isVariant[E error](err error) bool {
	if err == nil {
		return false
	}
	_, ok := err.(E)
	return ok
}

// Of1 declares a closed error set with a single variant type.
//
// E1 may be a sealed interface over several concrete variants, which moves the
// membership guarantee to compile time for typed construction sites.
type Of1[E1 error] struct{}

func (Of1[E1]) Member(err error) bool { return isVariant[E1](err) }

// Of2 declares a closed error set with two variant types.
type Of2[E1, E2 error] struct{}

func (Of2[E1, E2]) Member(err error) bool {
	return isVariant[E1](err) || isVariant[E2](err)
}

// Of3 declares a closed error set with three variant types.
type Of3[E1, E2, E3 error] struct{}

func (Of3[E1, E2, E3]) Member(err error) bool {
	return isVariant[E1](err) || isVariant[E2](err) || isVariant[E3](err)
}

// Of4 declares a closed error set with four variant types.
type Of4[E1, E2, E3, E4 error] struct{}

func (Of4[E1, E2, E3, E4]) Member(err error) bool {
	return isVariant[E1](err) || isVariant[E2](err) || isVariant[E3](err) ||
		isVariant[E4](err)
}

// Of5 declares a closed error set with five variant types.
type Of5[E1, E2, E3, E4, E5 error] struct{}

func (Of5[E1, E2, E3, E4, E5]) Member(err error) bool {
	return isVariant[E1](err) || isVariant[E2](err) || isVariant[E3](err) ||
		isVariant[E4](err) || isVariant[E5](err)
}

// Of6 declares a closed error set with six variant types.
type Of6[E1, E2, E3, E4, E5, E6 error] struct{}

func (Of6[E1, E2, E3, E4, E5, E6]) Member(err error) bool {
	return isVariant[E1](err) || isVariant[E2](err) || isVariant[E3](err) ||
		isVariant[E4](err) || isVariant[E5](err) || isVariant[E6](err)
}

// setName returns the descriptor's instantiated type name, e.g.
// "result.Of2[pkg.Unauthorized,pkg.ValidationError]". Used in violation
// diagnostics so a developer can locate the mismatched declaration.
func setName[S ErrorSet]() string {
	var s S
	return fmt.Sprintf("%T", s)
}

// memberOf evaluates membership against the zero value of S.
func memberOf[S ErrorSet](err error) bool {
	var s S
	return s.Member(err)
}

// -----------------------------------------------------------------------------
// Interface conformance guards (keep in the file that defines the types)
// -----------------------------------------------------------------------------
var (
	_ ErrorSet = Of1[error]{}
	_ ErrorSet = Of2[error, error]{}
	_ ErrorSet = Of3[error, error, error]{}
	_ ErrorSet = Of4[error, error, error, error]{}
	_ ErrorSet = Of5[error, error, error, error, error]{}
	_ ErrorSet = Of6[error, error, error, error, error, error]{}
)
