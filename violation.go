// violation.go — the fatal contract-violation channel for operation-result.
//
// Scope (tiny core):
//   - One panic payload type, InvariantViolation, used for every programmer
//     bug the core detects: malformed Result state, empty failure sequence,
//     missing forward callback, error value outside a declared set.
//   - Always capture a bounded stack at the violation site so the defect is
//     debuggable even when a process boundary recovers the panic before the
//     runtime prints it.
//
// Contract violations are never modeled as Result errors and never recovered
// by the core itself; they are development-time defect signals. Expected
// domain failures travel inside Result.Err instead (see doc.go).
//
// Stack capture uses runtime.Callers + runtime.CallersFrames so inlined
// frames resolve correctly.
package result

import (
	"runtime"
	"strings"
)

// Frame is a single call site recorded at the violation point.
type Frame struct {
	File     string // file path as reported by the runtime
	Line     int
	Function string // fully-qualified function name (pkg.Func or recv.method)
}

// Stack is a slice of Frames from most recent call outward.
type Stack []Frame

// defaultMaxDepth bounds capture work on the (exceptional) violation path.
const defaultMaxDepth = 32

// captureStack records up to defaultMaxDepth frames, skipping 'skip' frames
// beyond its own internals.
//
// Skip accounting:
//   - +1 for runtime.Callers itself
//   - +1 for captureStack
//
// so skip=0 places the first frame at captureStack's caller; the violation
// constructors pass the extra hops they add.
func captureStack(skip int) Stack {
	pc := make([]uintptr, defaultMaxDepth)
	n := runtime.Callers(skip+2, pc)
	if n == 0 {
		return nil
	}

	frames := runtime.CallersFrames(pc[:n])
	out := make(Stack, 0, n)
	for {
		fr, more := frames.Next()
		out = append(out, Frame{File: fr.File, Line: fr.Line, Function: fr.Function})
		if !more {
			break
		}
	}
	return out
}

// InvariantViolation is the panic payload for every contract violation the
// core detects. It implements error so recovered values interoperate with
// ordinary error plumbing at process boundaries, and fmt.Formatter (format.go)
// so %+v renders the offending errors and the capture-site stack.
type InvariantViolation struct {
	msg   string
	errs  []error // offending error values, original order; may be empty
	stack Stack
}

// Error returns the violation message followed by the full offending error
// sequence, enough to locate the mismatched declaration from a log line.
func (v *InvariantViolation) Error() string {
	if len(v.errs) == 0 {
		return "invariant violation: " + v.msg
	}
	sb := strings.Builder{}
	sb.WriteString("invariant violation: ")
	sb.WriteString(v.msg)
	sb.WriteString("; errors: ")
	sb.WriteString(renderErrs(v.errs))
	return sb.String()
}

// Errors returns a defensive copy of the offending error values in their
// original order. Empty when the violation carried no error values (e.g. a
// missing-callback precondition).
func (v *InvariantViolation) Errors() []error {
	if len(v.errs) == 0 {
		return nil
	}
	out := make([]error, len(v.errs))
	copy(out, v.errs)
	return out
}

// Stack returns the frames captured at the violation site, most recent first.
func (v *InvariantViolation) Stack() Stack {
	if len(v.stack) == 0 {
		return nil
	}
	out := make(Stack, len(v.stack))
	copy(out, v.stack)
	return out
}

// AsInvariantViolation reports whether a recovered panic value originated from
// this package's fatal path. The core never recovers its own panics; this
// helper exists for tests and process-boundary handlers.
func AsInvariantViolation(recovered any) (*InvariantViolation, bool) {
	v, ok := recovered.(*InvariantViolation)
	return v, ok
}

// violate builds the panic payload, capturing the stack at the caller of the
// exported operation that detected the defect (skip counts violate itself).
func violate(msg string, errs []error) *InvariantViolation {
	var copied []error
	if len(errs) > 0 {
		copied = make([]error, len(errs))
		copy(copied, errs)
	}
	return &InvariantViolation{
		msg:   msg,
		errs:  copied,
		stack: captureStack(2), // skip violate and its package-internal caller
	}
}

// mustMembers validates every error in errs against the declared set S and
// panics with a violation enumerating the non-members. op names the boundary
// ("failure constructor", "forward", ...) for the diagnostic.
func mustMembers[S ErrorSet](op string, errs []error) {
	var bad []error
	for _, err := range errs {
		if !memberOf[S](err) {
			bad = append(bad, err)
		}
	}
	if len(bad) == 0 {
		return
	}
	panic(violate(op+": error values outside declared set "+setName[S](), bad))
}

var _ error = (*InvariantViolation)(nil)
