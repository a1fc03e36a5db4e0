// format.go — fmt.Formatter implementations for operation-result.
//
// Behavior:
//
//	%s, %v   → concise one-liner:
//	             ok(<value>)               success
//	             failed[e1; e2; ...]       failure, original order
//	             malformed                 zero value
//	%+v      → verbose, structured multi-line format:
//	             set=<descriptor type> state=ok
//	             value: <value via %+v>
//	           or
//	             set=<descriptor type> state=failed errors=<n>
//	             1. <error via %+v>
//	             2. ...
//	%q       → quoted concise form.
//
// Rationale:
//   - Keep core free of logging/JSON policy; only fmt formatting.
//   - Error order is the construction order, so rendering is deterministic.
//   - Defer per-error formatting to fmt with %+v so errors that implement
//     fmt.Formatter themselves render their full detail.
package result

import (
	"fmt"
	"io"
	"strings"
)

// renderErrs joins concise error strings with "; " for one-line forms.
func renderErrs(errs []error) string {
	sb := strings.Builder{}
	sb.WriteByte('[')
	for i, err := range errs {
		if i > 0 {
			sb.WriteString("; ")
		}
		if err == nil {
			sb.WriteString("<nil>")
			continue
		}
		sb.WriteString(err.Error())
	}
	sb.WriteByte(']')
	return sb.String()
}

// formatErrsVerbose writes one numbered line per error, recursing with %+v.
func formatErrsVerbose(w io.Writer, errs []error) {
	for i, err := range errs {
		_, _ = fmt.Fprintf(w, "\n%d. %+v", i+1, err)
	}
}

// -----------------------------------------------------------------------------
// Result formatting
// -----------------------------------------------------------------------------

// concise returns the one-line form used by %v/%s/%q.
func (r Result[T, S]) concise() string {
	switch {
	case r.ok:
		return fmt.Sprintf("ok(%v)", r.value)
	case len(r.errs) > 0:
		return "failed" + renderErrs(r.errs)
	default:
		return "malformed"
	}
}

// String returns the concise one-line form.
func (r Result[T, S]) String() string { return r.concise() }

// Format implements fmt.Formatter; see the file header for the verb table.
func (r Result[T, S]) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			if r.ok {
				_, _ = fmt.Fprintf(s, "set=%s state=ok\nvalue: %+v", setName[S](), r.value)
				return
			}
			if len(r.errs) == 0 {
				_, _ = fmt.Fprintf(s, "set=%s state=malformed", setName[S]())
				return
			}
			_, _ = fmt.Fprintf(s, "set=%s state=failed errors=%d", setName[S](), len(r.errs))
			formatErrsVerbose(s, r.errs)
			return
		}
		_, _ = io.WriteString(s, r.concise())
	case 's':
		_, _ = io.WriteString(s, r.concise())
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", r.concise())
	default:
		_, _ = io.WriteString(s, r.concise())
	}
}

// -----------------------------------------------------------------------------
// InvariantViolation formatting (always has a captured stack at creation)
// -----------------------------------------------------------------------------

// Format implements fmt.Formatter.
//
//	%v, %s → Error() (message + one-line error sequence)
//	%+v    → message, numbered errors rendered with %+v, then the stack
//	%q     → quoted Error()
func (v *InvariantViolation) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			_, _ = io.WriteString(s, "invariant violation: ")
			_, _ = io.WriteString(s, v.msg)
			if len(v.errs) > 0 {
				_, _ = fmt.Fprintf(s, "\nerrors=%d", len(v.errs))
				formatErrsVerbose(s, v.errs)
			}
			if len(v.stack) > 0 {
				_, _ = io.WriteString(s, "\nstack:")
				for _, fr := range v.stack {
					_, _ = fmt.Fprintf(s, "\n  %s %s:%d", fr.Function, fr.File, fr.Line)
				}
			}
			return
		}
		_, _ = io.WriteString(s, v.Error())
	case 's':
		_, _ = io.WriteString(s, v.Error())
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", v.Error())
	default:
		_, _ = io.WriteString(s, v.Error())
	}
}
