// integration_test.go — cross-cutting scenarios: a transport layer producing
// results over its declared set, forwarded into a domain layer's set.
package result

import (
	"strings"
	"testing"
)

// token/session doubles for the layered scenarios.
type token struct{ raw string }
type session struct{ user string }

// authenticate is the "transport" producer: its signature declares exactly
// the failure modes it may return.
func authenticate(user, password string) Result[token, transportSet] {
	if user == "" {
		return Failure[token, transportSet](errValidation{field: "user"})
	}
	if password != "secret" {
		return Failure[token, transportSet](errUnauthorized{})
	}
	return Success[token, transportSet](token{raw: "tok-" + user})
}

// login is the "domain" consumer: it re-declares the transport outcome over
// its own error set.
func login(user, password string) Result[session, loginSet] {
	r := authenticate(user, password)
	return Forward[session, loginSet](r,
		func(t token) session { return session{user: user} },
		func(err error) error {
			switch err.(type) {
			case errUnauthorized:
				return errInvalidCredentials{}
			case errValidation:
				return errInvalidCredentials{}
			default:
				return err
			}
		})
}

func TestIntegration_LoginHappyPath(t *testing.T) {
	t.Parallel()

	r := login("ada", "secret")
	if !r.IsSuccessful() {
		t.Fatalf("login = %v, want success", r)
	}
	if got := r.Value(); got.user != "ada" {
		t.Fatalf("session user = %q, want %q", got.user, "ada")
	}
}

func TestIntegration_UnauthorizedBecomesInvalidCredentials(t *testing.T) {
	t.Parallel()

	// Transport layer: unauthorized on the declared set {unauthorized, validation}.
	tr := authenticate("ada", "wrong")
	if !HasError[errUnauthorized](tr) {
		t.Fatalf("transport result should carry unauthorized: %v", tr)
	}
	if HasError[errValidation](tr) {
		t.Fatalf("transport result should not carry a validation error: %v", tr)
	}

	// Domain layer: the same outcome re-declared over {invalid-credentials,
	// email-not-confirmed}.
	r := login("ada", "wrong")
	if !HasSingleError[errInvalidCredentials](r) {
		t.Fatalf("login should fail with exactly one invalid-credentials: %v", r)
	}
	if HasError[errUnauthorized](r) {
		t.Fatalf("transport variant leaked into the domain result: %v", r)
	}
}

func TestIntegration_MapThenForward(t *testing.T) {
	t.Parallel()

	tr := authenticate("ada", "secret")
	upper := Map(tr, func(tk token) token { return token{raw: strings.ToUpper(tk.raw)} })
	r := Forward[string, loginSet](upper,
		func(tk token) string { return tk.raw },
		nil,
	)
	if got := r.Value(); got != "TOK-ADA" {
		t.Fatalf("chained value = %q, want %q", got, "TOK-ADA")
	}
}

func TestIntegration_MultiErrorValidationRollup(t *testing.T) {
	t.Parallel()

	// A form-validation style producer with several failures at once.
	validate := func(name, email string) Result[struct{}, Of1[errValidation]] {
		var errs []error
		if name == "" {
			errs = append(errs, errValidation{field: "name"})
		}
		if !strings.Contains(email, "@") {
			errs = append(errs, errValidation{field: "email"})
		}
		if len(errs) > 0 {
			return Failures[struct{}, Of1[errValidation]](errs)
		}
		return Success[struct{}, Of1[errValidation]](struct{}{})
	}

	r := validate("", "nope")
	if r.ErrorCount() != 2 {
		t.Fatalf("validation should report both failures, got %v", r)
	}

	// Forward the rollup into a wider set, field by field.
	wide := Forward[struct{}, wideSet](r, nil, func(err error) error { return err })
	got := FindErrors[errValidation](wide)
	if len(got) != 2 || got[0].field != "name" || got[1].field != "email" {
		t.Fatalf("forwarded rollup lost order or members: %v", got)
	}
}

func TestIntegration_LeakAcrossLayersIsCaughtAtTheBoundary(t *testing.T) {
	t.Parallel()

	// A remap that forgets to translate validation errors: the leak is caught
	// during Forward, not when the domain result is later read.
	tr := authenticate("", "secret") // validation failure
	v := wantViolation(t, func() {
		_ = Forward[session, loginSet](tr,
			func(tk token) session { return session{} },
			func(err error) error {
				if _, ok := err.(errUnauthorized); ok {
					return errInvalidCredentials{}
				}
				return err // validation error leaks
			})
	})
	if len(v.Errors()) != 1 {
		t.Fatalf("violation should carry exactly the leaked error, got %v", v.Errors())
	}
	if _, ok := v.Errors()[0].(errValidation); !ok {
		t.Fatalf("leaked error = %T, want errValidation", v.Errors()[0])
	}
}
