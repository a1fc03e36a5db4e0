// queries_test.go — variant-indexed lookups: find, find-all, has, has-single.
package result

import "testing"

func TestFindError_FirstMatchInOrder(t *testing.T) {
	t.Parallel()

	r := Failures[int, transportSet]([]error{
		errValidation{field: "email"},
		errUnauthorized{},
		errValidation{field: "name"},
	})

	got, ok := FindError[errValidation](r)
	if !ok {
		t.Fatalf("FindError[errValidation] reported absence")
	}
	if got.field != "email" {
		t.Fatalf("FindError returned %q, want the FIRST match %q", got.field, "email")
	}
}

func TestFindError_AbsentVariant(t *testing.T) {
	t.Parallel()

	r := Failure[int, transportSet](errUnauthorized{})
	if _, ok := FindError[errValidation](r); ok {
		t.Fatalf("FindError matched a variant that is not present")
	}
}

func TestFindError_OnSuccessIsAbsenceNotPanic(t *testing.T) {
	t.Parallel()

	r := Success[int, transportSet](1)
	if _, ok := FindError[errUnauthorized](r); ok {
		t.Fatalf("FindError on a successful result should report absence")
	}
}

func TestFindErrors_AllMatchesPreservingOrder(t *testing.T) {
	t.Parallel()

	r := Failures[int, transportSet]([]error{
		errValidation{field: "email"},
		errUnauthorized{},
		errValidation{field: "name"},
		errValidation{field: "age"},
	})

	got := FindErrors[errValidation](r)
	want := []string{"email", "name", "age"}
	if len(got) != len(want) {
		t.Fatalf("FindErrors len = %d, want %d", len(got), len(want))
	}
	for i, w := range want {
		if got[i].field != w {
			t.Fatalf("FindErrors[%d].field = %q, want %q", i, got[i].field, w)
		}
	}
}

func TestFindErrors_EmptyCases(t *testing.T) {
	t.Parallel()

	if got := FindErrors[errValidation](Success[int, transportSet](1)); got != nil {
		t.Fatalf("FindErrors on success = %v, want nil", got)
	}
	if got := FindErrors[errValidation](Failure[int, transportSet](errUnauthorized{})); got != nil {
		t.Fatalf("FindErrors with no matching variant = %v, want nil", got)
	}
}

func TestFindErrors_InterfaceVariantCollectsAllImplementors(t *testing.T) {
	t.Parallel()

	r := Failures[int, loginSet]([]error{errInvalidCredentials{}, errEmailNotConfirmed{}})
	got := FindErrors[loginError](r)
	if len(got) != 2 {
		t.Fatalf("FindErrors[loginError] len = %d, want 2", len(got))
	}
}

func TestHasError(t *testing.T) {
	t.Parallel()

	r := Failure[int, transportSet](errUnauthorized{})
	if !HasError[errUnauthorized](r) {
		t.Fatalf("HasError[errUnauthorized] = false, want true")
	}
	if HasError[errValidation](r) {
		t.Fatalf("HasError[errValidation] = true, want false")
	}
	if HasError[errUnauthorized](Success[int, transportSet](1)) {
		t.Fatalf("HasError on success = true, want false")
	}
}

func TestHasSingleError(t *testing.T) {
	t.Parallel()

	single := Failure[int, transportSet](errUnauthorized{})
	if !HasSingleError[errUnauthorized](single) {
		t.Fatalf("HasSingleError on a lone matching error = false, want true")
	}
	if HasSingleError[errValidation](single) {
		t.Fatalf("HasSingleError on a lone NON-matching error = true, want false")
	}

	// Exactly one errUnauthorized present, but the total count is 2: the
	// "single" in HasSingleError is about the whole sequence, not the variant.
	two := Failures[int, transportSet]([]error{errUnauthorized{}, errValidation{field: "email"}})
	if HasSingleError[errUnauthorized](two) {
		t.Fatalf("HasSingleError with a second (different) error present = true, want false")
	}

	if HasSingleError[errUnauthorized](Success[int, transportSet](1)) {
		t.Fatalf("HasSingleError on success = true, want false")
	}
}
