package document

import (
	"strings"
	"testing"
)

func TestValidate_CPF(t *testing.T) {
	t.Run("known valid", func(t *testing.T) {
		if !Validate("11144477735", KindIndividual) {
			t.Fatalf("expected 11144477735 to be valid")
		}
	})

	t.Run("corrupted last digit", func(t *testing.T) {
		if Validate("11144477736", KindIndividual) {
			t.Fatalf("expected 11144477736 to be invalid")
		}
	})

	t.Run("formatted input", func(t *testing.T) {
		if !Validate("111.444.777-35", KindIndividual) {
			t.Fatalf("expected punctuation to be ignored")
		}
	})

	t.Run("wrong length", func(t *testing.T) {
		for _, raw := range []string{"", "1114447773", "111444777350"} {
			if Validate(raw, KindIndividual) {
				t.Fatalf("expected %q to be invalid", raw)
			}
		}
	})

	t.Run("all identical digits", func(t *testing.T) {
		for d := '0'; d <= '9'; d++ {
			raw := strings.Repeat(string(d), 11)
			if Validate(raw, KindIndividual) {
				t.Fatalf("expected %q to be invalid", raw)
			}
		}
	})

	t.Run("corrupted first check digit", func(t *testing.T) {
		if Validate("11144477745", KindIndividual) {
			t.Fatalf("expected corrupted first check digit to fail")
		}
	})
}

func TestValidate_CNPJ(t *testing.T) {
	t.Run("known valid", func(t *testing.T) {
		if !Validate("34028316000103", KindOrganization) {
			t.Fatalf("expected 34028316000103 to be valid")
		}
	})

	t.Run("formatted input", func(t *testing.T) {
		if !Validate("34.028.316/0001-03", KindOrganization) {
			t.Fatalf("expected punctuation to be ignored")
		}
	})

	t.Run("corrupted check digits", func(t *testing.T) {
		for _, raw := range []string{"34028316000104", "34028316000113"} {
			if Validate(raw, KindOrganization) {
				t.Fatalf("expected %q to be invalid", raw)
			}
		}
	})

	t.Run("wrong length", func(t *testing.T) {
		if Validate("3402831600010", KindOrganization) {
			t.Fatalf("expected 13 digits to be invalid")
		}
	})

	t.Run("all identical digits", func(t *testing.T) {
		for d := '0'; d <= '9'; d++ {
			raw := strings.Repeat(string(d), 14)
			if Validate(raw, KindOrganization) {
				t.Fatalf("expected %q to be invalid", raw)
			}
		}
	})
}

func TestValidate_UnknownKind(t *testing.T) {
	if Validate("11144477735", Kind("company")) {
		t.Fatalf("expected unknown kind to be invalid")
	}
}

func TestDigits(t *testing.T) {
	cases := map[string]string{
		"111.444.777-35":     "11144477735",
		"34.028.316/0001-03": "34028316000103",
		"abc":                "",
		" 1 2 3 ":            "123",
	}
	for in, want := range cases {
		if got := Digits(in); got != want {
			t.Fatalf("Digits(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestExpectedLength(t *testing.T) {
	if got := ExpectedLength(KindIndividual); got != 11 {
		t.Fatalf("expected 11, got %d", got)
	}
	if got := ExpectedLength(KindOrganization); got != 14 {
		t.Fatalf("expected 14, got %d", got)
	}
	if got := ExpectedLength(Kind("x")); got != 0 {
		t.Fatalf("expected 0, got %d", got)
	}
}
