package emailpkg

import "testing"

func TestIsValid(t *testing.T) {
	testCases := []struct {
		name  string
		email string
		want  bool
	}{
		{name: "Simple", email: "user@example.com", want: true},
		{name: "DotInPrefix", email: "user.name@example.com", want: true},
		{name: "PlusAndSubdomains", email: "first+last@subdomain.example.co.uk", want: true},
		{name: "UnderscoreInPrefix", email: "abc_def@mail.com", want: true},
		{name: "HyphenInDomain", email: "abc.def@mail-archive.com", want: true},
		{name: "ShortTLD", email: "a@b.co", want: true},
		{name: "Empty", email: "", want: false},
		{name: "WhitespaceOnly", email: "   ", want: false},
		{name: "NoAt", email: "user.example.com", want: false},
		{name: "TwoAts", email: "user@host@example.com", want: false},
		{name: "EmptyPrefix", email: "@example.com", want: false},
		{name: "PrefixStartsWithSpecial", email: ".user@example.com", want: false},
		{name: "ConsecutiveSpecialsInPrefix", email: "user..name@example.com", want: false},
		{name: "ConsecutiveMixedSpecials", email: "user.-name@example.com", want: false},
		{name: "SpecialThenAlnumThenSpecial", email: "a.b.c@example.com", want: true},
		{name: "DisallowedPrefixChar", email: "user#name@example.com", want: false},
		{name: "NoDotInDomain", email: "user@example", want: false},
		{name: "SingleCharTLD", email: "user@example.c", want: false},
		{name: "SingleCharTLDShort", email: "abc@def.g", want: false},
		{name: "EmptyDomain", email: "user@", want: false},
		{name: "SpaceInPrefix", email: " baneet@x.com", want: false},
		{name: "SpecialInDomain", email: "user@exa_mple.com", want: false},
		{name: "DotBeforeAtOnly", email: "user.name@examplecom", want: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsValid(tc.email); got != tc.want {
				t.Errorf("IsValid(%q) = %v, want %v", tc.email, got, tc.want)
			}
		})
	}
}

func TestIsValidIsPure(t *testing.T) {
	const email = "user@example.com"

	if IsValid(email) != IsValid(email) {
		t.Errorf("IsValid(%q) is not deterministic", email)
	}
}
