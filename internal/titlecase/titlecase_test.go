package titlecase

import "testing"

func TestNormalize(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{in: "dil ka kya kare", want: "Dil ka Kya Kare"},
		{in: "the lord of the rings", want: "The Lord of the Rings"},
		{in: "KA matlab", want: "Ka Matlab"}, // exception word leads, still capitalized
		{in: "  tum   se  hi ", want: "Tum se Hi"},
		{in: "mere yaar KI shaadi hai", want: "Mere Yaar ki Shaadi Hai"},
		{in: "a", want: "A"},
		{in: "", want: ""},
		{in: "   \t\n ", want: ""},
	}
	for _, tc := range cases {
		if got := Normalize(tc.in); got != tc.want {
			t.Fatalf("Normalize(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestNormalizeIsIdempotent(t *testing.T) {
	inputs := []string{
		"dil ka kya kare",
		"  aur   ek  baar ",
		"THE of IN ya",
	}
	for _, in := range inputs {
		once := Normalize(in)
		if twice := Normalize(once); twice != once {
			t.Fatalf("Normalize(Normalize(%q)) = %q, want %q", in, twice, once)
		}
	}
}
