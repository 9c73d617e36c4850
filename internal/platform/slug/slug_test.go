package slug

import "testing"

func TestMake(t *testing.T) {
	t.Parallel()
	cases := map[string]string{
		"Monaco GP 🏁":          "monaco-gp",
		"  Spa -- Francorchamps": "spa-francorchamps",
		"🏁":                     "session",
		"":                      "session",
	}
	for in, want := range cases {
		if got := Make(in, "session"); got != want {
			t.Fatalf("Make(%q) = %q, want %q", in, got, want)
		}
	}
}
