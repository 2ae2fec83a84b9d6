package poetics

import "testing"

func TestEndWord(t *testing.T) {
	tests := []struct {
		name string
		line string
		want string
	}{
		{"plain words", "the river runs to the sea", "sea"},
		{"method call", "return truth.unfold()", "truth.unfold"},
		{"trailing line comment", "paths.behold() // again", "paths.behold"},
		{"inline block comment", "x = light /* soft */", "light"},
		{"snake case keeps last part", "while morning_stars_align", "align"},
		{"arrow annotation", "def call() -> Sign", "Sign"},
		{"braces and semicolons", "if (dawn) { wake(); }", "wake"},
		{"empty line", "", ""},
		{"only punctuation", "{};", ""},
		{"trailing underscore", "value_", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EndWord(tt.line)
			if got != tt.want {
				t.Errorf("EndWord(%q) = %q, want %q", tt.line, got, tt.want)
			}
		})
	}
}

func TestQuatrainEndWord(t *testing.T) {
	tests := []struct {
		name    string
		content string
		comment bool
		want    string
	}{
		{"return annotation dropped", "def call() -> Sign:", false, "call"},
		{"trailing colon dropped", "while stars.align():", false, "stars.align"},
		{"comment slashes dropped", "// we design", true, "design"},
		{"plain comment", "the night away", true, "away"},
		{"only the first slashes dropped", "a // b // c", true, "b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := QuatrainEndWord(tt.content, tt.comment)
			if got != tt.want {
				t.Errorf("QuatrainEndWord(%q) = %q, want %q", tt.content, got, tt.want)
			}
		})
	}
}

func TestCleanLine(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"// hello world", "hello world"},
		{"# note;", "note"},
		{"-- select all rows", "select all rows"},
		{"call(x);", "call(x"},
		{"plain", "plain"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := CleanLine(tt.input); got != tt.want {
				t.Errorf("CleanLine(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestRhymesWith(t *testing.T) {
	tests := []struct {
		a, b string
		want bool
	}{
		{"design", "align", true},
		{"align", "design", true},
		{"unfold", "behold", true},
		{"Light", "night", true},
		{"away", "design", false},
		{"stack", "heap", false},
		{"rhythm", "rhythm", true},
		{"nth", "nth", true},
		{"nth", "fifth", false},
		{"", "", true},
		{"", "a", false},
	}

	for _, tt := range tests {
		t.Run(tt.a+"/"+tt.b, func(t *testing.T) {
			if got := RhymesWith(tt.a, tt.b); got != tt.want {
				t.Errorf("RhymesWith(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestRhymesWith_ReflexiveAndSymmetric(t *testing.T) {
	words := []string{"design", "align", "away", "Stay", "nth", "Ω", "queue", "byte", "sky", "crwth", "unfold"}
	for _, a := range words {
		if !RhymesWith(a, a) {
			t.Errorf("RhymesWith(%q, %q) = false, want true", a, a)
		}
		for _, b := range words {
			if RhymesWith(a, b) != RhymesWith(b, a) {
				t.Errorf("RhymesWith not symmetric for %q, %q", a, b)
			}
		}
	}
}
