package skills

import (
	"reflect"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"empty", "", []string{}},
		{"only separators", " , ,, ", []string{}},
		{"trims", " Python ,SQL,  Machine Learning ", []string{"Python", "SQL", "Machine Learning"}},
		{"dedupes keeping first", "Go, Python, Go", []string{"Go", "Python"}},
		{"case kept", "python, Python", []string{"python", "Python"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Parse(%q) = %#v, want %#v", tt.in, got, tt.want)
			}
		})
	}
}

func TestJoinRoundTrip(t *testing.T) {
	in := []string{"Python", "SQL"}
	if got := Parse(Join(in)); !reflect.DeepEqual(got, in) {
		t.Errorf("Parse(Join()) = %v, want %v", got, in)
	}
}
