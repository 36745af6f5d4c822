package validation

import "testing"

func TestStringValidation(t *testing.T) {
	tests := []struct {
		name string
		v    *StringValidation
		want bool
	}{
		{"required empty", NewStringValidation(""), false},
		{"optional empty", NewStringValidation("").WithRequired(false).WithMinLength(3), true},
		{"too short", NewStringValidation("A").WithMinLength(NameMinLength), false},
		{"multibyte counted as runes", NewStringValidation("Çağ").WithMaxLength(3), true},
		{"too long", NewStringValidation("abcd").WithMaxLength(3), false},
		{"email ok", NewStringValidation("ada@mentorbridge.com").WithPattern(CompiledPatterns.Email), true},
		{"email bad", NewStringValidation("ada@").WithPattern(CompiledPatterns.Email), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.Validate(); got != tt.want {
				t.Errorf("Validate() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNumericValidation(t *testing.T) {
	tests := []struct {
		name string
		v    *NumericValidation
		want bool
	}{
		{"zero allowed with min 0", NewNumericValidation(0).WithMin(0), true},
		{"negative rejected", NewNumericValidation(-1).WithMin(0), false},
		{"above max", NewNumericValidation(81).WithMin(0).WithMax(MaxExperienceYears), false},
		{"unbounded", NewNumericValidation(-100), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.Validate(); got != tt.want {
				t.Errorf("Validate() = %v, want %v", got, tt.want)
			}
		})
	}
}
