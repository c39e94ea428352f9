package produce

import (
	"testing"

	"github.com/IllyaZhihunou/content/pkg/document"
)

var testNode = document.NewScalar("", document.Span{File: "test.yaml"})

func TestNonEmpty(t *testing.T) {
	if err := NonEmpty("value", testNode); err != nil {
		t.Errorf("Expected non-empty string to pass, got %v", err)
	}

	err := NonEmpty("", testNode)
	if err == nil {
		t.Fatal("Expected empty string to fail")
	}
	violation, ok := AsViolation(err)
	if !ok {
		t.Fatalf("Expected *Violation, got %T", err)
	}
	if violation.Message != "Non empty value required" {
		t.Errorf("Expected message 'Non empty value required', got %q", violation.Message)
	}
}

func TestKey(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantMsg string // empty means valid
	}{
		{name: "lowercase", value: "vakzal"},
		{name: "with digits and hyphen", value: "stop-12"},
		{name: "empty string", value: ""},
		{name: "uppercase letter", value: "Vakzal", wantMsg: `Invalid character "V" in "Vakzal"`},
		{name: "underscore", value: "bus_stop", wantMsg: `Invalid character "_" in "bus_stop"`},
		{name: "space", value: "bus stop", wantMsg: `Invalid character " " in "bus stop"`},
		{name: "cyrillic", value: "вокзал", wantMsg: `Invalid character "в" in "вокзал"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Key(tt.value, testNode)
			if tt.wantMsg == "" {
				if err != nil {
					t.Errorf("Key(%q) returned unexpected error: %v", tt.value, err)
				}
				return
			}
			if err == nil {
				t.Fatalf("Key(%q) expected error", tt.value)
			}
			violation, _ := AsViolation(err)
			if violation == nil || violation.Message != tt.wantMsg {
				t.Errorf("Expected message %q, got %v", tt.wantMsg, err)
			}
		})
	}
}

func TestTimeOfDay(t *testing.T) {
	tests := []struct {
		value string
		valid bool
	}{
		{value: "00:00", valid: true},
		{value: "08:30", valid: true},
		{value: "23:59", valid: true},
		// Hours are open-ended so next-day departures can be written down.
		{value: "24:00", valid: true},
		{value: "99:59", valid: true},
		{value: "08:60", valid: false},
		{value: "8:30", valid: false},
		{value: "08:30 ", valid: false},
		{value: "0830", valid: false},
		{value: "08-30", valid: false},
		{value: "ab:cd", valid: false},
		{value: "-1:30", valid: false},
		{value: "", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			err := TimeOfDay(tt.value, testNode)
			if tt.valid && err != nil {
				t.Errorf("TimeOfDay(%q) returned unexpected error: %v", tt.value, err)
			}
			if !tt.valid {
				if err == nil {
					t.Fatalf("TimeOfDay(%q) expected error", tt.value)
				}
				violation, _ := AsViolation(err)
				want := `"` + tt.value + `" is not a valid time`
				if violation == nil || violation.Message != want {
					t.Errorf("Expected message %q, got %v", want, err)
				}
			}
		})
	}
}

func TestFloatRange(t *testing.T) {
	validate := FloatRange(55.4, 55.6)

	tests := []struct {
		name  string
		value float64
		valid bool
	}{
		{name: "inside", value: 55.5, valid: true},
		{name: "lower bound inclusive", value: 55.4, valid: true},
		{name: "upper bound inclusive", value: 55.6, valid: true},
		{name: "below", value: 55.39, valid: false},
		{name: "above", value: 55.61, valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validate(tt.value, testNode)
			if tt.valid && err != nil {
				t.Errorf("Expected %v to pass, got %v", tt.value, err)
			}
			if !tt.valid {
				if err == nil {
					t.Fatalf("Expected %v to fail", tt.value)
				}
				violation, _ := AsViolation(err)
				if violation == nil || violation.Message != "Value expected to be in 55.4..55.6 interval" {
					t.Errorf("Expected interval message, got %v", err)
				}
			}
		})
	}
}
