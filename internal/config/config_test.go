package config

import (
	"reflect"
	"testing"
)

func TestParseCourseSemesters(t *testing.T) {
	tests := []struct {
		raw     string
		want    map[string]int
		wantErr bool
	}{
		{"BCA:6,B.Tech:8", map[string]int{"BCA": 6, "B.Tech": 8}, false},
		{" BCA : 6 , B.Tech : 8 ", map[string]int{"BCA": 6, "B.Tech": 8}, false},
		{"BCA:6", map[string]int{"BCA": 6}, false},
		{"BCA", nil, true},
		{"BCA:zero", nil, true},
		{"BCA:0", nil, true},
		{"", nil, true},
	}

	for _, tt := range tests {
		got, err := parseCourseSemesters(tt.raw)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseCourseSemesters(%q) error = %v, wantErr %v", tt.raw, err, tt.wantErr)
			continue
		}
		if tt.wantErr {
			continue
		}
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("parseCourseSemesters(%q) = %v, want %v", tt.raw, got, tt.want)
		}
	}
}

func TestParseOrigins(t *testing.T) {
	if got := parseOrigins(""); got != nil {
		t.Errorf("parseOrigins(\"\") = %v, want nil", got)
	}
	want := []string{"http://localhost:5173", "https://app.example.com"}
	got := parseOrigins("http://localhost:5173, https://app.example.com")
	if !reflect.DeepEqual(got, want) {
		t.Errorf("parseOrigins = %v, want %v", got, want)
	}
}
