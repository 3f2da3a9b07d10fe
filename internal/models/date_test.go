package models

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		in      string
		want    Date
		wantErr bool
	}{
		{in: "2024-03-10", want: NewDate(2024, time.March, 10)},
		{in: "2024-3-1", want: NewDate(2024, time.March, 1)},
		{in: "2024-03-10T23:59:00Z", want: NewDate(2024, time.March, 10)},
		{in: " 2023-12-31 ", want: NewDate(2023, time.December, 31)},
		{in: "10/03/2024", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tt := range tests {
		got, err := ParseDate(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseDate(%q): expected error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseDate(%q): unexpected error %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseDate(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestNewDateNormalizes(t *testing.T) {
	if got, want := NewDate(2024, time.February, 30), NewDate(2024, time.March, 1); got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestDateJSON(t *testing.T) {
	d := NewDate(2024, time.July, 4)
	b, err := json.Marshal(d)
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != `"2024-07-04"` {
		t.Fatalf("unexpected json %s", b)
	}

	var back Date
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatal(err)
	}
	if back != d {
		t.Fatalf("got %s, want %s", back, d)
	}

	var empty Date
	if err := json.Unmarshal([]byte(`""`), &empty); err != nil || !empty.IsZero() {
		t.Fatalf("expected zero date from empty string, got %s (%v)", empty, err)
	}
	if err := json.Unmarshal([]byte(`20240704`), &empty); err == nil {
		t.Fatal("expected error for numeric date")
	}
}
