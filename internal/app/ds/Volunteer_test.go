package ds

import (
	"reflect"
	"testing"
)

func TestSkillListNormalization(t *testing.T) {
	cases := []struct {
		name   string
		stored string
		want   []string
	}{
		{"json array", `["first-aid","driving"]`, []string{"first-aid", "driving"}},
		{"legacy comma string", "cooking, logistics", []string{"cooking", "logistics"}},
		{"single value", "boat", []string{"boat"}},
		{"empty", "", []string{}},
		{"whitespace only", "   ", []string{}},
		{"trailing comma", "rescue,", []string{"rescue"}},
		{"malformed json falls back to comma split", `["rescue"`, []string{`["rescue"`}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			v := Volunteer{Skills: tc.stored}
			got := v.SkillList()
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("SkillList(%q) = %v, want %v", tc.stored, got, tc.want)
			}
		})
	}
}

func TestEnumChecks(t *testing.T) {
	for _, u := range []string{UrgencyLow, UrgencyMedium, UrgencyHigh} {
		if !ValidUrgency(u) {
			t.Fatalf("urgency %q should be valid", u)
		}
	}
	// "critical" existed in one admin screen but never in intake; it is
	// not part of the closed enum.
	if ValidUrgency("critical") {
		t.Fatal("critical must be rejected")
	}

	for _, c := range []string{CategoryFood, CategoryShelter, CategoryMedical, CategoryClothing, CategoryEvacuation, CategoryOther} {
		if !ValidCategory(c) {
			t.Fatalf("category %q should be valid", c)
		}
	}
	if ValidCategory("money") {
		t.Fatal("unknown category must be rejected")
	}
}
