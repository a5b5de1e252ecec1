package configs

import "testing"

func TestPrayerItemValidation(t *testing.T) {
	validate := NewValidate()

	type toggle struct {
		Item string `validate:"required,prayer_item"`
	}

	table := []struct {
		item    string
		isValid bool
	}{
		{item: "fajr", isValid: true},
		{item: "isha", isValid: true},
		{item: "fast", isValid: true},
		{item: "subuh", isValid: false},
		{item: "Fajr", isValid: false},
		{item: "", isValid: false},
	}

	for _, v := range table {
		t.Run(v.item, func(t *testing.T) {
			err := validate.Struct(toggle{Item: v.item})
			if v.isValid && err != nil {
				t.Fatalf("wasn't expecting error, got: %v", err)
			}

			if !v.isValid && err == nil {
				t.Fatalf("expected validation error for %q", v.item)
			}
		})
	}
}
