package aladhan

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/mdayat/qaza-tracker-service/internal/tracker"
)

func TestPrayerEnds(t *testing.T) {
	table := []struct {
		name           string
		timings        Timings
		expectedResult PrayerEnds
		expectedErr    error
	}{
		{
			name: "Jakarta",
			timings: Timings{
				Fajr:    "04:38",
				Sunrise: "05:53",
				Dhuhr:   "12:00",
				Asr:     "15:15",
				Maghrib: "18:05",
				Isha:    "19:15",
			},
			expectedResult: PrayerEnds{
				FajrEnd:    "05:53",
				DhuhrEnd:   "13:20",
				AsrEnd:     "18:05",
				MaghribEnd: "19:25",
				IshaEnd:    "20:45",
			},
		},
		{
			name: "timezone suffix is stripped",
			timings: Timings{
				Sunrise: "06:18 (IST)",
				Dhuhr:   "12:25 (IST)",
				Maghrib: "18:31 (IST)",
				Isha:    "19:45 (IST)",
			},
			expectedResult: PrayerEnds{
				FajrEnd:    "06:18",
				DhuhrEnd:   "13:45",
				AsrEnd:     "18:31",
				MaghribEnd: "19:51",
				IshaEnd:    "21:15",
			},
		},
		{
			name: "late isha is clamped to the same day",
			timings: Timings{
				Sunrise: "04:10",
				Dhuhr:   "13:10",
				Maghrib: "21:40",
				Isha:    "23:05",
			},
			expectedResult: PrayerEnds{
				FajrEnd:    "04:10",
				DhuhrEnd:   "14:30",
				AsrEnd:     "21:40",
				MaghribEnd: "23:00",
				IshaEnd:    "23:59",
			},
		},
		{
			name: "malformed time",
			timings: Timings{
				Sunrise: "05:53",
				Dhuhr:   "noon",
				Maghrib: "18:05",
				Isha:    "19:15",
			},
			expectedErr: tracker.ErrInvalidTimeFormat,
		},
	}

	for _, v := range table {
		t.Run(v.name, func(t *testing.T) {
			prayerEnds, err := v.timings.PrayerEnds()
			if v.expectedErr != nil {
				if !errors.Is(err, v.expectedErr) {
					t.Fatalf("expected error %v, got %v", v.expectedErr, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("wasn't expecting error, got: %v", err)
			}

			if diff := cmp.Diff(v.expectedResult, prayerEnds); diff != "" {
				t.Error(diff)
			}
		})
	}
}

func TestCleanTime(t *testing.T) {
	table := map[string]string{
		"04:32":        "04:32",
		"04:32 (WIB)":  "04:32",
		" 19:01 (+07)": "19:01",
	}

	for input, expected := range table {
		if got := cleanTime(input); got != expected {
			t.Errorf("cleanTime(%q) = %q, expected %q", input, got, expected)
		}
	}
}
