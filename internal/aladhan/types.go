package aladhan

// Response is the envelope of every Aladhan API reply.
type Response struct {
	Code   int    `json:"code"`
	Status string `json:"status"`
	Data   Data   `json:"data"`
}

type Data struct {
	Timings Timings `json:"timings"`
	Meta    Meta    `json:"meta"`
}

// Timings carries prayer times as "HH:MM" strings. The API may append a
// timezone suffix like " (WIB)".
type Timings struct {
	Fajr    string `json:"Fajr"`
	Sunrise string `json:"Sunrise"`
	Dhuhr   string `json:"Dhuhr"`
	Asr     string `json:"Asr"`
	Sunset  string `json:"Sunset"`
	Maghrib string `json:"Maghrib"`
	Isha    string `json:"Isha"`
}

type Meta struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Timezone  string  `json:"timezone"`
}

type Location struct {
	Latitude  float64
	Longitude float64
	Timezone  string
}
