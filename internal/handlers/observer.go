package handlers

import (
	"fmt"
	"net/http"
	"time"
)

// observerNow returns the current instant in the timezone of the requesting device,
// named by the "tz" query parameter or the X-Timezone header. The server's zone is
// used when neither is set.
func observerNow(req *http.Request) (time.Time, error) {
	name := req.URL.Query().Get("tz")
	if name == "" {
		name = req.Header.Get("X-Timezone")
	}

	if name == "" {
		return time.Now(), nil
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to load timezone %q: %w", name, err)
	}

	return time.Now().In(loc), nil
}
