package aladhan

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/goccy/go-json"
	"github.com/mdayat/qaza-tracker-service/internal/retryutil"
	"github.com/mdayat/qaza-tracker-service/internal/tracker"
)

const (
	// Muslim World League angles with the Hanafi Asr shadow factor.
	calculationMethod = 1
	asrSchool         = 1
)

var ErrUnexpectedResponse = errors.New("unexpected aladhan response")

type Client interface {
	Timings(ctx context.Context, date tracker.Date, location Location) (Timings, error)
}

type client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, httpClient *http.Client) Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}

	return &client{
		baseURL:    baseURL,
		httpClient: httpClient,
	}
}

func (c client) timingsURL(date tracker.Date, location Location) string {
	query := url.Values{}
	query.Set("latitude", strconv.FormatFloat(location.Latitude, 'f', -1, 64))
	query.Set("longitude", strconv.FormatFloat(location.Longitude, 'f', -1, 64))
	query.Set("method", strconv.Itoa(calculationMethod))
	query.Set("school", strconv.Itoa(asrSchool))
	query.Set("timezonestring", location.Timezone)

	return fmt.Sprintf("%s/timings/%02d-%02d-%04d?%s", c.baseURL, date.Day, date.Month, date.Year, query.Encode())
}

func (c client) Timings(ctx context.Context, date tracker.Date, location Location) (Timings, error) {
	reqURL := c.timingsURL(date, location)

	resBody, err := retryutil.RetryWithData(func() (Response, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
		if err != nil {
			return Response{}, fmt.Errorf("failed to create request: %w", err)
		}

		res, err := c.httpClient.Do(req)
		if err != nil {
			return Response{}, fmt.Errorf("failed to send request: %w", err)
		}
		defer res.Body.Close()

		if res.StatusCode != http.StatusOK {
			return Response{}, fmt.Errorf("%w: status %d", ErrUnexpectedResponse, res.StatusCode)
		}

		var resBody Response
		if err := json.NewDecoder(res.Body).Decode(&resBody); err != nil {
			return Response{}, fmt.Errorf("failed to decode response body: %w", err)
		}

		return resBody, nil
	})

	if err != nil {
		return Timings{}, err
	}

	if resBody.Code != http.StatusOK {
		return Timings{}, fmt.Errorf("%w: code %d (%s)", ErrUnexpectedResponse, resBody.Code, resBody.Status)
	}

	return resBody.Data.Timings, nil
}
