package holidays

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/altamirahr/hris-service/internal/config"
)

const feedXML = `<?xml version="1.0" encoding="utf-8"?>
<holidays>
	<holiday>
		<name>New Year's Day</name>
		<date>2025-01-01</date>
	</holiday>
	<holiday>
		<name>Araw ng Kagitingan</name>
		<date>2025-04-09</date>
	</holiday>
	<holiday>
		<name>Christmas Day</name>
		<date>2025-12-25</date>
	</holiday>
</holidays>`

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	log := logrus.New()
	log.SetOutput(io.Discard)
	return NewClient(&config.Config{HolidayFeedURL: srv.URL}, log)
}

func TestIsHoliday(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(feedXML))
	})

	holiday, err := client.IsHoliday(2025, 12, 25)
	require.NoError(t, err)
	assert.True(t, holiday)

	holiday, err = client.IsHoliday(2025, 12, 26)
	require.NoError(t, err)
	assert.False(t, holiday)
}

func TestIsHoliday_ServerError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	_, err := client.IsHoliday(2025, 1, 1)
	assert.Error(t, err)
}

func TestParseFeed_SkipsMalformedDates(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {})

	raw := []byte(`<holidays><holiday><date>not-a-date</date></holiday><holiday><date>2025-06-12</date></holiday></holidays>`)
	dates, err := client.parseFeed(raw)
	require.NoError(t, err)
	require.Len(t, dates, 1)
	assert.Equal(t, 2025, dates[0].Year())
}

func TestParseFeed_EmptyFeed(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {})

	_, err := client.parseFeed([]byte(`<holidays></holidays>`))
	assert.Error(t, err)

	_, err = client.parseFeed([]byte(`not xml at all <<<`))
	assert.Error(t, err)
}
