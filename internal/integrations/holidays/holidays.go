package holidays

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/beevik/etree"
	"github.com/sirupsen/logrus"

	"github.com/altamirahr/hris-service/internal/config"
)

// Client fetches the published Philippine holiday calendar
type Client struct {
	url    string
	client *http.Client
	log    *logrus.Logger
}

// NewClient initializes a new holiday feed client
func NewClient(cfg *config.Config, log *logrus.Logger) *Client {
	return &Client{
		url: cfg.HolidayFeedURL,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
		log: log,
	}
}

func (c *Client) fetchFeed() ([]byte, error) {
	req, err := http.NewRequest("GET", c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %v", err)
	}
	req.Header.Set("Accept", "application/xml")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %v", err)
	}

	c.log.Debugf("Holiday feed XML response: %s", string(body))

	return body, nil
}

// parseFeed extracts the holiday dates from the feed XML
func (c *Client) parseFeed(rawBody []byte) ([]time.Time, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(rawBody); err != nil {
		return nil, fmt.Errorf("failed to parse XML: %v", err)
	}

	elements := doc.FindElements("//holidays/holiday")
	if len(elements) == 0 {
		return nil, fmt.Errorf("no holiday data found in XML")
	}

	var dates []time.Time
	for _, el := range elements {
		dateEl := el.FindElement("./date")
		if dateEl == nil {
			continue
		}
		d, err := time.Parse("2006-01-02", dateEl.Text())
		if err != nil {
			c.log.Warnf("Skipping unparseable holiday date %q: %v", dateEl.Text(), err)
			continue
		}
		dates = append(dates, d)
	}
	if len(dates) == 0 {
		return nil, fmt.Errorf("no parsable holiday dates in feed")
	}
	return dates, nil
}

// IsHoliday reports whether the given calendar date is a public holiday
func (c *Client) IsHoliday(year, month, day int) (bool, error) {
	body, err := c.fetchFeed()
	if err != nil {
		return false, err
	}

	dates, err := c.parseFeed(body)
	if err != nil {
		return false, err
	}

	for _, d := range dates {
		if d.Year() == year && int(d.Month()) == month && d.Day() == day {
			return true, nil
		}
	}
	return false, nil
}
