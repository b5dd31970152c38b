package model

import (
	"bytes"
	"encoding/json"
	"time"
)

// SentimentDistribution always carries all three labels, defaulting to zero.
type SentimentDistribution struct {
	Positive int `json:"positive"`
	Neutral  int `json:"neutral"`
	Negative int `json:"negative"`
}

// Total returns the number of articles covered by the distribution.
func (d SentimentDistribution) Total() int {
	return d.Positive + d.Neutral + d.Negative
}

// CountEntry is one key of an ordered count mapping.
type CountEntry struct {
	Key   string
	Count int
}

// OrderedCounts is a count mapping that preserves first-seen key order.
// It marshals to a JSON object so consumers see the usual {key: count} shape.
type OrderedCounts []CountEntry

// Add increments the count for key, appending it on first sight.
func (c *OrderedCounts) Add(key string) {
	for i := range *c {
		if (*c)[i].Key == key {
			(*c)[i].Count++
			return
		}
	}
	*c = append(*c, CountEntry{Key: key, Count: 1})
}

// Get returns the count for key, zero when absent.
func (c OrderedCounts) Get(key string) int {
	for _, e := range c {
		if e.Key == key {
			return e.Count
		}
	}
	return 0
}

// Total returns the sum of all counts.
func (c OrderedCounts) Total() int {
	total := 0
	for _, e := range c {
		total += e.Count
	}
	return total
}

func (c OrderedCounts) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range c {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(e.Key)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		count, err := json.Marshal(e.Count)
		if err != nil {
			return nil, err
		}
		buf.Write(count)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (c *OrderedCounts) UnmarshalJSON(data []byte) error {
	counts := make(map[string]int)
	if err := json.Unmarshal(data, &counts); err != nil {
		return err
	}
	*c = (*c)[:0]
	for key, count := range counts {
		*c = append(*c, CountEntry{Key: key, Count: count})
	}
	return nil
}

// DashboardStats summarizes a classified article set.
type DashboardStats struct {
	TotalArticles         int                   `json:"totalArticles"`
	SentimentDistribution SentimentDistribution `json:"sentimentDistribution"`
	DepartmentCounts      OrderedCounts         `json:"departmentCounts"`
	LanguageCounts        OrderedCounts         `json:"languageCounts"`
}

// Dashboard is the payload handed to the presentation layer.
type Dashboard struct {
	Articles    []Article      `json:"articles"`
	VideoNews   []VideoNews    `json:"videoNews"`
	Stats       DashboardStats `json:"stats"`
	Source      string         `json:"source"`
	LastUpdated time.Time      `json:"lastUpdated"`
}
