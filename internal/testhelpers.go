package internal

import (
	"time"
)

// CreateTestRecord creates a session record updated at the given time
func CreateTestRecord(name, headline string, updated time.Time) SessionRecord {
	return SessionRecord{
		Name:       name,
		Freshness:  &updated,
		Headline:   headline,
		HasCurrent: true,
	}
}

// CreateTestRecords creates a ranked list of records, one hour apart
func CreateTestRecords() []SessionRecord {
	base := time.Date(2024, 3, 1, 9, 15, 0, 0, time.UTC)
	return []SessionRecord{
		CreateTestRecord("payments-api", "Wire the refund endpoint", base.Add(2*time.Hour)),
		CreateTestRecord("login-flow", "", base.Add(time.Hour)),
		{Name: "scratch"},
	}
}
