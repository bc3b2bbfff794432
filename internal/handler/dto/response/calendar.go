package response

import (
	"time"

	"venuebook/internal/usecase/commands"
)

type FeedSyncResponse struct {
	Feed      string    `json:"feed"`
	Imported  int       `json:"imported"`
	Skipped   int       `json:"skipped"`
	Error     string    `json:"error,omitempty"`
	SyncedAt  time.Time `json:"syncedAt"`
	WindowEnd time.Time `json:"windowEnd"`
}

type CalendarSyncResponse struct {
	Feeds []FeedSyncResponse `json:"feeds"`
}

func FromSyncResults(results []commands.SyncResult) *CalendarSyncResponse {
	res := &CalendarSyncResponse{Feeds: make([]FeedSyncResponse, 0, len(results))}
	for _, r := range results {
		item := FeedSyncResponse{
			Feed:      r.Feed,
			Imported:  r.Imported,
			Skipped:   r.Skipped,
			SyncedAt:  r.SyncedAt,
			WindowEnd: r.WindowEnd,
		}
		if r.Err != nil {
			item.Error = r.Err.Error()
		}
		res.Feeds = append(res.Feeds, item)
	}
	return res
}
