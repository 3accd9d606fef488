package model_test

import (
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/simplecounter/pkg/domain/model"
)

func TestNewHealthStatus(t *testing.T) {
	tests := []struct {
		name string
		now  time.Time
		want string
	}{
		{
			name: "UTC instant",
			now:  time.Date(2026, 10, 18, 9, 15, 0, 0, time.UTC),
			want: "2026-10-18T09:15:00Z",
		},
		{
			name: "offset is normalized to UTC",
			now:  time.Date(2026, 10, 18, 18, 15, 0, 0, time.FixedZone("JST", 9*60*60)),
			want: "2026-10-18T09:15:00Z",
		},
		{
			name: "sub-second precision is dropped",
			now:  time.Date(2026, 10, 18, 9, 15, 0, 999_999_999, time.UTC),
			want: "2026-10-18T09:15:00Z",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status := model.NewHealthStatus(tt.now)
			gt.Equal(t, status.Status, "ok")
			gt.Equal(t, status.Timestamp, tt.want)

			parsed, err := time.Parse(time.RFC3339, status.Timestamp)
			gt.NoError(t, err)
			gt.True(t, parsed.Equal(tt.now.Truncate(time.Second)))
		})
	}
}
