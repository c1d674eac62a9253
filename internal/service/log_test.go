package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"testing"
	"time"

	"github.com/shenikar/responder_ai/internal/models"
	"github.com/shenikar/responder_ai/internal/service/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var logBase = time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC)

func sampleLogs() []*models.LogEntry {
	return []*models.LogEntry{
		{ID: "1", Timestamp: logBase.Add(-10 * time.Minute), Agent: "Geo Locator", Action: "Geocoded", Confidence: 0.92, Outcome: "Completed"},
		{ID: "2", Timestamp: logBase.Add(-2 * time.Minute), Agent: "Dispatcher", Action: "Dispatched", Confidence: 0.97, Outcome: "Completed"},
		{ID: "3", Timestamp: logBase.Add(-30 * time.Minute), Agent: "Intake Agent", Action: "Call received", Confidence: 0.95, Outcome: "Completed"},
		{ID: "4", Timestamp: logBase.Add(-5 * time.Minute), Agent: "Dispatcher", Action: "Routed", Confidence: 0.6, Outcome: "Completed"},
	}
}

func newTestLogService(t *testing.T, archiver LogArchiver) (*logService, *mocks.MockLogRepository) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockLogRepository(ctrl)

	service := NewLogService(repoMock, archiver, newTestLogger())
	s := service.(*logService)
	s.now = func() time.Time { return logBase }
	return s, repoMock
}

func ids(logs []*models.LogEntry) []string {
	out := make([]string, 0, len(logs))
	for _, l := range logs {
		out = append(out, l.ID)
	}
	return out
}

func TestSortLogs(t *testing.T) {
	cases := []struct {
		name string
		sort models.LogSort
		want []string
	}{
		{"timestamp desc", models.LogSort{Field: models.LogSortTimestamp, Direction: models.SortDesc}, []string{"2", "4", "1", "3"}},
		{"timestamp asc", models.LogSort{Field: models.LogSortTimestamp, Direction: models.SortAsc}, []string{"3", "1", "4", "2"}},
		{"agent asc", models.LogSort{Field: models.LogSortAgent, Direction: models.SortAsc}, []string{"2", "4", "1", "3"}},
		{"agent desc", models.LogSort{Field: models.LogSortAgent, Direction: models.SortDesc}, []string{"3", "1", "4", "2"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			logs := sampleLogs()
			SortLogs(logs, tc.sort)
			assert.Equal(t, tc.want, ids(logs))
		})
	}
}

func TestNormalizeLogSort(t *testing.T) {
	s, err := NormalizeLogSort(models.LogSort{})
	require.NoError(t, err)
	assert.Equal(t, models.DefaultLogSort, s)

	s, err = NormalizeLogSort(models.LogSort{Field: "Agent", Direction: "ASC"})
	require.NoError(t, err)
	assert.Equal(t, models.LogSort{Field: models.LogSortAgent, Direction: models.SortAsc}, s)

	_, err = NormalizeLogSort(models.LogSort{Field: "outcome"})
	assert.ErrorIs(t, err, models.ErrInvalidSort)

	_, err = NormalizeLogSort(models.LogSort{Direction: "up"})
	assert.ErrorIs(t, err, models.ErrInvalidSort)
}

func TestRelativeTime(t *testing.T) {
	cases := []struct {
		ago  time.Duration
		want string
	}{
		{0, "Just now"},
		{30 * time.Second, "Just now"},
		{5 * time.Minute, "5m ago"},
		{59 * time.Minute, "59m ago"},
		{3 * time.Hour, "3h ago"},
		{50 * time.Hour, "2d ago"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, RelativeTime(logBase, logBase.Add(-tc.ago)))
	}
}

func TestComputeLogStats(t *testing.T) {
	stats := ComputeLogStats(sampleLogs(), logBase)

	assert.Equal(t, 4, stats.Total)
	// (0.92 + 0.97 + 0.95 + 0.6) / 4 = 0.86
	assert.Equal(t, 86, stats.AvgConfidencePercent)
	assert.Equal(t, 3, stats.ActiveAgents)
	require.NotNil(t, stats.LatestActivity)
	assert.Equal(t, logBase.Add(-2*time.Minute), *stats.LatestActivity)
	assert.Equal(t, "2m ago", stats.LatestActivityLabel)

	empty := ComputeLogStats(nil, logBase)
	assert.Zero(t, empty.Total)
	assert.Zero(t, empty.AvgConfidencePercent)
	assert.Nil(t, empty.LatestActivity)
}

func TestListLogs_DefaultSort(t *testing.T) {
	service, repoMock := newTestLogService(t, nil)
	ctx := context.Background()

	repoMock.EXPECT().List(ctx).Return(sampleLogs(), nil).Times(1)

	logs, err := service.ListLogs(ctx, models.LogSort{})

	require.NoError(t, err)
	assert.Equal(t, []string{"2", "4", "1", "3"}, ids(logs))
}

func TestListLogs_InvalidSort(t *testing.T) {
	service, repoMock := newTestLogService(t, nil)

	repoMock.EXPECT().List(gomock.Any()).Times(0)

	_, err := service.ListLogs(context.Background(), models.LogSort{Field: "confidence"})

	assert.ErrorIs(t, err, models.ErrInvalidSort)
}

func TestCreateLog(t *testing.T) {
	service, repoMock := newTestLogService(t, nil)
	ctx := context.Background()
	entry := &models.LogEntry{Agent: "Dispatcher", Action: "Dispatched", Confidence: 0.9}

	repoMock.EXPECT().Create(ctx, entry).Return(nil).Times(1)

	require.NoError(t, service.CreateLog(ctx, entry))
	assert.NotEmpty(t, entry.ID)
	assert.Equal(t, logBase, entry.Timestamp)

	err := service.CreateLog(ctx, &models.LogEntry{Agent: "Dispatcher", Confidence: 1.2})
	assert.ErrorContains(t, err, "out of range")
}

func TestExportCSV_RowCountMatchesVisibleLogs(t *testing.T) {
	service, repoMock := newTestLogService(t, nil)
	ctx := context.Background()
	sortBy := models.LogSort{Field: models.LogSortAgent, Direction: models.SortAsc}

	repoMock.EXPECT().List(ctx).Return(sampleLogs(), nil).Times(2)

	visible, err := service.ListLogs(ctx, sortBy)
	require.NoError(t, err)

	var buf bytes.Buffer
	rows, err := service.ExportCSV(ctx, &buf, sortBy)
	require.NoError(t, err)
	assert.Equal(t, len(visible), rows)

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, len(visible)+1)
	for i, entry := range visible {
		assert.Equal(t, entry.Agent, records[i+1][1])
	}
}

type fakeArchiver struct {
	key  string
	data []byte
	err  error
}

func (f *fakeArchiver) Archive(ctx context.Context, key string, data []byte) (string, error) {
	f.key = key
	f.data = data
	if f.err != nil {
		return "", f.err
	}
	return "https://bucket.example/" + key + "?sig=1", nil
}

func TestArchiveCSV(t *testing.T) {
	archiver := &fakeArchiver{}
	service, repoMock := newTestLogService(t, archiver)
	ctx := context.Background()

	repoMock.EXPECT().List(ctx).Return(sampleLogs(), nil).Times(1)

	archive, err := service.ArchiveCSV(ctx, models.LogSort{})

	require.NoError(t, err)
	assert.Equal(t, "exports/responderai-logs-2025-01-15T12:00:00Z.csv", archive.Key)
	assert.Equal(t, archiver.key, archive.Key)
	assert.Equal(t, 4, archive.Rows)
	assert.Contains(t, archive.URL, archive.Key)
	assert.True(t, bytes.HasPrefix(archiver.data, []byte("Timestamp,Agent,Action,Confidence,Outcome\n")))
}

func TestArchiveCSV_Disabled(t *testing.T) {
	service, repoMock := newTestLogService(t, nil)

	repoMock.EXPECT().List(gomock.Any()).Times(0)

	_, err := service.ArchiveCSV(context.Background(), models.LogSort{})

	assert.ErrorIs(t, err, models.ErrArchiveDisabled)
}

func TestArchiveCSV_UploadError(t *testing.T) {
	service, repoMock := newTestLogService(t, &fakeArchiver{err: fmt.Errorf("access denied")})

	repoMock.EXPECT().List(gomock.Any()).Return(sampleLogs(), nil).Times(1)

	_, err := service.ArchiveCSV(context.Background(), models.LogSort{})

	assert.ErrorContains(t, err, "could not archive logs")
}
