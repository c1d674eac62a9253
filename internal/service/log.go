package service

//go:generate mockgen -source=log.go -destination=mocks/mock_log.go -package=mocks

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/responder_ai/internal/export"
	"github.com/shenikar/responder_ai/internal/models"
	"github.com/sirupsen/logrus"
)

// LogRepository определяет контракт для работы с журналом действий
type LogRepository interface {
	List(ctx context.Context) ([]*models.LogEntry, error)
	Create(ctx context.Context, entry *models.LogEntry) error
}

// LogArchiver сохраняет выгрузку во внешнее хранилище и возвращает ссылку на нее
type LogArchiver interface {
	Archive(ctx context.Context, key string, data []byte) (string, error)
}

// LogService определяет контракт для работы с журналом
type LogService interface {
	ListLogs(ctx context.Context, sort models.LogSort) ([]*models.LogEntry, error)
	CreateLog(ctx context.Context, entry *models.LogEntry) error
	GetLogStats(ctx context.Context) (*models.LogStats, error)
	ExportCSV(ctx context.Context, w io.Writer, sort models.LogSort) (int, error)
	ArchiveCSV(ctx context.Context, sort models.LogSort) (*models.LogArchive, error)
}

type logService struct {
	repo     LogRepository
	archiver LogArchiver
	logger   *logrus.Logger
	now      func() time.Time
}

// NewLogService создает сервис журнала; archiver может быть nil
func NewLogService(repo LogRepository, archiver LogArchiver, logger *logrus.Logger) LogService {
	return &logService{
		repo:     repo,
		archiver: archiver,
		logger:   logger,
		now:      time.Now,
	}
}

// NormalizeLogSort проверяет параметры сортировки и подставляет значения по умолчанию
func NormalizeLogSort(s models.LogSort) (models.LogSort, error) {
	s.Field = strings.ToLower(strings.TrimSpace(s.Field))
	s.Direction = strings.ToLower(strings.TrimSpace(s.Direction))
	if s.Field == "" {
		s.Field = models.DefaultLogSort.Field
	}
	if s.Direction == "" {
		s.Direction = models.DefaultLogSort.Direction
	}
	if s.Field != models.LogSortTimestamp && s.Field != models.LogSortAgent {
		return s, fmt.Errorf("sort field %q: %w", s.Field, models.ErrInvalidSort)
	}
	if s.Direction != models.SortAsc && s.Direction != models.SortDesc {
		return s, fmt.Errorf("sort direction %q: %w", s.Direction, models.ErrInvalidSort)
	}
	return s, nil
}

// SortLogs сортирует записи журнала на месте; при равенстве порядок по id
func SortLogs(logs []*models.LogEntry, s models.LogSort) {
	sort.SliceStable(logs, func(i, j int) bool {
		var cmp int
		switch s.Field {
		case models.LogSortAgent:
			cmp = strings.Compare(logs[i].Agent, logs[j].Agent)
		default:
			cmp = logs[i].Timestamp.Compare(logs[j].Timestamp)
		}
		if cmp == 0 {
			cmp = strings.Compare(logs[i].ID, logs[j].ID)
		}
		if s.Direction == models.SortAsc {
			return cmp < 0
		}
		return cmp > 0
	})
}

// RelativeTime форматирует давность события: "Just now", "5m ago", "3h ago", "2d ago"
func RelativeTime(now, t time.Time) string {
	diff := now.Sub(t)
	mins := int(diff / time.Minute)
	switch {
	case mins < 1:
		return "Just now"
	case mins < 60:
		return fmt.Sprintf("%dm ago", mins)
	}
	hours := mins / 60
	if hours < 24 {
		return fmt.Sprintf("%dh ago", hours)
	}
	return fmt.Sprintf("%dd ago", hours/24)
}

// ComputeLogStats считает сводку по журналу
func ComputeLogStats(logs []*models.LogEntry, now time.Time) *models.LogStats {
	stats := &models.LogStats{Total: len(logs), LatestActivityLabel: RelativeTime(now, now)}
	if len(logs) == 0 {
		return stats
	}

	var sum float64
	agents := make(map[string]struct{}, len(logs))
	latest := logs[0].Timestamp
	for _, entry := range logs {
		sum += entry.Confidence
		agents[entry.Agent] = struct{}{}
		if entry.Timestamp.After(latest) {
			latest = entry.Timestamp
		}
	}

	stats.AvgConfidencePercent = models.ConfidencePercent(sum / float64(len(logs)))
	stats.ActiveAgents = len(agents)
	stats.LatestActivity = &latest
	stats.LatestActivityLabel = RelativeTime(now, latest)
	return stats
}

// ListLogs возвращает журнал в запрошенном порядке
func (s *logService) ListLogs(ctx context.Context, sortBy models.LogSort) ([]*models.LogEntry, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "log",
		"method":  "ListLogs",
	})

	sortBy, err := NormalizeLogSort(sortBy)
	if err != nil {
		log.WithError(err).Warn("Rejected log sort")
		return nil, fmt.Errorf("service: %w", err)
	}

	logs, err := s.repo.List(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to list logs from repository")
		return nil, fmt.Errorf("service: could not list logs: %w", err)
	}
	SortLogs(logs, sortBy)

	log.WithField("count", len(logs)).Debug("Logs listed")
	return logs, nil
}

func (s *logService) CreateLog(ctx context.Context, entry *models.LogEntry) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "log",
		"method":  "CreateLog",
		"agent":   entry.Agent,
	})

	if entry.Confidence < 0 || entry.Confidence > 1 || math.IsNaN(entry.Confidence) {
		return fmt.Errorf("service: confidence %v out of range [0,1]", entry.Confidence)
	}
	entry.ID = uuid.NewString()
	if entry.Timestamp.IsZero() {
		entry.Timestamp = s.now().UTC()
	}

	if err := s.repo.Create(ctx, entry); err != nil {
		log.WithError(err).Error("Failed to create log entry in repository")
		return fmt.Errorf("service: could not create log entry: %w", err)
	}
	log.WithField("log_id", entry.ID).Info("Log entry created")
	return nil
}

func (s *logService) GetLogStats(ctx context.Context) (*models.LogStats, error) {
	logs, err := s.repo.List(ctx)
	if err != nil {
		s.logger.WithError(err).WithField("method", "GetLogStats").Error("Failed to list logs from repository")
		return nil, fmt.Errorf("service: could not get log stats: %w", err)
	}
	return ComputeLogStats(logs, s.now()), nil
}

// ExportCSV пишет видимые записи журнала в CSV и возвращает число строк данных
func (s *logService) ExportCSV(ctx context.Context, w io.Writer, sortBy models.LogSort) (int, error) {
	logs, err := s.ListLogs(ctx, sortBy)
	if err != nil {
		return 0, err
	}

	rows, err := export.WriteLogsCSV(w, logs)
	if err != nil {
		s.logger.WithError(err).WithField("method", "ExportCSV").Error("Failed to write CSV")
		return rows, fmt.Errorf("service: could not export logs: %w", err)
	}
	return rows, nil
}

// ArchiveCSV выгружает CSV в хранилище и возвращает ссылку на него
func (s *logService) ArchiveCSV(ctx context.Context, sortBy models.LogSort) (*models.LogArchive, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "log",
		"method":  "ArchiveCSV",
	})
	if s.archiver == nil {
		return nil, fmt.Errorf("service: %w", models.ErrArchiveDisabled)
	}

	var buf bytes.Buffer
	rows, err := s.ExportCSV(ctx, &buf, sortBy)
	if err != nil {
		return nil, err
	}

	key := "exports/" + export.LogsFilename(s.now())
	url, err := s.archiver.Archive(ctx, key, buf.Bytes())
	if err != nil {
		log.WithError(err).Error("Failed to archive log export")
		return nil, fmt.Errorf("service: could not archive logs: %w", err)
	}

	log.WithFields(logrus.Fields{"key": key, "rows": rows}).Info("Log export archived")
	return &models.LogArchive{Key: key, URL: url, Rows: rows}, nil
}
