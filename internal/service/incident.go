package service

//go:generate mockgen -source=incident.go -destination=mocks/mock_incident.go -package=mocks

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shenikar/responder_ai/internal/config"
	"github.com/shenikar/responder_ai/internal/metrics"
	"github.com/shenikar/responder_ai/internal/models"
	"github.com/shenikar/responder_ai/internal/webhook"
	"github.com/sirupsen/logrus"
)

// IncidentRepository определяет контракт для работы с бд инцидентов
type IncidentRepository interface {
	Create(ctx context.Context, incident *models.Incident) error
	GetByID(ctx context.Context, id string) (*models.Incident, error)
	Update(ctx context.Context, incident *models.Incident) error
	Resolve(ctx context.Context, id string) error
	ListIncidents(ctx context.Context, page, pageSize int, status string) ([]*models.Incident, error)
	ListActive(ctx context.Context) ([]*models.Incident, error)
	GetStats(ctx context.Context, since time.Time) (*models.IncidentStats, error)
	GetIncidentFromCache(ctx context.Context, id string) (*models.Incident, error)
	SetIncidentCache(ctx context.Context, incident *models.Incident) error
	InvalidateIncidentCache(ctx context.Context, id string) error
}

// ResourceRepository определяет контракт для работы с ресурсами на карте
type ResourceRepository interface {
	List(ctx context.Context) ([]*models.Resource, error)
	FindNearby(ctx context.Context, lat, lon float64, radiusMeters int) ([]*models.Resource, error)
}

// IncidentService определяет контракт для бизнес-логики управления инцидентами
type IncidentService interface {
	CreateIncident(ctx context.Context, incident *models.Incident) error
	SimulateIncident(ctx context.Context) (*models.Incident, error)
	GetIncident(ctx context.Context, id string) (*models.Incident, error)
	UpdateIncident(ctx context.Context, incident *models.Incident) error
	ResolveIncident(ctx context.Context, id string) error
	ListIncidents(ctx context.Context, page, pageSize int, status string) ([]*models.Incident, error)
	GetStats(ctx context.Context) (*models.IncidentStats, error)
	GetMapData(ctx context.Context) (*models.MapData, error)
	ListResources(ctx context.Context) ([]*models.Resource, error)
	FindNearbyResources(ctx context.Context, lat, lon float64, radiusMeters int) ([]*models.Resource, error)
}

type incidentService struct {
	repo      IncidentRepository
	resources ResourceRepository
	publisher webhook.WebhookPublisher
	metrics   *metrics.Metrics
	logger    *logrus.Logger
	cfg       *config.Config
}

func NewIncidentService(
	repo IncidentRepository,
	resources ResourceRepository,
	logger *logrus.Logger,
	cfg *config.Config,
	publisher webhook.WebhookPublisher,
	m *metrics.Metrics,
) IncidentService {
	return &incidentService{
		repo:      repo,
		resources: resources,
		publisher: publisher,
		metrics:   m,
		logger:    logger,
		cfg:       cfg,
	}
}

// CreateIncident создает инцидент-кандидат
func (s *incidentService) CreateIncident(ctx context.Context, incident *models.Incident) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "incident",
		"method":  "CreateIncident",
		"type":    incident.Type,
	})
	log.Info("Attempting to create a new incident")

	if !models.IsValidSeverity(incident.Severity) {
		log.Warn("Rejected incident with unknown severity")
		return fmt.Errorf("service: severity %q: %w", incident.Severity, models.ErrInvalidStatus)
	}

	incident.Status = models.IncidentStatusCandidate
	if err := createWithFreshID(ctx, s.repo, incident); err != nil {
		log.WithError(err).Error("Failed to create incident in repository")
		return fmt.Errorf("service: could not create incident: %w", err)
	}
	s.metrics.IncidentCreated("api")

	log.WithField("incident_id", incident.ID).Info("Incident created successfully")
	return nil
}

// SimulateIncident создает случайный инцидент-кандидат
func (s *incidentService) SimulateIncident(ctx context.Context) (*models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "incident",
		"method":  "SimulateIncident",
	})

	incident := randomIncident()
	if err := createWithFreshID(ctx, s.repo, incident); err != nil {
		log.WithError(err).Error("Failed to store simulated incident")
		return nil, fmt.Errorf("service: could not simulate incident: %w", err)
	}
	s.metrics.IncidentCreated("simulated")

	log.WithFields(logrus.Fields{
		"incident_id": incident.ID,
		"type":        incident.Type,
		"severity":    incident.Severity,
	}).Info("Simulated incident created")
	return incident, nil
}

// GetIncident получает инцидент по ID, сначала из кеша
func (s *incidentService) GetIncident(ctx context.Context, id string) (*models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "GetIncident",
		"incident_id": id,
	})
	log.Info("Fetching incident by ID")

	cached, err := s.repo.GetIncidentFromCache(ctx, id)
	if err != nil {
		// Кеш недоступен - идем в бд
		log.WithError(err).Warn("Failed to read incident cache")
	}
	if cached != nil {
		log.Debug("Incident served from cache")
		return cached, nil
	}

	incident, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Error("Failed to get incident in repository")
		return nil, fmt.Errorf("service: could not get incident: %w", err)
	}

	if err := s.repo.SetIncidentCache(ctx, incident); err != nil {
		log.WithError(err).Warn("Failed to cache incident")
	}

	log.Info("Incident fetched successfully")
	return incident, nil
}

// UpdateIncident обновляет существующий инцидент
func (s *incidentService) UpdateIncident(ctx context.Context, incident *models.Incident) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "UpdateIncident",
		"incident_id": incident.ID,
	})
	log.Info("Attempting to update incident")

	if !models.IsValidIncidentStatus(incident.Status) || !models.IsValidSeverity(incident.Severity) {
		log.Warn("Rejected incident update with unknown status or severity")
		return fmt.Errorf("service: status %q severity %q: %w", incident.Status, incident.Severity, models.ErrInvalidStatus)
	}

	existing, err := s.repo.GetByID(ctx, incident.ID)
	if err != nil {
		log.WithError(err).Warn("Attempted to update a non-existent incident")
		return fmt.Errorf("service: incident with id %s not found for update: %w", incident.ID, err)
	}
	wasConfirmed := existing.Status == models.IncidentStatusConfirmed

	existing.Type = incident.Type
	existing.Severity = incident.Severity
	existing.Confidence = incident.Confidence
	existing.Status = incident.Status
	existing.Location = incident.Location
	existing.Description = incident.Description

	if err := s.repo.Update(ctx, existing); err != nil {
		log.WithError(err).Error("Failed to update incident in repository")
		return fmt.Errorf("service: could not update incident: %w", err)
	}
	if err := s.repo.InvalidateIncidentCache(ctx, existing.ID); err != nil {
		log.WithError(err).Warn("Failed to invalidate incident cache")
	}

	if !wasConfirmed && existing.Status == models.IncidentStatusConfirmed {
		event := webhook.NewDispatchEvent(existing, webhook.ReasonIncidentConfirmed, nil)
		if err := s.publisher.Publish(ctx, event); err != nil {
			// Инцидент уже сохранен, уведомление не критично
			log.WithError(err).Error("Failed to publish dispatch event")
		}
	}

	*incident = *existing
	log.Info("Incident updated successfully")
	return nil
}

// ResolveIncident помечает инцидент решенным
func (s *incidentService) ResolveIncident(ctx context.Context, id string) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "ResolveIncident",
		"incident_id": id,
	})
	log.Info("Attempting to resolve incident")

	if _, err := s.repo.GetByID(ctx, id); err != nil {
		log.WithError(err).Warn("Attempted to resolve a non-existent incident")
		return fmt.Errorf("service: incident with id %s not found for resolve: %w", id, err)
	}

	if err := s.repo.Resolve(ctx, id); err != nil {
		log.WithError(err).Error("Failed to resolve incident in repository")
		return fmt.Errorf("service: could not resolve incident: %w", err)
	}
	if err := s.repo.InvalidateIncidentCache(ctx, id); err != nil {
		log.WithError(err).Warn("Failed to invalidate incident cache")
	}

	log.Info("Incident resolved successfully")
	return nil
}

// ListIncidents возвращает список инцидентов с пагинацией
func (s *incidentService) ListIncidents(ctx context.Context, page, pageSize int, status string) ([]*models.Incident, error) {
	if page < 1 {
		page = 1
	}

	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	status = strings.ToLower(strings.TrimSpace(status))
	if status != "" && !models.IsValidIncidentStatus(status) {
		return nil, fmt.Errorf("service: incident status %q: %w", status, models.ErrInvalidStatus)
	}

	log := s.logger.WithFields(logrus.Fields{
		"service":   "incident",
		"method":    "ListIncidents",
		"page":      page,
		"page_size": pageSize,
		"status":    status,
	})
	log.Info("Listing incidents")

	incidents, err := s.repo.ListIncidents(ctx, page, pageSize, status)
	if err != nil {
		log.WithError(err).Error("Failed to list incidents from repository")
		return nil, fmt.Errorf("service: could not list incidents: %w", err)
	}

	log.WithField("count", len(incidents)).Info("Incidents listed successfully")
	return incidents, nil
}

// GetStats возвращает статистику за окно STATS_TIME_WINDOW_MINUTES
func (s *incidentService) GetStats(ctx context.Context) (*models.IncidentStats, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "incident",
		"method":  "GetStats",
	})

	since := time.Now().Add(-time.Duration(s.cfg.StatsTimeWindowMinutes) * time.Minute)
	stats, err := s.repo.GetStats(ctx, since)
	if err != nil {
		log.WithError(err).Error("Failed to get incident stats")
		return nil, fmt.Errorf("service: could not get stats: %w", err)
	}
	return stats, nil
}

// GetMapData возвращает активные инциденты и ресурсы для карты
func (s *incidentService) GetMapData(ctx context.Context) (*models.MapData, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "incident",
		"method":  "GetMapData",
	})

	incidents, err := s.repo.ListActive(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to list active incidents")
		return nil, fmt.Errorf("service: could not load map incidents: %w", err)
	}
	resources, err := s.resources.List(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to list resources")
		return nil, fmt.Errorf("service: could not load map resources: %w", err)
	}

	return &models.MapData{Incidents: incidents, Resources: resources}, nil
}

func (s *incidentService) ListResources(ctx context.Context) ([]*models.Resource, error) {
	resources, err := s.resources.List(ctx)
	if err != nil {
		s.logger.WithError(err).WithField("method", "ListResources").Error("Failed to list resources")
		return nil, fmt.Errorf("service: could not list resources: %w", err)
	}
	return resources, nil
}

// FindNearbyResources находит ресурсы в радиусе от точки, ближайшие первыми
func (s *incidentService) FindNearbyResources(ctx context.Context, lat, lon float64, radiusMeters int) ([]*models.Resource, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "incident",
		"method":  "FindNearbyResources",
		"radius":  radiusMeters,
	})
	log.Info("Searching nearby resources")

	resources, err := s.resources.FindNearby(ctx, lat, lon, radiusMeters)
	if err != nil {
		log.WithError(err).Error("Failed to find nearby resources")
		return nil, fmt.Errorf("service: failed to find nearby resources: %w", err)
	}

	log.WithField("count", len(resources)).Info("Nearby resources found")
	return resources, nil
}
