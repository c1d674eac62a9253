package service

//go:generate mockgen -source=agent.go -destination=mocks/mock_agent.go -package=mocks

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/responder_ai/internal/models"
	"github.com/sirupsen/logrus"
)

// AgentRepository определяет контракт для работы с бд агентов
type AgentRepository interface {
	List(ctx context.Context) ([]*models.Agent, error)
	GetByID(ctx context.Context, id string) (*models.Agent, error)
	Create(ctx context.Context, agent *models.Agent) error
	UpdateStatus(ctx context.Context, id, status string, at time.Time) error
}

// AgentService определяет контракт для работы с агентами
type AgentService interface {
	ListAgents(ctx context.Context, filter models.AgentFilter) ([]*models.Agent, error)
	StatusCounts(ctx context.Context) (*models.AgentStatusCounts, error)
	GetAgent(ctx context.Context, id string) (*models.Agent, error)
	CreateAgent(ctx context.Context, agent *models.Agent) error
	UpdateAgentStatus(ctx context.Context, id, status string) (*models.Agent, error)
}

type agentService struct {
	repo   AgentRepository
	logs   LogRepository
	logger *logrus.Logger
	now    func() time.Time
}

func NewAgentService(repo AgentRepository, logs LogRepository, logger *logrus.Logger) AgentService {
	return &agentService{
		repo:   repo,
		logs:   logs,
		logger: logger,
		now:    time.Now,
	}
}

// FilterAgents оставляет агентов с нужным статусом, в имени, id или типе которых есть query.
// Пустой статус или "all" пропускает всех.
func FilterAgents(agents []*models.Agent, filter models.AgentFilter) []*models.Agent {
	status := strings.ToLower(strings.TrimSpace(filter.Status))
	query := strings.ToLower(strings.TrimSpace(filter.Query))

	result := make([]*models.Agent, 0, len(agents))
	for _, agent := range agents {
		if status != "" && status != "all" && agent.Status != status {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(agent.Name), query) &&
			!strings.Contains(strings.ToLower(agent.ID), query) &&
			!strings.Contains(strings.ToLower(agent.Type), query) {
			continue
		}
		result = append(result, agent)
	}
	return result
}

// CountAgentStatuses считает агентов по статусам
func CountAgentStatuses(agents []*models.Agent) *models.AgentStatusCounts {
	counts := &models.AgentStatusCounts{All: len(agents)}
	for _, agent := range agents {
		switch agent.Status {
		case models.AgentStatusActive:
			counts.Active++
		case models.AgentStatusResponding:
			counts.Responding++
		case models.AgentStatusIdle:
			counts.Idle++
		case models.AgentStatusOffline:
			counts.Offline++
		}
	}
	return counts
}

// ListAgents возвращает отфильтрованный список агентов, отсортированный по id
func (s *agentService) ListAgents(ctx context.Context, filter models.AgentFilter) ([]*models.Agent, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "agent",
		"method":  "ListAgents",
		"status":  filter.Status,
		"query":   filter.Query,
	})

	status := strings.ToLower(strings.TrimSpace(filter.Status))
	if status != "" && status != "all" && !models.IsValidAgentStatus(status) {
		log.Warn("Rejected unknown agent status filter")
		return nil, fmt.Errorf("service: agent status %q: %w", filter.Status, models.ErrInvalidStatus)
	}

	agents, err := s.repo.List(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to list agents from repository")
		return nil, fmt.Errorf("service: could not list agents: %w", err)
	}

	filtered := FilterAgents(agents, filter)
	sort.Slice(filtered, func(i, j int) bool { return filtered[i].ID < filtered[j].ID })

	log.WithField("count", len(filtered)).Info("Agents listed successfully")
	return filtered, nil
}

// StatusCounts возвращает счетчики для вкладок фильтра
func (s *agentService) StatusCounts(ctx context.Context) (*models.AgentStatusCounts, error) {
	agents, err := s.repo.List(ctx)
	if err != nil {
		s.logger.WithError(err).WithField("method", "StatusCounts").Error("Failed to list agents from repository")
		return nil, fmt.Errorf("service: could not count agents: %w", err)
	}
	return CountAgentStatuses(agents), nil
}

func (s *agentService) GetAgent(ctx context.Context, id string) (*models.Agent, error) {
	agent, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.WithError(err).WithFields(logrus.Fields{
			"method":   "GetAgent",
			"agent_id": id,
		}).Warn("Failed to get agent from repository")
		return nil, fmt.Errorf("service: could not get agent: %w", err)
	}
	return agent, nil
}

// CreateAgent регистрирует агента; новые агенты начинают в статусе offline
func (s *agentService) CreateAgent(ctx context.Context, agent *models.Agent) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "agent",
		"method":   "CreateAgent",
		"agent_id": agent.ID,
	})
	log.Info("Attempting to create a new agent")

	agent.Status = models.AgentStatusOffline
	agent.LastActivity = s.now().UTC()
	if err := s.repo.Create(ctx, agent); err != nil {
		log.WithError(err).Error("Failed to create agent in repository")
		return fmt.Errorf("service: could not create agent: %w", err)
	}

	log.Info("Agent created successfully")
	return nil
}

// UpdateAgentStatus меняет статус агента и пишет запись в журнал
func (s *agentService) UpdateAgentStatus(ctx context.Context, id, status string) (*models.Agent, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "agent",
		"method":   "UpdateAgentStatus",
		"agent_id": id,
		"status":   status,
	})
	log.Info("Attempting to update agent status")

	if !models.IsValidAgentStatus(status) {
		log.Warn("Rejected unknown agent status")
		return nil, fmt.Errorf("service: agent status %q: %w", status, models.ErrInvalidStatus)
	}

	agent, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Attempted to update a non-existent agent")
		return nil, fmt.Errorf("service: agent with id %s not found for update: %w", id, err)
	}

	now := s.now().UTC()
	if err := s.repo.UpdateStatus(ctx, id, status, now); err != nil {
		log.WithError(err).Error("Failed to update agent status in repository")
		return nil, fmt.Errorf("service: could not update agent status: %w", err)
	}
	agent.Status = status
	agent.LastActivity = now
	agent.UpdatedAt = now

	entry := &models.LogEntry{
		ID:         uuid.NewString(),
		Timestamp:  now,
		Agent:      agent.ID,
		Action:     fmt.Sprintf("Status changed to %s at %s", status, agent.Location),
		Confidence: 1,
		Outcome:    "Recorded",
	}
	if err := s.logs.Create(ctx, entry); err != nil {
		log.WithError(err).Warn("Failed to record status change in activity log")
	}

	log.Info("Agent status updated successfully")
	return agent, nil
}
