package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/google/uuid"
	"github.com/shenikar/responder_ai/internal/models"
)

// Центр зоны обслуживания - Сан-Франциско
const (
	baseLatitude  = 37.7749
	baseLongitude = -122.4194
	// разброс координат вокруг центра, градусы
	coordinateJitter = 0.1
	// сколько раз пробуем новый id при коллизии
	maxIDAttempts = 3
)

var simulatedIncidentTypes = []struct {
	Type        string
	Description string
}{
	{"Structure Fire", "Smoke reported from a multi-story building, occupants evacuating"},
	{"Medical Emergency", "Caller reports an unresponsive adult, CPR in progress"},
	{"Traffic Collision", "Two-vehicle collision blocking an intersection, possible injuries"},
	{"Gas Leak", "Strong odor of natural gas reported near a residential block"},
	{"Power Outage", "Downed power line sparking across the sidewalk"},
	{"Flooding", "Water main break flooding the street and nearby basements"},
}

var simulatedAddresses = []string{
	"123 Market Street, San Francisco, CA",
	"Jefferson St & 7th Ave, San Francisco, CA",
	"450 Mission Street, San Francisco, CA",
	"Golden Gate Park, San Francisco, CA",
	"1 Ferry Building, San Francisco, CA",
	"Union Square, San Francisco, CA",
}

var severities = []string{
	models.SeverityLow,
	models.SeverityMedium,
	models.SeverityHigh,
	models.SeverityCritical,
}

// newIncidentID генерирует идентификатор вида INC-1A2B3C4D
func newIncidentID() string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return "INC-" + strings.ToUpper(raw[:8])
}

// jitteredLocation возвращает случайную точку вокруг центра зоны
func jitteredLocation(address string) models.Location {
	return models.Location{
		Lat:     baseLatitude + (rand.Float64()-0.5)*coordinateJitter,
		Lng:     baseLongitude + (rand.Float64()-0.5)*coordinateJitter,
		Address: address,
	}
}

// randomIncident собирает кандидат в инциденты для кнопки "Add Simulated Incident"
func randomIncident() *models.Incident {
	kind := simulatedIncidentTypes[rand.IntN(len(simulatedIncidentTypes))]
	return &models.Incident{
		Type:        kind.Type,
		Severity:    severities[rand.IntN(len(severities))],
		Confidence:  0.6 + rand.Float64()*0.4,
		Status:      models.IncidentStatusCandidate,
		Location:    jitteredLocation(simulatedAddresses[rand.IntN(len(simulatedAddresses))]),
		Description: kind.Description,
	}
}

// incidentCreator - часть репозитория, нужная для вставки с новым id
type incidentCreator interface {
	Create(ctx context.Context, incident *models.Incident) error
}

// createWithFreshID назначает инциденту новый id и повторяет вставку при коллизии
func createWithFreshID(ctx context.Context, repo incidentCreator, incident *models.Incident) error {
	var err error
	for i := 0; i < maxIDAttempts; i++ {
		incident.ID = newIncidentID()
		err = repo.Create(ctx, incident)
		if err == nil || !errors.Is(err, models.ErrDuplicateID) {
			return err
		}
	}
	return fmt.Errorf("could not allocate unique incident id: %w", err)
}
