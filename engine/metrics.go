package engine

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

const instrumentationName = "github.com/lixenwraith/void-raider/engine"

// backgroundCtx is used for metric recording from the simulation thread
var backgroundCtx = context.Background()

// MetricsResource holds gameplay counters
// Instruments come from the global meter provider, a no-op unless the host configures one
type MetricsResource struct {
	EnemiesDestroyed metric.Int64Counter
	WavesAdvanced    metric.Int64Counter
	PlayerDeaths     metric.Int64Counter
	Restarts         metric.Int64Counter
}

func newMetricsResource() *MetricsResource {
	m, err := NewMetricsResource(otel.Meter(instrumentationName))
	if err != nil {
		m, _ = NewMetricsResource(noop.NewMeterProvider().Meter(instrumentationName))
	}
	return m
}

// NewMetricsResource creates the gameplay counters on meter
func NewMetricsResource(meter metric.Meter) (*MetricsResource, error) {
	m := &MetricsResource{}
	var err error

	if m.EnemiesDestroyed, err = meter.Int64Counter(
		"game.enemies.destroyed",
		metric.WithDescription("Enemies destroyed by the player"),
	); err != nil {
		return nil, fmt.Errorf("creating enemies destroyed counter: %w", err)
	}
	if m.WavesAdvanced, err = meter.Int64Counter(
		"game.waves.advanced",
		metric.WithDescription("Wave transitions"),
	); err != nil {
		return nil, fmt.Errorf("creating waves advanced counter: %w", err)
	}
	if m.PlayerDeaths, err = meter.Int64Counter(
		"game.player.deaths",
		metric.WithDescription("Player ship losses"),
	); err != nil {
		return nil, fmt.Errorf("creating player deaths counter: %w", err)
	}
	if m.Restarts, err = meter.Int64Counter(
		"game.restarts",
		metric.WithDescription("Matches restarted from game over"),
	); err != nil {
		return nil, fmt.Errorf("creating restarts counter: %w", err)
	}
	return m, nil
}

// EnemyDestroyed records a kill tagged with the enemy kind
func (m *MetricsResource) EnemyDestroyed(kind string) {
	m.EnemiesDestroyed.Add(backgroundCtx, 1, metric.WithAttributes(attribute.String("kind", kind)))
}

// WaveAdvanced records a wave transition
func (m *MetricsResource) WaveAdvanced(wave int) {
	m.WavesAdvanced.Add(backgroundCtx, 1, metric.WithAttributes(attribute.Int("wave", wave)))
}

// PlayerDied records a player loss
func (m *MetricsResource) PlayerDied() {
	m.PlayerDeaths.Add(backgroundCtx, 1)
}
