package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/hr-service/internal/events"
	"github.com/spec-kit/hr-service/internal/observability"
)

// AuditService records every domain event in the log and the event counters.
type AuditService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
	metrics    *observability.Metrics
}

// NewAuditService creates the service.
func NewAuditService(dispatcher events.Dispatcher, logger *zap.Logger, metrics *observability.Metrics) *AuditService {
	return &AuditService{
		dispatcher: dispatcher,
		logger:     logger,
		metrics:    metrics,
	}
}

// RegisterHandlers subscribes to events.
func (a *AuditService) RegisterHandlers() {
	if a.dispatcher == nil {
		return
	}
	for _, t := range events.Types() {
		a.dispatcher.Subscribe(t, a.handle)
	}
}

func (a *AuditService) handle(_ context.Context, event events.Event) error {
	fields := []zap.Field{
		zap.String("event_id", event.ID),
		zap.String("event_type", string(event.Type)),
		zap.String("actor", string(event.Actor)),
		zap.Time("timestamp", event.Timestamp),
	}
	if event.EmployeeID != "" {
		fields = append(fields, zap.String("employee_id", event.EmployeeID))
	}
	if event.Payload != nil {
		fields = append(fields, zap.Any("payload", event.Payload))
	}
	a.logger.Info("audit", fields...)

	n := 1
	if p, ok := event.Payload.(events.EmployeesImportedPayload); ok {
		n = p.Added
	}
	a.metrics.RecordEvent(string(event.Type), n)
	return nil
}
