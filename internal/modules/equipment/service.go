package equipment

import (
	"context"

	"github.com/google/uuid"

	"bwbackbone/internal/domain"
	"bwbackbone/internal/events"
	"bwbackbone/internal/pkg/keylock"
)

type Service struct {
	equipment EquipmentRepository
	locks     *keylock.KeyLock
	events    EventSink
}

func NewService(equipment EquipmentRepository, locks *keylock.KeyLock, sink EventSink) *Service {
	return &Service{
		equipment: equipment,
		locks:     locks,
		events:    sink,
	}
}

func (s *Service) Create(ctx context.Context, req CreateEquipmentRequest) (*domain.Equipment, error) {
	if req.ServiceInterval != nil && *req.ServiceInterval <= 0 {
		return nil, ErrValidation
	}

	e := &domain.Equipment{
		ID:              uuid.NewString(),
		EquipmentName:   req.EquipmentName,
		EquipmentType:   req.EquipmentType,
		Manufacturer:    req.Manufacturer,
		Model:           req.Model,
		SerialNumber:    req.SerialNumber,
		MeterType:       req.MeterType,
		CurrentMeter:    req.CurrentMeter,
		ServiceInterval: req.ServiceInterval,
		NextServiceDue:  req.NextServiceDue,
		Status:          domain.EquipmentOperational,
		Notes:           req.Notes,
	}
	if err := s.equipment.Create(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *Service) Get(ctx context.Context, id string) (*EquipmentView, error) {
	e, err := s.equipment.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &EquipmentView{Equipment: *e, ServiceStatus: Classify(e)}, nil
}

func (s *Service) List(ctx context.Context, status domain.EquipmentStatus) ([]EquipmentView, error) {
	list, err := s.equipment.List(ctx, status)
	if err != nil {
		return nil, err
	}
	out := make([]EquipmentView, 0, len(list))
	for i := range list {
		out = append(out, EquipmentView{Equipment: list[i], ServiceStatus: Classify(&list[i])})
	}
	return out, nil
}

// LogUsage advances the meter. Meters only move forward; a reading below the
// stored value is an operator typo, not wear reversal.
func (s *Service) LogUsage(ctx context.Context, id string, req LogUsageRequest) (*EquipmentView, error) {
	unlock := s.locks.Lock("equipment:" + id)
	defer unlock()

	e, err := s.equipment.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if e.MeterType == domain.MeterNone {
		return nil, ErrNoMeter
	}
	if e.Status == domain.EquipmentRetired {
		return nil, ErrRetired
	}
	if e.CurrentMeter != nil && req.MeterReading < *e.CurrentMeter {
		return nil, ErrMeterRegression
	}

	e.CurrentMeter = &req.MeterReading
	if err := s.equipment.Update(ctx, e); err != nil {
		return nil, err
	}

	view := &EquipmentView{Equipment: *e, ServiceStatus: Classify(e)}
	s.publish(ctx, events.TopicEquipmentUsage, view)
	return view, nil
}

// RecordService resets the maintenance window: the next due point is the
// meter at service plus one full interval.
func (s *Service) RecordService(ctx context.Context, id string, req RecordServiceRequest) (*EquipmentView, error) {
	unlock := s.locks.Lock("equipment:" + id)
	defer unlock()

	e, err := s.equipment.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if e.Status == domain.EquipmentRetired {
		return nil, ErrRetired
	}

	if e.CurrentMeter == nil || req.MeterAtService > *e.CurrentMeter {
		e.CurrentMeter = &req.MeterAtService
	}
	if e.ServiceInterval != nil {
		due := req.MeterAtService + *e.ServiceInterval
		e.NextServiceDue = &due
	}
	if e.Status == domain.EquipmentMaintenance {
		e.Status = domain.EquipmentOperational
	}
	if req.Notes != "" {
		e.Notes = req.Notes
	}
	if err := s.equipment.Update(ctx, e); err != nil {
		return nil, err
	}

	view := &EquipmentView{Equipment: *e, ServiceStatus: Classify(e)}
	s.publish(ctx, events.TopicEquipmentServiced, view)
	return view, nil
}

// SetStatus moves the machine between operational, down, maintenance and
// retired. Retirement is terminal.
func (s *Service) SetStatus(ctx context.Context, id string, to domain.EquipmentStatus) (*domain.Equipment, error) {
	switch to {
	case domain.EquipmentOperational, domain.EquipmentDown, domain.EquipmentMaintenance, domain.EquipmentRetired:
	default:
		return nil, ErrInvalidStatus
	}

	unlock := s.locks.Lock("equipment:" + id)
	defer unlock()

	e, err := s.equipment.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if e.Status == domain.EquipmentRetired {
		return nil, ErrRetired
	}

	e.Status = to
	if err := s.equipment.Update(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

// DueForService lists non-retired equipment at or past the due-soon line.
func (s *Service) DueForService(ctx context.Context) ([]EquipmentView, error) {
	list, err := s.equipment.List(ctx, "")
	if err != nil {
		return nil, err
	}
	out := make([]EquipmentView, 0)
	for i := range list {
		if list[i].Status == domain.EquipmentRetired {
			continue
		}
		st := Classify(&list[i])
		if st == StatusDueSoon || st == StatusDueNow {
			out = append(out, EquipmentView{Equipment: list[i], ServiceStatus: st})
		}
	}
	return out, nil
}

func (s *Service) publish(ctx context.Context, topic string, payload any) {
	if s.events == nil {
		return
	}
	_ = s.events.Publish(ctx, topic, payload)
}
