package service

import (
	"context"
	"lodge/infras/otel"
	"lodge/internal/domains/records/model"
	"lodge/internal/domains/records/model/dto"
	"lodge/internal/domains/records/repository"
	"lodge/shared/constant"
	gDto "lodge/shared/dto"
	"lodge/shared/timezone"
	"slices"
	"sync"

	"github.com/rs/zerolog/log"
)

// Observer receives every loaded record set, including the empty one pushed
// when loading fails.
type Observer interface {
	Update(ctx context.Context, records []dto.RecordResponse)
}

// Records is the filterable view over booking history. Changing the filter
// reloads and re-notifies; a fetch failure degrades to an empty list rather
// than an error.
type Records interface {
	SetFilter(ctx context.Context, kind string) (dto.GetRecordsResponse, error)
	Load(ctx context.Context) dto.GetRecordsResponse
	Attach(observer Observer)
	Detach(observer Observer)
}

type serviceImpl struct {
	repo repository.Records
	otel otel.Otel

	mu        sync.RWMutex
	kind      Kind
	observers []Observer
}

func New(repo repository.Records, otel otel.Otel) Records {
	return &serviceImpl{
		repo: repo,
		otel: otel,
		kind: KindAll,
	}
}

func (s *serviceImpl) Attach(observer Observer) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.observers = append(s.observers, observer)
}

func (s *serviceImpl) Detach(observer Observer) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.observers = slices.DeleteFunc(s.observers, func(o Observer) bool {
		return o == observer
	})
}

func (s *serviceImpl) SetFilter(ctx context.Context, kind string) (res dto.GetRecordsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SetFilter")
	defer scope.End()
	defer scope.TraceIfError(err)

	parsed, err := ParseKind(kind)
	if err != nil {
		return res, err
	}

	s.mu.Lock()
	s.kind = parsed
	s.mu.Unlock()

	return s.Load(ctx), nil
}

func (s *serviceImpl) Load(ctx context.Context) dto.GetRecordsResponse {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Load")
	defer scope.End()

	s.mu.RLock()
	kind := s.kind
	s.mu.RUnlock()

	params := gDto.QueryParams{
		SortBy:  model.TableName + "." + model.FieldCheckinDate,
		SortDir: "DESC",
	}

	rows, err := s.repo.GetAll(ctx, params, gDto.FilterGroup{})
	if err != nil {
		log.Warn().Err(err).Str("kind", string(kind)).Msg("failed to load records, notifying empty set")

		res := dto.GetRecordsResponse{Records: []dto.RecordResponse{}}
		s.notify(ctx, res.Records)

		return res
	}

	today := timezone.Now()
	records := make([]dto.RecordResponse, 0, len(rows))

	for _, row := range rows {
		if !kind.Matches(today, row.CheckinDate, row.CheckoutDate, row.Status) {
			continue
		}

		var record dto.RecordResponse
		record.FromModel(row, kind.Label(row.Status))
		records = append(records, record)
	}

	res := dto.GetRecordsResponse{
		Records:   records,
		TotalData: len(records),
	}

	s.notify(ctx, res.Records)

	return res
}

func (s *serviceImpl) notify(ctx context.Context, records []dto.RecordResponse) {
	s.mu.RLock()
	observers := slices.Clone(s.observers)
	s.mu.RUnlock()

	for _, observer := range observers {
		observer.Update(ctx, records)
	}
}
