package guests

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/m04kA/RBM-DashboardService/internal/domain"
	"github.com/m04kA/RBM-DashboardService/internal/filterengine"
	statsCache "github.com/m04kA/RBM-DashboardService/internal/infra/cache"
	guestRepo "github.com/m04kA/RBM-DashboardService/internal/infra/storage/guest"
	"github.com/m04kA/RBM-DashboardService/internal/service/guests/models"
)

// Service сервис для работы с гостями.
// Фильтрация и статистика выполняются в памяти generic-движком;
// при недоступном или пустом хранилище используется встроенный
// демонстрационный набор, чтобы дашборд оставался работоспособным
type Service struct {
	guestRepo    GuestRepository
	statsCache   StatsCache
	sampleData   SampleDataProvider
	engine       *filterengine.Engine[*domain.Guest]
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса гостей.
// statsCache может быть nil - тогда статистика считается на каждый запрос
func NewService(
	guestRepo GuestRepository,
	statsCache StatsCache,
	sampleData SampleDataProvider,
	timeProvider TimeProvider,
	logger Logger,
) *Service {
	return &Service{
		guestRepo:    guestRepo,
		statsCache:   statsCache,
		sampleData:   sampleData,
		engine:       newGuestEngine(),
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// List возвращает гостей, удовлетворяющих фильтру запроса.
// При недоступном или пустом хранилище отвечает демонстрационным набором
// с пометкой source=sample
func (s *Service) List(ctx context.Context, req *models.ListGuestsRequest) (*models.GuestListResponse, error) {
	s.logger.Info("List: fetching guests franchise_id=%s, search=%q", req.FranchiseID, req.Search)

	state, err := req.ToFilterState()
	if err != nil {
		s.logger.Warn("List: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	guests, source := s.loadGuests(ctx, req.FranchiseID)
	filtered := s.engine.Apply(guests, state)

	s.logger.Info("List: %d of %d guests matched, source=%s", len(filtered), len(guests), source)
	return models.FromDomainGuestList(filtered, source), nil
}

// GetByID получает гостя по ID
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*models.GuestResponse, error) {
	s.logger.Info("GetByID: fetching guest id=%s", id)

	guest, err := s.guestRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, guestRepo.ErrGuestNotFound) {
			s.logger.Warn("GetByID: guest id=%s not found", id)
			return nil, ErrGuestNotFound
		}
		s.logger.Error("GetByID: repository error for guest id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainGuest(guest), nil
}

// Create создает нового гостя и сбрасывает кэш статистики его франшизы
func (s *Service) Create(ctx context.Context, req *models.CreateGuestRequest) (*models.GuestResponse, error) {
	s.logger.Info("Create: creating guest franchise_id=%s, name=%q", req.FranchiseID, req.Name)

	if err := s.validateCreateRequest(req); err != nil {
		s.logger.Warn("Create: invalid request: %v", err)
		return nil, err
	}

	guest := &domain.Guest{
		ID:            uuid.New(),
		FranchiseID:   req.FranchiseID,
		FranchiseName: req.FranchiseName,
		Name:          strings.TrimSpace(req.Name),
		Email:         strings.TrimSpace(req.Email),
		Phone:         strings.TrimSpace(req.Phone),
		GuestType:     domain.GuestType(req.GuestType),
		Preferences:   append([]string{}, req.Preferences...),
		Offers:        []domain.GuestOffer{},
	}

	created, err := s.guestRepo.Create(ctx, guest)
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.invalidateStats(ctx, created.FranchiseID)

	s.logger.Info("Create: successfully created guest id=%s", created.ID)
	return models.FromDomainGuest(created), nil
}

// GetStats возвращает агрегированную статистику по гостям франшизы.
// Статистика считается по нефильтрованной коллекции и кэшируется;
// статистика по демонстрационному набору не кэшируется
func (s *Service) GetStats(ctx context.Context, franchiseID string) (*models.StatsResponse, error) {
	if franchiseID == "" {
		franchiseID = domain.FranchiseAll
	}
	s.logger.Info("GetStats: computing stats franchise_id=%s", franchiseID)

	if s.statsCache != nil {
		cached, err := s.statsCache.Get(ctx, franchiseID)
		if err == nil {
			s.logger.Info("GetStats: cache hit franchise_id=%s", franchiseID)
			return &models.StatsResponse{Stats: *cached, Source: models.SourceLive}, nil
		}
		if !errors.Is(err, statsCache.ErrCacheMiss) {
			// Недоступный кэш не блокирует ответ
			s.logger.Warn("GetStats: cache read failed franchise_id=%s: %v", franchiseID, err)
		}
	}

	guests, source := s.loadGuests(ctx, franchiseID)
	stats := s.engine.StatsAt(guests, s.timeProvider.Now())

	if s.statsCache != nil && source == models.SourceLive {
		if err := s.statsCache.Set(ctx, franchiseID, &stats); err != nil {
			s.logger.Warn("GetStats: cache write failed franchise_id=%s: %v", franchiseID, err)
		}
	}

	s.logger.Info("GetStats: total=%d, premium=%d%%, source=%s", stats.Total, stats.PremiumPercentage, source)
	return &models.StatsResponse{Stats: stats, Source: source}, nil
}

// loadGuests загружает гостей из хранилища с fallback на демонстрационный набор.
// Возвращает коллекцию и источник данных (live | sample)
func (s *Service) loadGuests(ctx context.Context, franchiseID string) ([]*domain.Guest, string) {
	var repoFilter *string
	if franchiseID != "" && franchiseID != domain.FranchiseAll {
		repoFilter = &franchiseID
	}

	guests, err := s.guestRepo.GetAll(ctx, repoFilter)
	if err != nil {
		s.logger.Error("loadGuests: storage unavailable, falling back to sample data: %v", err)
		return s.sampleGuests(franchiseID), models.SourceSample
	}
	if len(guests) == 0 {
		s.logger.Warn("loadGuests: storage empty for franchise_id=%s, falling back to sample data", franchiseID)
		return s.sampleGuests(franchiseID), models.SourceSample
	}

	return guests, models.SourceLive
}

// sampleGuests возвращает демонстрационный набор, суженный до франшизы
func (s *Service) sampleGuests(franchiseID string) []*domain.Guest {
	sample := s.sampleData(s.timeProvider.Now())
	if franchiseID == "" || franchiseID == domain.FranchiseAll {
		return sample
	}

	scoped := make([]*domain.Guest, 0, len(sample))
	for _, guest := range sample {
		if guest.FranchiseID == franchiseID {
			scoped = append(scoped, guest)
		}
	}
	return scoped
}

// invalidateStats сбрасывает кэш статистики, ошибки не блокируют операцию
func (s *Service) invalidateStats(ctx context.Context, franchiseID string) {
	if s.statsCache == nil {
		return
	}
	if err := s.statsCache.Invalidate(ctx, franchiseID); err != nil {
		s.logger.Warn("invalidateStats: cache invalidation failed franchise_id=%s: %v", franchiseID, err)
	}
}

// validateCreateRequest проверяет обязательные поля запроса на создание гостя
func (s *Service) validateCreateRequest(req *models.CreateGuestRequest) error {
	if strings.TrimSpace(req.FranchiseID) == "" || req.FranchiseID == domain.FranchiseAll {
		return fmt.Errorf("%w: franchise id is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.Email) == "" && strings.TrimSpace(req.Phone) == "" {
		return fmt.Errorf("%w: email or phone is required", ErrInvalidInput)
	}
	if len(req.Name) > domain.MaxGuestNameLength {
		return fmt.Errorf("%w: name is too long", ErrInvalidInput)
	}
	if req.GuestType != "" && !domain.IsValidGuestType(req.GuestType) {
		return fmt.Errorf("%w: invalid guest type", ErrInvalidInput)
	}
	return nil
}
