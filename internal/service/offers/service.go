package offers

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/RBM-DashboardService/internal/domain"
	guestRepo "github.com/m04kA/RBM-DashboardService/internal/infra/storage/guest"
	"github.com/m04kA/RBM-DashboardService/internal/service/offers/models"
)

// Service сервис промо-кампаний и погашения офферов гостей
type Service struct {
	offerRepo    OfferRepository
	guestRepo    GuestRepository
	statsCache   StatsCache
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса офферов.
// statsCache может быть nil
func NewService(
	offerRepo OfferRepository,
	guestRepo GuestRepository,
	statsCache StatsCache,
	timeProvider TimeProvider,
	logger Logger,
) *Service {
	return &Service{
		offerRepo:    offerRepo,
		guestRepo:    guestRepo,
		statsCache:   statsCache,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// List возвращает промо-кампании франшизы
func (s *Service) List(ctx context.Context, franchiseID string, activeOnly bool) (*models.OfferListResponse, error) {
	s.logger.Info("List: fetching offers franchise_id=%s, active_only=%t", franchiseID, activeOnly)

	if strings.TrimSpace(franchiseID) == "" || franchiseID == domain.FranchiseAll {
		s.logger.Warn("List: franchise id is required")
		return nil, fmt.Errorf("%w: franchise id is required", ErrInvalidInput)
	}

	offers, err := s.offerRepo.GetByFranchise(ctx, franchiseID, activeOnly)
	if err != nil {
		s.logger.Error("List: repository error for franchise_id=%s: %v", franchiseID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d offers for franchise_id=%s", len(offers), franchiseID)
	return models.FromDomainOfferList(offers, s.timeProvider.Now()), nil
}

// Redeem помечает оффер гостя погашенным.
// Погашение влияет на статистику вовлеченности, поэтому кэш статистики
// франшизы сбрасывается
func (s *Service) Redeem(ctx context.Context, guestID, guestOfferID uuid.UUID) (*models.RedeemOfferResponse, error) {
	s.logger.Info("Redeem: redeeming offer guest_id=%s, offer_id=%s", guestID, guestOfferID)

	guest, err := s.guestRepo.GetByID(ctx, guestID)
	if err != nil {
		if errors.Is(err, guestRepo.ErrGuestNotFound) {
			s.logger.Warn("Redeem: guest id=%s not found", guestID)
			return nil, ErrGuestNotFound
		}
		s.logger.Error("Redeem: repository error for guest id=%s: %v", guestID, err)
		return nil, fmt.Errorf("%w: Redeem - repository error: %v", ErrInternal, err)
	}

	offer, err := findGuestOffer(guest, guestOfferID)
	if err != nil {
		s.logger.Warn("Redeem: offer id=%s rejected for guest id=%s: %v", guestOfferID, guestID, err)
		return nil, err
	}

	redeemedAt := s.timeProvider.Now()
	err = s.guestRepo.UpdateOfferStatus(ctx, guestID, guestOfferID, domain.OfferStatusRedeemed, &redeemedAt)
	if err != nil {
		if errors.Is(err, guestRepo.ErrGuestOfferNotFound) {
			return nil, ErrOfferNotFound
		}
		s.logger.Error("Redeem: failed to update offer id=%s: %v", guestOfferID, err)
		return nil, fmt.Errorf("%w: Redeem - repository error: %v", ErrInternal, err)
	}

	s.invalidateStats(ctx, guest.FranchiseID)

	s.logger.Info("Redeem: offer id=%s redeemed for guest id=%s", guestOfferID, guestID)
	return &models.RedeemOfferResponse{
		GuestID:      guestID.String(),
		GuestOfferID: offer.ID.String(),
		Status:       string(domain.OfferStatusRedeemed),
		RedeemedAt:   redeemedAt.Format(time.RFC3339),
	}, nil
}

// findGuestOffer находит оффер гостя и проверяет, что его можно погасить
func findGuestOffer(guest *domain.Guest, guestOfferID uuid.UUID) (*domain.GuestOffer, error) {
	for i := range guest.Offers {
		offer := &guest.Offers[i]
		if offer.ID != guestOfferID {
			continue
		}
		switch offer.Status {
		case domain.OfferStatusRedeemed:
			return nil, ErrAlreadyRedeemed
		case domain.OfferStatusExpired:
			return nil, ErrOfferExpired
		}
		return offer, nil
	}
	return nil, ErrOfferNotFound
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
