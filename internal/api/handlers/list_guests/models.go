package list_guests

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/m04kA/RBM-DashboardService/internal/service/guests/models"
)

// ToServiceRequest собирает запрос к сервису из query параметров.
// Отсутствующий параметр не накладывает ограничения на выборку
func ToServiceRequest(q url.Values) (*models.ListGuestsRequest, error) {
	req := &models.ListGuestsRequest{
		Search:      q.Get("search"),
		FranchiseID: q.Get("franchiseId"),
		GuestType:   q.Get("guestType"),
	}

	if v := q.Get("lastVisitFrom"); v != "" {
		req.LastVisitFrom = &v
	}
	if v := q.Get("lastVisitTo"); v != "" {
		req.LastVisitTo = &v
	}

	minVisits, err := parseOptionalInt(q.Get("minVisits"))
	if err != nil {
		return nil, err
	}
	req.MinVisits = minVisits

	maxVisits, err := parseOptionalInt(q.Get("maxVisits"))
	if err != nil {
		return nil, err
	}
	req.MaxVisits = maxVisits

	loyaltyMin, err := parseOptionalInt(q.Get("loyaltyMin"))
	if err != nil {
		return nil, err
	}
	req.LoyaltyMin = loyaltyMin

	loyaltyMax, err := parseOptionalInt(q.Get("loyaltyMax"))
	if err != nil {
		return nil, err
	}
	req.LoyaltyMax = loyaltyMax

	if v := q.Get("offerRedeemed"); v != "" {
		redeemed, err := strconv.ParseBool(v)
		if err != nil {
			return nil, err
		}
		req.OfferRedeemed = &redeemed
	}

	// Предпочтения передаются через запятую: preferences=vegan,window
	if v := q.Get("preferences"); v != "" {
		for _, pref := range strings.Split(v, ",") {
			if pref = strings.TrimSpace(pref); pref != "" {
				req.Preferences = append(req.Preferences, pref)
			}
		}
	}

	return req, nil
}

func parseOptionalInt(s string) (*int, error) {
	if s == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
