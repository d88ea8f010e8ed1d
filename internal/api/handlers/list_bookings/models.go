package list_bookings

import (
	"net/url"
	"strconv"

	"github.com/m04kA/RBM-DashboardService/internal/service/bookings/models"
)

// ToServiceRequest собирает запрос к сервису из query параметров
func ToServiceRequest(q url.Values) (*models.ListBookingsRequest, error) {
	req := &models.ListBookingsRequest{
		Search:      q.Get("search"),
		FranchiseID: q.Get("franchiseId"),
		Status:      q.Get("status"),
	}

	if v := q.Get("dateFrom"); v != "" {
		req.DateFrom = &v
	}
	if v := q.Get("dateTo"); v != "" {
		req.DateTo = &v
	}

	minParty, err := parseOptionalInt(q.Get("minParty"))
	if err != nil {
		return nil, err
	}
	req.MinParty = minParty

	maxParty, err := parseOptionalInt(q.Get("maxParty"))
	if err != nil {
		return nil, err
	}
	req.MaxParty = maxParty

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
