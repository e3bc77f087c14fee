package get_available_dates

import (
	"github.com/BrunoDeVeronezi/ChamadosPro-sub008/internal/domain"
	getAvailableDates "github.com/BrunoDeVeronezi/ChamadosPro-sub008/internal/usecase/get_available_dates"
)

// AvailableDatesResponse HTTP response model
type AvailableDatesResponse struct {
	TenantID int64    `json:"tenantId"`
	From     string   `json:"from"`
	To       string   `json:"to"`
	Dates    []string `json:"dates"`
}

func FromUseCaseResponse(resp *getAvailableDates.Response) *AvailableDatesResponse {
	dates := make([]string, len(resp.Dates))
	for i, d := range resp.Dates {
		dates[i] = d.Format(domain.DateFormat)
	}

	return &AvailableDatesResponse{
		TenantID: resp.TenantID,
		From:     resp.From.Format(domain.DateFormat),
		To:       resp.To.Format(domain.DateFormat),
		Dates:    dates,
	}
}
