package booking

import (
	"context"
	"strings"

	domain "github.com/bookeasy-app/booking-api/internal/domain/booking"
	"github.com/bookeasy-app/booking-api/internal/httperr"
)

type ListServices struct {
	scheduler domain.Scheduler
}

func NewListServices(scheduler domain.Scheduler) *ListServices {
	return &ListServices{scheduler: scheduler}
}

func (uc *ListServices) Execute(ctx context.Context) ([]domain.Service, error) {
	services, err := uc.scheduler.ListServices(ctx)
	if err != nil {
		if httperr.BusinessCode(err) != "" {
			return nil, err
		}
		return nil, httperr.ErrBusiness(httperr.CodeAvailabilityUnavailable)
	}

	for i := range services {
		services[i].Icon = iconFor(services[i].Name)
	}

	return services, nil
}

// iconFor maps a service name to the icon the app shows for it. The provider
// catalog has no icon field, so this stays a keyword heuristic.
func iconFor(name string) string {
	n := strings.ToLower(name)

	switch {
	case strings.Contains(n, "hair") || strings.Contains(n, "cut"):
		return "cut"
	case strings.Contains(n, "massage") || strings.Contains(n, "spa"):
		return "flower"
	case strings.Contains(n, "nail") ||
		strings.Contains(n, "mani") ||
		strings.Contains(n, "pedi"):
		return "hand-left"
	case strings.Contains(n, "facial") || strings.Contains(n, "beauty"):
		return "sparkles"
	case strings.Contains(n, "fitness") || strings.Contains(n, "training"):
		return "fitness"
	default:
		return "calendar"
	}
}
