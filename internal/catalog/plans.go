package catalog

import (
	"errors"
	"math"
	"strings"

	"github.com/fitgym/backend/internal/models"
)

const (
	BillingMonthly = "monthly"
	BillingYearly  = "yearly"
	BillingDaily   = "daily"
)

var (
	ErrUnknownPlan        = errors.New("unknown plan")
	ErrUnsupportedBilling = errors.New("unsupported billing period")
)

var seedPlans = []models.Plan{
	{
		Slug:        "elite",
		Name:        "FitPass Elite",
		Description: "Unlimited access to group classes, all gyms and at-home workouts",
		Monthly:     6999,
		Yearly:      69999,
		Features: []string{
			"At-center group classes",
			"All ELITE & PRO gyms",
			"At-home live workouts",
			"Personal training sessions",
			"Nutrition guidance",
			"Recovery sessions",
			"Priority booking",
			"Exclusive events",
		},
		Popular: true,
	},
	{
		Slug:        "pro",
		Name:        "FitPass Pro",
		Description: "Unlimited access to all PRO gyms and at-home workouts",
		Monthly:     3999,
		Yearly:      39999,
		Features: []string{
			"All PRO gyms",
			"2 Sessions/month at ELITE gyms",
			"Group classes access",
			"At-home live workouts",
			"Basic nutrition support",
			"Equipment access",
			"Community support",
			"Mobile app access",
		},
	},
	{
		Slug:        "select",
		Name:        "FitPass Select",
		Description: "Unlimited access to single center and at-home workouts",
		Monthly:     1999,
		Yearly:      19999,
		Features: []string{
			"One center that you choose",
			"Limited sessions in other centers",
			"At-home live workouts",
			"Basic equipment access",
			"Community support",
			"Basic app features",
			"Locker room access",
			"Free parking",
		},
	},
	{
		Slug:        "play",
		Name:        "FitPass Play",
		Description: "Unlimited access to sports and recreational activities",
		Monthly:     2999,
		Yearly:      29999,
		Features: []string{
			"Badminton, swimming & other sports",
			"Guaranteed playing partner",
			"Guided sessions with experts",
			"Sports equipment access",
			"Tournament participation",
			"Sports coaching",
			"Facility booking",
			"Team events",
		},
	},
	{
		Slug:        "trial",
		Name:        "FitPass Trial",
		Description: "1-day trial access to test our facilities",
		Daily:       5,
		Features: []string{
			"Single day access",
			"All equipment available",
			"Basic support",
			"Perfect for testing",
			"No commitment",
			"Full facility access",
			"Basic guidance",
			"Trial membership",
		},
	},
}

func Plans() []models.Plan {
	out := make([]models.Plan, len(seedPlans))
	copy(out, seedPlans)
	return out
}

// FindPlan matches either the slug or the display name, case-insensitively.
func FindPlan(key string) (models.Plan, error) {
	key = strings.TrimSpace(key)
	for _, p := range seedPlans {
		if strings.EqualFold(p.Slug, key) || strings.EqualFold(p.Name, key) {
			return p, nil
		}
	}
	return models.Plan{}, ErrUnknownPlan
}

type Quote struct {
	Plan              string `json:"plan"`
	Billing           string `json:"billing"`
	Price             int64  `json:"price"`
	Savings           int64  `json:"savings"`
	MonthlyEquivalent int64  `json:"monthlyEquivalent"`
	Period            string `json:"period"`
}

// NewQuote prices a plan for a billing period. Daily-only plans ignore the
// requested period; an empty period means monthly.
func NewQuote(p models.Plan, billing string) (Quote, error) {
	billing = strings.ToLower(strings.TrimSpace(billing))

	if p.Daily > 0 && p.Monthly == 0 && p.Yearly == 0 {
		return Quote{Plan: p.Name, Billing: BillingDaily, Price: p.Daily, Period: "day"}, nil
	}

	switch billing {
	case "", BillingMonthly:
		return Quote{
			Plan:              p.Name,
			Billing:           BillingMonthly,
			Price:             p.Monthly,
			MonthlyEquivalent: p.Monthly,
			Period:            "month",
		}, nil
	case BillingYearly:
		return Quote{
			Plan:              p.Name,
			Billing:           BillingYearly,
			Price:             p.Yearly,
			Savings:           p.Monthly*12 - p.Yearly,
			MonthlyEquivalent: int64(math.Round(float64(p.Yearly) / 12)),
			Period:            "year",
		}, nil
	}
	return Quote{}, ErrUnsupportedBilling
}
