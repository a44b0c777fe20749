package repo

import (
	"context"

	"github.com/fitgym/backend/internal/models"
)

func (r *GormRepo) CreatePayment(ctx context.Context, p *models.Payment) error {
	return translate(r.DB.WithContext(ctx).Create(p).Error)
}

// TransitionPayment moves the ledger row for ref to status, but only while
// it is still in one of the from states. Unknown refs and rows in any other
// state are left untouched and reported as ErrNotFound.
func (r *GormRepo) TransitionPayment(ctx context.Context, provider, ref, paymentID, status string, from ...string) (*models.Payment, error) {
	res := r.DB.WithContext(ctx).Model(&models.Payment{}).
		Where("provider = ? AND provider_ref = ? AND status IN ?", provider, ref, from).
		Updates(map[string]any{"payment_id": paymentID, "status": status})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return r.GetPaymentByRef(ctx, ref)
}

func (r *GormRepo) GetPaymentByRef(ctx context.Context, ref string) (*models.Payment, error) {
	var p models.Payment
	if err := r.DB.WithContext(ctx).Where("provider_ref = ?", ref).First(&p).Error; err != nil {
		return nil, translate(err)
	}
	return &p, nil
}
