package models

import (
	"time"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type User struct {
	ID           string    `gorm:"primaryKey"                json:"id"`
	Email        string    `gorm:"uniqueIndex;not null"      json:"email"`
	Name         string    `gorm:"not null;default:''"       json:"name"`
	PasswordHash string    `gorm:"not null;default:''"       json:"-"`
	Role         string    `gorm:"not null;default:'user'"   json:"role"`
	IsActive     bool      `gorm:"not null;default:false"    json:"isActive"`
	GoogleID     *string   `gorm:"uniqueIndex"               json:"googleId,omitempty"`
	Picture      string    `gorm:"not null;default:''"       json:"picture,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func (u *User) IsAdmin() bool { return u.Role == RoleAdmin }

type Product struct {
	ID            int     `gorm:"primaryKey;autoIncrement:false" json:"id"`
	Name          string  `gorm:"not null"                       json:"name"`
	Category      string  `gorm:"index;not null"                 json:"category"`
	Price         float64 `gorm:"not null"                       json:"price"`
	OriginalPrice float64 `gorm:"not null"                       json:"originalPrice"`
	Discount      int     `gorm:"not null"                       json:"discount"`
	Description   string  `gorm:"not null"                       json:"description"`
	Rating        float64 `gorm:"not null"                       json:"rating"`
	Reviews       int     `gorm:"not null"                       json:"reviews"`
	InStock       bool    `gorm:"not null"                       json:"inStock"`
	Brand         string  `gorm:"not null"                       json:"brand"`
}

// Plan is a FitPass membership tier. Prices are whole rupees; a zero price
// means the billing period is not offered.
type Plan struct {
	Slug        string   `json:"slug"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Monthly     int64    `json:"monthlyPrice,omitempty"`
	Yearly      int64    `json:"yearlyPrice,omitempty"`
	Daily       int64    `json:"dailyPrice,omitempty"`
	Features    []string `json:"features"`
	Popular     bool     `json:"popular"`
}

const (
	ProviderRazorpay = "razorpay"
	ProviderStripe   = "stripe"

	PaymentCreated = "created"
	PaymentPaid    = "paid"
	PaymentFailed  = "failed"
)

// Payment is a ledger row for a provider order or payment intent. Amount is
// in minor units.
type Payment struct {
	ID          uint      `gorm:"primaryKey;autoIncrement"  json:"id"`
	Provider    string    `gorm:"index;not null"            json:"provider"`
	ProviderRef string    `gorm:"uniqueIndex;not null"      json:"providerRef"`
	PaymentID   string    `gorm:"not null;default:''"       json:"paymentId,omitempty"`
	Amount      int64     `gorm:"not null"                  json:"amount"`
	Currency    string    `gorm:"not null"                  json:"currency"`
	PlanName    string    `gorm:"not null;default:''"       json:"planName"`
	Billing     string    `gorm:"not null;default:''"       json:"billing"`
	UserID      string    `gorm:"index;not null;default:''" json:"userId"`
	Status      string    `gorm:"not null"                  json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
