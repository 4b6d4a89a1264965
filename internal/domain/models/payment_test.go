// internal/domain/models/payment_test.go
package models

import (
	"testing"
	"time"
)

func TestPaid(t *testing.T) {
	tests := []struct {
		status string
		want   bool
	}{
		{PaymentCompleted, true},
		{PaymentSuccess, true},
		{PaymentNew, false},
		{PaymentPending, false},
		{PaymentExpired, false},
		{"", false},
		{"refunded", false},
	}
	for _, tc := range tests {
		if got := (Payment{Status: tc.status}).Paid(); got != tc.want {
			t.Errorf("Paid() with status %q = %v, want %v", tc.status, got, tc.want)
		}
	}
}

func TestRevenueFallback(t *testing.T) {
	tests := []struct {
		name string
		p    Payment
		want float64
	}{
		{name: "amount preferred", p: Payment{Amount: 100, TotalPayment: 50}, want: 100},
		{name: "legacy field fallback", p: Payment{TotalPayment: 50}, want: 50},
		{name: "neither present", p: Payment{}, want: 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.p.Revenue(); got != tc.want {
				t.Errorf("Revenue() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestRevenueDatePrecedence(t *testing.T) {
	created := time.Date(2026, 7, 30, 0, 0, 0, 0, time.UTC)
	completed := time.Date(2026, 8, 2, 0, 0, 0, 0, time.UTC)

	p := Payment{CreatedAt: created, CompletedAt: &completed}
	if got := p.RevenueDate(); !got.Equal(completed) {
		t.Errorf("RevenueDate() = %v, want completion time %v", got, completed)
	}

	p.CompletedAt = nil
	if got := p.RevenueDate(); !got.Equal(created) {
		t.Errorf("RevenueDate() without completion = %v, want creation time %v", got, created)
	}

	var zero time.Time
	p.CompletedAt = &zero
	if got := p.RevenueDate(); !got.Equal(created) {
		t.Errorf("RevenueDate() with zero completion = %v, want creation time %v", got, created)
	}
}
