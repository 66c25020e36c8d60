package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/datsan-vn/datsan-go/internal/domain"
)

func TestLoginRequest_Validate(t *testing.T) {
	tests := []struct {
		name  string
		req   LoginRequest
		valid bool
	}{
		{name: "valid", req: LoginRequest{Email: "a@b.vn", Password: "secret"}, valid: true},
		{name: "missing email", req: LoginRequest{Password: "secret"}, valid: false},
		{name: "blank email", req: LoginRequest{Email: "   ", Password: "secret"}, valid: false},
		{name: "missing password", req: LoginRequest{Email: "a@b.vn"}, valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			valid, msg := tt.req.Validate()
			assert.Equal(t, tt.valid, valid)
			if !tt.valid {
				assert.NotEmpty(t, msg)
			}
		})
	}
}

func TestRegisterRequest_Validate(t *testing.T) {
	valid, _ := (&RegisterRequest{FullName: "Nguyen Van A", Email: "a@b.vn", Password: "secret"}).Validate()
	assert.True(t, valid)

	valid, msg := (&RegisterRequest{FullName: "Nguyen Van A", Email: "a@b.vn", Password: "short"}).Validate()
	assert.False(t, valid)
	assert.Equal(t, "Password must be at least 6 characters", msg)

	valid, _ = (&RegisterRequest{Email: "a@b.vn", Password: "secret"}).Validate()
	assert.False(t, valid)
}

func TestResetPasswordRequest_Validate(t *testing.T) {
	valid, _ := (&ResetPasswordRequest{Email: "a@b.vn", OTP: "123456", NewPassword: "secret"}).Validate()
	assert.True(t, valid)

	valid, _ = (&ResetPasswordRequest{Email: "a@b.vn", NewPassword: "secret"}).Validate()
	assert.False(t, valid)

	valid, _ = (&ResetPasswordRequest{Email: "a@b.vn", OTP: "123456", NewPassword: "123"}).Validate()
	assert.False(t, valid)
}

func TestCreateReviewRequest_Validate(t *testing.T) {
	for rating := 1; rating <= 5; rating++ {
		valid, _ := (&CreateReviewRequest{Rating: rating, Comment: "ok"}).Validate()
		assert.True(t, valid, "rating %d", rating)
	}

	valid, msg := (&CreateReviewRequest{Rating: 0, Comment: "ok"}).Validate()
	assert.False(t, valid)
	assert.Equal(t, "Rating must be between 1 and 5", msg)

	valid, _ = (&CreateReviewRequest{Rating: 6, Comment: "ok"}).Validate()
	assert.False(t, valid)

	valid, _ = (&CreateReviewRequest{Rating: 3, Comment: "  "}).Validate()
	assert.False(t, valid)
}

func TestFromDraft(t *testing.T) {
	draft := &domain.BookingDraft{
		CourtID:      "court-1",
		Date:         "2026-09-05",
		Hours:        []int{20, 18},
		PricePerHour: 80000,
		ContactName:  "Nguyen Van A",
		ContactPhone: "0901234567",
		Payment:      domain.PaymentMethodVNPay,
	}

	req := FromDraft(draft)
	assert.Equal(t, "court-1", req.CourtID)
	assert.Equal(t, []int{20, 18}, req.Hours, "literal hour list in selection order")
	assert.Equal(t, domain.PaymentMethodVNPay, req.PaymentMethod)
}
