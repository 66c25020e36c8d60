// Package viewmodel converts backend DTOs into display-ready shapes:
// resolved image URLs, formatted timestamps and placeholder defaults.
// Everything here is presentation only and carries no semantic
// guarantee.
package viewmodel

import (
	"fmt"
	"time"

	"github.com/datsan-vn/datsan-go/internal/domain"
)

// Placeholder values substituted when the backend payload omits a
// field.
const (
	defaultPhone       = "Đang cập nhật"
	defaultOpenTime    = "05:00"
	defaultCloseTime   = "22:00"
	defaultDescription = "Sân cầu lông chất lượng, đặt lịch nhanh chóng"
)

// LocationVM is a display-ready location card.
type LocationVM struct {
	ID           string
	Name         string
	Address      string
	Description  string
	Phone        string
	PriceLabel   string
	PricePerHour int64
	Rating       float64
	OpenHours    string
	Bookable     bool
	ImageURL     string
	ImageURLs    []string
}

// ReviewVM is a display-ready review with flattened replies.
type ReviewVM struct {
	ID        string
	Author    string
	AvatarURL string
	Rating    int
	Comment   string
	ImageURLs []string
	Likes     int
	IsLiked   bool
	Posted    string
	Replies   []ReplyVM
}

// ReplyVM is a display-ready reply line.
type ReplyVM struct {
	ID        string
	Author    string
	AvatarURL string
	Comment   string
	Posted    string
}

// NotificationVM is a display-ready inbox row.
type NotificationVM struct {
	ID      string
	Title   string
	Message string
	Type    domain.NotificationType
	IsRead  bool
	Posted  string
}

// Mapper builds view models from domain objects.
type Mapper struct {
	images *ImageResolver
	now    func() time.Time
}

// NewMapper creates a mapper resolving images against the API base URL.
func NewMapper(apiBaseURL string) *Mapper {
	return &Mapper{
		images: NewImageResolver(apiBaseURL),
		now:    time.Now,
	}
}

// Location maps one location to its card view model.
func (m *Mapper) Location(loc *domain.Location) LocationVM {
	vm := LocationVM{
		ID:           loc.ID,
		Name:         loc.Name,
		Address:      loc.Address,
		Description:  loc.Description,
		Phone:        loc.Phone,
		PricePerHour: loc.PricePerHour,
		PriceLabel:   FormatPrice(loc.PricePerHour),
		Rating:       loc.Rating,
		Bookable:     loc.IsBookable(),
		ImageURL:     m.images.ResolveFirst(loc.Images, loc.ID),
		ImageURLs:    m.images.ResolveAll(loc.Images, loc.ID),
	}
	if vm.Description == "" {
		vm.Description = defaultDescription
	}
	if vm.Phone == "" {
		vm.Phone = defaultPhone
	}
	open, close := loc.OpenTime, loc.CloseTime
	if open == "" {
		open = defaultOpenTime
	}
	if close == "" {
		close = defaultCloseTime
	}
	vm.OpenHours = open + " - " + close
	return vm
}

// Locations maps a slice of locations.
func (m *Mapper) Locations(locs []domain.Location) []LocationVM {
	out := make([]LocationVM, len(locs))
	for i := range locs {
		out[i] = m.Location(&locs[i])
	}
	return out
}

// Review maps one review, flattening its nested replies.
func (m *Mapper) Review(r *domain.Review) ReviewVM {
	vm := ReviewVM{
		ID:        r.ID,
		Author:    r.UserName,
		AvatarURL: m.images.Resolve(r.UserAvatar, r.UserID),
		Rating:    r.Rating,
		Comment:   r.Comment,
		Likes:     r.Likes,
		IsLiked:   r.IsLiked,
		Posted:    FormatTimestamp(r.CreatedAt, m.now()),
	}
	if len(r.Images) > 0 {
		vm.ImageURLs = m.images.ResolveAll(r.Images, r.ID)
	}
	for i := range r.Replies {
		rep := &r.Replies[i]
		vm.Replies = append(vm.Replies, ReplyVM{
			ID:        rep.ID,
			Author:    rep.UserName,
			AvatarURL: m.images.Resolve(rep.UserAvatar, rep.UserID),
			Comment:   rep.Comment,
			Posted:    FormatTimestamp(rep.CreatedAt, m.now()),
		})
	}
	return vm
}

// Notification maps one inbox item.
func (m *Mapper) Notification(n *domain.Notification) NotificationVM {
	return NotificationVM{
		ID:      n.ID,
		Title:   n.Title,
		Message: n.Message,
		Type:    n.Type,
		IsRead:  n.IsRead,
		Posted:  FormatTimestamp(n.CreatedAt, m.now()),
	}
}

// FormatPrice renders a VND amount with dot separators and suffix,
// e.g. 50000 becomes "50.000đ".
func FormatPrice(amount int64) string {
	s := fmt.Sprintf("%d", amount)
	if len(s) <= 3 {
		return s + "đ"
	}
	var out []byte
	for i, c := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, '.')
		}
		out = append(out, c)
	}
	return string(out) + "đ"
}
