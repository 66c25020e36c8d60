package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// uploadTooLargeMarker is substring-matched against backend error text.
// This is a deliberate, fragile contract with the backend's error
// format; there is no structured code for the oversized-upload case.
const uploadTooLargeMarker = "Maximum upload size exceeded"

// User-facing fallback messages, keyed by status code. The backend's
// own message wins whenever one is present in the payload.
var statusMessages = map[int]string{
	http.StatusBadRequest:   "Yêu cầu không hợp lệ",
	http.StatusUnauthorized: "Phiên đăng nhập đã hết hạn, vui lòng đăng nhập lại",
	http.StatusForbidden:    "Bạn không có quyền thực hiện thao tác này",
	http.StatusNotFound:     "Không tìm thấy dữ liệu yêu cầu",
	http.StatusConflict:     "Khung giờ này vừa có người khác đặt, vui lòng chọn giờ khác",
}

const (
	networkMessage     = "Không thể kết nối đến máy chủ, vui lòng kiểm tra kết nối mạng"
	serverMessage      = "Hệ thống đang gặp sự cố, vui lòng thử lại sau"
	uploadLargeMessage = "Ảnh vượt quá dung lượng cho phép, vui lòng chọn ảnh nhỏ hơn"
	genericMessage     = "Đã có lỗi xảy ra, vui lòng thử lại"
)

// Error is a failure surfaced by the backend or the transport. Status
// is zero when no response was received at all.
type Error struct {
	Status  int
	Code    string
	Message string // backend-provided message, verbatim, when present
	cause   error
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("api: network error: %v", e.cause)
	}
	return fmt.Sprintf("api: %d %s: %s", e.Status, e.Code, e.Message)
}

// Unwrap returns the transport-level cause, if any
func (e *Error) Unwrap() error {
	return e.cause
}

// IsNetwork reports whether no response was received
func (e *Error) IsNetwork() bool {
	return e.Status == 0
}

// IsUnauthorized reports whether the backend rejected the session
func (e *Error) IsUnauthorized() bool {
	return e.Status == http.StatusUnauthorized || e.Status == http.StatusForbidden
}

// IsServer reports a 5xx response
func (e *Error) IsServer() bool {
	return e.Status >= 500
}

// IsConflict reports a 409 response (slot raced by another user)
func (e *Error) IsConflict() bool {
	return e.Status == http.StatusConflict
}

// IsUploadTooLarge matches the backend's oversized-upload error text
func (e *Error) IsUploadTooLarge() bool {
	return strings.Contains(e.Message, uploadTooLargeMarker)
}

// UserMessage returns the text to surface to the user: the verbatim
// backend message when present, otherwise a localized fallback for the
// status class.
func (e *Error) UserMessage() string {
	if e.IsNetwork() {
		return networkMessage
	}
	if e.IsUploadTooLarge() {
		return uploadLargeMessage
	}
	if e.Message != "" && e.Status < 500 {
		return e.Message
	}
	if msg, ok := statusMessages[e.Status]; ok {
		return msg
	}
	if e.IsServer() {
		return serverMessage
	}
	return genericMessage
}

// networkError wraps a transport failure where no response arrived
func networkError(err error) *Error {
	return &Error{cause: err}
}

// AsError extracts an *Error from an error chain
func AsError(err error) (*Error, bool) {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
