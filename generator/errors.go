package generator

import "errors"

// Failure kinds reported by WithoutLogo and WithLogo. Returned errors wrap
// exactly one of these, so callers can branch with errors.Is.
var (
	// ErrEncoding means the QR encoder rejected the content or options.
	ErrEncoding = errors.New("qr encoding failed")

	// ErrLogoNotFound means the resolved logo path does not exist.
	ErrLogoNotFound = errors.New("logo path does not exist")

	// ErrIO covers unreadable logos, unwritable directories and codec failures.
	ErrIO = errors.New("image i/o failed")

	// ErrDrawing means compositing the logo onto the canvas failed.
	ErrDrawing = errors.New("drawing failed")
)
