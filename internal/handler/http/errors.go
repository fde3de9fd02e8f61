// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors of the transport layer. Callers can match against them
// with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the session gate when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header does not use the Bearer scheme.
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrEmptyToken is returned when the "Authorization" header carries the
	// Bearer scheme but no token.
	ErrEmptyToken = errors.New("empty token in `Authorization` header")

	// ErrInvalidJSON is returned when a request body cannot be decoded.
	ErrInvalidJSON = errors.New("invalid JSON body")

	// ErrInvalidQuery is returned when a query or path parameter has the
	// wrong type.
	ErrInvalidQuery = errors.New("invalid query parameter")

	// ErrMissingFile is returned when a multipart upload has no "file" part.
	ErrMissingFile = errors.New("missing multipart field \"file\"")

	// ErrUploadTooLarge is returned when a multipart upload exceeds its limit.
	ErrUploadTooLarge = errors.New("upload exceeds the size limit")

	// ErrUnsupportedImage is returned for poster uploads that are not
	// JPEG, PNG, GIF or WebP.
	ErrUnsupportedImage = errors.New("unsupported image type, expected jpg, png, gif or webp")
)
