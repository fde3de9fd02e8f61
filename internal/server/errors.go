// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	// ErrBind is returned by NewServer when the listen address cannot be bound.
	ErrBind = errors.New("cannot bind listen address")
)
