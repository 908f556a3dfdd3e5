// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package pointer provides generic pointer helpers.
package pointer

// To returns a pointer to a copy of the provided value.
// Handy for nullable SQL arguments built from plain fields.
func To[T any](v T) *T {
	return &v
}
