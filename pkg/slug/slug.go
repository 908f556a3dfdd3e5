// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package slug canonicalizes post identifiers.
//
// # Usage
//
// Posts are owned by the static site, so the API only ever sees their
// identifiers (usually the permalink path or title slug). Canonicalizing
// them keeps "Hello-World", "hello-world/" and a decomposed-accent variant
// of the same title on one row of likes and one view counter.
package slug

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// MaxLength is the longest accepted identifier, in characters.
const MaxLength = 200

var (
	// whitespaceRun collapses spaces, tabs and similar into one hyphen.
	whitespaceRun = regexp.MustCompile(`\s+`)
	// multiHyphen collapses multiple consecutive hyphens into one.
	multiHyphen = regexp.MustCompile(`-{2,}`)

	folder = cases.Fold()
)

// Canonical converts a raw post identifier into its stored form.
//
// # Transformation Pipeline
//
// 1. Normalizes to NFC (é as one code point, never e + combining acute).
// 2. Case-folds, so titles differing only in case collide.
// 3. Trims surrounding whitespace and slashes.
// 4. Replaces whitespace runs with hyphens and collapses repeated hyphens.
//
// Non-ASCII letters are kept. The second result is false for an empty,
// over-long, invalid UTF-8 or control-character-bearing identifier.
func Canonical(raw string) (string, bool) {
	if !utf8.ValidString(raw) {
		return "", false
	}

	result, _, err := transform.String(transform.Chain(norm.NFC, folder), raw)
	if err != nil {
		return "", false
	}

	result = strings.Trim(strings.TrimSpace(result), "/")
	result = whitespaceRun.ReplaceAllString(result, "-")
	result = multiHyphen.ReplaceAllString(result, "-")

	if result == "" || utf8.RuneCountInString(result) > MaxLength {
		return "", false
	}

	if strings.IndexFunc(result, unicode.IsControl) >= 0 {
		return "", false
	}

	return result, true
}
