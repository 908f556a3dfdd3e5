// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package slug_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/inkwell/pkg/slug"
)

func TestCanonical(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		ok       bool
	}{
		{"plain", "hello-world", "hello-world", true},
		{"case folded", "Hello-World", "hello-world", true},
		{"trailing slash", "/2026/01/hello-world/", "2026/01/hello-world", true},
		{"whitespace", "  hello   world ", "hello-world", true},
		{"decomposed accent", "Cafe\u0301", "caf\u00e9", true},
		{"cjk kept", "你好 世界", "你好-世界", true},
		{"empty", "   ", "", false},
		{"only slashes", "///", "", false},
		{"control character", "hello\x00world", "", false},
		{"invalid utf-8 byte", "\xff", "", false},
		{"invalid utf-8 inside", "abc\xffdef", "", false},
		{"truncated utf-8 sequence", "a\xc3", "", false},
		{"too long", strings.Repeat("a", slug.MaxLength+1), "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, ok := slug.Canonical(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, result)
		})
	}
}
