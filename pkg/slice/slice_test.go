// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package slice_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/inkwell/pkg/slice"
)

func TestMap(t *testing.T) {
	assert.Nil(t, slice.Map[string, string](nil, strings.ToUpper))
	assert.Equal(t, []string{"A", "B"}, slice.Map([]string{"a", "b"}, strings.ToUpper))
}
