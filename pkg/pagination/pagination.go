// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package pagination reads page/limit query parameters and builds the "meta"
block of paginated responses.

Each list owns a [Window] with its own page sizes. Comment threads use
comment.PageWindow.
*/
package pagination

import (
	"net/http"
	"strconv"
)

// DefaultPage is the first page. Pages are 1-indexed.
const DefaultPage = 1

// Window bounds the page size of one kind of list.
type Window struct {
	// DefaultLimit applies when the client sends no usable limit.
	DefaultLimit int

	// MaxLimit caps what a client may ask for in one page.
	MaxLimit int
}

// Params holds the parsed page and limit from a request's query string.
type Params struct {
	Page  int
	Limit int
}

// Offset returns the SQL OFFSET value derived from Page and Limit.
func (p Params) Offset() int {
	if p.Page <= 1 {
		return 0
	}
	return (p.Page - 1) * p.Limit
}

// Meta is the pagination metadata included in API list responses.
//
// HasMore drives the "load more" button under a thread without the client
// doing page arithmetic.
type Meta struct {
	Page       int  `json:"page"`
	Limit      int  `json:"limit"`
	Total      int  `json:"total"`
	TotalPages int  `json:"total_pages"`
	HasMore    bool `json:"has_more"`
}

// NewMeta describes the page params selected out of total items.
func NewMeta(params Params, total int) Meta {
	totalPages := 0
	if params.Limit > 0 {
		totalPages = (total + params.Limit - 1) / params.Limit
	}

	return Meta{
		Page:       params.Page,
		Limit:      params.Limit,
		Total:      total,
		TotalPages: totalPages,
		HasMore:    params.Page < totalPages,
	}
}

// FromRequest parses "page" and "limit" from the query string.
//
// A missing, unparsable or non-positive value falls back to the default.
// A limit above MaxLimit is clamped to MaxLimit.
func (window Window) FromRequest(r *http.Request) Params {
	query := r.URL.Query()

	page := positiveInt(query.Get("page"), DefaultPage)
	limit := min(positiveInt(query.Get("limit"), window.DefaultLimit), window.MaxLimit)

	return Params{Page: page, Limit: limit}
}

func positiveInt(raw string, fallback int) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return fallback
	}
	return n
}
