package pagination

import (
	"fmt"
	"strconv"
	"strings"

	domainErrors "cardvault/internal/errors"

	"github.com/gofiber/fiber/v2"
)

const (
	DefaultSize = 20
	MaxSize     = 100
)

type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// Sort orders a result set by a single field.
type Sort struct {
	Field     string
	Direction Direction
}

// String renders the sort the way it is represented internally, "field: direction".
func (s Sort) String() string {
	return s.Field + ": " + string(s.Direction)
}

func (s Sort) Descending() bool {
	return s.Direction == Desc
}

// PageRequest selects a zero-based page of Size items.
type PageRequest struct {
	Page int
	Size int
	Sort *Sort
}

func NewPageRequest(page, size int) PageRequest {
	return PageRequest{Page: page, Size: size}
}

// SortedBy returns a copy of the request ordered by field.
func (r PageRequest) SortedBy(field string, direction Direction) PageRequest {
	r.Sort = &Sort{Field: field, Direction: direction}
	return r
}

func (r PageRequest) Offset() int {
	return r.Page * r.Size
}

func (r PageRequest) Sorted() bool {
	return r.Sort != nil
}

// Page is a slice of a result set. The number of pages is always derived
// from TotalElements and the request size, never stored.
type Page[T any] struct {
	Content       []T
	Request       PageRequest
	TotalElements int64
}

func NewPage[T any](content []T, request PageRequest, total int64) Page[T] {
	if content == nil {
		content = []T{}
	}
	return Page[T]{Content: content, Request: request, TotalElements: total}
}

// TotalPages calculates the number of pages based on the total items and
// page size. An unsized request is a single page holding everything.
func (p Page[T]) TotalPages() int {
	if p.Request.Size <= 0 {
		if p.TotalElements > 0 || len(p.Content) > 0 {
			return 1
		}
		return 0
	}
	size := int64(p.Request.Size)
	return int((p.TotalElements + size - 1) / size)
}

func (p Page[T]) Number() int {
	return p.Request.Page
}

func (p Page[T]) Size() int {
	return p.Request.Size
}

// MapPage converts the content of a page, keeping its request and total.
func MapPage[T, R any](page Page[T], fn func(T) R) Page[R] {
	content := make([]R, 0, len(page.Content))
	for _, item := range page.Content {
		content = append(content, fn(item))
	}
	return Page[R]{Content: content, Request: page.Request, TotalElements: page.TotalElements}
}

// WirePage is the flat page record exchanged over HTTP. It is a separate
// type from Page: its TotalPages is whatever the sender wrote.
type WirePage[T any] struct {
	Content       []T   `json:"content"`
	TotalPages    int   `json:"totalPages"`
	TotalElements int64 `json:"totalElements"`
	Number        int   `json:"number"`
	Size          int   `json:"size"`
}

// ToWire renders a page into its flat HTTP representation.
func ToWire[T any](page Page[T]) WirePage[T] {
	content := page.Content
	if content == nil {
		content = []T{}
	}
	return WirePage[T]{
		Content:       content,
		TotalPages:    page.TotalPages(),
		TotalElements: page.TotalElements,
		Number:        page.Number(),
		Size:          page.Size(),
	}
}

// ParseFromRequest handles pagination parameters from Fiber context.
// page is zero-based, size defaults to DefaultSize, and sort is
// "field" or "field,direction". When sortFields is non-empty the sort field
// must be one of them.
func ParseFromRequest(c *fiber.Ctx, sortFields ...string) (PageRequest, error) {
	page, err := strconv.Atoi(c.Query("page", "0"))
	if err != nil || page < 0 {
		return PageRequest{}, invalid("page must be a non-negative integer")
	}

	size, err := strconv.Atoi(c.Query("size", strconv.Itoa(DefaultSize)))
	if err != nil || size < 1 || size > MaxSize {
		return PageRequest{}, invalid(fmt.Sprintf("size must be between 1 and %d", MaxSize))
	}

	req := NewPageRequest(page, size)

	raw := strings.TrimSpace(c.Query("sort"))
	if raw == "" {
		return req, nil
	}

	sort, err := ParseSort(raw)
	if err != nil {
		return PageRequest{}, err
	}
	if len(sortFields) > 0 && !contains(sortFields, sort.Field) {
		return PageRequest{}, invalid(fmt.Sprintf("sort field %s is not supported", sort.Field))
	}
	req.Sort = &sort
	return req, nil
}

// ParseSort reads "field" or "field,direction".
func ParseSort(raw string) (Sort, error) {
	parts := strings.Split(raw, ",")
	if len(parts) > 2 || strings.TrimSpace(parts[0]) == "" {
		return Sort{}, invalid("sort must be formatted as field,direction")
	}

	sort := Sort{Field: strings.TrimSpace(parts[0]), Direction: Asc}
	if len(parts) == 2 {
		switch Direction(strings.ToLower(strings.TrimSpace(parts[1]))) {
		case Asc:
			sort.Direction = Asc
		case Desc:
			sort.Direction = Desc
		default:
			return Sort{}, invalid("sort direction must be asc or desc")
		}
	}
	return sort, nil
}

func invalid(message string) error {
	return domainErrors.ErrValidationFailed.WithMessage("Validation failed: " + message)
}

func contains(values []string, value string) bool {
	for _, v := range values {
		if v == value {
			return true
		}
	}
	return false
}
