package shared

import "testing"

func TestNormalizePagination(t *testing.T) {
	page, pageSize := NormalizePagination(0, 0, 20, 100)
	if page != 1 || pageSize != 20 {
		t.Fatalf("want defaults 1/20 got %d/%d", page, pageSize)
	}

	page, pageSize = NormalizePagination(3, 50, 20, 100)
	if page != 3 || pageSize != 50 {
		t.Fatalf("valid values must pass through, got %d/%d", page, pageSize)
	}

	_, pageSize = NormalizePagination(1, 500, 20, 100)
	if pageSize != 20 {
		t.Fatalf("oversized page size should fall back, got %d", pageSize)
	}
}

func TestTotalPages(t *testing.T) {
	if got := TotalPages(6, 5); got != 2 {
		t.Fatalf("want 2 got %d", got)
	}
	if got := TotalPages(0, 5); got != 0 {
		t.Fatalf("want 0 got %d", got)
	}
	if got := TotalPages(10, 0); got != 0 {
		t.Fatalf("zero page size guard failed: %d", got)
	}
}
