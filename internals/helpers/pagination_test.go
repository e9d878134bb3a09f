package helper

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func resolveVia(t *testing.T, target string, defaultLimit, maxLimit int) Paging {
	t.Helper()
	var got Paging
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		got = ResolvePaging(c, defaultLimit, maxLimit)
		return c.SendStatus(fiber.StatusOK)
	})
	resp, err := app.Test(httptest.NewRequest("GET", target, nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	resp.Body.Close()
	return got
}

func TestResolvePagingDefaults(t *testing.T) {
	p := resolveVia(t, "/", 10, 100)
	if p.Page != 1 || p.Limit != 10 || p.Offset != 0 {
		t.Errorf("got %+v, want page=1 limit=10 offset=0", p)
	}
}

func TestResolvePagingExplicit(t *testing.T) {
	p := resolveVia(t, "/?page=3&limit=25", 10, 100)
	if p.Page != 3 || p.Limit != 25 || p.Offset != 50 {
		t.Errorf("got %+v, want page=3 limit=25 offset=50", p)
	}
}

func TestResolvePagingClampsAndSanitizes(t *testing.T) {
	p := resolveVia(t, "/?page=-2&limit=9999", 10, 100)
	if p.Page != 1 {
		t.Errorf("page = %d, want 1", p.Page)
	}
	if p.Limit != 100 {
		t.Errorf("limit = %d, want capped at 100", p.Limit)
	}

	p = resolveVia(t, "/?page=abc&limit=xyz", 10, 100)
	if p.Page != 1 || p.Limit != 10 {
		t.Errorf("non-numeric input: got %+v, want defaults", p)
	}
}

func TestBuildPagination(t *testing.T) {
	p := BuildPagination(45, Paging{Page: 2, Limit: 10, Offset: 10})
	if p.CurrentPage != 2 || p.TotalPages != 5 || p.Total != 45 {
		t.Errorf("got %+v", p)
	}
	if !p.HasNext || !p.HasPrev {
		t.Errorf("page 2 of 5 should have both next and prev: %+v", p)
	}

	first := BuildPagination(45, Paging{Page: 1, Limit: 10})
	if first.HasPrev {
		t.Error("first page should not have prev")
	}
	last := BuildPagination(45, Paging{Page: 5, Limit: 10})
	if last.HasNext {
		t.Error("last page should not have next")
	}
}

func TestBuildSimplePagination(t *testing.T) {
	p := BuildSimplePagination(21, Paging{Page: 1, Limit: 10})
	if p.Page != 1 || p.Limit != 10 || p.Total != 21 || p.Pages != 3 {
		t.Errorf("got %+v, want page=1 limit=10 total=21 pages=3", p)
	}

	empty := BuildSimplePagination(0, Paging{Page: 1, Limit: 10})
	if empty.Pages != 0 {
		t.Errorf("pages = %d for empty result, want 0", empty.Pages)
	}
}
