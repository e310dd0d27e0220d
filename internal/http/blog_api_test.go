package handlers_test

import (
	"net/http"
	"strings"
	"testing"

	"zosswater/internal/domain"
)

func TestBlogVisibilityOverAPI(t *testing.T) {
	app, userRepo := newAPIApp(t)
	if err := userRepo.BindSession("sid-admin", "u-admin"); err != nil {
		t.Fatal(err)
	}

	// create a draft next to the two seeded published posts
	status, env := doJSON(t, app, "POST", "/api/v1/blogs", "sid-admin", map[string]any{
		"title":       "Unreleased Plate Design",
		"summary":     "A look at the next plate geometry.",
		"subtopic":    "technology",
		"content":     strings.Repeat("Details of the next-generation electrode plates. ", 5),
		"isPublished": false,
	})
	if status != http.StatusCreated {
		t.Fatalf("create draft: want 201, got %d (%s)", status, env.Message)
	}
	var createData struct {
		Blog domain.Blog `json:"blog"`
	}
	decodeData(t, env, &createData)
	draftID := createData.Blog.ID

	var listData struct {
		Blogs      []domain.Blog     `json:"blogs"`
		Pagination domain.Pagination `json:"pagination"`
	}

	// public list hides the draft
	status, env = doJSON(t, app, "GET", "/api/v1/blogs", "", nil)
	if status != http.StatusOK {
		t.Fatalf("public list: want 200, got %d", status)
	}
	decodeData(t, env, &listData)
	if listData.Pagination.Total != 2 {
		t.Fatalf("public list must only count published posts, got %d", listData.Pagination.Total)
	}
	for _, b := range listData.Blogs {
		if b.ID == draftID {
			t.Fatal("draft leaked into public list")
		}
	}

	// public read of the draft is indistinguishable from absence
	status, _ = doJSON(t, app, "GET", "/api/v1/blogs/"+draftID, "", nil)
	if status != http.StatusNotFound {
		t.Fatalf("public draft read: want 404, got %d", status)
	}

	// the admin list includes it
	status, env = doJSON(t, app, "GET", "/api/v1/admin/blogs", "sid-admin", nil)
	if status != http.StatusOK {
		t.Fatalf("admin list: want 200, got %d", status)
	}
	decodeData(t, env, &listData)
	if listData.Pagination.Total != 3 {
		t.Fatalf("admin list must include drafts, got %d", listData.Pagination.Total)
	}

	// publishing makes it publicly readable
	status, _ = doJSON(t, app, "PUT", "/api/v1/blogs/"+draftID, "sid-admin", map[string]any{
		"title":       "Unreleased Plate Design",
		"summary":     "A look at the next plate geometry.",
		"subtopic":    "technology",
		"content":     strings.Repeat("Details of the next-generation electrode plates. ", 5),
		"isPublished": true,
	})
	if status != http.StatusOK {
		t.Fatalf("publish: want 200, got %d", status)
	}
	status, _ = doJSON(t, app, "GET", "/api/v1/blogs/"+draftID, "", nil)
	if status != http.StatusOK {
		t.Fatalf("public read after publish: want 200, got %d", status)
	}
}

func TestBlogTitleConflictOverAPI(t *testing.T) {
	app, userRepo := newAPIApp(t)
	if err := userRepo.BindSession("sid-admin", "u-admin"); err != nil {
		t.Fatal(err)
	}

	// seeded post is titled "Alkaline Water 101"
	status, env := doJSON(t, app, "POST", "/api/v1/blogs", "sid-admin", map[string]any{
		"title":    "alkaline water 101",
		"summary":  "Duplicate in a different case.",
		"subtopic": "science",
		"content":  strings.Repeat("This post duplicates an existing title. ", 5),
	})
	if status != http.StatusConflict {
		t.Fatalf("want 409, got %d (%s)", status, env.Message)
	}
	if env.Success {
		t.Fatal("conflict envelope must carry success=false")
	}
}

func TestCatalogPublicReadOverAPI(t *testing.T) {
	app, _ := newAPIApp(t)

	status, env := doJSON(t, app, "GET", "/api/v1/catalog?category=B2B", "", nil)
	if status != http.StatusOK {
		t.Fatalf("catalog list: want 200, got %d", status)
	}
	var data struct {
		Products []domain.CatalogProduct `json:"products"`
	}
	decodeData(t, env, &data)
	if len(data.Products) != 1 || data.Products[0].Category != "B2B" {
		t.Fatalf("bad category filter: %+v", data.Products)
	}
	if len(data.Products[0].Features) == 0 {
		t.Fatal("features must decode from storage")
	}
}
