package handlers

import (
	applog "zosswater/internal/log"
	"zosswater/internal/services"
	"zosswater/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type BlogHandler struct {
	Content *services.ContentService
}

type blogBody struct {
	Title            string `json:"title"`
	Summary          string `json:"summary"`
	PlaceholderImage string `json:"placeholderImage"`
	Subtopic         string `json:"subtopic"`
	Content          string `json:"content"`
	ReadTime         string `json:"readTime"`
	IsPublished      *bool  `json:"isPublished"`
}

func (b blogBody) input() services.BlogInput {
	return services.BlogInput{
		Title:     b.Title,
		Summary:   b.Summary,
		ImageURL:  b.PlaceholderImage,
		Subtopic:  b.Subtopic,
		Content:   b.Content,
		ReadTime:  b.ReadTime,
		Published: b.IsPublished,
	}
}

// GET /api/v1/blogs  (public, published only)
func (h *BlogHandler) List(c *fiber.Ctx) error {
	page := validate.Page(c.Query("page"))
	limit := validate.Limit(c.Query("limit"), 10)
	result, err := h.Content.PublicBlogs(c.Query("subtopic"), c.Query("search"), page, limit)
	if err != nil {
		return failErr(c, "blogs.list.fail", err)
	}
	return ok(c, fiber.Map{"blogs": result.Blogs, "pagination": result.Pagination})
}

// GET /api/v1/blogs/:id  (public; unpublished posts 404)
func (h *BlogHandler) Get(c *fiber.Ctx) error {
	id, okID := validate.ID(c.Params("id"))
	if !okID {
		return fail(c, fiber.StatusBadRequest, "invalid blog id")
	}
	b, err := h.Content.PublicBlog(id)
	if err != nil {
		return failErr(c, "blogs.get.fail", err)
	}
	return ok(c, fiber.Map{"blog": b})
}

// GET /api/v1/admin/blogs  (admin, drafts included)
func (h *BlogHandler) AdminList(c *fiber.Ctx) error {
	page := validate.Page(c.Query("page"))
	limit := validate.Limit(c.Query("limit"), 10)
	result, err := h.Content.AdminBlogs(page, limit)
	if err != nil {
		return failErr(c, "blogs.admin.list.fail", err)
	}
	return ok(c, fiber.Map{"blogs": result.Blogs, "pagination": result.Pagination})
}

// POST /api/v1/blogs  (admin)
func (h *BlogHandler) Create(c *fiber.Ctx) error {
	var body blogBody
	if err := c.BodyParser(&body); err != nil {
		return fail(c, fiber.StatusBadRequest, "malformed request body")
	}
	b, err := h.Content.CreateBlog(body.input())
	if err != nil {
		return failErr(c, "blogs.create.fail", err)
	}
	applog.Audit(c, "blogs.create", map[string]any{"blog_id": b.ID, "title": b.Title})
	return created(c, "Blog post created successfully", fiber.Map{"blog": b})
}

// PUT /api/v1/blogs/:id  (admin)
func (h *BlogHandler) Update(c *fiber.Ctx) error {
	id, okID := validate.ID(c.Params("id"))
	if !okID {
		return fail(c, fiber.StatusBadRequest, "invalid blog id")
	}
	var body blogBody
	if err := c.BodyParser(&body); err != nil {
		return fail(c, fiber.StatusBadRequest, "malformed request body")
	}
	b, err := h.Content.UpdateBlog(id, body.input())
	if err != nil {
		return failErr(c, "blogs.update.fail", err)
	}
	applog.Audit(c, "blogs.update", map[string]any{"blog_id": id})
	return okMsg(c, "Blog post updated successfully", fiber.Map{"blog": b})
}

// DELETE /api/v1/blogs/:id  (admin)
func (h *BlogHandler) Delete(c *fiber.Ctx) error {
	id, okID := validate.ID(c.Params("id"))
	if !okID {
		return fail(c, fiber.StatusBadRequest, "invalid blog id")
	}
	if err := h.Content.DeleteBlog(id); err != nil {
		return failErr(c, "blogs.delete.fail", err)
	}
	applog.Audit(c, "blogs.delete", map[string]any{"blog_id": id})
	return okMsg(c, "Blog post deleted successfully", nil)
}
