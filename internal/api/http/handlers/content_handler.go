package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/Naveen122004/portfolio-service/internal/api/dto"
	"github.com/Naveen122004/portfolio-service/internal/domain"
	"github.com/Naveen122004/portfolio-service/internal/service"
	apperrors "github.com/Naveen122004/portfolio-service/pkg/util"
)

// ContentHandler serves the static portfolio catalog.
type ContentHandler struct {
	service *service.ContentService
}

// NewContentHandler constructs handler.
func NewContentHandler(contentService *service.ContentService) *ContentHandler {
	return &ContentHandler{service: contentService}
}

// Profile GET /profile.
func (h *ContentHandler) Profile(c *fiber.Ctx) error {
	p := h.service.Profile()
	return c.JSON(fiber.Map{"data": dto.ProfileResponse{
		Name:     p.Name,
		Headline: p.Headline,
		Email:    p.Email,
		Phone:    p.Phone,
		Location: p.Location,
		Github:   p.Github,
		LinkedIn: p.LinkedIn,
	}})
}

// Projects GET /projects.
func (h *ContentHandler) Projects(c *fiber.Ctx) error {
	projects := h.service.Projects()
	items := make([]dto.ProjectResponse, 0, len(projects))
	for i := range projects {
		items = append(items, projectResponse(&projects[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// Project GET /projects/:id.
func (h *ContentHandler) Project(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return apperrors.NewValidationError("id", "invalid project id")
	}
	project, err := h.service.ProjectByID(id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": projectResponse(project)})
}

// BlogPosts GET /blog.
func (h *ContentHandler) BlogPosts(c *fiber.Ctx) error {
	posts := h.service.BlogPosts()
	items := make([]dto.BlogPostResponse, 0, len(posts))
	for _, p := range posts {
		items = append(items, dto.BlogPostResponse{
			ID:       p.ID,
			Title:    p.Title,
			Excerpt:  p.Excerpt,
			Date:     p.Date,
			ReadTime: p.ReadTime,
			Category: p.Category,
			Tags:     p.Tags,
		})
	}
	return c.JSON(fiber.Map{"data": items})
}

// Education GET /education.
func (h *ContentHandler) Education(c *fiber.Ctx) error {
	entries := h.service.Education()
	items := make([]dto.EducationResponse, 0, len(entries))
	for _, e := range entries {
		items = append(items, dto.EducationResponse{
			Degree:      e.Degree,
			Institution: e.Institution,
			Years:       e.Years,
		})
	}
	return c.JSON(fiber.Map{"data": items})
}

// Skills GET /skills.
func (h *ContentHandler) Skills(c *fiber.Ctx) error {
	categories := h.service.Skills()
	items := make([]dto.SkillCategoryResponse, 0, len(categories))
	for _, cat := range categories {
		skills := make([]dto.SkillResponse, 0, len(cat.Skills))
		for _, s := range cat.Skills {
			skills = append(skills, dto.SkillResponse{Name: s.Name, Level: s.Level})
		}
		items = append(items, dto.SkillCategoryResponse{Title: cat.Title, Skills: skills})
	}
	return c.JSON(fiber.Map{"data": items})
}

func projectResponse(p *domain.Project) dto.ProjectResponse {
	return dto.ProjectResponse{
		ID:              p.ID,
		Title:           p.Title,
		Description:     p.Description,
		FullDescription: p.FullDescription,
		Technologies:    p.Technologies,
		Features:        p.Features,
		Rating:          p.Rating,
		Reviews:         p.Reviews,
		DemoURL:         p.DemoURL,
		GithubURL:       p.GithubURL,
	}
}
