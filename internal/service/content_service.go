package service

import (
	"github.com/Naveen122004/portfolio-service/internal/domain"
	apperrors "github.com/Naveen122004/portfolio-service/pkg/util"
)

// ContentService serves the static portfolio catalog. The data lives in the
// binary; there is nothing to moderate or mutate here.
type ContentService struct{}

// NewContentService constructs the service.
func NewContentService() *ContentService {
	return &ContentService{}
}

// Profile returns the site owner's headline information.
func (s *ContentService) Profile() domain.Profile {
	return siteProfile
}

// Projects returns all portfolio projects.
func (s *ContentService) Projects() []domain.Project {
	return projectsData
}

// ProjectByID looks up a single project.
func (s *ContentService) ProjectByID(id int) (*domain.Project, error) {
	for i := range projectsData {
		if projectsData[i].ID == id {
			return &projectsData[i], nil
		}
	}
	return nil, apperrors.NewNotFound("project")
}

// BlogPosts returns all published article summaries.
func (s *ContentService) BlogPosts() []domain.BlogPost {
	return blogPostsData
}

// Education returns the education history, most recent first.
func (s *ContentService) Education() []domain.Education {
	return educationData
}

// Skills returns the grouped skill catalog.
func (s *ContentService) Skills() []domain.SkillCategory {
	return skillsData
}
