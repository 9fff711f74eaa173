package dto

// ProfileResponse is the site owner's headline information.
type ProfileResponse struct {
	Name     string `json:"name"`
	Headline string `json:"headline"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
	Github   string `json:"github"`
	LinkedIn string `json:"linkedin"`
}

// ProjectResponse is a portfolio project entry.
type ProjectResponse struct {
	ID              int      `json:"id"`
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	FullDescription string   `json:"full_description"`
	Technologies    []string `json:"technologies"`
	Features        []string `json:"features"`
	Rating          float64  `json:"rating"`
	Reviews         int      `json:"reviews"`
	DemoURL         string   `json:"demo_url,omitempty"`
	GithubURL       string   `json:"github_url,omitempty"`
}

// BlogPostResponse is a published article summary.
type BlogPostResponse struct {
	ID       int      `json:"id"`
	Title    string   `json:"title"`
	Excerpt  string   `json:"excerpt"`
	Date     string   `json:"date"`
	ReadTime string   `json:"read_time"`
	Category string   `json:"category"`
	Tags     []string `json:"tags"`
}

// EducationResponse is an education history entry.
type EducationResponse struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Years       string `json:"years"`
}

// SkillResponse pairs a skill with its proficiency percentage.
type SkillResponse struct {
	Name  string `json:"name"`
	Level int    `json:"level"`
}

// SkillCategoryResponse groups skills under a heading.
type SkillCategoryResponse struct {
	Title  string          `json:"title"`
	Skills []SkillResponse `json:"skills"`
}
