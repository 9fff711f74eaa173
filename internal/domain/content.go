package domain

// Project is a portfolio project entry.
type Project struct {
	ID              int
	Title           string
	Description     string
	FullDescription string
	Technologies    []string
	Features        []string
	Rating          float64
	Reviews         int
	DemoURL         string
	GithubURL       string
}

// BlogPost is a published article summary.
type BlogPost struct {
	ID       int
	Title    string
	Excerpt  string
	Date     string
	ReadTime string
	Category string
	Tags     []string
}

// Education is a single entry in the education history.
type Education struct {
	Degree      string
	Institution string
	Years       string
}

// Skill pairs a skill name with a self-assessed proficiency percentage.
type Skill struct {
	Name  string
	Level int
}

// SkillCategory groups skills under a heading.
type SkillCategory struct {
	Title  string
	Skills []Skill
}

// Profile holds the site owner's headline information.
type Profile struct {
	Name     string
	Headline string
	Email    string
	Phone    string
	Location string
	Github   string
	LinkedIn string
}
