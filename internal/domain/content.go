package domain

// Static portfolio content served by the content API. The site is a
// single-owner marketing page, so this data ships with the binary.

type Profile struct {
	Name        string   `json:"name"`
	Title       string   `json:"title"`
	Roles       []string `json:"roles"`
	Description string   `json:"description"`
	Email       string   `json:"email"`
	Location    string   `json:"location"`
	Website     string   `json:"website"`
	GitHub      string   `json:"github"`
	LinkedIn    string   `json:"linkedin"`
	ResumeURL   string   `json:"resumeUrl"`
}

type Skill struct {
	Name     string `json:"name"`
	Level    int    `json:"level"`
	Category string `json:"category"`
}

type Project struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Tech        []string `json:"tech"`
	RepoURL     string   `json:"repoUrl,omitempty"`
	LiveURL     string   `json:"liveUrl,omitempty"`
}

type Experience struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Location    string `json:"location"`
	Period      string `json:"period"`
	Description string `json:"description"`
}

type SocialLink struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

type ContentUsecase interface {
	Profile() Profile
	Skills() []Skill
	Projects() []Project
	Experience() []Experience
	SocialLinks() []SocialLink
}
