// Package content holds the static portfolio data. The site has a
// single owner, so the content ships with the binary instead of a
// database.
package content

import "github.com/mohamedtarek64/mohamed-elkenany-portfolio/internal/domain"

var Profile = domain.Profile{
	Name:  "Mohamed Elkenany",
	Title: "Full Stack & Systems Developer",
	Roles: []string{
		"Backend Architect",
		"Full Stack Developer",
		"Systems Developer",
		"Laravel Specialist",
	},
	Description: "Passionate Backend & Systems Developer specializing in building high-performance applications from bare-metal to scalable clouds. Expert in Laravel, Vue.js, and modern system architectures.",
	Email:       "mohamed20220632@gmail.com",
	Location:    "Cairo, Egypt",
	Website:     "https://mohamed-elkenany.vercel.app",
	GitHub:      "https://github.com/mohamedtarek64",
	LinkedIn:    "https://www.linkedin.com/in/mohamed-elkenany-41aab6264",
	ResumeURL:   "https://drive.google.com/file/d/1gnnTJNSV21J1uMt-UCS149etX9qntcf_/view",
}

var Skills = []domain.Skill{
	{Name: "PHP", Level: 90, Category: "languages"},
	{Name: "JavaScript", Level: 90, Category: "languages"},
	{Name: "TypeScript", Level: 80, Category: "languages"},
	{Name: "C++", Level: 70, Category: "languages"},
	{Name: "Laravel", Level: 90, Category: "backend"},
	{Name: "Node.js", Level: 80, Category: "backend"},
	{Name: "Vue.js", Level: 80, Category: "frontend"},
	{Name: "Next.js", Level: 85, Category: "frontend"},
	{Name: "Bootstrap", Level: 90, Category: "frontend"},
	{Name: "Tailwind CSS", Level: 85, Category: "frontend"},
	{Name: "jQuery", Level: 80, Category: "frontend"},
	{Name: "MySQL", Level: 90, Category: "tools"},
	{Name: "Docker", Level: 70, Category: "tools"},
	{Name: "Git", Level: 90, Category: "tools"},
	{Name: "GitHub", Level: 90, Category: "tools"},
	{Name: "Postman", Level: 80, Category: "tools"},
	{Name: "Figma", Level: 75, Category: "tools"},
	{Name: "VS Code", Level: 95, Category: "tools"},
}

var Projects = []domain.Project{
	{
		Title:       "Portfolio Website",
		Description: "Server-rendered personal portfolio with animated sections, bilingual content, and a contact pipeline backed by transactional email.",
		Category:    "web",
		Tech:        []string{"Next.js", "TypeScript", "Tailwind CSS"},
		RepoURL:     "https://github.com/mohamedtarek64",
		LiveURL:     "https://mohamed-elkenany.vercel.app",
	},
	{
		Title:       "Recruitment Platform",
		Description: "Job board with candidate onboarding, application tracking, and role-based dashboards for employers and admins.",
		Category:    "web",
		Tech:        []string{"Laravel", "Vue.js", "MySQL"},
	},
	{
		Title:       "Clinic Management System",
		Description: "Appointment scheduling and patient records system for a medical clinic, with SMS reminders.",
		Category:    "web",
		Tech:        []string{"Laravel", "Bootstrap", "MySQL"},
	},
	{
		Title:       "Inventory Desktop App",
		Description: "Stock tracking and invoicing tool for small retailers.",
		Category:    "desktop",
		Tech:        []string{"C++", "Qt"},
	},
}

var Experience = []domain.Experience{
	{
		Title:       "Full Stack Developer",
		Company:     "Freelance",
		Location:    "Cairo, Egypt",
		Period:      "2023 - Present",
		Description: "Designing and delivering web applications end to end for clients, from database schema to deployed frontend.",
	},
	{
		Title:       "Backend Developer",
		Company:     "Software House",
		Location:    "Cairo, Egypt",
		Period:      "2022 - 2023",
		Description: "Built and maintained Laravel APIs and internal admin tools; introduced automated testing and CI.",
	},
}

var SocialLinks = []domain.SocialLink{
	{Name: "LinkedIn", URL: "https://www.linkedin.com/in/mohamed-elkenany-41aab6264"},
	{Name: "GitHub", URL: "https://github.com/mohamedtarek64"},
	{Name: "Facebook", URL: "https://www.facebook.com/medo.tarek.7186"},
	{Name: "Instagram", URL: "https://www.instagram.com/mohammed_elkenany77"},
}
