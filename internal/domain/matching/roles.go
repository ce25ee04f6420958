package matching

import "strings"

// RoleProfile is the static record backing one job-role category.
type RoleProfile struct {
	Key            string
	RequiredSkills SkillSet
	Improvements   []string
	Roadmap        []string
}

// DefaultRoleKey is returned when no catalog key matches a job title.
const DefaultRoleKey = "software engineer"

// roleCatalog is walked in declared order during classification; the first
// matching key wins, so more specific keys come first.
var roleCatalog = []RoleProfile{
	{
		Key:            "full-stack",
		RequiredSkills: NewSkillSet("html", "css", "javascript", "react", "node.js", "sql", "api", "git"),
		Improvements: []string{
			"Showcase at least one deployed project with both a frontend and an API backend",
			"Quantify impact on past projects (users served, load handled, latency reduced)",
			"List the databases you have worked with and how you modelled the data",
		},
		Roadmap: []string{
			"Solidify HTML, CSS and modern JavaScript fundamentals",
			"Build a REST API with Node.js and connect it to a SQL database",
			"Learn React state management and build a full CRUD application",
			"Deploy the stack with Docker and set up a CI/CD pipeline",
		},
	},
	{
		Key:            "frontend",
		RequiredSkills: NewSkillSet("html", "css", "javascript", "typescript", "react", "git"),
		Improvements: []string{
			"Add links to live projects or a portfolio site near the top of the resume",
			"Mention accessibility and performance work, not only visual features",
			"Call out TypeScript experience explicitly, it is screened for",
		},
		Roadmap: []string{
			"Master semantic HTML and responsive CSS layouts",
			"Get comfortable with modern JavaScript and TypeScript",
			"Build two or three polished React applications",
			"Learn testing and bundling tooling used in real teams",
		},
	},
	{
		Key:            "backend",
		RequiredSkills: NewSkillSet("python", "sql", "api", "docker", "redis"),
		Improvements: []string{
			"Describe the APIs you designed, their consumers and their scale",
			"Highlight database schema design and query optimization work",
			"Mention caching, queueing or other infrastructure you have operated",
		},
		Roadmap: []string{
			"Deepen one backend language and its web framework",
			"Practice relational modelling and writing efficient SQL",
			"Add Redis for caching and learn the common invalidation patterns",
			"Containerize a service with Docker and ship it behind a load balancer",
		},
	},
	{
		Key:            "data analyst",
		RequiredSkills: NewSkillSet("sql", "excel", "python", "tableau", "data analysis"),
		Improvements: []string{
			"Lead with business outcomes of your analyses, not the tools used",
			"Include a link to a public dashboard or notebook",
			"State the data volumes you have worked with",
		},
		Roadmap: []string{
			"Become fluent in SQL joins, window functions and aggregations",
			"Learn pandas for cleaning and exploring datasets",
			"Build dashboards in Tableau or Power BI",
			"Practice presenting findings to a non-technical audience",
		},
	},
	{
		Key:            "data scientist",
		RequiredSkills: NewSkillSet("python", "pandas", "numpy", "machine learning", "sql"),
		Improvements: []string{
			"Frame projects as problem, approach, measurable result",
			"Show end-to-end work: data collection through model evaluation",
			"Link to notebooks or repositories reviewers can open",
		},
		Roadmap: []string{
			"Strengthen statistics and probability foundations",
			"Work through pandas and numpy on real datasets",
			"Train and evaluate classical models with scikit-learn",
			"Take one project from raw data to a deployed model",
		},
	},
	{
		Key:            "machine learning",
		RequiredSkills: NewSkillSet("python", "tensorflow", "pytorch", "machine learning", "deep learning"),
		Improvements: []string{
			"Name the model architectures you have trained and why you chose them",
			"Report evaluation metrics, not just that a model 'worked'",
			"Mention experience serving models, not only training them",
		},
		Roadmap: []string{
			"Review linear algebra and optimization basics",
			"Implement core architectures in PyTorch or TensorFlow",
			"Reproduce a published result on a public dataset",
			"Learn model serving and monitoring in production",
		},
	},
	{
		Key:            "devops",
		RequiredSkills: NewSkillSet("docker", "kubernetes", "ci/cd", "linux", "aws", "terraform"),
		Improvements: []string{
			"Quantify reliability work: uptime, deploy frequency, incident counts",
			"List the cloud services you have run in production",
			"Describe the pipelines you built and what they automated away",
		},
		Roadmap: []string{
			"Get strong with Linux and shell scripting",
			"Containerize workloads and operate them on Kubernetes",
			"Codify infrastructure with Terraform",
			"Build CI/CD pipelines with automated testing and rollbacks",
		},
	},
	{
		Key:            "mobile",
		RequiredSkills: NewSkillSet("kotlin", "swift", "flutter", "react native", "api"),
		Improvements: []string{
			"Link to published apps or store listings",
			"Mention offline support, push notifications and app performance work",
			"Show experience consuming and designing mobile-facing APIs",
		},
		Roadmap: []string{
			"Pick one platform and learn its native toolkit deeply",
			"Build and publish a small app end to end",
			"Learn a cross-platform framework like Flutter or React Native",
			"Practice integrating REST APIs with proper error handling",
		},
	},
	{
		Key:            DefaultRoleKey,
		RequiredSkills: NewSkillSet("python", "git", "sql", "api", "docker"),
		Improvements: []string{
			"Tailor the skills section to the posting instead of listing everything",
			"Use action verbs and measurable outcomes in experience bullets",
			"Keep the resume to one or two pages with the strongest work first",
		},
		Roadmap: []string{
			"Strengthen data structures and algorithms fundamentals",
			"Contribute to an open source project to build a public track record",
			"Learn SQL and how to design a small schema",
			"Ship a side project with Docker and a CI pipeline",
		},
	},
}

var rolesByKey = func() map[string]RoleProfile {
	m := make(map[string]RoleProfile, len(roleCatalog))
	for _, p := range roleCatalog {
		m[p.Key] = p
	}
	return m
}()

// ClassifyRole maps a free-text job title to a catalog key. The catalog is
// walked in fixed order and the first key contained in the title (or
// containing it) is selected; unmatched titles fall back to DefaultRoleKey.
func ClassifyRole(jobTitle string) string {
	title := strings.ToLower(strings.TrimSpace(jobTitle))
	if title == "" {
		return DefaultRoleKey
	}
	for _, p := range roleCatalog {
		if strings.Contains(title, p.Key) || strings.Contains(p.Key, title) {
			return p.Key
		}
	}
	return DefaultRoleKey
}

// ProfileFor returns the profile for a catalog key, falling back to the
// default profile for unknown keys.
func ProfileFor(key string) RoleProfile {
	if p, ok := rolesByKey[key]; ok {
		return p
	}
	return rolesByKey[DefaultRoleKey]
}
