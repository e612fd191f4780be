// internal/catalog/defaults.go
package catalog

import (
	"career-workers/internal/models"
)

// Default returns the built-in reference catalog. Callers must treat the
// returned value as read-only; the same backing slices are shared.
func Default() *Catalog {
	return &Catalog{
		Skills:           defaultSkills,
		Roles:            defaultRoles,
		ProficiencyRules: defaultProficiencyRules,
		HourMultipliers:  defaultHourMultipliers,
		BaseHours: map[models.ModuleLevel]int{
			models.ModuleBeginner:     40,
			models.ModuleIntermediate: 60,
			models.ModuleAdvanced:     100,
		},
		HighDemandSkills: defaultHighDemandSkills,
		Resources:        defaultResources,
	}
}

var defaultProficiencyRules = []ProficiencyRule{
	{Keywords: []string{"expert", "advanced", "architect", "senior", "mastery", "deep knowledge"}, Proficiency: 5},
	{Keywords: []string{"proficient", "experienced", "skilled", "strong", "solid"}, Proficiency: 4},
	{Keywords: []string{"basic", "beginner", "learning", "familiar", "exposure"}, Proficiency: 2},
}

var defaultHourMultipliers = []HourMultiplier{
	{Keyword: "machine learning", Multiplier: 2.0},
	{Keyword: "deep learning", Multiplier: 2.0},
	{Keyword: "programming", Multiplier: 1.5},
	{Keyword: "system design", Multiplier: 1.5},
	{Keyword: "kubernetes", Multiplier: 1.3},
	{Keyword: "security", Multiplier: 1.3},
	{Keyword: "communication", Multiplier: 0.8},
	{Keyword: "teamwork", Multiplier: 0.8},
}

var defaultHighDemandSkills = []string{
	"python", "machine learning", "aws", "kubernetes", "react", "go",
	"typescript", "docker", "sql", "data analysis", "terraform", "security",
}

var defaultSkills = []SkillDefinition{
	// technical
	{Name: "javascript", Category: models.CategoryTechnical, Aliases: []string{"javascript", "ecmascript", " js "}},
	{Name: "typescript", Category: models.CategoryTechnical, Aliases: []string{"typescript", " ts "}},
	{Name: "python", Category: models.CategoryTechnical, Aliases: []string{"python"}},
	{Name: "java", Category: models.CategoryTechnical, Aliases: []string{" java ", "java,", "java."}},
	{Name: "go", Category: models.CategoryTechnical, Aliases: []string{"golang", " go ", "go,", "go."}},
	{Name: "c++", Category: models.CategoryTechnical, Aliases: []string{"c++", "cpp"}},
	{Name: "c#", Category: models.CategoryTechnical, Aliases: []string{"c#", ".net"}},
	{Name: "ruby", Category: models.CategoryTechnical, Aliases: []string{"ruby", "rails"}},
	{Name: "php", Category: models.CategoryTechnical, Aliases: []string{"php", "laravel"}},
	{Name: "sql", Category: models.CategoryTechnical, Aliases: []string{"sql", "postgresql", "postgres", "mysql"}},
	{Name: "nosql", Category: models.CategoryTechnical, Aliases: []string{"nosql", "mongodb", "dynamodb", "cassandra"}},
	{Name: "html", Category: models.CategoryTechnical, Aliases: []string{"html"}},
	{Name: "css", Category: models.CategoryTechnical, Aliases: []string{"css", "sass", "scss"}},
	{Name: "react", Category: models.CategoryTechnical, Aliases: []string{"react", "reactjs", "react.js"}},
	{Name: "angular", Category: models.CategoryTechnical, Aliases: []string{"angular"}},
	{Name: "vue", Category: models.CategoryTechnical, Aliases: []string{"vue", "vuejs", "vue.js"}},
	{Name: "node.js", Category: models.CategoryTechnical, Aliases: []string{"node.js", "nodejs", "node js"}},
	{Name: "express", Category: models.CategoryTechnical, Aliases: []string{"express.js", "expressjs"}},
	{Name: "django", Category: models.CategoryTechnical, Aliases: []string{"django"}},
	{Name: "flask", Category: models.CategoryTechnical, Aliases: []string{"flask"}},
	{Name: "spring", Category: models.CategoryTechnical, Aliases: []string{"spring boot", "spring framework"}},
	{Name: "rest apis", Category: models.CategoryTechnical, Aliases: []string{"rest api", "restful", "rest apis"}},
	{Name: "graphql", Category: models.CategoryTechnical, Aliases: []string{"graphql"}},
	{Name: "machine learning", Category: models.CategoryTechnical, Aliases: []string{"machine learning", " ml ", "scikit-learn", "sklearn"}},
	{Name: "deep learning", Category: models.CategoryTechnical, Aliases: []string{"deep learning", "tensorflow", "pytorch", "neural network"}},
	{Name: "data analysis", Category: models.CategoryTechnical, Aliases: []string{"data analysis", "pandas", "numpy", "data analytics"}},
	{Name: "statistics", Category: models.CategoryTechnical, Aliases: []string{"statistics", "statistical"}},
	{Name: "algorithms", Category: models.CategoryTechnical, Aliases: []string{"algorithms", "algorithm design"}},
	{Name: "data structures", Category: models.CategoryTechnical, Aliases: []string{"data structures"}},
	{Name: "testing", Category: models.CategoryTechnical, Aliases: []string{"unit testing", "test automation", "tdd", "integration testing"}},
	{Name: "ci/cd", Category: models.CategoryTechnical, Aliases: []string{"ci/cd", "continuous integration", "continuous delivery", "continuous deployment"}},
	{Name: "microservices", Category: models.CategoryTechnical, Aliases: []string{"microservices", "micro-services"}},
	{Name: "system design", Category: models.CategoryTechnical, Aliases: []string{"system design", "distributed systems", "scalability"}},
	{Name: "programming", Category: models.CategoryTechnical, Aliases: []string{"programming", "software development", "coding"}},
	// tools
	{Name: "git", Category: models.CategoryTools, Aliases: []string{"git", "github", "gitlab", "bitbucket"}},
	{Name: "docker", Category: models.CategoryTools, Aliases: []string{"docker", "containerization", "containers"}},
	{Name: "kubernetes", Category: models.CategoryTools, Aliases: []string{"kubernetes", "k8s", "helm"}},
	{Name: "aws", Category: models.CategoryTools, Aliases: []string{"aws", "amazon web services", "ec2", "lambda"}},
	{Name: "azure", Category: models.CategoryTools, Aliases: []string{"azure"}},
	{Name: "gcp", Category: models.CategoryTools, Aliases: []string{"gcp", "google cloud"}},
	{Name: "terraform", Category: models.CategoryTools, Aliases: []string{"terraform", "infrastructure as code"}},
	{Name: "jenkins", Category: models.CategoryTools, Aliases: []string{"jenkins"}},
	{Name: "linux", Category: models.CategoryTools, Aliases: []string{"linux", "unix", "bash", "shell scripting"}},
	{Name: "jira", Category: models.CategoryTools, Aliases: []string{"jira", "confluence"}},
	{Name: "figma", Category: models.CategoryTools, Aliases: []string{"figma", "sketch"}},
	{Name: "postman", Category: models.CategoryTools, Aliases: []string{"postman"}},
	{Name: "elasticsearch", Category: models.CategoryTools, Aliases: []string{"elasticsearch", "elastic stack", "kibana"}},
	{Name: "kafka", Category: models.CategoryTools, Aliases: []string{"kafka", "message queue", "rabbitmq"}},
	{Name: "redis", Category: models.CategoryTools, Aliases: []string{"redis", "memcached"}},
	// soft
	{Name: "communication", Category: models.CategorySoft, Aliases: []string{"communication"}},
	{Name: "leadership", Category: models.CategorySoft, Aliases: []string{"leadership", "team lead"}},
	{Name: "teamwork", Category: models.CategorySoft, Aliases: []string{"teamwork", "collaboration", "cross-functional"}},
	{Name: "problem solving", Category: models.CategorySoft, Aliases: []string{"problem solving", "problem-solving", "analytical"}},
	{Name: "time management", Category: models.CategorySoft, Aliases: []string{"time management", "prioritization"}},
	{Name: "mentoring", Category: models.CategorySoft, Aliases: []string{"mentoring", "mentored", "coaching"}},
	{Name: "presentation", Category: models.CategorySoft, Aliases: []string{"presentation", "public speaking"}},
	{Name: "negotiation", Category: models.CategorySoft, Aliases: []string{"negotiation", "stakeholder management"}},
	// domain
	{Name: "agile", Category: models.CategoryDomain, Aliases: []string{"agile", "scrum", "kanban", "sprint planning"}},
	{Name: "project management", Category: models.CategoryDomain, Aliases: []string{"project management", "program management"}},
	{Name: "product management", Category: models.CategoryDomain, Aliases: []string{"product management", "product strategy", "roadmap"}},
	{Name: "ux design", Category: models.CategoryDomain, Aliases: []string{"ux design", "user experience", "ui/ux", "wireframing"}},
	{Name: "data engineering", Category: models.CategoryDomain, Aliases: []string{"data engineering", "etl", "data pipeline"}},
	{Name: "security", Category: models.CategoryDomain, Aliases: []string{"security", "cybersecurity", "penetration testing", "owasp"}},
	{Name: "devops", Category: models.CategoryDomain, Aliases: []string{"devops", "site reliability", "sre"}},
}

var defaultRoles = []RoleProfile{
	{
		ID:                  "software-engineer",
		TitleKeywords:       []string{"software engineer", "software developer", "swe", "programmer"},
		RequiredSkills:      []string{"programming", "data structures", "algorithms", "git", "testing", "sql", "system design"},
		ResponsibilityVerbs: []string{"developed", "implemented", "designed", "built", "debugged", "deployed", "maintained"},
		BaseSalary:          95000,
		HighDemand:          true,
		Levels: map[string]RoleLevel{
			"entry": {
				Title:            "Junior Software Engineer",
				Skills:           []string{"programming", "git", "data structures", "testing"},
				Responsibilities: []string{"implement well-scoped features", "fix bugs", "write unit tests"},
				SalaryRange:      models.SalaryRange{Min: 65000, Max: 95000, Median: 80000},
			},
			"mid": {
				Title:            "Software Engineer",
				Skills:           []string{"programming", "git", "algorithms", "sql", "testing", "rest apis"},
				Responsibilities: []string{"own features end to end", "review code", "collaborate across teams"},
				SalaryRange:      models.SalaryRange{Min: 90000, Max: 130000, Median: 110000},
			},
			"senior": {
				Title:            "Senior Software Engineer",
				Skills:           []string{"system design", "microservices", "mentoring", "ci/cd", "algorithms", "sql"},
				Responsibilities: []string{"design systems", "mentor engineers", "drive technical decisions"},
				SalaryRange:      models.SalaryRange{Min: 130000, Max: 180000, Median: 155000},
			},
			"lead": {
				Title:            "Staff Engineer",
				Skills:           []string{"system design", "leadership", "mentoring", "communication", "microservices"},
				Responsibilities: []string{"set technical direction", "lead cross-team initiatives", "grow senior engineers"},
				SalaryRange:      models.SalaryRange{Min: 170000, Max: 240000, Median: 200000},
			},
		},
	},
	{
		ID:                  "frontend-developer",
		TitleKeywords:       []string{"frontend", "front-end", "front end developer", "ui developer", "ui engineer"},
		RequiredSkills:      []string{"javascript", "html", "css", "react", "typescript", "testing", "git"},
		ResponsibilityVerbs: []string{"built", "designed", "styled", "optimized", "implemented", "prototyped"},
		BaseSalary:          85000,
		Levels: map[string]RoleLevel{
			"entry": {
				Title:            "Junior Frontend Developer",
				Skills:           []string{"javascript", "html", "css", "git"},
				Responsibilities: []string{"implement ui components", "fix layout issues", "write component tests"},
				SalaryRange:      models.SalaryRange{Min: 55000, Max: 85000, Median: 70000},
			},
			"mid": {
				Title:            "Frontend Developer",
				Skills:           []string{"javascript", "react", "typescript", "css", "testing"},
				Responsibilities: []string{"own feature surfaces", "improve performance", "review code"},
				SalaryRange:      models.SalaryRange{Min: 80000, Max: 120000, Median: 100000},
			},
			"senior": {
				Title:            "Senior Frontend Developer",
				Skills:           []string{"react", "typescript", "system design", "testing", "mentoring", "ci/cd"},
				Responsibilities: []string{"architect frontend platforms", "set ui standards", "mentor developers"},
				SalaryRange:      models.SalaryRange{Min: 115000, Max: 165000, Median: 140000},
			},
		},
	},
	{
		ID:                  "backend-developer",
		TitleKeywords:       []string{"backend", "back-end", "back end developer", "api developer", "server-side"},
		RequiredSkills:      []string{"programming", "sql", "rest apis", "microservices", "docker", "testing", "git"},
		ResponsibilityVerbs: []string{"developed", "designed", "scaled", "optimized", "integrated", "deployed"},
		BaseSalary:          95000,
		Levels: map[string]RoleLevel{
			"entry": {
				Title:            "Junior Backend Developer",
				Skills:           []string{"programming", "sql", "rest apis", "git"},
				Responsibilities: []string{"implement api endpoints", "write queries", "fix service bugs"},
				SalaryRange:      models.SalaryRange{Min: 60000, Max: 90000, Median: 75000},
			},
			"mid": {
				Title:            "Backend Developer",
				Skills:           []string{"programming", "sql", "rest apis", "docker", "testing", "redis"},
				Responsibilities: []string{"own services", "optimize queries", "operate deployments"},
				SalaryRange:      models.SalaryRange{Min: 85000, Max: 125000, Median: 105000},
			},
			"senior": {
				Title:            "Senior Backend Developer",
				Skills:           []string{"system design", "microservices", "kubernetes", "sql", "mentoring", "ci/cd"},
				Responsibilities: []string{"design service architecture", "lead reliability work", "mentor developers"},
				SalaryRange:      models.SalaryRange{Min: 125000, Max: 175000, Median: 150000},
			},
		},
	},
	{
		ID:                  "fullstack-developer",
		TitleKeywords:       []string{"full stack", "fullstack", "full-stack"},
		RequiredSkills:      []string{"javascript", "react", "node.js", "sql", "rest apis", "git", "testing"},
		ResponsibilityVerbs: []string{"built", "developed", "integrated", "shipped", "implemented", "deployed"},
		BaseSalary:          100000,
		Levels: map[string]RoleLevel{
			"entry": {
				Title:            "Junior Full Stack Developer",
				Skills:           []string{"javascript", "html", "css", "sql", "git"},
				Responsibilities: []string{"implement features across the stack", "fix bugs", "write tests"},
				SalaryRange:      models.SalaryRange{Min: 60000, Max: 90000, Median: 75000},
			},
			"mid": {
				Title:            "Full Stack Developer",
				Skills:           []string{"javascript", "react", "node.js", "sql", "rest apis", "docker"},
				Responsibilities: []string{"own vertical slices", "design apis", "review code"},
				SalaryRange:      models.SalaryRange{Min: 90000, Max: 130000, Median: 110000},
			},
			"senior": {
				Title:            "Senior Full Stack Developer",
				Skills:           []string{"system design", "react", "node.js", "microservices", "mentoring", "ci/cd"},
				Responsibilities: []string{"architect product systems", "drive technical quality", "mentor developers"},
				SalaryRange:      models.SalaryRange{Min: 130000, Max: 180000, Median: 155000},
			},
		},
	},
	{
		ID:                  "data-scientist",
		TitleKeywords:       []string{"data scientist", "data science", "machine learning engineer", "ml engineer"},
		RequiredSkills:      []string{"python", "machine learning", "statistics", "data analysis", "sql", "deep learning"},
		ResponsibilityVerbs: []string{"analyzed", "modeled", "trained", "evaluated", "predicted", "visualized"},
		BaseSalary:          105000,
		HighDemand:          true,
		Levels: map[string]RoleLevel{
			"entry": {
				Title:            "Junior Data Scientist",
				Skills:           []string{"python", "statistics", "data analysis", "sql"},
				Responsibilities: []string{"clean and analyze datasets", "build baseline models", "report findings"},
				SalaryRange:      models.SalaryRange{Min: 70000, Max: 100000, Median: 85000},
			},
			"mid": {
				Title:            "Data Scientist",
				Skills:           []string{"python", "machine learning", "statistics", "sql", "data analysis"},
				Responsibilities: []string{"own modeling projects", "design experiments", "ship models to production"},
				SalaryRange:      models.SalaryRange{Min: 100000, Max: 145000, Median: 120000},
			},
			"senior": {
				Title:            "Senior Data Scientist",
				Skills:           []string{"machine learning", "deep learning", "system design", "mentoring", "communication"},
				Responsibilities: []string{"lead modeling strategy", "mentor scientists", "partner with product"},
				SalaryRange:      models.SalaryRange{Min: 140000, Max: 190000, Median: 165000},
			},
		},
	},
	{
		ID:                  "devops-engineer",
		TitleKeywords:       []string{"devops", "site reliability", "sre", "platform engineer", "infrastructure engineer"},
		RequiredSkills:      []string{"docker", "kubernetes", "aws", "terraform", "linux", "ci/cd", "python"},
		ResponsibilityVerbs: []string{"automated", "deployed", "provisioned", "monitored", "scaled", "maintained"},
		BaseSalary:          110000,
		HighDemand:          true,
		Levels: map[string]RoleLevel{
			"entry": {
				Title:            "Junior DevOps Engineer",
				Skills:           []string{"linux", "git", "docker", "ci/cd"},
				Responsibilities: []string{"maintain pipelines", "respond to alerts", "script routine tasks"},
				SalaryRange:      models.SalaryRange{Min: 70000, Max: 100000, Median: 85000},
			},
			"mid": {
				Title:            "DevOps Engineer",
				Skills:           []string{"docker", "kubernetes", "aws", "terraform", "linux", "ci/cd"},
				Responsibilities: []string{"own infrastructure services", "automate provisioning", "improve observability"},
				SalaryRange:      models.SalaryRange{Min: 100000, Max: 145000, Median: 120000},
			},
			"senior": {
				Title:            "Senior DevOps Engineer",
				Skills:           []string{"kubernetes", "terraform", "system design", "security", "mentoring"},
				Responsibilities: []string{"design platform architecture", "lead incident response", "mentor engineers"},
				SalaryRange:      models.SalaryRange{Min: 140000, Max: 190000, Median: 165000},
			},
		},
	},
	{
		ID:                  "product-manager",
		TitleKeywords:       []string{"product manager", "product owner", "pm "},
		RequiredSkills:      []string{"product management", "communication", "agile", "data analysis", "negotiation", "presentation"},
		ResponsibilityVerbs: []string{"prioritized", "launched", "defined", "coordinated", "researched", "aligned"},
		BaseSalary:          100000,
		Levels: map[string]RoleLevel{
			"entry": {
				Title:            "Associate Product Manager",
				Skills:           []string{"communication", "agile", "data analysis"},
				Responsibilities: []string{"write specs", "triage feedback", "support launches"},
				SalaryRange:      models.SalaryRange{Min: 70000, Max: 100000, Median: 85000},
			},
			"mid": {
				Title:            "Product Manager",
				Skills:           []string{"product management", "communication", "agile", "data analysis", "presentation"},
				Responsibilities: []string{"own a product area", "define roadmap", "coordinate delivery"},
				SalaryRange:      models.SalaryRange{Min: 95000, Max: 140000, Median: 115000},
			},
			"senior": {
				Title:            "Senior Product Manager",
				Skills:           []string{"product management", "leadership", "negotiation", "communication"},
				Responsibilities: []string{"set product strategy", "lead cross-functional programs", "mentor pms"},
				SalaryRange:      models.SalaryRange{Min: 135000, Max: 185000, Median: 160000},
			},
		},
	},
	{
		ID:                  "qa-engineer",
		TitleKeywords:       []string{"qa engineer", "quality assurance", "test engineer", "qa analyst", "sdet"},
		RequiredSkills:      []string{"testing", "test automation", "programming", "ci/cd", "jira", "sql"},
		ResponsibilityVerbs: []string{"tested", "automated", "verified", "documented", "reported", "validated"},
		BaseSalary:          75000,
		Levels: map[string]RoleLevel{
			"entry": {
				Title:            "Junior QA Engineer",
				Skills:           []string{"testing", "jira", "sql"},
				Responsibilities: []string{"execute test plans", "file defects", "verify fixes"},
				SalaryRange:      models.SalaryRange{Min: 50000, Max: 75000, Median: 62000},
			},
			"mid": {
				Title:            "QA Engineer",
				Skills:           []string{"testing", "programming", "ci/cd", "sql"},
				Responsibilities: []string{"build automated suites", "own quality for a service", "review test coverage"},
				SalaryRange:      models.SalaryRange{Min: 70000, Max: 100000, Median: 85000},
			},
			"senior": {
				Title:            "Senior QA Engineer",
				Skills:           []string{"test automation", "system design", "ci/cd", "mentoring"},
				Responsibilities: []string{"design test strategy", "lead quality initiatives", "mentor engineers"},
				SalaryRange:      models.SalaryRange{Min: 95000, Max: 135000, Median: 115000},
			},
		},
	},
}

var defaultResources = []ResourceSet{
	{
		Skill: "javascript", Level: models.ModuleBeginner,
		Resources: []models.LearningResource{
			{Type: "course", Title: "JavaScript Fundamentals", Provider: "freeCodeCamp", URL: "https://www.freecodecamp.org/learn/javascript-algorithms-and-data-structures/", Hours: 20},
			{Type: "book", Title: "Eloquent JavaScript", Provider: "Marijn Haverbeke", URL: "https://eloquentjavascript.net/", Hours: 15},
			{Type: "practice", Title: "JavaScript 30", Provider: "Wes Bos", URL: "https://javascript30.com/", Hours: 10},
		},
	},
	{
		Skill: "python", Level: models.ModuleBeginner,
		Resources: []models.LearningResource{
			{Type: "course", Title: "Python for Everybody", Provider: "Coursera", URL: "https://www.coursera.org/specializations/python", Hours: 25},
			{Type: "book", Title: "Automate the Boring Stuff with Python", Provider: "Al Sweigart", URL: "https://automatetheboringstuff.com/", Hours: 15},
		},
	},
	{
		Skill: "python", Level: models.ModuleIntermediate,
		Resources: []models.LearningResource{
			{Type: "course", Title: "Intermediate Python", Provider: "DataCamp", URL: "https://www.datacamp.com/courses/intermediate-python", Hours: 12},
			{Type: "book", Title: "Fluent Python", Provider: "Luciano Ramalho", URL: "https://www.oreilly.com/library/view/fluent-python-2nd/9781492056348/", Hours: 30},
		},
	},
	{
		Skill: "react", Level: models.ModuleBeginner,
		Resources: []models.LearningResource{
			{Type: "course", Title: "React Official Tutorial", Provider: "react.dev", URL: "https://react.dev/learn", Hours: 10},
			{Type: "course", Title: "The Complete React Course", Provider: "Udemy", URL: "https://www.udemy.com/topic/react/", Hours: 25},
		},
	},
	{
		Skill: "machine learning", Level: models.ModuleBeginner,
		Resources: []models.LearningResource{
			{Type: "course", Title: "Machine Learning Specialization", Provider: "Coursera", URL: "https://www.coursera.org/specializations/machine-learning-introduction", Hours: 40},
			{Type: "book", Title: "Hands-On Machine Learning", Provider: "Aurelien Geron", URL: "https://www.oreilly.com/library/view/hands-on-machine-learning/9781098125967/", Hours: 35},
		},
	},
	{
		Skill: "sql", Level: models.ModuleBeginner,
		Resources: []models.LearningResource{
			{Type: "course", Title: "SQLBolt Interactive Lessons", Provider: "SQLBolt", URL: "https://sqlbolt.com/", Hours: 8},
			{Type: "practice", Title: "SQL Practice Problems", Provider: "HackerRank", URL: "https://www.hackerrank.com/domains/sql", Hours: 10},
		},
	},
	{
		Skill: "docker", Level: models.ModuleBeginner,
		Resources: []models.LearningResource{
			{Type: "course", Title: "Docker Getting Started", Provider: "Docker", URL: "https://docs.docker.com/get-started/", Hours: 6},
			{Type: "course", Title: "Docker Mastery", Provider: "Udemy", URL: "https://www.udemy.com/course/docker-mastery/", Hours: 20},
		},
	},
	{
		Skill: "kubernetes", Level: models.ModuleIntermediate,
		Resources: []models.LearningResource{
			{Type: "course", Title: "Kubernetes Basics", Provider: "kubernetes.io", URL: "https://kubernetes.io/docs/tutorials/kubernetes-basics/", Hours: 10},
			{Type: "course", Title: "Certified Kubernetes Administrator Prep", Provider: "KodeKloud", URL: "https://kodekloud.com/courses/certified-kubernetes-administrator-cka/", Hours: 30},
		},
	},
	{
		Skill: "go", Level: models.ModuleBeginner,
		Resources: []models.LearningResource{
			{Type: "course", Title: "A Tour of Go", Provider: "go.dev", URL: "https://go.dev/tour/", Hours: 8},
			{Type: "book", Title: "The Go Programming Language", Provider: "Donovan & Kernighan", URL: "https://www.gopl.io/", Hours: 30},
		},
	},
	{
		Skill: "communication", Level: models.ModuleBeginner,
		Resources: []models.LearningResource{
			{Type: "course", Title: "Effective Communication for Engineers", Provider: "Coursera", URL: "https://www.coursera.org/learn/communication-skills-engineers", Hours: 10},
			{Type: "book", Title: "Crucial Conversations", Provider: "Patterson et al.", URL: "https://cruciallearning.com/crucial-conversations-book/", Hours: 8},
		},
	},
	{
		Skill: "leadership", Level: models.ModuleIntermediate,
		Resources: []models.LearningResource{
			{Type: "book", Title: "The Manager's Path", Provider: "Camille Fournier", URL: "https://www.oreilly.com/library/view/the-managers-path/9781491973882/", Hours: 12},
			{Type: "course", Title: "Leading Teams", Provider: "Coursera", URL: "https://www.coursera.org/learn/leading-teams", Hours: 15},
		},
	},
	{
		Skill: "system design", Level: models.ModuleIntermediate,
		Resources: []models.LearningResource{
			{Type: "book", Title: "Designing Data-Intensive Applications", Provider: "Martin Kleppmann", URL: "https://dataintensive.net/", Hours: 40},
			{Type: "practice", Title: "System Design Primer", Provider: "GitHub", URL: "https://github.com/donnemartin/system-design-primer", Hours: 25},
		},
	},
}
