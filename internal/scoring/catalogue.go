package scoring

// SkillCategory pairs a category name with its keyword set. Keywords are
// lowercase; matching is done on lowercased text.
type SkillCategory struct {
	Name     string
	Keywords []string
}

// SkillCatalogue is the keyword table the heuristic scorer runs on. Treat it
// as versioned configuration: changing an entry changes scores, so tests pin
// the observable behavior rather than the table itself.
var SkillCatalogue = []SkillCategory{
	{
		Name: "Programming Languages",
		Keywords: []string{
			"go", "golang", "python", "java", "javascript", "typescript",
			"c++", "c#", "ruby", "php", "rust", "kotlin", "swift", "scala", "sql",
		},
	},
	{
		Name: "Web & Frameworks",
		Keywords: []string{
			"react", "angular", "vue", "node.js", "django", "spring", "rails",
			"express", "flask", "laravel", ".net", "rest", "graphql", "html", "css",
		},
	},
	{
		Name: "Data & Databases",
		Keywords: []string{
			"postgresql", "postgres", "mysql", "mongodb", "redis", "elasticsearch",
			"kafka", "oracle", "sqlite", "data warehouse", "etl", "spark", "hadoop",
		},
	},
	{
		Name: "Cloud & DevOps",
		Keywords: []string{
			"aws", "azure", "gcp", "docker", "kubernetes", "terraform", "ansible",
			"jenkins", "ci/cd", "linux", "git", "serverless", "microservices",
		},
	},
	{
		Name: "AI & Analytics",
		Keywords: []string{
			"machine learning", "deep learning", "nlp", "tensorflow", "pytorch",
			"data science", "analytics", "pandas", "tableau", "power bi",
		},
	},
	{
		Name: "Business & Management",
		Keywords: []string{
			"project management", "agile", "scrum", "stakeholder", "budgeting",
			"strategy", "operations", "sales", "marketing", "negotiation", "crm",
		},
	},
	{
		Name: "Domain Expertise",
		Keywords: []string{
			"healthcare", "fintech", "finance", "e-commerce", "logistics",
			"insurance", "compliance", "security", "accounting", "supply chain",
		},
	},
	{
		Name: "Soft Skills",
		Keywords: []string{
			"communication", "leadership", "teamwork", "problem solving",
			"mentoring", "collaboration", "adaptability", "time management",
			"presentation",
		},
	},
}

// Blend weights for the three scored dimensions. The remaining headroom is
// covered by the flat bonuses below.
const (
	skillWeight      = 0.5
	experienceWeight = 0.2
	educationWeight  = 0.1
)

// Experience scoring constants (points on the 0-100 experience dimension).
const (
	meetsYearsBonus       = 60
	shortYearsBonus       = 25
	seniorityKeywordBonus = 10
)

var seniorityKeywords = []string{"senior", "lead", "principal", "staff", "architect", "head of"}

// Qualification scoring constants (points on the 0-100 education dimension).
const (
	educationBonus     = 50
	certificationBonus = 50
)

var (
	educationKeywords     = []string{"bachelor", "master", "phd", "mba", "degree", "university", "college"}
	certificationKeywords = []string{"certified", "certification", "certificate"}
)

// Flat bonuses applied outside the weighted blend.
const (
	breadthThreshold      = 3
	breadthBonus          = 3
	wideBreadthThreshold  = 5
	wideBreadthBonus      = 6
	degreeFieldBonus      = 5
	directExperienceBonus = 4
)

var directExperienceKeywords = []string{"portfolio", "github", "open source", "publications"}

// scoreBand maps a final score to its qualitative label.
func scoreBand(score int) string {
	switch {
	case score >= 85:
		return "Outstanding match."
	case score >= 70:
		return "Strong match."
	case score >= 55:
		return "Good match."
	case score >= 40:
		return "Moderate match."
	case score >= 25:
		return "Partial match."
	default:
		return "Limited alignment."
	}
}
