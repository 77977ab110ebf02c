package content

// ExtraField is a custom label/value row shown under the whoami block.
type ExtraField struct {
	Label string `toml:"label" json:"label"`
	Value string `toml:"value" json:"value"`
	Link  string `toml:"link" json:"link,omitempty"`
}

// Personal holds the identity and contact block of the terminal config.
type Personal struct {
	Name        string       `toml:"name" json:"name"`
	Handle      string       `toml:"handle" json:"handle"`
	Role        string       `toml:"role" json:"role"`
	Company     string       `toml:"company" json:"company"`
	Since       string       `toml:"since" json:"since"`
	Status      string       `toml:"status" json:"status"`
	Interests   string       `toml:"interests" json:"interests"`
	Location    string       `toml:"location" json:"location"`
	Tagline     string       `toml:"tagline" json:"tagline"`
	Email       string       `toml:"email" json:"email"`
	LinkedIn    string       `toml:"linkedin" json:"linkedin"`
	GitHub      string       `toml:"github" json:"github"`
	Twitter     string       `toml:"twitter" json:"twitter"`
	PageTitle   string       `toml:"page_title" json:"pageTitle"`
	ExtraFields []ExtraField `toml:"extra_fields" json:"extraFields,omitempty"`
}

// Experience is one entry of the work history.
type Experience struct {
	Period  string   `toml:"period" json:"period"`
	Role    string   `toml:"role" json:"role"`
	Company string   `toml:"company" json:"company"`
	Bullets []string `toml:"bullets" json:"bullets"`
}

// SkillItem is a named skill with a self-assessed level, nominally 0-100.
type SkillItem struct {
	Name  string  `toml:"name" json:"name"`
	Level float64 `toml:"level" json:"level"`
}

// SkillCategory groups skills under a header.
type SkillCategory struct {
	Category string      `toml:"category" json:"category"`
	Items    []SkillItem `toml:"items" json:"items"`
}

// Education is the single education block.
type Education struct {
	Degree  string   `toml:"degree" json:"degree"`
	College string   `toml:"college" json:"college"`
	Year    string   `toml:"year" json:"year"`
	CGPA    string   `toml:"cgpa" json:"cgpa"`
	Courses []string `toml:"courses" json:"courses"`
}

// Blog is a title/url pair listed by the blogs command.
type Blog struct {
	Title string `toml:"title" json:"title"`
	URL   string `toml:"url" json:"url"`
}

// TerminalConfig is the backend-editable content the terminal renders.
type TerminalConfig struct {
	Personal   Personal        `toml:"personal" json:"personal"`
	Experience []Experience    `toml:"experience" json:"experience"`
	Skills     []SkillCategory `toml:"skills" json:"skills"`
	Education  Education       `toml:"education" json:"education"`
	Blogs      []Blog          `toml:"blogs" json:"blogs"`
	SudoLines  []string        `toml:"sudo_lines" json:"sudoLines"`
}

// Project is a portfolio project record. The `project N` command addresses
// projects by their 1-based position in fetch order, never by ID.
type Project struct {
	ID           string   `toml:"id" json:"_id"`
	Title        string   `toml:"title" json:"title"`
	ShortDesc    string   `toml:"short_desc" json:"shortDesc,omitempty"`
	Description  string   `toml:"description" json:"description"`
	Stack        string   `toml:"stack" json:"stack,omitempty"`
	ImageURL     string   `toml:"image_url" json:"imageUrl,omitempty"`
	GithubURL    string   `toml:"github_url" json:"githubUrl,omitempty"`
	LiveURL      string   `toml:"live_url" json:"liveUrl,omitempty"`
	Technologies []string `toml:"technologies" json:"technologies"`
	Highlights   []string `toml:"highlights" json:"highlights,omitempty"`
	Featured     bool     `toml:"featured" json:"featured,omitempty"`
}

// Message is the contact form payload accepted by the backend.
type Message struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// Snapshot is the immutable per-session copy of fetched content.
type Snapshot struct {
	Config   TerminalConfig
	Projects []Project
}
