package content

import (
	"github.com/pkg/errors"
	"github.com/tidwall/gjson"
)

// DecodeTerminalConfig reads a terminal-config document field by field.
// A field with the wrong JSON type falls back to its zero value instead of
// failing the whole document; only non-JSON input is an error.
func DecodeTerminalConfig(data []byte) (TerminalConfig, error) {
	if !gjson.ValidBytes(data) {
		return TerminalConfig{}, errors.New("terminal config is not valid JSON")
	}
	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return TerminalConfig{}, errors.New("terminal config is not a JSON object")
	}

	var cfg TerminalConfig
	cfg.Personal = decodePersonal(root.Get("personal"))

	forEachObject(root.Get("experience"), func(v gjson.Result) {
		cfg.Experience = append(cfg.Experience, Experience{
			Period:  str(v, "period"),
			Role:    str(v, "role"),
			Company: str(v, "company"),
			Bullets: strs(v.Get("bullets")),
		})
	})

	forEachObject(root.Get("skills"), func(v gjson.Result) {
		cat := SkillCategory{Category: str(v, "category")}
		forEachObject(v.Get("items"), func(it gjson.Result) {
			cat.Items = append(cat.Items, SkillItem{
				Name:  str(it, "name"),
				Level: num(it, "level"),
			})
		})
		cfg.Skills = append(cfg.Skills, cat)
	})

	if edu := root.Get("education"); edu.IsObject() {
		cfg.Education = Education{
			Degree:  str(edu, "degree"),
			College: str(edu, "college"),
			Year:    str(edu, "year"),
			CGPA:    str(edu, "cgpa"),
			Courses: strs(edu.Get("courses")),
		}
	}

	forEachObject(root.Get("blogs"), func(v gjson.Result) {
		cfg.Blogs = append(cfg.Blogs, Blog{Title: str(v, "title"), URL: str(v, "url")})
	})

	cfg.SudoLines = strs(root.Get("sudoLines"))
	return Normalize(cfg), nil
}

// DecodeProjects reads the project list. Entries that are not objects are
// dropped; everything else keeps its position.
func DecodeProjects(data []byte) ([]Project, error) {
	if !gjson.ValidBytes(data) {
		return nil, errors.New("project list is not valid JSON")
	}
	root := gjson.ParseBytes(data)
	if !root.IsArray() {
		return nil, errors.New("project list is not a JSON array")
	}
	var out []Project
	forEachObject(root, func(v gjson.Result) {
		out = append(out, Project{
			ID:           str(v, "_id"),
			Title:        str(v, "title"),
			ShortDesc:    str(v, "shortDesc"),
			Description:  str(v, "description"),
			Stack:        str(v, "stack"),
			ImageURL:     str(v, "imageUrl"),
			GithubURL:    str(v, "githubUrl"),
			LiveURL:      str(v, "liveUrl"),
			Technologies: strs(v.Get("technologies")),
			Highlights:   strs(v.Get("highlights")),
			Featured:     v.Get("featured").Type == gjson.True,
		})
	})
	return NormalizeProjects(out), nil
}

func decodePersonal(p gjson.Result) Personal {
	if !p.IsObject() {
		return Personal{}
	}
	out := Personal{
		Name:      str(p, "name"),
		Handle:    str(p, "handle"),
		Role:      str(p, "role"),
		Company:   str(p, "company"),
		Since:     str(p, "since"),
		Status:    str(p, "status"),
		Interests: str(p, "interests"),
		Location:  str(p, "location"),
		Tagline:   str(p, "tagline"),
		Email:     str(p, "email"),
		LinkedIn:  str(p, "linkedin"),
		GitHub:    str(p, "github"),
		Twitter:   str(p, "twitter"),
		PageTitle: str(p, "pageTitle"),
	}
	forEachObject(p.Get("extraFields"), func(v gjson.Result) {
		out.ExtraFields = append(out.ExtraFields, ExtraField{
			Label: str(v, "label"),
			Value: str(v, "value"),
			Link:  str(v, "link"),
		})
	})
	return out
}

func forEachObject(arr gjson.Result, fn func(gjson.Result)) {
	if !arr.IsArray() {
		return
	}
	for _, v := range arr.Array() {
		if v.IsObject() {
			fn(v)
		}
	}
}

// str accepts strings and numbers (a year typed as 2024 still renders).
func str(v gjson.Result, path string) string {
	f := v.Get(path)
	switch f.Type {
	case gjson.String, gjson.Number:
		return f.String()
	default:
		return ""
	}
}

// num keeps fractions; a level of 87.5 prints as typed.
func num(v gjson.Result, path string) float64 {
	f := v.Get(path)
	switch f.Type {
	case gjson.Number, gjson.String:
		return f.Float()
	default:
		return 0
	}
}

func strs(arr gjson.Result) []string {
	if !arr.IsArray() {
		return []string{}
	}
	out := []string{}
	for _, v := range arr.Array() {
		if v.Type == gjson.String || v.Type == gjson.Number {
			out = append(out, v.String())
		}
	}
	return out
}
