package export

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
	"text/template"
	"time"

	sprig "github.com/go-task/slim-sprig/v3"

	"lovemedo/config"
	"lovemedo/project"
)

// templateValues is a struct that holds variables we make available for
// output name template expansion.
type templateValues struct {
	Context    string
	Title      string
	ProjectID  string
	Date       string
	Screens    int
	SourceFile string
}

// expandTemplate expands an output name template with project metadata.
func expandTemplate(p *project.Project, name config.TemplateFieldName, field, srcName string) (string, error) {
	tmpl, err := template.New(string(name)).Funcs(sprig.FuncMap()).Parse(field)
	if err != nil {
		return "", fmt.Errorf("unable to parse template field %s: %w", name, err)
	}

	date := ""
	if p.UpdatedAt > 0 {
		date = time.UnixMilli(p.UpdatedAt).Format("2006-01-02")
	} else if p.CreatedAt > 0 {
		date = time.UnixMilli(p.CreatedAt).Format("2006-01-02")
	}

	values := &templateValues{
		Context:    string(name),
		Title:      p.Config.Title,
		ProjectID:  p.ID,
		Date:       date,
		Screens:    len(p.Screens),
		SourceFile: strings.TrimSuffix(filepath.Base(srcName), filepath.Ext(srcName)),
	}

	buf := new(bytes.Buffer)
	if err := tmpl.Execute(buf, values); err != nil {
		return "", err
	}
	return buf.String(), nil
}
