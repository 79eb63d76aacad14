package inject

import (
	"embed"
	"path"
	"strings"
	"text/template"

	"github.com/arthur-debert/reactspring/pkg/errors"
)

//go:embed templates
var templateFS embed.FS

// sourceData is what every language source template renders with
type sourceData struct {
	Package   string
	MainClass string
}

// renderSource renders the source template kind for a language source set
func renderSource(sourceSet, kind string, data sourceData) (string, error) {
	return renderFile(path.Join("templates", sourceSet, kind+".tmpl"), data)
}

func renderFile(file string, data interface{}) (string, error) {
	content, err := templateFS.ReadFile(file)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrRender, "no template %s", file)
	}

	tmpl, err := template.New(path.Base(file)).Option("missingkey=error").Parse(string(content))
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrRender, "failed to parse template %s", file)
	}

	var out strings.Builder
	if err := tmpl.Execute(&out, data); err != nil {
		return "", errors.Wrapf(err, errors.ErrRender, "failed to render template %s", file)
	}
	return out.String(), nil
}
