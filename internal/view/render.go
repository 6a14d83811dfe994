// view — шаблоны страниц hbnb-web и чистые функции отображения
// (фильтр цены, звёзды рейтинга).
package view

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"path"
	"strings"
)

//go:embed templates static
var files embed.FS

// Renderer отрисовывает страницу или фрагмент по имени.
type Renderer interface {
	Render(w io.Writer, name string, data any) error
}

// Templates — набор шаблонов, разобранный один раз на старте.
// Каждая страница — отдельный клон базового набора (layout + partials),
// чтобы блоки "content" разных страниц не перетирали друг друга.
type Templates struct {
	base  *template.Template
	pages map[string]*template.Template
}

var _ Renderer = (*Templates)(nil)

func funcMap() template.FuncMap {
	return template.FuncMap{
		"stars":   Stars,
		"price":   FormatPrice,
		"ratings": func() []int { return []int{1, 2, 3, 4, 5} },
	}
}

// New разбирает встроенные шаблоны.
func New() (*Templates, error) {
	const op = "internal/view/New"

	base, err := template.New("_root").Funcs(funcMap()).ParseFS(files, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	pageFiles, err := fs.Glob(files, "templates/pages/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if len(pageFiles) == 0 {
		return nil, fmt.Errorf("%s: no page templates", op)
	}

	pages := make(map[string]*template.Template, len(pageFiles))
	for _, f := range pageFiles {
		t, err := base.Clone()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		if _, err := t.ParseFS(files, f); err != nil {
			return nil, fmt.Errorf("%s: parse %s: %w", op, f, err)
		}

		pages[strings.TrimSuffix(path.Base(f), ".tmpl")] = t
	}

	return &Templates{base: base, pages: pages}, nil
}

// MustNew — паника при ошибке разбора.
func MustNew() *Templates {
	t, err := New()
	if err != nil {
		panic(err)
	}

	return t
}

// Render: имя страницы (index, place, add_review, login) исполняет layout,
// любое другое имя — одноимённый фрагмент базового набора.
func (t *Templates) Render(w io.Writer, name string, data any) error {
	if page, ok := t.pages[name]; ok {
		return page.ExecuteTemplate(w, "layout", data)
	}

	if t.base.Lookup(name) == nil {
		return fmt.Errorf("template %q not found", name)
	}

	return t.base.ExecuteTemplate(w, name, data)
}

// Static — встроенные CSS/изображения для /static/.
func Static() fs.FS {
	sub, err := fs.Sub(files, "static")
	if err != nil {
		panic(err)
	}

	return sub
}
