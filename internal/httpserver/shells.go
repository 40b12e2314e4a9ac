package httpserver

import (
	"bytes"
	"fmt"
	"html/template"
	"io/fs"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/kyoma102/AI-tools-navigation/internal/i18n"
	"github.com/kyoma102/AI-tools-navigation/internal/render"
)

// Shells renders the page skeletons under a templates directory. Shared
// layouts and partials live outside pages/; every file in pages/ defines the
// "content" block for one page and is parsed into its own set.
type Shells struct {
	dir    string
	bundle *i18n.Bundle
	reload bool

	mu    sync.RWMutex
	pages map[string]*template.Template
}

// NewShells parses the templates under dir. With reload set, templates are
// reparsed on every render so edits show up without a restart.
func NewShells(dir string, bundle *i18n.Bundle, reload bool) (*Shells, error) {
	s := &Shells{dir: dir, bundle: bundle, reload: reload}
	pages, err := s.parse()
	if err != nil {
		return nil, err
	}
	s.pages = pages
	return s, nil
}

// Render executes the base layout for page and parses the result into a
// Document ready for mounting.
func (s *Shells) Render(page string, data PageData) (*render.Document, error) {
	pages := s.current()
	if s.reload {
		fresh, err := s.parse()
		if err != nil {
			return nil, fmt.Errorf("template parse error: %w", err)
		}
		pages = fresh
	}
	t, ok := pages[page]
	if !ok {
		return nil, fmt.Errorf("unknown page %q", page)
	}
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "base", data); err != nil {
		return nil, fmt.Errorf("template exec error: %w", err)
	}
	return render.ParseDocument(&buf)
}

func (s *Shells) current() map[string]*template.Template {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.pages
}

func (s *Shells) funcs() template.FuncMap {
	return template.FuncMap{
		"now": time.Now,
		"t": func(lang, key string) string {
			return s.bundle.T(lang, key)
		},
		"tf": func(lang, key string, args ...string) string {
			return s.bundle.TF(lang, key, args...)
		},
	}
}

func (s *Shells) parse() (map[string]*template.Template, error) {
	// Recursively discover all .tmpl files. ParseGlob doesn't support **.
	var shared, pageFiles []string
	pagesDir := filepath.Join(s.dir, "pages")
	if err := filepath.WalkDir(s.dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ".tmpl") {
			return nil
		}
		if filepath.Dir(path) == pagesDir {
			pageFiles = append(pageFiles, path)
		} else {
			shared = append(shared, path)
		}
		return nil
	}); err != nil {
		return nil, err
	}
	if len(shared) == 0 || len(pageFiles) == 0 {
		return nil, fmt.Errorf("no templates found under %s", s.dir)
	}

	base, err := template.New("_root").Funcs(s.funcs()).ParseFiles(shared...)
	if err != nil {
		return nil, err
	}
	pages := make(map[string]*template.Template, len(pageFiles))
	for _, file := range pageFiles {
		clone, err := base.Clone()
		if err != nil {
			return nil, err
		}
		if _, err := clone.ParseFiles(file); err != nil {
			return nil, err
		}
		name := strings.TrimSuffix(filepath.Base(file), ".tmpl")
		pages[name] = clone
	}
	return pages, nil
}
