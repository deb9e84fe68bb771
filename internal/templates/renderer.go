package templates

import (
	"bytes"
	"fmt"
	"io/fs"
	"path"
	"strings"
	"text/template"
)

// Renderer handles skeleton rendering with parameter substitution.
type Renderer struct {
	data Data
}

// NewRenderer creates a new renderer for the given parameter set.
func NewRenderer(p Params) *Renderer {
	return &Renderer{data: NewData(p)}
}

// RenderFile renders a single template file and returns the content.
func (r *Renderer) RenderFile(name string, content []byte) ([]byte, error) {
	tmpl, err := template.New(name).Parse(string(content))
	if err != nil {
		return nil, fmt.Errorf("parsing template %s: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, r.data); err != nil {
		return nil, fmt.Errorf("executing template %s: %w", name, err)
	}

	return buf.Bytes(), nil
}

// RenderAll renders every file of the embedded skeleton and returns them.
// Rendering failures propagate with the offending file named.
func (r *Renderer) RenderAll() ([]File, error) {
	var files []File

	err := fs.WalkDir(skeletonFS, SkeletonName, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			return nil
		}

		content, err := fs.ReadFile(skeletonFS, p)
		if err != nil {
			return fmt.Errorf("reading %s: %w", p, err)
		}

		rendered, err := r.RenderFile(p, content)
		if err != nil {
			return err
		}

		files = append(files, File{
			Path:    r.targetPath(p),
			Content: rendered,
		})

		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("rendering skeleton: %w", err)
	}

	return files, nil
}

// ListFiles returns the output paths one rendering of the skeleton produces
// for the given parameter set, without rendering content.
func ListFiles(p Params) ([]string, error) {
	r := NewRenderer(p)

	var files []string
	err := fs.WalkDir(skeletonFS, SkeletonName, func(fp string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		files = append(files, r.targetPath(fp))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("listing skeleton: %w", err)
	}

	return files, nil
}

// targetPath maps an embedded source path to an output path: the skeleton
// root and .tmpl suffix are stripped, and the app-name placeholder segments
// are substituted.
func (r *Renderer) targetPath(sourcePath string) string {
	rel := strings.TrimPrefix(sourcePath, SkeletonName+"/")
	rel = strings.TrimSuffix(rel, ".tmpl")

	segments := strings.Split(rel, "/")
	for i, seg := range segments {
		if seg == appNamePlaceholder {
			segments[i] = r.data.AppName
		}
	}
	return path.Join(segments...)
}
