package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/dgallion1/docnav/internal/catalog"
	"github.com/dgallion1/docnav/internal/compose"
	"github.com/dgallion1/docnav/internal/convert"
	"github.com/dgallion1/docnav/internal/inspect"
	"github.com/dgallion1/docnav/internal/section"
)

const docxContentType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

// handleMerge merges the uploaded documents and streams the result back.
// Files merge in upload order; form fields override the configured menu
// title, back label, and category separator.
func (s *Server) handleMerge(w http.ResponseWriter, r *http.Request) {
	// Limit total request size.
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes*10+10*1024*1024)

	if err := r.ParseMultipartForm(64 << 20); err != nil {
		jsonError(w, "invalid multipart form: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer r.MultipartForm.RemoveAll()

	files := r.MultipartForm.File["files"]
	if len(files) == 0 {
		jsonError(w, "at least one file is required", http.StatusBadRequest)
		return
	}

	menuTitle := formOr(r, "menu_title", s.cfg.MenuTitle)
	backLabel := formOr(r, "back_label", s.cfg.BackLabel)
	categorySep := formOr(r, "category_sep", s.cfg.CategorySep)

	tmpDir, err := os.MkdirTemp("", "docnav-merge-*")
	if err != nil {
		jsonError(w, "failed to stage uploads", http.StatusInternalServerError)
		return
	}
	defer os.RemoveAll(tmpDir)

	var paths []string
	for i, fh := range files {
		filename := sanitizeFilename(fh.Filename)
		if !catalog.IsSupportedExtension(filename) {
			jsonError(w, fmt.Sprintf("unsupported file type: %s", filepath.Ext(filename)), http.StatusBadRequest)
			return
		}
		path := filepath.Join(tmpDir, filename)
		if _, err := os.Stat(path); err == nil {
			path = filepath.Join(tmpDir, fmt.Sprintf("%d_%s", i+1, filename))
		}
		if err := s.saveUpload(fh, path); err != nil {
			jsonError(w, err.Error(), http.StatusRequestEntityTooLarge)
			return
		}
		paths = append(paths, path)
	}

	sources := catalog.Resolve(paths, categorySep)
	comp, err := compose.Merge(sources, s.mergeOptions(menuTitle, backLabel))
	if err != nil {
		var loadErr *section.LoadError
		if errors.As(err, &loadErr) {
			jsonError(w, fmt.Sprintf("unreadable document %s: %v", filepath.Base(loadErr.Path), loadErr.Err), http.StatusUnprocessableEntity)
			return
		}
		s.log.Error("merge failed", "error", err)
		jsonError(w, "merge failed", http.StatusInternalServerError)
		return
	}

	output := formOr(r, "output", s.cfg.Output)
	w.Header().Set("Content-Type", docxContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filepath.Base(output)))
	if _, err := comp.WriteTo(w); err != nil {
		// Headers are gone; all we can do is log.
		s.log.Error("streaming merged document failed", "error", err)
	}
}

// handleInspect reports paragraph, heading, and word counts for one
// uploaded .docx.
func (s *Server) handleInspect(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes+1024*1024)

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		jsonError(w, "invalid multipart form: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile("file")
	if err != nil {
		jsonError(w, "file is required: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer file.Close()

	filename := sanitizeFilename(header.Filename)
	if !strings.EqualFold(filepath.Ext(filename), ".docx") {
		jsonError(w, "only .docx documents can be inspected", http.StatusBadRequest)
		return
	}

	tmp, err := os.CreateTemp("", "docnav-inspect-*.docx")
	if err != nil {
		jsonError(w, "failed to stage upload", http.StatusInternalServerError)
		return
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := io.Copy(tmp, io.LimitReader(file, s.cfg.MaxUploadBytes+1)); err != nil {
		tmp.Close()
		jsonError(w, "failed to read file", http.StatusInternalServerError)
		return
	}
	tmp.Close()

	rep, err := inspect.File(tmpPath)
	if err != nil {
		jsonError(w, fmt.Sprintf("unreadable document %s: %v", filename, err), http.StatusUnprocessableEntity)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"filename":      filename,
		"paragraphs":    rep.Paragraphs,
		"headings":      rep.Headings,
		"words":         rep.Words,
		"first_heading": rep.FirstHeading,
	})
}

// mergeOptions builds the composer options for one request, carrying the
// configured conversion behavior alongside the per-request overrides.
func (s *Server) mergeOptions(menuTitle, backLabel string) compose.Options {
	return compose.Options{
		MenuTitle: menuTitle,
		BackLabel: backLabel,
		Convert:   convert.Options{PDFFallbackPdftotext: s.cfg.PDFFallbackPdftotext},
	}
}

// saveUpload copies one multipart file to disk, enforcing the per-file
// size limit.
func (s *Server) saveUpload(fh *multipart.FileHeader, path string) error {
	f, err := fh.Open()
	if err != nil {
		return fmt.Errorf("failed to open upload %s", fh.Filename)
	}
	defer f.Close()

	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to stage upload %s", fh.Filename)
	}
	defer out.Close()

	n, err := io.Copy(out, io.LimitReader(f, s.cfg.MaxUploadBytes+1))
	if err != nil {
		return fmt.Errorf("failed to read upload %s", fh.Filename)
	}
	if n > s.cfg.MaxUploadBytes {
		return fmt.Errorf("%s exceeds max size (%d bytes)", fh.Filename, s.cfg.MaxUploadBytes)
	}
	return nil
}

func formOr(r *http.Request, key, fallback string) string {
	if v := r.FormValue(key); v != "" {
		return v
	}
	return fallback
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

func sanitizeFilename(name string) string {
	// Strip path components, keep only the base name.
	name = filepath.Base(name)
	name = strings.ReplaceAll(name, "/", "_")
	name = strings.ReplaceAll(name, "\\", "_")
	name = strings.ReplaceAll(name, "..", "_")
	if name == "" || name == "." {
		name = "unnamed"
	}
	return name
}
