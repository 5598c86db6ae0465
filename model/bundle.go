package model

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
)

const descriptionFileName = "modelDescription.xml"

// A Bundle is one loaded model package: its parsed description plus the
// filesystem directory it was unpacked to. Release must be called exactly
// once when the bundle is no longer needed; it is safe to call again.
type Bundle struct {
	Path        string
	Description *Description
	Protocol    Protocol

	extractDir string
	released   bool
}

// A Loader loads model bundles by path.
type Loader interface {
	Load(path string) (*Bundle, error)
}

// NewBundle wraps an already-parsed description into a bundle that owns no
// extracted files. Tests and embedded models use this.
func NewBundle(desc *Description) (*Bundle, error) {
	proto, err := ProtocolForVersion(desc.Version)
	if err != nil {
		return nil, err
	}

	return &Bundle{Description: desc, Protocol: proto}, nil
}

// Instantiate creates a live instance of the bundle's model. The model's
// executable implementation must have been registered under the bundle's
// model identifier.
func (b *Bundle) Instantiate(instanceName string) (Instance, error) {
	factory, found := lookupFactory(b.Description.ModelIdentifier)
	if !found {
		return nil, &ConfigError{
			Reason: fmt.Sprintf("no registered implementation for model %q",
				b.Description.ModelIdentifier),
		}
	}

	return factory(instanceName), nil
}

// ExtractDir returns the directory the bundle was unpacked to, or "" for
// bundles that own no files.
func (b *Bundle) ExtractDir() string {
	return b.extractDir
}

// Release deletes the bundle's extracted files. It is idempotent so that a
// teardown path and a deferred cleanup can both call it.
func (b *Bundle) Release() error {
	if b.released || b.extractDir == "" {
		return nil
	}
	b.released = true

	logrus.Debugf("deleting extracted bundle at %s", b.extractDir)

	return os.RemoveAll(b.extractDir)
}

// A FileLoader loads zipped model bundles from disk, resolving relative
// paths against the configured root and working directories, and unpacks
// each bundle into a private directory under the working directory.
type FileLoader struct {
	// WorkDir is the driver's working directory. Bundles unpack into
	// WorkDir/bundle_extract/<instance id>.
	WorkDir string

	// RootPath, when set, is tried for resolving relative bundle paths
	// before the working directory.
	RootPath string

	// InstanceID namespaces the extraction directory so sibling drivers in
	// one process never share extracted files.
	InstanceID string
}

// Load reads a bundle's description and unpacks its contents.
func (l FileLoader) Load(path string) (*Bundle, error) {
	resolved, err := l.resolve(path)
	if err != nil {
		return nil, err
	}

	r, err := zip.OpenReader(resolved)
	if err != nil {
		return nil, &ConfigError{
			Reason: fmt.Sprintf("cannot open bundle %s: %v", resolved, err),
		}
	}
	defer r.Close()

	desc, err := readDescription(&r.Reader)
	if err != nil {
		return nil, err
	}

	proto, err := ProtocolForVersion(desc.Version)
	if err != nil {
		return nil, err
	}

	dir := filepath.Join(l.WorkDir, "bundle_extract", l.InstanceID)
	if err := extractAll(&r.Reader, dir); err != nil {
		os.RemoveAll(dir)
		return nil, err
	}

	logrus.Debugf("extracted bundle %s to %s", resolved, dir)

	return &Bundle{
		Path:        resolved,
		Description: desc,
		Protocol:    proto,
		extractDir:  dir,
	}, nil
}

func (l FileLoader) resolve(path string) (string, error) {
	candidates := []string{path}
	if !filepath.IsAbs(path) {
		if l.RootPath != "" {
			candidates = append(candidates, filepath.Join(l.RootPath, path))
		}
		candidates = append(candidates, filepath.Join(l.WorkDir, path))
	}

	for _, c := range candidates {
		if info, err := os.Stat(c); err == nil && !info.IsDir() {
			return filepath.Abs(c)
		}
	}

	return "", &ConfigError{
		Reason: fmt.Sprintf("bundle %s not found", path),
	}
}

func readDescription(r *zip.Reader) (*Description, error) {
	for _, f := range r.File {
		if f.Name != descriptionFileName {
			continue
		}

		rc, err := f.Open()
		if err != nil {
			return nil, err
		}
		defer rc.Close()

		data, err := io.ReadAll(rc)
		if err != nil {
			return nil, err
		}

		return ParseDescription(data)
	}

	return nil, &ConfigError{
		Reason: "bundle contains no " + descriptionFileName,
	}
}

func extractAll(r *zip.Reader, dir string) error {
	for _, f := range r.File {
		target := filepath.Join(dir, filepath.Clean(f.Name))
		if !strings.HasPrefix(target, filepath.Clean(dir)+string(os.PathSeparator)) {
			return &ConfigError{
				Reason: fmt.Sprintf("bundle entry %s escapes extraction dir", f.Name),
			}
		}

		if f.FileInfo().IsDir() {
			if err := os.MkdirAll(target, 0o755); err != nil {
				return err
			}
			continue
		}

		if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			return err
		}

		if err := extractFile(f, target); err != nil {
			return err
		}
	}

	return nil
}

func extractFile(f *zip.File, target string) error {
	rc, err := f.Open()
	if err != nil {
		return err
	}
	defer rc.Close()

	out, err := os.OpenFile(
		target, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, f.Mode())
	if err != nil {
		return err
	}
	defer out.Close()

	_, err = io.Copy(out, rc)

	return err
}
