package adapters

import (
	"encoding/xml"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"resmap/internal/ports"
)

// ManifestAdapter reads the package name out of AndroidManifest.xml files.
// Results are cached per path until the file changes.
type ManifestAdapter struct {
	mu    sync.Mutex
	cache map[string]manifestCacheEntry
}

func NewManifestAdapter() *ManifestAdapter {
	return &ManifestAdapter{cache: map[string]manifestCacheEntry{}}
}

type manifestXML struct {
	XMLName xml.Name `xml:"manifest"`
	Package string   `xml:"package,attr"`
}

type manifestCacheEntry struct {
	modTime     time.Time
	packageName string
}

func (a *ManifestAdapter) PackageName(manifestPath string) (string, error) {
	info, err := os.Stat(manifestPath)
	if err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("failed to read manifest: " + manifestPath).
			WithCause(err)
	}
	a.mu.Lock()
	if entry, ok := a.cache[manifestPath]; ok && entry.modTime.Equal(info.ModTime()) {
		a.mu.Unlock()
		return entry.packageName, nil
	}
	a.mu.Unlock()

	content, err := os.ReadFile(manifestPath)
	if err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("failed to read manifest: " + manifestPath).
			WithCause(err)
	}
	var manifest manifestXML
	if err := xml.Unmarshal(content, &manifest); err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to parse manifest: " + manifestPath).
			WithCause(err)
	}
	name := strings.TrimSpace(manifest.Package)
	if name == "" {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("manifest has no package attribute: " + manifestPath)
	}

	a.mu.Lock()
	a.cache[manifestPath] = manifestCacheEntry{modTime: info.ModTime(), packageName: name}
	a.mu.Unlock()
	return name, nil
}

var _ ports.ManifestPort = (*ManifestAdapter)(nil)
