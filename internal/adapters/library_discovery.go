package adapters

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/magiconair/properties"
	"github.com/rs/zerolog/log"

	"resmap/internal/ports"
	"resmap/internal/shared"
)

const (
	projectPropertiesFile  = "project.properties"
	libraryReferencePrefix = "android.library.reference."
)

// LibraryDiscoveryAdapter walks project.properties library references
// breadth first, starting at the application directory.
type LibraryDiscoveryAdapter struct{}

func NewLibraryDiscoveryAdapter() LibraryDiscoveryAdapter {
	return LibraryDiscoveryAdapter{}
}

// FindLibraryProjects returns canonical library roots in discovery order.
// Only libraries that ship a res directory are kept; each is reported once
// even when several projects reference it.
func (a LibraryDiscoveryAdapter) FindLibraryProjects(appDir string) ([]string, error) {
	if strings.TrimSpace(appDir) == "" {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("application directory is empty")
	}
	root, err := shared.CanonicalPath(appDir)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to add library projects").
			WithCause(err)
	}

	queue := []string{root}
	visited := map[string]struct{}{root: {}}
	var libraries []string
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		references, err := readLibraryReferences(current)
		if err != nil {
			return nil, err
		}
		for _, reference := range references {
			libPath, err := shared.CanonicalPath(filepath.Join(current, reference))
			if err != nil {
				return nil, errbuilder.New().
					WithCode(errbuilder.CodeInternal).
					WithMsg("failed to resolve library reference: " + reference).
					WithCause(err)
			}
			if !shared.IsDir(filepath.Join(libPath, "res")) {
				log.Debug().Str("library", libPath).Msg("library without res directory skipped")
				continue
			}
			if _, seen := visited[libPath]; seen {
				continue
			}
			visited[libPath] = struct{}{}
			queue = append(queue, libPath)
			libraries = append(libraries, libPath)
		}
	}
	log.Debug().Str("app", root).Int("libraries", len(libraries)).Msg("library projects discovered")
	return libraries, nil
}

// readLibraryReferences returns android.library.reference.1, .2, ... up to
// the first missing index.
func readLibraryReferences(dir string) ([]string, error) {
	path := filepath.Join(dir, projectPropertiesFile)
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to stat " + path).
			WithCause(err)
	}
	props, err := properties.LoadFile(path, properties.UTF8)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to parse " + path).
			WithCause(err)
	}
	var references []string
	for i := 1; ; i++ {
		value, ok := props.Get(fmt.Sprintf("%s%d", libraryReferencePrefix, i))
		if !ok {
			break
		}
		value = strings.TrimSpace(value)
		if value == "" {
			continue
		}
		references = append(references, value)
	}
	return references, nil
}

var _ ports.LibraryDiscoveryPort = LibraryDiscoveryAdapter{}
