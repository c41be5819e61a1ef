package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"resmap/internal/core"
	"resmap/internal/policies"
	"resmap/internal/types"
)

const manifestFile = "AndroidManifest.xml"

// Build loads every identifier table named by the project file and
// registers them with a fresh engine. Library tables are registered before
// the application table, so they go through the deferred queue and are
// drained when the application table arrives.
func (s Service) Build(ctx context.Context, req BuildRequest) (BuildResult, error) {
	projectPath := strings.TrimSpace(req.ProjectPath)
	if projectPath == "" {
		return BuildResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("project file path is required")
	}
	project, err := s.ProjectLoader.LoadProject(projectPath)
	if err != nil {
		return BuildResult{}, err
	}
	assert.NotEmpty(ctx, project.Application.Manifest, "application.manifest must be set")
	assert.NotEmpty(ctx, project.Application.Table, "application.table must be set")

	policy, err := policies.NewLibraryPolicy(project.Libraries.Mode, project.Libraries.Ignore)
	if err != nil {
		return BuildResult{}, err
	}
	pkg, err := s.Manifest.PackageName(project.Application.Manifest)
	if err != nil {
		return BuildResult{}, err
	}
	engine := core.NewEngine(policy)

	if project.System.Table != "" {
		table, err := s.loadTable(project.System.Table, types.NamespaceSystem, "")
		if err != nil {
			return BuildResult{}, err
		}
		if err := s.register(ctx, engine, table); err != nil {
			return BuildResult{}, err
		}
	}

	libraries, err := s.locateLibraries(ctx, project, policy)
	if err != nil {
		return BuildResult{}, err
	}
	tables, err := s.loadLibraryTables(ctx, libraries)
	if err != nil {
		return BuildResult{}, err
	}
	for _, table := range tables {
		if err := s.register(ctx, engine, table); err != nil {
			return BuildResult{}, err
		}
	}

	appTable, err := s.loadTable(project.Application.Table, types.NamespaceApplication, "")
	if err != nil {
		return BuildResult{}, err
	}
	if appTable.Package != "" && appTable.Package != pkg {
		log.Warn().
			Str("manifest_package", pkg).
			Str("table_package", appTable.Package).
			Msg("application table was generated for a different package")
	}
	if err := s.register(ctx, engine, appTable); err != nil {
		return BuildResult{}, err
	}

	log.Ctx(ctx).Debug().
		Str("package", pkg).
		Str("state", engine.State().String()).
		Int("libraries", len(libraries)).
		Msg("resolution engine built")
	return BuildResult{
		Project:   project,
		Package:   pkg,
		Engine:    engine,
		Libraries: libraries,
	}, nil
}

func (s Service) register(ctx context.Context, engine *core.Engine, table types.IdentifierTable) error {
	ingested, err := core.IngestTable(ctx, table)
	if err != nil {
		return err
	}
	return engine.Register(ctx, ingested)
}

// loadTable reads a table file and checks it declares the namespace the
// project file uses it for. Library tables take the identity they were
// located under.
func (s Service) loadTable(path string, ns types.Namespace, identity string) (types.IdentifierTable, error) {
	table, err := s.Tables.LoadTable(path)
	if err != nil {
		return types.IdentifierTable{}, err
	}
	if table.Namespace != ns {
		return types.IdentifierTable{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("identifier table %s declares namespace %s, expected %s", path, table.Namespace, ns))
	}
	if ns == types.NamespaceLibrary {
		if table.Identity != "" && table.Identity != identity {
			return types.IdentifierTable{}, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("identifier table %s declares identity %s, expected %s", path, table.Identity, identity))
		}
		table.Identity = identity
	}
	return table, nil
}

// locateLibraries lists discovered libraries first, in discovery order,
// followed by the explicit entries of the project file.
func (s Service) locateLibraries(ctx context.Context, project types.ProjectSpec, policy policies.LibraryPolicy) ([]types.LibraryProject, error) {
	var libraries []types.LibraryProject
	if project.Libraries.Discover {
		appDir := filepath.Dir(project.Application.Manifest)
		roots, err := s.Discovery.FindLibraryProjects(appDir)
		if err != nil {
			return nil, err
		}
		for _, root := range roots {
			identity, err := s.Manifest.PackageName(filepath.Join(root, manifestFile))
			if err != nil {
				return nil, err
			}
			if policy.Ignored(identity) {
				log.Ctx(ctx).Debug().Str("library", identity).Msg("library ignored by policy")
				continue
			}
			table := filepath.Join(project.Libraries.TablesDir, identity+".yaml")
			if _, err := os.Stat(table); err != nil {
				log.Warn().Str("library", identity).Str("table", table).Msg("library has no identifier table, skipping")
				continue
			}
			libraries = append(libraries, types.LibraryProject{Root: root, Identity: identity, Table: table})
		}
	}
	for _, ref := range project.Libraries.Explicit {
		identity := strings.TrimSpace(ref.Identity)
		if policy.Ignored(identity) {
			log.Ctx(ctx).Debug().Str("library", identity).Msg("library ignored by policy")
			continue
		}
		libraries = append(libraries, types.LibraryProject{Identity: identity, Table: ref.Table})
	}
	return libraries, nil
}

// loadLibraryTables reads library tables in parallel. The result keeps the
// order of libraries.
func (s Service) loadLibraryTables(ctx context.Context, libraries []types.LibraryProject) ([]types.IdentifierTable, error) {
	tables := make([]types.IdentifierTable, len(libraries))
	g, gctx := errgroup.WithContext(ctx)
	if s.TableWorkers > 0 {
		g.SetLimit(s.TableWorkers)
	}
	for i, library := range libraries {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			table, err := s.loadTable(library.Table, types.NamespaceLibrary, library.Identity)
			if err != nil {
				return err
			}
			tables[i] = table
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return tables, nil
}
