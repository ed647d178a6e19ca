package cli

import (
	"path/filepath"
	"sort"
	"time"

	"github.com/CentralLabFacilities/rosjava-bootstrap/internal/definition"
	"github.com/CentralLabFacilities/rosjava-bootstrap/internal/errors"
	"github.com/CentralLabFacilities/rosjava-bootstrap/internal/generator"
	"github.com/CentralLabFacilities/rosjava-bootstrap/internal/models"
	"github.com/CentralLabFacilities/rosjava-bootstrap/internal/parser"
	"github.com/CentralLabFacilities/rosjava-bootstrap/internal/provider"
	"github.com/CentralLabFacilities/rosjava-bootstrap/internal/resolver"
	"github.com/CentralLabFacilities/rosjava-bootstrap/internal/utils"
)

// Generator coordinates an interface generation run
type Generator struct {
	files          *utils.FileProcessor
	moduleResolver *ModuleResolver
	emitter        generator.Emitter
	diagnostics    *utils.DiagnosticSystem
	summary        models.GenerationSummary
}

// NewGenerator creates a new CLI generator
func NewGenerator(verbose bool) *Generator {
	level := utils.DiagnosticInfo
	if verbose {
		level = utils.DiagnosticVerbose
	}
	return NewGeneratorWithDiagnostics(utils.NewDiagnosticSystem(level))
}

// NewGeneratorWithDiagnostics creates a new CLI generator logging to diagnostics
func NewGeneratorWithDiagnostics(diagnostics *utils.DiagnosticSystem) *Generator {
	files := utils.NewFileProcessor()
	return &Generator{
		files:          files,
		moduleResolver: NewModuleResolver(files.FileOps()),
		diagnostics:    diagnostics,
		summary:        models.NewGenerationSummary(),
	}
}

// SetEmitter replaces the Go emitter used by default
func (g *Generator) SetEmitter(emitter generator.Emitter) {
	g.emitter = emitter
}

// GetSummary returns the summary of the last run
func (g *Generator) GetSummary() models.GenerationSummary {
	return g.summary
}

// Generate runs the pipeline and returns its summary
func (g *Generator) Generate(config Config) (models.GenerationSummary, error) {
	err := g.Run(config)
	return g.summary, err
}

// indexes is what a scan produces: the indexes whose definitions are
// generated and the chain every lookup goes through
type indexes struct {
	messages *definition.Index
	services *definition.Index
	chain    *provider.Chain
}

// Run executes the complete generation process. Failures of single units are
// logged and recorded in the summary; only configuration and output directory
// errors abort the run.
func (g *Generator) Run(config Config) error {
	startTime := time.Now()
	g.summary = models.NewGenerationSummary()

	if err := config.Validate(); err != nil {
		g.diagnostics.Error("%v", err)
		return err
	}

	g.diagnostics.Verbose("Starting interface generation at %s", startTime.Format("15:04:05"))

	idx, err := g.scan(config)
	if err != nil {
		g.diagnostics.Error("Failed to scan definitions: %v", err)
		return err
	}

	for _, index := range []*definition.Index{idx.messages, idx.services} {
		for _, shadow := range index.Shadowed() {
			g.diagnostics.Warn("%s %s is defined more than once, using %s instead of %s",
				index.Kind(), shadow.Identifier, shadow.Kept, shadow.Discarded)
			g.summary.Shadowed = append(g.summary.Shadowed, shadow)
		}
	}

	packages := g.selectPackages(config, idx)

	var messageIDs, serviceIDs []models.TypeIdentifier
	for _, pkg := range packages {
		msgs := idx.messages.IdentifiersByPackage(pkg)
		srvs := idx.services.IdentifiersByPackage(pkg)
		if len(msgs) == 0 && len(srvs) == 0 {
			g.diagnostics.Warn("Package %s has no message or service definitions", pkg)
			g.summary.EmptyPackages = append(g.summary.EmptyPackages, pkg)
			continue
		}
		g.summary.PackagesProcessed++
		messageIDs = append(messageIDs, msgs...)
		serviceIDs = append(serviceIDs, srvs...)
	}
	sortByFullName(messageIDs)
	sortByFullName(serviceIDs)
	g.summary.MessagesFound = len(messageIDs)
	g.summary.ServicesFound = len(serviceIDs)

	emitter, err := g.resolveEmitter(config)
	if err != nil {
		return err
	}

	outputDir := config.outputDir()
	res := resolver.New(idx.chain)

	for _, id := range messageIDs {
		decl, resolveErr := res.Resolve(id, true)
		unit := models.GenerationUnit{Identifier: id, Role: models.RoleMessage}
		if err := g.generateUnit(outputDir, emitter, unit, decl, resolveErr); err != nil {
			return err
		}
	}

	for _, id := range serviceIDs {
		if err := g.generateService(outputDir, emitter, res, idx.services, id); err != nil {
			return err
		}
	}

	g.diagnostics.Verbose("Generation finished in %s", time.Since(startTime).Round(time.Millisecond))
	return nil
}

// scan registers every root and builds the indexes and provider chain
func (g *Generator) scan(config Config) (*indexes, error) {
	msgScanner := definition.NewScanner(models.MessageKind, g.files)
	srvScanner := definition.NewScanner(models.ServiceKind, g.files)

	acceptedPackagePaths := 0
	for i, root := range config.Roots() {
		msgOK := msgScanner.AddDirectory(root)
		srvOK := srvScanner.AddDirectory(root)
		if !msgOK || !srvOK {
			g.diagnostics.Verbose("Skipping %s: not a directory", root)
			continue
		}
		if i < len(config.PackagePaths) {
			acceptedPackagePaths++
		}
	}

	fullMessages, err := msgScanner.Update()
	if err != nil {
		return nil, err
	}
	fullServices, err := srvScanner.Update()
	if err != nil {
		return nil, err
	}

	pkg, single := config.SinglePackage(acceptedPackagePaths)
	if !single {
		return &indexes{
			messages: fullMessages,
			services: fullServices,
			chain:    provider.NewChain(fullMessages, fullServices, provider.Builtins()),
		}, nil
	}

	g.diagnostics.Info("Single package generate, force package to %s", pkg)

	forcedMessages, err := msgScanner.UpdateOnePackage(pkg)
	if err != nil {
		return nil, err
	}
	forcedServices, err := srvScanner.UpdateOnePackage(pkg)
	if err != nil {
		return nil, err
	}

	// The full indexes stay in the chain so references to other packages resolve
	return &indexes{
		messages: forcedMessages,
		services: forcedServices,
		chain:    provider.NewChain(forcedMessages, forcedServices, fullMessages, fullServices, provider.Builtins()),
	}, nil
}

// selectPackages returns the requested packages, or every discovered one
func (g *Generator) selectPackages(config Config, idx *indexes) []string {
	seen := make(map[string]bool)
	var packages []string

	add := func(pkgs ...string) {
		for _, pkg := range pkgs {
			if pkg != "" && !seen[pkg] {
				seen[pkg] = true
				packages = append(packages, pkg)
			}
		}
	}

	if len(config.PackageNames) > 0 {
		add(config.PackageNames...)
		return packages
	}

	g.diagnostics.Info("No package given, generating all")
	add(idx.messages.Packages()...)
	add(idx.services.Packages()...)
	sort.Strings(packages)
	return packages
}

// resolveEmitter returns the configured emitter or a Go emitter importing
// below the output directory's module path
func (g *Generator) resolveEmitter(config Config) (generator.Emitter, error) {
	if g.emitter != nil {
		return g.emitter, nil
	}

	importBase, err := g.moduleResolver.ResolveImportBase(config.ModuleName, config.outputDir())
	if err != nil {
		g.diagnostics.Warn("Could not determine import path of %s: %v", config.outputDir(), err)
		importBase = ""
	}
	if importBase == "" {
		g.diagnostics.Verbose("No module path for %s, cross-package imports use bare package names", config.outputDir())
	} else {
		g.diagnostics.Debug("Generated packages import below %s", importBase)
	}

	return generator.NewGoEmitter(importBase), nil
}

// generateService submits the container, request and response units of a service
func (g *Generator) generateService(outputDir string, emitter generator.Emitter, res *resolver.Resolver, services *definition.Index, id models.TypeIdentifier) error {
	decl, resolveErr := res.Resolve(id, false)
	container := models.GenerationUnit{Identifier: id, Role: models.RoleServiceContainer}
	if err := g.generateUnit(outputDir, emitter, container, decl, resolveErr); err != nil {
		return err
	}

	requestID := id.WithSuffix("Request")
	responseID := id.WithSuffix("Response")

	raw, ok := services.Definition(id.FullName())
	if !ok {
		return nil
	}

	request, response, splitErr := parser.SplitService(raw.Text)
	if splitErr != nil {
		var malformed *errors.MalformedDefinitionError
		if errors.As(splitErr, &malformed) {
			splitErr = malformed.ForType(id.FullName())
		}
	}

	halves := []struct {
		id   models.TypeIdentifier
		text string
		role models.UnitRole
	}{
		{id: requestID, text: request, role: models.RoleServiceRequest},
		{id: responseID, text: response, role: models.RoleServiceResponse},
	}

	for _, half := range halves {
		var decl *models.ResolvedDeclaration
		resolveErr := splitErr
		if resolveErr == nil {
			decl, resolveErr = res.ResolveText(half.id, half.text, true)
		}
		unit := models.GenerationUnit{Identifier: half.id, Role: half.role}
		if err := g.generateUnit(outputDir, emitter, unit, decl, resolveErr); err != nil {
			return err
		}
	}

	return nil
}

// generateUnit emits and writes one unit. resolveErr is the error from
// resolving decl, if any. The returned error is fatal to the run; unit
// failures are recorded and return nil.
func (g *Generator) generateUnit(outputDir string, emitter generator.Emitter, unit models.GenerationUnit, decl *models.ResolvedDeclaration, resolveErr error) error {
	g.summary.UnitsAttempted++
	fullName := unit.Identifier.FullName()

	if resolveErr != nil {
		g.recordFailure(unit, resolveErr)
		return nil
	}

	content, err := emitter.Emit(decl)
	if err != nil {
		g.recordFailure(unit, err)
		return nil
	}

	packageDir := filepath.Join(outputDir, unit.Identifier.Package)
	if err := g.files.FileOps().EnsureDir(packageDir); err != nil {
		g.diagnostics.Error("Failed to create output directory %s: %v", packageDir, err)
		return err
	}

	outputFile := filepath.Join(packageDir, unit.Identifier.Name+emitter.FileExtension())
	if err := g.files.FileOps().WriteFile(outputFile, []byte(content), 0644); err != nil {
		g.recordFailure(unit, err)
		return nil
	}

	g.summary.UnitsGenerated++
	g.summary.GeneratedFiles = append(g.summary.GeneratedFiles, outputFile)
	g.diagnostics.Success("Generated interface for %s", fullName)
	g.diagnostics.Debug("Wrote %s", outputFile)
	return nil
}

func (g *Generator) recordFailure(unit models.GenerationUnit, err error) {
	g.diagnostics.Error("Failed to generate %s %s: %v", unit.Role, unit.Identifier.FullName(), err)
	g.summary.Failures = append(g.summary.Failures, models.UnitFailure{
		Type: unit.Identifier.FullName(),
		Role: unit.Role,
		Err:  err,
	})
}

func sortByFullName(ids []models.TypeIdentifier) {
	sort.Slice(ids, func(i, j int) bool {
		return ids[i].FullName() < ids[j].FullName()
	})
}
