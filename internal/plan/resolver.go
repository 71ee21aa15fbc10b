package plan

import (
	"errors"
	"fmt"

	"import-planner/internal/diagnostic"
	"import-planner/internal/logging"
	"import-planner/internal/pending"
	"import-planner/internal/preset"
	"import-planner/internal/project"
	"import-planner/internal/rank"
	"import-planner/internal/remap"
	"import-planner/internal/settings"
)

// ResolutionConfig holds configuration for the resolution process.
type ResolutionConfig struct {
	// Rank holds the vendor and type priorities for filament candidates.
	Rank rank.Config
	// RankCacheSize bounds the number of memoized rankings.
	RankCacheSize int
}

// DefaultConfig returns the default resolution configuration.
func DefaultConfig() ResolutionConfig {
	return ResolutionConfig{
		Rank:          rank.DefaultConfig(),
		RankCacheSize: rank.DefaultCacheSize,
	}
}

// Dependencies are the collaborators a Resolver talks to.
type Dependencies struct {
	Parser  project.PreParser
	Catalog preset.Catalog
	Store   settings.Store
	Chooser Chooser
	Pending pending.Writer[ImportSettings]

	// Reporter is optional.
	Reporter Reporter
	// Logger is optional; records are dropped when nil.
	Logger *logging.Logger
}

func (d Dependencies) validate() error {
	var missing []error

	if d.Parser == nil {
		missing = append(missing, errors.New("parser is required"))
	}

	if d.Catalog == nil {
		missing = append(missing, errors.New("catalog is required"))
	}

	if d.Store == nil {
		missing = append(missing, errors.New("settings store is required"))
	}

	if d.Chooser == nil {
		missing = append(missing, errors.New("chooser is required"))
	}

	if d.Pending == nil {
		missing = append(missing, errors.New("pending channel is required"))
	}

	return errors.Join(missing...)
}

// Outcome describes one resolve call.
type Outcome struct {
	LoadType  LoadType
	Mode      settings.BehaviorMode
	PreParsed bool
	// Written is true when the pending slot received a payload.
	Written bool
	// RequestID identifies the written payload.
	RequestID   string
	Diagnostics diagnostic.Diagnostics
}

// Resolver turns a project path and the configured behavior into a load
// decision and a pending ImportSettings payload.
type Resolver struct {
	deps       Dependencies
	negotiator *remap.Negotiator
	log        *logging.Logger
}

// NewResolver creates a new Resolver.
func NewResolver(deps Dependencies, config ResolutionConfig) (*Resolver, error) {
	if err := deps.validate(); err != nil {
		return nil, fmt.Errorf("invalid resolver dependencies: %w", err)
	}

	ranker, err := rank.NewCache(config.RankCacheSize, config.Rank)
	if err != nil {
		return nil, err
	}

	log := deps.Logger
	if log == nil {
		log = logging.Discard()
	}

	return &Resolver{
		deps:       deps,
		negotiator: remap.NewNegotiator(deps.Catalog, ranker),
		log:        log.WithComponent("import_resolver"),
	}, nil
}

// Resolve decides how to load the archive at path. A non-nil override
// replaces the configured behavior mode for this call.
func (r *Resolver) Resolve(path string, override *settings.BehaviorMode) LoadType {
	return r.ResolveDetailed(path, override).LoadType
}

// ResolveDetailed is Resolve returning the full outcome.
func (r *Resolver) ResolveDetailed(path string, override *settings.BehaviorMode) Outcome {
	out := Outcome{Mode: r.mode(override)}

	info, ok := r.deps.Parser.PreParse(path)
	if !ok {
		info = project.Info{}
		out.Diagnostics.AddWarning(diagnostic.CodePreParseFailed,
			"could not read project info, continuing without it", diagnostic.OnPath(path))
		r.log.Warn("project pre-parse failed", "path", path)
	}

	out.PreParsed = ok

	log := r.log.With("path", path, "mode", out.Mode.String(), "pre_parsed", ok)

	switch out.Mode {
	case settings.LoadGeometryOnly:
		out.LoadType = LoadTypeLoadGeometry
		if ok {
			r.write(&out, geometrySettings(info))
		}
	case settings.AlwaysAsk:
		r.ask(&out, path, info)
	default:
		remap.CheckProjectPrinter(r.deps.Catalog, info.PrinterPresetName, &out.Diagnostics)

		out.LoadType = LoadTypeOpenProject
		if ok {
			r.write(&out, projectSettings(info))
		}
	}

	log.Info("project import resolved",
		"load_type", out.LoadType.String(),
		"written", out.Written,
		"request_id", out.RequestID)

	if r.deps.Reporter != nil && len(out.Diagnostics.All()) > 0 {
		r.deps.Reporter.Report(path, out.Diagnostics)
	}

	return out
}

// mode returns the effective behavior mode.
func (r *Resolver) mode(override *settings.BehaviorMode) settings.BehaviorMode {
	if override != nil {
		return *override
	}

	return settings.ModeFrom(r.deps.Store)
}

// ask runs the interactive branch.
func (r *Resolver) ask(out *Outcome, path string, info project.Info) {
	req := ChooserRequest{
		Path:          path,
		Project:       info.Clone(),
		PreParsed:     out.PreParsed,
		DefaultAction: r.defaultAction(),
	}

	req.Printers = r.negotiator.PrinterChoices(info.PrinterPresetName, &req.Diagnostics)

	if out.PreParsed {
		req.Slots = r.negotiator.Slots(info.FilamentColors, &req.Diagnostics)
	}

	out.Diagnostics.Merge(req.Diagnostics)

	decision, accepted := r.deps.Chooser.Choose(req)
	if !accepted {
		r.deps.Pending.Clear()
		out.LoadType = LoadTypeUnknown
		r.log.Info("project import cancelled", "path", path)

		return
	}

	action := decision.Action
	if !action.Interactive() {
		out.Diagnostics.AddWarning(diagnostic.CodeUnknownAction,
			fmt.Sprintf("chooser returned %s (%d), opening as project", action, int(action)),
			diagnostic.Subject{})
		action = LoadTypeOpenProject
	}

	s := decision.settings()
	s.mergeProject(info)

	for _, slot := range s.normalize() {
		out.Diagnostics.AddWarning(diagnostic.CodeRemapOutOfRange,
			fmt.Sprintf("remapped slot outside [1, %d] ignored", info.FilamentCount),
			diagnostic.OnSlot(slot))
	}

	if err := r.deps.Store.SetInt(settings.KeyImportAction, int(action)); err != nil {
		out.Diagnostics.AddWarning(diagnostic.CodeStoreWriteFailed, err.Error(),
			diagnostic.OnOption(settings.KeyImportAction))
		r.log.Warn("failed to persist import action", "error", err)
	}

	out.LoadType = action
	r.write(out, s)
}

// defaultAction returns the action persisted by the last interactive import.
func (r *Resolver) defaultAction() LoadType {
	if v, ok := r.deps.Store.Int(settings.KeyImportAction); ok {
		if action := LoadType(v); action.Interactive() {
			return action
		}
	}

	return LoadTypeOpenProject
}

// write stores a complete payload in the pending slot.
func (r *Resolver) write(out *Outcome, s ImportSettings) {
	out.RequestID = r.deps.Pending.Set(s)
	out.Written = true
}
