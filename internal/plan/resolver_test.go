package plan

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"import-planner/internal/diagnostic"
	"import-planner/internal/pending"
	"import-planner/internal/preset"
	"import-planner/internal/project"
	"import-planner/internal/remap"
	"import-planner/internal/settings"
)

type harness struct {
	resolver *Resolver
	channel  *pending.Channel[ImportSettings]
	store    *settings.MemoryStore
	catalog  *preset.MemoryCatalog
	requests []ChooserRequest
	reports  []diagnostic.Diagnostics
}

type harnessConfig struct {
	info      project.Info
	preParsed bool
	mode      string
	chooser   func(req ChooserRequest) (Decision, bool)
	catalog   *preset.MemoryCatalog
	store     *settings.MemoryStore
}

func threeFilamentProject() project.Info {
	return project.Info{
		FilamentCount:       3,
		FilamentColors:      []string{"#FF0000", "#00FF00", "#0000FF"},
		PrinterPresetName:   "Bambu Lab X1 Carbon 0.4 nozzle",
		FilamentPresetNames: []string{"Bambu PLA Basic", "Generic PLA", "Bambu PLA Basic"},
		HasPrinterSettings:  true,
		HasFilamentSettings: true,
	}
}

func testCatalog() *preset.MemoryCatalog {
	return preset.NewMemoryCatalog(
		[]preset.Descriptor{
			{Name: "Bambu Lab X1 Carbon 0.4 nozzle", Vendor: "Bambu Lab", IsSystem: true, IsVisible: true, IsCompatible: true},
			{Name: "My Voron", IsVisible: true, IsCompatible: true},
		},
		[]preset.Descriptor{
			{Name: "Generic PLA", Vendor: "Generic", Type: "PLA", IsSystem: true, IsVisible: true, IsCompatible: true},
			{Name: "Bambu PLA Basic", Vendor: "Bambu Lab", Type: "PLA", IsSystem: true, IsVisible: true, IsCompatible: true},
			{Name: "My Silk", IsVisible: true, IsCompatible: true},
		},
	)
}

func newHarness(t *testing.T, cfg harnessConfig) *harness {
	t.Helper()

	h := &harness{
		channel: pending.NewChannel[ImportSettings](),
		store:   cfg.store,
		catalog: cfg.catalog,
	}

	if h.store == nil {
		h.store = settings.NewMemoryStore(map[string]any{settings.KeyLoadBehaviour: cfg.mode})
	}

	if h.catalog == nil {
		h.catalog = testCatalog()
	}

	choose := cfg.chooser
	if choose == nil {
		choose = func(req ChooserRequest) (Decision, bool) { return req.Defaults(), true }
	}

	resolver, err := NewResolver(Dependencies{
		Parser: project.PreParserFunc(func(string) (project.Info, bool) {
			if !cfg.preParsed {
				return project.Info{}, false
			}

			return cfg.info.Clone(), true
		}),
		Catalog: h.catalog,
		Store:   h.store,
		Chooser: ChooserFunc(func(req ChooserRequest) (Decision, bool) {
			h.requests = append(h.requests, req)
			return choose(req)
		}),
		Pending: h.channel,
		Reporter: ReporterFunc(func(_ string, diags diagnostic.Diagnostics) {
			h.reports = append(h.reports, diags)
		}),
	}, DefaultConfig())
	require.NoError(t, err)

	h.resolver = resolver

	return h
}

func modePtr(m settings.BehaviorMode) *settings.BehaviorMode {
	return &m
}

func TestNewResolver_MissingDependencies(t *testing.T) {
	_, err := NewResolver(Dependencies{}, DefaultConfig())
	require.Error(t, err)

	for _, want := range []string{"parser", "catalog", "settings store", "chooser", "pending channel"} {
		assert.Contains(t, err.Error(), want)
	}
}

func TestNewResolver_InvalidCacheSize(t *testing.T) {
	cfg := DefaultConfig()
	cfg.RankCacheSize = 0

	_, err := NewResolver(Dependencies{
		Parser:  project.PreParserFunc(func(string) (project.Info, bool) { return project.Info{}, false }),
		Catalog: testCatalog(),
		Store:   settings.NewMemoryStore(nil),
		Chooser: ChooserFunc(func(req ChooserRequest) (Decision, bool) { return Decision{}, false }),
		Pending: pending.NewChannel[ImportSettings](),
	}, cfg)
	require.Error(t, err)
}

// Cancelling clears any stale payload and persists nothing.
func TestResolve_AlwaysAskCancelled(t *testing.T) {
	h := newHarness(t, harnessConfig{
		info:      threeFilamentProject(),
		preParsed: true,
		mode:      settings.OptionAlwaysAsk,
		chooser:   func(ChooserRequest) (Decision, bool) { return Decision{}, false },
	})

	h.channel.Set(ImportSettings{ProjectFilamentCount: 9})

	got := h.resolver.Resolve("cube.3mf", nil)

	assert.Equal(t, LoadTypeUnknown, got)
	assert.False(t, h.channel.Has())
	assert.Equal(t, ImportSettings{}, h.channel.Get())

	_, persisted := h.store.Int(settings.KeyImportAction)
	assert.False(t, persisted)
}

func TestResolve_LoadGeometryOnly(t *testing.T) {
	h := newHarness(t, harnessConfig{
		info:      threeFilamentProject(),
		preParsed: true,
		mode:      settings.OptionLoadGeometry,
	})

	got := h.resolver.Resolve("cube.3mf", nil)

	assert.Equal(t, LoadTypeLoadGeometry, got)
	require.True(t, h.channel.Has())

	s := h.channel.Get()
	assert.False(t, s.ImportPrinterSettings)
	assert.False(t, s.ImportFilamentSettings)
	assert.Empty(t, s.FilamentColorRemapping)
	assert.Equal(t, 3, s.ProjectFilamentCount)
	assert.Equal(t, []string{"#FF0000", "#00FF00", "#0000FF"}, s.ProjectFilamentColors)
	assert.Empty(t, s.ProjectPrinterName)
	assert.Empty(t, s.ProjectFilamentPresetNames)
	assert.Empty(t, s.ReassignPrinter)
	assert.Empty(t, h.requests)
	require.NoError(t, s.Validate())
}

func TestResolve_LoadGeometryOnlyPreParseFailed(t *testing.T) {
	h := newHarness(t, harnessConfig{mode: settings.OptionLoadGeometry})

	out := h.resolver.ResolveDetailed("broken.3mf", nil)

	assert.Equal(t, LoadTypeLoadGeometry, out.LoadType)
	assert.False(t, out.PreParsed)
	assert.False(t, out.Written)
	assert.False(t, h.channel.Has())
	assert.True(t, out.Diagnostics.Has(diagnostic.CodePreParseFailed))
}

func TestResolve_PreParseFailureLeavesPreviousPayload(t *testing.T) {
	h := newHarness(t, harnessConfig{mode: settings.OptionLoadAll})
	h.channel.Set(ImportSettings{ProjectFilamentCount: 2})

	got := h.resolver.Resolve("broken.3mf", nil)

	assert.Equal(t, LoadTypeOpenProject, got)
	require.True(t, h.channel.Has())
	assert.Equal(t, 2, h.channel.Get().ProjectFilamentCount)
}

func TestResolve_OpenAsProject(t *testing.T) {
	for _, mode := range []string{"", settings.OptionLoadAll, "nonsense"} {
		t.Run("mode="+mode, func(t *testing.T) {
			h := newHarness(t, harnessConfig{
				info:      threeFilamentProject(),
				preParsed: true,
				mode:      mode,
			})

			out := h.resolver.ResolveDetailed("cube.3mf", nil)

			assert.Equal(t, LoadTypeOpenProject, out.LoadType)
			assert.Equal(t, settings.OpenAsProject, out.Mode)
			assert.True(t, out.Written)
			assert.NotEmpty(t, out.RequestID)

			s := h.channel.Get()
			assert.True(t, s.ImportPrinterSettings)
			assert.True(t, s.ImportFilamentSettings)
			assert.Empty(t, s.FilamentColorRemapping)
			assert.Equal(t, "Bambu Lab X1 Carbon 0.4 nozzle", s.ProjectPrinterName)
			assert.Equal(t, []string{"Bambu PLA Basic", "Generic PLA", "Bambu PLA Basic"}, s.ProjectFilamentPresetNames)
			assert.True(t, s.ProjectHasPrinterSettings)
			assert.True(t, s.ProjectHasFilamentSettings)
			assert.Empty(t, h.requests)
			assert.Empty(t, h.reports)
		})
	}
}

// An unknown project printer still opens the project, with a warning.
func TestResolve_OpenAsProjectPrinterNotFound(t *testing.T) {
	info := threeFilamentProject()
	info.PrinterPresetName = "X1C"

	h := newHarness(t, harnessConfig{info: info, preParsed: true, mode: settings.OptionLoadAll})

	out := h.resolver.ResolveDetailed("cube.3mf", nil)

	assert.Equal(t, LoadTypeOpenProject, out.LoadType)
	require.True(t, h.channel.Has())
	assert.Equal(t, "X1C", h.channel.Get().ProjectPrinterName)
	assert.True(t, out.Diagnostics.Has(diagnostic.CodePrinterNotFound))

	require.Len(t, h.reports, 1)
	assert.True(t, h.reports[0].Has(diagnostic.CodePrinterNotFound))
}

func TestResolve_OverrideWins(t *testing.T) {
	h := newHarness(t, harnessConfig{
		info:      threeFilamentProject(),
		preParsed: true,
		mode:      settings.OptionAlwaysAsk,
	})

	got := h.resolver.Resolve("cube.3mf", modePtr(settings.LoadGeometryOnly))

	assert.Equal(t, LoadTypeLoadGeometry, got)
	assert.Empty(t, h.requests)
}

func TestResolve_AlwaysAskAcceptDefaults(t *testing.T) {
	h := newHarness(t, harnessConfig{
		info:      threeFilamentProject(),
		preParsed: true,
		mode:      settings.OptionAlwaysAsk,
	})

	got := h.resolver.Resolve("cube.3mf", nil)

	assert.Equal(t, LoadTypeOpenProject, got)
	require.Len(t, h.requests, 1)

	req := h.requests[0]
	assert.Equal(t, "cube.3mf", req.Path)
	assert.True(t, req.PreParsed)
	assert.Equal(t, LoadTypeOpenProject, req.DefaultAction)
	require.Len(t, req.Slots, 3)
	assert.Equal(t, remap.Color{G: 255}, req.Slots[1].Color)
	assert.Equal(t, []string{"My Voron", "Bambu Lab X1 Carbon 0.4 nozzle"}, req.Printers.Entries.Labels())
	assert.Empty(t, req.Diagnostics.All())

	s := h.channel.Get()
	assert.True(t, s.ImportPrinterSettings)
	assert.True(t, s.ImportFilamentSettings)
	assert.Equal(t, "Bambu Lab X1 Carbon 0.4 nozzle", s.ProjectPrinterName)

	action, ok := h.store.Int(settings.KeyImportAction)
	require.True(t, ok)
	assert.Equal(t, 1, action)
}

func TestResolve_AlwaysAskRemapAndReassign(t *testing.T) {
	h := newHarness(t, harnessConfig{
		info:      threeFilamentProject(),
		preParsed: true,
		mode:      settings.OptionAlwaysAsk,
		chooser: func(req ChooserRequest) (Decision, bool) {
			slots := req.Slots
			if err := slots[0].SelectName("Generic PLA"); err != nil {
				return Decision{}, false
			}

			return Decision{
				Action:                 LoadTypeOpenProject,
				ImportPrinterSettings:  false,
				ImportFilamentSettings: false,
				ReassignPrinter:        "My Voron",
				FilamentRemapping:      remap.Remapping(slots),
			}, true
		},
	})

	got := h.resolver.Resolve("cube.3mf", nil)

	assert.Equal(t, LoadTypeOpenProject, got)

	s := h.channel.Get()
	assert.Equal(t, "My Voron", s.ReassignPrinter)
	assert.Equal(t, map[int]string{1: "Generic PLA", 2: "My Silk", 3: "My Silk"}, s.FilamentColorRemapping, spew.Sdump(s))
	assert.Equal(t, 3, s.ProjectFilamentCount)
	assert.Equal(t, "Bambu Lab X1 Carbon 0.4 nozzle", s.ProjectPrinterName)
	require.NoError(t, s.Validate())
}

func TestResolve_AlwaysAskNormalizesContradictions(t *testing.T) {
	h := newHarness(t, harnessConfig{
		info:      threeFilamentProject(),
		preParsed: true,
		mode:      settings.OptionAlwaysAsk,
		chooser: func(ChooserRequest) (Decision, bool) {
			return Decision{
				Action:                 LoadTypeOpenProject,
				ImportPrinterSettings:  true,
				ImportFilamentSettings: false,
				ReassignPrinter:        "My Voron",
				FilamentRemapping:      map[int]string{0: "x", 2: "Generic PLA", 4: "y"},
			}, true
		},
	})

	out := h.resolver.ResolveDetailed("cube.3mf", nil)

	s := h.channel.Get()
	assert.Empty(t, s.ReassignPrinter)
	assert.Equal(t, map[int]string{2: "Generic PLA"}, s.FilamentColorRemapping)
	require.NoError(t, s.Validate())
	assert.True(t, out.Diagnostics.Has(diagnostic.CodeRemapOutOfRange))
	assert.Len(t, out.Diagnostics.Warnings, 2)
	assert.Len(t, out.Diagnostics.ForSlot(4), 1)
	assert.Empty(t, out.Diagnostics.ForSlot(2))
}

func TestResolve_AlwaysAskLoadGeometry(t *testing.T) {
	// The user's choices travel with a geometry load just as with a
	// project load.
	h := newHarness(t, harnessConfig{
		info:      threeFilamentProject(),
		preParsed: true,
		mode:      settings.OptionAlwaysAsk,
		chooser: func(ChooserRequest) (Decision, bool) {
			return Decision{
				Action:                 LoadTypeLoadGeometry,
				ImportPrinterSettings:  true,
				ImportFilamentSettings: false,
				FilamentRemapping:      map[int]string{1: "Generic PLA"},
			}, true
		},
	})

	got := h.resolver.Resolve("cube.3mf", nil)

	assert.Equal(t, LoadTypeLoadGeometry, got)

	s := h.channel.Get()
	assert.True(t, s.ImportPrinterSettings, "chosen flags are kept for geometry loads")
	assert.False(t, s.ImportFilamentSettings)
	assert.Equal(t, map[int]string{1: "Generic PLA"}, s.FilamentColorRemapping)
	assert.Equal(t, "Bambu Lab X1 Carbon 0.4 nozzle", s.ProjectPrinterName)
	assert.Equal(t, 3, s.ProjectFilamentCount)
	require.NoError(t, s.Validate())

	action, _ := h.store.Int(settings.KeyImportAction)
	assert.Equal(t, 2, action)
}

func TestResolve_AlwaysAskDefaultActionFromStore(t *testing.T) {
	store := settings.NewMemoryStore(map[string]any{
		settings.KeyLoadBehaviour: settings.OptionAlwaysAsk,
		settings.KeyImportAction:  int64(2),
	})

	h := newHarness(t, harnessConfig{info: threeFilamentProject(), preParsed: true, store: store})

	got := h.resolver.Resolve("cube.3mf", nil)

	require.Len(t, h.requests, 1)
	assert.Equal(t, LoadTypeLoadGeometry, h.requests[0].DefaultAction)
	assert.Equal(t, LoadTypeLoadGeometry, got)
}

func TestResolve_AlwaysAskInvalidActionOpensProject(t *testing.T) {
	h := newHarness(t, harnessConfig{
		info:      threeFilamentProject(),
		preParsed: true,
		mode:      settings.OptionAlwaysAsk,
		chooser: func(req ChooserRequest) (Decision, bool) {
			d := req.Defaults()
			d.Action = LoadTypeLoadConfig

			return d, true
		},
	})

	out := h.resolver.ResolveDetailed("cube.3mf", nil)

	assert.Equal(t, LoadTypeOpenProject, out.LoadType)
	assert.True(t, out.Diagnostics.Has(diagnostic.CodeUnknownAction))
	assert.True(t, h.channel.Has())
}

func TestResolve_AlwaysAskStoreWriteFailure(t *testing.T) {
	store := settings.NewMemoryStore(map[string]any{settings.KeyLoadBehaviour: settings.OptionAlwaysAsk}).ReadOnly()

	h := newHarness(t, harnessConfig{info: threeFilamentProject(), preParsed: true, store: store})

	out := h.resolver.ResolveDetailed("cube.3mf", nil)

	assert.Equal(t, LoadTypeOpenProject, out.LoadType)
	assert.True(t, out.Written)
	assert.True(t, out.Diagnostics.Has(diagnostic.CodeStoreWriteFailed))
}

func TestResolve_AlwaysAskPreParseFailedStillWrites(t *testing.T) {
	h := newHarness(t, harnessConfig{mode: settings.OptionAlwaysAsk})

	out := h.resolver.ResolveDetailed("broken.3mf", nil)

	assert.Equal(t, LoadTypeOpenProject, out.LoadType)
	assert.True(t, out.Written)
	require.Len(t, h.requests, 1)
	assert.False(t, h.requests[0].PreParsed)
	assert.Empty(t, h.requests[0].Slots)
	assert.Equal(t, ImportSettings{ImportPrinterSettings: true, ImportFilamentSettings: true}, h.channel.Get())
}

func TestResolve_AlwaysAskPrinterNotFoundReachesChooser(t *testing.T) {
	info := threeFilamentProject()
	info.PrinterPresetName = "X1C"

	h := newHarness(t, harnessConfig{info: info, preParsed: true, mode: settings.OptionAlwaysAsk})

	h.resolver.Resolve("cube.3mf", nil)

	require.Len(t, h.requests, 1)
	assert.True(t, h.requests[0].Diagnostics.Has(diagnostic.CodePrinterNotFound))
	assert.Equal(t, "X1C", h.channel.Get().ProjectPrinterName)
}

// With no offerable filament the selected one is offered instead.
func TestResolve_AlwaysAskEmptyCatalogFallback(t *testing.T) {
	catalog := preset.NewMemoryCatalog(
		[]preset.Descriptor{{Name: "Bambu Lab X1 Carbon 0.4 nozzle", IsSystem: true, IsVisible: true}},
		[]preset.Descriptor{{Name: "Bambu PLA Basic @BBL A1", Vendor: "Bambu Lab", Type: "PLA", IsSystem: true, IsVisible: true}},
	)
	require.NoError(t, catalog.Select(preset.ClassFilament, "Bambu PLA Basic @BBL A1"))

	h := newHarness(t, harnessConfig{
		info:      threeFilamentProject(),
		preParsed: true,
		mode:      settings.OptionAlwaysAsk,
		catalog:   catalog,
		chooser: func(req ChooserRequest) (Decision, bool) {
			d := req.Defaults()
			d.ImportFilamentSettings = false
			d.FilamentRemapping = remap.Remapping(req.Slots)

			return d, true
		},
	})

	h.resolver.Resolve("cube.3mf", nil)

	require.Len(t, h.requests, 1)

	for _, slot := range h.requests[0].Slots {
		presets := slot.Entries.Presets()
		require.Len(t, presets, 1)
		assert.Equal(t, "Bambu PLA Basic @BBL A1", presets[0].Name)
	}

	assert.Equal(t, map[int]string{
		1: "Bambu PLA Basic @BBL A1",
		2: "Bambu PLA Basic @BBL A1",
		3: "Bambu PLA Basic @BBL A1",
	}, h.channel.Get().FilamentColorRemapping)
}

func TestResolve_NeverReturnsLoadConfig(t *testing.T) {
	modes := []settings.BehaviorMode{settings.OpenAsProject, settings.LoadGeometryOnly, settings.AlwaysAsk}
	choosers := map[string]func(ChooserRequest) (Decision, bool){
		"accept": func(req ChooserRequest) (Decision, bool) { return req.Defaults(), true },
		"cancel": func(ChooserRequest) (Decision, bool) { return Decision{}, false },
		"config": func(ChooserRequest) (Decision, bool) { return Decision{Action: LoadTypeLoadConfig}, true },
	}

	for _, preParsed := range []bool{true, false} {
		for _, mode := range modes {
			for name, chooser := range choosers {
				h := newHarness(t, harnessConfig{
					info:      threeFilamentProject(),
					preParsed: preParsed,
					chooser:   chooser,
				})

				out := h.resolver.ResolveDetailed("cube.3mf", modePtr(mode))

				assert.Contains(t,
					[]LoadType{LoadTypeOpenProject, LoadTypeLoadGeometry, LoadTypeUnknown},
					out.LoadType, "mode=%s chooser=%s", mode, name)
				assert.Equal(t, out.Written, h.channel.Has(), "mode=%s chooser=%s", mode, name)

				if out.Written {
					s := h.channel.Get()
					require.NoError(t, s.Validate())

					for k := range s.FilamentColorRemapping {
						assert.True(t, k >= 1 && k <= s.ProjectFilamentCount)
					}
				}
			}
		}
	}
}

func TestResolve_ConsumeOnce(t *testing.T) {
	h := newHarness(t, harnessConfig{info: threeFilamentProject(), preParsed: true})

	h.resolver.Resolve("cube.3mf", nil)

	var loader pending.Reader[ImportSettings] = h.channel

	require.True(t, loader.Has())
	first := loader.Get()
	assert.Equal(t, first, loader.Get())
	loader.Clear()

	assert.False(t, loader.Has())
	assert.Equal(t, ImportSettings{}, loader.Get())
}
