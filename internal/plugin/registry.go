package plugin

import (
	"github.com/AgileCatalystDV/ai-threat-model/internal/model"
	"github.com/AgileCatalystDV/ai-threat-model/internal/plot4ai"
)

// Registry maps system types to plugin instances and is the dispatch
// point for all callers. Registration for an already-registered system
// type replaces the previous plugin (last registration wins).
//
// The registry is not internally synchronized. Expected usage is
// single-writer-at-startup: register everything before any concurrent
// reads, and serialize Register/Clear externally if loading and
// analysis can overlap.
type Registry struct {
	byType      map[model.SystemType]Plugin
	byFramework map[model.Framework]Plugin
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		byType:      make(map[model.SystemType]Plugin),
		byFramework: make(map[model.Framework]Plugin),
	}
}

// Register adds a plugin under its system type and all of its
// supported frameworks.
func (r *Registry) Register(p Plugin) {
	r.byType[p.SystemType()] = p
	for _, f := range p.SupportedFrameworks() {
		r.byFramework[f] = p
	}
}

// Get returns the plugin for a system type, or nil if none is
// registered. A nil result is a first-class outcome: callers skip
// analysis and warn rather than fail.
func (r *Registry) Get(systemType model.SystemType) Plugin {
	return r.byType[systemType]
}

// GetByFramework returns the plugin supporting a framework, or nil.
// This is how the PLOT4AI plugin is reached, since it shares its
// system type with the LLM plugin.
func (r *Registry) GetByFramework(framework model.Framework) Plugin {
	return r.byFramework[framework]
}

// IsRegistered reports whether a plugin exists for the system type.
func (r *Registry) IsRegistered(systemType model.SystemType) bool {
	_, ok := r.byType[systemType]
	return ok
}

// List returns a copy of the system-type mapping.
func (r *Registry) List() map[model.SystemType]Plugin {
	out := make(map[model.SystemType]Plugin, len(r.byType))
	for k, v := range r.byType {
		out[k] = v
	}
	return out
}

// Clear removes all registrations. Exists for test isolation between
// independent analysis runs.
func (r *Registry) Clear() {
	r.byType = make(map[model.SystemType]Plugin)
	r.byFramework = make(map[model.Framework]Plugin)
}

// Options configures default plugin construction.
type Options struct {
	// PatternsDir is the root of the pattern override tree; each
	// plugin reads its own subdirectory. Empty means built-ins only.
	PatternsDir string

	// Deck is the PLOT4AI card deck. Nil leaves the PLOT4AI plugin
	// with an empty catalog, which degrades to zero findings.
	Deck *plot4ai.Deck
}

// RegisterDefaults constructs and registers the full plugin set. The
// PLOT4AI plugin goes first: it shares the llm-app system type with
// the LLM plugin, which must win the by-type slot while the deck
// plugin stays reachable through the framework lookup.
func RegisterDefaults(r *Registry, opts Options) {
	r.Register(NewPlot4AIPlugin(opts.Deck))
	r.Register(NewLLMPlugin(opts.PatternsDir))
	r.Register(NewAgenticPlugin(opts.PatternsDir))
	r.Register(NewMultiAgentPlugin(opts.PatternsDir))
}
