package hooks

import "github.com/mark3labs/cockup/internal/config"

// Source yields a group of hooks in declaration order.
type Source func() []config.Hook

// Sources lists the hook groups of cfg in the order they are flattened:
// on-start then on-end for each rule, followed by the global phases when
// the configuration has a hooks section.
func Sources(cfg *config.Config) []Source {
	if cfg == nil {
		return nil
	}

	var sources []Source
	for _, rule := range cfg.Rules {
		sources = append(sources, fixed(rule.OnStart), fixed(rule.OnEnd))
	}
	if cfg.Hooks != nil {
		for _, phase := range config.Phases {
			sources = append(sources, fixed(cfg.Hooks.Phase(phase)))
		}
	}
	return sources
}

// Collect concatenates the hooks of every source, in order.
func Collect(sources ...Source) []config.Hook {
	var all []config.Hook
	for _, src := range sources {
		all = append(all, src()...)
	}
	return all
}

// Flatten returns every hook in cfg as one ordered list. Hooks are not
// validated here.
func Flatten(cfg *config.Config) []config.Hook {
	return Collect(Sources(cfg)...)
}

// RuleHooks returns the on-start then on-end hooks of one rule.
func RuleHooks(rule config.Rule) []config.Hook {
	return Collect(fixed(rule.OnStart), fixed(rule.OnEnd))
}

// FindByName returns the hooks named name, in order.
func FindByName(list []config.Hook, name string) []config.Hook {
	var found []config.Hook
	for _, h := range list {
		if h.Name == name {
			found = append(found, h)
		}
	}
	return found
}

func fixed(list []config.Hook) Source {
	return func() []config.Hook { return list }
}
