package config

import (
	"fmt"
	"path"

	quillerrors "github.com/alexisbeaulieu97/quill/pkg/errors"
)

// ValidateConfig performs structural and cross-field validation on an entire configuration.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return quillerrors.NewValidationError("config", "configuration is nil", nil)
	}

	v := validatorInstance()
	if err := v.Struct(cfg); err != nil {
		return convertValidationError(err)
	}

	slugIndex := make(map[string]int, len(cfg.Pages))
	for i, page := range cfg.Pages {
		s := page.ResolvedSlug()
		if s == "" {
			return quillerrors.NewValidationError(fieldForPage(i, "slug"), fmt.Sprintf("cannot derive a slug from title %q", page.Title), nil)
		}
		if prev, exists := slugIndex[s]; exists {
			return quillerrors.NewValidationError(fieldForPage(i, "slug"), fmt.Sprintf("duplicate slug %q (also used by pages[%d])", s, prev), nil)
		}
		slugIndex[s] = i
	}

	paths := make(map[string]struct{}, len(cfg.Nav))
	for i, item := range cfg.Nav {
		p := path.Clean(item.Path)
		if _, exists := paths[p]; exists {
			return quillerrors.NewValidationError(fieldForNav(i, "path"), fmt.Sprintf("duplicate nav path %q", item.Path), nil)
		}
		paths[p] = struct{}{}
	}

	return nil
}

// ValidateParallel checks a page concurrency override against the range the
// site file accepts for build.parallel.
func ValidateParallel(n int) error {
	if n < 1 || n > MaxParallel {
		return quillerrors.NewValidationError("parallel", fmt.Sprintf("must be between 1 and %d, got %d", MaxParallel, n), nil)
	}
	return nil
}
