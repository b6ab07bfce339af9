package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate is the startup gate: a broken configuration aborts before any
// extraction runs. Everything downstream is best-effort, this is not.
func Validate(cfg Config) error {
	var errs []string

	for i, s := range cfg.Sources {
		if strings.TrimSpace(s.Repo) == "" {
			errs = append(errs, fmt.Sprintf("sources[%d].repo is required", i))
		}
		if strings.TrimSpace(s.Path) == "" {
			errs = append(errs, fmt.Sprintf("sources[%d].path is required", i))
		}
	}

	if cfg.LinkedIn.Enabled {
		if cfg.LinkedIn.Pages < 1 {
			errs = append(errs, "linkedin.pages must be >= 1")
		}
		for i, q := range cfg.LinkedIn.Queries {
			if strings.TrimSpace(q.Keywords) == "" {
				errs = append(errs, fmt.Sprintf("linkedin.queries[%d].keywords is required", i))
			}
		}
	}

	if len(errs) > 0 {
		return errors.New("config validation failed:\n- " + strings.Join(errs, "\n- "))
	}
	return nil
}
