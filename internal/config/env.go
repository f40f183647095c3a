// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg from the process environment through the `env` and
// `envPrefix` tags of [StructuredConfig]. All malformed variables are
// reported at once, by config field name.
func parseEnv(cfg any) error {
	err := env.Parse(cfg)
	if err == nil {
		return nil
	}

	var agg env.AggregateError
	if !errors.As(err, &agg) {
		return fmt.Errorf("%w: %w", ErrInvalidEnvConfigs, err)
	}

	fields := make([]string, 0, len(agg.Errors))
	for _, e := range agg.Errors {
		var pe env.ParseError
		if errors.As(e, &pe) {
			fields = append(fields, pe.Name)
		}
	}
	if len(fields) == 0 {
		return fmt.Errorf("%w: %w", ErrInvalidEnvConfigs, err)
	}
	return fmt.Errorf("%w: bad value for %s: %w", ErrInvalidEnvConfigs, strings.Join(fields, ", "), err)
}
