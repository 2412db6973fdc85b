/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package demo

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"dirpx.dev/ffx"
)

// App drives the configured sinks with a bounded record stream.
type App struct {
	cfg   *Config
	log   zerolog.Logger
	sinks []Sink
}

// NewApp creates every configured sink by identifier and configures it.
// Unknown identifiers surface the registry's lookup error verbatim, so the
// caller can tell a typo in the configuration from a sink that failed to
// configure.
func NewApp(cfg *Config) (*App, error) {
	log := NewLogger("demo")

	sinks := make([]Sink, 0, len(cfg.Sinks))
	for _, sc := range cfg.Sinks {
		id, err := sc.TypeID()
		if err != nil {
			return nil, fmt.Errorf("sink %q: %w", sc.Type, err)
		}
		sink, err := ffx.New[Sink](id)
		if err != nil {
			return nil, fmt.Errorf("create sink %q: %w", sc.Type, err)
		}
		if err := sink.Configure(sc.Conf); err != nil {
			return nil, fmt.Errorf("configure sink %q: %w", sc.Type, err)
		}
		log.Info().
			Str("type", string(ffx.TypeIDOf(sink))).
			Str("instance", sink.InstanceID()).
			Msg("sink ready")
		sinks = append(sinks, sink)
	}

	return &App{cfg: cfg, log: log, sinks: sinks}, nil
}

// Sinks exposes the created sinks, mainly for tests.
func (a *App) Sinks() []Sink { return a.sinks }

// Run feeds Emit.Count records to every sink, pacing them by
// Emit.IntervalMS, and stops early when ctx is canceled.
func (a *App) Run(ctx context.Context) error {
	defer a.closeAll()

	interval := time.Duration(a.cfg.Emit.IntervalMS) * time.Millisecond
	for i := 0; i < a.cfg.Emit.Count; i++ {
		rec := Record{
			Source:  a.cfg.Source,
			Kind:    "tick",
			Message: fmt.Sprintf("record %d", i),
			At:      time.Now(),
		}
		for _, s := range a.sinks {
			if err := s.Write(ctx, rec); err != nil {
				if ctx.Err() != nil {
					return nil
				}
				a.log.Error().Str("instance", s.InstanceID()).Err(err).Msg("write failed")
			}
		}
		select {
		case <-ctx.Done():
			return nil
		case <-time.After(interval):
		}
	}
	return nil
}

func (a *App) closeAll() {
	for _, s := range a.sinks {
		if err := s.Close(); err != nil {
			a.log.Error().Str("instance", s.InstanceID()).Err(err).Msg("sink close")
		}
	}
}
