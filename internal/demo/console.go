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

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"dirpx.dev/ffx"
)

// consoleSettings are the raw settings a console sink accepts.
type consoleSettings struct {
	Component string `json:"component"`
	Verbose   bool   `json:"verbose"`
}

// consoleSink writes records through the process log.
type consoleSink struct {
	ffx.Mixin[consoleSink]

	id      string
	verbose bool
	log     zerolog.Logger
}

func (s *consoleSink) Configure(conf map[string]any) error {
	var cs consoleSettings
	if err := Decode(conf, &cs); err != nil {
		return err
	}
	if cs.Component == "" {
		cs.Component = "console-sink"
	}
	s.id = "sink-" + uuid.NewString()
	s.verbose = cs.Verbose
	s.log = NewLogger(cs.Component)
	return nil
}

func (s *consoleSink) Write(ctx context.Context, rec Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	ev := s.log.Info()
	if s.verbose {
		ev = ev.Str("instance", s.id).Time("at", rec.At)
	}
	ev.Str("source", rec.Source).Str("kind", rec.Kind).Msg(rec.Message)
	return nil
}

func (s *consoleSink) InstanceID() string { return s.id }

func (s *consoleSink) Close() error { return nil }
