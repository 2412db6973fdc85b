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
	"sync"

	"github.com/google/uuid"

	"dirpx.dev/ffx"
)

// memorySettings are the raw settings a memory sink accepts.
type memorySettings struct {
	Capacity int `json:"capacity"`
}

// memorySink buffers records in memory. It backs tests and dry runs.
type memorySink struct {
	ffx.Mixin[memorySink]

	id  string
	cap int

	mu   sync.Mutex
	recs []Record
}

func (s *memorySink) Configure(conf map[string]any) error {
	var ms memorySettings
	if err := Decode(conf, &ms); err != nil {
		return err
	}
	if ms.Capacity <= 0 {
		ms.Capacity = 1024
	}
	s.id = "sink-" + uuid.NewString()
	s.cap = ms.Capacity
	return nil
}

func (s *memorySink) Write(ctx context.Context, rec Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	// Oldest records give way when the buffer is full.
	if len(s.recs) >= s.cap {
		s.recs = s.recs[1:]
	}
	s.recs = append(s.recs, rec)
	return nil
}

func (s *memorySink) InstanceID() string { return s.id }

// Close keeps the buffer so a finished run can still be inspected.
func (s *memorySink) Close() error { return nil }

// Records returns a copy of the buffered records.
func (s *memorySink) Records() []Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Record, len(s.recs))
	copy(out, s.recs)
	return out
}
