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
)

// discardSink accepts everything and keeps nothing. Unlike the other sinks
// it carries no trait; identity queries on it go through the identifier
// recorded at registration time.
type discardSink struct {
	id string
}

func (s *discardSink) Configure(map[string]any) error {
	s.id = "sink-" + uuid.NewString()
	return nil
}

func (s *discardSink) Write(ctx context.Context, _ Record) error {
	return ctx.Err()
}

func (s *discardSink) InstanceID() string { return s.id }

func (s *discardSink) Close() error { return nil }
