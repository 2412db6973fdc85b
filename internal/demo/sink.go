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
	"time"
)

// Record is one event handed to a sink.
type Record struct {
	Source  string    `json:"source"`
	Kind    string    `json:"kind"`
	Message string    `json:"message"`
	At      time.Time `json:"at"`
}

// Sink consumes records. Implementations register with ffx under a string
// identifier; the application creates them by that identifier from
// configuration, then configures each fresh instance with its raw settings
// map.
type Sink interface {
	// Configure prepares a freshly created instance from its raw settings.
	Configure(conf map[string]any) error
	// Write delivers one record. It honors ctx cancellation.
	Write(ctx context.Context, rec Record) error
	// InstanceID distinguishes instances of the same sink type.
	InstanceID() string
	// Close releases whatever the sink holds.
	Close() error
}
