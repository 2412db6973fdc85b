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
	"fmt"

	"dirpx.dev/ffx"
	"dirpx.dev/ffx/apis"
	"dirpx.dev/ffx/registry"
)

// Identifiers the built-in sinks register under.
const (
	SinkConsole apis.TypeID = "console"
	SinkMemory  apis.TypeID = "memory"
	SinkDiscard apis.TypeID = "discard"
)

// Bootstrap registers the built-in sinks with the global factory.
// Call it once per process, or again after a fresh-storage reset;
// registering on top of an existing bootstrap is a duplicate error.
func Bootstrap() error {
	if _, err := ffx.NewRegistrator[Sink, consoleSink](SinkConsole,
		registry.WithDoc("writes records to the process log")); err != nil {
		return fmt.Errorf("register console sink: %w", err)
	}
	if _, err := ffx.NewRegistrator[Sink, memorySink](SinkMemory,
		registry.WithDoc("buffers records in memory")); err != nil {
		return fmt.Errorf("register memory sink: %w", err)
	}
	if _, err := ffx.NewRegistrator[Sink, discardSink](SinkDiscard,
		registry.WithDoc("accepts and drops records")); err != nil {
		return fmt.Errorf("register discard sink: %w", err)
	}
	return nil
}

// RegisteredSinks lists the sink entries known to the global factory,
// sorted by identifier.
func RegisteredSinks() []registry.Entry[Sink] {
	return ffx.TableOf[Sink]().Entries()
}
