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

package strategy_test

import (
	"runtime"
	"sync"
	"testing"

	"dirpx.dev/klass/apis"
	"dirpx.dev/klass/config"
	"dirpx.dev/klass/strategy"
)

// TestNativeStrategy_Concurrent hammers the memoized name cache from many
// goroutines with both naming styles.
func TestNativeStrategy_Concurrent(t *testing.T) {
	s := strategy.NewNativeStrategy()
	host := config.DefaultConfig()
	gocfg := config.NewConfig(config.WithNativeNames(apis.NamesGo))

	values := []any{1, "s", 2.5, []int{}, map[string]bool{}, true}
	wantHost := []string{"number", "string", "number", "table", "table", "boolean"}
	wantGo := []string{"int", "string", "float64", "[]int", "map[string]bool", "bool"}

	wg := sync.WaitGroup{}
	workers := runtime.GOMAXPROCS(0) * 4
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func(id int) {
			defer wg.Done()
			for i := 0; i < 2000; i++ {
				j := (i + id) % len(values)
				if k, _ := s.TryKind(values[j], host); k != wantHost[j] {
					t.Errorf("host kind of %T = %q, want %q", values[j], k, wantHost[j])
					return
				}
				if k, _ := s.TryKind(values[j], gocfg); k != wantGo[j] {
					t.Errorf("go kind of %T = %q, want %q", values[j], k, wantGo[j])
					return
				}
			}
		}(w)
	}
	wg.Wait()
}
