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

package metrics_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"dirpx.dev/klass/builder"
	"dirpx.dev/klass/config"
	"dirpx.dev/klass/metrics"
	"dirpx.dev/klass/object"
)

func TestCollector_CountsLifecycle(t *testing.T) {
	reg := prometheus.NewRegistry()
	col, err := metrics.New(reg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	f := builder.New(config.NewConfig(config.WithObserver(col)), nil)

	a, _ := f.CreateClass("A")
	b, _ := f.ExtendClass("B", a)
	_, _ = f.CreateClass("A") // duplicate, not counted
	for i := 0; i < 3; i++ {
		_, _ = object.Call(b)
	}
	_, _ = object.Call(a)
	_, _ = f.LookupClass("A")
	_, _ = f.LookupClass("B")
	_, _ = f.LookupClass("Z")

	if n, err := testutil.GatherAndCount(reg, "klass_classes_created_total"); err != nil || n != 1 {
		t.Fatalf("GatherAndCount(classes) = (%d,%v), want 1 series", n, err)
	}

	mfs, err := reg.Gather()
	if err != nil {
		t.Fatalf("Gather: %v", err)
	}
	got := map[string]float64{}
	for _, mf := range mfs {
		for _, m := range mf.GetMetric() {
			key := mf.GetName()
			for _, l := range m.GetLabel() {
				key += "/" + l.GetValue()
			}
			got[key] = m.GetCounter().GetValue()
		}
	}

	want := map[string]float64{
		"klass_classes_created_total":     2,
		"klass_instances_created_total/A": 1,
		"klass_instances_created_total/B": 3,
		"klass_class_lookups_total/hit":   2,
		"klass_class_lookups_total/miss":  1,
	}
	for k, v := range want {
		if got[k] != v {
			t.Fatalf("%s = %v, want %v (all: %v)", k, got[k], v, got)
		}
	}
}

func TestNew_DuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	if _, err := metrics.New(reg); err != nil {
		t.Fatalf("first New: %v", err)
	}
	if _, err := metrics.New(reg); err == nil {
		t.Fatal("second New on the same registry must fail")
	}
}

func TestNew_Unregistered(t *testing.T) {
	col, err := metrics.New(nil)
	if err != nil || col == nil {
		t.Fatalf("New(nil) = (%v,%v)", col, err)
	}
	col.ClassLookup("x", false) // must not panic
}
