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

// Package metrics exposes class and instance lifecycle counters to Prometheus.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"dirpx.dev/klass/apis"
	"dirpx.dev/klass/object"
)

const namespace = "klass"

// Collector is an apis.Observer backed by Prometheus counters.
type Collector struct {
	classesCreated   prometheus.Counter
	instancesCreated *prometheus.CounterVec
	classLookups     *prometheus.CounterVec
}

// Ensure Collector implements apis.Observer.
var _ apis.Observer = (*Collector)(nil)

// New creates a Collector and registers its metrics with reg.
// A nil reg leaves the metrics unregistered.
func New(reg prometheus.Registerer) (*Collector, error) {
	c := &Collector{
		classesCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "classes_created_total",
			Help:      "Total number of classes registered",
		}),
		instancesCreated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "instances_created_total",
			Help:      "Total number of instances constructed, by class",
		}, []string{"class"}),
		classLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "class_lookups_total",
			Help:      "Total number of class lookups by name, by result",
		}, []string{"result"}),
	}
	if reg == nil {
		return c, nil
	}
	for _, m := range []prometheus.Collector{c.classesCreated, c.instancesCreated, c.classLookups} {
		if err := reg.Register(m); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// ClassCreated counts a registered class.
func (c *Collector) ClassCreated(*object.Class) {
	c.classesCreated.Inc()
}

// InstanceCreated counts a constructed instance under its class name.
func (c *Collector) InstanceCreated(i *object.Instance) {
	c.instancesCreated.WithLabelValues(i.ClassName()).Inc()
}

// ClassLookup counts a lookup as "hit" or "miss".
func (c *Collector) ClassLookup(_ string, found bool) {
	result := "miss"
	if found {
		result = "hit"
	}
	c.classLookups.WithLabelValues(result).Inc()
}
