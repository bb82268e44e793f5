// Package benchmarks provides shared helpers for benchmark tests.
package benchmarks

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/comalice/forwardlist"
	"github.com/comalice/forwardlist/internal/scenario"
)

// GenList creates a list holding 0..n-1 in order.
func GenList(n int) *forwardlist.List[int] {
	l := forwardlist.New[int]()
	for i := n - 1; i >= 0; i-- {
		l.PushFront(i)
	}
	return l
}

// GenScenario creates a scenario of n steps cycling through every operation
// while keeping the list non-empty.
func GenScenario(n int) scenario.Config {
	if n < 1 {
		n = 1
	}
	b := scenario.NewBuilder(fmt.Sprintf("gen_%d", n), 1, 2, 3)
	for i := 0; i < n; i++ {
		switch i % 4 {
		case 0:
			b.PushFront(i)
		case 1:
			b.InsertAfter(1, i)
		case 2:
			b.EraseAfter(0)
		case 3:
			b.InsertAfter(0, i)
		}
	}
	return b.MustBuild()
}

// GenScenarioYAML encodes GenScenario(n) as YAML.
func GenScenarioYAML(n int) []byte {
	cfg := GenScenario(n)
	data, err := yaml.Marshal(&cfg)
	if err != nil {
		panic(err)
	}
	return data
}
