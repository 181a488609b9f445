package rmcodec

import (
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/rawbytedev/rmcodec/internal/sample"
	"github.com/rawbytedev/rmcodec/pkg/rm"
)

func BenchmarkSerializeIdentifier(b *testing.B) {
	id := sample.Identifier()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		c := New(Options{})
		if _, err := c.Serialize(id); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSerializeComposition(b *testing.B) {
	comp := sample.Composition()
	c := New(Options{InitialCapacity: 1 << 20})
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := c.Serialize(comp); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDeserializeComposition(b *testing.B) {
	c := New(Options{})
	if _, err := c.Serialize(sample.Composition()); err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Deserialize[rm.Composition](c); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkRoundTripLarge(b *testing.B) {
	doc := sample.Large(50)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		c := New(Options{})
		if _, err := c.Serialize(doc); err != nil {
			b.Fatal(err)
		}
		if _, err := Deserialize[rm.Composition](c); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSnapshotLarge(b *testing.B) {
	c := New(Options{})
	if _, err := c.Serialize(sample.Large(50)); err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		data, err := c.Snapshot()
		if err != nil {
			b.Fatal(err)
		}
		if _, err := OpenSnapshot(data, Options{}); err != nil {
			b.Fatal(err)
		}
	}
}

// Baseline: a text encoding of the same identifier.
func BenchmarkYAMLIdentifier(b *testing.B) {
	id := sample.Identifier()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		out, err := yaml.Marshal(id)
		if err != nil {
			b.Fatal(err)
		}
		var back rm.DvIdentifier
		if err := yaml.Unmarshal(out, &back); err != nil {
			b.Fatal(err)
		}
	}
}
