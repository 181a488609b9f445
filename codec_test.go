package rmcodec

import (
	"fmt"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/rawbytedev/rmcodec/internal/sample"
	"github.com/rawbytedev/rmcodec/pkg/control"
	"github.com/rawbytedev/rmcodec/pkg/kind"
	"github.com/rawbytedev/rmcodec/pkg/rm"
)

func TestIdentifierRoundTrip(t *testing.T) {
	c := New(Options{})
	id := sample.Identifier()
	h, err := c.SerializeDvIdentifier(id)
	require.NoError(t, err)
	require.Equal(t, control.Handle(0), h)

	got, err := c.DeserializeDvIdentifier()
	require.NoError(t, err)
	require.Equal(t, id, got)

	// The four strings are laid out back to back in field order.
	x := c.Index()
	var end int
	for f := control.FieldID(0); f < 4; f++ {
		loc, err := x.Field(kind.DvIdentifier, h, f)
		require.NoError(t, err)
		if f > 0 {
			require.Equal(t, end, loc.Offset)
		}
		end = loc.Offset + loc.Length
	}
	require.Equal(t, c.Store().Len(), end)
}

func TestCompositionRoundTrip(t *testing.T) {
	c := New(Options{})
	comp := sample.Composition()
	_, err := c.SerializeComposition(comp)
	require.NoError(t, err)

	got, err := c.DeserializeComposition()
	require.NoError(t, err)
	require.Equal(t, comp, got)

	tree, err := c.DecodeAt(kind.ItemTree, 0)
	require.NoError(t, err)
	require.Equal(t, sample.Tree(), tree)

	r, err := c.Decode(kind.Composition)
	require.NoError(t, err)
	require.Equal(t, comp, r)
}

func TestEveryKindThroughCodec(t *testing.T) {
	c := New(Options{InitialCapacity: 1})
	for k, v := range sample.All() {
		h, err := c.Serialize(v)
		require.NoError(t, err, "%s", k)
		got, err := c.DecodeAt(k, h)
		require.NoError(t, err, "%s", k)
		require.Equal(t, v, got, "%s", k)
	}
}

func TestInvalidRecordWritesNothing(t *testing.T) {
	c := New(Options{})
	_, err := c.Serialize(sample.Identifier())
	require.NoError(t, err)
	before := c.Stats()

	_, err = c.SerializeContribution(sample.Contribution(0))
	require.ErrorIs(t, err, ErrStructuralValidation)
	require.True(t, rm.IsReason(err, rm.ReasonEmpty))
	require.Equal(t, before, c.Stats())

	_, err = Deserialize[rm.Contribution](c)
	require.ErrorIs(t, err, ErrNoInstance)
}

func TestFailedNestedEncodeRollsBack(t *testing.T) {
	c := New(Options{})
	_, err := c.Serialize(sample.Composition())
	require.NoError(t, err)
	store, state := c.Store().Bytes(), c.Index().State()

	broken := sample.Composition()
	obs := sample.Observation()
	obs.Data.Events = nil
	broken.Content = []rm.ContentItem{obs}
	require.NoError(t, broken.Validate(), "only the nested history is invalid")

	_, err = c.Serialize(broken)
	require.ErrorIs(t, err, ErrStructuralValidation)
	require.Equal(t, store, c.Store().Bytes())
	require.Equal(t, state, c.Index().State())

	h, err := c.Serialize(sample.Composition())
	require.NoError(t, err)
	require.Equal(t, control.Handle(1), h)
	got, err := DeserializeAt[rm.Composition](c, 0)
	require.NoError(t, err)
	require.Equal(t, sample.Composition(), got)
}

func TestSerializeRejectsNilAndPointers(t *testing.T) {
	c := New(Options{})
	_, err := c.Serialize(sample.Composition())
	require.NoError(t, err)
	store, state, before := c.Store().Bytes(), c.Index().State(), c.Stats()

	_, err = c.Serialize(nil)
	require.ErrorIs(t, err, ErrMissingValue)
	_, err = c.Serialize((*rm.Composition)(nil))
	require.ErrorIs(t, err, ErrMissingValue)

	comp := sample.Composition()
	comp.Composer = (*rm.PartyIdentified)(nil)
	_, err = c.Serialize(comp)
	require.ErrorIs(t, err, ErrStructuralValidation)
	require.True(t, rm.IsReason(err, rm.ReasonRequired))

	// The pointer is only found after the root has been allocated.
	name := sample.Text("Encounter")
	comp = sample.Composition()
	comp.Name = &name
	_, err = c.Serialize(comp)
	require.ErrorIs(t, err, ErrKindMismatch)

	require.Equal(t, store, c.Store().Bytes())
	require.Equal(t, state, c.Index().State())
	require.Equal(t, before.Instances, c.Stats().Instances)
}

func TestGrowthIsTransparent(t *testing.T) {
	small := New(Options{InitialCapacity: 1})
	big := New(Options{InitialCapacity: 1 << 22})
	doc := sample.Large(40)
	for _, c := range []*Codec{small, big} {
		_, err := c.Serialize(doc)
		require.NoError(t, err)
		got, err := Deserialize[rm.Composition](c)
		require.NoError(t, err)
		require.Equal(t, doc, got)
	}
	require.Equal(t, big.Store().Bytes(), small.Store().Bytes())
	require.Equal(t, big.Index().State(), small.Index().State())
	require.Positive(t, small.Stats().Grows)
	require.Zero(t, big.Stats().Grows)
	require.Greater(t, small.Stats().StoreLen, 4096)
}

func TestReopen(t *testing.T) {
	c := New(Options{})
	_, err := c.Serialize(sample.Composition())
	require.NoError(t, err)
	_, err = c.Serialize(sample.Multimedia())
	require.NoError(t, err)

	reopened := Open(c.Store(), c.Index(), Options{})
	require.NotEqual(t, c.Session(), reopened.Session())
	got, err := Deserialize[rm.Composition](reopened)
	require.NoError(t, err)
	require.Equal(t, sample.Composition(), got)

	// Appending to the copy leaves the original untouched.
	h, err := reopened.Serialize(sample.Identifier())
	require.NoError(t, err)
	_, err = c.DecodeAt(kind.DvIdentifier, h)
	require.ErrorIs(t, err, ErrNoInstance)

	snap, err := c.Snapshot()
	require.NoError(t, err)
	restored, err := OpenSnapshot(snap, Options{})
	require.NoError(t, err)
	mm, err := restored.DeserializeDvMultimedia()
	require.NoError(t, err)
	require.Equal(t, sample.Multimedia(), mm)
	require.Equal(t, c.Stats().Instances, restored.Stats().Instances)

	snap[len(snap)-1] ^= 0xff
	_, err = OpenSnapshot(snap, Options{})
	require.ErrorIs(t, err, ErrSnapshotChecksum)
	_, err = OpenSnapshot([]byte("definitely not a snapshot"), Options{})
	require.ErrorIs(t, err, ErrBadSnapshot)
}

func TestDecodeErrors(t *testing.T) {
	c := New(Options{})
	_, err := c.Decode(kind.Composition)
	require.ErrorIs(t, err, ErrNoInstance)
	_, err = c.DeserializeDvText()
	require.ErrorIs(t, err, ErrNoInstance)

	_, err = c.Serialize(sample.Text("x"))
	require.NoError(t, err)
	_, err = c.DecodeAt(kind.DvText, 5)
	require.ErrorIs(t, err, ErrNoInstance)
	_, err = c.DecodeAt(kind.Invalid, 0)
	require.ErrorIs(t, err, ErrUnknownKind)
}

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := New(Options{Registerer: reg})
	other := New(Options{Registerer: reg})

	for i := 0; i < 2; i++ {
		_, err := c.Serialize(sample.Identifier())
		require.NoError(t, err)
	}
	_, err := c.DeserializeDvIdentifier()
	require.NoError(t, err)
	_, err = c.Serialize(rm.DvIdentifier{})
	require.Error(t, err)
	_, err = c.DeserializeDvText()
	require.Error(t, err)
	_, err = other.Serialize(sample.Text("other"))
	require.NoError(t, err)

	require.Equal(t, 2.0, testutil.ToFloat64(c.metrics.encoded.WithLabelValues("DvIdentifier")))
	require.Equal(t, 1.0, testutil.ToFloat64(c.metrics.decoded.WithLabelValues("DvIdentifier")))
	require.Equal(t, 1.0, testutil.ToFloat64(c.metrics.failures.WithLabelValues("serialize")))
	require.Equal(t, float64(c.Stats().StoreLen), testutil.ToFloat64(c.metrics.storeBytes))
	require.Equal(t, float64(c.Stats().StoreCap), testutil.ToFloat64(c.metrics.storeCapacity))

	// One series per session.
	n, err := testutil.GatherAndCount(reg, "rmcodec_store_bytes")
	require.NoError(t, err)
	require.Equal(t, 2, n)
}

func TestLogging(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	c := New(Options{Logger: zap.New(core)})
	_, err := c.Serialize(sample.Identifier())
	require.NoError(t, err)
	_, err = c.Serialize(sample.Contribution(0))
	require.Error(t, err)

	entries := logs.FilterMessage("serialized").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	require.Equal(t, "DvIdentifier", fields["kind"])
	require.Equal(t, c.Session().String(), fields["session"])
	require.Equal(t, 1, logs.FilterMessage("rejected invalid record").Len())
}

func TestStatsYAML(t *testing.T) {
	c := New(Options{InitialCapacity: 64})
	_, err := c.Serialize(sample.Composition())
	require.NoError(t, err)
	out, err := yaml.Marshal(c.Stats())
	require.NoError(t, err)

	var back Stats
	require.NoError(t, yaml.Unmarshal(out, &back))
	require.Equal(t, c.Stats(), back)
	require.Equal(t, 1, back.Instances["Composition"])
}

func TestIndependentCodecsInParallel(t *testing.T) {
	var g errgroup.Group
	for i := 0; i < 8; i++ {
		i := i
		g.Go(func() error {
			c := New(Options{InitialCapacity: 16 * (i + 1)})
			doc := sample.Large(i + 1)
			if _, err := c.Serialize(doc); err != nil {
				return err
			}
			got, err := Deserialize[rm.Composition](c)
			if err != nil {
				return err
			}
			if len(got.Content) != i+1 {
				return fmt.Errorf("worker %d: %d sections", i, len(got.Content))
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
}
