// Package rmcodec is a binary codec for the clinical reference model.
//
// A Codec owns one growable byte store and the control index that locates
// every field written to it. Serialize appends a validated record, with every
// record nested inside it, and returns its handle. DecodeAt rebuilds any
// instance from its (kind, handle); Deserialize is the convenience form that
// reads back the most recently serialized instance of a kind.
//
//	c := rmcodec.New(rmcodec.Options{})
//	if _, err := c.Serialize(composition); err != nil { ... }
//	got, err := rmcodec.Deserialize[rm.Composition](c)
//
// A Codec is not safe for concurrent use. Independent Codecs share nothing, so
// parallel work uses one Codec per goroutine.
package rmcodec

import (
	"errors"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/segmentio/ksuid"
	"go.uber.org/zap"

	"github.com/rawbytedev/rmcodec/pkg/bytestore"
	"github.com/rawbytedev/rmcodec/pkg/control"
	"github.com/rawbytedev/rmcodec/pkg/kind"
	"github.com/rawbytedev/rmcodec/pkg/record"
	"github.com/rawbytedev/rmcodec/pkg/rm"
	"github.com/rawbytedev/rmcodec/pkg/snapshot"
)

// DefaultCapacity is the initial store size when Options leaves it unset.
const DefaultCapacity = 1024

type Options struct {
	// InitialCapacity of the store in bytes. The store grows as needed.
	InitialCapacity int
	// Logger receives debug events per operation. Nil disables logging.
	Logger *zap.Logger
	// Registerer for the codec's metrics. Nil leaves them unregistered.
	Registerer prometheus.Registerer
	// Namespace of the metrics, "rmcodec" when empty.
	Namespace string
}

type Codec struct {
	session ksuid.KSUID
	store   *bytestore.Store
	index   *control.Index
	enc     *record.Encoder
	dec     *record.Decoder
	log     *zap.Logger
	metrics *metrics
}

// New returns a codec with an empty store.
func New(opts Options) *Codec {
	capacity := opts.InitialCapacity
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return open(bytestore.New(capacity), control.New(), opts)
}

// Open returns a codec over copies of a store and index produced by another
// codec. The new codec decodes exactly what the original would, and appends
// after it.
func Open(s *bytestore.Store, x *control.Index, opts Options) *Codec {
	return open(s.Clone(), x.Clone(), opts)
}

// OpenSnapshot re-opens a codec from the bytes returned by Snapshot.
func OpenSnapshot(data []byte, opts Options) (*Codec, error) {
	s, x, err := snapshot.Decode(data)
	if err != nil {
		return nil, err
	}
	return open(s, x, opts), nil
}

func open(s *bytestore.Store, x *control.Index, opts Options) *Codec {
	id := ksuid.New()
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	reg := record.Default()
	c := &Codec{
		session: id,
		store:   s,
		index:   x,
		enc:     record.NewEncoder(s, x, reg),
		dec:     record.NewDecoder(s, x, reg),
		log:     log.With(zap.String("session", id.String())),
		metrics: newMetrics(opts.Registerer, opts.Namespace, id),
	}
	c.metrics.observeStore(s)
	return c
}

// Session identifies this codec in logs and metric labels.
func (c *Codec) Session() ksuid.KSUID { return c.session }

// Serialize validates v and every record nested in it, writes them, and
// returns the handle of v. A failed call leaves the store and index exactly as
// they were.
func (c *Codec) Serialize(v rm.Record) (control.Handle, error) {
	start := time.Now()
	if rm.IsNil(v) {
		c.metrics.failures.WithLabelValues("serialize").Inc()
		return 0, fmt.Errorf("%w: %T", record.ErrMissingValue, v)
	}
	k := v.Kind()
	mark := c.store.Len()
	cp := c.index.Checkpoint()
	h, err := c.enc.Encode(v)
	if err != nil {
		c.metrics.failures.WithLabelValues("serialize").Inc()
		if rerr := c.rollback(mark, cp); rerr != nil {
			return 0, fmt.Errorf("%w (rollback: %v)", err, rerr)
		}
		msg := "serialize failed"
		if errors.Is(err, rm.ErrStructuralValidation) {
			msg = "rejected invalid record"
		}
		c.log.Debug(msg, zap.Stringer("kind", k), zap.Error(err))
		return 0, err
	}
	c.metrics.encoded.WithLabelValues(k.String()).Inc()
	c.metrics.observeStore(c.store)
	c.log.Debug("serialized",
		zap.Stringer("kind", k),
		zap.Uint32("handle", uint32(h)),
		zap.Int("bytes", c.store.Len()-mark),
		zap.Duration("took", time.Since(start)),
	)
	return h, nil
}

func (c *Codec) rollback(mark int, cp control.Checkpoint) error {
	if err := c.store.Truncate(mark); err != nil {
		return err
	}
	return c.index.Rollback(cp)
}

// DecodeAt rebuilds instance h of kind k, with every record it refers to.
func (c *Codec) DecodeAt(k kind.Kind, h control.Handle) (rm.Record, error) {
	r, err := c.dec.Decode(k, h)
	c.observeDecode(k, h, err)
	if err != nil {
		return nil, err
	}
	return r, nil
}

// Decode rebuilds the most recently serialized instance of k.
func (c *Codec) Decode(k kind.Kind) (rm.Record, error) {
	h, err := c.index.Last(k)
	if err != nil {
		return nil, err
	}
	return c.DecodeAt(k, h)
}

// Deserialize rebuilds the most recently serialized T. T must be a concrete
// record kind such as rm.Composition, not one of the rm interfaces.
func Deserialize[T rm.Record](c *Codec) (T, error) {
	var zero T
	h, err := c.index.Last(zero.Kind())
	if err != nil {
		return zero, err
	}
	return DeserializeAt[T](c, h)
}

// DeserializeAt rebuilds the T with handle h.
func DeserializeAt[T rm.Record](c *Codec, h control.Handle) (T, error) {
	v, err := record.DecodeAs[T](c.dec, h)
	c.observeDecode(v.Kind(), h, err)
	return v, err
}

func (c *Codec) observeDecode(k kind.Kind, h control.Handle, err error) {
	if err != nil {
		c.metrics.failures.WithLabelValues("deserialize").Inc()
		c.log.Debug("deserialize failed", zap.Stringer("kind", k), zap.Uint32("handle", uint32(h)), zap.Error(err))
		return
	}
	c.metrics.decoded.WithLabelValues(k.String()).Inc()
	c.log.Debug("deserialized", zap.Stringer("kind", k), zap.Uint32("handle", uint32(h)))
}

// Store returns a copy of the encoded bytes region.
func (c *Codec) Store() *bytestore.Store { return c.store.Clone() }

// Index returns a copy of the control index.
func (c *Codec) Index() *control.Index { return c.index.Clone() }

// Snapshot frames the current store and index for OpenSnapshot.
func (c *Codec) Snapshot() ([]byte, error) {
	return snapshot.Encode(c.store, c.index)
}

type Stats struct {
	Session   string         `yaml:"session"`
	Instances map[string]int `yaml:"instances"`
	Entries   int            `yaml:"entries"`
	StoreLen  int            `yaml:"store_len"`
	StoreCap  int            `yaml:"store_cap"`
	Grows     int            `yaml:"grows"`
}

func (c *Codec) Stats() Stats {
	st := Stats{
		Session:   c.session.String(),
		Instances: make(map[string]int),
		Entries:   c.index.Len(),
		StoreLen:  c.store.Len(),
		StoreCap:  c.store.Cap(),
		Grows:     c.store.Grows(),
	}
	for _, k := range c.index.Kinds() {
		st.Instances[k.String()] = c.index.Count(k)
	}
	return st
}
