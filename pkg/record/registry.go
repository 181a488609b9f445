package record

import (
	"fmt"
	"sort"
	"sync"

	"github.com/rawbytedev/rmcodec/pkg/kind"
)

// Registry maps each kind to its codec. It is immutable once built and may be
// shared by any number of encoders and decoders.
type Registry struct {
	codecs map[kind.Kind]Codec
}

// NewRegistry builds a registry from codecs. Registering a kind twice is an error.
func NewRegistry(codecs ...Codec) (*Registry, error) {
	r := &Registry{codecs: make(map[kind.Kind]Codec, len(codecs))}
	for _, c := range codecs {
		if !c.Kind().Valid() {
			return nil, fmt.Errorf("%w: %s", ErrUnknownKind, c.Kind())
		}
		if _, dup := r.codecs[c.Kind()]; dup {
			return nil, fmt.Errorf("record: %s registered twice", c.Kind())
		}
		r.codecs[c.Kind()] = c
	}
	return r, nil
}

var (
	defaultOnce sync.Once
	defaultReg  *Registry
)

// Default returns the registry holding a codec for every kind.
func Default() *Registry {
	defaultOnce.Do(func() {
		reg, err := NewRegistry(all()...)
		if err != nil {
			panic(err)
		}
		defaultReg = reg
	})
	return defaultReg
}

func (r *Registry) Lookup(k kind.Kind) (Codec, error) {
	c, ok := r.codecs[k]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownKind, k)
	}
	return c, nil
}

// Fields lists the descriptor table of k in encoding order.
func (r *Registry) Fields(k kind.Kind) ([]string, error) {
	c, err := r.Lookup(k)
	if err != nil {
		return nil, err
	}
	return c.Fields(), nil
}

// Kinds lists the registered kinds in tag order.
func (r *Registry) Kinds() []kind.Kind {
	out := make([]kind.Kind, 0, len(r.codecs))
	for k := range r.codecs {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func all() []Codec {
	return []Codec{
		dvBoolean, dvIdentifier, dvURI, dvEHRURI, codePhrase, dvText, dvCodedText,
		termMapping, dvParagraph, dvDate, dvTime, dvDateTime, dvDuration, dvQuantity,
		dvCount, dvProportion, dvOrdinal, dvInterval, dvState, dvParsable, dvMultimedia,

		terminologyID, isoOID, uuid, internetID, hierObjectID, objectVersionID,
		archetypeID, templateID, genericID, objectRef, partyRef, locatableRef,

		archetyped, link, partySelf, partyIdentified, partyRelated, participation,
		auditDetails, attestation, feederAuditDetails, feederAudit, contribution, folder,

		element, cluster, itemSingle, itemList, itemTable, itemTree, history,
		pointEvent, intervalEvent,

		composition, eventContext, section, observation, evaluation, instruction,
		activity, action, ismTransition, instructionDetails, adminEntry,
	}
}
