package schema

import (
	"context"
	"errors"
	"fmt"

	"github.com/hamba/avro/v2"
	"github.com/twmb/franz-go/pkg/sr"
)

var (
	ErrTooFewOpts = errors.New("too few options")
)

// A Serde encodes values in the schema registry wire format:
// magic byte, schema ID, Avro payload.
type Serde interface {
	Encode(v any) ([]byte, error)
	Decode(data []byte, v any) error
}

var _ Serde = RegistrySerde{}

// A RegistrySerde binds one Avro schema to its registry ID.
type RegistrySerde struct {
	id         int
	avroSchema avro.Schema
	srSerde    *sr.Serde
}

func (s RegistrySerde) Encode(v any) ([]byte, error) {
	const op = "RegistrySerde.Encode"
	data, err := s.srSerde.Encode(v)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return data, nil
}

func (s RegistrySerde) Decode(data []byte, v any) error {
	const op = "RegistrySerde.Decode"
	if err := s.srSerde.Decode(data, v); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// SchemaID is the registry ID written into every encoded payload.
func (s RegistrySerde) SchemaID() int {
	return s.id
}

type Opt func(*serdeOpts) error

type serdeOpts struct {
	subject string
	si      SchemaIdentifier
}

func SubjectOpt(subject string) Opt {
	return func(so *serdeOpts) error {
		if subject == "" {
			return errors.New("subject is empty string")
		}
		so.subject = subject
		return nil
	}
}

// TopicSubjectOpt names the subject after the topic the values
// are produced to.
func TopicSubjectOpt(topic string) Opt {
	return func(so *serdeOpts) error {
		if topic == "" {
			return errors.New("topic is empty string")
		}
		so.subject = topic + "-value"
		return nil
	}
}

func SchemaIdentifierOpt(si SchemaIdentifier) Opt {
	return func(so *serdeOpts) error {
		if si == nil {
			return errors.New("schema identifier is nil")
		}
		so.si = si
		return nil
	}
}

// NewSerdeCartEventV1 requires a subject and a SchemaIdentifierOpt.
func NewSerdeCartEventV1(ctx context.Context, opts ...Opt) (RegistrySerde, error) {
	const op = "NewSerdeCartEventV1"
	s, err := newRegistrySerde(ctx, CartEventSchemaTextV1, CartEventV1{}, opts...)
	if err != nil {
		return RegistrySerde{}, fmt.Errorf("%s: %w", op, err)
	}
	return s, nil
}

func newRegistrySerde(
	ctx context.Context, schemaText string, example any, opts ...Opt,
) (RegistrySerde, error) {
	var so serdeOpts
	for _, o := range opts {
		if err := o(&so); err != nil {
			return RegistrySerde{}, err
		}
	}
	if so.subject == "" || so.si == nil {
		return RegistrySerde{}, ErrTooFewOpts
	}

	avroSchema, err := avro.Parse(schemaText)
	if err != nil {
		return RegistrySerde{}, err
	}

	id, err := so.si.DetermineID(ctx, so.subject, schemaText)
	if err != nil {
		return RegistrySerde{}, err
	}

	s := RegistrySerde{id: id, avroSchema: avroSchema}
	s.srSerde = new(sr.Serde)
	s.srSerde.Register(
		id,
		example,
		sr.EncodeFn(func(v any) ([]byte, error) {
			return avro.Marshal(avroSchema, v)
		}),
		sr.DecodeFn(func(data []byte, v any) error {
			return avro.Unmarshal(avroSchema, data, v)
		}),
	)
	return s, nil
}
