package schema

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/twmb/franz-go/pkg/sr"
)

type fakeRegistry struct {
	subject string
	schema  sr.Schema
	err     error
}

func (r *fakeRegistry) CreateSchema(
	_ context.Context, subject string, s sr.Schema,
) (sr.SubjectSchema, error) {
	r.subject = subject
	r.schema = s
	if r.err != nil {
		return sr.SubjectSchema{}, r.err
	}
	return sr.SubjectSchema{Subject: subject, Version: 1, ID: 42, Schema: s}, nil
}

func TestSchemaCreaterDetermineID(t *testing.T) {
	t.Run("Registers", func(t *testing.T) {
		reg := new(fakeRegistry)
		id, err := NewSchemaCreater(reg).DetermineID(
			t.Context(), "cart-events-value", CartEventSchemaTextV1,
		)
		require.NoError(t, err)
		assert.Equal(t, 42, id)
		assert.Equal(t, "cart-events-value", reg.subject)
		assert.Equal(t, sr.TypeAvro, reg.schema.Type)
		assert.Equal(t, CartEventSchemaTextV1, reg.schema.Schema)
	})

	t.Run("Fails", func(t *testing.T) {
		regErr := errors.New("unauthorized")
		_, err := NewSchemaCreater(&fakeRegistry{err: regErr}).DetermineID(
			t.Context(), "cart-events-value", CartEventSchemaTextV1,
		)
		require.ErrorIs(t, err, regErr)
	})
}
