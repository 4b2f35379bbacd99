package schema_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/niksmo/storefront/pkg/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/twmb/franz-go/pkg/sr"
)

type MockSchemaIdentifier struct {
	mock.Mock
}

func (c *MockSchemaIdentifier) DetermineID(
	ctx context.Context, subject string, avroSchemaText string,
) (id int, err error) {
	args := c.Called(ctx, subject, avroSchemaText)
	return args.Int(0), args.Error(1)
}

func TestSerdeCartEventV1(t *testing.T) {
	const subject = "cart-events-value"

	t.Run("NoOpts", func(t *testing.T) {
		_, err := schema.NewSerdeCartEventV1(t.Context())
		require.Error(t, err)
		assert.ErrorIs(t, err, schema.ErrTooFewOpts)
	})

	t.Run("OneOpt", func(t *testing.T) {
		_, err := schema.NewSerdeCartEventV1(
			t.Context(),
			schema.SchemaIdentifierOpt(new(MockSchemaIdentifier)),
		)
		require.Error(t, err)
		assert.ErrorIs(t, err, schema.ErrTooFewOpts)
	})

	t.Run("InvalidOpts", func(t *testing.T) {
		_, err := schema.NewSerdeCartEventV1(
			t.Context(), schema.SubjectOpt(""),
		)
		require.Error(t, err)

		_, err = schema.NewSerdeCartEventV1(
			t.Context(), schema.SchemaIdentifierOpt(nil),
		)
		require.Error(t, err)
	})

	t.Run("TopicSubject", func(t *testing.T) {
		schemaIdentifier := new(MockSchemaIdentifier)
		schemaIdentifier.On(
			"DetermineID", t.Context(), subject, schema.CartEventSchemaTextV1,
		).Return(3, nil)

		serde, err := schema.NewSerdeCartEventV1(
			t.Context(),
			schema.TopicSubjectOpt("cart-events"),
			schema.SchemaIdentifierOpt(schemaIdentifier),
		)
		require.NoError(t, err)
		assert.Equal(t, 3, serde.SchemaID())
		schemaIdentifier.AssertExpectations(t)
	})

	t.Run("IdentifierFails", func(t *testing.T) {
		schemaIdentifier := new(MockSchemaIdentifier)
		registryErr := errors.New("registry is down")
		schemaIdentifier.On(
			"DetermineID", t.Context(), subject, schema.CartEventSchemaTextV1,
		).Return(0, registryErr)

		_, err := schema.NewSerdeCartEventV1(
			t.Context(),
			schema.SubjectOpt(subject),
			schema.SchemaIdentifierOpt(schemaIdentifier),
		)
		require.Error(t, err)
		assert.ErrorIs(t, err, registryErr)
		schemaIdentifier.AssertExpectations(t)
	})

	t.Run("EncodeDecode", func(t *testing.T) {
		schemaIdentifier := new(MockSchemaIdentifier)
		schemaID := 7
		schemaIdentifier.On(
			"DetermineID", t.Context(), subject, schema.CartEventSchemaTextV1,
		).Return(schemaID, nil)

		serde, err := schema.NewSerdeCartEventV1(
			t.Context(),
			schema.SubjectOpt(subject),
			schema.SchemaIdentifierOpt(schemaIdentifier),
		)
		require.NoError(t, err)

		in := schema.CartEventV1{
			Action:        "add",
			ProductID:     3,
			Title:         "Mens Cotton Jacket",
			Price:         "55.99",
			Quantity:      2,
			TotalQuantity: 5,
			OccurredAt:    time.UnixMilli(1_700_000_000_000).UTC(),
		}

		data, err := serde.Encode(in)
		require.NoError(t, err)

		assert.Equal(t, schemaID, serde.SchemaID())
		id, _, err := new(sr.ConfluentHeader).DecodeID(data)
		require.NoError(t, err)
		assert.Equal(t, schemaID, id)

		var out schema.CartEventV1
		require.NoError(t, serde.Decode(data, &out))
		assert.Equal(t, in.Action, out.Action)
		assert.Equal(t, in.ProductID, out.ProductID)
		assert.Equal(t, in.Title, out.Title)
		assert.Equal(t, in.Price, out.Price)
		assert.Equal(t, in.Quantity, out.Quantity)
		assert.Equal(t, in.TotalQuantity, out.TotalQuantity)
		assert.True(t, in.OccurredAt.Equal(out.OccurredAt))
	})
}
