package order_test

import (
	"testing"
	"time"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeedbackTypeFromString(t *testing.T) {
	t.Run("should parse valid types", func(t *testing.T) {
		ft, err := order.FeedbackTypeFromString("APPROVAL")
		require.NoError(t, err)
		assert.Equal(t, order.FeedbackApproval, ft)

		ft, err = order.FeedbackTypeFromString("REVISION")
		require.NoError(t, err)
		assert.Equal(t, order.FeedbackRevision, ft)
	})

	t.Run("should reject unknown strings", func(t *testing.T) {
		_, err := order.FeedbackTypeFromString("approval")
		require.Error(t, err)

		_, err = order.FeedbackTypeFromString("")
		require.Error(t, err)
	})
}

func TestFeedbackType_String(t *testing.T) {
	assert.Equal(t, "APPROVAL", order.FeedbackApproval.String())
	assert.Equal(t, "REVISION", order.FeedbackRevision.String())
	assert.Equal(t, "UNKNOWN", order.FeedbackUnknown.String())
}

func TestNewFeedback(t *testing.T) {
	id := kernel.NewUUID()
	author := kernel.NewUUID()
	now := time.Now().UTC()

	t.Run("should create valid feedback", func(t *testing.T) {
		f, err := order.NewFeedback(id, order.FeedbackRevision, "make logo bigger", author, now)

		require.NoError(t, err)
		assert.True(t, f.ID().IsEqual(id))
		assert.Equal(t, order.FeedbackRevision, f.Type())
		assert.Equal(t, "make logo bigger", f.Message())
		assert.True(t, f.AuthorID().IsEqual(author))
		assert.Equal(t, now, f.CreatedAt())
	})

	t.Run("should allow empty message for approval", func(t *testing.T) {
		f, err := order.NewFeedback(id, order.FeedbackApproval, "", author, now)

		require.NoError(t, err)
		assert.Empty(t, f.Message())
	})

	t.Run("message is not structurally required for revision", func(t *testing.T) {
		_, err := order.NewFeedback(id, order.FeedbackRevision, "", author, now)

		require.NoError(t, err)
	})

	t.Run("should fail with zero feedback ID", func(t *testing.T) {
		var zeroID kernel.UUID

		_, err := order.NewFeedback(zeroID, order.FeedbackApproval, "", author, now)

		require.Error(t, err)
	})

	t.Run("should fail with invalid type", func(t *testing.T) {
		_, err := order.NewFeedback(id, order.FeedbackUnknown, "", author, now)

		require.Error(t, err)
	})

	t.Run("should fail with zero author ID", func(t *testing.T) {
		var zeroAuthor kernel.UUID

		_, err := order.NewFeedback(id, order.FeedbackApproval, "", zeroAuthor, now)

		require.Error(t, err)
	})
}
