package errors_test

import (
	"github.com/myrjola/pitwall/internal/errors"
	"github.com/stretchr/testify/require"
	"log/slog"
	"slices"
	"testing"
)

func groupAttr(t *testing.T, group []slog.Attr, key string) slog.Attr {
	t.Helper()
	idx := slices.IndexFunc(group, func(attr slog.Attr) bool {
		return attr.Key == key
	})
	require.NotEqual(t, -1, idx, "attribute %s not found in %v", key, group)
	return group[idx]
}

func TestAnnotatedError(t *testing.T) {
	err := errors.New("test error", slog.String("id", "123"))
	require.Equal(t, "test error", err.Error())

	// Assert that wrapping sentinel errors work as expected.
	sentinel := errors.NewSentinel("test error")
	require.NotErrorIs(t, err, errors.NewSentinel("test error"))
	wrapped := errors.Wrap(sentinel, "wrapped", slog.Int("attempt", 2))
	require.ErrorIs(t, wrapped, sentinel)
	require.Equal(t, "wrapped: test error", wrapped.Error())

	var annotated *errors.AnnotatedError
	require.True(t, errors.As(err, &annotated))
	group := annotated.LogValue().Group()
	require.Contains(t, group, slog.String("id", "123"))
	require.Contains(t, groupAttr(t, group, "source").Value.String(), "annotatederror_test.go")
}

func TestWrapNil(t *testing.T) {
	require.NoError(t, errors.Wrap(nil, "nothing to wrap"))
}

func TestSlogError(t *testing.T) {
	root := errors.New("root cause", slog.String("session_id", "abc"))
	err := errors.Wrap(root, "ask question", slog.Int("questions_asked", 3))

	attr := errors.SlogError(err)
	require.Equal(t, "error", attr.Key)
	group := attr.Value.Group()
	require.Equal(t, "ask question: root cause", groupAttr(t, group, "msg").Value.String())
	require.Contains(t, group, slog.String("session_id", "abc"))
	require.Contains(t, group, slog.Int("questions_asked", 3))
	require.Contains(t, groupAttr(t, group, "source").Value.String(), "annotatederror_test.go")
}

func TestSlogErrorPlain(t *testing.T) {
	attr := errors.SlogError(errors.NewSentinel("plain"))
	group := attr.Value.Group()
	require.Len(t, group, 1)
	require.Equal(t, "plain", group[0].Value.String())
}
