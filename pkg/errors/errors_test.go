package errors_test

import (
	"errors"
	"io/fs"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgerrors "github.com/agentstation/extcheck/pkg/errors"
)

func TestNew(t *testing.T) {
	err := pkgerrors.New("test error")
	assert.NotNil(t, err)
	assert.Equal(t, "test error", err.Error())
}

func TestIOError(t *testing.T) {
	t.Run("basic error", func(t *testing.T) {
		err := &pkgerrors.IOError{
			Operation: "read",
			Path:      "/tmp/devcontainer.json",
			Message:   "permission denied",
			Err:       errors.New("permission denied"),
		}
		assert.Contains(t, err.Error(), "read")
		assert.Contains(t, err.Error(), "/tmp/devcontainer.json")
		assert.Contains(t, err.Error(), "permission denied")
	})

	t.Run("without path", func(t *testing.T) {
		err := pkgerrors.NewIOError("read", "", errors.New("closed"))
		assert.Equal(t, "IO error during read: closed", err.Error())
	})

	t.Run("wrap helper keeps os errors reachable", func(t *testing.T) {
		err := pkgerrors.WrapIO("read", "/missing.json", fs.ErrNotExist)
		ioErr, ok := err.(*pkgerrors.IOError)
		require.True(t, ok)
		assert.Equal(t, "read", ioErr.Operation)
		assert.True(t, errors.Is(err, os.ErrNotExist))
	})

	t.Run("missing file is not found", func(t *testing.T) {
		err := pkgerrors.NewIOError("read", "", fs.ErrNotExist)
		assert.True(t, pkgerrors.IsNotFound(err))
		assert.True(t, pkgerrors.IsNotFound(pkgerrors.NewConfigLoadError("a.json", err)))
	})

	t.Run("other read failures are not not-found", func(t *testing.T) {
		err := pkgerrors.NewIOError("read", "", fs.ErrPermission)
		assert.False(t, pkgerrors.IsNotFound(err))
		assert.False(t, pkgerrors.IsNotFound(pkgerrors.NewIOError("read", "", nil)))
	})

	t.Run("wrap nil", func(t *testing.T) {
		assert.NoError(t, pkgerrors.WrapIO("read", "x", nil))
	})
}

func TestParseError(t *testing.T) {
	t.Run("with file and offset", func(t *testing.T) {
		err := &pkgerrors.ParseError{
			Format:  "json",
			File:    "extensions.json",
			Offset:  12,
			Message: "unexpected end of JSON input",
		}
		assert.Equal(t, "failed to parse json file extensions.json at offset 12: unexpected end of JSON input", err.Error())
	})

	t.Run("with file only", func(t *testing.T) {
		err := pkgerrors.NewParseError("json", "extensions.json", "bad", nil)
		assert.Equal(t, "failed to parse json file extensions.json: bad", err.Error())
	})

	t.Run("without file", func(t *testing.T) {
		err := pkgerrors.NewParseError("json", "", "bad", nil)
		assert.Equal(t, "failed to parse json: bad", err.Error())
	})

	t.Run("offset without file", func(t *testing.T) {
		err := &pkgerrors.ParseError{Format: "json", Offset: 7, Message: "bad"}
		assert.Equal(t, "failed to parse json at offset 7: bad", err.Error())
	})

	t.Run("is invalid input", func(t *testing.T) {
		err := pkgerrors.NewParseError("json", "a.json", "boom", errors.New("boom"))
		assert.True(t, pkgerrors.IsValidationError(err))
		assert.False(t, pkgerrors.IsNotFound(err))
	})
}

func TestConfigLoadError(t *testing.T) {
	t.Run("message names the path", func(t *testing.T) {
		cause := pkgerrors.NewIOError("read", "/repo/.vscode/extensions.json", fs.ErrNotExist)
		err := pkgerrors.NewConfigLoadError("/repo/.vscode/extensions.json", cause)
		assert.Contains(t, err.Error(), "load /repo/.vscode/extensions.json")
		assert.True(t, pkgerrors.IsConfigLoad(err))
		assert.True(t, errors.Is(err, os.ErrNotExist))
		assert.False(t, pkgerrors.IsMismatch(err))
	})

	t.Run("parse failure surfaces through the chain", func(t *testing.T) {
		err := pkgerrors.WrapConfigLoad("a.json", pkgerrors.NewParseError("json", "a.json", "bad", nil))
		var parseErr *pkgerrors.ParseError
		require.True(t, errors.As(err, &parseErr))
		assert.Equal(t, "a.json", parseErr.File)
		assert.True(t, pkgerrors.IsValidationError(err))
	})

	t.Run("wrapped", func(t *testing.T) {
		base := pkgerrors.NewConfigLoadError("a.json", errors.New("bad"))
		wrapped := errors.Join(errors.New("check failed"), base)
		assert.True(t, pkgerrors.IsConfigLoad(wrapped))
	})

	t.Run("wrap nil", func(t *testing.T) {
		assert.NoError(t, pkgerrors.WrapConfigLoad("a.json", nil))
	})
}

func TestMismatchError(t *testing.T) {
	err := pkgerrors.NewMismatchError(2, 1)
	assert.Equal(t, "extension lists differ: 2 missing from devcontainer, 1 missing from recommendations", err.Error())
	assert.True(t, pkgerrors.IsMismatch(err))
	assert.False(t, pkgerrors.IsConfigLoad(err))
}

func TestValidationError(t *testing.T) {
	t.Run("with field", func(t *testing.T) {
		err := pkgerrors.NewValidationError("format", "xml", "unsupported format")
		assert.Equal(t, "validation failed for field format: unsupported format", err.Error())
		assert.True(t, errors.Is(err, pkgerrors.ErrInvalidInput))
	})

	t.Run("without field", func(t *testing.T) {
		err := &pkgerrors.ValidationError{Message: "unexpected argument"}
		assert.Equal(t, "validation failed: unexpected argument", err.Error())
	})
}
