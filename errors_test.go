package img2ascii

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadImageFileNotFound(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.png")

	img, err := LoadImage(path)
	assert.Nil(t, img)
	require.ErrorIs(t, err, ErrFileNotFound)
	assert.Equal(t, "File not found: "+path, err.Error())
	assert.Equal(t, ExitFileNotFound, ExitCode(err))
}

func TestLoadImageDecodeFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corrupt.png")
	require.NoError(t, os.WriteFile(path, []byte("\x89PNG garbage"), 0o644))

	_, err := LoadImage(path)
	var decodeErr *DecodeError
	require.ErrorAs(t, err, &decodeErr)
	assert.Equal(t, path, decodeErr.Path)
	assert.Contains(t, err.Error(), "Failed to open image: ")
	assert.Equal(t, ExitDecode, ExitCode(err))
}

func TestImageToASCIIReturnsNothingOnError(t *testing.T) {
	art, err := ImageToASCII(filepath.Join(t.TempDir(), "missing.png"), DefaultConfig())
	assert.Error(t, err)
	assert.Empty(t, art)
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, ExitOK, ExitCode(nil))
	assert.Equal(t, ExitOK, ExitCode(ErrMissingPath))
	assert.Equal(t, ExitFileNotFound, ExitCode(&FileNotFoundError{Path: "x"}))
	assert.Equal(t, ExitDecode, ExitCode(&DecodeError{Err: errors.New("bad")}))
	assert.Equal(t, ExitFailure, ExitCode(errors.New("other")))
}
