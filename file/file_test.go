/*
File    : glint/file/file_test.go
*/
package file

import (
	"path/filepath"
	"testing"

	"github.com/akashmaji946/glint/objects"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFopenFwriteFreadFclose(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")

	handle, err := fopen([]objects.Value{objects.NewString(path), objects.NewString("w")})
	require.NoError(t, err)
	single, ok := handle.(*objects.Single)
	require.True(t, ok)
	assert.Equal(t, "file", single.Label)

	n, err := fwrite([]objects.Value{handle, objects.NewString("hello world")})
	require.NoError(t, err)
	assert.Equal(t, int64(11), n.(*objects.Number).IntValue)

	_, err = fclose([]objects.Value{handle})
	require.NoError(t, err)

	rh, err := fopen([]objects.Value{objects.NewString(path), objects.NewString("r")})
	require.NoError(t, err)

	content, err := fread([]objects.Value{rh, objects.NewNumberInt(5)})
	require.NoError(t, err)
	assert.Equal(t, "hello", content.String())

	pos, err := ftell([]objects.Value{rh})
	require.NoError(t, err)
	assert.Equal(t, int64(5), pos.(*objects.Number).IntValue)

	_, err = fseek([]objects.Value{rh, objects.NewNumberInt(0), objects.NewNumberInt(0)})
	require.NoError(t, err)

	rest, err := fread([]objects.Value{rh, objects.NewNumberInt(100)})
	require.NoError(t, err)
	assert.Equal(t, "hello world", rest.String())

	_, err = fclose([]objects.Value{rh})
	require.NoError(t, err)
}

func TestFopenInvalidModeErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	_, err := fopen([]objects.Value{objects.NewString(path), objects.NewString("bogus")})
	assert.Error(t, err)
}

func TestAsFileRejectsNonFileValues(t *testing.T) {
	_, err := fclose([]objects.Value{objects.NewNumberInt(1)})
	assert.Error(t, err)
}
