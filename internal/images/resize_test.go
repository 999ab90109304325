package images

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSizes = Sizes{
	ThumbWidth:   170,
	ThumbHeight:  110,
	MediumWidth:  600,
	MediumHeight: 370,
	Quality:      90,
}

func writeTestJPEG(t *testing.T, dir, name string, w, h int) string {
	t.Helper()
	img := imaging.New(w, h, color.NRGBA{R: 200, G: 100, B: 50, A: 255})
	path := filepath.Join(dir, name)
	require.NoError(t, imaging.Save(img, path, imaging.JPEGQuality(90)))
	return path
}

func TestEnsureDerivatives_CoverCropExactBox(t *testing.T) {
	dir := t.TempDir()
	writeTestJPEG(t, dir, "12345_000_front.jpg", 800, 600)

	require.NoError(t, EnsureDerivatives(dir, "12345_000_front.jpg", testSizes))

	thumb, err := imaging.Open(filepath.Join(dir, ThumbDir, "12345_000_front.jpg"))
	require.NoError(t, err)
	assert.Equal(t, 170, thumb.Bounds().Dx())
	assert.Equal(t, 110, thumb.Bounds().Dy())

	medium, err := imaging.Open(filepath.Join(dir, MediumDir, "12345_000_front.jpg"))
	require.NoError(t, err)
	assert.Equal(t, 600, medium.Bounds().Dx())
	assert.Equal(t, 370, medium.Bounds().Dy())
}

func TestEnsureDerivatives_ExactBoxForExtremeAspectRatios(t *testing.T) {
	dir := t.TempDir()
	writeTestJPEG(t, dir, "1_000_pano.jpg", 2000, 200)

	require.NoError(t, EnsureDerivatives(dir, "1_000_pano.jpg", testSizes))

	thumb, err := imaging.Open(filepath.Join(dir, ThumbDir, "1_000_pano.jpg"))
	require.NoError(t, err)
	assert.Equal(t, 170, thumb.Bounds().Dx())
	assert.Equal(t, 110, thumb.Bounds().Dy())
}

func TestEnsureDerivatives_MtimePinnedAndFresh(t *testing.T) {
	dir := t.TempDir()
	src := writeTestJPEG(t, dir, "1_000_a.jpg", 400, 300)

	require.NoError(t, EnsureDerivatives(dir, "1_000_a.jpg", testSizes))

	srcInfo, err := os.Stat(src)
	require.NoError(t, err)
	dst := filepath.Join(dir, ThumbDir, "1_000_a.jpg")
	dstInfo, err := os.Stat(dst)
	require.NoError(t, err)
	assert.Equal(t, srcInfo.ModTime(), dstInfo.ModTime())

	// A second pass must not rewrite anything.
	before, err := os.Stat(dst)
	require.NoError(t, err)
	require.NoError(t, EnsureDerivatives(dir, "1_000_a.jpg", testSizes))
	after, err := os.Stat(dst)
	require.NoError(t, err)
	assert.Equal(t, before.ModTime(), after.ModTime())
	assert.Equal(t, before.Size(), after.Size())
}

func TestEnsureDerivatives_RegeneratesWhenOriginalNewer(t *testing.T) {
	dir := t.TempDir()
	writeTestJPEG(t, dir, "1_000_a.jpg", 400, 300)
	require.NoError(t, EnsureDerivatives(dir, "1_000_a.jpg", testSizes))

	// Replace the original and move its mtime forward past the derivatives.
	src := writeTestJPEG(t, dir, "1_000_a.jpg", 1000, 1000)
	info, err := os.Stat(src)
	require.NoError(t, err)
	later := info.ModTime().Add(time.Hour)
	require.NoError(t, os.Chtimes(src, later, later))
	require.NoError(t, EnsureDerivatives(dir, "1_000_a.jpg", testSizes))

	srcInfo, err := os.Stat(filepath.Join(dir, "1_000_a.jpg"))
	require.NoError(t, err)
	dstInfo, err := os.Stat(filepath.Join(dir, MediumDir, "1_000_a.jpg"))
	require.NoError(t, err)
	assert.Equal(t, srcInfo.ModTime(), dstInfo.ModTime())
}

func TestEnsureDerivatives_SkipsUnsupportedFormat(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "1_000_a.webp"), []byte("not really webp"), 0o644))

	require.NoError(t, EnsureDerivatives(dir, "1_000_a.webp", testSizes))

	_, err := os.Stat(filepath.Join(dir, ThumbDir))
	assert.True(t, os.IsNotExist(err))
}
