package common

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInlineImageURL(t *testing.T) {
	root := t.TempDir()
	base := "https://api.example.com"
	dir := filepath.Join(root, "tenants", "t1", "hotels", "h1", "images")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "room.png"), []byte("pngdata"), 0o644))

	t.Run("inlines own-host upload with mime by extension", func(t *testing.T) {
		got := InlineImageURL("https://api.example.com/uploads/tenants/t1/hotels/h1/images/room.png", root, base)
		assert.Equal(t, "data:image/png;base64,cG5nZGF0YQ==", got)
	})

	t.Run("unknown extension defaults to jpeg", func(t *testing.T) {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "room.img"), []byte("x"), 0o644))
		got := InlineImageURL("/uploads/tenants/t1/hotels/h1/images/room.img", root, base)
		assert.Contains(t, got, "data:image/jpeg;base64,")
	})

	t.Run("missing file passes through", func(t *testing.T) {
		url := "/uploads/tenants/t1/hotels/h1/images/gone.jpg"
		assert.Equal(t, url, InlineImageURL(url, root, base))
	})

	t.Run("data URI passes through", func(t *testing.T) {
		url := "data:image/jpeg;base64,AAA="
		assert.Equal(t, url, InlineImageURL(url, root, base))
	})

	t.Run("external URL passes through", func(t *testing.T) {
		url := "https://cdn.example.com/room.jpg"
		assert.Equal(t, url, InlineImageURL(url, root, base))
	})

	t.Run("foreign host with uploads path passes through", func(t *testing.T) {
		// Same path exists locally; the host decides, not the substring.
		url := "https://othersite.example.com/uploads/tenants/t1/hotels/h1/images/room.png"
		assert.Equal(t, url, InlineImageURL(url, root, base))
	})

	t.Run("trailing slash on base URL still matches", func(t *testing.T) {
		got := InlineImageURL("https://api.example.com/uploads/tenants/t1/hotels/h1/images/room.png", root, base+"/")
		assert.Equal(t, "data:image/png;base64,cG5nZGF0YQ==", got)
	})

	t.Run("traversal attempts pass through", func(t *testing.T) {
		url := "/uploads/../secrets.txt"
		assert.Equal(t, url, InlineImageURL(url, root, base))
	})
}

func TestInlineLocalImages(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "cover.jpg"), []byte("jpg"), 0o644))

	m := PackagePdfModel{
		CoverImageUrls: []string{"/uploads/cover.jpg", "https://cdn.example.com/x.jpg"},
		Hotels: []PdfHotelItem{
			{ImageUrls: []string{"/uploads/cover.jpg", "/uploads/missing.jpg"}},
		},
	}
	InlineLocalImages(&m, root, "https://api.example.com")

	assert.Contains(t, m.CoverImageUrls[0], "data:image/jpeg;base64,")
	assert.Equal(t, "https://cdn.example.com/x.jpg", m.CoverImageUrls[1])
	assert.Contains(t, m.Hotels[0].ImageUrls[0], "data:image/jpeg;base64,")
	assert.Equal(t, "/uploads/missing.jpg", m.Hotels[0].ImageUrls[1])
}
