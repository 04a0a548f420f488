package game

import (
	"fmt"
	"image"
	_ "image/png" // Register PNG decoder

	"github.com/decker502/invaders/pkg/embedded"
	"github.com/decker502/invaders/pkg/terrain"
	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/draw"
)

// ResourceManager is responsible for centralized management of game resources.
// It loads images from the embedded file system and caches them so that each
// asset is decoded only once.
//
// Besides GPU images it also produces CPU-side terrain buffers:
//   - LoadPixelBuffer decodes a template image into a terrain.PixelBuffer,
//     optionally resampled to a fixed resolution.
//   - LoadStencil builds the shared splat stencil.
//
// Thread Safety Note:
// This implementation is NOT thread-safe. All resources are loaded from the
// game goroutine before the first frame.
//
// Usage:
//
//	rm := NewResourceManager()
//	img, err := rm.LoadImage("assets/images/player.png")
//	if err != nil {
//	    log.Printf("Failed to load image: %v", err)
//	}
type ResourceManager struct {
	imageCache  map[string]*ebiten.Image         // path -> GPU image
	bufferCache map[string]*terrain.PixelBuffer // "path@WxH" -> decoded template
}

// NewResourceManager creates a ResourceManager with empty caches.
func NewResourceManager() *ResourceManager {
	return &ResourceManager{
		imageCache:  make(map[string]*ebiten.Image),
		bufferCache: make(map[string]*terrain.PixelBuffer),
	}
}

// LoadImage loads an image from the embedded file system and caches it.
// If the image has already been loaded, it returns the cached version.
//
// Parameters:
//   - path: resource path starting with "assets/" (e.g., "assets/images/player.png").
//
// Returns:
//   - A pointer to the loaded ebiten.Image.
//   - An error if the file cannot be opened or decoded.
func (rm *ResourceManager) LoadImage(path string) (*ebiten.Image, error) {
	if cachedImage, exists := rm.imageCache[path]; exists {
		return cachedImage, nil
	}

	img, err := decodeImage(path)
	if err != nil {
		return nil, err
	}

	ebitenImg := ebiten.NewImageFromImage(img)
	rm.imageCache[path] = ebitenImg
	return ebitenImg, nil
}

// GetImage returns a previously loaded image, or nil if it is not cached.
func (rm *ResourceManager) GetImage(path string) *ebiten.Image {
	return rm.imageCache[path]
}

// LoadPixelBuffer decodes an image into a terrain buffer.
//
// When width and height are both positive the image is resampled with
// nearest-neighbour filtering, so hard pixel edges survive the scaling.
// Zero keeps the image's native resolution.
//
// The returned buffer is shared through the cache and must be treated as
// read-only; surfaces clone it on activation.
//
// Parameters:
//   - path: resource path starting with "assets/".
//   - width, height: target resolution in texels, or 0 for the native size.
//
// Returns:
//   - The decoded buffer.
//   - An error if the image is missing, undecodable, or has no pixels.
func (rm *ResourceManager) LoadPixelBuffer(path string, width, height int) (*terrain.PixelBuffer, error) {
	key := fmt.Sprintf("%s@%dx%d", path, width, height)
	if buf, exists := rm.bufferCache[key]; exists {
		return buf, nil
	}

	img, err := decodeImage(path)
	if err != nil {
		return nil, err
	}
	if width > 0 && height > 0 {
		img = resample(img, width, height)
	}

	buf := NewPixelBufferFromImage(img)
	if buf.Empty() {
		return nil, fmt.Errorf("image %s: %w", path, terrain.ErrEmptyTemplate)
	}
	rm.bufferCache[key] = buf
	return buf, nil
}

// LoadStencil decodes the splat stencil image at its native resolution.
func (rm *ResourceManager) LoadStencil(path string) (*terrain.Stencil, error) {
	img, err := decodeImage(path)
	if err != nil {
		return nil, err
	}
	stencil, err := terrain.NewStencil(NewPixelBufferFromImage(img))
	if err != nil {
		return nil, fmt.Errorf("stencil %s: %w", path, err)
	}
	return stencil, nil
}

// NewPixelBufferFromImage 把图像转换为点采样、边缘夹取的地形缓冲
func NewPixelBufferFromImage(img image.Image) *terrain.PixelBuffer {
	buf := terrain.NewPixelBufferFromImage(img)
	buf.Filter = terrain.FilterNearest
	buf.Wrap = terrain.WrapClamp
	return buf
}

func decodeImage(path string) (image.Image, error) {
	file, err := embedded.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file %s: %w", path, err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}
	return img, nil
}

// resample 最近邻缩放到 width x height
func resample(src image.Image, width, height int) image.Image {
	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}
