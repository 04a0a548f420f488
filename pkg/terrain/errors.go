package terrain

import "errors"

var (
	// ErrEmptyTemplate 掩体模板为空（缺失或尺寸为 0），掩体无法构建
	ErrEmptyTemplate = errors.New("terrain: empty surface template")
	// ErrEmptyStencil 溅射模板为空，侵蚀器无法构建
	ErrEmptyStencil = errors.New("terrain: empty splat stencil")
	// ErrInvalidBounds 表面边界尺寸必须为正
	ErrInvalidBounds = errors.New("terrain: surface bounds must have positive size")
)
