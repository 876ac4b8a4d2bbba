// Package utils 提供通用工具函数
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// GetPointerPosition returns the current pointer position.
// Touch input wins over the mouse when a touch is active.
func GetPointerPosition() (int, int) {
	touchIDs := ebiten.AppendTouchIDs(nil)
	if len(touchIDs) > 0 {
		return ebiten.TouchPosition(touchIDs[0])
	}
	return ebiten.CursorPosition()
}

// IsPointerPressed reports whether the left mouse button or a touch is down.
func IsPointerPressed() bool {
	if len(ebiten.AppendTouchIDs(nil)) > 0 {
		return true
	}
	return ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
}

// PointerSampler turns per-frame pointer polling into move events: Sample
// reports a move only when the position differs from the previous frame.
type PointerSampler struct {
	read    func() (int, int)
	x, y    int
	sampled bool
}

// NewPointerSampler creates a sampler reading from read, or from
// GetPointerPosition when read is nil.
func NewPointerSampler(read func() (int, int)) *PointerSampler {
	if read == nil {
		read = GetPointerPosition
	}
	return &PointerSampler{read: read}
}

// Sample polls the pointer. The very first sample only establishes the
// baseline and never counts as a move.
func (ps *PointerSampler) Sample() (x, y int, moved bool) {
	x, y = ps.read()
	if ps.sampled {
		moved = x != ps.x || y != ps.y
	}
	ps.x, ps.y = x, y
	ps.sampled = true
	return x, y, moved
}

// Position returns the last sampled position.
func (ps *PointerSampler) Position() (int, int) {
	return ps.x, ps.y
}
