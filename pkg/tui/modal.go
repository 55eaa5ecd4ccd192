package tui

import "github.com/l9rins/foine-2025/pkg/post"

// ModalState enumerates which overlay, if any, is presented.
type ModalState int

const (
	ModalClosed ModalState = iota
	ModalUpload
	ModalDetail
)

// ModalController guarantees at most one overlay is visible at a time.
// Opening while something else is showing replaces it; overlays never
// stack.
type ModalController struct {
	state  ModalState
	detail *post.Post
}

// State returns the current modal state.
func (c *ModalController) State() ModalState {
	return c.state
}

// Detail returns the post shown in the detail overlay, or nil when the
// detail overlay is not up.
func (c *ModalController) Detail() *post.Post {
	if c.state != ModalDetail {
		return nil
	}
	return c.detail
}

// OpenUpload presents the upload composer.
func (c *ModalController) OpenUpload() {
	c.state = ModalUpload
	c.detail = nil
}

// OpenDetail presents the detail overlay for p. A nil post is ignored.
func (c *ModalController) OpenDetail(p *post.Post) {
	if p == nil {
		return
	}
	c.state = ModalDetail
	c.detail = p
}

// Close dismisses whatever is showing. Valid from any state.
func (c *ModalController) Close() {
	c.state = ModalClosed
	c.detail = nil
}
