package models

// BuildContext is the state of one build invocation. It is not shared
// between builds.
type BuildContext struct {
	ProjectDir string
	Posts      []*Document // Most recent first
	Pages      []*Document // Scan order
	Categories []CategoryListing
}
