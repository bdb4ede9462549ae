package ports

// WorkspaceInitializer writes a starter configuration under root.
type WorkspaceInitializer interface {
	Init(root string, force bool) error
}
