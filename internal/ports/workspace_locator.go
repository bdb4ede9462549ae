package ports

// WorkspaceLocator finds the directory holding the zoneinfo config, starting from an arbitrary directory.
type WorkspaceLocator interface {
	FindRoot(startDir string) (string, error)
}
