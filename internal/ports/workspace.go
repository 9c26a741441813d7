package ports

// WorkspacePort discovers package.xml files within a workspace root.
type WorkspacePort interface {
	FindPackageXML(root string) ([]string, error)
}
