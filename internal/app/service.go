package app

import (
	"rosdep-pin/internal/adapters"
	"rosdep-pin/internal/ports"
)

type Service struct {
	Rosdep      ports.RosdepPort
	Manifest    ports.ManifestPort
	Workspace   ports.WorkspacePort
	PackageList ports.PackageListPort
	Report      ports.ReportPort
}

func NewService() Service {
	return Service{
		Rosdep:      adapters.NewRosdepCommandAdapter(),
		Manifest:    adapters.NewPackageXMLAdapter(),
		Workspace:   adapters.NewWorkspaceAdapter(),
		PackageList: adapters.NewPackageListFileAdapter(),
		Report:      adapters.NewReportFileAdapter(),
	}
}
