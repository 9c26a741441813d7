package ports

import "rosdep-pin/internal/types"

type PackageListPort interface {
	WritePackageList(path string, lines []string) error
}

type ReportPort interface {
	WriteReport(path string, report types.ResolutionReport) error
}
