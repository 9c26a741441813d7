package adapters

import (
	"encoding/xml"
	"fmt"
	"os"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"rosdep-pin/internal/ports"
	"rosdep-pin/internal/types"
)

const supportedVersionAttribute = "version_eq"

var unsupportedVersionAttributes = []string{
	"version_gte",
	"version_gt",
	"version_lte",
	"version_lt",
}

type PackageXMLAdapter struct{}

func NewPackageXMLAdapter() PackageXMLAdapter {
	return PackageXMLAdapter{}
}

type packageXML struct {
	Name string `xml:"name"`

	// Standard ROS dependency tags (REP-140 / REP-149)
	BuildDepend           []versionedDepend `xml:"build_depend"`
	BuildExportDepend     []versionedDepend `xml:"build_export_depend"`
	BuildtoolDepend       []versionedDepend `xml:"buildtool_depend"`
	BuildtoolExportDepend []versionedDepend `xml:"buildtool_export_depend"`
	ExecDepend            []versionedDepend `xml:"exec_depend"`
	Depend                []versionedDepend `xml:"depend"`
	DocDepend             []versionedDepend `xml:"doc_depend"`
	TestDepend            []versionedDepend `xml:"test_depend"`
}

type versionedDepend struct {
	Value string     `xml:",chardata"`
	Attrs []xml.Attr `xml:",any,attr"`
}

func (d versionedDepend) attr(name string) (string, bool) {
	for _, attr := range d.Attrs {
		if attr.Name.Local == name {
			return attr.Value, true
		}
	}
	return "", false
}

// dependencyGroups returns the dependency tags in scan order.
func (p *packageXML) dependencyGroups() [][]versionedDepend {
	return [][]versionedDepend{
		p.BuildDepend,
		p.BuildExportDepend,
		p.BuildtoolDepend,
		p.BuildtoolExportDepend,
		p.ExecDepend,
		p.Depend,
		p.DocDepend,
		p.TestDepend,
	}
}

// ExtractFixedVersions returns the version_eq pins declared by the
// manifest at path. Inequality constraints are logged and ignored; a
// second pin for the same dependency is an error.
func (a PackageXMLAdapter) ExtractFixedVersions(path string) (types.FixedVersions, error) {
	pkg, err := loadPackageXML(path)
	if err != nil {
		return types.FixedVersions{}, err
	}
	result := types.FixedVersions{
		Source:   path,
		Package:  strings.TrimSpace(pkg.Name),
		Versions: map[string]string{},
	}
	for _, group := range pkg.dependencyGroups() {
		for _, dep := range group {
			name := strings.TrimSpace(dep.Value)
			if name == "" {
				return types.FixedVersions{}, errbuilder.New().
					WithCode(errbuilder.CodeInvalidArgument).
					WithMsg(fmt.Sprintf("empty dependency name in package %s", path))
			}
			for _, attr := range unsupportedVersionAttributes {
				if _, ok := dep.attr(attr); ok {
					log.Warn().
						Str("attribute", attr).
						Str("dependency", name).
						Str("manifest", path).
						Msg("unsupported version attribute, ignoring it")
				}
			}
			version, ok := dep.attr(supportedVersionAttribute)
			if !ok {
				continue
			}
			version = strings.TrimSpace(version)
			if version == "" {
				return types.FixedVersions{}, errbuilder.New().
					WithCode(errbuilder.CodeInvalidArgument).
					WithMsg(fmt.Sprintf("empty %s for dependency %s in package %s", supportedVersionAttribute, name, path))
			}
			if existing, dup := result.Versions[name]; dup {
				return types.FixedVersions{}, errbuilder.New().
					WithCode(errbuilder.CodeAlreadyExists).
					WithMsg(fmt.Sprintf("duplicated dependency version found (%s and %s): %s in package %s", existing, version, name, path))
			}
			result.Versions[name] = version
		}
	}
	return result, nil
}

func loadPackageXML(path string) (packageXML, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return packageXML{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("failed to read package.xml").
			WithCause(err)
	}
	var pkg packageXML
	if err := xml.Unmarshal(content, &pkg); err != nil {
		return packageXML{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to parse package.xml").
			WithCause(err)
	}
	return pkg, nil
}

var _ ports.ManifestPort = PackageXMLAdapter{}
