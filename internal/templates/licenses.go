package templates

import (
	"fmt"
	"strings"
)

// License describes a selectable open-source license.
type License struct {
	// Name is the license identifier as it appears in parameter sets and
	// setup.py (e.g. "AGPL 3.0").
	Name string

	// Marker is the canonical text that must appear in a rendered
	// LICENSE.txt as proof of correct selection.
	Marker string

	// Default indicates the license used when the parameter set omits one.
	Default bool
}

// licenses is the internal registry of selectable licenses.
var licenses = map[string]License{
	"AGPL 3.0": {
		Name:    "AGPL 3.0",
		Marker:  "GNU AFFERO GENERAL PUBLIC LICENSE",
		Default: true,
	},
	"Apache Software License 2.0": {
		Name:   "Apache Software License 2.0",
		Marker: "Apache",
	},
}

// GetLicense returns a license by identifier.
// Returns an error if the license is not registered.
func GetLicense(name string) (License, error) {
	l, ok := licenses[name]
	if !ok {
		return License{}, fmt.Errorf("unknown license %q; valid licenses: %s", name, strings.Join(LicenseNames(), ", "))
	}
	return l, nil
}

// LicenseNames returns all registered license identifiers.
func LicenseNames() []string {
	return []string{"AGPL 3.0", "Apache Software License 2.0"}
}

// DefaultLicenseName returns the identifier of the license marked as the
// registry default.
func DefaultLicenseName() string {
	for _, name := range LicenseNames() {
		if licenses[name].Default {
			return name
		}
	}
	return DefaultLicense
}
