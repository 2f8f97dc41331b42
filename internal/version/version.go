package version

const (
	Major = "0"
	Minor = "4"
	Patch = "0"

	Package = "huunq"
)

const (
	Version     = Major + "." + Minor + "." + Patch
	FullVersion = Package + "/" + Version
)
