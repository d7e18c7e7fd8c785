package matrix

// Sep joins version components into tags. Workflow names reuse it, which is
// why package versions are normalized before they reach a workflow name.
const Sep = "-"

// Resolver composes the immutable version snapshot of one generation run
// into image tags. Changing Package or Base changes every tag in the matrix;
// changing one target's increment changes only that target's tag.
type Resolver struct {
	Package string // logical software release being packaged
	Base    string // base image's own increment
}

// NewResolver builds a resolver from the global version pair.
func NewResolver(packageVersion, baseVersion string) (Resolver, error) {
	if packageVersion == "" {
		return Resolver{}, &MissingVersionError{Key: "package"}
	}
	if baseVersion == "" {
		return Resolver{}, &MissingVersionError{Key: "base"}
	}
	return Resolver{Package: packageVersion, Base: baseVersion}, nil
}

// BaseTag returns the tag of the shared base target: PACKAGE-BASE.
func (r Resolver) BaseTag() string {
	return r.Package + Sep + r.Base
}

// LeafTag returns the tag of one leaf target: NAME-PACKAGE-BASE-TARGET.
func (r Resolver) LeafTag(name, targetVersion string) (string, error) {
	if targetVersion == "" {
		return "", &MissingVersionError{Key: name}
	}
	return name + Sep + r.VersionTag(targetVersion), nil
}

// VersionTag returns the version portion of a leaf tag without the target
// name prefix: PACKAGE-BASE-TARGET. Workflow naming builds on this form.
func (r Resolver) VersionTag(targetVersion string) string {
	return r.BaseTag() + Sep + targetVersion
}
