package matrix

import "fmt"

// MissingVersionError reports a version source that could not supply a
// required version. Fatal for the whole generation run.
type MissingVersionError struct {
	Key string
	Err error
}

func (e *MissingVersionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("missing version for %q: %v", e.Key, e.Err)
	}
	return fmt.Sprintf("missing version for %q", e.Key)
}

func (e *MissingVersionError) Unwrap() error { return e.Err }

// EmptyRegistryError reports that target enumeration produced nothing after
// filtering. A run with zero targets is a configuration error, not a valid
// degenerate matrix.
type EmptyRegistryError struct {
	Root string
}

func (e *EmptyRegistryError) Error() string {
	return fmt.Sprintf("no build targets under %q after filtering", e.Root)
}

// UnresolvedTagError reports a target present in the graph with no entry in
// the tag table.
type UnresolvedTagError struct {
	Target string
}

func (e *UnresolvedTagError) Error() string {
	return fmt.Sprintf("no tag resolved for target %q", e.Target)
}

// UnresolvedCachePolicyError reports a target present in the graph with no
// entry in the cache-policy table.
type UnresolvedCachePolicyError struct {
	Target string
}

func (e *UnresolvedCachePolicyError) Error() string {
	return fmt.Sprintf("no cache policy for target %q", e.Target)
}

// InvalidTargetNameError reports a candidate target name that cannot be used
// in image tags and workflow names.
type InvalidTargetNameError struct {
	Name   string
	Reason string
}

func (e *InvalidTargetNameError) Error() string {
	return fmt.Sprintf("invalid target name %q: %s", e.Name, e.Reason)
}
