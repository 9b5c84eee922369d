// Package registry stores named template objects and hands out clones of
// them on request.
//
// A Registrar maps identifiers of any comparable type to templates. Lookups
// never return the template itself: Copy returns a shallow clone and
// DeepCopy a deep one, so callers can change what they receive without
// touching the template.
//
// # Basic Usage
//
//	r := registry.New[string](registry.WithName("shapes"))
//	r.Register("circle", &Circle{Radius: 10, Tags: []string{"round"}})
//
//	c, err := registry.DeepCopyAs[*Circle](ctx, r, "circle")
//	if err != nil {
//	    return err
//	}
//	c.Tags[0] = "mine" // the template is unchanged
//
// Registering under an existing id replaces the template. Unknown ids
// fail with a *prototype.NotFoundError:
//
//	_, err := r.Copy(ctx, "hexagon")
//	if prototype.IsNotFound(err) {
//	    // register before reading
//	}
//
// # Process-wide Registrar
//
// Default is a ready-made Registrar[string] for programs that want a single
// shared store. The package-level Register, Copy and DeepCopy functions
// operate on it.
//
// # Configuration
//
// FromConfig builds a Registrar from a config.Config, enabling logging,
// metrics and tracing and registering the templates listed in the file.
//
// # Thread Safety
//
// All Registrar methods are safe for concurrent use. Clones are made
// outside the lock, so a template must not be mutated while other
// goroutines may clone it. Range iterates over a snapshot of the ids,
// allowing registration during iteration.
package registry
