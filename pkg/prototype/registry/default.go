package registry

import "context"

// Default is the process-wide registrar, created when the package is
// initialized. It logs nothing and records no metrics; programs that want
// observability build their own Registrar with New and pass it around.
var Default = New[string](WithName("default"))

// Register stores template under id in Default.
func Register(id string, template any) {
	Default.Register(id, template)
}

// Copy returns a shallow clone of the Default template under id.
func Copy(ctx context.Context, id string) (any, error) {
	return Default.Copy(ctx, id)
}

// DeepCopy returns a deep clone of the Default template under id.
func DeepCopy(ctx context.Context, id string) (any, error) {
	return Default.DeepCopy(ctx, id)
}
