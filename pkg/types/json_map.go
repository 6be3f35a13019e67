package types

// JSONMap stores loosely structured jsonb columns.
type JSONMap map[string]any
