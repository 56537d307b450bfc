// internal/types/types.go
package types

// EntityID uniquely identifies an entity in the ECS.
// IDs are allocated sequentially, so sorting them reproduces spawn order.
type EntityID int
