// internal/types/types.go
package types

// EntityID identifies an entity in the ECS. 0 is never a valid entity.
type EntityID uint64
