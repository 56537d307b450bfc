// internal/system/visual_effect.go
package system

import "go-grid-defense/internal/entity"

// VisualEffectSystem ages the transient hit markers. Markers are a pure
// display channel and never affect gameplay.
type VisualEffectSystem struct {
	ecs *entity.ECS
}

func NewVisualEffectSystem(ecs *entity.ECS) *VisualEffectSystem {
	return &VisualEffectSystem{ecs: ecs}
}

// Update decrements every marker's TTL and drops expired ones.
func (s *VisualEffectSystem) Update() {
	for pos, ttl := range s.ecs.HitMarks {
		ttl--
		if ttl <= 0 {
			delete(s.ecs.HitMarks, pos)
		} else {
			s.ecs.HitMarks[pos] = ttl
		}
	}
}
